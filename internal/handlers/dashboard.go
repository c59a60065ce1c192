package handlers

import (
	"math"
	"net/http"

	"golang.org/x/sync/errgroup"

	"quizmaker-backend/internal/middleware"
	"quizmaker-backend/internal/models"
)

type DashboardHandler struct {
	quizzes QuizStore
	results ResultStore
}

func NewDashboardHandler(quizzes QuizStore, results ResultStore) *DashboardHandler {
	return &DashboardHandler{quizzes: quizzes, results: results}
}

// Quizzes lists the owner's quizzes enriched with result statistics:
// takers (result row count) and avgScore (mean, 2 decimal places, 0 when
// nobody has taken the quiz). Stats are recomputed on every load; the count
// and average queries per quiz are independent, so they run concurrently.
func (h *DashboardHandler) Quizzes(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	quizzes, err := h.quizzes.ListByUser(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch quizzes", r))
		return
	}

	enriched := make([]models.DashboardQuiz, len(quizzes))
	g, ctx := errgroup.WithContext(r.Context())

	for i, quiz := range quizzes {
		i, quiz := i, quiz
		enriched[i].Quiz = *quiz

		g.Go(func() error {
			takers, err := h.results.CountByQuiz(ctx, quiz.ID)
			if err != nil {
				return err
			}
			enriched[i].Takers = takers
			return nil
		})

		g.Go(func() error {
			avg, err := h.results.AvgScoreByQuiz(ctx, quiz.ID)
			if err != nil {
				return err
			}
			enriched[i].AvgScore = roundToCents(avg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to compute quiz statistics", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"quizzes": enriched})
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
