package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"quizmaker-backend/internal/middleware"
	"quizmaker-backend/internal/models"
	"quizmaker-backend/internal/services"
)

type ResultHandler struct {
	quizzes QuizStore
	results ResultStore
}

func NewResultHandler(quizzes QuizStore, results ResultStore) *ResultHandler {
	return &ResultHandler{quizzes: quizzes, results: results}
}

// Submit stores a client-computed score. Retakes are allowed; every
// submission adds a row.
func (h *ResultHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if req.QuizID == "" || req.UserID == "" || req.Score == nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Missing required fields", r))
		return
	}

	quizID, err := uuid.Parse(req.QuizID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid quiz ID", r))
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid user ID", r))
		return
	}

	if *req.Score < 0 || *req.Score > 100 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Score must be between 0 and 100", r))
		return
	}

	result := &models.QuizResult{
		QuizID: quizID,
		UserID: userID,
		Score:  *req.Score,
	}

	if err := h.results.Insert(r.Context(), result); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to submit result", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Result submitted successfully"})
}

// Take grades an answer map server-side, persists the result and returns
// the score. Incomplete submissions are rejected before grading.
func (h *ResultHandler) Take(w http.ResponseWriter, r *http.Request) {
	quizID, err := uuid.Parse(chi.URLParam(r, "quizId"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid quiz ID", r))
		return
	}

	var req models.TakeQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	quiz, err := h.quizzes.GetByID(r.Context(), quizID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Quiz not found", r))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch quiz", r))
		return
	}

	if missing := services.Unanswered(quiz.Questions, req.Answers); len(missing) > 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Please answer all questions before submitting.", r))
		return
	}

	score, err := services.Score(quiz.Questions, req.Answers)
	if err != nil {
		// Only ErrNoQuestions reaches here: a quiz with no questions
		// cannot be taken.
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Quiz has no questions", r))
		return
	}

	result := &models.QuizResult{
		QuizID: quizID,
		UserID: middleware.GetUserID(r.Context()),
		Score:  score,
	}

	if err := h.results.Insert(r.Context(), result); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to submit result", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Result submitted successfully",
		"score":   score,
	})
}

// LatestResult returns the most recent result for a (quiz, user) pair.
func (h *ResultHandler) LatestResult(w http.ResponseWriter, r *http.Request) {
	quizID, err := uuid.Parse(chi.URLParam(r, "quizId"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid quiz ID", r))
		return
	}
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid user ID", r))
		return
	}

	result, err := h.results.Latest(r.Context(), quizID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "No result found for the given user", r))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch result", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"quiz_id": result.QuizID,
		"user_id": result.UserID,
		"score":   result.Score,
	})
}
