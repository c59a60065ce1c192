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

type QuizHandler struct {
	quizzes QuizStore
}

func NewQuizHandler(quizzes QuizStore) *QuizHandler {
	return &QuizHandler{quizzes: quizzes}
}

func (h *QuizHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	// Reject before any backend call
	if req.Title == "" || req.Author == "" || len(req.Questions) == 0 || req.UserID == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Missing required fields", r))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid user ID", r))
		return
	}
	if userID != middleware.GetUserID(r.Context()) {
		writeJSON(w, http.StatusForbidden, errorResp("FORBIDDEN", "Cannot create a quiz for another user", r))
		return
	}

	questions, err := services.BuildQuestions(req.Title, req.Author, req.Questions)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	quiz := &models.Quiz{
		UserID:    userID,
		Title:     req.Title,
		Author:    req.Author,
		Questions: questions,
	}

	if err := h.quizzes.Create(r.Context(), quiz); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to create quiz", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Quiz created successfully",
		"quiz":    quiz,
	})
}

func (h *QuizHandler) Edit(w http.ResponseWriter, r *http.Request) {
	var req models.EditQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if req.QuizID == "" || req.Title == "" || req.Author == "" || len(req.Questions) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Missing required fields", r))
		return
	}

	quizID, err := uuid.Parse(req.QuizID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid quiz ID", r))
		return
	}

	quiz, err := h.quizzes.GetByID(r.Context(), quizID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Quiz not found", r))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to update quiz", r))
		return
	}

	if quiz.UserID != middleware.GetUserID(r.Context()) {
		writeJSON(w, http.StatusForbidden, errorResp("FORBIDDEN", "Access denied", r))
		return
	}

	questions, err := services.BuildQuestions(req.Title, req.Author, req.Questions)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	if err := h.quizzes.Update(r.Context(), quizID, req.Title, req.Author, questions); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to update quiz", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Quiz updated successfully"})
}

func (h *QuizHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if req.QuizID == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Quiz ID is required", r))
		return
	}

	quizID, err := uuid.Parse(req.QuizID)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid quiz ID", r))
		return
	}

	quiz, err := h.quizzes.GetByID(r.Context(), quizID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, errorResp("NOT_FOUND", "Quiz not found", r))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete quiz", r))
		return
	}

	if quiz.UserID != middleware.GetUserID(r.Context()) {
		writeJSON(w, http.StatusForbidden, errorResp("FORBIDDEN", "Access denied", r))
		return
	}

	if err := h.quizzes.Delete(r.Context(), quizID); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to delete quiz", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Quiz deleted successfully"})
}

// takeQuestion is the question shape served to quiz takers: no answer field.
type takeQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// editorQuestion is the owner's view, with the correct-answer index
// re-derived from the stored answer text for the edit form.
type editorQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	Answer        string   `json:"answer"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Get serves a quiz for taking. The owner additionally receives the answers
// and derived correct-answer indexes so the edit form can prefill.
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	quizID, err := uuid.Parse(chi.URLParam(r, "quizId"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid quiz ID", r))
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

	if quiz.UserID == middleware.GetUserID(r.Context()) {
		draft := services.DraftFromQuiz(quiz)
		questions := make([]editorQuestion, 0, len(quiz.Questions))
		for i, q := range draft.Questions() {
			questions = append(questions, editorQuestion{
				Question:      q.Question,
				Options:       q.Options,
				Answer:        quiz.Questions[i].Answer,
				CorrectAnswer: q.CorrectAnswer,
			})
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id":         quiz.ID,
			"user_id":    quiz.UserID,
			"title":      quiz.Title,
			"author":     quiz.Author,
			"questions":  questions,
			"created_at": quiz.CreatedAt,
		})
		return
	}

	questions := make([]takeQuestion, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, takeQuestion{Question: q.Question, Options: q.Options})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":        quiz.ID,
		"title":     quiz.Title,
		"author":    quiz.Author,
		"questions": questions,
	})
}

func (h *QuizHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	quizzes, err := h.quizzes.ListByUser(r.Context(), userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResp("INTERNAL_ERROR", "Failed to fetch quizzes", r))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"quizzes": quizzes})
}
