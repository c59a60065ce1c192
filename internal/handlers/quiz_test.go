package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"quizmaker-backend/internal/models"
)

func validQuestions() []models.QuestionInput {
	return []models.QuestionInput{
		{Question: "Q1", Options: []string{"a", "b", "c", "d"}, Answer: "b"},
	}
}

func TestCreateQuiz_MissingTitle(t *testing.T) {
	store := newFakeQuizStore()
	h := NewQuizHandler(store)
	userID := uuid.New()

	body, _ := json.Marshal(models.CreateQuizRequest{
		Author:    "A",
		Questions: validQuestions(),
		UserID:    userID.String(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/quizzez/create", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, asUser(req, userID))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
	if store.createCalls != 0 {
		t.Errorf("Expected no store writes, got %d", store.createCalls)
	}
}

func TestCreateQuiz_MissingFields(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name string
		req  models.CreateQuizRequest
	}{
		{"missing author", models.CreateQuizRequest{Title: "T", Questions: validQuestions(), UserID: userID.String()}},
		{"missing questions", models.CreateQuizRequest{Title: "T", Author: "A", UserID: userID.String()}},
		{"missing user_id", models.CreateQuizRequest{Title: "T", Author: "A", Questions: validQuestions()}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeQuizStore()
			h := NewQuizHandler(store)

			body, _ := json.Marshal(tc.req)
			req := httptest.NewRequest(http.MethodPost, "/api/quizzez/create", bytes.NewReader(body))
			rr := httptest.NewRecorder()
			h.Create(rr, asUser(req, userID))

			if rr.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rr.Code)
			}
			if store.createCalls != 0 {
				t.Errorf("Expected no store writes, got %d", store.createCalls)
			}
		})
	}
}

func TestCreateQuiz_Success(t *testing.T) {
	store := newFakeQuizStore()
	h := NewQuizHandler(store)
	userID := uuid.New()

	body, _ := json.Marshal(models.CreateQuizRequest{
		Title:     "T",
		Author:    "A",
		Questions: validQuestions(),
		UserID:    userID.String(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/quizzez/create", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, asUser(req, userID))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if store.createCalls != 1 {
		t.Errorf("Expected 1 store write, got %d", store.createCalls)
	}

	var resp struct {
		Message string      `json:"message"`
		Quiz    models.Quiz `json:"quiz"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Quiz.Questions[0].Answer != "b" {
		t.Errorf("Expected stored answer 'b', got %q", resp.Quiz.Questions[0].Answer)
	}
}

func TestCreateQuiz_AuthoringShape(t *testing.T) {
	// The authoring form posts a correctAnswer index instead of the
	// resolved answer text; the handler normalizes it.
	store := newFakeQuizStore()
	h := NewQuizHandler(store)
	userID := uuid.New()

	idx := 2
	body, _ := json.Marshal(models.CreateQuizRequest{
		Title:  "T",
		Author: "A",
		Questions: []models.QuestionInput{
			{Question: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: &idx},
		},
		UserID: userID.String(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/quizzez/create", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, asUser(req, userID))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	for _, q := range store.quizzes {
		if q.Questions[0].Answer != "c" {
			t.Errorf("Expected normalized answer 'c', got %q", q.Questions[0].Answer)
		}
	}
}

func TestCreateQuiz_ForAnotherUser(t *testing.T) {
	store := newFakeQuizStore()
	h := NewQuizHandler(store)

	body, _ := json.Marshal(models.CreateQuizRequest{
		Title:     "T",
		Author:    "A",
		Questions: validQuestions(),
		UserID:    uuid.NewString(),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/quizzez/create", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, asUser(req, uuid.New()))

	if rr.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", rr.Code)
	}
}

func TestEditQuiz_MissingFields(t *testing.T) {
	store := newFakeQuizStore()
	h := NewQuizHandler(store)

	body, _ := json.Marshal(models.EditQuizRequest{Title: "T", Author: "A", Questions: validQuestions()})
	req := httptest.NewRequest(http.MethodPut, "/api/quizzez/edit", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Edit(rr, asUser(req, uuid.New()))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
	if store.updateCalls != 0 {
		t.Errorf("Expected no store writes, got %d", store.updateCalls)
	}
}

func TestEditQuiz_ReplacesInFull(t *testing.T) {
	store := newFakeQuizStore()
	h := NewQuizHandler(store)
	userID := uuid.New()

	quiz := &models.Quiz{UserID: userID, Title: "Old", Author: "Old", Questions: []models.Question{
		{Question: "Old", Options: []string{"x", "y"}, Answer: "x"},
	}}
	store.Create(context.Background(), quiz)
	store.createCalls = 0

	body, _ := json.Marshal(models.EditQuizRequest{
		QuizID:    quiz.ID.String(),
		Title:     "New",
		Author:    "New Author",
		Questions: validQuestions(),
	})

	req := httptest.NewRequest(http.MethodPut, "/api/quizzez/edit", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Edit(rr, asUser(req, userID))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if store.quizzes[quiz.ID].Title != "New" {
		t.Errorf("Expected title replaced, got %q", store.quizzes[quiz.ID].Title)
	}
	if store.quizzes[quiz.ID].Questions[0].Question != "Q1" {
		t.Error("Expected questions replaced in full")
	}
}

func TestEditQuiz_NotOwner(t *testing.T) {
	store := newFakeQuizStore()
	h := NewQuizHandler(store)

	quiz := &models.Quiz{UserID: uuid.New(), Title: "T", Author: "A"}
	store.Create(context.Background(), quiz)

	body, _ := json.Marshal(models.EditQuizRequest{
		QuizID:    quiz.ID.String(),
		Title:     "New",
		Author:    "New",
		Questions: validQuestions(),
	})

	req := httptest.NewRequest(http.MethodPut, "/api/quizzez/edit", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Edit(rr, asUser(req, uuid.New()))

	if rr.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", rr.Code)
	}
}

func TestDeleteQuiz_MissingQuizID(t *testing.T) {
	store := newFakeQuizStore()
	h := NewQuizHandler(store)

	body, _ := json.Marshal(models.DeleteQuizRequest{})
	req := httptest.NewRequest(http.MethodDelete, "/api/quizzez/delete", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Delete(rr, asUser(req, uuid.New()))

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rr.Code)
	}
	if store.deleteCalls != 0 {
		t.Errorf("Expected no store writes, got %d", store.deleteCalls)
	}
}

func TestDeleteQuiz_Success(t *testing.T) {
	store := newFakeQuizStore()
	h := NewQuizHandler(store)
	userID := uuid.New()

	quiz := &models.Quiz{UserID: userID, Title: "T", Author: "A"}
	store.Create(context.Background(), quiz)

	body, _ := json.Marshal(models.DeleteQuizRequest{QuizID: quiz.ID.String()})
	req := httptest.NewRequest(http.MethodDelete, "/api/quizzez/delete", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.Delete(rr, asUser(req, userID))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if _, ok := store.quizzes[quiz.ID]; ok {
		t.Error("Expected quiz removed from store")
	}
}

func TestGetQuiz_StripsAnswersForTakers(t *testing.T) {
	store := newFakeQuizStore()
	h := NewQuizHandler(store)
	owner := uuid.New()

	quiz := &models.Quiz{UserID: owner, Title: "T", Author: "A", Questions: []models.Question{
		{Question: "Q1", Options: []string{"a", "b", "c", "d"}, Answer: "b"},
	}}
	store.Create(context.Background(), quiz)

	r := chi.NewRouter()
	r.Get("/api/quizzez/{quizId}", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/api/quizzez/"+quiz.ID.String(), nil)
	rr := doRequest(r, asUser(req, uuid.New()))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if bytes.Contains(rr.Body.Bytes(), []byte(`"answer"`)) {
		t.Error("Taker view must not include answers")
	}
}

func TestGetQuiz_OwnerGetsDerivedIndex(t *testing.T) {
	store := newFakeQuizStore()
	h := NewQuizHandler(store)
	owner := uuid.New()

	quiz := &models.Quiz{UserID: owner, Title: "T", Author: "A", Questions: []models.Question{
		{Question: "Q1", Options: []string{"a", "b", "c", "d"}, Answer: "c"},
	}}
	store.Create(context.Background(), quiz)

	r := chi.NewRouter()
	r.Get("/api/quizzez/{quizId}", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/api/quizzez/"+quiz.ID.String(), nil)
	rr := doRequest(r, asUser(req, owner))

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var resp struct {
		Questions []struct {
			Answer        string `json:"answer"`
			CorrectAnswer int    `json:"correctAnswer"`
		} `json:"questions"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Questions[0].CorrectAnswer != 2 {
		t.Errorf("Expected derived index 2, got %d", resp.Questions[0].CorrectAnswer)
	}
	if resp.Questions[0].Answer != "c" {
		t.Errorf("Expected answer 'c', got %q", resp.Questions[0].Answer)
	}
}

func TestGetQuiz_NotFound(t *testing.T) {
	store := newFakeQuizStore()
	h := NewQuizHandler(store)

	r := chi.NewRouter()
	r.Get("/api/quizzez/{quizId}", h.Get)

	req := httptest.NewRequest(http.MethodGet, "/api/quizzez/"+uuid.NewString(), nil)
	rr := doRequest(r, asUser(req, uuid.New()))

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}
