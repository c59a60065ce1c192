package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"quizmaker-backend/internal/middleware"
	"quizmaker-backend/internal/models"
)

type fakeQuizStore struct {
	quizzes     map[uuid.UUID]*models.Quiz
	createCalls int
	updateCalls int
	deleteCalls int
}

func newFakeQuizStore() *fakeQuizStore {
	return &fakeQuizStore{quizzes: make(map[uuid.UUID]*models.Quiz)}
}

func (s *fakeQuizStore) Create(ctx context.Context, q *models.Quiz) error {
	s.createCalls++
	q.ID = uuid.New()
	s.quizzes[q.ID] = q
	return nil
}

func (s *fakeQuizStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Quiz, error) {
	q, ok := s.quizzes[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return q, nil
}

func (s *fakeQuizStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Quiz, error) {
	var out []*models.Quiz
	for _, q := range s.quizzes {
		if q.UserID == userID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *fakeQuizStore) Update(ctx context.Context, id uuid.UUID, title, author string, questions []models.Question) error {
	s.updateCalls++
	if q, ok := s.quizzes[id]; ok {
		q.Title = title
		q.Author = author
		q.Questions = questions
	}
	return nil
}

func (s *fakeQuizStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleteCalls++
	delete(s.quizzes, id)
	return nil
}

type fakeResultStore struct {
	results     []*models.QuizResult
	insertCalls int
	avgByQuiz   map[uuid.UUID]float64
	countByQuiz map[uuid.UUID]int
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{
		avgByQuiz:   make(map[uuid.UUID]float64),
		countByQuiz: make(map[uuid.UUID]int),
	}
}

func (s *fakeResultStore) Insert(ctx context.Context, res *models.QuizResult) error {
	s.insertCalls++
	res.ID = uuid.New()
	s.results = append(s.results, res)
	return nil
}

func (s *fakeResultStore) Latest(ctx context.Context, quizID, userID uuid.UUID) (*models.QuizResult, error) {
	for i := len(s.results) - 1; i >= 0; i-- {
		if s.results[i].QuizID == quizID && s.results[i].UserID == userID {
			return s.results[i], nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (s *fakeResultStore) CountByQuiz(ctx context.Context, quizID uuid.UUID) (int, error) {
	return s.countByQuiz[quizID], nil
}

func (s *fakeResultStore) AvgScoreByQuiz(ctx context.Context, quizID uuid.UUID) (float64, error) {
	return s.avgByQuiz[quizID], nil
}

// asUser attaches an authenticated user to the request the way the JWT
// middleware would.
func asUser(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.UserIDKey, userID))
}

func doRequest(h http.Handler, r *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, r)
	return rr
}
