package handlers

import (
	"context"

	"github.com/google/uuid"

	"quizmaker-backend/internal/models"
)

// Store interfaces cover exactly what the handlers ask of the repository
// layer; the pgx-backed repos satisfy them, tests swap in fakes.

type QuizStore interface {
	Create(ctx context.Context, q *models.Quiz) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Quiz, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Quiz, error)
	Update(ctx context.Context, id uuid.UUID, title, author string, questions []models.Question) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ResultStore interface {
	Insert(ctx context.Context, res *models.QuizResult) error
	Latest(ctx context.Context, quizID, userID uuid.UUID) (*models.QuizResult, error)
	CountByQuiz(ctx context.Context, quizID uuid.UUID) (int, error)
	AvgScoreByQuiz(ctx context.Context, quizID uuid.UUID) (float64, error)
}
