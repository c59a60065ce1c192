package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"quizmaker-backend/internal/models"
)

type QuizRepo struct {
	pool *pgxpool.Pool
}

func NewQuizRepo(pool *pgxpool.Pool) *QuizRepo {
	return &QuizRepo{pool: pool}
}

func (r *QuizRepo) Create(ctx context.Context, q *models.Quiz) error {
	q.ID = uuid.New()
	questionsBytes, err := json.Marshal(q.Questions)
	if err != nil {
		return err
	}

	query := `INSERT INTO quizzes (id, user_id, title, author, questions)
		VALUES ($1, $2, $3, $4, $5) RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		q.ID, q.UserID, q.Title, q.Author, questionsBytes,
	).Scan(&q.CreatedAt)
}

func (r *QuizRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Quiz, error) {
	q := &models.Quiz{}
	var raw json.RawMessage
	query := `SELECT id, user_id, title, author, questions, created_at
		FROM quizzes WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&q.ID, &q.UserID, &q.Title, &q.Author, &raw, &q.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	q.Questions, err = models.DecodeQuestions(raw)
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (r *QuizRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Quiz, error) {
	query := `SELECT id, user_id, title, author, questions, created_at
		FROM quizzes WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quizzes []*models.Quiz
	for rows.Next() {
		q := &models.Quiz{}
		var raw json.RawMessage
		if err := rows.Scan(&q.ID, &q.UserID, &q.Title, &q.Author, &raw, &q.CreatedAt); err != nil {
			return nil, err
		}
		q.Questions, err = models.DecodeQuestions(raw)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	return quizzes, rows.Err()
}

// Update replaces title, author and questions in full. Last write wins;
// there is no version check.
func (r *QuizRepo) Update(ctx context.Context, id uuid.UUID, title, author string, questions []models.Question) error {
	questionsBytes, err := json.Marshal(questions)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx,
		"UPDATE quizzes SET title = $1, author = $2, questions = $3 WHERE id = $4",
		title, author, questionsBytes, id,
	)
	return err
}

func (r *QuizRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM quizzes WHERE id = $1", id)
	return err
}
