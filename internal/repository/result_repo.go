package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"quizmaker-backend/internal/models"
)

type ResultRepo struct {
	pool *pgxpool.Pool
}

func NewResultRepo(pool *pgxpool.Pool) *ResultRepo {
	return &ResultRepo{pool: pool}
}

// Insert records a submission. Multiple rows per (quiz, user) are allowed;
// retakes simply add rows.
func (r *ResultRepo) Insert(ctx context.Context, res *models.QuizResult) error {
	res.ID = uuid.New()
	query := `INSERT INTO quiz_results (id, quiz_id, user_id, score)
		VALUES ($1, $2, $3, $4) RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		res.ID, res.QuizID, res.UserID, res.Score,
	).Scan(&res.CreatedAt)
}

// Latest returns the most recent result for a (quiz, user) pair.
func (r *ResultRepo) Latest(ctx context.Context, quizID, userID uuid.UUID) (*models.QuizResult, error) {
	res := &models.QuizResult{}
	query := `SELECT id, quiz_id, user_id, score, created_at
		FROM quiz_results
		WHERE quiz_id = $1 AND user_id = $2
		ORDER BY created_at DESC
		LIMIT 1`

	err := r.pool.QueryRow(ctx, query, quizID, userID).Scan(
		&res.ID, &res.QuizID, &res.UserID, &res.Score, &res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *ResultRepo) CountByQuiz(ctx context.Context, quizID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM quiz_results WHERE quiz_id = $1", quizID,
	).Scan(&count)
	return count, err
}

// AvgScoreByQuiz returns the mean score, or 0 when the quiz has no results.
// Rounding for display happens at the dashboard.
func (r *ResultRepo) AvgScoreByQuiz(ctx context.Context, quizID uuid.UUID) (float64, error) {
	var avg float64
	err := r.pool.QueryRow(ctx,
		"SELECT COALESCE(AVG(score), 0) FROM quiz_results WHERE quiz_id = $1", quizID,
	).Scan(&avg)
	return avg, err
}
