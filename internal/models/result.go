package models

import (
	"time"

	"github.com/google/uuid"
)

type QuizResult struct {
	ID        uuid.UUID `json:"id"`
	QuizID    uuid.UUID `json:"quiz_id"`
	UserID    uuid.UUID `json:"user_id"`
	Score     float64   `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

type SubmitResultRequest struct {
	QuizID string   `json:"quizId"`
	UserID string   `json:"userId"`
	Score  *float64 `json:"score"`
}

// TakeQuizRequest carries the answer map for server-side scoring. Keys are
// question indexes, values the selected option text.
type TakeQuizRequest struct {
	UserID  string         `json:"userId"`
	Answers map[int]string `json:"answers"`
}

// QuizStats is the dashboard enrichment for a single quiz: how many results
// exist and their mean score, rounded to 2 decimal places.
type QuizStats struct {
	Takers   int     `json:"takers"`
	AvgScore float64 `json:"avgScore"`
}

type DashboardQuiz struct {
	Quiz
	QuizStats
}
