package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Question is the persisted shape: the correct answer is stored as the
// literal option text, not an index.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// QuestionInput is the shape accepted on create/edit. Older clients send
// the authoring form as-is, with a correctAnswer index instead of the
// resolved answer string; either field is accepted.
type QuestionInput struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	Answer        string   `json:"answer,omitempty"`
	CorrectAnswer *int     `json:"correctAnswer,omitempty"`
}

type Quiz struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"created_at"`
}

type CreateQuizRequest struct {
	Title     string          `json:"title"`
	Author    string          `json:"author"`
	Questions []QuestionInput `json:"questions"`
	UserID    string          `json:"user_id"`
}

type EditQuizRequest struct {
	QuizID    string          `json:"quizId"`
	Title     string          `json:"title"`
	Author    string          `json:"author"`
	Questions []QuestionInput `json:"questions"`
}

type DeleteQuizRequest struct {
	QuizID string `json:"quizId"`
}

// DecodeQuestions normalizes the stored questions column. Legacy rows hold
// a JSON-encoded string containing the array rather than the array itself;
// both shapes are handled here so the ambiguity never leaks past the
// repository boundary.
func DecodeQuestions(raw json.RawMessage) ([]Question, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	data := []byte(raw)
	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, fmt.Errorf("failed to decode questions string: %w", err)
		}
		data = []byte(inner)
	}

	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}
	return questions, nil
}
