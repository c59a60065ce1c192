package services

import (
	"errors"

	"quizmaker-backend/internal/models"
)

// ErrNoQuestions is returned when a quiz with no questions is scored. The
// percentage is undefined in that case, so scoring fails fast instead of
// dividing by zero.
var ErrNoQuestions = errors.New("quiz has no questions")

// Score grades an answer map (question index → selected option text)
// against a quiz's questions and returns the percentage of correct answers.
// Completeness of the answer map is the caller's concern; unanswered
// questions simply count as wrong here.
func Score(questions []models.Question, answers map[int]string) (float64, error) {
	if len(questions) == 0 {
		return 0, ErrNoQuestions
	}

	correct := 0
	for i, q := range questions {
		if answers[i] == q.Answer {
			correct++
		}
	}

	return float64(correct) / float64(len(questions)) * 100, nil
}

// Unanswered lists the question indexes missing from the answer map, in
// order. Submission is rejected unless it comes back empty.
func Unanswered(questions []models.Question, answers map[int]string) []int {
	var missing []int
	for i := range questions {
		if _, ok := answers[i]; !ok {
			missing = append(missing, i)
		}
	}
	return missing
}
