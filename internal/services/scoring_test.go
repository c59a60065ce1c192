package services

import (
	"errors"
	"math"
	"testing"

	"quizmaker-backend/internal/models"
)

func sampleQuestions() []models.Question {
	return []models.Question{
		{Question: "Q1", Options: []string{"a", "b", "c", "d"}, Answer: "b"},
		{Question: "Q2", Options: []string{"w", "x", "y", "z"}, Answer: "z"},
		{Question: "Q3", Options: []string{"1", "2", "3", "4"}, Answer: "1"},
	}
}

func TestScore_AllCorrect(t *testing.T) {
	questions := sampleQuestions()
	answers := make(map[int]string)
	for i, q := range questions {
		answers[i] = q.Answer
	}

	score, err := Score(questions, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 100 {
		t.Errorf("Expected score 100, got %v", score)
	}
}

func TestScore_NoneCorrect(t *testing.T) {
	questions := sampleQuestions()
	answers := map[int]string{0: "a", 1: "w", 2: "2"}

	score, err := Score(questions, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected score 0, got %v", score)
	}
}

func TestScore_PartiallyCorrect(t *testing.T) {
	questions := sampleQuestions()
	answers := map[int]string{0: "b", 1: "w", 2: "2"}

	score, err := Score(questions, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score < 0 || score > 100 {
		t.Errorf("Score out of bounds: %v", score)
	}
	expected := float64(1) / float64(len(questions)) * 100
	if math.Abs(score-expected) > 1e-9 {
		t.Errorf("Expected score %v, got %v", expected, score)
	}
}

func TestScore_NoQuestions(t *testing.T) {
	_, err := Score(nil, map[int]string{})
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Expected ErrNoQuestions, got %v", err)
	}
}

func TestScore_SingleQuestionScenario(t *testing.T) {
	questions := []models.Question{
		{Question: "Q1", Options: []string{"a", "b", "c", "d"}, Answer: "b"},
	}

	score, err := Score(questions, map[int]string{0: "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 100 {
		t.Errorf("Expected 100 for correct answer, got %v", score)
	}

	score, err = Score(questions, map[int]string{0: "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for wrong answer, got %v", score)
	}
}

func TestUnanswered(t *testing.T) {
	questions := sampleQuestions()

	missing := Unanswered(questions, map[int]string{0: "a", 2: "1"})
	if len(missing) != 1 || missing[0] != 1 {
		t.Errorf("Expected [1], got %v", missing)
	}

	missing = Unanswered(questions, map[int]string{0: "a", 1: "w", 2: "1"})
	if len(missing) != 0 {
		t.Errorf("Expected no missing answers, got %v", missing)
	}

	missing = Unanswered(questions, nil)
	if len(missing) != 3 {
		t.Errorf("Expected all 3 questions missing, got %v", missing)
	}
}
