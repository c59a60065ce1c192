package services

import (
	"fmt"

	"quizmaker-backend/internal/models"
)

// defaultOptionCount matches the authoring form, which always renders four
// option inputs. The count is not enforced structurally; drafts built from
// stored quizzes keep whatever the quiz has.
const defaultOptionCount = 4

// DraftQuestion is the editable shape of a question. CorrectAnswer is an
// option index that only exists while editing; it is resolved to the literal
// option text when the draft is converted to its persistence shape.
type DraftQuestion struct {
	ID            int
	Question      string
	Options       []string
	CorrectAnswer int
}

// QuizDraft holds a quiz under construction or edit. Question refs are local
// sequence ids, unrelated to any persisted identity.
type QuizDraft struct {
	Title     string
	Author    string
	questions []DraftQuestion
	nextID    int
}

func NewDraft() *QuizDraft {
	return &QuizDraft{nextID: 1}
}

// DraftFromQuiz initializes a draft from a stored quiz, re-deriving each
// question's CorrectAnswer index by locating the answer text within the
// options. An answer that no longer matches any option derives to 0.
// When option texts repeat within a question, the first match wins.
func DraftFromQuiz(q *models.Quiz) *QuizDraft {
	d := NewDraft()
	d.Title = q.Title
	d.Author = q.Author
	for _, src := range q.Questions {
		dq := d.AddQuestion()
		dq.Question = src.Question
		dq.Options = append([]string(nil), src.Options...)
		dq.CorrectAnswer = indexOf(src.Options, src.Answer)
	}
	return d
}

// AddQuestion appends a question with four empty option slots and the first
// option marked correct, and returns a pointer into the draft.
func (d *QuizDraft) AddQuestion() *DraftQuestion {
	d.questions = append(d.questions, DraftQuestion{
		ID:      d.nextID,
		Options: make([]string, defaultOptionCount),
	})
	d.nextID++
	return &d.questions[len(d.questions)-1]
}

// RemoveQuestion removes by local id. Unknown ids are a no-op.
func (d *QuizDraft) RemoveQuestion(id int) {
	for i, q := range d.questions {
		if q.ID == id {
			d.questions = append(d.questions[:i], d.questions[i+1:]...)
			return
		}
	}
}

func (d *QuizDraft) SetQuestionText(id int, text string) {
	if q := d.find(id); q != nil {
		q.Question = text
	}
}

// SetOption replaces option text. The option list grows as needed so inputs
// with more than four options round-trip intact.
func (d *QuizDraft) SetOption(id, optionIndex int, text string) {
	q := d.find(id)
	if q == nil || optionIndex < 0 {
		return
	}
	for len(q.Options) <= optionIndex {
		q.Options = append(q.Options, "")
	}
	q.Options[optionIndex] = text
}

func (d *QuizDraft) SetCorrectAnswer(id, optionIndex int) {
	if q := d.find(id); q != nil {
		q.CorrectAnswer = optionIndex
	}
}

func (d *QuizDraft) Questions() []DraftQuestion {
	return d.questions
}

// Validate runs the pre-submission checks: title and author present, at
// least one question, every question text and every option non-empty, and
// every correct-answer index in range. Problems come back as one combined
// ValidationError.
func (d *QuizDraft) Validate() error {
	fields := make(map[string]string)

	if d.Title == "" {
		fields["title"] = "Title is required"
	}
	if d.Author == "" {
		fields["author"] = "Author is required"
	}
	if len(d.questions) == 0 {
		fields["questions"] = "At least one question is required"
	}

	for i, q := range d.questions {
		key := fmt.Sprintf("questions[%d]", i)
		if q.Question == "" {
			fields[key] = "Question text is required"
			continue
		}
		if len(q.Options) < 2 {
			fields[key] = "At least two options are required"
			continue
		}
		for _, opt := range q.Options {
			if opt == "" {
				fields[key] = "All options must be filled in"
				break
			}
		}
		if _, ok := fields[key]; ok {
			continue
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			fields[key] = "Correct answer must reference one of the options"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ToPayload converts the draft to its persistence shape, resolving each
// CorrectAnswer index to the literal option text. An out-of-range index is
// an error rather than a silently empty answer.
func (d *QuizDraft) ToPayload() ([]models.Question, error) {
	questions := make([]models.Question, 0, len(d.questions))
	for i, q := range d.questions {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return nil, fmt.Errorf("question %d: correct answer index %d out of range", i, q.CorrectAnswer)
		}
		questions = append(questions, models.Question{
			Question: q.Question,
			Options:  append([]string(nil), q.Options...),
			Answer:   q.Options[q.CorrectAnswer],
		})
	}
	return questions, nil
}

func (d *QuizDraft) find(id int) *DraftQuestion {
	for i := range d.questions {
		if d.questions[i].ID == id {
			return &d.questions[i]
		}
	}
	return nil
}

func indexOf(options []string, answer string) int {
	for i, opt := range options {
		if opt == answer {
			return i
		}
	}
	return 0
}

// BuildQuestions runs create/edit input through the draft machinery so both
// accepted shapes normalize the same way: a question carrying a
// correctAnswer index resolves through ToPayload, one carrying the answer
// text has its index re-derived first. Validation failures come back as a
// ValidationError.
func BuildQuestions(title, author string, inputs []models.QuestionInput) ([]models.Question, error) {
	d := NewDraft()
	d.Title = title
	d.Author = author

	for i, in := range inputs {
		q := d.AddQuestion()
		d.SetQuestionText(q.ID, in.Question)
		q.Options = q.Options[:0]
		for j, opt := range in.Options {
			d.SetOption(q.ID, j, opt)
		}
		switch {
		case in.CorrectAnswer != nil:
			d.SetCorrectAnswer(q.ID, *in.CorrectAnswer)
		case in.Answer != "":
			idx := indexOf(in.Options, in.Answer)
			if idx == 0 && (len(in.Options) == 0 || in.Options[0] != in.Answer) {
				return nil, &ValidationError{Fields: map[string]string{
					"questions": "Answer must match one of the options",
				}}
			}
			d.SetCorrectAnswer(q.ID, idx)
		default:
			return nil, &ValidationError{Fields: map[string]string{
				fmt.Sprintf("questions[%d]", i): "A correct answer is required",
			}}
		}
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d.ToPayload()
}
