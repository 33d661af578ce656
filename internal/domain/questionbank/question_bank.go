package questionbank

import (
	"errors"
	"strings"
	"time"

	"github.com/quickreview/backend/internal/id"
)

// DefaultBankName is the bank created on first start so a fresh install
// always has somewhere to put questions.
const DefaultBankName = "Default"

var (
	ErrEmptyName   = errors.New("bank name cannot be empty")
	ErrEmptyPrompt = errors.New("question prompt cannot be empty")
	ErrEmptyAnswer = errors.New("question answer cannot be empty")
)

type Bank struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	Questions   []Question
}

type Question struct {
	ID        string
	BankID    string
	Prompt    string
	Answer    string
	CreatedAt time.Time
}

// AnswerRecord is one review outcome. Records are never updated.
type AnswerRecord struct {
	ID         string
	QuestionID string
	Correct    bool
	CreatedAt  time.Time
}

func New(name, description string) (*Bank, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Bank{
		ID:          id.GenerateID(),
		Name:        name,
		Description: description,
		CreatedAt:   time.Now().UTC(),
		Questions:   []Question{},
	}, nil
}

// AddQuestion appends a new question to the bank and returns it.
func (b *Bank) AddQuestion(prompt, answer string) (Question, error) {
	if strings.TrimSpace(prompt) == "" {
		return Question{}, ErrEmptyPrompt
	}
	if strings.TrimSpace(answer) == "" {
		return Question{}, ErrEmptyAnswer
	}

	q := Question{
		ID:        id.GenerateID(),
		BankID:    b.ID,
		Prompt:    prompt,
		Answer:    answer,
		CreatedAt: time.Now().UTC(),
	}
	b.Questions = append(b.Questions, q)
	return q, nil
}

func NewRecord(questionID string, correct bool) AnswerRecord {
	return AnswerRecord{
		ID:         id.GenerateID(),
		QuestionID: questionID,
		Correct:    correct,
		CreatedAt:  time.Now().UTC(),
	}
}
