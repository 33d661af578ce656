package store

import (
	"context"
	"errors"

	"github.com/quickreview/backend/internal/domain/questionbank"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// BankSummary is a bank row plus the number of questions it holds.
type BankSummary struct {
	questionbank.Bank
	QuestionCount int
}

// Store is the persistence contract used by the service and HTTP layers.
// An empty bankID on the listing methods means "all banks".
type Store interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error

	SaveBank(ctx context.Context, bank *questionbank.Bank) error
	GetBank(ctx context.Context, id string) (*questionbank.Bank, error)
	GetBankByName(ctx context.Context, name string) (*questionbank.Bank, error)
	ListBanks(ctx context.Context) ([]BankSummary, error)
	DeleteBank(ctx context.Context, id string) error

	AddQuestion(ctx context.Context, q questionbank.Question) error
	GetQuestion(ctx context.Context, id string) (*questionbank.Question, error)
	ListQuestions(ctx context.Context, bankID string) ([]questionbank.Question, error)
	CountQuestions(ctx context.Context, bankID string) (int, error)
	DeleteQuestion(ctx context.Context, id string) error

	SaveRecord(ctx context.Context, r questionbank.AnswerRecord) error
	ListRecords(ctx context.Context, questionID string) ([]questionbank.AnswerRecord, error)
	ListRecordsByBank(ctx context.Context, bankID string) (map[string][]questionbank.AnswerRecord, error)
}
