// internal/service/review.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	practicesession "github.com/quickreview/backend/internal/domain/practice_session"
	"github.com/quickreview/backend/internal/domain/questionbank"
)

type reviewStore interface {
	GetBank(ctx context.Context, id string) (*questionbank.Bank, error)
	GetQuestion(ctx context.Context, id string) (*questionbank.Question, error)
	ListQuestions(ctx context.Context, bankID string) ([]questionbank.Question, error)
	CountQuestions(ctx context.Context, bankID string) (int, error)
	SaveRecord(ctx context.Context, r questionbank.AnswerRecord) error
	ListRecords(ctx context.Context, questionID string) ([]questionbank.AnswerRecord, error)
	ListRecordsByBank(ctx context.Context, bankID string) (map[string][]questionbank.AnswerRecord, error)
}

// Overview is the aggregate answer history of a bank (or of everything).
type Overview struct {
	questionbank.Summary
	TotalQuestions int
}

// ReviewService answers "what next?" and "how am I doing?". Stats are
// recomputed from the record history on every call.
type ReviewService struct {
	store    reviewStore
	selector *practicesession.Selector
	logger   *slog.Logger
}

func NewReviewService(s reviewStore, selector *practicesession.Selector, logger *slog.Logger) *ReviewService {
	return &ReviewService{
		store:    s,
		selector: selector,
		logger:   logger,
	}
}

// PickNext chooses the next question of a bank. It returns ErrNoQuestions
// when the bank is empty and the store's not-found error when the bank does
// not exist.
func (rs *ReviewService) PickNext(ctx context.Context, bankID string, prioritizeWeak bool) (questionbank.QuestionWithStats, error) {
	bank, err := rs.store.GetBank(ctx, bankID)
	if err != nil {
		return questionbank.QuestionWithStats{}, err
	}

	records, err := rs.store.ListRecordsByBank(ctx, bankID)
	if err != nil {
		return questionbank.QuestionWithStats{}, fmt.Errorf("load records: %w", err)
	}

	candidates := make([]practicesession.Candidate, len(bank.Questions))
	for i, q := range bank.Questions {
		candidates[i] = practicesession.Candidate{
			Question: q,
			Stats:    questionbank.ComputeStats(records[q.ID]),
		}
	}

	picked, ok := rs.selector.Pick(candidates, prioritizeWeak)
	if !ok {
		return questionbank.QuestionWithStats{}, ErrNoQuestions
	}

	rs.logger.DebugContext(ctx, "picked question",
		"bank_id", bankID,
		"question_id", picked.Question.ID,
		"tier", practicesession.Classify(picked.Stats).String(),
		"prioritize_weak", prioritizeWeak,
		"candidates", len(candidates),
	)

	return questionbank.QuestionWithStats{Question: picked.Question, Stats: picked.Stats}, nil
}

// RecordAnswer stores the outcome of one review.
func (rs *ReviewService) RecordAnswer(ctx context.Context, questionID string, correct bool) (questionbank.AnswerRecord, error) {
	record := questionbank.NewRecord(questionID, correct)
	if err := rs.store.SaveRecord(ctx, record); err != nil {
		return questionbank.AnswerRecord{}, err
	}

	rs.logger.InfoContext(ctx, "answer recorded",
		"question_id", questionID,
		"correct", correct,
	)
	return record, nil
}

// QuestionStats returns a question together with its current stats.
func (rs *ReviewService) QuestionStats(ctx context.Context, questionID string) (questionbank.QuestionWithStats, error) {
	q, err := rs.store.GetQuestion(ctx, questionID)
	if err != nil {
		return questionbank.QuestionWithStats{}, err
	}

	records, err := rs.store.ListRecords(ctx, questionID)
	if err != nil {
		return questionbank.QuestionWithStats{}, fmt.Errorf("load records: %w", err)
	}

	return questionbank.QuestionWithStats{Question: *q, Stats: questionbank.ComputeStats(records)}, nil
}

// ListWithStats returns the questions of a bank in creation order, each with
// its stats. An empty bankID lists every bank.
func (rs *ReviewService) ListWithStats(ctx context.Context, bankID string) ([]questionbank.QuestionWithStats, error) {
	questions, err := rs.store.ListQuestions(ctx, bankID)
	if err != nil {
		return nil, err
	}

	records, err := rs.store.ListRecordsByBank(ctx, bankID)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	out := make([]questionbank.QuestionWithStats, len(questions))
	for i, q := range questions {
		out[i] = questionbank.QuestionWithStats{Question: q, Stats: questionbank.ComputeStats(records[q.ID])}
	}
	return out, nil
}

// WeakestFirst is ListWithStats ordered by weakness.
func (rs *ReviewService) WeakestFirst(ctx context.Context, bankID string) ([]questionbank.QuestionWithStats, error) {
	items, err := rs.ListWithStats(ctx, bankID)
	if err != nil {
		return nil, err
	}
	questionbank.SortByWeakness(items)
	return items, nil
}

// Overview summarizes every answer recorded in a bank. Unknown banks yield
// an empty overview.
func (rs *ReviewService) Overview(ctx context.Context, bankID string) (Overview, error) {
	byQuestion, err := rs.store.ListRecordsByBank(ctx, bankID)
	if err != nil {
		return Overview{}, fmt.Errorf("load records: %w", err)
	}

	var all []questionbank.AnswerRecord
	for _, recs := range byQuestion {
		all = append(all, recs...)
	}

	count, err := rs.store.CountQuestions(ctx, bankID)
	if err != nil {
		return Overview{}, err
	}

	return Overview{Summary: questionbank.Summarize(all), TotalQuestions: count}, nil
}
