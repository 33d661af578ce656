// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/quickreview/backend/internal/domain/questionbank"
)

const (
	bankColumns     = "b.id, b.name, b.description, b.created_at"
	questionColumns = "id, bank_id, prompt, answer, created_at"
	recordColumns   = "r.id, r.question_id, r.is_correct, r.created_at"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLite opens the database at path, turns on foreign keys and applies
// pending migrations.
func NewSQLite(ctx context.Context, path string, busyTimeout time.Duration) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn(path, busyTimeout))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if _, err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func dsn(path string, busyTimeout time.Duration) string {
	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeout.Milliseconds()))
	q.Set("_time_format", "sqlite")
	return "file:" + path + "?" + q.Encode()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for maintenance commands.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// RunInTx runs fn inside a transaction carried by ctx. It commits when fn
// returns nil and rolls back on error or panic.
func (s *SQLiteStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return s.db
}

func (s *SQLiteStore) exec(ctx context.Context, b sq.Sqlizer) (sql.Result, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return s.conn(ctx).ExecContext(ctx, query, args...)
}

func (s *SQLiteStore) query(ctx context.Context, b sq.Sqlizer) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return s.conn(ctx).QueryContext(ctx, query, args...)
}

func (s *SQLiteStore) queryRow(ctx context.Context, b sq.Sqlizer) (*sql.Row, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return s.conn(ctx).QueryRowContext(ctx, query, args...), nil
}

// ============================================================================
// Banks
// ============================================================================

func (s *SQLiteStore) SaveBank(ctx context.Context, bank *questionbank.Bank) error {
	_, err := s.exec(ctx, sq.Insert("banks").
		Columns("id", "name", "description", "created_at").
		Values(bank.ID, bank.Name, bank.Description, bank.CreatedAt))
	return mapError(err, "bank", bank.Name)
}

// GetBank returns the bank with its questions loaded.
func (s *SQLiteStore) GetBank(ctx context.Context, id string) (*questionbank.Bank, error) {
	bank, err := s.getBank(ctx, sq.Eq{"b.id": id}, id)
	if err != nil {
		return nil, err
	}

	bank.Questions, err = s.ListQuestions(ctx, bank.ID)
	if err != nil {
		return nil, err
	}
	return bank, nil
}

// GetBankByName looks a bank up by its unique name. Questions are not loaded.
func (s *SQLiteStore) GetBankByName(ctx context.Context, name string) (*questionbank.Bank, error) {
	return s.getBank(ctx, sq.Eq{"b.name": name}, name)
}

func (s *SQLiteStore) getBank(ctx context.Context, where sq.Eq, key string) (*questionbank.Bank, error) {
	row, err := s.queryRow(ctx, sq.Select(bankColumns).From("banks b").Where(where))
	if err != nil {
		return nil, err
	}

	var bank questionbank.Bank
	if err := row.Scan(&bank.ID, &bank.Name, &bank.Description, &bank.CreatedAt); err != nil {
		return nil, mapError(err, "bank", key)
	}
	bank.Questions = []questionbank.Question{}
	return &bank, nil
}

// ListBanks returns every bank, newest first, with its question count.
func (s *SQLiteStore) ListBanks(ctx context.Context) ([]BankSummary, error) {
	rows, err := s.query(ctx, sq.Select(bankColumns, "COUNT(q.id)").
		From("banks b").
		LeftJoin("questions q ON q.bank_id = b.id").
		GroupBy("b.id").
		OrderBy("b.created_at DESC", "b.id DESC"))
	if err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}
	defer rows.Close()

	banks := []BankSummary{}
	for rows.Next() {
		var b BankSummary
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.CreatedAt, &b.QuestionCount); err != nil {
			return nil, fmt.Errorf("scan bank: %w", err)
		}
		banks = append(banks, b)
	}
	return banks, rows.Err()
}

// DeleteBank removes a bank; its questions and their records go with it.
func (s *SQLiteStore) DeleteBank(ctx context.Context, id string) error {
	res, err := s.exec(ctx, sq.Delete("banks").Where(sq.Eq{"id": id}))
	if err != nil {
		return mapError(err, "bank", id)
	}
	return expectAffected(res, "bank", id)
}

// ============================================================================
// Questions
// ============================================================================

func (s *SQLiteStore) AddQuestion(ctx context.Context, q questionbank.Question) error {
	_, err := s.exec(ctx, sq.Insert("questions").
		Columns("id", "bank_id", "prompt", "answer", "created_at").
		Values(q.ID, q.BankID, q.Prompt, q.Answer, q.CreatedAt))
	return mapError(err, "bank", q.BankID)
}

func (s *SQLiteStore) GetQuestion(ctx context.Context, id string) (*questionbank.Question, error) {
	row, err := s.queryRow(ctx, sq.Select(questionColumns).From("questions").Where(sq.Eq{"id": id}))
	if err != nil {
		return nil, err
	}

	var q questionbank.Question
	if err := row.Scan(&q.ID, &q.BankID, &q.Prompt, &q.Answer, &q.CreatedAt); err != nil {
		return nil, mapError(err, "question", id)
	}
	return &q, nil
}

// ListQuestions returns questions in creation order.
func (s *SQLiteStore) ListQuestions(ctx context.Context, bankID string) ([]questionbank.Question, error) {
	b := sq.Select(questionColumns).From("questions").OrderBy("created_at", "id")
	if bankID != "" {
		b = b.Where(sq.Eq{"bank_id": bankID})
	}

	rows, err := s.query(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	questions := []questionbank.Question{}
	for rows.Next() {
		var q questionbank.Question
		if err := rows.Scan(&q.ID, &q.BankID, &q.Prompt, &q.Answer, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *SQLiteStore) CountQuestions(ctx context.Context, bankID string) (int, error) {
	b := sq.Select("COUNT(*)").From("questions")
	if bankID != "" {
		b = b.Where(sq.Eq{"bank_id": bankID})
	}

	row, err := s.queryRow(ctx, b)
	if err != nil {
		return 0, err
	}

	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) DeleteQuestion(ctx context.Context, id string) error {
	res, err := s.exec(ctx, sq.Delete("questions").Where(sq.Eq{"id": id}))
	if err != nil {
		return mapError(err, "question", id)
	}
	return expectAffected(res, "question", id)
}

// ============================================================================
// Answer records
// ============================================================================

// SaveRecord stores an answer. A record for an unknown question fails with
// ErrNotFound.
func (s *SQLiteStore) SaveRecord(ctx context.Context, r questionbank.AnswerRecord) error {
	_, err := s.exec(ctx, sq.Insert("answer_records").
		Columns("id", "question_id", "is_correct", "created_at").
		Values(r.ID, r.QuestionID, r.Correct, r.CreatedAt))
	return mapError(err, "question", r.QuestionID)
}

func (s *SQLiteStore) ListRecords(ctx context.Context, questionID string) ([]questionbank.AnswerRecord, error) {
	records := []questionbank.AnswerRecord{}
	err := s.scanRecords(ctx, sq.Eq{"r.question_id": questionID}, func(r questionbank.AnswerRecord) {
		records = append(records, r)
	})
	return records, err
}

// ListRecordsByBank returns every record of the bank's questions keyed by
// question id. Questions without records have no entry.
func (s *SQLiteStore) ListRecordsByBank(ctx context.Context, bankID string) (map[string][]questionbank.AnswerRecord, error) {
	var where sq.Sqlizer
	if bankID != "" {
		where = sq.Eq{"q.bank_id": bankID}
	}

	byQuestion := make(map[string][]questionbank.AnswerRecord)
	err := s.scanRecords(ctx, where, func(r questionbank.AnswerRecord) {
		byQuestion[r.QuestionID] = append(byQuestion[r.QuestionID], r)
	})
	return byQuestion, err
}

func (s *SQLiteStore) scanRecords(ctx context.Context, where sq.Sqlizer, fn func(questionbank.AnswerRecord)) error {
	b := sq.Select(recordColumns).
		From("answer_records r").
		Join("questions q ON q.id = r.question_id").
		OrderBy("r.created_at", "r.id")
	if where != nil {
		b = b.Where(where)
	}

	rows, err := s.query(ctx, b)
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r questionbank.AnswerRecord
		if err := rows.Scan(&r.ID, &r.QuestionID, &r.Correct, &r.CreatedAt); err != nil {
			return fmt.Errorf("scan record: %w", err)
		}
		fn(r)
	}
	return rows.Err()
}
