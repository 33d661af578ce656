// internal/service/importer.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-playground/validator/v10"

	"github.com/quickreview/backend/internal/domain/questionbank"
	"github.com/quickreview/backend/internal/store"
	"github.com/quickreview/backend/internal/validation"
	"github.com/quickreview/backend/internal/worker"
)

// Upload is the bulk import format. Export produces the same shape so a
// bank can be moved between installs.
type Upload struct {
	BankName    string       `json:"bank_name" validate:"required"`
	Description string       `json:"description,omitempty"`
	Questions   []UploadItem `json:"questions" validate:"required,min=1,dive"`
}

type UploadItem struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type ImportResult struct {
	BankID   string
	BankName string
	Count    int
}

// FileResult is the outcome of importing one file.
type FileResult struct {
	Path   string
	Result ImportResult
	Err    error
}

type importStore interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	SaveBank(ctx context.Context, bank *questionbank.Bank) error
	GetBank(ctx context.Context, id string) (*questionbank.Bank, error)
	GetBankByName(ctx context.Context, name string) (*questionbank.Bank, error)
	AddQuestion(ctx context.Context, q questionbank.Question) error
}

type ImportService struct {
	store    importStore
	validate *validator.Validate
	logger   *slog.Logger
}

func NewImportService(s importStore, validate *validator.Validate, logger *slog.Logger) *ImportService {
	return &ImportService{
		store:    s,
		validate: validate,
		logger:   logger,
	}
}

// Import adds every question of up to the bank named up.BankName, creating
// the bank if needed. Either all questions are stored or none are.
func (is *ImportService) Import(ctx context.Context, up Upload) (ImportResult, error) {
	if err := is.validate.Struct(up); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %s", ErrInvalidInput, validation.Describe(err))
	}

	var result ImportResult
	err := is.store.RunInTx(ctx, func(ctx context.Context) error {
		bank, _, err := is.getOrCreate(ctx, up.BankName, up.Description)
		if err != nil {
			return err
		}

		for i, item := range up.Questions {
			q, err := bank.AddQuestion(item.Question, item.Answer)
			if err != nil {
				return fmt.Errorf("%w: questions[%d]: %v", ErrInvalidInput, i, err)
			}
			if err := is.store.AddQuestion(ctx, q); err != nil {
				return fmt.Errorf("add question %d: %w", i, err)
			}
		}

		result = ImportResult{BankID: bank.ID, BankName: bank.Name, Count: len(up.Questions)}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}

	is.logger.InfoContext(ctx, "questions imported",
		"bank_id", result.BankID,
		"bank_name", result.BankName,
		"count", result.Count,
	)
	return result, nil
}

// ImportFiles decodes the files concurrently and imports them one by one in
// the order given. A failing file does not stop the others; the returned
// error joins every failure.
func (is *ImportService) ImportFiles(ctx context.Context, paths []string) ([]FileResult, error) {
	type decoded struct {
		upload Upload
		err    error
	}

	uploads := worker.Map(runtime.NumCPU(), paths, func(path string) decoded {
		up, err := readUpload(path)
		return decoded{upload: up, err: err}
	})

	results := make([]FileResult, len(paths))
	var errs []error
	for i, path := range paths {
		results[i].Path = path

		err := uploads[i].err
		if err == nil {
			results[i].Result, err = is.Import(ctx, uploads[i].upload)
		}
		if err != nil {
			results[i].Err = err
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			is.logger.WarnContext(ctx, "import failed", "path", path, "error", err)
		}
	}
	return results, errors.Join(errs...)
}

func readUpload(path string) (Upload, error) {
	f, err := os.Open(path)
	if err != nil {
		return Upload{}, err
	}
	defer f.Close()

	var up Upload
	if err := json.NewDecoder(f).Decode(&up); err != nil {
		return Upload{}, fmt.Errorf("%w: decode: %v", ErrInvalidInput, err)
	}
	return up, nil
}

// Export returns a bank in the upload format.
func (is *ImportService) Export(ctx context.Context, bankID string) (Upload, error) {
	bank, err := is.store.GetBank(ctx, bankID)
	if err != nil {
		return Upload{}, err
	}

	up := Upload{
		BankName:    bank.Name,
		Description: bank.Description,
		Questions:   make([]UploadItem, len(bank.Questions)),
	}
	for i, q := range bank.Questions {
		up.Questions[i] = UploadItem{Question: q.Prompt, Answer: q.Answer}
	}
	return up, nil
}

// EnsureBank returns the bank with the given name, creating it when absent.
func (is *ImportService) EnsureBank(ctx context.Context, name, description string) (*questionbank.Bank, error) {
	bank, created, err := is.getOrCreate(ctx, name, description)
	if err != nil {
		return nil, err
	}
	if created {
		is.logger.InfoContext(ctx, "bank created", "bank_id", bank.ID, "bank_name", bank.Name)
	}
	return bank, nil
}

func (is *ImportService) getOrCreate(ctx context.Context, name, description string) (*questionbank.Bank, bool, error) {
	bank, err := questionbank.New(name, description)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	existing, err := is.store.GetBankByName(ctx, bank.Name)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, store.ErrNotFound):
		return nil, false, err
	}

	if err := is.store.SaveBank(ctx, bank); err != nil {
		if !errors.Is(err, store.ErrAlreadyExists) {
			return nil, false, err
		}
		// Lost a race with a concurrent create.
		existing, err := is.store.GetBankByName(ctx, bank.Name)
		return existing, false, err
	}
	return bank, true, nil
}
