package service_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	practicesession "github.com/quickreview/backend/internal/domain/practice_session"
	"github.com/quickreview/backend/internal/service"
	"github.com/quickreview/backend/internal/store"
	"github.com/quickreview/backend/internal/validation"
)

type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(int) int     { return r.n }

type fixture struct {
	store    *store.SQLiteStore
	review   *service.ReviewService
	importer *service.ImportService
}

func newFixture(t *testing.T, opts ...practicesession.Option) fixture {
	t.Helper()

	s, err := store.NewSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	logger := slog.New(slog.DiscardHandler)
	return fixture{
		store:    s,
		review:   service.NewReviewService(s, practicesession.NewSelector(opts...), logger),
		importer: service.NewImportService(s, validation.New(), logger),
	}
}

func upload(bank string, prompts ...string) service.Upload {
	up := service.Upload{BankName: bank}
	for _, p := range prompts {
		up.Questions = append(up.Questions, service.UploadItem{Question: p, Answer: "answer to " + p})
	}
	return up
}
