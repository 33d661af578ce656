package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickreview/backend/internal/api"
)

func TestOverview(t *testing.T) {
	ts := newServer(t)
	a := ts.seed("a", "a1", "a2")
	ts.seed("b", "b1")
	qs := ts.questions(a.BankID)

	for _, r := range []struct {
		id   string
		body string
	}{
		{qs[0].ID, `{"is_correct":true}`},
		{qs[0].ID, `{"is_correct":true}`},
		{qs[1].ID, `{"is_correct":false}`},
	} {
		require.Equal(t, http.StatusCreated, ts.do(http.MethodPost, "/api/questions/"+r.id+"/record", r.body).Code)
	}

	rec := ts.do(http.MethodGet, "/api/stats?bank_id="+a.BankID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[api.OverviewResponse](t, rec)
	assert.Equal(t, 3, got.TotalRecords)
	assert.Equal(t, 2, got.CorrectRecords)
	assert.Equal(t, 1, got.WrongRecords)
	assert.InDelta(t, 2.0/3.0, got.Accuracy, 1e-9)
	assert.Equal(t, 2, got.TotalQuestions)

	all := decode[api.OverviewResponse](t, ts.do(http.MethodGet, "/api/stats", nil))
	assert.Equal(t, 3, all.TotalRecords)
	assert.Equal(t, 3, all.TotalQuestions)
}

func TestOverview_UnknownBankIsEmpty(t *testing.T) {
	ts := newServer(t)

	rec := ts.do(http.MethodGet, "/api/stats?bank_id=missing", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_records":0,"correct_records":0,"wrong_records":0,"accuracy":0,"total_questions":0}`, rec.Body.String())
}

func TestQuestionStats_WeakestFirst(t *testing.T) {
	ts := newServer(t)
	seeded := ts.seed("Go", "solid", "shaky", "new")
	qs := ts.questions(seeded.BankID)

	record := func(id string, bodies ...string) {
		for _, b := range bodies {
			require.Equal(t, http.StatusCreated, ts.do(http.MethodPost, "/api/questions/"+id+"/record", b).Code)
		}
	}
	record(qs[0].ID, `{"is_correct":true}`)
	record(qs[1].ID, `{"is_correct":true}`, `{"is_correct":false}`)

	rec := ts.do(http.MethodGet, "/api/stats/questions?bank_id="+seeded.BankID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[[]api.QuestionStatsResponse](t, rec)
	require.Len(t, got, 3)
	assert.Equal(t, "new", got[0].Question)
	assert.Equal(t, "shaky", got[1].Question)
	assert.Equal(t, 2, got[1].TotalCount)
	assert.InDelta(t, 0.5, got[1].Accuracy, 1e-9)
	assert.Equal(t, "solid", got[2].Question)
}
