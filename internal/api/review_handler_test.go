package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickreview/backend/internal/api"
	practicesession "github.com/quickreview/backend/internal/domain/practice_session"
)

func TestRandomQuestion_OmitsAnswer(t *testing.T) {
	ts := newServer(t)
	seeded := ts.seed("Go", "q1")

	rec := ts.do(http.MethodGet, "/api/questions/random?bank_id="+seeded.BankID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	raw := decode[map[string]any](t, rec)
	assert.Equal(t, "q1", raw["question"])
	assert.NotContains(t, raw, "answer")
}

func TestRandomQuestion_Errors(t *testing.T) {
	ts := newServer(t)
	empty := decode[api.BankResponse](t, ts.do(http.MethodPost, "/api/banks", api.CreateBankRequest{Name: "empty"}))

	tests := []struct {
		name   string
		query  string
		status int
		errMsg string
	}{
		{"missing bank_id", "", http.StatusBadRequest, "bank_id is required"},
		{"bad mode", "?bank_id=" + empty.ID + "&mode=random", http.StatusBadRequest, "mode must be one of [weighted uniform]"},
		{"unknown bank", "?bank_id=missing", http.StatusNotFound, "bank not found"},
		{"empty bank", "?bank_id=" + empty.ID, http.StatusNotFound, "bank has no questions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(http.MethodGet, "/api/questions/random"+tt.query, nil)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.errMsg, decode[api.ErrorResponse](t, rec).Error)
		})
	}
}

func TestRandomQuestion_WeightedPrefersUnreviewed(t *testing.T) {
	ts := newServer(t, practicesession.WithRand(fixedRand{f: 0}))
	seeded := ts.seed("Go", "q1", "q2")
	qs := ts.questions(seeded.BankID)

	// q1 answered wrong: both stay in the low tier, q2 was never reviewed.
	require.Equal(t, http.StatusCreated, ts.do(http.MethodPost, "/api/questions/"+qs[0].ID+"/record", `{"is_correct":false}`).Code)

	for range 3 {
		rec := ts.do(http.MethodGet, "/api/questions/random?bank_id="+seeded.BankID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, qs[1].ID, decode[api.QuestionResponse](t, rec).ID)
	}
}

func TestRandomQuestion_Uniform(t *testing.T) {
	ts := newServer(t, practicesession.WithRand(fixedRand{n: 2}))
	seeded := ts.seed("Go", "q1", "q2", "q3")

	rec := ts.do(http.MethodGet, "/api/questions/random?mode=uniform&bank_id="+seeded.BankID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "q3", decode[api.QuestionResponse](t, rec).Question)
}

func TestRecordAnswer(t *testing.T) {
	ts := newServer(t)
	seeded := ts.seed("Go", "q1")
	id := ts.questions(seeded.BankID)[0].ID

	rec := ts.do(http.MethodPost, "/api/questions/"+id+"/record", `{"is_correct":false}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	got := decode[api.RecordResponse](t, rec)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, id, got.QuestionID)
	assert.False(t, got.IsCorrect)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestRecordAnswer_Errors(t *testing.T) {
	ts := newServer(t)
	seeded := ts.seed("Go", "q1")
	id := ts.questions(seeded.BankID)[0].ID

	rec := ts.do(http.MethodPost, "/api/questions/"+id+"/record", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "is_correct is required", decode[api.ErrorResponse](t, rec).Error)

	rec = ts.do(http.MethodPost, "/api/questions/missing/record", `{"is_correct":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "question not found", decode[api.ErrorResponse](t, rec).Error)
}

func TestGetAnswer(t *testing.T) {
	ts := newServer(t)
	seeded := ts.seed("Go", "q1")
	id := ts.questions(seeded.BankID)[0].ID

	for _, body := range []string{`{"is_correct":true}`, `{"is_correct":false}`} {
		require.Equal(t, http.StatusCreated, ts.do(http.MethodPost, "/api/questions/"+id+"/record", body).Code)
	}

	rec := ts.do(http.MethodGet, "/api/questions/"+id+"/answer", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[api.AnswerResponse](t, rec)
	assert.Equal(t, "answer to q1", got.Answer)
	assert.Equal(t, 1, got.Stats.CorrectCount)
	assert.Equal(t, 1, got.Stats.WrongCount)
	assert.Equal(t, 2, got.Stats.TotalCount)
	assert.InDelta(t, 0.5, got.Stats.Accuracy, 1e-9)
	assert.NotNil(t, got.Stats.LastReview)

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/questions/missing/answer", nil).Code)
}
