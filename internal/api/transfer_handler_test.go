package api_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickreview/backend/internal/api"
	"github.com/quickreview/backend/internal/service"
)

func TestUpload(t *testing.T) {
	ts := newServer(t)

	got := ts.seed("Networking", "What is TCP?", "What is UDP?")
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, "Networking", got.BankName)
	assert.NotEmpty(t, got.BankID)
	assert.Contains(t, got.Message, "Networking")

	again := ts.seed("Networking", "What is QUIC?")
	assert.Equal(t, got.BankID, again.BankID)
	assert.Len(t, ts.questions(got.BankID), 3)
}

func TestUpload_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		errMsg string
	}{
		{"malformed", `{"bank_name":`, http.StatusBadRequest, "invalid request body"},
		{"no bank name", `{"questions":[{"question":"q","answer":"a"}]}`, http.StatusBadRequest, "bank_name is required"},
		{"no questions", `{"bank_name":"Go"}`, http.StatusBadRequest, "questions is required"},
		{"item missing answer", `{"bank_name":"Go","questions":[{"question":"q"}]}`, http.StatusBadRequest, "questions[0].answer is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newServer(t)

			rec := ts.do(http.MethodPost, "/api/questions/upload", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, decode[api.ErrorResponse](t, rec).Error, tt.errMsg)

			banks := decode[[]api.BankResponse](t, ts.do(http.MethodGet, "/api/banks", nil))
			assert.Empty(t, banks)
		})
	}
}

func TestUpload_TooLarge(t *testing.T) {
	ts := newServer(t)

	body := `{"bank_name":"Go","questions":[{"question":"` + strings.Repeat("x", 2<<20) + `","answer":"a"}]}`
	rec := ts.do(http.MethodPost, "/api/questions/upload", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestExport_RoundTrip(t *testing.T) {
	ts := newServer(t)
	seeded := ts.seed("Go", "q1", "q2")

	rec := ts.do(http.MethodGet, "/api/banks/"+seeded.BankID+"/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Go.json")

	exported := decode[service.Upload](t, rec)
	assert.Equal(t, "Go", exported.BankName)
	require.Len(t, exported.Questions, 2)
	assert.Equal(t, service.UploadItem{Question: "q1", Answer: "answer to q1"}, exported.Questions[0])

	// Re-importing under a new name copies the bank.
	exported.BankName = "Go copy"
	rec = ts.do(http.MethodPost, "/api/questions/upload", exported)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 2, decode[api.UploadResponse](t, rec).Count)

	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodGet, "/api/banks/missing/export", nil).Code)
}
