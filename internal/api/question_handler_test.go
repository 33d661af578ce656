package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickreview/backend/internal/api"
)

func TestListQuestions(t *testing.T) {
	ts := newServer(t)
	a := ts.seed("a", "a1", "a2")
	ts.seed("b", "b1")

	qs := ts.questions(a.BankID)
	require.Len(t, qs, 2)
	assert.Equal(t, "a1", qs[0].Question)
	assert.Equal(t, a.BankID, qs[0].BankID)
	assert.Zero(t, qs[0].Stats.TotalCount)
	assert.Nil(t, qs[0].Stats.LastReview)

	assert.Len(t, ts.questions(""), 3)
}

func TestGetQuestion_IncludesAnswer(t *testing.T) {
	ts := newServer(t)
	seeded := ts.seed("Go", "q1")
	id := ts.questions(seeded.BankID)[0].ID

	rec := ts.do(http.MethodGet, "/api/questions/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	q := decode[api.QuestionDetailResponse](t, rec)
	assert.Equal(t, "q1", q.Question)
	assert.Equal(t, "answer to q1", q.Answer)

	rec = ts.do(http.MethodGet, "/api/questions/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "question not found", decode[api.ErrorResponse](t, rec).Error)
}

func TestAddQuestion(t *testing.T) {
	ts := newServer(t)
	seeded := ts.seed("Go", "q1")

	rec := ts.do(http.MethodPost, "/api/banks/"+seeded.BankID+"/questions",
		api.AddQuestionRequest{Question: "q2", Answer: "a2"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	q := decode[api.QuestionDetailResponse](t, rec)
	assert.Equal(t, seeded.BankID, q.BankID)
	assert.Equal(t, "a2", q.Answer)
	assert.Len(t, ts.questions(seeded.BankID), 2)
}

func TestAddQuestion_Errors(t *testing.T) {
	ts := newServer(t)
	seeded := ts.seed("Go", "q1")
	path := "/api/banks/" + seeded.BankID + "/questions"

	rec := ts.do(http.MethodPost, path, api.AddQuestionRequest{Question: "q2"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "answer is required", decode[api.ErrorResponse](t, rec).Error)

	rec = ts.do(http.MethodPost, path, api.AddQuestionRequest{Question: " ", Answer: "a"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(http.MethodPost, "/api/banks/missing/questions", api.AddQuestionRequest{Question: "q", Answer: "a"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteQuestion(t *testing.T) {
	ts := newServer(t)
	seeded := ts.seed("Go", "q1", "q2")
	id := ts.questions(seeded.BankID)[0].ID

	require.Equal(t, http.StatusNoContent, ts.do(http.MethodDelete, "/api/questions/"+id, nil).Code)
	assert.Len(t, ts.questions(seeded.BankID), 1)
	assert.Equal(t, http.StatusNotFound, ts.do(http.MethodDelete, "/api/questions/"+id, nil).Code)
}
