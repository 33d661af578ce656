package api

import (
	"net/http"
	"time"

	"github.com/quickreview/backend/internal/domain/questionbank"
)

// ── Request / Response types ────────────────────────────────────────────────

const (
	modeWeighted = "weighted"
	modeUniform  = "uniform"
)

type randomQuery struct {
	BankID string `json:"bank_id" validate:"required"`
	Mode   string `json:"mode" validate:"omitempty,oneof=weighted uniform"`
}

type RecordAnswerRequest struct {
	IsCorrect *bool `json:"is_correct" validate:"required" example:"true"`
}

type RecordResponse struct {
	ID         string    `json:"id" example:"0192f0c1-7d8e-7a3b-9c4d-5e6f7a8b9c0d"`
	QuestionID string    `json:"question_id" example:"0192f0c1-7d8e-7a3b-9c4d-000000000002"`
	IsCorrect  bool      `json:"is_correct" example:"true"`
	CreatedAt  time.Time `json:"created_at"`
}

type AnswerResponse struct {
	ID     string        `json:"id" example:"0192f0c1-7d8e-7a3b-9c4d-5e6f7a8b9c0d"`
	Answer string        `json:"answer" example:"Blocks forever."`
	Stats  StatsResponse `json:"stats"`
}

func toRecordResponse(rec questionbank.AnswerRecord) RecordResponse {
	return RecordResponse{
		ID:         rec.ID,
		QuestionID: rec.QuestionID,
		IsCorrect:  rec.Correct,
		CreatedAt:  rec.CreatedAt,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// randomQuestion picks the next question to review.
// @Summary      Next question
// @Description  Picks a question from the bank. The default weighted mode favours questions with low accuracy and, within an accuracy band, those not seen for longest. The answer is not included.
// @Tags         Review
// @Produce      json
// @Param        bank_id  query     string  true   "Bank ID"
// @Param        mode     query     string  false  "weighted (default) or uniform"  Enums(weighted, uniform)
// @Success      200      {object}  QuestionResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse  "unknown bank or bank has no questions"
// @Failure      500      {object}  ErrorResponse
// @Router       /questions/random [get]
func (h *Handler) randomQuestion(w http.ResponseWriter, r *http.Request) {
	q := randomQuery{
		BankID: r.URL.Query().Get("bank_id"),
		Mode:   r.URL.Query().Get("mode"),
	}
	if err := h.validate.Struct(q); err != nil {
		h.respondInvalid(w, err)
		return
	}

	picked, err := h.review.PickNext(r.Context(), q.BankID, q.Mode != modeUniform)
	if h.handleError(w, r, err, "bank") {
		return
	}

	respondJSON(w, http.StatusOK, toQuestionResponse(picked.Question))
}

// getAnswer reveals a question's answer together with its stats.
// @Summary      Reveal answer
// @Tags         Review
// @Produce      json
// @Param        id   path      string  true  "Question ID"
// @Success      200  {object}  AnswerResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /questions/{id}/answer [get]
func (h *Handler) getAnswer(w http.ResponseWriter, r *http.Request) {
	item, err := h.review.QuestionStats(r.Context(), r.PathValue("id"))
	if h.handleError(w, r, err, "question") {
		return
	}

	respondJSON(w, http.StatusOK, AnswerResponse{
		ID:     item.Question.ID,
		Answer: item.Question.Answer,
		Stats:  toStatsResponse(item.Stats),
	})
}

// recordAnswer stores whether the user answered a question correctly.
// @Summary      Record an answer
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Question ID"
// @Param        body  body      RecordAnswerRequest  true  "Outcome"
// @Success      201   {object}  RecordResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /questions/{id}/record [post]
func (h *Handler) recordAnswer(w http.ResponseWriter, r *http.Request) {
	var req RecordAnswerRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	rec, err := h.review.RecordAnswer(r.Context(), r.PathValue("id"), *req.IsCorrect)
	if h.handleError(w, r, err, "question") {
		return
	}

	respondJSON(w, http.StatusCreated, toRecordResponse(rec))
}
