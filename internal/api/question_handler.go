package api

import (
	"net/http"
	"time"

	"github.com/quickreview/backend/internal/domain/questionbank"
)

// ── Request / Response types ────────────────────────────────────────────────

type AddQuestionRequest struct {
	Question string `json:"question" validate:"required" example:"What does a nil channel do on send?"`
	Answer   string `json:"answer" validate:"required" example:"Blocks forever."`
}

// QuestionResponse never carries the answer so it is safe to show before
// the user has answered.
type QuestionResponse struct {
	ID        string    `json:"id" example:"0192f0c1-7d8e-7a3b-9c4d-5e6f7a8b9c0d"`
	BankID    string    `json:"bank_id" example:"0192f0c1-7d8e-7a3b-9c4d-000000000001"`
	Question  string    `json:"question" example:"What does a nil channel do on send?"`
	CreatedAt time.Time `json:"created_at"`
}

type QuestionDetailResponse struct {
	QuestionResponse
	Answer string `json:"answer" example:"Blocks forever."`
}

type StatsResponse struct {
	CorrectCount int        `json:"correct_count" example:"3"`
	WrongCount   int        `json:"wrong_count" example:"1"`
	TotalCount   int        `json:"total_count" example:"4"`
	Accuracy     float64    `json:"accuracy" example:"0.75"`
	LastReview   *time.Time `json:"last_review"`
}

type QuestionWithStatsResponse struct {
	QuestionResponse
	Stats StatsResponse `json:"stats"`
}

func toQuestionResponse(q questionbank.Question) QuestionResponse {
	return QuestionResponse{
		ID:        q.ID,
		BankID:    q.BankID,
		Question:  q.Prompt,
		CreatedAt: q.CreatedAt,
	}
}

func toStatsResponse(s questionbank.QuestionStats) StatsResponse {
	return StatsResponse{
		CorrectCount: s.CorrectCount,
		WrongCount:   s.WrongCount,
		TotalCount:   s.TotalCount,
		Accuracy:     s.Accuracy,
		LastReview:   s.LastReview,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listQuestions lists questions with their stats.
// @Summary      List questions
// @Description  Returns questions in creation order, each with its stats. Without bank_id every bank is listed.
// @Tags         Questions
// @Produce      json
// @Param        bank_id  query     string  false  "Bank ID"
// @Success      200      {array}   QuestionWithStatsResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	items, err := h.review.ListWithStats(r.Context(), r.URL.Query().Get("bank_id"))
	if h.handleError(w, r, err, "question") {
		return
	}

	response := make([]QuestionWithStatsResponse, len(items))
	for i, item := range items {
		response[i] = QuestionWithStatsResponse{
			QuestionResponse: toQuestionResponse(item.Question),
			Stats:            toStatsResponse(item.Stats),
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// getQuestion returns a question including its answer.
// @Summary      Get a question
// @Tags         Questions
// @Produce      json
// @Param        id   path      string  true  "Question ID"
// @Success      200  {object}  QuestionDetailResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /questions/{id} [get]
func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := h.store.GetQuestion(r.Context(), r.PathValue("id"))
	if h.handleError(w, r, err, "question") {
		return
	}

	respondJSON(w, http.StatusOK, QuestionDetailResponse{
		QuestionResponse: toQuestionResponse(*q),
		Answer:           q.Answer,
	})
}

// addQuestion adds a single question to a bank.
// @Summary      Add a question
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        bankID  path      string              true  "Bank ID"
// @Param        body    body      AddQuestionRequest  true  "Question to add"
// @Success      201     {object}  QuestionDetailResponse
// @Failure      400     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /banks/{bankID}/questions [post]
func (h *Handler) addQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bank, err := h.store.GetBank(ctx, r.PathValue("bankID"))
	if h.handleError(w, r, err, "bank") {
		return
	}

	var req AddQuestionRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	q, err := bank.AddQuestion(req.Question, req.Answer)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.handleError(w, r, h.store.AddQuestion(ctx, q), "bank") {
		return
	}

	respondJSON(w, http.StatusCreated, QuestionDetailResponse{
		QuestionResponse: toQuestionResponse(q),
		Answer:           q.Answer,
	})
}

// deleteQuestion removes a question and its answer records.
// @Summary      Delete a question
// @Tags         Questions
// @Param        id  path  string  true  "Question ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /questions/{id} [delete]
func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	if h.handleError(w, r, h.store.DeleteQuestion(r.Context(), r.PathValue("id")), "question") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
