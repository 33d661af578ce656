package api

import (
	"net/http"
	"time"

	"github.com/quickreview/backend/internal/domain/questionbank"
	"github.com/quickreview/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateBankRequest struct {
	Name        string `json:"name" validate:"required" example:"Go concurrency"`
	Description string `json:"description" example:"Channels, goroutines and sync"`
}

type BankResponse struct {
	ID            string    `json:"id" example:"0192f0c1-7d8e-7a3b-9c4d-5e6f7a8b9c0d"`
	Name          string    `json:"name" example:"Go concurrency"`
	Description   string    `json:"description" example:"Channels, goroutines and sync"`
	CreatedAt     time.Time `json:"created_at"`
	QuestionCount int       `json:"question_count" example:"12"`
}

func toBankResponse(b store.BankSummary) BankResponse {
	return BankResponse{
		ID:            b.ID,
		Name:          b.Name,
		Description:   b.Description,
		CreatedAt:     b.CreatedAt,
		QuestionCount: b.QuestionCount,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createBank creates a new question bank.
// @Summary      Create a question bank
// @Tags         Banks
// @Accept       json
// @Produce      json
// @Param        body  body      CreateBankRequest  true  "Bank to create"
// @Success      201   {object}  BankResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      409   {object}  ErrorResponse  "name already taken"
// @Failure      500   {object}  ErrorResponse
// @Router       /banks [post]
func (h *Handler) createBank(w http.ResponseWriter, r *http.Request) {
	var req CreateBankRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	bank, err := questionbank.New(req.Name, req.Description)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.handleError(w, r, h.store.SaveBank(r.Context(), bank), "bank") {
		return
	}

	h.logger.InfoContext(r.Context(), "bank created", "bank_id", bank.ID, "bank_name", bank.Name)
	respondJSON(w, http.StatusCreated, toBankResponse(store.BankSummary{Bank: *bank}))
}

// listBanks lists all question banks, newest first.
// @Summary      List all banks
// @Tags         Banks
// @Produce      json
// @Success      200  {array}   BankResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /banks [get]
func (h *Handler) listBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.store.ListBanks(r.Context())
	if h.handleError(w, r, err, "bank") {
		return
	}

	response := make([]BankResponse, len(banks))
	for i, b := range banks {
		response[i] = toBankResponse(b)
	}
	respondJSON(w, http.StatusOK, response)
}

// getBank returns a single bank.
// @Summary      Get a question bank
// @Tags         Banks
// @Produce      json
// @Param        bankID  path      string  true  "Bank ID"
// @Success      200     {object}  BankResponse
// @Failure      404     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /banks/{bankID} [get]
func (h *Handler) getBank(w http.ResponseWriter, r *http.Request) {
	bank, err := h.store.GetBank(r.Context(), r.PathValue("bankID"))
	if h.handleError(w, r, err, "bank") {
		return
	}

	respondJSON(w, http.StatusOK, toBankResponse(store.BankSummary{
		Bank:          *bank,
		QuestionCount: len(bank.Questions),
	}))
}

// deleteBank removes a question bank with its questions and their records.
// @Summary      Delete a question bank
// @Tags         Banks
// @Param        bankID  path  string  true  "Bank ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /banks/{bankID} [delete]
func (h *Handler) deleteBank(w http.ResponseWriter, r *http.Request) {
	bankID := r.PathValue("bankID")
	if h.handleError(w, r, h.store.DeleteBank(r.Context(), bankID), "bank") {
		return
	}

	h.logger.InfoContext(r.Context(), "bank deleted", "bank_id", bankID)
	w.WriteHeader(http.StatusNoContent)
}
