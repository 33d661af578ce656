package api

import (
	"fmt"
	"net/http"

	"github.com/quickreview/backend/internal/service"
)

type UploadResponse struct {
	Message  string `json:"message" example:"uploaded 2 questions to bank \"Go concurrency\""`
	Count    int    `json:"count" example:"2"`
	BankID   string `json:"bank_id" example:"0192f0c1-7d8e-7a3b-9c4d-5e6f7a8b9c0d"`
	BankName string `json:"bank_name" example:"Go concurrency"`
}

// uploadQuestions bulk-imports questions into a bank.
// @Summary      Upload questions
// @Description  Adds every question to the named bank, creating it if needed. All questions are stored or none are.
// @Tags         Transfer
// @Accept       json
// @Produce      json
// @Param        body  body      service.Upload  true  "Questions to import"
// @Success      201   {object}  UploadResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      413   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /questions/upload [post]
func (h *Handler) uploadQuestions(w http.ResponseWriter, r *http.Request) {
	var up service.Upload
	if !h.decodeJSON(w, r, &up) {
		return
	}

	res, err := h.importer.Import(r.Context(), up)
	if h.handleError(w, r, err, "bank") {
		return
	}

	respondJSON(w, http.StatusCreated, UploadResponse{
		Message:  fmt.Sprintf("uploaded %d questions to bank %q", res.Count, res.BankName),
		Count:    res.Count,
		BankID:   res.BankID,
		BankName: res.BankName,
	})
}

// exportBank returns a bank in the upload format.
// @Summary      Export a bank
// @Description  The result can be posted back to /questions/upload.
// @Tags         Transfer
// @Produce      json
// @Param        bankID  path      string  true  "Bank ID"
// @Success      200     {object}  service.Upload
// @Failure      404     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /banks/{bankID}/export [get]
func (h *Handler) exportBank(w http.ResponseWriter, r *http.Request) {
	up, err := h.importer.Export(r.Context(), r.PathValue("bankID"))
	if h.handleError(w, r, err, "bank") {
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", up.BankName+".json"))
	respondJSON(w, http.StatusOK, up)
}
