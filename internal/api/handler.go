// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/quickreview/backend/internal/service"
	"github.com/quickreview/backend/internal/store"
	"github.com/quickreview/backend/internal/validation"
)

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	store          store.Store
	review         *service.ReviewService
	importer       *service.ImportService
	validate       *validator.Validate
	logger         *slog.Logger
	maxUploadBytes int64
}

// NewHandler creates a Handler with the given dependencies. maxUploadBytes
// caps request bodies; zero means no cap.
func NewHandler(
	s store.Store,
	review *service.ReviewService,
	importer *service.ImportService,
	validate *validator.Validate,
	logger *slog.Logger,
	maxUploadBytes int64,
) *Handler {
	return &Handler{
		store:          s,
		review:         review,
		importer:       importer,
		validate:       validate,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

type ErrorResponse struct {
	Error string `json:"error" example:"bank not found"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

// decodeJSON reads the request body into v. On failure it writes a 400 and
// returns false.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if !h.decodeJSON(w, r, v) {
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		h.respondInvalid(w, err)
		return false
	}
	return true
}

func (h *Handler) respondInvalid(w http.ResponseWriter, err error) {
	respondError(w, http.StatusBadRequest, validation.Describe(err))
}

// handleError maps store and service errors to HTTP responses. Returns true
// if an error was handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error, entity string) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, store.ErrAlreadyExists):
		respondError(w, http.StatusConflict, entity+" already exists")
	case errors.Is(err, service.ErrNoQuestions):
		respondError(w, http.StatusNotFound, "bank has no questions")
	case errors.Is(err, service.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "request failed", "error", err, "entity", entity)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
