// internal/api/router.go
package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// RegisterRoutes mounts the JSON API under /api together with /health and
// the Swagger UI.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Banks
	mux.HandleFunc("GET /api/banks", h.listBanks)
	mux.HandleFunc("POST /api/banks", h.createBank)
	mux.HandleFunc("GET /api/banks/{bankID}", h.getBank)
	mux.HandleFunc("DELETE /api/banks/{bankID}", h.deleteBank)
	mux.HandleFunc("POST /api/banks/{bankID}/questions", h.addQuestion)
	mux.HandleFunc("GET /api/banks/{bankID}/export", h.exportBank)

	// Questions
	mux.HandleFunc("GET /api/questions", h.listQuestions)
	mux.HandleFunc("GET /api/questions/random", h.randomQuestion)
	mux.HandleFunc("POST /api/questions/upload", h.uploadQuestions)
	mux.HandleFunc("GET /api/questions/{id}", h.getQuestion)
	mux.HandleFunc("DELETE /api/questions/{id}", h.deleteQuestion)
	mux.HandleFunc("GET /api/questions/{id}/answer", h.getAnswer)
	mux.HandleFunc("POST /api/questions/{id}/record", h.recordAnswer)

	// Stats
	mux.HandleFunc("GET /api/stats", h.getOverview)
	mux.HandleFunc("GET /api/stats/questions", h.getQuestionStats)
}
