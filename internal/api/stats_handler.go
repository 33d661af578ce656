package api

import "net/http"

type OverviewResponse struct {
	TotalRecords   int     `json:"total_records" example:"40"`
	CorrectRecords int     `json:"correct_records" example:"30"`
	WrongRecords   int     `json:"wrong_records" example:"10"`
	Accuracy       float64 `json:"accuracy" example:"0.75"`
	TotalQuestions int     `json:"total_questions" example:"12"`
}

type QuestionStatsResponse struct {
	ID       string `json:"id" example:"0192f0c1-7d8e-7a3b-9c4d-5e6f7a8b9c0d"`
	Question string `json:"question" example:"What does a nil channel do on send?"`
	StatsResponse
}

// getOverview summarizes all recorded answers.
// @Summary      Overall stats
// @Description  Answer counts and accuracy for one bank, or for everything when bank_id is omitted. Unknown banks report zeros.
// @Tags         Stats
// @Produce      json
// @Param        bank_id  query     string  false  "Bank ID"
// @Success      200      {object}  OverviewResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /stats [get]
func (h *Handler) getOverview(w http.ResponseWriter, r *http.Request) {
	o, err := h.review.Overview(r.Context(), r.URL.Query().Get("bank_id"))
	if h.handleError(w, r, err, "stats") {
		return
	}

	respondJSON(w, http.StatusOK, OverviewResponse{
		TotalRecords:   o.Total,
		CorrectRecords: o.Correct,
		WrongRecords:   o.Wrong,
		Accuracy:       o.Accuracy,
		TotalQuestions: o.TotalQuestions,
	})
}

// getQuestionStats lists per-question stats, weakest first.
// @Summary      Per-question stats
// @Description  Sorted by accuracy ascending, then by number of attempts descending.
// @Tags         Stats
// @Produce      json
// @Param        bank_id  query     string  false  "Bank ID"
// @Success      200      {array}   QuestionStatsResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /stats/questions [get]
func (h *Handler) getQuestionStats(w http.ResponseWriter, r *http.Request) {
	items, err := h.review.WeakestFirst(r.Context(), r.URL.Query().Get("bank_id"))
	if h.handleError(w, r, err, "stats") {
		return
	}

	response := make([]QuestionStatsResponse, len(items))
	for i, item := range items {
		response[i] = QuestionStatsResponse{
			ID:            item.Question.ID,
			Question:      item.Question.Prompt,
			StatsResponse: toStatsResponse(item.Stats),
		}
	}
	respondJSON(w, http.StatusOK, response)
}
