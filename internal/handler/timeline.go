package handler

import (
	"errors"
	"net/http"

	"anime_picker/internal/domain"
)

// GET /timeline?id=
func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("id")

	timeline, err := h.timeline.FetchTimeline(r.Context(), rawID)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, "invalid_parameter", verr.Message)
			return
		}
		writeError(w, http.StatusBadGateway, "upstream_error",
			"Failed to fetch anime data. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, timeline.View())
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
