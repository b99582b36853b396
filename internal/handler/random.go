package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"anime_picker/internal/domain"
)

const maxAttemptsLimit = 20

// GET /random?start=&end=&max_attempts=
func (h *Handler) GetRandom(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bounds := h.sampler.Bounds()

	start, ok := intParam(q.Get("start"), bounds.Min)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid start parameter")
		return
	}
	end, ok := intParam(q.Get("end"), bounds.Max)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid end parameter")
		return
	}
	maxAttempts, ok := intParam(q.Get("max_attempts"), 0)
	if !ok || maxAttempts < 0 || maxAttempts > maxAttemptsLimit {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid max_attempts parameter")
		return
	}

	media, err := h.sampler.SampleRandomMedia(r.Context(), start, end, maxAttempts)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			writeError(w, http.StatusBadRequest, "invalid_parameter", verr.Message)
		case domain.IsNoResultsError(err):
			writeError(w, http.StatusNotFound, "no_results", err.Error())
		case domain.IsSamplingExhaustedError(err), domain.IsGatewayProtocolError(err):
			h.logger.Error("random pick failed", "start", start, "end", end, "error", err)
			writeError(w, http.StatusBadGateway, "upstream_error",
				"Failed to fetch anime. Please try again.")
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			writeError(w, http.StatusServiceUnavailable, "request_timeout",
				"Request timed out, please try again")
		default:
			h.logger.Error("random pick failed", "start", start, "end", end, "error", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		}
		return
	}

	writeJSON(w, http.StatusOK, media.Card())
}

// intParam parses raw, falling back to def when raw is empty.
func intParam(raw string, def int) (int, bool) {
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
