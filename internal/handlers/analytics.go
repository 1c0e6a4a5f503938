package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zipplink/zipp/internal/repositories"
	"go.uber.org/zap"
)

// Analytics returns a link row plus its click aggregate for the
// dashboard detail view.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "urlID"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid URL id")
		return
	}

	analytics, err := h.Shortener.Analytics(r.Context(), uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "URL not found")
			return
		}
		h.Logger.Error("analytics failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Error fetching analytics")
		return
	}

	writeJSON(w, http.StatusOK, messageData{Message: "Analytics fetched successfully", Data: analytics})
}
