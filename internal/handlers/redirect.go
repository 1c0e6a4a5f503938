package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/zipplink/zipp/internal/model"
	"github.com/zipplink/zipp/internal/repositories"
	"go.uber.org/zap"
)

// Redirect resolves a short code and answers immediately; the click is
// handed to the recorder and persisted behind the response. The lookup
// is the only storage call on this path.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "shortCode")

	urlObj, err := h.Shortener.Resolve(r.Context(), code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "URL not found")
			return
		}
		h.Logger.Error("resolve failed", zap.String("code", code), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Fire and forget: Enqueue never blocks, and a full buffer only
	// costs the click, not the redirect.
	h.Recorder.Enqueue(model.ClickEvent{
		URLID:     urlObj.ID,
		UserAgent: r.UserAgent(),
		ClientIP:  clientAddressHint(r),
	})

	writeJSON(w, http.StatusOK, model.RedirectResponse{
		Success: true,
		Data: model.RedirectData{
			OriginalURL: urlObj.OriginalURL,
			ShortURL:    urlObj.ShortURL,
			ID:          urlObj.ID,
		},
	})
}

// clientAddressHint returns the forwarded client address when a proxy
// supplied one. Without it the hint stays empty and the geo lookup
// resolves the service's own egress address instead of the caller's.
func clientAddressHint(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return ""
	}
	return strings.TrimSpace(strings.Split(forwarded, ",")[0])
}
