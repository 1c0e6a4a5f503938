package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zipplink/zipp/internal/middleware"
	"github.com/zipplink/zipp/internal/model"
	"github.com/zipplink/zipp/internal/repositories"
	"go.uber.org/zap"
)

// shortenData widens a stored row with the shareable short address; the
// outer field shadows the embedded short_url (the bare code).
type shortenData struct {
	*model.URLObject
	ShortURL string `json:"short_url"`
}

// ShortenURL creates a short link for the authenticated user.
func (h *Handler) ShortenURL(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req model.ShortenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := validateOriginalURL(req.OriginalURL); details != nil {
		writeValidationError(w, details)
		return
	}

	urlObj, err := h.Shortener.Shorten(r.Context(), userID, req.OriginalURL)
	if err != nil {
		h.Logger.Error("shorten failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Error generating short URL")
		return
	}

	writeJSON(w, http.StatusCreated, messageData{
		Message: "URL shortened successfully",
		Data:    shortenData{URLObject: urlObj, ShortURL: h.Shortener.ShortURLFor(urlObj.ShortURL)},
	})
}

// ListURLs returns the authenticated user's links, newest first.
func (h *Handler) ListURLs(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	urls, err := h.Shortener.ListUserURLs(r.Context(), userID)
	if err != nil {
		h.Logger.Error("list urls failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Error fetching URLs")
		return
	}
	if urls == nil {
		urls = []*model.URLObject{}
	}

	writeJSON(w, http.StatusOK, messageData{Message: "URLs fetched successfully", Data: urls})
}

// SearchURLs filters the user's links by a substring over original URL,
// short code and title.
func (h *Handler) SearchURLs(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	term := r.URL.Query().Get("query")
	urls, err := h.Shortener.SearchUserURLs(r.Context(), userID, term)
	if err != nil {
		h.Logger.Error("search urls failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Error searching URLs")
		return
	}
	if urls == nil {
		urls = []*model.URLObject{}
	}

	writeJSON(w, http.StatusOK, messageData{Message: "Search results fetched successfully", Data: urls})
}

// DeleteURL removes one of the user's links. Ownership is enforced in
// the query itself, so a foreign id is indistinguishable from a missing
// one.
func (h *Handler) DeleteURL(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	id, err := strconv.ParseUint(chi.URLParam(r, "urlID"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid URL id")
		return
	}

	deleted, err := h.Shortener.Delete(r.Context(), uint(id), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "URL not found or you don't have permission to delete it")
			return
		}
		h.Logger.Error("delete url failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Error deleting URL")
		return
	}

	writeJSON(w, http.StatusOK, messageData{Message: "URL deleted successfully", Data: deleted})
}
