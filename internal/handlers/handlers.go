// Package handlers implements the HTTP API: account flows, link
// management, per-link analytics and the public redirect endpoint.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/zipplink/zipp/internal/model"
	"github.com/zipplink/zipp/internal/repositories"
	"github.com/zipplink/zipp/internal/service"
	"go.uber.org/zap"
)

// ClickRecorder is the detached recording slice the redirect handler
// needs: a non-blocking hand-off that reports drops.
type ClickRecorder interface {
	Enqueue(ev model.ClickEvent) bool
}

// AuthManager issues and verifies session tokens.
type AuthManager interface {
	IssueToken(userID uint) (string, error)
}

// Handler bundles the dependencies of all HTTP endpoints.
type Handler struct {
	Shortener *service.ShortenerService
	Users     repositories.UserRepositoryInterface
	Auth      AuthManager
	Recorder  ClickRecorder
	Logger    *zap.Logger
}

// NewHandler creates a Handler.
func NewHandler(shortener *service.ShortenerService, users repositories.UserRepositoryInterface,
	authManager AuthManager, recorder ClickRecorder, logger *zap.Logger) *Handler {
	return &Handler{
		Shortener: shortener,
		Users:     users,
		Auth:      authManager,
		Recorder:  recorder,
		Logger:    logger,
	}
}

// Health reports liveness and storage reachability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Shortener.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// messageData is the common {message, data} response envelope.
type messageData struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
