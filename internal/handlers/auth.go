package handlers

import (
	"errors"
	"net/http"

	"github.com/zipplink/zipp/internal/auth"
	"github.com/zipplink/zipp/internal/middleware"
	"github.com/zipplink/zipp/internal/model"
	"github.com/zipplink/zipp/internal/repositories"
	"go.uber.org/zap"
)

// Signup creates an account and returns a session token for it.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := validateSignup(req.Name, req.Email, req.Password); details != nil {
		writeValidationError(w, details)
		return
	}

	ctx := r.Context()
	if _, err := h.Users.GetUserByEmail(ctx, req.Email); err == nil {
		writeMessage(w, http.StatusBadRequest, "User already exists")
		return
	} else if !errors.Is(err, repositories.ErrNotFound) {
		h.Logger.Error("signup: email lookup failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Error while signing up")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.Logger.Error("signup: hash failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Error while signing up")
		return
	}

	user := &model.User{Name: req.Name, Email: req.Email, PasswordHash: hash}
	if err := h.Users.CreateUser(ctx, user); err != nil {
		h.Logger.Error("signup: insert failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Error while signing up")
		return
	}

	token, err := h.Auth.IssueToken(user.ID)
	if err != nil {
		h.Logger.Error("signup: token issue failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Error while signing up")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User created successfully",
		"data":    user,
		"token":   token,
	})
}

// Signin verifies credentials and returns a session token. A missing
// account and a wrong password are indistinguishable to the caller.
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req model.SigninRequest
	if err := decodeJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if details := validateSignin(req.Email, req.Password); details != nil {
		writeValidationError(w, details)
		return
	}

	user, err := h.Users.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Logger.Error("signin: email lookup failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Error while signing in")
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.Auth.IssueToken(user.ID)
	if err != nil {
		h.Logger.Error("signin: token issue failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Error generating authentication token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    map[string]any{"id": user.ID, "name": user.Name, "email": user.Email},
		"token":   token,
	})
}

// Logout exists for the dashboard; tokens are stateless, so there is
// nothing to revoke server-side.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Logged out successfully")
}

// Verify confirms the bearer token and returns its account.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.Users.GetUserByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			writeMessage(w, http.StatusUnauthorized, "User not found")
			return
		}
		h.Logger.Error("verify: user lookup failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Error during verification")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Token verified successfully",
		"user":    map[string]any{"id": user.ID, "name": user.Name, "email": user.Email},
	})
}
