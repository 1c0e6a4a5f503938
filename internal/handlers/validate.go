package handlers

import (
	"net/http"
	"net/mail"
	"net/url"
	"strings"
)

// validation mirrors the request schemas the dashboard submits against.

type validationDetails map[string]string

func writeValidationError(w http.ResponseWriter, details validationDetails) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":   "Validation Error",
		"details": details,
	})
}

func validateOriginalURL(raw string) validationDetails {
	u, err := url.ParseRequestURI(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return validationDetails{"originalUrl": "Invalid URL format"}
	}
	return nil
}

func validateSignup(name, email, password string) validationDetails {
	details := validationDetails{}
	if strings.TrimSpace(name) == "" {
		details["name"] = "Name is required"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		details["email"] = "Invalid email address"
	}
	if len(password) < 6 {
		details["password"] = "Password must be at least 6 characters"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

func validateSignin(email, password string) validationDetails {
	details := validationDetails{}
	if _, err := mail.ParseAddress(email); err != nil {
		details["email"] = "Invalid email address"
	}
	if password == "" {
		details["password"] = "Password is required"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}
