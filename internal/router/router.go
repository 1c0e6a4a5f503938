package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/zipplink/zipp/internal/auth"
	"github.com/zipplink/zipp/internal/handlers"
	"github.com/zipplink/zipp/internal/middleware"
	"go.uber.org/zap"
)

// NewRouter wires all routes. The redirect route sits at the root so
// short links stay as compact as possible; everything else lives under
// its own prefix.
func NewRouter(handler *handlers.Handler, authManager *auth.Manager, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(middleware.GzipMiddleware)

	r.Get("/healthz", handler.Health)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", handler.Signup)
		r.Post("/signin", handler.Signin)
		r.Get("/logout", handler.Logout)
		r.With(middleware.Authenticator(authManager)).Get("/verify", handler.Verify)
	})

	r.Route("/url", func(r chi.Router) {
		r.Use(middleware.Authenticator(authManager))
		r.Post("/shorten", handler.ShortenURL)
		r.Get("/urls", handler.ListURLs)
		r.Get("/search", handler.SearchURLs)
		r.Delete("/{urlID}", handler.DeleteURL)
	})

	r.Route("/analytics", func(r chi.Router) {
		r.Use(middleware.Authenticator(authManager))
		r.Get("/{urlID}", handler.Analytics)
	})

	r.Get("/{shortCode}", handler.Redirect)

	return r
}
