package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mpetrov/dashauth/internal/logging"
	"github.com/mpetrov/dashauth/internal/server/services"
)

// NewAuthRouter builds the HTTP surface of the auth service.
func NewAuthRouter(service *services.UserService, logger logging.Logger, allowedOrigin string) http.Handler {
	h := NewAuthHandler(service, logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(corsHandler(allowedOrigin))

	r.Get("/health", healthHandler("auth-service"))
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
	})

	return r
}

// NewUserRouter builds the HTTP surface of the user service. Everything under
// /api/users requires a verified Bearer token.
func NewUserRouter(service *services.UserService, logger logging.Logger, secretKey []byte, allowedOrigin string) http.Handler {
	h := NewUserHandler(service, logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(corsHandler(allowedOrigin))

	r.Get("/health", healthHandler("user-service"))
	r.Route("/api/users", func(r chi.Router) {
		r.Use(RequireAuth(secretKey))
		r.Get("/me", h.Me)
	})

	return r
}

func corsHandler(allowedOrigin string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
}

func healthHandler(service string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": service})
	}
}
