package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"healthtrack/internal/auth"
	"healthtrack/internal/notify"
)

func NewRouter(
	logger *slog.Logger,
	authSvc *auth.Service,
	graphql http.Handler,
	events *notify.Handler,
	corsOrigins []string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(Recovery(logger))
	r.Use(Logging(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", notify.ClientIDHeader},
		MaxAge:         300,
	}))
	r.Use(auth.Middleware(authSvc, logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	authHandler := &auth.Handler{Service: authSvc, Logger: logger}
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.Post("/register", authHandler.Register)
	})

	r.Method(http.MethodGet, "/graphql", graphql)
	r.Method(http.MethodPost, "/graphql", graphql)

	r.Get("/events", events.Stream)
	r.Post("/events/update", events.Update)

	return r
}
