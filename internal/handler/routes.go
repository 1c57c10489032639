package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dangerclosesec/biza/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterOptions configures NewRouter
type RouterOptions struct {
	Logger      *slog.Logger
	CorsOrigins []string
	Timeout     time.Duration
	Evaluation  *EvaluationHandler
	// History is optional; its routes are mounted only when set
	History *HistoryHandler
}

// NewRouter builds the API router
func NewRouter(opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(opts.Logger))
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(chimw.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.Post("/lex", opts.Evaluation.LexHandler)
			r.Post("/evaluate", opts.Evaluation.EvaluateHandler)
		})

		if opts.History != nil {
			r.Route("/evaluations", func(r chi.Router) {
				r.Get("/", opts.History.GetEvaluations)
				r.Get("/{id}", opts.History.GetEvaluationByID)
			})
		}
	})

	return r
}
