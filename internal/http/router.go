package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"triagesense/internal/core"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(logger zerolog.Logger, svc *core.Service, db Pinger, staticDir string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(Metrics)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(Logger(logger))
	r.Use(chimw.Recoverer)

	h := NewHandler(svc, db, logger)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", h.Health)

	r.Post("/triage", h.Triage)
	r.Post("/converse", h.Converse)
	r.Get("/submissions", h.ListSubmissions)

	// Front-end: plain static files, served only when the directory exists.
	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
		r.Handle("/static/*", fs)
		index := filepath.Join(staticDir, "index.html")
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, index)
		})
	}

	return r
}
