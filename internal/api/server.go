package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hritik3345/LIPA-Name/internal/capture"
	"github.com/hritik3345/LIPA-Name/internal/config"
	"github.com/hritik3345/LIPA-Name/internal/stats"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the HTTP front of the name-capture webhook.
type Server struct {
	router  chi.Router
	engine  *capture.Engine
	latency *stats.Latency
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(engine *capture.Engine, latency *stats.Latency, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		engine:  engine,
		latency: latency,
		log:     log,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/", s.handleHealth)
	r.Get("/health", s.handleHealth)
	if s.cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Webhook endpoints, authenticated when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.WebhookAPIKey != "" {
			r.Use(AuthMiddleware(s.cfg.WebhookAPIKey, s.log))
		}

		r.Post("/", s.handleWebhook)
		r.Post("/webhook", s.handleWebhook)
		r.Get("/api/stats/latency", s.handleLatencyStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
