// Package server exposes the zoning engine over HTTP for local tools and
// the valuation frontend.
package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ldineshkumar-dev/oakzone/pkg/analysis"
	"github.com/ldineshkumar-dev/oakzone/pkg/valuation"
	"github.com/ldineshkumar-dev/oakzone/pkg/zoning"
)

// Server is the zoning analysis HTTP API.
type Server struct {
	repo      *zoning.Repository
	analyzer  *analysis.Analyzer
	estimator *valuation.Estimator
	log       *zap.Logger
	port      int
}

// New creates a server over a loaded repository. port 0 falls back to the
// OAKZONE_PORT environment variable, then 8080. A .env file in the working
// directory is honored when present.
func New(repo *zoning.Repository, port int) (*Server, error) {
	godotenv.Load()

	if port <= 0 {
		port = 8080
		if v := os.Getenv("OAKZONE_PORT"); v != "" {
			p, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("invalid OAKZONE_PORT %q: %w", v, err)
			}
			port = p
		}
	}

	log, err := newLogger()
	if err != nil {
		return nil, err
	}

	return &Server{
		repo:      repo,
		analyzer:  analysis.New(repo),
		estimator: valuation.NewEstimator(repo),
		log:       log,
		port:      port,
	}, nil
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("OAKZONE_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// Start launches the HTTP server. It blocks until the listener fails.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/zones", s.handleZones)
	mux.HandleFunc("GET /api/zones/{code}", s.handleZone)
	mux.HandleFunc("POST /api/value", s.handleValue)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("oakzone server starting",
		zap.String("addr", addr),
		zap.Int("zones", len(s.repo.Zones())))

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.withRequestLog(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// withRequestLog tags each request with an id and logs its outcome.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.log.Info("request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
