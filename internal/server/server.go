// Package server is the HTTP boundary: it validates request bodies into
// simulation parameters, runs the engine, and forwards encoder output
// unchanged.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Alper-bit/QTunelling-API/internal/config"
	"github.com/Alper-bit/QTunelling-API/internal/encode"
	"github.com/Alper-bit/QTunelling-API/internal/qsim"
)

type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	engine qsim.Engine
	http   *http.Server
}

func New(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:    cfg,
		logger: logger,
		engine: qsim.NewEngine(cfg.Engine.BarrierHeight),
	}
	s.http = &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: s.Router(),
	}
	return s
}

// Router builds the chi router with all routes registered. Exposed for
// tests.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/quantum/simulate", s.handleSimulate(encode.Legacy{}))
		r.Post("/quantum-tunneling", s.handleSimulate(encode.Legacy{}))
		r.Post("/quantum/simulate/binary", s.handleSimulate(encode.Binary{}))
	})
	return r
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	timeout := time.Duration(s.cfg.Server.ShutdownSeconds) * time.Second
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info("server shutting down")
	return s.http.Shutdown(shutdownCtx)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "quantum tunneling API is running"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleSimulate(enc encode.Encoder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := s.decodeParams(r)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, err)
			return
		}

		start := time.Now()
		result, err := s.engine.Run(params)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, qsim.ErrInvalidDomain) {
				status = http.StatusBadRequest
			}
			s.writeError(w, r, status, err)
			return
		}

		body, err := enc.Encode(result)
		if err != nil {
			s.writeError(w, r, http.StatusInternalServerError, err)
			return
		}

		meta, _ := encode.Describe(result)
		s.logger.Info("simulation complete",
			"request_id", middleware.GetReqID(r.Context()),
			"n", params.N,
			"frames", meta.FrameCount,
			"elapsed", time.Since(start),
		)

		w.Header().Set("Content-Type", enc.ContentType())
		w.Header().Set("X-Frame-Count", strconv.FormatUint(uint64(meta.FrameCount), 10))
		w.Header().Set("X-Grid-Size", strconv.FormatUint(uint64(meta.GridSize), 10))
		w.Header().Set("X-Payload-Format", meta.Format)
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}

// decodeParams parses an optional JSON body over the configured defaults. An
// empty body runs the default scenario.
func (s *Server) decodeParams(r *http.Request) (qsim.SimulationParameters, error) {
	params := s.cfg.Engine.Defaults

	var req simulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return params, nil
		}
		return params, fmt.Errorf("%w: malformed request body: %v", qsim.ErrInvalidDomain, err)
	}
	return req.apply(params), nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.Error("request failed",
		"request_id", middleware.GetReqID(r.Context()),
		"status", status,
		"error", err,
	)
	writeJSON(w, status, map[string]string{"status": "error", "detail": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
