package metrics_server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lensfeed-post-service/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// MetricsServer exposes /metrics and /health on a separate listener so
// scrapes never share the application port.
type MetricsServer struct {
	server *http.Server
	log    *logger.Logger
}

func NewMetricsServer(address string, port int, log *logger.Logger) *MetricsServer {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return &MetricsServer{
		server: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", address, port),
			Handler: mux,
		},
		log: log,
	}
}

func (s *MetricsServer) Run() error {
	s.log.Info("Starting metrics server", slog.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.Error("Metrics server error", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func (s *MetricsServer) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.log.Info("Shutting down metrics server")
	if err := s.server.Shutdown(ctx); err != nil {
		s.log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
		return err
	}
	return nil
}
