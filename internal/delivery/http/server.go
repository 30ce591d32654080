package post_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lensfeed-post-service/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP listener with lifecycle management.
type Server struct {
	server *http.Server
	log    *logger.Logger
}

func NewServer(router *gin.Engine, address string, port int, log *logger.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf("%s:%d", address, port),
			Handler: router,
		},
		log: log,
	}
}

func (s *Server) Run() error {
	s.log.Info("Starting HTTP server", slog.String("address", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.Error("HTTP server error", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.log.Info("Shutting down HTTP server")
	if err := s.server.Shutdown(ctx); err != nil {
		s.log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		return err
	}
	return nil
}
