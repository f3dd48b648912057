package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/vikeypass/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer binds address and returns a [Server] that will serve handler
// on it. Listen errors are returned here, not from Run.
func NewServer(handler http.Handler, address string, log *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, errNoHandler
	}

	log.Info().Str("address", address).Msg("creating query server...")
	hs, err := newHTTPServer(handler, address)
	if err != nil {
		return nil, err
	}

	return &server{
		httpServer: hs,
		logger:     log,
	}, nil
}

func (s *server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.serve()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("query server shutdown failed")
		return err
	}
	if err := <-errCh; err != nil {
		return err
	}

	s.logger.Info().Msg("query server shut down gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}

func (s *server) Addr() string {
	return s.httpServer.boundAddr()
}
