package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type httpServer struct {
	server *http.Server
	ln     net.Listener
}

// newHTTPServer binds address right away so that a busy or invalid address
// is reported before anything is served.
func newHTTPServer(handler http.Handler, address string) (*httpServer, error) {
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", address, err)
	}

	return &httpServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		ln: ln,
	}, nil
}

// serve serves on the bound listener until shutdown.
func (h *httpServer) serve() error {
	if err := h.server.Serve(h.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve http: %w", err)
	}
	return nil
}

// shutdown stops serving and releases the listener, also when serve never
// ran.
func (h *httpServer) shutdown(ctx context.Context) error {
	err := h.server.Shutdown(ctx)
	if closeErr := h.ln.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
		err = errors.Join(err, closeErr)
	}
	return err
}

func (h *httpServer) boundAddr() string {
	return h.ln.Addr().String()
}
