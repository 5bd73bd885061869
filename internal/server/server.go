package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/student-portal/internal/logger"
)

type server struct {
	httpServer *httpServer
	address    string

	// bound is closed once the listener is open; addr is valid after that.
	bound chan struct{}
	addr  net.Addr

	logger *logger.Logger
}

// NewServer constructs a [Server] serving handler on address.
func NewServer(handler http.Handler, address string, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handler == nil {
		return nil, errNoHandler
	}
	if address == "" {
		return nil, errNoAddress
	}

	return &server{
		httpServer: newHTTPServer(handler, address, logger),
		address:    address,
		bound:      make(chan struct{}),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}
	s.addr = ln.Addr()
	close(s.bound)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		s.Shutdown()
	}()

	s.logger.Info().Str("address", s.addr.String()).Msg("Launching HTTP server")
	serveErr := s.httpServer.serve(ln)
	cancel()

	<-done
	s.logger.Info().Msg("server Shutdown gracefully")
	return serveErr
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
