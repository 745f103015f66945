// Package server serves the string tools via HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"

	"devtools.znkr.io/devtools/i18n"
)

// Server serves the string tools via HTTP.
type Server struct {
	http *http.Server
	addr net.Addr
	errc chan error
}

// Run creates a new server and runs it in a new goroutine. Requests without a language preference
// are answered in lang.
func Run(addr string, lang i18n.Language, logger *zap.Logger) (*Server, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("starting HTTP server: %v", err)
	}

	s := &Server{
		http: &http.Server{
			Handler:  newHandler(lang, logger),
			ErrorLog: zap.NewStdLog(logger),
		},
		addr: l.Addr(),
		errc: make(chan error, 1),
	}

	go func() {
		if err := s.http.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.errc <- err
		}
	}()

	return s, nil
}

// Addr returns the address the server listens on.
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %v", err)
	}
	return nil
}

// Error returns a channel to listen to errors while serving.
func (s *Server) Error() <-chan error {
	return s.errc
}
