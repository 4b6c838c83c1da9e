package app

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Server is the HTTP entry point. It is never constructed by hand in
// application code — the resolver builds it from its registered metadata,
// pulling addr from configuration and the router and logger from the
// managed object graph.
type Server struct {
	addr   string
	router *Router
	log    zerolog.Logger
}

// NewServer is the Server factory the resolver invokes.
func NewServer(addr string, router *Router, log zerolog.Logger) *Server {
	return &Server{addr: addr, router: router, log: log}
}

// Router exposes the underlying router for route registration.
func (s *Server) Router() *Router { return s.router }

// Addr returns the listen address.
func (s *Server) Addr() string { return s.addr }

// ListenAndServe starts serving HTTP; it blocks until the listener fails.
func (s *Server) ListenAndServe() error {
	s.log.Info().Str("addr", s.addr).Msg("http server listening")
	return http.ListenAndServe(s.addr, s.router)
}
