package main

import (
	"context"
	"net"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

// Server binds a single listener and serves the greeting on it.
type Server struct {
	cfg Config
	log logrus.FieldLogger
	srv *fasthttp.Server
	ln  net.Listener
}

// New returns a Server that has not bound its port yet.
func New(cfg Config, log logrus.FieldLogger) *Server {
	return &Server{
		cfg: cfg,
		log: log,
		srv: &fasthttp.Server{
			Handler: greetingHandler(cfg.Greeting),
			Name:    cfg.Name,
			Logger:  log,
		},
	}
}

// Listen binds the configured address. A failure is returned as *BindError.
func (s *Server) Listen() error {
	if s.ln != nil {
		return errors.Errorf("already listening on %s", s.ln.Addr())
	}
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return errors.WithStack(&BindError{Addr: s.cfg.Addr(), Err: err})
	}
	s.ln = ln

	port := s.cfg.Port
	if tcpAddr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = tcpAddr.Port
	}
	s.log.Infof("Terraform demo listening on port %d", port)
	return nil
}

// Addr returns the bound address, or "" before Listen.
func (s *Server) Addr() string {
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Serve handles requests on the bound listener until ctx is cancelled, then
// shuts the server down and returns nil.
func (s *Server) Serve(ctx context.Context) error {
	if s.ln == nil {
		return errors.New("serve called before listen")
	}

	errc := make(chan error, 1)
	go func() {
		errc <- s.srv.Serve(s.ln)
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	err := s.srv.Shutdown()
	// Shutdown only closes listeners Serve has already registered.
	_ = s.ln.Close()
	if err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return errors.Wrap(<-errc, "serve")
}

// ListenAndServe binds and then serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}
