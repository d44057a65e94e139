package server

import (
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/mockbind/mockbind/internal/connection"
	"github.com/mockbind/mockbind/internal/state"
	"github.com/mockbind/mockbind/pkg/logging"
	"github.com/mockbind/mockbind/pkg/mockerr"
)

// Options configures a Server. New starts from defaults of host
// "127.0.0.1", an ephemeral port, assertion-on-drop disabled and
// state.DefaultUnmatchedCapacity, then applies the ServerOptions given.
type Options struct {
	Host          string
	Port          uint16
	AssertOnDrop  bool
	Logger        *slog.Logger
	UnmatchedSize int
}

// ServerOption is a functional option for New.
type ServerOption func(*Options)

// WithHost sets the interface to bind. Default "127.0.0.1".
func WithHost(host string) ServerOption {
	return func(o *Options) { o.Host = host }
}

// WithPort sets the port to bind. Default 0 (ephemeral).
func WithPort(port uint16) ServerOption {
	return func(o *Options) { o.Port = port }
}

// WithAssertOnDrop makes every mock created on this server call Assert
// when its handle is closed. Default false.
func WithAssertOnDrop(assertOnDrop bool) ServerOption {
	return func(o *Options) { o.AssertOnDrop = assertOnDrop }
}

// WithLogger sets the logger used for accept-loop errors and, when
// MOCKITO_DEBUG is set, request tracing.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

func defaultOptions() Options {
	return Options{Host: "127.0.0.1", Port: 0, UnmatchedSize: state.DefaultUnmatchedCapacity}
}

// Server binds one listener and runs one accept loop, routing every
// connection through the connection package against its own State.
// Control-plane operations (register/remove/query a mock, reset) go
// through actor's command channel instead of touching state directly;
// only the hot per-request match-and-respond path bypasses it.
type Server struct {
	opts     Options
	listener net.Listener
	state    *state.State
	actor    *state.Actor
	logger   *slog.Logger

	mu     sync.Mutex
	closed bool
}

// New binds a listener per opts and starts its accept loop in the
// background. If opts.Port is 0 an ephemeral port is chosen.
func New(opts ...ServerOption) (*Server, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		if logging.DebugEnabled() {
			// MOCKITO_DEBUG traces request/match decisions to stderr even
			// when the caller never supplied a logger; a Nop default would
			// silently swallow the very tracing the env var asks for.
			o.Logger = logging.NewWithLevel(logging.LevelDebug)
		} else {
			o.Logger = logging.Nop()
		}
	}

	addr := fmt.Sprintf("%s:%d", o.Host, o.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, mockerr.New(mockerr.ServerFailure, fmt.Errorf("bind %s: %w", addr, err))
	}

	st := state.New(o.Logger, o.UnmatchedSize)
	actor := state.NewActor(st, state.DefaultCommandBufferSize)

	s := &Server{
		opts:     o,
		listener: listener,
		state:    st,
		actor:    actor,
		logger:   o.Logger,
	}
	go actor.Run()
	go s.acceptLoop()
	return s, nil
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if s.isClosed() {
				return
			}
			s.logger.Warn("accept failed", "error", err)
			continue
		}
		go connection.Handle(conn, s.state, s.logger)
	}
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Reset clears the mock registry and unmatched-request log without
// tearing down the listener. Like Create and the Handle accessors, it
// goes through the actor's command channel rather than locking state
// directly.
func (s *Server) Reset() {
	s.actor.Reset()
}

// HostWithPort returns "host:port" for the bound listener.
func (s *Server) HostWithPort() string {
	return s.listener.Addr().String()
}

// URL returns "http://host:port" for the bound listener.
func (s *Server) URL() string {
	return "http://" + s.HostWithPort()
}

// Close stops the accept loop and closes the listener. In-flight
// connection handlers are allowed to complete on their own.
func (s *Server) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()
	return s.listener.Close()
}

// AssertOnDrop reports whether mocks created on this server should
// assert automatically when their handle is closed.
func (s *Server) AssertOnDrop() bool {
	return s.opts.AssertOnDrop
}
