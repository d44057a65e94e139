package server

import (
	"errors"
	"fmt"

	"github.com/mockbind/mockbind/pkg/matching"
	"github.com/mockbind/mockbind/pkg/mock"
)

// ErrAssertionFailed is returned by Handle.Assert when the mock's
// observed hit count falls outside its expected range.
var ErrAssertionFailed = errors.New("mock assertion failed")

// Handle is the registration lifetime of one Mock on one Server: it
// forwards expectation setters to the underlying Mock, reads the hit
// count back through the server's state, and deregisters the mock when
// closed.
type Handle struct {
	server *Server
	mock   *mock.Mock
}

// NewMock starts building a mock bound to s for method and
// pathAndQuery. Callers install header/body matchers and a response on
// the returned Mock before calling s.Create to register it.
func (s *Server) NewMock(method string, pathAndQuery matching.PathAndQuery) *mock.Mock {
	return mock.New(method, pathAndQuery)
}

// Create registers m on the server's command channel and returns a
// Handle for asserting on it and eventually removing it.
func (s *Server) Create(m *mock.Mock) *Handle {
	s.actor.CreateMock(m)
	return &Handle{server: s, mock: m}
}

// Matched reports whether the mock has recorded at least one hit.
func (h *Handle) Matched() bool {
	hits, _ := h.server.actor.GetMockHits(h.mock.ID)
	return hits > 0
}

// Expect sets the expectation to exactly n hits.
func (h *Handle) Expect(n int) *Handle { h.mock.Expect(n); return h }

// ExpectAtLeast sets the expectation to n or more hits.
func (h *Handle) ExpectAtLeast(n int) *Handle { h.mock.ExpectAtLeast(n); return h }

// ExpectAtMost sets the expectation to at most n hits.
func (h *Handle) ExpectAtMost(n int) *Handle { h.mock.ExpectAtMost(n); return h }

// ExpectRange sets the expectation to between lo and hi hits inclusive.
func (h *Handle) ExpectRange(lo, hi int) *Handle { h.mock.ExpectRange(lo, hi); return h }

// Assert reads the mock's current hit count from the server's state and
// fails with ErrAssertionFailed, wrapping a diagnostic message, if it
// falls outside the expected range.
func (h *Handle) Assert() error {
	hits, _ := h.server.actor.GetMockHits(h.mock.ID)
	h.mock.ActualHits = hits

	lastUnmatched, _ := h.server.actor.GetLastUnmatchedRequest()
	msg, ok := h.mock.AssertMessage(lastUnmatched)
	if ok {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrAssertionFailed, msg)
}

// Close deregisters the mock. If the server was created with
// WithAssertOnDrop(true), the hit count is checked before deregistration
// and Close returns Assert's error (nil when the expectation holds);
// otherwise it returns nil. Nothing calls Close automatically when a
// Handle goes out of scope: callers defer it to get the assertion.
func (h *Handle) Close() error {
	var assertErr error
	if h.server.AssertOnDrop() {
		assertErr = h.Assert()
	}
	h.server.actor.RemoveMock(h.mock.ID)
	return assertErr
}
