package state

import (
	"io"
	"log/slog"
	"sync"

	"github.com/mockbind/mockbind/pkg/logging"
	"github.com/mockbind/mockbind/pkg/message"
	"github.com/mockbind/mockbind/pkg/mock"
)

// DefaultUnmatchedCapacity bounds the unmatched-request ring when a
// server is created without an explicit override.
const DefaultUnmatchedCapacity = 16

// DefaultCommandBufferSize bounds the Actor's command channel when a
// server is created without an explicit override.
const DefaultCommandBufferSize = 32

// State is the per-server registry of mocks and unmatched requests. The
// zero value is not usable; construct with New.
type State struct {
	mu      sync.Mutex
	logger  *slog.Logger
	mocks   []*mock.Mock
	counter uint64

	unmatched    []string
	unmatchedCap int
}

// New constructs an empty State. unmatchedCap must be at least 1.
func New(logger *slog.Logger, unmatchedCap int) *State {
	if unmatchedCap < 1 {
		unmatchedCap = DefaultUnmatchedCapacity
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &State{logger: logger, unmatchedCap: unmatchedCap}
}

// CreateMock appends m to the registry (tail = newest) and stamps its
// creation order. Always returns true; the contract mirrors the
// command's reply type, which callers use to confirm acknowledgement
// rather than to report failure.
func (s *State) CreateMock(m *mock.Mock) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	m.CreatedAt = s.counter
	s.mocks = append(s.mocks, m)
	return true
}

// GetMockHits returns the mock's current hit count, or false if no mock
// with that id is registered.
func (s *State) GetMockHits(id string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.mocks {
		if m.ID == id {
			return m.ActualHits, true
		}
	}
	return 0, false
}

// RemoveMock removes the mock with the given id, if present. It returns
// true unconditionally, including when the id was already absent, so
// that repeated removal (e.g. from a handle dropped twice) stays
// idempotent.
func (s *State) RemoveMock(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.mocks {
		if m.ID == id {
			s.mocks = append(s.mocks[:i], s.mocks[i+1:]...)
			break
		}
	}
	return true
}

// GetLastUnmatchedRequest returns the most recently logged unmatched
// request's formatted rendering, or false if none has been logged.
func (s *State) GetLastUnmatchedRequest() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.unmatched) == 0 {
		return "", false
	}
	return s.unmatched[len(s.unmatched)-1], true
}

// Reset clears the mock registry and the unmatched ring without tearing
// down anything else.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mocks = nil
	s.unmatched = nil
	s.counter = 0
}

// MatchAndRespond finds the newest-registered mock matching req and
// writes its response to w, incrementing that mock's hit count. If no
// mock matches, it writes a bare 501 and records req in the unmatched
// ring, evicting the oldest entry if the ring is full.
//
// The state lock is held for the duration of the response write, which
// serializes overlapping requests on one server. Each test gets its own
// server from the pool, so this does not serialize across tests.
func (s *State) MatchAndRespond(req *message.Request, w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.mocks) - 1; i >= 0; i-- {
		m := s.mocks[i]
		if m.Matches(req) {
			m.Hit()
			if logging.DebugEnabled() {
				s.logger.Debug("request matched", "mock_id", m.ID, "method", req.Method, "path", req.PathAndQuery)
			}
			return m.Response.WriteTo(w)
		}
	}

	if logging.DebugEnabled() {
		s.logger.Debug("request unmatched", "method", req.Method, "path", req.PathAndQuery)
	}

	if len(s.unmatched) >= s.unmatchedCap {
		s.unmatched = s.unmatched[1:]
	}
	s.unmatched = append(s.unmatched, req.Formatted())

	_, err := io.WriteString(w, "HTTP/1.1 501 Not Implemented\r\nconnection: close\r\n\r\n")
	return err
}
