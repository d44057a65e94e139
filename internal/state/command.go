package state

import "github.com/mockbind/mockbind/pkg/mock"

// Command is one request to the state actor. Each variant carries its own
// reply channel so the caller can block on exactly the answer it asked
// for without a type switch on the receiving end.
type Command interface {
	apply(s *State)
}

// CreateMockCmd registers Mock and reports true once it has been
// appended to the registry.
type CreateMockCmd struct {
	Mock  *mock.Mock
	Reply chan<- bool
}

func (c CreateMockCmd) apply(s *State) { c.Reply <- s.CreateMock(c.Mock) }

// GetMockHitsCmd reports the current hit count for the mock with ID, or
// Found=false if it is not registered.
type GetMockHitsCmd struct {
	ID    string
	Reply chan<- GetMockHitsResult
}

// GetMockHitsResult is the reply payload for GetMockHitsCmd.
type GetMockHitsResult struct {
	Hits  int
	Found bool
}

func (c GetMockHitsCmd) apply(s *State) {
	hits, found := s.GetMockHits(c.ID)
	c.Reply <- GetMockHitsResult{Hits: hits, Found: found}
}

// RemoveMockCmd deregisters the mock with ID. Reply always receives true.
type RemoveMockCmd struct {
	ID    string
	Reply chan<- bool
}

func (c RemoveMockCmd) apply(s *State) { c.Reply <- s.RemoveMock(c.ID) }

// GetLastUnmatchedRequestCmd reports the most recently logged unmatched
// request, or Found=false if the ring is empty.
type GetLastUnmatchedRequestCmd struct {
	Reply chan<- GetLastUnmatchedRequestResult
}

// GetLastUnmatchedRequestResult is the reply payload for
// GetLastUnmatchedRequestCmd.
type GetLastUnmatchedRequestResult struct {
	Formatted string
	Found     bool
}

func (c GetLastUnmatchedRequestCmd) apply(s *State) {
	formatted, found := s.GetLastUnmatchedRequest()
	c.Reply <- GetLastUnmatchedRequestResult{Formatted: formatted, Found: found}
}

// ResetCmd clears the registry and unmatched ring. Reply receives a
// single struct{}{} once the reset has completed.
type ResetCmd struct {
	Reply chan<- struct{}
}

func (c ResetCmd) apply(s *State) {
	s.Reset()
	c.Reply <- struct{}{}
}

// Actor owns s exclusively and processes Commands delivered on Commands,
// one at a time, until Commands is closed.
type Actor struct {
	Commands chan Command
	state    *State
}

// NewActor constructs an Actor over s with a command channel of the given
// buffer size.
func NewActor(s *State, bufferSize int) *Actor {
	return &Actor{Commands: make(chan Command, bufferSize), state: s}
}

// Run processes commands until the channel is closed. It is meant to run
// on its own goroutine for the lifetime of the server.
func (a *Actor) Run() {
	for cmd := range a.Commands {
		cmd.apply(a.state)
	}
}

// CreateMock sends a CreateMockCmd and blocks for its reply. Callers on
// the server's public API use this instead of reaching into State
// directly, so every control-plane operation is serialized through the
// same command channel.
func (a *Actor) CreateMock(m *mock.Mock) bool {
	reply := make(chan bool, 1)
	a.Commands <- CreateMockCmd{Mock: m, Reply: reply}
	return <-reply
}

// GetMockHits sends a GetMockHitsCmd and blocks for its reply.
func (a *Actor) GetMockHits(id string) (int, bool) {
	reply := make(chan GetMockHitsResult, 1)
	a.Commands <- GetMockHitsCmd{ID: id, Reply: reply}
	result := <-reply
	return result.Hits, result.Found
}

// RemoveMock sends a RemoveMockCmd and blocks for its reply.
func (a *Actor) RemoveMock(id string) bool {
	reply := make(chan bool, 1)
	a.Commands <- RemoveMockCmd{ID: id, Reply: reply}
	return <-reply
}

// GetLastUnmatchedRequest sends a GetLastUnmatchedRequestCmd and blocks
// for its reply.
func (a *Actor) GetLastUnmatchedRequest() (string, bool) {
	reply := make(chan GetLastUnmatchedRequestResult, 1)
	a.Commands <- GetLastUnmatchedRequestCmd{Reply: reply}
	result := <-reply
	return result.Formatted, result.Found
}

// Reset sends a ResetCmd and blocks until it has been applied.
func (a *Actor) Reset() {
	reply := make(chan struct{}, 1)
	a.Commands <- ResetCmd{Reply: reply}
	<-reply
}
