package mock

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mockbind/mockbind/pkg/matching"
	"github.com/mockbind/mockbind/pkg/message"
	"github.com/mockbind/mockbind/pkg/mockerr"
)

// Mock is one registered expectation: a predicate over incoming requests
// plus the response to emit when it matches.
type Mock struct {
	ID             string
	Method         string
	PathAndQuery   matching.PathAndQuery
	HeaderMatchers []matching.HeaderMatcher
	BodyMatcher    matching.Matcher
	Response       *message.Response
	ExpectedHits   Range
	ActualHits     int
	CreatedAt      uint64
}

// New constructs a Mock for method/pathAndQuery with a default response
// (200 OK, empty body) and a default expectation of at least one hit.
// Callers install header and body matchers before registering it.
func New(method string, pathAndQuery matching.PathAndQuery) *Mock {
	return &Mock{
		ID:           uuid.NewString(),
		Method:       strings.ToUpper(method),
		PathAndQuery: pathAndQuery,
		BodyMatcher:  matching.Any(),
		Response:     message.NewResponse(),
		ExpectedHits: AtLeastRange(1),
	}
}

// Matches reports whether req satisfies every predicate on m: method,
// path-and-query, every header matcher against that header's collected
// values, and the body matcher against the raw body.
func (m *Mock) Matches(req *message.Request) bool {
	if !strings.EqualFold(m.Method, req.Method) {
		return false
	}
	if !m.PathAndQuery.MatchesTarget(req.PathAndQuery) {
		return false
	}
	if !matching.MatchHeaders(m.HeaderMatchers, req.FindHeaderValues) {
		return false
	}
	if m.BodyMatcher != nil && !matching.MatchBody(m.BodyMatcher, req.Body) {
		return false
	}
	return true
}

// Hit increments the hit counter. Callers must hold the owning state's
// lock; Mock itself performs no synchronization.
func (m *Mock) Hit() {
	m.ActualHits++
}

// WithStatus sets the response status code, validating that it falls
// within [100, 999]. A code outside that range is surfaced here rather
// than deferred to emission time.
func (m *Mock) WithStatus(code int) error {
	if code < 100 || code > 999 {
		return mockerr.New(mockerr.InvalidStatusCode, fmt.Errorf("status code %d out of range [100, 999]", code))
	}
	m.Response.Status = message.NewStatus(code)
	return nil
}

// Expect sets the expectation to exactly n hits.
func (m *Mock) Expect(n int) { m.ExpectedHits = ExactlyRange(n) }

// ExpectAtLeast sets the expectation to n or more hits.
func (m *Mock) ExpectAtLeast(n int) { m.ExpectedHits = AtLeastRange(n) }

// ExpectAtMost sets the expectation to at most n hits.
func (m *Mock) ExpectAtMost(n int) { m.ExpectedHits = AtMostRange(n) }

// ExpectRange sets the expectation to between lo and hi hits inclusive.
func (m *Mock) ExpectRange(lo, hi int) { m.ExpectedHits = BetweenRange(lo, hi) }

// AssertMessage reports whether the mock's expectation is satisfied and,
// if not, a diagnostic describing the failure: the mock's rendered form,
// the expected and actual hit counts, and — when there were zero hits and
// one is available — the most recently logged unmatched request.
func (m *Mock) AssertMessage(lastUnmatched string) (message string, ok bool) {
	if m.ExpectedHits.Contains(m.ActualHits) {
		return "", true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Expected %s request(s) to %s, but received %d\n", m.ExpectedHits, m, m.ActualHits)
	if m.ActualHits == 0 && lastUnmatched != "" {
		fmt.Fprintf(&b, "The last unmatched request was:\n%s", lastUnmatched)
	}
	return b.String(), false
}

// String renders the mock for diagnostics: method, path-and-query,
// header matchers, and body matcher.
func (m *Mock) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", m.Method, m.PathAndQuery)
	for _, hm := range m.HeaderMatchers {
		fmt.Fprintf(&b, " %s: %s", hm.Name, hm.Matcher)
	}
	if m.BodyMatcher != nil && m.BodyMatcher.String() != "Any" {
		fmt.Fprintf(&b, " body=%s", m.BodyMatcher)
	}
	return b.String()
}
