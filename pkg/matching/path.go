package matching

import (
	"fmt"
	"strings"
)

// PathAndQuery matches the request-target, either as one opaque string or
// split at the first '?' into a path matcher and a query matcher.
type PathAndQuery interface {
	MatchesTarget(pathAndQuery string) bool
	String() string
}

// Unified applies a single matcher to the whole request-target, including
// any query string.
func Unified(m Matcher) PathAndQuery { return unifiedPathAndQuery{matcher: m} }

type unifiedPathAndQuery struct {
	matcher Matcher
}

func (p unifiedPathAndQuery) MatchesTarget(pathAndQuery string) bool {
	return p.matcher.MatchesValue(pathAndQuery)
}

func (p unifiedPathAndQuery) String() string {
	return fmt.Sprintf("Unified(%s)", p.matcher)
}

// Split applies pathMatcher to everything before the first '?' and
// queryMatcher to everything after it (empty string if there is no '?').
func Split(pathMatcher, queryMatcher Matcher) PathAndQuery {
	return splitPathAndQuery{path: pathMatcher, query: queryMatcher}
}

type splitPathAndQuery struct {
	path  Matcher
	query Matcher
}

func (p splitPathAndQuery) MatchesTarget(pathAndQuery string) bool {
	path, query, _ := strings.Cut(pathAndQuery, "?")
	return p.path.MatchesValue(path) && p.query.MatchesValue(query)
}

func (p splitPathAndQuery) String() string {
	return fmt.Sprintf("Split(%s, %s)", p.path, p.query)
}
