package matching

import (
	"fmt"
	"net/url"
	"regexp"
)

// Matcher is a predicate over a single string value, a list of string
// values (one header's repeated occurrences), or a raw byte buffer.
//
// The three-arity split exists because a header can carry zero, one, or
// several values, and a request body is not guaranteed to be valid UTF-8.
// MatchesValues is a free function rather than a method because its
// semantics (how Missing behaves over an empty list) are defined in terms
// of the whole list, not of any single element.
type Matcher interface {
	// MatchesValue reports whether a single string value satisfies the
	// matcher.
	MatchesValue(v string) bool

	// MatchesBinary reports whether a raw byte buffer satisfies the
	// matcher. Only Binary matches here; every other variant returns
	// false, including AnyOf/AllOf wrapping a Binary matcher.
	MatchesBinary(b []byte) bool

	// String renders the matcher for diagnostics (assertion failures,
	// request tracing). It is not parseable and carries no equality
	// contract beyond being stable for a given matcher value.
	String() string
}

// MatchesValues evaluates m against every value collected for one header
// name. An empty vs can still match: Missing matches it directly, and
// AnyOf/AllOf match it when their own empty-list rule says so. A non-empty
// vs matches only when every element satisfies m at string arity.
func MatchesValues(m Matcher, vs []string) bool {
	switch mm := m.(type) {
	case missingMatcher:
		return len(vs) == 0
	case anyOfMatcher:
		for _, sub := range mm.matchers {
			if MatchesValues(sub, vs) {
				return true
			}
		}
		return false
	case allOfMatcher:
		for _, sub := range mm.matchers {
			if !MatchesValues(sub, vs) {
				return false
			}
		}
		return true
	default:
		if len(vs) == 0 {
			return false
		}
		for _, v := range vs {
			if !m.MatchesValue(v) {
				return false
			}
		}
		return true
	}
}

// baseMatcher supplies the always-false MatchesBinary default; only
// Binary overrides it.
type baseMatcher struct{}

func (baseMatcher) MatchesBinary(b []byte) bool { return false }

// Exact matches a value by byte equality.
type exactMatcher struct {
	baseMatcher
	value string
}

func Exact(value string) Matcher { return exactMatcher{value: value} }

func (m exactMatcher) MatchesValue(v string) bool { return v == m.value }
func (m exactMatcher) String() string             { return fmt.Sprintf("Exact(%q)", m.value) }

// Regex matches a value against a compiled regular expression. An
// uncompilable pattern is not a construction error: it is treated as a
// non-match at every call, compiled once here and cached for the life of
// the matcher.
type regexMatcher struct {
	baseMatcher
	pattern string
	re      *regexp.Regexp
}

func Regex(pattern string) Matcher {
	re, _ := regexp.Compile(pattern)
	return regexMatcher{pattern: pattern, re: re}
}

func (m regexMatcher) MatchesValue(v string) bool {
	if m.re == nil {
		return false
	}
	return m.re.MatchString(v)
}

func (m regexMatcher) String() string { return fmt.Sprintf("Regex(%q)", m.pattern) }

// Json matches a value that parses as JSON and is structurally equal to
// value (object key order irrelevant).
func Json(value any) Matcher {
	return jsonMatcher{pattern: value}
}

// JsonString is Json with the pattern given as a JSON-encoded string,
// parsed at match time (on every match) rather than at construction.
func JsonString(s string) Matcher {
	return jsonMatcher{patternString: s, lazy: true}
}

// PartialJson matches a value that parses as JSON and inclusively contains
// value: every object field in the pattern must be present in the target
// with a matching sub-value, every pattern array element must appear
// somewhere in the target array, and scalar patterns must equal scalar
// targets.
func PartialJson(value any) Matcher {
	return partialJSONMatcher{pattern: value}
}

// PartialJsonString is PartialJson with the pattern parsed lazily from a
// JSON-encoded string.
func PartialJsonString(s string) Matcher {
	return partialJSONMatcher{patternString: s, lazy: true}
}

// UrlEncoded matches a value that parses as
// application/x-www-form-urlencoded body data and contains the pair
// (field, value) after percent-decoding. Field names compare
// case-sensitively.
type urlEncodedMatcher struct {
	baseMatcher
	field string
	value string
}

func UrlEncoded(field, value string) Matcher {
	return urlEncodedMatcher{field: field, value: value}
}

func (m urlEncodedMatcher) MatchesValue(v string) bool {
	values, err := url.ParseQuery(v)
	if err != nil {
		return false
	}
	for _, got := range values[m.field] {
		if got == m.value {
			return true
		}
	}
	return false
}

func (m urlEncodedMatcher) String() string {
	return fmt.Sprintf("UrlEncoded(%q, %q)", m.field, m.value)
}

// Binary matches a raw byte buffer by equality. It never matches at string
// arity: a request body routed through MatchesValue instead of
// MatchesBinary cannot observe non-UTF-8 bytes correctly, so Binary
// declines rather than risk a false match against a lossy decode.
type binaryMatcher struct {
	bytes []byte
}

func Binary(b []byte) Matcher { return binaryMatcher{bytes: b} }

func (m binaryMatcher) MatchesValue(v string) bool { return false }

func (m binaryMatcher) MatchesBinary(b []byte) bool {
	if len(b) != len(m.bytes) {
		return false
	}
	for i := range b {
		if b[i] != m.bytes[i] {
			return false
		}
	}
	return true
}

func (m binaryMatcher) String() string { return fmt.Sprintf("Binary(%d bytes)", len(m.bytes)) }

// Any matches every value at string arity, the empty string included. A
// header with zero values never reaches MatchesValue: it is decided at the
// list level by
// MatchesValues, whose default arm requires vs to be non-empty before
// testing any element.
type anyMatcher struct {
	baseMatcher
}

func Any() Matcher { return anyMatcher{} }

func (anyMatcher) MatchesValue(v string) bool { return true }
func (anyMatcher) String() string             { return "Any" }

// Missing matches only when the value set for a header is empty. At
// string arity (used outside the list context, e.g. a path or body
// matcher) it degrades to "value is empty".
type missingMatcher struct {
	baseMatcher
}

func Missing() Matcher { return missingMatcher{} }

func (missingMatcher) MatchesValue(v string) bool { return v == "" }
func (missingMatcher) String() string             { return "Missing" }

// AnyOf is a disjunction over matchers, short-circuiting on first match.
type anyOfMatcher struct {
	matchers []Matcher
}

func AnyOf(matchers ...Matcher) Matcher { return anyOfMatcher{matchers: matchers} }

func (m anyOfMatcher) MatchesValue(v string) bool {
	for _, sub := range m.matchers {
		if sub.MatchesValue(v) {
			return true
		}
	}
	return false
}

func (m anyOfMatcher) MatchesBinary(b []byte) bool { return false }

func (m anyOfMatcher) String() string {
	return fmt.Sprintf("AnyOf%s", renderSubmatchers(m.matchers))
}

// AllOf is a conjunction over matchers, short-circuiting on first failure.
type allOfMatcher struct {
	matchers []Matcher
}

func AllOf(matchers ...Matcher) Matcher { return allOfMatcher{matchers: matchers} }

func (m allOfMatcher) MatchesValue(v string) bool {
	for _, sub := range m.matchers {
		if !sub.MatchesValue(v) {
			return false
		}
	}
	return true
}

func (m allOfMatcher) MatchesBinary(b []byte) bool { return false }

func (m allOfMatcher) String() string {
	return fmt.Sprintf("AllOf%s", renderSubmatchers(m.matchers))
}

func renderSubmatchers(matchers []Matcher) string {
	out := "("
	for i, sub := range matchers {
		if i > 0 {
			out += ", "
		}
		out += sub.String()
	}
	return out + ")"
}
