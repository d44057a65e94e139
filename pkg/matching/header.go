package matching

// HeaderMatcher pairs a lowercased header name with the matcher applied to
// every value collected for that name.
type HeaderMatcher struct {
	Name    string
	Matcher Matcher
}

// MatchHeaders reports whether every matcher in matchers accepts the
// values the lookup function returns for its header name. lookup is
// expected to be case-insensitive and to return the values in the order
// they arrived on the wire; an absent header yields a nil/empty slice,
// which only Missing (or an AnyOf/AllOf admitting it) can satisfy.
func MatchHeaders(matchers []HeaderMatcher, lookup func(name string) []string) bool {
	for _, hm := range matchers {
		if !MatchesValues(hm.Matcher, lookup(hm.Name)) {
			return false
		}
	}
	return true
}
