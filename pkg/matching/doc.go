// Package matching implements the predicate algebra mock definitions use to
// describe which requests they apply to: exact/regex/JSON/urlencoded value
// matching, the Missing/Any sentinels, and the AnyOf/AllOf combinators.
//
// A Matcher is evaluated at up to three arities depending on what it is
// being compared against:
//
//   - MatchesValue: one string (a header value, a path, a urlencoded body)
//   - MatchesValues (a free function, not a method): a whole list of values
//     for one header name, handling the list-level semantics of Missing
//   - MatchesBinary: a raw byte buffer, for the Binary variant matching a
//     request body that need not be valid UTF-8
//
// Matchers are immutable once constructed; none of the constructors here
// can fail, because failure conditions (e.g. an invalid regex) are deferred
// to match time and treated as a non-match rather than a construction-time
// error.
package matching
