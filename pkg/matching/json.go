package matching

import (
	"encoding/json"
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// jsonMatcher implements Json/JsonString: strict structural equality
// between the parsed target and the pattern.
type jsonMatcher struct {
	baseMatcher
	pattern       any
	patternString string
	lazy          bool
}

func (m jsonMatcher) MatchesValue(v string) bool {
	var target any
	if err := json.Unmarshal([]byte(v), &target); err != nil {
		return false
	}
	pattern, ok := m.resolvePattern()
	if !ok {
		return false
	}
	return cmp.Equal(pattern, target)
}

func (m jsonMatcher) resolvePattern() (any, bool) {
	if !m.lazy {
		return normalizeJSON(m.pattern), true
	}
	var pattern any
	if err := json.Unmarshal([]byte(m.patternString), &pattern); err != nil {
		return nil, false
	}
	return pattern, true
}

func (m jsonMatcher) String() string {
	if m.lazy {
		return fmt.Sprintf("JsonString(%s)", m.patternString)
	}
	return fmt.Sprintf("Json(%v)", m.pattern)
}

// partialJSONMatcher implements PartialJson/PartialJsonString: inclusive
// containment rather than strict equality.
type partialJSONMatcher struct {
	baseMatcher
	pattern       any
	patternString string
	lazy          bool
}

func (m partialJSONMatcher) MatchesValue(v string) bool {
	var target any
	if err := json.Unmarshal([]byte(v), &target); err != nil {
		return false
	}
	pattern, ok := m.resolvePattern()
	if !ok {
		return false
	}
	return jsonPartialContains(pattern, target)
}

func (m partialJSONMatcher) resolvePattern() (any, bool) {
	if !m.lazy {
		return normalizeJSON(m.pattern), true
	}
	var pattern any
	if err := json.Unmarshal([]byte(m.patternString), &pattern); err != nil {
		return nil, false
	}
	return pattern, true
}

func (m partialJSONMatcher) String() string {
	if m.lazy {
		return fmt.Sprintf("PartialJsonString(%s)", m.patternString)
	}
	return fmt.Sprintf("PartialJson(%v)", m.pattern)
}

// normalizeJSON round-trips a Go value constructed by callers (which may
// use types json.Unmarshal never produces, e.g. int or float32) through
// the JSON encoder/decoder so it compares like a parsed target: numbers
// become float64, structs become map[string]any, and so on.
func normalizeJSON(v any) any {
	encoded, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var normalized any
	if err := json.Unmarshal(encoded, &normalized); err != nil {
		return v
	}
	return normalized
}

// jsonPartialContains reports whether target inclusively contains
// pattern: every object field in pattern must be present in target with
// a matching sub-value (by the same rule, recursively); every element of
// a pattern array must appear somewhere in the target array; scalar
// patterns must equal scalar targets exactly.
func jsonPartialContains(pattern, target any) bool {
	switch p := pattern.(type) {
	case map[string]any:
		t, ok := target.(map[string]any)
		if !ok {
			return false
		}
		for k, pv := range p {
			tv, present := t[k]
			if !present || !jsonPartialContains(pv, tv) {
				return false
			}
		}
		return true
	case []any:
		t, ok := target.([]any)
		if !ok {
			return false
		}
		for _, pv := range p {
			found := false
			for _, tv := range t {
				if jsonPartialContains(pv, tv) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	default:
		return cmp.Equal(pattern, target)
	}
}
