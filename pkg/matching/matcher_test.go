package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExactMatchesByteEquality(t *testing.T) {
	m := Exact("hello")
	assert.True(t, m.MatchesValue("hello"))
	assert.False(t, m.MatchesValue("Hello"))
	assert.False(t, m.MatchesBinary([]byte("hello")))
}

func TestRegexMatchesPattern(t *testing.T) {
	m := Regex("^[0-9]+$")
	assert.True(t, m.MatchesValue("12345"))
	assert.False(t, m.MatchesValue("12a45"))
}

func TestRegexEmptyPatternMatchesAnyValue(t *testing.T) {
	m := Regex("")
	assert.True(t, m.MatchesValue("anything"))
	assert.True(t, m.MatchesValue(""))
}

func TestRegexInvalidPatternNeverMatches(t *testing.T) {
	m := Regex("(unterminated")
	assert.False(t, m.MatchesValue("anything"))
}

func TestAnyMatchesEveryValue(t *testing.T) {
	m := Any()
	assert.True(t, m.MatchesValue("x"))
	assert.True(t, m.MatchesValue(""))
}

func TestMissingMatchesOnlyEmptyValue(t *testing.T) {
	m := Missing()
	assert.True(t, m.MatchesValue(""))
	assert.False(t, m.MatchesValue("x"))
}

func TestAnyOfShortCircuitsOnFirstMatch(t *testing.T) {
	m := AnyOf(Exact("a"), Exact("b"))
	assert.True(t, m.MatchesValue("a"))
	assert.True(t, m.MatchesValue("b"))
	assert.False(t, m.MatchesValue("c"))
}

func TestAllOfRequiresEveryMatcher(t *testing.T) {
	m := AllOf(Regex("^a"), Regex("z$"))
	assert.True(t, m.MatchesValue("abcz"))
	assert.False(t, m.MatchesValue("abc"))
}

func TestBinaryMatchesOnlyAtBinaryArity(t *testing.T) {
	m := Binary([]byte{0xff, 0x00, 0x01})
	assert.False(t, m.MatchesValue(string([]byte{0xff, 0x00, 0x01})))
	assert.True(t, m.MatchesBinary([]byte{0xff, 0x00, 0x01}))
	assert.False(t, m.MatchesBinary([]byte{0xff, 0x00}))
}

func TestAnyOfAllOfDeclineBinaryArity(t *testing.T) {
	bin := []byte{0x01, 0x02}
	assert.False(t, AnyOf(Binary(bin)).MatchesBinary(bin))
	assert.False(t, AllOf(Binary(bin)).MatchesBinary(bin))
}

func TestUrlEncodedMatchesDecodedPair(t *testing.T) {
	m := UrlEncoded("name", "a b")
	assert.True(t, m.MatchesValue("name=a+b&other=1"))
	assert.False(t, m.MatchesValue("Name=a+b"))
}

func TestMatchesValuesMissingOnEmptyList(t *testing.T) {
	assert.True(t, MatchesValues(Missing(), nil))
	assert.False(t, MatchesValues(Missing(), []string{""}))
}

func TestMatchesValuesRequiresAllValuesToMatch(t *testing.T) {
	m := Exact("x")
	assert.True(t, MatchesValues(m, []string{"x", "x"}))
	assert.False(t, MatchesValues(m, []string{"x", "y"}))
	assert.False(t, MatchesValues(m, nil))
}

func TestMatchesValuesAnyOfContainingMissingMatchesEmptyList(t *testing.T) {
	m := AnyOf(Missing(), Exact("x"))
	assert.True(t, MatchesValues(m, nil))
	assert.True(t, MatchesValues(m, []string{"x"}))
	assert.False(t, MatchesValues(m, []string{"y"}))
}

func TestMatchesValuesAllOfRequiresEveryBranchToAcceptEmptyList(t *testing.T) {
	accepting := AllOf(Missing(), Missing())
	assert.True(t, MatchesValues(accepting, nil))

	rejecting := AllOf(Missing(), Exact("x"))
	assert.False(t, MatchesValues(rejecting, nil))
}

func TestStringRendersDiagnosticForm(t *testing.T) {
	assert.Equal(t, `Exact("a")`, Exact("a").String())
	assert.Equal(t, "Any", Any().String())
	assert.Equal(t, "Missing", Missing().String())
	assert.Contains(t, AnyOf(Exact("a"), Exact("b")).String(), "AnyOf(")
}
