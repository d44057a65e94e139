package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedMatchesWholeTarget(t *testing.T) {
	p := Unified(Exact("/hello?x=1"))
	assert.True(t, p.MatchesTarget("/hello?x=1"))
	assert.False(t, p.MatchesTarget("/hello"))
}

func TestSplitAppliesPathAndQuerySeparately(t *testing.T) {
	p := Split(Exact("/hello"), Exact("x=1"))
	assert.True(t, p.MatchesTarget("/hello?x=1"))
	assert.False(t, p.MatchesTarget("/hello?x=2"))
	assert.False(t, p.MatchesTarget("/other?x=1"))
}

func TestSplitWithNoQueryStringYieldsEmptyQueryPart(t *testing.T) {
	p := Split(Exact("/hello"), Missing())
	assert.True(t, p.MatchesTarget("/hello"))
}
