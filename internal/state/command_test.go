package state

import (
	"testing"
	"time"

	"github.com/mockbind/mockbind/pkg/matching"
	"github.com/mockbind/mockbind/pkg/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorProcessesCommandsInOrder(t *testing.T) {
	s := New(nil, 4)
	a := NewActor(s, 0)
	go a.Run()
	defer close(a.Commands)

	m := mock.New("GET", matching.Unified(matching.Exact("/a")))

	createReply := make(chan bool, 1)
	a.Commands <- CreateMockCmd{Mock: m, Reply: createReply}
	require.True(t, waitBool(t, createReply))

	hitsReply := make(chan GetMockHitsResult, 1)
	a.Commands <- GetMockHitsCmd{ID: m.ID, Reply: hitsReply}
	result := waitHits(t, hitsReply)
	assert.True(t, result.Found)
	assert.Equal(t, 0, result.Hits)

	removeReply := make(chan bool, 1)
	a.Commands <- RemoveMockCmd{ID: m.ID, Reply: removeReply}
	require.True(t, waitBool(t, removeReply))

	hitsReply2 := make(chan GetMockHitsResult, 1)
	a.Commands <- GetMockHitsCmd{ID: m.ID, Reply: hitsReply2}
	assert.False(t, waitHits(t, hitsReply2).Found)
}

func TestActorGetLastUnmatchedRequestEmptyRing(t *testing.T) {
	s := New(nil, 4)
	a := NewActor(s, 0)
	go a.Run()
	defer close(a.Commands)

	reply := make(chan GetLastUnmatchedRequestResult, 1)
	a.Commands <- GetLastUnmatchedRequestCmd{Reply: reply}

	select {
	case res := <-reply:
		assert.False(t, res.Found)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for reply")
	}
}

func TestActorWrapperMethodsRoundTrip(t *testing.T) {
	s := New(nil, 4)
	a := NewActor(s, 0)
	go a.Run()
	defer close(a.Commands)

	m := mock.New("GET", matching.Unified(matching.Exact("/a")))

	require.True(t, a.CreateMock(m))

	hits, found := a.GetMockHits(m.ID)
	assert.True(t, found)
	assert.Equal(t, 0, hits)

	_, found = a.GetLastUnmatchedRequest()
	assert.False(t, found)

	a.Reset()
	_, found = a.GetMockHits(m.ID)
	assert.False(t, found)

	require.True(t, a.CreateMock(m))
	require.True(t, a.RemoveMock(m.ID))
	_, found = a.GetMockHits(m.ID)
	assert.False(t, found)
}

func waitBool(t *testing.T, ch <-chan bool) bool {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for reply")
		return false
	}
}

func waitHits(t *testing.T, ch <-chan GetMockHitsResult) GetMockHitsResult {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for reply")
		return GetMockHitsResult{}
	}
}
