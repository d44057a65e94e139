package state

import (
	"bytes"
	"testing"

	"github.com/mockbind/mockbind/pkg/matching"
	"github.com/mockbind/mockbind/pkg/message"
	"github.com/mockbind/mockbind/pkg/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMock(method, path string) *mock.Mock {
	return mock.New(method, matching.Unified(matching.Exact(path)))
}

func TestCreateMockStampsCreationOrder(t *testing.T) {
	s := New(nil, 4)
	a := newTestMock("GET", "/a")
	b := newTestMock("GET", "/b")

	require.True(t, s.CreateMock(a))
	require.True(t, s.CreateMock(b))
	assert.Less(t, a.CreatedAt, b.CreatedAt)
}

func TestGetMockHitsReportsFoundAndCount(t *testing.T) {
	s := New(nil, 4)
	m := newTestMock("GET", "/a")
	s.CreateMock(m)

	hits, found := s.GetMockHits(m.ID)
	assert.True(t, found)
	assert.Equal(t, 0, hits)

	_, found = s.GetMockHits("nonexistent")
	assert.False(t, found)
}

func TestRemoveMockIsIdempotent(t *testing.T) {
	s := New(nil, 4)
	m := newTestMock("GET", "/a")
	s.CreateMock(m)

	assert.True(t, s.RemoveMock(m.ID))
	assert.True(t, s.RemoveMock(m.ID))

	_, found := s.GetMockHits(m.ID)
	assert.False(t, found)
}

func TestMatchAndRespondPrefersNewestMatchingMock(t *testing.T) {
	s := New(nil, 4)
	older := newTestMock("GET", "/h")
	older.Response = &message.Response{Status: message.NewStatus(200), Body: message.BytesBody("old")}
	newer := newTestMock("GET", "/h")
	newer.Response = &message.Response{Status: message.NewStatus(200), Body: message.BytesBody("new")}

	s.CreateMock(older)
	s.CreateMock(newer)

	req := &message.Request{Method: "GET", PathAndQuery: "/h"}
	var buf bytes.Buffer
	require.NoError(t, s.MatchAndRespond(req, &buf))

	assert.Contains(t, buf.String(), "new")
	assert.Equal(t, 0, older.ActualHits)
	assert.Equal(t, 1, newer.ActualHits)
}

func TestMatchAndRespondWritesBare501OnMiss(t *testing.T) {
	s := New(nil, 4)
	req := &message.Request{Method: "GET", PathAndQuery: "/missing"}
	var buf bytes.Buffer
	require.NoError(t, s.MatchAndRespond(req, &buf))

	assert.Equal(t, "HTTP/1.1 501 Not Implemented\r\nconnection: close\r\n\r\n", buf.String())

	last, found := s.GetLastUnmatchedRequest()
	assert.True(t, found)
	assert.Contains(t, last, "/missing")
}

func TestMatchAndRespondEvictsOldestFromFullRing(t *testing.T) {
	s := New(nil, 1)
	var buf bytes.Buffer
	s.MatchAndRespond(&message.Request{Method: "GET", PathAndQuery: "/one"}, &buf)
	s.MatchAndRespond(&message.Request{Method: "GET", PathAndQuery: "/two"}, &buf)

	last, found := s.GetLastUnmatchedRequest()
	assert.True(t, found)
	assert.Contains(t, last, "/two")
	assert.NotContains(t, last, "/one")
}

func TestResetClearsMocksAndUnmatched(t *testing.T) {
	s := New(nil, 4)
	s.CreateMock(newTestMock("GET", "/a"))
	var buf bytes.Buffer
	s.MatchAndRespond(&message.Request{Method: "GET", PathAndQuery: "/missing"}, &buf)

	s.Reset()

	_, found := s.GetLastUnmatchedRequest()
	assert.False(t, found)

	req := &message.Request{Method: "GET", PathAndQuery: "/a"}
	buf.Reset()
	require.NoError(t, s.MatchAndRespond(req, &buf))
	assert.Equal(t, "HTTP/1.1 501 Not Implemented\r\nconnection: close\r\n\r\n", buf.String())
}
