package connection

import (
	"bufio"
	"io"
	"net"
	"testing"

	"github.com/mockbind/mockbind/internal/state"
	"github.com/mockbind/mockbind/pkg/logging"
	"github.com/mockbind/mockbind/pkg/matching"
	"github.com/mockbind/mockbind/pkg/message"
	"github.com/mockbind/mockbind/pkg/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRespondsWithMatchedMockBody(t *testing.T) {
	s := state.New(logging.Nop(), 4)
	m := mock.New("GET", matching.Unified(matching.Exact("/hello")))
	m.Response.Body = message.BytesBody("world")
	s.CreateMock(m)

	client, server := net.Pipe()
	done := make(chan struct{})
	go func() {
		Handle(server, s, logging.Nop())
		close(done)
	}()

	_, err := client.Write([]byte("GET /hello HTTP/1.1\r\n\r\n"))
	require.NoError(t, err)

	resp, err := io.ReadAll(client)
	require.NoError(t, err)
	<-done

	assert.Contains(t, string(resp), "200 OK")
	assert.Contains(t, string(resp), "world")
}

func TestHandleRespondsWith422OnParseFailure(t *testing.T) {
	s := state.New(logging.Nop(), 4)

	client, server := net.Pipe()
	done := make(chan struct{})
	go func() {
		Handle(server, s, logging.Nop())
		close(done)
	}()

	_, err := client.Write([]byte("garbage request\r\n\r\n"))
	require.NoError(t, err)

	resp, err := io.ReadAll(client)
	require.NoError(t, err)
	<-done

	assert.Contains(t, string(resp), "422 Unprocessable Entity")
}

func TestHandleRespondsWith501OnNoMatch(t *testing.T) {
	s := state.New(logging.Nop(), 4)

	client, server := net.Pipe()
	done := make(chan struct{})
	go func() {
		Handle(server, s, logging.Nop())
		close(done)
	}()

	_, err := client.Write([]byte("GET /missing HTTP/1.1\r\n\r\n"))
	require.NoError(t, err)

	reader := bufio.NewReader(client)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	<-done

	assert.Contains(t, line, "501 Not Implemented")
}
