package connection

import (
	"bufio"
	"fmt"
	"log/slog"
	"net"

	"github.com/mockbind/mockbind/internal/reqparse"
	"github.com/mockbind/mockbind/internal/state"
)

// Handle services one accepted connection to completion: parse a
// request, match-and-respond against s, and close the connection. The
// server never keeps connections alive.
func Handle(conn net.Conn, s *state.State, logger *slog.Logger) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	req := reqparse.Parse(reader)

	if req.Failed() {
		body := fmt.Sprintf("failed to parse request: %s", req.ParseError)
		resp := fmt.Sprintf(
			"HTTP/1.1 422 Unprocessable Entity\r\ncontent-type: text/plain\r\ncontent-length: %d\r\nconnection: close\r\n\r\n%s",
			len(body), body,
		)
		if _, err := conn.Write([]byte(resp)); err != nil {
			logger.Warn("failed to write parse-error response", "error", err)
		}
		return
	}

	if err := s.MatchAndRespond(req, conn); err != nil {
		logger.Warn("failed to write response", "error", err)
	}
}
