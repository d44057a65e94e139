package message

import (
	"fmt"
	"io"
	"strings"
)

// Body is either a fixed byte buffer or a streaming callback. Implementations
// are BytesBody and FuncBody; the interface exists only so Response.Body can
// hold either without an extra wrapper struct.
type Body interface {
	isBody()
}

// BytesBody is a response body held entirely in memory.
type BytesBody []byte

func (BytesBody) isBody() {}

// FuncBody streams a response body by writing to w as it is called.
// Callback bodies are never compared by content. Mock diagnostics
// (Mock.String) do not render the response, so a FuncBody does not appear
// in them at all.
type FuncBody func(w io.Writer) error

func (FuncBody) isBody() {}

// Response is a mock's canned reply: status, headers, and body. Responses
// are immutable once a Mock is created; WriteTo is the only thing that
// mutates wire state, and it mutates the connection, not the Response.
type Response struct {
	Status  Status
	Headers []Header
	Body    Body
}

// NewResponse returns the default response: 200 OK, connection: close,
// empty body.
func NewResponse() *Response {
	return &Response{
		Status:  StatusOK,
		Headers: []Header{{Name: "connection", Value: "close"}},
		Body:    BytesBody(nil),
	}
}

// WriteTo serializes the response to w: status line, then headers in
// insertion order (lowercased on emission), then a framing header chosen
// by inspecting what the caller already set, then the body.
//
// Framing precedence: if Body is BytesBody, emit content-length unless
// the caller already set content-length or transfer-encoding; if Body is
// FuncBody, emit transfer-encoding: chunked under the same condition.
// This avoids double-framing a response whose headers already commit to
// one scheme.
func (r *Response) WriteTo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "HTTP/1.1 %s\r\n", r.Status.Line()); err != nil {
		return err
	}

	hasContentLength, hasTransferEncoding := false, false
	for _, h := range r.Headers {
		switch strings.ToLower(h.Name) {
		case "content-length":
			hasContentLength = true
		case "transfer-encoding":
			hasTransferEncoding = true
		}
		if _, err := fmt.Fprintf(w, "%s: %s\r\n", strings.ToLower(h.Name), h.Value); err != nil {
			return err
		}
	}

	switch body := r.Body.(type) {
	case BytesBody:
		if !hasContentLength && !hasTransferEncoding {
			if _, err := fmt.Fprintf(w, "content-length: %d\r\n", len(body)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\r\n"); err != nil {
			return err
		}
		_, err := w.Write(body)
		return err
	case FuncBody:
		if !hasContentLength && !hasTransferEncoding {
			if _, err := io.WriteString(w, "transfer-encoding: chunked\r\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\r\n"); err != nil {
			return err
		}
		cw := &chunkedWriter{w: w}
		if err := body(cw); err != nil {
			return err
		}
		return cw.finish()
	default:
		_, err := io.WriteString(w, "\r\n")
		return err
	}
}

// chunkedWriter wraps an io.Writer, emitting each Write as one HTTP
// chunked-transfer-encoding chunk. finish emits the terminating chunk.
type chunkedWriter struct {
	w io.Writer
}

func (c *chunkedWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if _, err := fmt.Fprintf(c.w, "%x\r\n", len(p)); err != nil {
		return 0, err
	}
	n, err := c.w.Write(p)
	if err != nil {
		return n, err
	}
	if _, err := io.WriteString(c.w, "\r\n"); err != nil {
		return n, err
	}
	return n, nil
}

func (c *chunkedWriter) finish() error {
	_, err := io.WriteString(c.w, "0\r\n\r\n")
	return err
}
