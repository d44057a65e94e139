package reqparse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mockbind/mockbind/pkg/message"
)

// MaxBodyBytes bounds how much of a request body Parse will buffer for a
// Content-Length request, guarding against a malicious or buggy client
// claiming an enormous length. Chunked bodies are bounded the same way,
// checked cumulatively as chunks arrive.
const MaxBodyBytes = 32 << 20 // 32 MiB

// Parse reads one HTTP/1.1 request from r.
//
// On success it returns a Request with ParseError empty, Method upper-cased,
// and Headers lowercased and in source order. On failure it returns a
// Request whose ParseError explains why; callers must not treat such a
// Request as eligible for matching — a parse failure always yields a
// synthetic error response instead of a partial match attempt.
func Parse(r *bufio.Reader) *message.Request {
	req := &message.Request{}

	line, err := readLine(r)
	if err != nil {
		req.ParseError = fmt.Sprintf("failed to read request line: %v", err)
		return req
	}

	parts := strings.SplitN(line, " ", 3)
	if len(parts) != 3 {
		req.ParseError = "malformed request line: " + line
		return req
	}
	req.Method = strings.ToUpper(parts[0])
	req.PathAndQuery = parts[1]
	if !strings.HasPrefix(req.PathAndQuery, "/") {
		req.ParseError = "malformed request target: " + req.PathAndQuery
		return req
	}

	headers, err := readHeaders(r)
	if err != nil {
		req.ParseError = err.Error()
		return req
	}
	req.Headers = headers

	body, err := readBody(r, headers)
	if err != nil {
		req.ParseError = err.Error()
		return req
	}
	req.Body = body

	return req
}

// readLine reads up to and including a "\r\n" or "\n" terminator and
// returns the line with the terminator stripped.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readHeaders reads header fields until the blank line that ends them.
// Field names are lowercased; values have leading optional whitespace
// (OWS) trimmed per RFC 7230 but are otherwise untrimmed.
func readHeaders(r *bufio.Reader) ([]message.Header, error) {
	var headers []message.Header
	for {
		line, err := readLine(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read headers: %w", err)
		}
		if line == "" {
			return headers, nil
		}
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			return nil, fmt.Errorf("malformed header line: %s", line)
		}
		name := strings.ToLower(strings.TrimSpace(line[:idx]))
		value := strings.TrimLeft(line[idx+1:], " \t")
		headers = append(headers, message.Header{Name: name, Value: value})
	}
}

func headerValue(headers []message.Header, name string) (string, bool) {
	for _, h := range headers {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}

// readBody reads the request body per Content-Length or dechunks a
// Transfer-Encoding: chunked body. A request with neither header has no
// body.
func readBody(r *bufio.Reader, headers []message.Header) ([]byte, error) {
	if te, ok := headerValue(headers, "transfer-encoding"); ok && strings.EqualFold(strings.TrimSpace(te), "chunked") {
		return readChunkedBody(r)
	}

	cl, ok := headerValue(headers, "content-length")
	if !ok {
		return nil, nil
	}
	length, err := strconv.Atoi(strings.TrimSpace(cl))
	if err != nil || length < 0 {
		return nil, fmt.Errorf("malformed content-length: %s", cl)
	}
	if length > MaxBodyBytes {
		return nil, fmt.Errorf("content-length %d exceeds maximum %d", length, MaxBodyBytes)
	}
	if length == 0 {
		return nil, nil
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return body, nil
}

// readChunkedBody dechunks a Transfer-Encoding: chunked body to completion,
// discarding any trailer fields after the terminating zero-length chunk.
func readChunkedBody(r *bufio.Reader) ([]byte, error) {
	var body []byte
	for {
		sizeLine, err := readLine(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read chunk size: %w", err)
		}
		if idx := strings.IndexByte(sizeLine, ';'); idx >= 0 {
			sizeLine = sizeLine[:idx]
		}
		size, err := strconv.ParseInt(strings.TrimSpace(sizeLine), 16, 64)
		if err != nil || size < 0 {
			return nil, fmt.Errorf("malformed chunk size: %s", sizeLine)
		}
		if size == 0 {
			// Discard trailer headers, if any, up to the final blank line.
			for {
				line, err := readLine(r)
				if err != nil {
					return nil, fmt.Errorf("failed to read chunk trailer: %w", err)
				}
				if line == "" {
					break
				}
			}
			return body, nil
		}
		if int64(len(body))+size > MaxBodyBytes {
			return nil, fmt.Errorf("chunked body exceeds maximum %d bytes", MaxBodyBytes)
		}

		chunk := make([]byte, size)
		if _, err := io.ReadFull(r, chunk); err != nil {
			return nil, fmt.Errorf("failed to read chunk body: %w", err)
		}
		body = append(body, chunk...)

		if _, err := readLine(r); err != nil {
			return nil, fmt.Errorf("failed to read chunk terminator: %w", err)
		}
	}
}
