package message

import (
	"strings"
)

// Header is one (lowercased name, raw value) pair. Request headers preserve
// source order and allow repeats, so Headers is a slice rather than a map.
type Header struct {
	Name  string
	Value string
}

// Request is one parsed HTTP/1.1 request.
//
// Method is upper-cased ASCII. PathAndQuery is the raw, percent-encoded
// request-target — it is never parsed into path/query components here;
// that split is the matcher's job (see pkg/matching.PathAndQuery) because
// whether to split at all is a per-mock decision. Headers preserve
// insertion order and repeats. ParseError is non-empty only when parsing
// failed, in which case Method/PathAndQuery/Headers/Body should not be
// relied on.
type Request struct {
	Method       string
	PathAndQuery string
	Headers      []Header
	Body         []byte
	ParseError   string
}

// Failed reports whether parsing produced an error.
func (r *Request) Failed() bool {
	return r.ParseError != ""
}

// FindHeaderValues returns all values for the given header name, compared
// case-insensitively, in the order they appeared on the wire.
func (r *Request) FindHeaderValues(name string) []string {
	lower := strings.ToLower(name)
	var values []string
	for _, h := range r.Headers {
		if h.Name == lower {
			values = append(values, h.Value)
		}
	}
	return values
}

// Formatted renders a compact diagnostic representation of the request,
// used in assertion failure messages when no mock matched:
//
//	\r\nMETHOD path\r\nname: value\r\n…\r\nbody?\r\n
func (r *Request) Formatted() string {
	var b strings.Builder
	b.WriteString("\r\n")
	b.WriteString(r.Method)
	b.WriteString(" ")
	b.WriteString(r.PathAndQuery)
	b.WriteString("\r\n")
	for _, h := range r.Headers {
		b.WriteString(h.Name)
		b.WriteString(": ")
		b.WriteString(h.Value)
		b.WriteString("\r\n")
	}
	if len(r.Body) > 0 {
		b.Write(r.Body)
		b.WriteString("\r\n")
	}
	return b.String()
}
