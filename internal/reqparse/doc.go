// Package reqparse implements the incremental HTTP/1.1 request parser
// consumed by the connection handler.
//
// Parsing is driven by a bufio.Reader rather than net/http's
// http.ReadRequest because the server's scope is intentionally narrower
// than RFC 7230 (no pipelining, trailers, or 100-continue) — a small
// hand-written reader is a closer fit than pulling in the full net/http
// request-reading machinery.
package reqparse
