// Package connection implements the per-connection pipeline: parse one
// request, match it against a server's state, and emit the response.
package connection
