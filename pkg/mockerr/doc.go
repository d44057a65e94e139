// Package mockerr defines the error taxonomy shared across the mock server
// packages: server lifecycle, mock creation, and request/response framing.
//
// Errors that cross the public API (binding a listener, registering an
// invalid mock) are returned wrapping a sentinel Kind so callers can test
// with errors.Is. Errors that happen mid-connection after the response
// headers can no longer be renegotiated (a write failing partway through,
// a callback body returning an error) are logged by the component that
// observed them instead of being propagated further.
package mockerr
