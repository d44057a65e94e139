// Package mock defines the Mock record: the matchers and canned response a
// test registers, plus its hit count and expectation range.
//
// A Mock is plain data. It knows how to decide whether a Request matches
// it (Matches) and how to render itself for diagnostics (String), but it
// has no notion of a server or a registry — those concerns belong to the
// state actor that owns a slice of Mocks behind a mutex and the server
// package that exposes a handle to test code.
package mock
