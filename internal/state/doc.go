// Package state owns the mutable registry of mocks and the log of
// unmatched requests for one server.
//
// State is guarded by a single mutex. Most mutations arrive as Commands
// processed one at a time by an actor goroutine started with Run, which
// keeps CreateMock/RemoveMock/GetMockHits/GetLastUnmatchedRequest
// serialized without callers needing to reason about the lock directly.
// The one exception is request matching: the connection handler calls
// MatchAndRespond directly, taking the same mutex itself, because a
// match must happen synchronously with the network write and cannot wait
// its turn behind other commands in the channel.
package state
