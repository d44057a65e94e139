// Package message holds the wire-level data model shared by the connection
// handler and the matcher: a parsed Request and the Response a matching
// Mock renders back onto the same connection.
//
// Both types are plain data — parsing lives in internal/reqparse, matching
// lives in pkg/matching, and serialization lives on Response itself since
// rendering a status line and headers is inseparable from the type.
package message
