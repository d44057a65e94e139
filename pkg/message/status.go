package message

import "strconv"

// Status is an HTTP status code plus the reason phrase rendered in the
// status line. Use NewStatus to build one from a numeric code; a code
// outside the well-known table renders its reason as "Custom".
type Status struct {
	Code   int
	Reason string
}

// StatusOK is the default response status.
var StatusOK = Status{Code: 200, Reason: "OK"}

// reasonPhrases covers the IANA-registered codes exercised by tests and
// common mock scenarios; anything else falls back to "Custom".
var reasonPhrases = map[int]string{
	100: "Continue",
	101: "Switching Protocols",
	200: "OK",
	201: "Created",
	202: "Accepted",
	204: "No Content",
	206: "Partial Content",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	307: "Temporary Redirect",
	308: "Permanent Redirect",
	400: "Bad Request",
	401: "Unauthorized",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	413: "Payload Too Large",
	415: "Unsupported Media Type",
	418: "I'm a teapot",
	422: "Unprocessable Entity",
	429: "Too Many Requests",
	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
}

// NewStatus builds a Status from a numeric code, looking up its reason
// phrase. Validating that code falls within [100, 999] is the caller's
// responsibility (mock creation returns mockerr.InvalidStatusCode
// otherwise); NewStatus itself never fails.
func NewStatus(code int) Status {
	if reason, ok := reasonPhrases[code]; ok {
		return Status{Code: code, Reason: reason}
	}
	return Status{Code: code, Reason: "Custom"}
}

// Line renders the status-line fragment after "HTTP/1.1 ", e.g. "200 OK".
func (s Status) Line() string {
	return strconv.Itoa(s.Code) + " " + s.Reason
}
