package domain

import "time"

// DefaultFailureKeywords is the canonical keyword table used to classify a
// log line as a failed authentication attempt. Matching is case-insensitive
// substring matching. Keep this table in sync with config defaults and tests.
var DefaultFailureKeywords = []string{
	"failed password",
	"invalid user",
	"authentication failure",
	"401",
	"403",
	"unauthorized",
}

// AuthEvent is a single authentication-related log line after extraction.
// Events are immutable once produced: detectors share one event slice and
// never modify it.
type AuthEvent struct {
	// Timestamp is the zero value when no known format matched the line.
	// Such events still count toward totals but are excluded from
	// time-window detection and the report time range.
	Timestamp time.Time `json:"timestamp,omitempty"`
	IP        string    `json:"ip"`
	Username  string    `json:"username,omitempty"`
	Failure   bool      `json:"failure"`
	RawLine   string    `json:"raw_line,omitempty"`
}

// HasTimestamp reports whether a timestamp was successfully parsed from the
// source line.
func (e *AuthEvent) HasTimestamp() bool {
	return !e.Timestamp.IsZero()
}
