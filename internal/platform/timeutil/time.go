package timeutil

import (
	"sync/atomic"
	"time"
)

// RFC3339Millis is RFC 3339 UTC with fixed millisecond precision.
// All response timestamps use this layout.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision.
// Use this format for log timestamps where higher precision is needed.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

var clock atomic.Pointer[func() time.Time]

// SetClock replaces the time source behind Now and returns a func that
// restores the previous one. A nil now restores time.Now. Safe to call while
// other goroutines read timestamps.
func SetClock(now func() time.Time) (restore func()) {
	if now == nil {
		now = time.Now
	}
	prev := clock.Swap(&now)
	return func() { clock.Store(prev) }
}

// Format renders t in UTC with fixed millisecond precision,
// e.g. "2024-01-15T10:30:00.000Z".
func Format(t time.Time) string {
	return t.UTC().Format(RFC3339Millis)
}

// Now returns the current time formatted with Format.
func Now() string {
	if now := clock.Load(); now != nil {
		return Format((*now)())
	}
	return Format(time.Now())
}

// Parse accepts any RFC 3339 timestamp, with or without fractional seconds.
func Parse(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
