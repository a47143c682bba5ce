package kvns

import "time"

// Clock returns the current time as unix seconds.
// Expiration checks and TTL arithmetic use it exclusively.
type Clock interface {
	Now() int64
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() int64

// Now implements Clock.
func (f ClockFunc) Now() int64 {
	return f()
}

// SystemClock reads the wall clock, truncated to whole seconds.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() int64 {
	return time.Now().Unix()
}
