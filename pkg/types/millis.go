package types

import (
	"fmt"
	"time"
)

// Millis is an int64 wrapper representing an amount of CPU time in
// milliseconds.
type Millis int64

// Humanized returns a human-readable string with automatic unit (ms, s, min, h).
func (m Millis) Humanized() string {
	const (
		second = 1000
		minute = 60 * second
		hour   = 60 * minute
	)
	v := float64(m)
	switch {
	case m >= hour:
		return fmt.Sprintf("%.2f h", v/hour)
	case m >= minute:
		return fmt.Sprintf("%.2f min", v/minute)
	case m >= second:
		return fmt.Sprintf("%.2f s", v/second)
	default:
		return fmt.Sprintf("%d ms", m)
	}
}

// Seconds returns the amount in floating-point seconds.
func (m Millis) Seconds() float64 { return float64(m) / 1000 }

// Duration converts the amount to a time.Duration.
func (m Millis) Duration() time.Duration { return time.Duration(m) * time.Millisecond }
