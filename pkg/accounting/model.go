package accounting

import "github.com/usacct/usacct/pkg/types"

// DefaultMaxUsers caps how many distinct owners an Engine tracks.
// Real systems have a few dozen; the cap only exists so a hostile or
// broken uid source cannot grow the table without bound.
const DefaultMaxUsers = 4096

// Config tunes an Engine. The zero value of every field means "use the
// default", so New(src, nil) is valid.
type Config struct {
	// TicksPerSecond is the clock tick rate used to convert raw
	// counters to milliseconds. Fixed for the Engine's lifetime.
	// Defaults to proc.ClockTicks().
	TicksPerSecond int

	// MaxUsers bounds the accumulator table. Owners first seen after
	// the table is full are not tracked; sampling continues. Defaults
	// to DefaultMaxUsers.
	MaxUsers int

	// Resolve maps an owner uid to a display name. Defaults to
	// users.Name (login name, decimal uid fallback).
	Resolve func(uid uint32) string
}

// UserUsage is the CPU time attributed to one owner since monitoring
// began. CPUMillis never decreases over a run.
type UserUsage struct {
	UID       uint32       `json:"uid"`
	Name      string       `json:"name"`
	CPUMillis types.Millis `json:"cpu_millis"`
}

// Stats summarizes a single sampling pass.
type Stats struct {
	Scanned  int          // pids enumerated
	Skipped  int          // pids that vanished or were unreadable mid-pass
	Started  int          // pids observed for the first time
	Reused   int          // pids whose owner changed since last seen
	Credited types.Millis // milliseconds attributed by this pass
}

// procRecord is the per-pid state kept between passes. Records are
// never removed; one whose pid stops appearing is simply never
// consulted again unless the kernel hands the pid out anew.
type procRecord struct {
	uid       uint32
	lastTicks uint64
}
