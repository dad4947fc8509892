//go:build !linux

package proc

// Non-Linux builds take the DefaultClockTick fallback. The gopsutil
// source converts seconds to ticks with the same rate the caller later
// divides by, so the reported milliseconds are unaffected.
func sysconfClockTick() int { return 0 }
