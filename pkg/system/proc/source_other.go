//go:build !linux

package proc

// NewSource returns the gopsutil-backed Source; the proc filesystem
// only exists on Linux.
func NewSource() Source {
	return newPSSource(ClockTicks())
}
