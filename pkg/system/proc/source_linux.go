//go:build linux

package proc

import "github.com/prometheus/procfs"

// NewSource returns the preferred Source for this system: the procfs
// reader when /proc is mounted, otherwise the gopsutil fallback.
func NewSource() Source {
	if s, err := newFSSource(procfs.DefaultMountPoint); err == nil {
		return s
	}
	return newPSSource(ClockTicks())
}
