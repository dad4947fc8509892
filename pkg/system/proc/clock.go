package proc

import (
	"os"
	"strconv"
)

// DefaultClockTick is the fallback clock tick rate (USER_HZ) used when
// the system cannot report _SC_CLK_TCK. 100 is the value on essentially
// all Linux builds.
const DefaultClockTick = 100

// ClockTicks returns the kernel clock tick rate, used to convert raw
// CPU counters (jiffies) to wall units. The CLK_TCK environment
// variable takes precedence so tests and unusual kernels can override
// it, then sysconf(_SC_CLK_TCK) where the platform provides it, then
// DefaultClockTick.
func ClockTicks() int {
	if v := os.Getenv("CLK_TCK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	if n := sysconfClockTick(); n > 0 {
		return n
	}
	return DefaultClockTick
}
