// Package proc provides read-only access to per-process CPU accounting
// data on the host: which processes exist, how much CPU time each has
// consumed, and which user owns it. It is designed to feed delta-based
// attribution loops (see pkg/accounting).
//
// Overview
//
//   - Source interface:
//     Pids() ([]int32, error)
//     CPUTicks(pid int32) (uint64, error)
//     OwnerUID(pid int32) (uint32, error)
//
//     CPUTicks reports the cumulative utime+stime counter in clock
//     ticks; OwnerUID reports the real uid. You typically call all
//     three per sampling pass, once per pid, and tolerate per-pid
//     failures (processes exit whenever they like).
//
//   - Backends:
//
//   - procfs (preferred, Linux): enumerates and reads counters through
//     prometheus/procfs and resolves ownership with stat(2) on the
//     /proc/<pid> directory, which the kernel owns as the process uid.
//
//   - gopsutil (fallback): portable across the platforms the library
//     supports; CPU seconds are converted back to ticks at the same
//     rate callers divide by, so attribution is unchanged.
//
//   - Errors (errs.go):
//     ErrGone    : pid vanished between enumeration and read
//     ErrNoOwner : process alive but its uid could not be determined
//
// # Factory & backend selection
//
// NewSource() picks the backend: procfs when /proc is mounted, gopsutil
// otherwise (and always off Linux). Callers never need to know which
// one they got.
//
// # Clock resolution
//
// Raw counters are in clock ticks (USER_HZ). ClockTicks reports the
// rate: the CLK_TCK environment variable wins when set, then
// sysconf(_SC_CLK_TCK) via go-sysconf (no cgo), then DefaultClockTick.
// Resolution is established once per run; mixing rates across passes
// would skew every delta.
//
// Testing guidance
//
//   - The procfs backend takes its mount point as a parameter, so
//     tests run against a fixture tree under t.TempDir with no
//     privileges needed.
//   - Self-observation (read your own pid, burn CPU, read again) gives
//     a stable monotonic signal on any runner.
//   - Avoid asserting exact counter values; kernels round jiffies and
//     idle runners produce tiny ones.
//
// Package import path: github.com/usacct/usacct/pkg/system/proc
package proc
