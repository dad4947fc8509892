package proc

// Source reads process accounting data from the operating system.
//
// The three reads are deliberately independent: a process may exit at
// any point between them, so any per-pid call may fail with ErrGone
// (or a permission error). Callers treat every per-pid failure as
// "skip this pid for this pass"; the next pass re-observes the table.
type Source interface {
	// Pids lists the identifiers of all currently live processes.
	// Order is unspecified; a pid appears at most once per call.
	Pids() ([]int32, error)

	// CPUTicks returns the cumulative CPU time consumed by pid, user
	// plus system, in clock ticks (see ClockTicks).
	CPUTicks(pid int32) (uint64, error)

	// OwnerUID returns the real uid of the user owning pid.
	OwnerUID(pid int32) (uint32, error)
}
