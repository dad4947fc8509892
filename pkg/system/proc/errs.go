package proc

import "errors"

var (
	// ErrGone indicates that a process disappeared between enumeration
	// and read. Expected during normal sampling; callers skip the pid.
	ErrGone = errors.New("proc: process gone")

	// ErrNoOwner indicates that a process exists but its owning uid
	// could not be determined.
	ErrNoOwner = errors.New("proc: no owner")
)
