package proc

import (
	"errors"
	"math"

	"github.com/shirou/gopsutil/v4/process"
)

// psSource reads accounting data through gopsutil and therefore works
// on every platform the library supports. gopsutil reports CPU time in
// seconds, so the source converts back to clock ticks using the same
// rate callers divide by; the round trip cancels out.
type psSource struct {
	ticksPerSecond float64
}

func newPSSource(ticksPerSecond int) *psSource {
	if ticksPerSecond <= 0 {
		ticksPerSecond = DefaultClockTick
	}
	return &psSource{ticksPerSecond: float64(ticksPerSecond)}
}

func (s *psSource) Pids() ([]int32, error) {
	return process.Pids()
}

func (s *psSource) CPUTicks(pid int32) (uint64, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return 0, goneOrPS(err)
	}
	times, err := p.Times()
	if err != nil {
		return 0, goneOrPS(err)
	}
	sec := times.User + times.System
	if sec < 0 {
		sec = 0
	}
	return uint64(math.Round(sec * s.ticksPerSecond)), nil
}

func (s *psSource) OwnerUID(pid int32) (uint32, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return 0, goneOrPS(err)
	}
	uids, err := p.Uids()
	if err != nil {
		return 0, goneOrPS(err)
	}
	if len(uids) == 0 {
		return 0, ErrNoOwner
	}
	// First entry is the real uid.
	return uint32(uids[0]), nil
}

func goneOrPS(err error) error {
	if errors.Is(err, process.ErrorProcessNotRunning) {
		return ErrGone
	}
	return err
}
