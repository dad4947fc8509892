// Package accounting turns raw cumulative CPU counters into monotonic
// per-user totals, excluding anything consumed before monitoring began.
package accounting

import (
	"fmt"

	"github.com/usacct/usacct/pkg/system/proc"
	"github.com/usacct/usacct/pkg/system/users"
	"github.com/usacct/usacct/pkg/types"
)

// Engine owns all sampling state. It is not safe for concurrent use:
// the driver calls Sample from one goroutine and reads Usage when done.
type Engine struct {
	src      proc.Source
	tps      uint64
	maxUsers int
	resolve  func(uid uint32) string

	procs map[int32]*procRecord
	byUID map[uint32]*UserUsage
	order []uint32 // uids in first-attribution order, for stable output
}

// New creates an Engine reading from src. Zero or nil cfg fields take
// the defaults documented on Config.
func New(src proc.Source, cfg *Config) *Engine {
	var merged Config
	if cfg != nil {
		merged = *cfg
	}
	if merged.TicksPerSecond <= 0 {
		merged.TicksPerSecond = proc.ClockTicks()
	}
	if merged.MaxUsers <= 0 {
		merged.MaxUsers = DefaultMaxUsers
	}
	if merged.Resolve == nil {
		merged.Resolve = users.Name
	}

	return &Engine{
		src:      src,
		tps:      uint64(merged.TicksPerSecond),
		maxUsers: merged.MaxUsers,
		resolve:  merged.Resolve,
		procs:    make(map[int32]*procRecord),
		byUID:    make(map[uint32]*UserUsage),
	}
}

// Sample performs one full pass over the live process table.
//
// A baseline pass records current counters without attributing
// anything, so CPU time consumed before monitoring began stays out of
// the totals. Regular passes attribute the counter growth since the
// previous observation to the owning user. A pid first seen after the
// baseline is credited its entire counter (it has no pre-monitoring
// history), and a pid whose owner changed is treated as brand new: the
// kernel reused the identifier for an unrelated process.
//
// A pid that exits between enumeration and read is skipped; the next
// pass re-observes the table. Only enumeration failure is returned.
func (e *Engine) Sample(baseline bool) (Stats, error) {
	pids, err := e.src.Pids()
	if err != nil {
		return Stats{}, fmt.Errorf("accounting: enumerate processes: %w", err)
	}

	var st Stats
	st.Scanned = len(pids)

	for _, pid := range pids {
		ticks, err := e.src.CPUTicks(pid)
		if err != nil {
			st.Skipped++
			continue
		}
		uid, err := e.src.OwnerUID(pid)
		if err != nil {
			st.Skipped++
			continue
		}

		rec, known := e.procs[pid]
		if !known || rec.uid != uid {
			if known {
				st.Reused++
			} else {
				st.Started++
			}
			e.procs[pid] = &procRecord{uid: uid, lastTicks: ticks}
			if !baseline {
				// Born (or reborn) after monitoring started: the whole
				// counter is attributable.
				if ms := e.toMillis(ticks); ms > 0 {
					st.Credited += e.credit(uid, ms)
				}
			}
			continue
		}

		// Known process, same owner: attribute the growth since the
		// previous observation. A regressed counter credits nothing but
		// still re-bases the record.
		var delta uint64
		if ticks > rec.lastTicks {
			delta = ticks - rec.lastTicks
		}
		rec.lastTicks = ticks
		if !baseline && delta > 0 {
			st.Credited += e.credit(uid, e.toMillis(delta))
		}
	}

	return st, nil
}

// Usage returns a copy of every tracked owner's accumulated usage, in
// first-attribution order.
func (e *Engine) Usage() []UserUsage {
	out := make([]UserUsage, 0, len(e.order))
	for _, uid := range e.order {
		out = append(out, *e.byUID[uid])
	}
	return out
}

// Users reports how many distinct owners are currently tracked.
func (e *Engine) Users() int { return len(e.byUID) }

func (e *Engine) toMillis(ticks uint64) types.Millis {
	return types.Millis(ticks * 1000 / e.tps)
}

// credit adds ms to uid's accumulator, creating it on first
// attribution. Returns what was actually added: zero when the table is
// full and the owner is not among the tracked.
func (e *Engine) credit(uid uint32, ms types.Millis) types.Millis {
	u, ok := e.byUID[uid]
	if !ok {
		if len(e.byUID) >= e.maxUsers {
			return 0
		}
		u = &UserUsage{UID: uid, Name: e.resolve(uid)}
		e.byUID[uid] = u
		e.order = append(e.order, uid)
	}
	u.CPUMillis += ms
	return ms
}
