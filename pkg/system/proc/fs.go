//go:build linux

package proc

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/prometheus/procfs"
	"golang.org/x/sys/unix"
)

// fsSource reads accounting data straight from the proc
// pseudo-filesystem: enumeration and CPU counters via
// prometheus/procfs, ownership via stat(2) on the pid directory, whose
// owner is the uid the kernel runs the process as.
type fsSource struct {
	fs    procfs.FS
	mount string
}

// newFSSource opens the proc filesystem at mount, normally
// procfs.DefaultMountPoint. The mount point is a parameter so tests
// can aim the source at a fixture tree.
func newFSSource(mount string) (*fsSource, error) {
	pfs, err := procfs.NewFS(mount)
	if err != nil {
		return nil, fmt.Errorf("proc: open %s: %w", mount, err)
	}
	return &fsSource{fs: pfs, mount: mount}, nil
}

func (s *fsSource) Pids() ([]int32, error) {
	procs, err := s.fs.AllProcs()
	if err != nil {
		return nil, fmt.Errorf("proc: enumerate %s: %w", s.mount, err)
	}
	pids := make([]int32, 0, len(procs))
	for _, p := range procs {
		pids = append(pids, int32(p.PID))
	}
	return pids, nil
}

func (s *fsSource) CPUTicks(pid int32) (uint64, error) {
	p, err := s.fs.Proc(int(pid))
	if err != nil {
		return 0, goneOr(err)
	}
	stat, err := p.Stat()
	if err != nil {
		return 0, goneOr(err)
	}
	return uint64(stat.UTime) + uint64(stat.STime), nil
}

func (s *fsSource) OwnerUID(pid int32) (uint32, error) {
	var st unix.Stat_t
	if err := unix.Stat(filepath.Join(s.mount, strconv.Itoa(int(pid))), &st); err != nil {
		return 0, goneOr(err)
	}
	return st.Uid, nil
}

// goneOr maps not-found conditions onto ErrGone; anything else, such
// as a permission error, passes through unchanged.
func goneOr(err error) error {
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, unix.ENOENT) || errors.Is(err, unix.ESRCH) {
		return ErrGone
	}
	return err
}
