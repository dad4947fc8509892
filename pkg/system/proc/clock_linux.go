//go:build linux

package proc

import "github.com/tklauser/go-sysconf"

func sysconfClockTick() int {
	n, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || n <= 0 {
		return 0
	}
	return int(n)
}
