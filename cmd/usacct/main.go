package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/usacct/usacct/pkg/accounting"
	"github.com/usacct/usacct/pkg/report"
	"github.com/usacct/usacct/pkg/system/proc"
)

type opts struct {
	// sampling
	interval time.Duration

	// outputs
	top      int
	jsonOut  bool
	csvPath  string
	htmlPath string
	verbose  bool
}

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "usacct <seconds>",
		Short: "Per-user CPU time accounting over a monitoring window",
		Long: `usacct watches the live process table for a number of seconds and
attributes consumed CPU time to the owning users, then prints one
ranked report.

CPU time consumed before the run started is excluded: the first pass
only records baseline counters. Processes that appear mid-run are
credited in full, and a pid handed to a different user is treated as a
brand-new process. Ctrl-C ends the run early with a report over what
was sampled.

Examples:
  usacct 10
  usacct 60 --interval 500ms --top 5
  usacct 30 --json > usage.json
  usacct 300 --html report.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), o, args)
		},
	}

	root.Flags().DurationVarP(&o.interval, "interval", "i", time.Second, "sampling interval (e.g. 1s, 500ms)")
	root.Flags().IntVarP(&o.top, "top", "n", 0, "limit the report to the top N users (0 = all)")
	root.Flags().BoolVar(&o.jsonOut, "json", false, "emit the report to stdout as JSON instead of a table")
	root.Flags().StringVar(&o.csvPath, "csv", "", "also write the report to a CSV file")
	root.Flags().StringVar(&o.htmlPath, "html", "", "also write a self-contained HTML report")
	root.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "log per-pass sampling stats")

	if err := root.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run(ctx context.Context, o opts, args []string) error {
	seconds, err := strconv.Atoi(args[0])
	if err != nil || seconds <= 0 {
		return fmt.Errorf("monitoring window must be a positive integer of seconds, got %q", args[0])
	}
	if o.interval <= 0 {
		return fmt.Errorf("interval must be > 0")
	}
	if o.top < 0 {
		return fmt.Errorf("top must be >= 0")
	}
	if o.verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	window := time.Duration(seconds) * time.Second
	passes := int(window / o.interval)
	if passes < 1 {
		passes = 1
	}

	// Clock resolution is established once; every pass divides by it.
	tps := proc.ClockTicks()
	eng := accounting.New(proc.NewSource(), &accounting.Config{TicksPerSecond: tps})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Baseline pass: record starting counters so pre-run CPU time
	// stays out of the report.
	if _, err := eng.Sample(true); err != nil {
		return err
	}
	slog.Debug("baseline recorded",
		"window", window, "interval", o.interval, "passes", passes, "clock_tick", tps)

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	done := 0
	for done < passes {
		select {
		case <-ctx.Done():
			slog.Info("interrupted, reporting early", "sampled", done)
			goto END

		case <-ticker.C:
			done++
			st, err := eng.Sample(false)
			if err != nil {
				slog.Warn("sampling pass failed", "pass", done, "err", err)
				continue
			}
			slog.Debug("sampled",
				"pass", done, "scanned", st.Scanned, "skipped", st.Skipped,
				"started", st.Started, "reused", st.Reused, "credited", st.Credited)
		}
	}

END:
	rows := report.Build(eng.Usage())
	if o.top > 0 && len(rows) > o.top {
		rows = rows[:o.top]
	}
	sum := report.Summary{
		Window:   time.Duration(done) * o.interval,
		Interval: o.interval,
		Samples:  done,
	}

	if o.csvPath != "" {
		if err := writeFile(o.csvPath, func(f *os.File) error {
			return report.WriteCSV(f, rows)
		}); err != nil {
			slog.Error("write csv", "path", o.csvPath, "err", err)
		}
	}
	if o.htmlPath != "" {
		if err := writeFile(o.htmlPath, func(f *os.File) error {
			return report.WriteHTML(f, rows, sum)
		}); err != nil {
			slog.Error("write html", "path", o.htmlPath, "err", err)
		}
	}

	if o.jsonOut {
		return report.WriteJSON(os.Stdout, rows)
	}
	if err := report.WriteTable(os.Stdout, rows); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("usacct summary (over %d samples of ~%s):\n", done, o.interval)
	fmt.Printf("- users:    %d\n", len(rows))
	fmt.Printf("- cpu time: %s\n", report.Total(rows).Humanized())
	fmt.Printf("- window:   %s\n", sum.Window)
	fmt.Println()

	return nil
}

func writeFile(path string, render func(*os.File) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
