package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.uber.org/multierr"

	"github.com/hamed0406/netwatch/internal/report"
)

func main() {
	dir := os.Getenv("NETWATCH_DIR")
	if dir == "" {
		dir = "/var/log/netwatch"
	}

	now := time.Now()
	var errs error
	for _, tag := range []string{report.MonthTag(now), report.PrevMonthTag(now)} {
		errs = multierr.Append(errs, printMonth(dir, tag))
	}
	if errs != nil {
		fmt.Fprintln(os.Stderr, errs)
		os.Exit(1)
	}
}

func printMonth(dir, tag string) error {
	path := report.LogPath(dir, tag)
	outages, err := report.ScanFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Printf("[%s] no log file: %s\n", tag, path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", tag, err)
	}

	fmt.Printf("\n=== %s — %s ===\n", tag, path)
	if len(outages) == 0 {
		fmt.Println("No outages detected (all rows OK).")
		return nil
	}

	sum := report.Summarize(outages)
	for i, o := range sum.Outages {
		status := string(o.FirstStatus)
		if len(o.Statuses) > 1 {
			status = fmt.Sprintf("%s (+%d more)", o.FirstStatus, len(o.Statuses)-1)
		}
		fmt.Printf("%02d. %-10s from %s to %s  (dur %s)\n",
			i+1, status,
			o.Start.Format(time.RFC3339), o.End.Format(time.RFC3339),
			report.HumanDuration(o.Duration()),
		)
	}
	fmt.Printf("— Total outages: %d\n", len(sum.Outages))
	fmt.Printf("— Cumulative downtime: %s\n", report.HumanDuration(sum.Total))
	fmt.Printf("— Longest single outage: %s\n", report.HumanDuration(sum.Longest))
	return nil
}
