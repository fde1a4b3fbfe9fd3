// Package report reconstructs outage windows from persisted record logs.
// It consumes the CSV stream only; no probe is ever re-run.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hamed0406/netwatch/internal/domain"
)

// Outage is a maximal run of consecutive records whose status is not OK.
type Outage struct {
	Start       time.Time
	End         time.Time
	FirstStatus domain.Status
	Statuses    []domain.Status // distinct, in order of first appearance
	Rows        int
}

func (o Outage) Duration() time.Duration { return o.End.Sub(o.Start) }

// MonthTag formats the partition tag (YYYY-MM) for a reference time.
func MonthTag(ref time.Time) string { return ref.Format("2006-01") }

// PrevMonthTag returns the tag for the month before ref.
func PrevMonthTag(ref time.Time) string {
	firstOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return firstOfMonth.AddDate(0, 0, -1).Format("2006-01")
}

// LogPath is the record file for a month tag under dir.
func LogPath(dir, tag string) string {
	return filepath.Join(dir, "netwatch_"+tag+".csv")
}

// ScanFile reads one month's log and returns its outages in order.
// Malformed rows are skipped, not fatal: the watchdog may have died
// mid-write, and one torn line must not hide a month of history.
func ScanFile(path string) ([]Outage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()
	return scan(f)
}

func scan(r io.Reader) ([]Outage, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	tsCol, stCol := -1, -1
	for i, name := range header {
		switch name {
		case "timestamp":
			tsCol = i
		case "status":
			stCol = i
		}
	}
	if tsCol < 0 || stCol < 0 {
		return nil, fmt.Errorf("log header missing timestamp/status columns")
	}

	var (
		outages []Outage
		cur     *Outage
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // torn or quoted-wrong line
		}
		if len(row) <= tsCol || len(row) <= stCol {
			continue
		}
		ts, err := time.Parse(time.RFC3339, row[tsCol])
		if err != nil {
			continue
		}
		status := domain.Status(row[stCol])

		if status == domain.StatusOK {
			if cur != nil {
				outages = append(outages, *cur)
				cur = nil
			}
			continue
		}
		if cur == nil {
			cur = &Outage{
				Start:       ts,
				End:         ts,
				FirstStatus: status,
				Statuses:    []domain.Status{status},
				Rows:        1,
			}
			continue
		}
		cur.End = ts
		cur.Rows++
		if !containsStatus(cur.Statuses, status) {
			cur.Statuses = append(cur.Statuses, status)
		}
	}
	if cur != nil {
		outages = append(outages, *cur)
	}
	return outages, nil
}

func containsStatus(set []domain.Status, s domain.Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// Summary aggregates one month's outages.
type Summary struct {
	Outages []Outage
	Total   time.Duration
	Longest time.Duration
}

func Summarize(outages []Outage) Summary {
	s := Summary{Outages: outages}
	for _, o := range outages {
		d := o.Duration()
		s.Total += d
		if d > s.Longest {
			s.Longest = d
		}
	}
	return s
}

// HumanDuration renders a duration as "2h 3m 4s", dropping leading zero
// units.
func HumanDuration(d time.Duration) string {
	total := int(d.Seconds())
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
