// Package recordlog appends one CSV line per evaluation cycle to a
// month-partitioned log. It is the process's sole output boundary: failures
// here are the only ones allowed to stop the watchdog.
package recordlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/multierr"

	"github.com/hamed0406/netwatch/internal/domain"
)

// Columns is the persisted record layout; the header row written on file
// creation and consumed by the report tool.
var Columns = []string{
	"timestamp", "interface", "link_state",
	"gateway_address", "gateway_reachable", "gateway_loss_pct", "gateway_avg_rtt_ms",
	"wan_best_address", "wan_best_reachable", "wan_best_loss_pct", "wan_best_avg_rtt_ms",
	"wan_alt_address", "wan_alt_reachable", "wan_alt_loss_pct", "wan_alt_avg_rtt_ms",
	"dns_hostname", "dns_reachable", "status",
}

// Writer appends HealthRecords to netwatch_YYYY-MM.csv files under Dir.
// Single writer, append-only; records are never rewritten.
type Writer struct {
	dir string
}

func New(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create record dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Path returns the month partition file for ts.
func (w *Writer) Path(ts time.Time) string {
	return filepath.Join(w.dir, "netwatch_"+ts.Format("2006-01")+".csv")
}

// Append writes one record line, creating the month file (with header) on
// first use. The partition is chosen by the record's own timestamp so a
// cycle straddling midnight on the 1st lands in the month it started.
func (w *Writer) Append(rec domain.HealthRecord) (err error) {
	f, err := os.OpenFile(w.Path(rec.Timestamp), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open record log: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()

	st, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat record log: %w", err)
	}

	cw := csv.NewWriter(f)
	if st.Size() == 0 {
		if err := cw.Write(Columns); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	if err := cw.Write(Row(rec)); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush record: %w", err)
	}
	return nil
}

// Row serializes a record in Columns order. Stages the evaluation never
// reached have an empty address (or hostname) sentinel and serialize all
// their fields as empty strings; an absent average RTT is likewise empty.
func Row(rec domain.HealthRecord) []string {
	row := make([]string, 0, len(Columns))
	row = append(row,
		rec.Timestamp.Format(time.RFC3339),
		rec.Interface,
		string(rec.Link),
	)
	row = append(row, probeFields(rec.GatewayAddress, rec.Gateway)...)
	row = append(row, probeFields(rec.Wan.Best.Address, rec.Wan.Best.Result)...)
	row = append(row, probeFields(rec.Wan.Alternate.Address, rec.Wan.Alternate.Result)...)
	if rec.DNSHostname == "" {
		row = append(row, "", "")
	} else {
		row = append(row, rec.DNSHostname, strconv.FormatBool(rec.DNSReachable))
	}
	row = append(row, string(rec.Status))
	return row
}

func probeFields(addr string, r domain.ProbeResult) []string {
	if addr == "" {
		return []string{"", "", "", ""}
	}
	rtt := ""
	if r.AvgRTTMS != nil {
		rtt = strconv.FormatFloat(*r.AvgRTTMS, 'f', -1, 64)
	}
	return []string{
		addr,
		strconv.FormatBool(r.Reachable),
		strconv.FormatFloat(r.LossPercent, 'f', -1, 64),
		rtt,
	}
}
