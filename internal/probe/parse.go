package probe

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/hamed0406/netwatch/internal/domain"
)

var (
	lossRe = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)% packet loss`)
	// Matches both iputils "rtt min/avg/max/mdev = a/b/c/d ms" and the
	// busybox/BSD "round-trip min/avg/max = a/b/c ms" forms; avg is the
	// second slash-separated value.
	rttRe = regexp.MustCompile(`min/avg/max[^=]*=\s*[0-9.]+/([0-9.]+)/`)
)

// ParsePingOutput reduces raw ping statistics text to a ProbeResult.
// Pure function, no I/O. Any output that cannot be parsed reads as total
// failure (100% loss, no RTT) so a parse problem never aborts a cycle.
func ParsePingOutput(raw string) domain.ProbeResult {
	total := domain.ProbeResult{LossPercent: 100}

	m := lossRe.FindStringSubmatch(raw)
	if m == nil {
		return total
	}
	loss, err := strconv.ParseFloat(m[1], 64)
	if err != nil || loss < 0 || loss > 100 {
		return total
	}
	if loss >= 100 {
		// No successful round trip, nothing to average.
		return total
	}

	res := domain.ProbeResult{Reachable: true, LossPercent: loss}
	if rm := rttRe.FindStringSubmatch(raw); rm != nil {
		if avg, err := strconv.ParseFloat(strings.TrimSpace(rm[1]), 64); err == nil {
			res.AvgRTTMS = &avg
		}
	}
	return res
}
