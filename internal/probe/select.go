package probe

import "github.com/hamed0406/netwatch/internal/domain"

// SelectBest orders two WAN probes by a strict tie-break precedence:
// reachability first, then lower loss, then lower average RTT (an absent
// RTT ranks below any measured one). When nothing separates them, or
// neither is reachable, a wins — the result is always deterministic for
// fixed inputs. The loser is retained as Alternate for the record.
func SelectBest(a, b domain.WanProbe) domain.WanSelection {
	if betterThan(b.Result, a.Result) {
		return domain.WanSelection{Best: b, Alternate: a}
	}
	return domain.WanSelection{Best: a, Alternate: b}
}

// betterThan reports whether y strictly outranks x.
func betterThan(y, x domain.ProbeResult) bool {
	if y.Reachable != x.Reachable {
		return y.Reachable
	}
	if !y.Reachable {
		return false
	}
	if y.LossPercent != x.LossPercent {
		return y.LossPercent < x.LossPercent
	}
	switch {
	case y.AvgRTTMS == nil:
		return false
	case x.AvgRTTMS == nil:
		return true
	default:
		return *y.AvgRTTMS < *x.AvgRTTMS
	}
}
