package health

import "github.com/hamed0406/netwatch/internal/domain"

// Each evaluation stage produces a tagged outcome. An outcome's Halt method
// reports whether the stage terminates the cycle and with which status, so
// every short-circuit point is testable on its own.

type LinkOutcome struct {
	State domain.LinkState
}

// Halt stops evaluation unless the link is confirmed up; an unknown state
// is treated as not-up.
func (o LinkOutcome) Halt() (domain.Status, bool) {
	return domain.StatusLinkDown, o.State != domain.LinkUp
}

type GatewayOutcome struct {
	Address string
	Probe   domain.ProbeResult
}

func (o GatewayOutcome) Halt() (domain.Status, bool) {
	if o.Address == "" {
		return domain.StatusNoGateway, true
	}
	if !o.Probe.Reachable {
		return domain.StatusGatewayDown, true
	}
	return domain.StatusUnknown, false
}

type WanOutcome struct {
	Selection domain.WanSelection
}

func (o WanOutcome) Halt() (domain.Status, bool) {
	return domain.StatusWanDown, !o.Selection.Best.Result.Reachable
}

type DNSOutcome struct {
	Hostname string
	OK       bool
}

func (o DNSOutcome) Halt() (domain.Status, bool) {
	return domain.StatusDNSDown, !o.OK
}

// Classify is the terminal rule: the selected-best WAN result against the
// warning thresholds. Thresholds are inclusive (loss or RTT exactly at the
// bound counts as degraded).
func Classify(best domain.ProbeResult, limits domain.Thresholds) domain.Status {
	if best.LossPercent >= limits.LossWarnPercent {
		return domain.StatusWanDegraded
	}
	if best.AvgRTTMS != nil && *best.AvgRTTMS >= limits.RTTWarnMS {
		return domain.StatusWanDegraded
	}
	return domain.StatusOK
}
