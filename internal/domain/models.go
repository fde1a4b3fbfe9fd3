package domain

import "time"

// LinkState is the operational state of the watched interface, read fresh
// each cycle.
type LinkState string

const (
	LinkUp      LinkState = "UP"
	LinkDown    LinkState = "DOWN"
	LinkUnknown LinkState = "UNKNOWN"
)

// Status is the single classification produced per cycle. StatusUnknown is
// the pre-evaluation default and must never appear in an emitted record.
type Status string

const (
	StatusUnknown     Status = "UNKNOWN"
	StatusLinkDown    Status = "LINK_DOWN"
	StatusNoGateway   Status = "NO_GATEWAY"
	StatusGatewayDown Status = "GW_DOWN"
	StatusWanDown     Status = "WAN_DOWN"
	StatusWanDegraded Status = "WAN_DEGRADED"
	StatusDNSDown     Status = "DNS_DOWN"
	StatusOK          Status = "OK"
)

// ProbeResult is the reduced outcome of one multi-sample probe against one
// target. AvgRTTMS is nil when no reply was received or the measurement
// could not be parsed.
type ProbeResult struct {
	Reachable   bool     `json:"reachable"`
	LossPercent float64  `json:"loss_percent"`
	AvgRTTMS    *float64 `json:"avg_rtt_ms"` // pointer to allow nil
}

// WanProbe pairs a probe result with the address it measured.
type WanProbe struct {
	Address string      `json:"address"`
	Result  ProbeResult `json:"result"`
}

// WanSelection holds both WAN probes after selection; Best drives the
// status, Alternate is retained for the record only.
type WanSelection struct {
	Best      WanProbe `json:"best"`
	Alternate WanProbe `json:"alternate"`
}

// HealthRecord is one cycle's full output, the unit of persistence.
// Fields for stages the evaluation never reached stay zero-valued.
type HealthRecord struct {
	Timestamp      time.Time    `json:"timestamp"`
	Interface      string       `json:"interface"`
	Link           LinkState    `json:"link_state"`
	GatewayAddress string       `json:"gateway_address"`
	Gateway        ProbeResult  `json:"gateway"`
	Wan            WanSelection `json:"wan"`
	DNSHostname    string       `json:"dns_hostname"`
	DNSReachable   bool         `json:"dns_reachable"`
	Status         Status       `json:"status"`
}

// Thresholds are the degradation bounds applied to the selected-best WAN
// result only.
type Thresholds struct {
	LossWarnPercent float64
	RTTWarnMS       float64
}
