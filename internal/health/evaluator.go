package health

import (
	"context"
	"sync"
	"time"

	"github.com/hamed0406/netwatch/internal/domain"
	"github.com/hamed0406/netwatch/internal/probe"
)

// LinkReader reports an interface's operational state.
type LinkReader interface {
	LinkState(name string) domain.LinkState
}

// GatewayFinder resolves the default gateway for an interface.
type GatewayFinder interface {
	DefaultGateway(iface string) (string, bool)
}

// Evaluator runs one cycle's layered health evaluation. It is stateless:
// every call builds a fresh HealthRecord and nothing is carried between
// cycles.
type Evaluator struct {
	Links    LinkReader
	Routes   GatewayFinder
	Prober   probe.Prober
	Resolver probe.Resolver

	Interface string
	// Gateway, when set, overrides routing-table discovery.
	Gateway      string
	WanA, WanB   string
	DNSHost      string
	GatewayCount int
	WanCount     int
	Limits       domain.Thresholds
}

// Evaluate walks the stage list in order, stopping at the first stage that
// halts. A lower-layer failure fully explains the layers above it, so no
// probe beyond the halting stage is ever issued; the record's untouched
// fields stay zero-valued for stages never reached.
func (e *Evaluator) Evaluate(ctx context.Context) domain.HealthRecord {
	rec := domain.HealthRecord{
		Timestamp: time.Now(),
		Interface: e.Interface,
		Status:    domain.StatusUnknown,
	}

	link := LinkOutcome{State: e.Links.LinkState(e.Interface)}
	rec.Link = link.State
	if st, halt := link.Halt(); halt {
		rec.Status = st
		return rec
	}

	gw := GatewayOutcome{Address: e.gatewayAddress()}
	rec.GatewayAddress = gw.Address
	if gw.Address != "" {
		gw.Probe = e.Prober.Probe(ctx, gw.Address, e.GatewayCount)
		rec.Gateway = gw.Probe
	}
	if st, halt := gw.Halt(); halt {
		rec.Status = st
		return rec
	}

	wan := WanOutcome{Selection: e.probeWAN(ctx)}
	rec.Wan = wan.Selection
	if st, halt := wan.Halt(); halt {
		rec.Status = st
		return rec
	}

	dns := DNSOutcome{Hostname: e.DNSHost, OK: e.Resolver.Resolve(ctx, e.DNSHost)}
	rec.DNSHostname = dns.Hostname
	rec.DNSReachable = dns.OK
	if st, halt := dns.Halt(); halt {
		rec.Status = st
		return rec
	}

	rec.Status = Classify(wan.Selection.Best.Result, e.Limits)
	return rec
}

func (e *Evaluator) gatewayAddress() string {
	if e.Gateway != "" {
		return e.Gateway
	}
	if addr, ok := e.Routes.DefaultGateway(e.Interface); ok {
		return addr
	}
	return ""
}

// probeWAN runs both WAN probes concurrently. Each probe absorbs its own
// failure into a ProbeResult, so one target's outcome never blocks or
// discards the other's.
func (e *Evaluator) probeWAN(ctx context.Context) domain.WanSelection {
	a := domain.WanProbe{Address: e.WanA}
	b := domain.WanProbe{Address: e.WanB}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.Result = e.Prober.Probe(ctx, a.Address, e.WanCount)
	}()
	go func() {
		defer wg.Done()
		b.Result = e.Prober.Probe(ctx, b.Address, e.WanCount)
	}()
	wg.Wait()

	return probe.SelectBest(a, b)
}
