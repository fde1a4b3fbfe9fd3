package probe

import (
	"testing"

	"github.com/hamed0406/netwatch/internal/domain"
)

func wan(addr string, reachable bool, loss float64, rtt *float64) domain.WanProbe {
	return domain.WanProbe{
		Address: addr,
		Result:  domain.ProbeResult{Reachable: reachable, LossPercent: loss, AvgRTTMS: rtt},
	}
}

func ms(v float64) *float64 { return &v }

func TestSelectBest_ReachabilityDominates(t *testing.T) {
	// a is reachable with terrible metrics, b is unreachable.
	a := wan("1.1.1.1", true, 99, ms(900))
	b := wan("8.8.8.8", false, 100, nil)

	sel := SelectBest(a, b)
	if sel.Best.Address != "1.1.1.1" || sel.Alternate.Address != "8.8.8.8" {
		t.Fatalf("reachable must outrank unreachable: %+v", sel)
	}

	// And the mirror image.
	sel = SelectBest(b, a)
	if sel.Best.Address != "1.1.1.1" {
		t.Fatalf("order of arguments must not matter for dominance: %+v", sel)
	}
}

func TestSelectBest_LowerLossWins(t *testing.T) {
	a := wan("1.1.1.1", true, 5.0, ms(10))
	b := wan("8.8.8.8", true, 2.0, ms(200))

	sel := SelectBest(a, b)
	if sel.Best.Address != "8.8.8.8" {
		t.Fatalf("lower loss must win before rtt is considered: %+v", sel)
	}
}

func TestSelectBest_EqualLossLowerRTTWins(t *testing.T) {
	a := wan("1.1.1.1", true, 1.0, ms(120))
	b := wan("8.8.8.8", true, 1.0, ms(50))

	sel := SelectBest(a, b)
	if sel.Best.Address != "8.8.8.8" {
		t.Fatalf("lower avg rtt must win on equal loss: %+v", sel)
	}
}

func TestSelectBest_PresentRTTBeatsAbsent(t *testing.T) {
	a := wan("1.1.1.1", true, 1.0, nil)
	b := wan("8.8.8.8", true, 1.0, ms(80))

	sel := SelectBest(a, b)
	if sel.Best.Address != "8.8.8.8" {
		t.Fatalf("a measured rtt must outrank an absent one: %+v", sel)
	}
	sel = SelectBest(b, a)
	if sel.Best.Address != "8.8.8.8" {
		t.Fatalf("present-beats-absent must hold in both argument orders: %+v", sel)
	}
}

func TestSelectBest_TieDefaultsToFirst(t *testing.T) {
	// Exactly equal metrics.
	a := wan("1.1.1.1", true, 0, ms(20))
	b := wan("8.8.8.8", true, 0, ms(20))
	if sel := SelectBest(a, b); sel.Best.Address != "1.1.1.1" {
		t.Fatalf("full tie must keep argument order: %+v", sel)
	}

	// Neither reachable.
	a = wan("1.1.1.1", false, 100, nil)
	b = wan("8.8.8.8", false, 100, nil)
	sel := SelectBest(a, b)
	if sel.Best.Address != "1.1.1.1" {
		t.Fatalf("both unreachable must keep argument order: %+v", sel)
	}
	if sel.Best.Result.Reachable {
		t.Fatalf("best of two unreachable probes is still unreachable")
	}
}

func TestSelectBest_Deterministic(t *testing.T) {
	a := wan("1.1.1.1", true, 2.5, ms(31))
	b := wan("8.8.8.8", true, 2.5, ms(29))

	first := SelectBest(a, b)
	for i := 0; i < 50; i++ {
		if got := SelectBest(a, b); got != first {
			t.Fatalf("selection changed between identical invocations: %+v vs %+v", first, got)
		}
	}
}

func TestSelectBest_AlternateAlwaysRetained(t *testing.T) {
	a := wan("1.1.1.1", true, 0, ms(20))
	b := wan("8.8.8.8", false, 100, nil)

	sel := SelectBest(a, b)
	if sel.Alternate.Address != "8.8.8.8" || sel.Alternate.Result.LossPercent != 100 {
		t.Fatalf("loser's stats must survive selection: %+v", sel.Alternate)
	}
}
