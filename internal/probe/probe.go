package probe

import (
	"context"

	"github.com/hamed0406/netwatch/internal/domain"
)

// Prober reduces a batch of echo requests against one target to a single
// ProbeResult. Implementations must never fail the cycle: any execution or
// parse problem reads as total loss.
type Prober interface {
	Probe(ctx context.Context, target string, count int) domain.ProbeResult
}

// Resolver performs a single name-resolution attempt, succeed/fail only.
type Resolver interface {
	Resolve(ctx context.Context, hostname string) bool
}
