package probe

import (
	"context"
	"net"
	"strings"
)

// HostResolver checks name resolution through the OS resolver. One attempt,
// no retry; a hang is bounded only by the resolver's own defaults.
type HostResolver struct {
	r *net.Resolver
}

func NewHostResolver() *HostResolver {
	return &HostResolver{r: &net.Resolver{}}
}

func (h *HostResolver) Resolve(ctx context.Context, hostname string) bool {
	hostname = strings.TrimSpace(hostname)
	if hostname == "" {
		return false
	}
	ips, err := h.r.LookupIP(ctx, "ip", hostname)
	return err == nil && len(ips) > 0
}
