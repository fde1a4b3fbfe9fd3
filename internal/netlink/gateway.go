package netlink

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultGateway returns the default route's gateway address for the given
// interface, or ok=false when the routing table has none. Absence of a
// gateway is a classification input, not an error.
func (i *Inspector) DefaultGateway(iface string) (string, bool) {
	b, err := os.ReadFile(filepath.Join(i.ProcRoot, "net", "route"))
	if err != nil {
		return "", false
	}
	return ParseDefaultGateway(string(b), iface)
}

// ParseDefaultGateway scans /proc/net/route text for the default route
// (destination 0.0.0.0) on iface and decodes its little-endian hex gateway.
// Pure function; malformed rows are skipped.
func ParseDefaultGateway(raw, iface string) (string, bool) {
	lines := strings.Split(raw, "\n")
	for n, line := range lines {
		if n == 0 {
			continue // header row
		}
		f := strings.Fields(line)
		if len(f) < 3 {
			continue
		}
		if f[0] != iface || f[1] != "00000000" {
			continue
		}
		gw, err := strconv.ParseUint(f[2], 16, 32)
		if err != nil || gw == 0 {
			continue
		}
		ip := net.IPv4(byte(gw), byte(gw>>8), byte(gw>>16), byte(gw>>24))
		return ip.String(), true
	}
	return "", false
}
