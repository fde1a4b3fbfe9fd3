// cmd/preflight/main.go
package main

import (
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/hamed0406/netwatch/internal/config"
	"github.com/hamed0406/netwatch/internal/domain"
	"github.com/hamed0406/netwatch/internal/netlink"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	_ = godotenv.Load()
	cfg := config.FromEnv()

	if _, err := exec.LookPath("ping"); err != nil {
		fail("ping not found on PATH — probes cannot run.")
	}
	ok("ping binary found")

	ins := netlink.NewInspector()
	switch st := ins.LinkState(cfg.Interface); st {
	case domain.LinkUp:
		ok("interface " + cfg.Interface + " is up")
	case domain.LinkDown:
		warn("interface " + cfg.Interface + " is down — every cycle will record LINK_DOWN.")
	default:
		warn("no operstate for " + cfg.Interface + " — link state will read UNKNOWN.")
	}

	if cfg.Gateway == "" {
		if gw, found := ins.DefaultGateway(cfg.Interface); found {
			ok("default gateway " + gw + " (discovered)")
		} else {
			warn("no default route on " + cfg.Interface + " — cycles will record NO_GATEWAY.")
		}
	} else if net.ParseIP(cfg.Gateway) == nil {
		fail("NETWATCH_GATEWAY is not a valid IP: " + cfg.Gateway)
	} else {
		ok("gateway override " + cfg.Gateway)
	}

	for _, t := range []string{cfg.WanA, cfg.WanB} {
		if net.ParseIP(t) == nil {
			warn("WAN target is not a literal IP: " + t + " (a DNS outage would mask the WAN probe)")
		}
	}

	// The record dir is the only fatal destination at runtime; prove we can
	// write there before the daemon starts.
	if err := os.MkdirAll(cfg.RecordDir, 0o755); err != nil {
		fail("cannot create record dir " + cfg.RecordDir + ": " + err.Error())
	}
	probePath := filepath.Join(cfg.RecordDir, ".preflight")
	if err := os.WriteFile(probePath, []byte("ok\n"), 0o644); err != nil {
		fail("record dir not writable: " + err.Error())
	}
	_ = os.Remove(probePath)
	ok("record dir writable: " + cfg.RecordDir)

	ok("preflight passed")
}
