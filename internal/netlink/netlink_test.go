package netlink

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hamed0406/netwatch/internal/domain"
)

const routeFixture = "Iface\tDestination\tGateway \tFlags\tRefCnt\tUse\tMetric\tMask\t\tMTU\tWindow\tIRTT\n" +
	"eth0\t00000000\t0100A8C0\t0003\t0\t0\t100\t00000000\t0\t0\t0\n" +
	"eth0\t0000A8C0\t00000000\t0001\t0\t0\t100\t00FFFFFF\t0\t0\t0\n" +
	"wlan0\t00000000\t0101A8C0\t0003\t0\t0\t600\t00000000\t0\t0\t0\n"

func TestParseOperState(t *testing.T) {
	cases := map[string]domain.LinkState{
		"up\n":             domain.LinkUp,
		"down\n":           domain.LinkDown,
		"unknown\n":        domain.LinkUnknown,
		"dormant\n":        domain.LinkUnknown,
		"lowerlayerdown\n": domain.LinkUnknown,
		"":                 domain.LinkUnknown,
	}
	for raw, want := range cases {
		if got := ParseOperState(raw); got != want {
			t.Fatalf("ParseOperState(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestParseDefaultGateway(t *testing.T) {
	gw, ok := ParseDefaultGateway(routeFixture, "eth0")
	if !ok || gw != "192.168.0.1" {
		t.Fatalf("expected 192.168.0.1 for eth0, got %q ok=%v", gw, ok)
	}

	gw, ok = ParseDefaultGateway(routeFixture, "wlan0")
	if !ok || gw != "192.168.1.1" {
		t.Fatalf("expected 192.168.1.1 for wlan0, got %q ok=%v", gw, ok)
	}

	if _, ok := ParseDefaultGateway(routeFixture, "eth1"); ok {
		t.Fatalf("interface without a default route must report none")
	}
	if _, ok := ParseDefaultGateway("", "eth0"); ok {
		t.Fatalf("empty table must report none")
	}
	if _, ok := ParseDefaultGateway("Iface\tDestination\ngarbage line\n", "eth0"); ok {
		t.Fatalf("malformed rows must be skipped, not matched")
	}
}

func TestInspector_LinkStateFromSysfs(t *testing.T) {
	sys := t.TempDir()
	dir := filepath.Join(sys, "class", "net", "eth0")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "operstate"), []byte("up\n"), 0o644); err != nil {
		t.Fatalf("write operstate: %v", err)
	}

	ins := &Inspector{SysRoot: sys, ProcRoot: t.TempDir()}
	if got := ins.LinkState("eth0"); got != domain.LinkUp {
		t.Fatalf("expected UP, got %s", got)
	}

	// Missing interface degrades to UNKNOWN, never an error.
	if got := ins.LinkState("eth9"); got != domain.LinkUnknown {
		t.Fatalf("missing interface must read UNKNOWN, got %s", got)
	}
}

func TestInspector_DefaultGatewayFromProcfs(t *testing.T) {
	proc := t.TempDir()
	dir := filepath.Join(proc, "net")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "route"), []byte(routeFixture), 0o644); err != nil {
		t.Fatalf("write route: %v", err)
	}

	ins := &Inspector{SysRoot: t.TempDir(), ProcRoot: proc}
	gw, ok := ins.DefaultGateway("eth0")
	if !ok || gw != "192.168.0.1" {
		t.Fatalf("expected 192.168.0.1, got %q ok=%v", gw, ok)
	}

	// Unreadable table degrades to "no gateway".
	ins.ProcRoot = filepath.Join(proc, "nosuch")
	if _, ok := ins.DefaultGateway("eth0"); ok {
		t.Fatalf("missing route table must report no gateway")
	}
}
