package config

import (
	"os"
	"strconv"
	"time"

	"github.com/hamed0406/netwatch/internal/domain"
)

type Config struct {
	Interface  string        // watched interface, e.g. "eth0"
	RecordDir  string        // month-partitioned CSV logs
	LogDir     string        // diagnostic (zap) logs
	Interval   time.Duration // sleep between end of one cycle and the next
	Gateway    string        // empty means discover from the routing table
	GWCount    int           // echo requests per gateway probe
	WanCount   int           // echo requests per WAN probe
	WanA       string
	WanB       string
	DNSHost    string
	StatusAddr string // empty disables the status API
	Limits     domain.Thresholds
}

// FromEnv reads the configuration once at startup; the core treats it as
// immutable afterwards.
func FromEnv() Config {
	iface := os.Getenv("NETWATCH_IFACE")
	if iface == "" {
		iface = "eth0"
	}

	recordDir := os.Getenv("NETWATCH_DIR")
	if recordDir == "" {
		recordDir = "/var/log/netwatch"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	interval := 60 * time.Second
	if v := os.Getenv("NETWATCH_INTERVAL_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			interval = time.Duration(n) * time.Second
		}
	}

	wanA := os.Getenv("NETWATCH_WAN_A")
	if wanA == "" {
		wanA = "1.1.1.1"
	}
	wanB := os.Getenv("NETWATCH_WAN_B")
	if wanB == "" {
		wanB = "8.8.8.8"
	}

	dnsHost := os.Getenv("NETWATCH_DNS_HOST")
	if dnsHost == "" {
		dnsHost = "www.example.com"
	}

	return Config{
		Interface:  iface,
		RecordDir:  recordDir,
		LogDir:     logDir,
		Interval:   interval,
		Gateway:    os.Getenv("NETWATCH_GATEWAY"),
		GWCount:    intEnv("NETWATCH_GW_COUNT", 3),
		WanCount:   intEnv("NETWATCH_WAN_COUNT", 5),
		WanA:       wanA,
		WanB:       wanB,
		DNSHost:    dnsHost,
		StatusAddr: os.Getenv("NETWATCH_STATUS_ADDR"),
		Limits: domain.Thresholds{
			LossWarnPercent: floatEnv("NETWATCH_LOSS_WARN_PCT", 3),
			RTTWarnMS:       floatEnv("NETWATCH_RTT_WARN_MS", 150),
		},
	}
}

func intEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func floatEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			return f
		}
	}
	return def
}
