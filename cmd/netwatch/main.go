package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hamed0406/netwatch/internal/config"
	"github.com/hamed0406/netwatch/internal/health"
	"github.com/hamed0406/netwatch/internal/httpapi"
	"github.com/hamed0406/netwatch/internal/logging"
	"github.com/hamed0406/netwatch/internal/netlink"
	"github.com/hamed0406/netwatch/internal/probe"
	"github.com/hamed0406/netwatch/internal/recordlog"
	"github.com/hamed0406/netwatch/internal/scheduler"
)

func main() {
	_ = godotenv.Load() // optional .env; real env wins

	cfg := config.FromEnv()
	logger, err := logging.New(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	records, err := recordlog.New(cfg.RecordDir)
	if err != nil {
		logger.Error("record_dir_error", zap.Error(err))
		log.Fatal(err)
	}

	ins := netlink.NewInspector()
	ev := &health.Evaluator{
		Links:        ins,
		Routes:       ins,
		Prober:       probe.NewPingProber(),
		Resolver:     probe.NewHostResolver(),
		Interface:    cfg.Interface,
		Gateway:      cfg.Gateway,
		WanA:         cfg.WanA,
		WanB:         cfg.WanB,
		DNSHost:      cfg.DNSHost,
		GatewayCount: cfg.GWCount,
		WanCount:     cfg.WanCount,
		Limits:       cfg.Limits,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var obs scheduler.Observer
	if cfg.StatusAddr != "" {
		api := httpapi.NewServer(logger, cfg.RecordDir)
		obs = api
		go func() {
			logger.Info("status_api_listen", zap.String("addr", cfg.StatusAddr))
			if err := http.ListenAndServe(cfg.StatusAddr, api.Router()); err != nil {
				logger.Warn("status_api_error", zap.Error(err))
			}
		}()
	}

	w := scheduler.NewWatcher(logger, ev, records, obs, cfg.Interval)
	logger.Info("watch_start",
		zap.String("interface", cfg.Interface),
		zap.String("record_dir", cfg.RecordDir),
		zap.Duration("interval", cfg.Interval),
	)
	if err := w.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
