package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/netwatch/internal/domain"
)

// Evaluator produces one cycle's HealthRecord.
type Evaluator interface {
	Evaluate(ctx context.Context) domain.HealthRecord
}

// Appender persists one record. An Append failure is fatal to the loop.
type Appender interface {
	Append(rec domain.HealthRecord) error
}

// Observer is notified of each emitted record (e.g. the status API's
// latest-record holder). May be nil.
type Observer interface {
	Observe(rec domain.HealthRecord)
}

// Watcher runs evaluation cycles back to back, separated by Interval
// measured from the end of one cycle — cycle duration adds to the
// effective period. Cycles never overlap: the next one starts only after
// the previous record is appended.
type Watcher struct {
	Logger    *zap.Logger
	Evaluator Evaluator
	Records   Appender
	Observer  Observer
	Interval  time.Duration
}

func NewWatcher(logger *zap.Logger, ev Evaluator, rec Appender, obs Observer, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Watcher{
		Logger:    logger,
		Evaluator: ev,
		Records:   rec,
		Observer:  obs,
		Interval:  interval,
	}
}

// Run loops until ctx is cancelled. It does an immediate first cycle.
// Only a record-append failure returns an error; everything the evaluator
// encounters is already absorbed into the record's status.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		rec := w.Evaluator.Evaluate(ctx)
		if ctx.Err() != nil {
			// Terminated mid-cycle: the partial record is abandoned.
			w.Logger.Info("watch_stopped")
			return nil
		}

		if err := w.Records.Append(rec); err != nil {
			w.Logger.Error("record_append_error", zap.Error(err))
			return err
		}
		if w.Observer != nil {
			w.Observer.Observe(rec)
		}

		w.Logger.Info("cycle_done",
			zap.String("status", string(rec.Status)),
			zap.String("link_state", string(rec.Link)),
			zap.String("gateway", rec.GatewayAddress),
			zap.String("wan_best", rec.Wan.Best.Address),
			zap.Bool("dns_ok", rec.DNSReachable),
		)

		select {
		case <-ctx.Done():
			w.Logger.Info("watch_stopped")
			return nil
		case <-time.After(w.Interval):
		}
	}
}
