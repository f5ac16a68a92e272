package dispatch

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reviewpulse/pulse/pkg/lifecycle"
)

// Dispatcher polls the queue on a fixed interval and hands claimed
// submissions to a bounded worker pool. One Dispatcher runs per process.
type Dispatcher struct {
	rt        *Runtime
	interval  time.Duration
	batchSize int
	group     *errgroup.Group
	logger    *slog.Logger
}

// New creates a Dispatcher from config and runtime dependencies.
func New(cfg *Config, rt *Runtime) *Dispatcher {
	group := new(errgroup.Group)
	group.SetLimit(cfg.MaxWorkers)

	return &Dispatcher{
		rt:        rt,
		interval:  cfg.IntervalDuration(),
		batchSize: cfg.BatchSize,
		group:     group,
		logger:    rt.Logger.With("system", "dispatch"),
	}
}

// Start launches the polling loop under the coordinator's context and
// registers a shutdown hook that waits for in-flight workers to drain.
func (d *Dispatcher) Start(lc *lifecycle.Coordinator) {
	ctx := lc.Context()
	go d.run(ctx)

	lc.OnShutdown(func() {
		<-ctx.Done()
		d.group.Wait()
		d.logger.Info("dispatcher drained")
	})
}

func (d *Dispatcher) run(ctx context.Context) {
	d.logger.Info("dispatcher started",
		"interval", d.interval,
		"batch_size", d.batchSize,
	)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("dispatcher stopping")
			return
		case <-ticker.C:
			d.cycle(ctx)
		}
	}
}

// cycle claims one batch and fans it out. Workers are limited by the
// pool, so a slow engine backs pressure onto subsequent cycles rather
// than piling up goroutines.
func (d *Dispatcher) cycle(ctx context.Context) {
	claimed, err := d.rt.Queue.ClaimBatch(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("claim cycle failed", "error", err)
		return
	}

	for _, sub := range claimed {
		d.group.Go(func() error {
			d.process(ctx, sub)
			return nil
		})
	}
}
