package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// StoreFacade exposes the subset of application functionality required by the worker.
type StoreFacade interface {
	Checkpoint(ctx context.Context) error
}

// Checkpointer periodically writes full-state snapshots between the
// bootstrap and shutdown checkpoints. An interval of zero or less disables
// it, leaving the store on its default two-point durability contract.
type Checkpointer struct {
	facade   StoreFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewCheckpointer constructs the periodic checkpoint worker.
func NewCheckpointer(facade StoreFacade, interval time.Duration, logger *slog.Logger) *Checkpointer {
	return &Checkpointer{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background checkpointing. No-op when disabled. The run
// loop outlives the startup hook context and stops only via Stop.
func (c *Checkpointer) Start(ctx context.Context) {
	if c.interval <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	runCtx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	c.wg.Add(1)
	go c.run(runCtx)
}

// Stop waits for an in-flight checkpoint to finish.
func (c *Checkpointer) Stop() {
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *Checkpointer) run(ctx context.Context) {
	defer c.wg.Done()
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.checkpoint(ctx)
		}
	}
}

// checkpoint failures are logged and the next tick retries; the shutdown
// checkpoint remains the durability backstop.
func (c *Checkpointer) checkpoint(ctx context.Context) {
	start := time.Now()
	if err := c.facade.Checkpoint(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		c.logger.Error("periodic checkpoint failed", slog.String("error", err.Error()))
		return
	}
	c.logger.Info("periodic checkpoint written", slog.Duration("took", time.Since(start)))
}
