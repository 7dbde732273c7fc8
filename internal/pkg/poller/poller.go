package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Poller runs a task immediately on Start and then on every tick of a fixed
// interval until Stop. Stop cancels the task's context and waits for the worker
// goroutine, so no background work outlives the poller. Runs are not
// coordinated: a slow run may still be in flight when the next tick fires, and
// both proceed; the task itself is responsible for resolving that race.
type Poller struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

func New(name string, interval time.Duration, fn func(ctx context.Context) error) *Poller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Poller{
		name:     name,
		interval: interval,
		fn:       fn,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start launches the worker. Calling Start more than once is a no-op.
func (p *Poller) Start() {
	p.once.Do(func() {
		p.wg.Add(1)
		go p.run()
		slog.Info("Poller started", "name", p.name, "interval", p.interval)
	})
}

// Stop cancels the worker and waits for it to exit.
func (p *Poller) Stop() {
	p.cancel()
	p.wg.Wait()
	slog.Info("Poller stopped", "name", p.name)
}

func (p *Poller) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// Run immediately on start
	p.execute()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.execute()
		}
	}
}

// execute runs the task once. Failures are logged, never surfaced: a transient
// background failure must not disturb the last published state.
func (p *Poller) execute() {
	start := time.Now()
	if err := p.fn(p.ctx); err != nil {
		slog.Error("Poll failed", "name", p.name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Poll completed", "name", p.name, "duration", time.Since(start))
}
