package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DispatcherConfig tunes the background delivery queue
type DispatcherConfig struct {
	QueueSize int
	Workers   int
	// Timeout bounds a single delivery
	Timeout time.Duration
}

// Dispatcher hands notifications to a Notifier on background workers.
// Delivery is best effort: failures are logged and never reach the caller.
type Dispatcher struct {
	notifier Notifier
	config   DispatcherConfig
	logger   zerolog.Logger

	queue chan Notification
	wg    sync.WaitGroup

	mu      sync.RWMutex
	started bool
	closed  bool
}

// NewDispatcher creates a Dispatcher. Call Start before dispatching.
func NewDispatcher(notifier Notifier, config DispatcherConfig, logger zerolog.Logger) *Dispatcher {
	if config.QueueSize < 1 {
		config.QueueSize = 1
	}
	if config.Workers < 1 {
		config.Workers = 1
	}
	return &Dispatcher{
		notifier: notifier,
		config:   config,
		logger:   logger.With().Str("component", "notify_dispatcher").Logger(),
		queue:    make(chan Notification, config.QueueSize),
	}
}

// Start launches the workers. Deliveries inherit ctx, so cancelling it aborts
// in-flight sends.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true

	for i := 0; i < d.config.Workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx, i)
	}
	d.logger.Info().Int("workers", d.config.Workers).Int("queueSize", d.config.QueueSize).Msg("Notification dispatcher started")
}

// Dispatch enqueues n without blocking. It reports false when the notification
// was dropped because the queue is full or the dispatcher is stopped.
func (d *Dispatcher) Dispatch(n Notification) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn().Str("to", n.To).Msg("Dispatcher stopped, dropping notification")
		return false
	}

	select {
	case d.queue <- n:
		return true
	default:
		d.logger.Warn().Str("to", n.To).Str("subject", n.Subject).Msg("Notification queue full, dropping notification")
		return false
	}
}

// Stop rejects new notifications and waits for queued ones to be delivered
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
	d.logger.Info().Msg("Notification dispatcher stopped")
}

func (d *Dispatcher) worker(ctx context.Context, id int) {
	defer d.wg.Done()
	for n := range d.queue {
		d.deliver(ctx, id, n)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, worker int, n Notification) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().Interface("panic", r).Str("to", n.To).Msg("Notifier panicked")
		}
	}()

	deliveryCtx := ctx
	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		deliveryCtx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	if err := d.notifier.Notify(deliveryCtx, n); err != nil {
		d.logger.Error().Err(err).Int("worker", worker).Str("to", n.To).Str("subject", n.Subject).Msg("Failed to deliver notification")
		return
	}
	d.logger.Debug().Int("worker", worker).Str("to", n.To).Dur("took", time.Since(start)).Msg("Notification delivered")
}
