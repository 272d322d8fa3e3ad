package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/ThePeregrineCo/carstarz-registry/internal/adapter"
	"github.com/ThePeregrineCo/carstarz-registry/internal/domain"
	"github.com/ThePeregrineCo/carstarz-registry/internal/event"
	"github.com/ThePeregrineCo/carstarz-registry/internal/logger"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store"
	"github.com/ThePeregrineCo/carstarz-registry/internal/store/schema"
)

// PendingEventSweeperConfig holds configuration for the pending event sweeper
type PendingEventSweeperConfig struct {
	Interval       time.Duration // Time to sleep between sweep cycles
	BatchSize      int           // Events to process per cycle
	WorkerPoolSize int           // Concurrent workers
}

// pendingEventSweeper re-processes events that were recorded but never
// reached a terminal status, typically after a crash mid-processing.
// Failed events are left alone; those only move again through an
// operator reset.
type pendingEventSweeper struct {
	config    *PendingEventSweeperConfig
	store     store.Store
	events    event.Service
	pool      pond.Pool
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewPendingEventSweeper creates a new pending event sweeper
func NewPendingEventSweeper(
	config *PendingEventSweeperConfig,
	st store.Store,
	events event.Service,
	clock adapter.Clock,
) Sweeper {
	return &pendingEventSweeper{
		config:    config,
		store:     st,
		events:    events,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *pendingEventSweeper) Name() string {
	return "pending-event-sweeper"
}

// Start begins the sweeper's main loop
func (s *pendingEventSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting pending event sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Pending event sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Pending event sweeper stop requested")
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *pendingEventSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping pending event sweeper")

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Pending event sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Pending event sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle runs a single sweep cycle
func (s *pendingEventSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	rows, err := s.fetchPendingWithRetry(ctx)
	if err != nil {
		return fmt.Errorf("failed to get pending events: %w", err)
	}

	if len(rows) == 0 {
		// Nothing to do, wait for the next cycle
		if !s.sleep(ctx, s.config.Interval) {
			return ctx.Err()
		}
		return nil
	}

	logger.InfoCtx(ctx, "Found pending events", zap.Int("count", len(rows)))

	var completedCount, failedCount atomic.Int32

	// Fresh pool per cycle so StopAndWait acts as the cycle barrier
	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	for _, row := range rows {
		s.pool.Submit(func() {
			s.events.ProcessStoredEvent(ctx, row)
			switch row.Status {
			case domain.EventStatusCompleted:
				completedCount.Add(1)
			case domain.EventStatusFailed:
				failedCount.Add(1)
				logger.WarnCtx(ctx, "Event failed during sweep",
					zap.String("event_id", row.ID),
					zap.String("event_type", string(row.EventType)),
					zap.Stringp("error", row.LastError),
				)
			}
		})
	}

	// Wait for all events in the batch to settle
	s.pool.StopAndWait()

	duration := s.clock.Since(startTime)
	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", duration),
		zap.Int("total", len(rows)),
		zap.Int32("completed", completedCount.Load()),
		zap.Int32("failed", failedCount.Load()),
	)

	if !s.sleep(ctx, s.config.Interval) {
		return ctx.Err()
	}

	return nil
}

// fetchPendingWithRetry fetches the next batch with exponential backoff,
// so a transient database outage does not abort the sweep loop
func (s *pendingEventSweeper) fetchPendingWithRetry(ctx context.Context) ([]*schema.BlockchainEvent, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 5 * time.Minute
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5 // Add jitter to prevent thundering herd

	backoffWithContext := backoff.WithContext(b, ctx)

	var rows []*schema.BlockchainEvent
	operation := func() error {
		var err error
		rows, err = s.store.GetPendingEvents(ctx, s.config.BatchSize)
		return err
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Pending event fetch failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoffWithContext, notifyOnError); err != nil {
		return nil, fmt.Errorf("failed after %d attempts: %w", attemptCount, err)
	}

	return rows, nil
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns true if sleep completed normally.
func (s *pendingEventSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
