package sync

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// DefaultInterval is how often connectivity is checked
const DefaultInterval = 30 * time.Second

//go:generate moq -out pinger_mock.go . Pinger

// Pinger checks whether the stock API is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Scheduler delivers sync events when connectivity comes back and keeps
// delivering them on every online tick while records remain queued.
// All events are handled on the Run goroutine, one at a time.
type Scheduler struct {
	pinger   Pinger
	service  Service
	logger   *slog.Logger
	trigger  chan struct{}
	interval time.Duration
	online   atomic.Bool
	retry    atomic.Bool // прошлое событие завершилось ошибкой
}

// NewScheduler creates a connectivity-driven sync scheduler
func NewScheduler(pinger Pinger, service Service, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		pinger:   pinger,
		service:  service,
		logger:   logger,
		interval: interval,
		trigger:  make(chan struct{}, 1),
	}
}

// Trigger requests a sync event on the next loop iteration.
// Repeated calls before the event is handled collapse into one.
func (s *Scheduler) Trigger() {
	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Run checks connectivity until ctx is cancelled
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("Sync scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.Check(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sync scheduler stopped")
			return nil
		case <-ticker.C:
			s.Check(ctx)
		case <-s.trigger:
			s.fire(ctx)
		}
	}
}

// Check pings once and fires a sync event on an offline to online
// transition. The first successful ping counts as a transition.
// While online, it fires again if the last event failed or the queue
// still holds records left by a failed attempt.
func (s *Scheduler) Check(ctx context.Context) bool {
	err := s.pinger.Ping(ctx)
	online := err == nil
	wasOnline := s.online.Swap(online)

	if !online {
		if wasOnline {
			s.logger.Warn("Stock API unreachable, adjustments will be queued", "error", err)
		}
		return false
	}
	if wasOnline {
		if !s.needsRetry(ctx) {
			return false
		}
		s.logger.Info("Retrying sync of queued adjustments")
		s.fire(ctx)
		return true
	}

	s.logger.Info("Connectivity restored")
	s.fire(ctx)
	return true
}

// Online reports the result of the last ping
func (s *Scheduler) Online() bool {
	return s.online.Load()
}

func (s *Scheduler) fire(ctx context.Context) {
	err := s.service.HandleEvent(ctx, SyncTag)
	s.retry.Store(err != nil)
	if err != nil {
		s.logger.Error("Sync event failed", "tag", SyncTag, "error", err)
	}
}

// needsRetry сообщает, нужно ли повторить синхронизацию без смены статуса сети
func (s *Scheduler) needsRetry(ctx context.Context) bool {
	if s.retry.Load() {
		return true
	}
	count, err := s.service.PendingCount(ctx)
	if err != nil {
		s.logger.Warn("Failed to count pending adjustments", "error", err)
		return true
	}
	return count > 0
}
