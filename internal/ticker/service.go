package ticker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ytget/clockbar/internal/logger"
)

var _ Ticker = (*Service)(nil)

// DefaultInterval is the menu-bar refresh cadence
const DefaultInterval = time.Second

// ErrAlreadyRunning is returned by Start on a running service
var ErrAlreadyRunning = errors.New("ticker already running")

// Service fires a callback on a fixed interval
type Service struct {
	mu       sync.Mutex
	interval time.Duration
	onTick   func(time.Time) // callback for UI updates
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewService creates a stopped tick service
func NewService(interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Service{interval: interval}
}

// SetTickCallback sets the function called on every tick
func (s *Service) SetTickCallback(callback func(time.Time)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTick = callback
}

// SetInterval changes the cadence; a running service picks it up on restart
func (s *Service) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interval = interval
}

// Start begins ticking until ctx is cancelled or Stop is called
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return ErrAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(runCtx, s.interval, s.done)

	logger.Debug("Ticker started", "interval", s.interval)
	return nil
}

// Stop halts the service and waits for the tick goroutine to exit
func (s *Service) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	logger.Debug("Ticker stopped")
}

// Running reports whether the service is ticking
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

func (s *Service) run(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			s.clearIfCurrent(done)
			return
		case now := <-t.C:
			s.notifyTick(now)
		}
	}
}

// clearIfCurrent marks the service stopped when the run owning done ended
// on its own, so Running and Start see the cancelled parent context
func (s *Service) clearIfCurrent(done chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != done {
		return
	}
	s.cancel()
	s.cancel, s.done = nil, nil
	logger.Debug("Ticker stopped by context")
}

func (s *Service) notifyTick(now time.Time) {
	s.mu.Lock()
	callback := s.onTick
	s.mu.Unlock()

	if callback != nil {
		callback(now)
	}
}
