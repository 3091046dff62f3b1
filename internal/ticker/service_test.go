package ticker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewService(t *testing.T) {
	service := NewService(0)

	if service.interval != DefaultInterval {
		t.Errorf("Expected interval to default to %v, got %v", DefaultInterval, service.interval)
	}

	if service.Running() {
		t.Error("New service should not be running")
	}
}

func TestStartAndStop(t *testing.T) {
	service := NewService(5 * time.Millisecond)

	var ticks int32
	service.SetTickCallback(func(time.Time) {
		atomic.AddInt32(&ticks, 1)
	})

	if err := service.Start(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !service.Running() {
		t.Error("Expected service to be running")
	}

	deadline := time.Now().Add(2 * time.Second)
	for atomic.LoadInt32(&ticks) < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if atomic.LoadInt32(&ticks) < 3 {
		t.Fatalf("Expected at least 3 ticks, got %d", ticks)
	}

	service.Stop()
	if service.Running() {
		t.Error("Expected service to be stopped")
	}

	stopped := atomic.LoadInt32(&ticks)
	time.Sleep(20 * time.Millisecond)
	if atomic.LoadInt32(&ticks) != stopped {
		t.Error("Expected no ticks after Stop")
	}
}

func TestStartTwice(t *testing.T) {
	service := NewService(time.Hour)
	defer service.Stop()

	if err := service.Start(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := service.Start(context.Background()); err != ErrAlreadyRunning {
		t.Errorf("Expected ErrAlreadyRunning, got %v", err)
	}
}

func TestRestart(t *testing.T) {
	service := NewService(time.Hour)

	if err := service.Start(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	service.Stop()

	service.SetInterval(time.Minute)
	if err := service.Start(context.Background()); err != nil {
		t.Fatalf("Expected restart to succeed, got %v", err)
	}
	service.Stop()

	if service.interval != time.Minute {
		t.Errorf("Expected interval 1m, got %v", service.interval)
	}
}

func TestContextCancelStopsTicks(t *testing.T) {
	service := NewService(2 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	var ticks int32
	service.SetTickCallback(func(time.Time) { atomic.AddInt32(&ticks, 1) })

	if err := service.Start(ctx); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	cancel()
	time.Sleep(10 * time.Millisecond)

	before := atomic.LoadInt32(&ticks)
	time.Sleep(20 * time.Millisecond)
	if atomic.LoadInt32(&ticks) != before {
		t.Error("Expected ticks to stop after context cancellation")
	}

	// Stop still cleans up after the context is gone
	service.Stop()
	if service.Running() {
		t.Error("Expected service to be stopped")
	}
}

func TestParentCancelAllowsRestart(t *testing.T) {
	service := NewService(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	if err := service.Start(ctx); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for service.Running() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if service.Running() {
		t.Fatal("Expected Running to report false after the context was cancelled")
	}

	if err := service.Start(context.Background()); err != nil {
		t.Fatalf("Expected restart after cancelled context, got %v", err)
	}
	if !service.Running() {
		t.Error("Expected service to be running again")
	}
	service.Stop()
}

func TestStopWhenIdle(t *testing.T) {
	service := NewService(time.Second)
	service.Stop()
}
