package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/reviewpulse/pulse/pkg/lifecycle"
)

func TestWaitForStartup(t *testing.T) {
	lc := lifecycle.New()

	var ran atomic.Bool
	lc.OnStartup(func() {
		time.Sleep(10 * time.Millisecond)
		ran.Store(true)
	})

	if lc.Ready() {
		t.Error("should not be ready before startup completes")
	}

	lc.WaitForStartup()

	if !ran.Load() {
		t.Error("startup hook did not run")
	}
	if !lc.Ready() {
		t.Error("should be ready after startup")
	}
}

func TestShutdownCancelsContext(t *testing.T) {
	lc := lifecycle.New()

	var cleaned atomic.Bool
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		cleaned.Store(true)
	})

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}

	select {
	case <-lc.Context().Done():
	default:
		t.Error("context not cancelled")
	}

	if !cleaned.Load() {
		t.Error("shutdown hook did not complete")
	}
}

func TestShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	release := make(chan struct{})
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		<-release
	})

	err := lc.Shutdown(20 * time.Millisecond)
	close(release)

	if err == nil {
		t.Error("expected timeout error")
	}
}
