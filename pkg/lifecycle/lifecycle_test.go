package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/gym-rutinas/pkg/lifecycle"
)

func TestCoordinator_StartupMarksReady(t *testing.T) {
	lc := lifecycle.New()

	var checker lifecycle.ReadinessChecker = lc
	if checker.Ready() {
		t.Fatal("Ready() = true before WaitForStartup")
	}

	var ran atomic.Int32
	for range 3 {
		lc.OnStartup(func() {
			time.Sleep(5 * time.Millisecond)
			ran.Add(1)
		})
	}

	lc.WaitForStartup()

	if got := ran.Load(); got != 3 {
		t.Errorf("startup hooks run = %d, want 3", got)
	}
	if !checker.Ready() {
		t.Error("Ready() = false after WaitForStartup")
	}
}

func TestCoordinator_ShutdownRunsHooks(t *testing.T) {
	lc := lifecycle.New()
	ctx := lc.Context()

	var closed atomic.Bool
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		closed.Store(true)
	})

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if !closed.Load() {
		t.Error("shutdown hook did not run")
	}

	select {
	case <-ctx.Done():
	default:
		t.Error("context not cancelled after Shutdown")
	}
}

func TestCoordinator_ShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		time.Sleep(300 * time.Millisecond)
	})

	if err := lc.Shutdown(20 * time.Millisecond); err == nil {
		t.Error("Shutdown() error = nil, want timeout")
	}
}
