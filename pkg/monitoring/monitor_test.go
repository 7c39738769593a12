package monitoring

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonitorRunsUntilStopped(t *testing.T) {
	m := NewMonitor(MonitorConfig{Interval: 5 * time.Millisecond})

	var calls atomic.Int32

	done := make(chan struct{})

	go func() {
		m.StartMonitoring(context.Background(), func(context.Context) error {
			calls.Add(1)

			return errors.New("ignored")
		})
		close(done)
	}()

	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	m.Stop(context.Background())
	m.Stop(context.Background())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}

func TestMonitorStopsOnContextCancel(t *testing.T) {
	m := NewMonitor(MonitorConfig{Interval: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32

	done := make(chan struct{})

	go func() {
		m.StartMonitoring(ctx, func(context.Context) error {
			calls.Add(1)

			return nil
		})
		close(done)
	}()

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}
