package report

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingTriggerer struct {
	calls atomic.Int32
	err   error
}

func (c *countingTriggerer) Trigger(ctx context.Context) (string, error) {
	c.calls.Add(1)
	return "id", c.err
}

func TestScheduler_TriggersOnEachTick(t *testing.T) {
	reports := &countingTriggerer{}
	s := NewScheduler(5*time.Millisecond, reports)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	require.Eventually(t, func() bool { return reports.calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}

func TestScheduler_KeepsRunningAfterTriggerError(t *testing.T) {
	reports := &countingTriggerer{err: errors.New("db down")}
	s := NewScheduler(5*time.Millisecond, reports)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = s.Start(ctx) }()

	require.Eventually(t, func() bool { return reports.calls.Load() >= 3 }, time.Second, time.Millisecond)
}
