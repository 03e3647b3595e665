package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/restoops/timeclock-backend-go/internal/pkg/clock"
)

func TestRunOnce_RunsEveryJob(t *testing.T) {
	s := NewScheduler(clock.NewMock(time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)))

	var calls []string
	s.AddJob("first", time.Minute, func(ctx context.Context) error {
		calls = append(calls, "first")
		return nil
	})
	s.AddJob("second", time.Minute, func(ctx context.Context) error {
		calls = append(calls, "second")
		return errors.New("boom")
	})

	s.RunOnce(context.Background())

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("RunOnce calls = %v, want [first second]", calls)
	}
}

func TestStartStop_RunsJobImmediately(t *testing.T) {
	s := NewScheduler(clock.NewMock(time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)))

	ran := make(chan struct{}, 1)
	s.AddJob("sweep", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
}
