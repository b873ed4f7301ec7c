package scheduler

import (
	"bytes"
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/mensa-bot/internal/bot"
	"github.com/pfrederiksen/mensa-bot/internal/logger"
)

type countingRunner struct {
	calls atomic.Int32
	err   error
}

func (r *countingRunner) Run(ctx context.Context) (bot.Outcome, error) {
	r.calls.Add(1)
	return bot.OutcomeSent, r.err
}

func quietLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := logger.Default()
	logger.SetDefault(logger.New(logger.LevelDebug, &buf))
	t.Cleanup(func() { logger.SetDefault(original) })
	return &buf
}

func TestNew_InvalidSpec(t *testing.T) {
	for _, spec := range []string{"", "every day", "0 10 * *", "61 10 * * 1-5"} {
		_, err := New(spec, &countingRunner{})
		assert.Error(t, err, "spec %q", spec)
	}
}

func TestNext(t *testing.T) {
	quietLogs(t)
	loc := time.UTC

	s, err := New("0 10 * * 1-5", &countingRunner{}, cron.WithLocation(loc))
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	next := s.Next()
	require.False(t, next.IsZero())
	assert.Equal(t, 10, next.Hour())
	assert.Equal(t, 0, next.Minute())
	assert.NotEqual(t, time.Saturday, next.Weekday())
	assert.NotEqual(t, time.Sunday, next.Weekday())
}

func TestRunOnce(t *testing.T) {
	logs := quietLogs(t)
	runner := &countingRunner{}

	s, err := New("0 10 * * 1-5", runner)
	require.NoError(t, err)

	s.runOnce()
	s.runOnce()

	assert.Equal(t, int32(2), runner.calls.Load())
	assert.Contains(t, logs.String(), `"outcome":"sent"`)
}

func TestRunOnce_Error(t *testing.T) {
	logs := quietLogs(t)

	s, err := New("0 10 * * 1-5", &countingRunner{err: context.Canceled})
	require.NoError(t, err)

	s.runOnce()
	assert.Contains(t, logs.String(), "Scheduled run aborted")
}

func TestRun_StopsOnCancel(t *testing.T) {
	quietLogs(t)

	s, err := New("* * * * *", &countingRunner{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
	assert.Error(t, s.ctx.Err(), "run context is cancelled on stop")
}
