// Package scheduler triggers menu deliveries on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pfrederiksen/mensa-bot/internal/bot"
	"github.com/pfrederiksen/mensa-bot/internal/logger"
)

// Runner performs one delivery
type Runner interface {
	Run(ctx context.Context) (bot.Outcome, error)
}

// Scheduler runs a Runner on a cron expression
type Scheduler struct {
	cron    *cron.Cron
	runner  Runner
	spec    string
	entryID cron.EntryID

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex // serializes runs
}

// New creates a scheduler for a standard 5-field cron expression
func New(spec string, runner Runner, opts ...cron.Option) (*Scheduler, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(spec); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}

	opts = append([]cron.Option{
		cron.WithParser(parser),
		cron.WithChain(cron.Recover(cron.DefaultLogger)),
	}, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:   cron.New(opts...),
		runner: runner,
		spec:   spec,
		ctx:    ctx,
		cancel: cancel,
	}

	id, err := s.cron.AddFunc(spec, s.runOnce)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("adding schedule: %w", err)
	}
	s.entryID = id

	return s, nil
}

// runOnce is the cron job body
func (s *Scheduler) runOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, err := s.runner.Run(s.ctx)
	if err != nil {
		logger.Error("Scheduled run aborted", logger.Fields{"schedule": s.spec}, err)
		return
	}
	logger.Info("Scheduled run finished", logger.Fields{
		"schedule": s.spec,
		"outcome":  outcome.String(),
		"next_run": s.Next().Format("2006-01-02T15:04:05Z07:00"),
	})
}

// Start starts the cron loop in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Scheduler started", logger.Fields{
		"schedule": s.spec,
		"next_run": s.Next().Format("2006-01-02T15:04:05Z07:00"),
	})
}

// Stop stops the cron loop and waits for a running delivery to finish
func (s *Scheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
	logger.Info("Scheduler stopped", logger.Fields{"schedule": s.spec})
}

// Run starts the scheduler and blocks until ctx is done
func (s *Scheduler) Run(ctx context.Context) {
	s.Start()
	<-ctx.Done()
	s.Stop()
}

// Next returns the next activation time
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entryID).Next
}
