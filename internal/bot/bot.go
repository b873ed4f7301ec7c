// Package bot runs one menu delivery: fetch the page, render today's offers and
// hand the message to a notifier.
package bot

import (
	"context"
	"errors"
	"time"

	"github.com/pfrederiksen/mensa-bot/internal/logger"
	"github.com/pfrederiksen/mensa-bot/internal/menu"
	"github.com/pfrederiksen/mensa-bot/internal/notifier"
)

// Outcome describes how a run ended
type Outcome int

const (
	OutcomeSent Outcome = iota
	OutcomeNoMenu
	OutcomeFetchFailed
	OutcomeDeliveryFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeNoMenu:
		return "no_menu"
	case OutcomeFetchFailed:
		return "fetch_failed"
	case OutcomeDeliveryFailed:
		return "delivery_failed"
	default:
		return "unknown"
	}
}

// Fetcher supplies the parsed menu table
type Fetcher interface {
	FetchMenu(ctx context.Context) (menu.Table, error)
}

// Bot wires the menu source to a notifier
type Bot struct {
	fetcher  Fetcher
	notifier notifier.Notifier
	labels   menu.Labels
	now      func() time.Time
}

// Option configures a Bot
type Option func(*Bot)

// WithLabels sets the label set used to render the menu
func WithLabels(labels menu.Labels) Option {
	return func(b *Bot) { b.labels = labels }
}

// WithClock overrides the time source used to pick the weekday
func WithClock(now func() time.Time) Option {
	return func(b *Bot) { b.now = now }
}

// New creates a Bot with German labels and the system clock
func New(fetcher Fetcher, n notifier.Notifier, opts ...Option) *Bot {
	b := &Bot{
		fetcher:  fetcher,
		notifier: n,
		labels:   menu.German,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Message fetches the menu and renders it for weekday (0 = Monday).
// It returns false without fetching on weekends.
func (b *Bot) Message(ctx context.Context, weekday int) (string, bool, error) {
	if weekday < 0 || weekday > 4 {
		return "", false, nil
	}

	start := time.Now()
	table, err := b.fetcher.FetchMenu(ctx)
	logger.RecordTiming("menu.fetch", time.Since(start))
	if err != nil {
		return "", false, err
	}

	logger.Debug("Fetched menu table", logger.Fields{"table": table.String()})

	msg, ok := menu.Extract(table, weekday, b.labels)
	return msg, ok, nil
}

// Run delivers today's menu. Fetch and delivery failures are logged and
// reported through the Outcome; only context cancellation is returned as an error.
func (b *Bot) Run(ctx context.Context) (Outcome, error) {
	weekday := menu.WeekdayIndex(b.now())
	fields := logger.Fields{"weekday": weekday}

	msg, ok, err := b.Message(ctx, weekday)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return OutcomeFetchFailed, err
		}
		logger.Error("Fetching menu failed", fields, err)
		logger.IncrCounter("menu.fetch_failed")
		return OutcomeFetchFailed, nil
	}
	if !ok {
		logger.Info("No menu for today", fields)
		logger.IncrCounter("menu.no_menu")
		return OutcomeNoMenu, nil
	}

	fields["chars"] = len([]rune(msg))
	if err := b.notifier.Notify(ctx, msg); err != nil {
		if errors.Is(err, context.Canceled) {
			return OutcomeDeliveryFailed, err
		}
		logger.Error("Sending menu failed", fields, err)
		logger.IncrCounter("menu.delivery_failed")
		return OutcomeDeliveryFailed, nil
	}

	logger.Info("Menu sent", fields)
	logger.IncrCounter("menu.sent")
	return OutcomeSent, nil
}
