package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/mensa-bot/internal/bot"
	"github.com/pfrederiksen/mensa-bot/internal/config"
	"github.com/pfrederiksen/mensa-bot/internal/logger"
	"github.com/pfrederiksen/mensa-bot/internal/menu"
	"github.com/pfrederiksen/mensa-bot/internal/notifier"
	"github.com/pfrederiksen/mensa-bot/internal/scheduler"
	"github.com/pfrederiksen/mensa-bot/internal/scraper"
	"github.com/pfrederiksen/mensa-bot/internal/telegram"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mensa-bot",
		Short: "Post today's cafeteria menu to a Telegram chat",
		Long: `A bot that fetches the weekly cafeteria menu page, extracts today's offers
and posts them to a Telegram chat. Without a subcommand it behaves like "send".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSend,
	}

	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(newSendCmd(), newPreviewCmd(), newScheduleCmd())
	return cmd
}

func newSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send",
		Short: "Fetch today's menu and send it once",
		Args:  cobra.NoArgs,
		RunE:  runSend,
	}
}

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the menu message for a weekday without sending it",
		Args:  cobra.NoArgs,
		RunE:  runPreview,
	}
	cmd.Flags().Int("day", -1, "Weekday to render, 0 (Monday) to 6 (Sunday); default today")
	cmd.Flags().String("format", "text", "Output format: text or json")
	return cmd
}

func newScheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Keep running and send the menu on the configured cron schedule",
		Args:  cobra.NoArgs,
		RunE:  runSchedule,
	}
}

// setup loads the configuration and installs the logger
func setup(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	logger.SetDefault(logger.New(cfg.LogLevel, cmd.ErrOrStderr()))
	return cfg, nil
}

// newBot builds a bot from validated configuration
func newBot(cfg *config.Config, out io.Writer) (*bot.Bot, error) {
	labels, err := cfg.Labels()
	if err != nil {
		return nil, err
	}

	n, err := buildNotifier(cfg, out)
	if err != nil {
		return nil, err
	}

	return bot.New(scraper.New(cfg.MenuURL), n, bot.WithLabels(labels)), nil
}

// buildNotifier returns the delivery channels selected by cfg
func buildNotifier(cfg *config.Config, out io.Writer) (notifier.Notifier, error) {
	if cfg.DryRun {
		return notifier.NewDryRunNotifier(out), nil
	}

	client, err := telegram.NewClient(cfg.BotToken, cfg.ChatID)
	if err != nil {
		return nil, &config.ConfigError{Reason: err.Error()}
	}
	channels := notifier.Multi{notifier.NewTelegramNotifier(client)}

	if cfg.Twitter {
		tw, err := notifier.NewTwitterNotifier(notifier.TwitterCredentialsFromEnv())
		if err != nil {
			return nil, &config.ConfigError{Reason: err.Error()}
		}
		channels = append(channels, tw)
	}

	if len(channels) == 1 {
		return channels[0], nil
	}
	return channels, nil
}

// runSend posts today's menu once
func runSend(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	b, err := newBot(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	outcome, err := b.Run(cmd.Context())
	logger.Debug("Run metrics", logger.MetricsSnapshot())
	if err != nil {
		return err
	}

	if outcome == bot.OutcomeNoMenu {
		fmt.Fprintln(cmd.OutOrStdout(), "No menu for today")
	}
	return nil
}

// runPreview renders the message for a weekday and prints it
func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}

	format := OutputFormat(strings.ToLower(mustString(cmd, "format")))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", format)
	}

	now := time.Now()
	weekday, _ := cmd.Flags().GetInt("day")
	if weekday < 0 {
		weekday = menu.WeekdayIndex(now)
	}
	if weekday > 6 {
		return fmt.Errorf("invalid day: %d (must be 0-6)", weekday)
	}

	labels, err := cfg.Labels()
	if err != nil {
		return err
	}

	src := scraper.New(cfg.MenuURL)
	b := bot.New(src, notifier.NewDryRunNotifier(io.Discard), bot.WithLabels(labels))

	msg, ok, err := b.Message(cmd.Context(), weekday)
	if err != nil {
		return err
	}

	return WriteOutput(cmd.OutOrStdout(), &PreviewResult{
		GeneratedAt: now.UTC(),
		Source:      src.URL(),
		Weekday:     weekday,
		Available:   ok,
		Message:     msg,
	}, format)
}

// runSchedule blocks and sends the menu on every cron activation
func runSchedule(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	b, err := newBot(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	s, err := scheduler.New(cfg.Schedule, b)
	if err != nil {
		return &config.ConfigError{Reason: err.Error()}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.Run(ctx)
	return nil
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(ExitError)
	}
}
