// Package config loads mensa-bot settings from flags, environment variables,
// an optional YAML file and .env files.
//
// Precedence (highest first): explicitly set flags, environment variables,
// config file, defaults. Credentials are checked by Validate so that a missing
// token stops the run before any network request is made.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pfrederiksen/mensa-bot/internal/logger"
	"github.com/pfrederiksen/mensa-bot/internal/menu"
	"github.com/pfrederiksen/mensa-bot/internal/scraper"
)

// Keys double as flag names; the matching environment variable is the
// upper-cased key with '-' replaced by '_' (bot-token -> BOT_TOKEN).
const (
	KeyConfigFile = "config"
	KeyBotToken   = "bot-token"
	KeyChatID     = "chat-id"
	KeyMenuURL    = "menu-url"
	KeyLocale     = "locale"
	KeySchedule   = "schedule"
	KeyLogLevel   = "log-level"
	KeyDryRun     = "dry-run"
	KeyTwitter    = "twitter"
)

const DefaultSchedule = "0 10 * * 1-5"

// Config holds the settings for one bot process
type Config struct {
	BotToken string
	ChatID   string
	MenuURL  string
	Locale   string
	Schedule string
	LogLevel logger.Level
	DryRun   bool
	Twitter  bool
}

// ConfigError reports required settings that are missing or invalid
type ConfigError struct {
	Missing []string
	Reason  string
}

func (e *ConfigError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// RegisterFlags adds the configuration flags to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfigFile, "", "YAML config file")
	fs.String(KeyBotToken, "", "Telegram bot token (or env: BOT_TOKEN)")
	fs.String(KeyChatID, "", "Telegram chat ID (or env: CHAT_ID)")
	fs.String(KeyMenuURL, scraper.DefaultMenuURL, "Menu page URL (or env: MENU_URL)")
	fs.String(KeyLocale, "de", "Label language: de or en (or env: LOCALE)")
	fs.String(KeySchedule, DefaultSchedule, "Cron expression for the schedule command (or env: SCHEDULE)")
	fs.String(KeyLogLevel, "info", "Log level: debug, info, warn, error (or env: LOG_LEVEL)")
	fs.Bool(KeyDryRun, false, "Print the message instead of sending it")
	fs.Bool(KeyTwitter, false, "Also post the menu to Twitter (TWITTER_* env vars)")
}

// Load reads the configuration. fs may be nil, in which case only the
// environment, the config file named by CONFIG and defaults are used.
func Load(fs *pflag.FlagSet) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyMenuURL, scraper.DefaultMenuURL)
	v.SetDefault(KeyLocale, "de")
	v.SetDefault(KeySchedule, DefaultSchedule)
	v.SetDefault(KeyLogLevel, "info")

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("binding flags: %w", err)
		}
	}

	if file := v.GetString(KeyConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}

	level, err := logger.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}

	cfg := &Config{
		BotToken: strings.TrimSpace(v.GetString(KeyBotToken)),
		ChatID:   strings.TrimSpace(v.GetString(KeyChatID)),
		MenuURL:  v.GetString(KeyMenuURL),
		Locale:   v.GetString(KeyLocale),
		Schedule: v.GetString(KeySchedule),
		LogLevel: level,
		DryRun:   v.GetBool(KeyDryRun),
		Twitter:  v.GetBool(KeyTwitter),
	}

	if _, err := cfg.Labels(); err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}

	return cfg, nil
}

// loadEnvFile loads .env.local and .env if present; existing variables win
func loadEnvFile() {
	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			logger.Warn("Could not load env file", logger.Fields{"file": name, "error": err.Error()})
		}
	}
}

// Validate checks that the Telegram credentials are present.
// Dry runs never deliver and skip the check.
func (c *Config) Validate() error {
	if c.DryRun {
		return nil
	}

	var missing []string
	if c.BotToken == "" {
		missing = append(missing, "BOT_TOKEN")
	}
	if c.ChatID == "" {
		missing = append(missing, "CHAT_ID")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

// Labels returns the menu label set for the configured locale
func (c *Config) Labels() (menu.Labels, error) {
	return menu.LabelsFor(c.Locale)
}
