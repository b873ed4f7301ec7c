// Package cli implements the command-line interface for mensa-bot.
//
// The cli package provides the Cobra-based commands: send (the default) posts
// today's menu once, preview prints the message for any weekday without
// credentials, and schedule keeps running and posts on a cron schedule. It wires
// the config, scraper, notifier, bot and scheduler packages together.
package cli
