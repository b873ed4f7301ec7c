// Package telegram provides Telegram Bot API integration for posting the daily menu.
//
// Messages are sent with MarkdownV2 formatting using plain HTTP requests against
// the Bot API. Authentication requires a bot token (from @BotFather) and a chat ID.
package telegram
