package notifier

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dghubble/go-twitter/twitter" //nolint:staticcheck // Using stable v1.1 API
	"github.com/dghubble/oauth1"
)

const tweetLimit = 280

// TwitterCredentials holds the OAuth1 user-context credentials
type TwitterCredentials struct {
	APIKey       string
	APISecret    string
	AccessToken  string
	AccessSecret string
}

// TwitterCredentialsFromEnv reads credentials from the TWITTER_* environment variables
func TwitterCredentialsFromEnv() TwitterCredentials {
	return TwitterCredentials{
		APIKey:       os.Getenv("TWITTER_API_KEY"),
		APISecret:    os.Getenv("TWITTER_API_SECRET"),
		AccessToken:  os.Getenv("TWITTER_ACCESS_TOKEN"),
		AccessSecret: os.Getenv("TWITTER_ACCESS_SECRET"),
	}
}

// Complete reports whether all four credentials are set
func (c TwitterCredentials) Complete() bool {
	return c.APIKey != "" && c.APISecret != "" && c.AccessToken != "" && c.AccessSecret != ""
}

// TwitterNotifier posts the menu as a tweet
type TwitterNotifier struct {
	update func(status string) error
}

// NewTwitterNotifier creates a Twitter notifier from OAuth1 credentials
func NewTwitterNotifier(creds TwitterCredentials) (*TwitterNotifier, error) {
	if !creds.Complete() {
		return nil, errors.New("missing required Twitter credentials")
	}

	config := oauth1.NewConfig(creds.APIKey, creds.APISecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessSecret)
	client := twitter.NewClient(config.Client(oauth1.NoContext, token))

	return &TwitterNotifier{
		update: func(status string) error {
			_, _, err := client.Statuses.Update(status, nil)
			return err
		},
	}, nil
}

// Notify posts message as a single tweet, stripped of Markdown and truncated
func (n *TwitterNotifier) Notify(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := n.update(formatTweet(message)); err != nil {
		return fmt.Errorf("failed to post tweet: %w", err)
	}
	return nil
}

// formatTweet removes MarkdownV2 markup and fits the text into a tweet
func formatTweet(message string) string {
	tweet := stripMarkdown(strings.TrimSpace(message))

	runes := []rune(tweet)
	if len(runes) > tweetLimit {
		tweet = string(runes[:tweetLimit-3]) + "..."
	}
	return tweet
}

func stripMarkdown(s string) string {
	var b strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			escaped = false
			b.WriteRune(r)
		case r == '\\':
			escaped = true
		case r == '*':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
