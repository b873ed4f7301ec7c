package notifier

import (
	"context"
	"fmt"
)

// MessageSender sends a text message to a fixed chat
type MessageSender interface {
	SendMessage(ctx context.Context, text string) error
}

// TelegramNotifier posts the menu to a Telegram chat
type TelegramNotifier struct {
	client MessageSender
}

// NewTelegramNotifier creates a notifier backed by a Telegram client
func NewTelegramNotifier(client MessageSender) *TelegramNotifier {
	return &TelegramNotifier{client: client}
}

// Notify sends message to the configured chat
func (n *TelegramNotifier) Notify(ctx context.Context, message string) error {
	if err := n.client.SendMessage(ctx, message); err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}
	return nil
}
