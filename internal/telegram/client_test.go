package telegram

import (
	"context"
	"testing"
)

func TestNewClient_Validation(t *testing.T) {
	tests := []struct {
		name      string
		botToken  string
		chatID    string
		wantError bool
	}{
		{
			name:      "valid parameters",
			botToken:  "test-token",
			chatID:    "12345",
			wantError: false,
		},
		{
			name:      "empty bot token",
			botToken:  "",
			chatID:    "12345",
			wantError: true,
		},
		{
			name:      "empty chat ID",
			botToken:  "test-token",
			chatID:    "",
			wantError: true,
		},
		{
			name:      "both empty",
			botToken:  "",
			chatID:    "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.botToken, tt.chatID)
			if tt.wantError {
				if err == nil {
					t.Error("NewClient() expected error, got nil")
				}
				if client != nil {
					t.Error("NewClient() should return nil client on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("NewClient() unexpected error: %v", err)
			}
			if client.botToken != tt.botToken {
				t.Errorf("botToken = %q, want %q", client.botToken, tt.botToken)
			}
			if client.ChatID() != tt.chatID {
				t.Errorf("chatID = %q, want %q", client.ChatID(), tt.chatID)
			}
			if client.httpClient == nil {
				t.Error("httpClient should not be nil")
			}
		})
	}
}

func TestSendMessage_Validation(t *testing.T) {
	client := &Client{
		botToken: "test-token",
		chatID:   "12345",
	}

	err := client.SendMessage(context.Background(), "")
	if err == nil {
		t.Fatal("SendMessage() expected error for empty message, got nil")
	}
	if err.Error() != "message text is required" {
		t.Errorf("SendMessage() error = %v, want 'message text is required'", err)
	}
}

func TestAPIError(t *testing.T) {
	tests := []struct {
		err  *APIError
		want string
	}{
		{&APIError{StatusCode: 400, Description: "Bad Request: chat not found"}, "telegram API error (status 400): Bad Request: chat not found"},
		{&APIError{StatusCode: 200, Description: "something odd"}, "telegram API error: something odd"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
