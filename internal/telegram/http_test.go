package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestClient points the package at server for the duration of the test
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/bot"
	t.Cleanup(func() { apiBaseURL = originalURL })

	return &Client{
		botToken:   "test-token",
		chatID:     "12345",
		httpClient: &http.Client{},
	}
}

// TestSendMessage_Success tests successful message sending
func TestSendMessage_Success(t *testing.T) {
	var got sendMessageRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/bottest-token/sendMessage" {
			t.Errorf("path = %q, want /bottest-token/sendMessage", r.URL.Path)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request body: %v", err)
		}

		response := map[string]interface{}{
			"ok": true,
			"result": map[string]interface{}{
				"message_id": 123,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	text := "📆*Mensaplan für Montag*📆\nSoup\\-of\\-the\\-day\n2.50\n"
	if err := client.SendMessage(context.Background(), text); err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}

	if got.ChatID != "12345" {
		t.Errorf("chat_id = %q, want 12345", got.ChatID)
	}
	if got.ParseMode != "MarkdownV2" {
		t.Errorf("parse_mode = %q, want MarkdownV2", got.ParseMode)
	}
	if !got.DisableWebPagePreview {
		t.Error("disable_web_page_preview should be true")
	}
	want := "📆*Mensaplan für Montag*📆\nSoup\\-of\\-the\\-day\n2\\.50\n"
	if got.Text != want {
		t.Errorf("text = %q, want %q", got.Text, want)
	}
}

// TestSendMessage_APIError tests API error handling
func TestSendMessage_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]interface{}{
			"ok":          false,
			"description": "Bad Request: chat not found",
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := newTestClient(t, server)

	err := client.SendMessage(context.Background(), "Test message")
	if err == nil {
		t.Fatal("SendMessage() expected error for API failure, got nil")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("SendMessage() error = %T, want *APIError", err)
	}
	if !strings.Contains(apiErr.Description, "Bad Request") {
		t.Errorf("Description = %q, want error containing 'Bad Request'", apiErr.Description)
	}
}

// TestSendMessage_HTTPError tests HTTP error handling
func TestSendMessage_HTTPError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantDesc string
	}{
		{
			name:     "plain text body",
			status:   http.StatusInternalServerError,
			body:     "Internal Server Error",
			wantDesc: "Internal Server Error",
		},
		{
			name:     "json error body",
			status:   http.StatusBadRequest,
			body:     `{"ok":false,"error_code":400,"description":"Bad Request: can't parse entities"}`,
			wantDesc: "Bad Request: can't parse entities",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server)

			err := client.SendMessage(context.Background(), "Test message")
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("SendMessage() error = %v, want *APIError", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", apiErr.Description, tt.wantDesc)
			}
		})
	}
}

// TestSendMessage_InvalidJSON tests a malformed success response
func TestSendMessage_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := newTestClient(t, server)

	err := client.SendMessage(context.Background(), "Test message")
	if err == nil || !strings.Contains(err.Error(), "parsing response") {
		t.Errorf("SendMessage() error = %v, want parsing response error", err)
	}
}
