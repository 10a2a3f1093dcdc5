package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weather-bot/pkg/logger"
)

const (
	defaultTwilioBaseURL = "https://api.twilio.com"
	whatsappPrefix       = "whatsapp:"

	// TestModeSID is returned instead of a message SID when no credentials
	// are configured and nothing was actually sent.
	TestModeSID = "test_mode"
)

// Sender delivers a reply to a chat address. "Fire and forget" callers may
// ignore the returned SID and error.
type Sender interface {
	Send(ctx context.Context, to, body string) (string, error)
}

// HTTPClient abstracts http.Client for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TwilioSender posts messages to the Twilio REST API. Without credentials it
// runs in test mode: sends are logged and skipped.
type TwilioSender struct {
	BaseURL    string
	accountSID string
	authToken  string
	from       string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewTwilioSender(accountSID, authToken, from string, l *logger.Logger) *TwilioSender {
	if accountSID == "" || authToken == "" {
		l.Warning("Twilio credentials not found, running in test mode")
	}

	return &TwilioSender{
		BaseURL:    defaultTwilioBaseURL,
		accountSID: accountSID,
		authToken:  authToken,
		from:       normalizeAddress(from),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		l:          l,
	}
}

// Send delivers one WhatsApp message. Addresses are normalized to carry the
// whatsapp: prefix.
func (s *TwilioSender) Send(ctx context.Context, to, body string) (string, error) {
	s.l.Info("sending message", map[string]any{"to": to, "length": len(body)})

	if s.accountSID == "" || s.authToken == "" {
		s.l.Info("test mode: message not sent", map[string]any{"to": to})
		return TestModeSID, nil
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.BaseURL, s.accountSID)
	form := url.Values{}
	form.Set("From", s.from)
	form.Set("To", normalizeAddress(to))
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.accountSID, s.authToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("twilio error (status %d): %s", resp.StatusCode, resp.Status)
	}

	var payload struct {
		SID string `json:"sid"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	s.l.Info("message sent successfully", map[string]any{"to": to, "message_sid": payload.SID})
	return payload.SID, nil
}

func normalizeAddress(addr string) string {
	if addr == "" || strings.HasPrefix(addr, whatsappPrefix) {
		return addr
	}
	return whatsappPrefix + addr
}
