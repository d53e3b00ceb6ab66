// ABOUTME: REST client for the Business Messages conversations API.
// ABOUTME: Sends messages, events, and surveys with OAuth2 application-default credentials.

package bizmsg

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// DefaultBaseURL is the production Business Messages API endpoint.
const DefaultBaseURL = "https://businessmessages.googleapis.com"

// Scope is the OAuth2 scope required by the conversations API.
const Scope = "https://www.googleapis.com/auth/businessmessages"

const defaultTimeout = 30 * time.Second

// Client calls the Business Messages conversations API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// ClientConfig contains configuration options for the Client.
type ClientConfig struct {
	// BaseURL overrides the API endpoint. Empty means DefaultBaseURL.
	BaseURL string

	// TokenSource overrides credential acquisition. Nil means Google
	// application-default credentials scoped for Business Messages.
	TokenSource oauth2.TokenSource

	Logger *slog.Logger
}

// NewClient creates a Client, resolving application-default credentials
// unless a token source is provided.
func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	ts := cfg.TokenSource
	if ts == nil {
		var err error
		ts, err = google.DefaultTokenSource(ctx, Scope)
		if err != nil {
			return nil, fmt.Errorf("resolving default credentials: %w", err)
		}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = defaultTimeout

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     logger.With("component", "bizmsg"),
	}, nil
}

// CreateMessage sends a message into the conversation.
func (c *Client) CreateMessage(ctx context.Context, conversationID string, msg *Message) error {
	path := fmt.Sprintf("/v1/conversations/%s/messages", url.PathEscape(conversationID))
	return c.post(ctx, path, nil, msg)
}

// CreateEvent sends a conversation event. The event ID deduplicates
// deliveries on the platform side.
func (c *Client) CreateEvent(ctx context.Context, conversationID, eventID string, ev *Event) error {
	path := fmt.Sprintf("/v1/conversations/%s/events", url.PathEscape(conversationID))
	return c.post(ctx, path, url.Values{"eventId": {eventID}}, ev)
}

// CreateSurvey asks the platform to show a CSAT survey to the user.
func (c *Client) CreateSurvey(ctx context.Context, conversationID, surveyID string) error {
	path := fmt.Sprintf("/v1/conversations/%s/surveys", url.PathEscape(conversationID))
	return c.post(ctx, path, url.Values{"surveyId": {surveyID}}, &Survey{})
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("API request", "path", path, "bytes", len(payload))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Keep a short excerpt of the error body for the logs.
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("API returned %s: %s", resp.Status, excerpt)
	}

	return nil
}
