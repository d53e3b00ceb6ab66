// ABOUTME: Client for the Google Cloud Translation v2 REST endpoint.
// ABOUTME: Text format, base model, OAuth2 application-default credentials.

package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// DefaultBaseURL is the production Translation API endpoint.
const DefaultBaseURL = "https://translation.googleapis.com"

// Scope is the OAuth2 scope required by the Translation API.
const Scope = "https://www.googleapis.com/auth/cloud-translation"

const defaultTimeout = 15 * time.Second

// Client calls the Translation v2 API.
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
	// application-default credentials.
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
		logger:     logger.With("component", "translate"),
	}, nil
}

type translateRequest struct {
	Q      []string `json:"q"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Format string   `json:"format"`
	Model  string   `json:"model"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate translates text from sourceLang to targetLang (ISO codes).
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	body, err := json.Marshal(translateRequest{
		Q:      []string{text},
		Source: sourceLang,
		Target: targetLang,
		Format: "text",
		Model:  "base",
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	endpoint := c.baseURL + "/language/translate/v2"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("translating", "source", sourceLang, "target", targetLang)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("API returned %s: %s", resp.Status, excerpt)
	}

	var parsed translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if len(parsed.Data.Translations) == 0 {
		return "", fmt.Errorf("response contained no translations")
	}

	return parsed.Data.Translations[0].TranslatedText, nil
}
