// ABOUTME: Tests for the Business Messages REST client against a local
// ABOUTME: HTTP server, checking paths, query parameters, and bodies.

package bizmsg

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type capturedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   []byte
}

func newTestClient(t *testing.T, status int, respBody string) (*Client, *[]capturedRequest) {
	t.Helper()

	var mu sync.Mutex
	var captured []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		captured = append(captured, capturedRequest{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
			Body:   body,
		})
		mu.Unlock()
		w.WriteHeader(status)
		io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), ClientConfig{
		BaseURL:     srv.URL,
		TokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"}),
	})
	require.NoError(t, err)
	return client, &captured
}

func TestClient_CreateMessage(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{}`)

	msg := &Message{
		MessageID: "msg-1",
		Text:      "hello",
		Representative: &Representative{
			RepresentativeType: RepresentativeTypeBot,
			DisplayName:        "Sally",
		},
	}
	require.NoError(t, client.CreateMessage(context.Background(), "conv/1", msg))

	require.Len(t, *captured, 1)
	req := (*captured)[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/v1/conversations/conv%2F1/messages", req.Path)
	assert.Equal(t, "Bearer test-token", req.Auth)

	var sent Message
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, "msg-1", sent.MessageID)
	assert.Equal(t, "hello", sent.Text)
	require.NotNil(t, sent.Representative)
	assert.Equal(t, RepresentativeTypeBot, sent.Representative.RepresentativeType)
}

func TestClient_CreateEvent(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{}`)

	ev := &Event{EventType: EventTypeTypingStarted}
	require.NoError(t, client.CreateEvent(context.Background(), "c1", "ev-1", ev))

	require.Len(t, *captured, 1)
	req := (*captured)[0]
	assert.Equal(t, "/v1/conversations/c1/events", req.Path)
	assert.Equal(t, "eventId=ev-1", req.Query)

	var sent Event
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, EventTypeTypingStarted, sent.EventType)
}

func TestClient_CreateSurvey(t *testing.T) {
	client, captured := newTestClient(t, http.StatusOK, `{}`)

	require.NoError(t, client.CreateSurvey(context.Background(), "c1", "sv-1"))

	require.Len(t, *captured, 1)
	req := (*captured)[0]
	assert.Equal(t, "/v1/conversations/c1/surveys", req.Path)
	assert.Equal(t, "surveyId=sv-1", req.Query)
	assert.Equal(t, "{}", string(req.Body))
}

func TestClient_ErrorIncludesStatusAndBody(t *testing.T) {
	client, _ := newTestClient(t, http.StatusForbidden, `{"error": "permission denied"}`)

	err := client.CreateMessage(context.Background(), "c1", &Message{MessageID: "m1", Text: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Contains(t, err.Error(), "permission denied")
}

func TestClient_DefaultBaseURL(t *testing.T) {
	client, err := NewClient(context.Background(), ClientConfig{
		TokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "t"}),
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}
