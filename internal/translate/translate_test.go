// ABOUTME: Tests for the Translation v2 client against a local HTTP server.

package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), ClientConfig{
		BaseURL:     srv.URL,
		TokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"}),
	})
	require.NoError(t, err)
	return client
}

func TestTranslate(t *testing.T) {
	var gotReq translateRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/language/translate/v2", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"translations": [{"translatedText": "Bonjour le monde"}]}}`))
	})

	out, err := client.Translate(context.Background(), "Hello world", "en", "fr")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour le monde", out)

	assert.Equal(t, []string{"Hello world"}, gotReq.Q)
	assert.Equal(t, "en", gotReq.Source)
	assert.Equal(t, "fr", gotReq.Target)
	assert.Equal(t, "text", gotReq.Format)
	assert.Equal(t, "base", gotReq.Model)
}

func TestTranslate_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid target"}`, http.StatusBadRequest)
	})

	_, err := client.Translate(context.Background(), "Hello", "en", "xx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "invalid target")
}

func TestTranslate_EmptyTranslations(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": {"translations": []}}`))
	})

	_, err := client.Translate(context.Background(), "Hello", "en", "fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no translations")
}
