package gemini

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitsumm/gitsumm/internal/provider"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("GEMINI_BASE_URL", srv.URL)

	c, err := New("test-key", "gemini-2.0-flash")
	require.NoError(t, err)
	return c
}

func TestGenerate(t *testing.T) {
	var gotPath, gotKey string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Gemini summary."}]}}]}`))
	})

	text, err := c.Generate(context.Background(), "summarize this")
	require.NoError(t, err)
	assert.Equal(t, "Gemini summary.", text)
	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
}

func TestGenerateServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := c.Generate(context.Background(), "summarize this")
	var perr *provider.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "gemini", perr.Provider)
	assert.Contains(t, perr.Error(), "quota exceeded")
}

func TestGenerateEmptyCandidates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := c.Generate(context.Background(), "summarize this")
	var perr *provider.Error
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), "empty response")
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New("", "")
	assert.Error(t, err)
}
