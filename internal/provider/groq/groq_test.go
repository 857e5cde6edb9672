package groq

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
	t.Setenv("GROQ_BASE_URL", srv.URL)

	c, err := New("gsk-test", "llama-3.1-8b-instant")
	require.NoError(t, err)
	return c
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New("", "llama-3.1-8b-instant")
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/chat/completions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"A tidy summary."}}]}`))
	})

	text, err := c.Generate(context.Background(), "summarize this")
	require.NoError(t, err)
	assert.Equal(t, "A tidy summary.", text)
	assert.Equal(t, "Bearer gsk-test", gotAuth)
}

func TestGenerateServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	_, err := c.Generate(context.Background(), "summarize this")
	var perr *provider.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "groq", perr.Provider)
	assert.Contains(t, perr.Error(), "500")
}

func TestGenerateMalformedResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := c.Generate(context.Background(), "summarize this")
	var perr *provider.Error
	require.ErrorAs(t, err, &perr)
}

func TestGenerateEmptyChoices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := c.Generate(context.Background(), "summarize this")
	var perr *provider.Error
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), "empty response")
}

func TestGenerateAPIErrorBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"model not found"}}`))
	})

	_, err := c.Generate(context.Background(), "summarize this")
	var perr *provider.Error
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Error(), "model not found")
}
