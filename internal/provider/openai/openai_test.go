package openai

import (
	"context"
	"encoding/json"
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
	t.Setenv("OPENAI_BASE_URL", srv.URL)

	c, err := New("sk-test", "gpt-4o")
	require.NoError(t, err)
	return c
}

func TestGenerate(t *testing.T) {
	var gotReq chatRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Write([]byte(`{"choices":[{"message":{"content":"Summary text."}}]}`))
	})

	text, err := c.Generate(context.Background(), "summarize this")
	require.NoError(t, err)
	assert.Equal(t, "Summary text.", text)

	assert.Equal(t, "gpt-4o", gotReq.Model)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, "summarize this", gotReq.Messages[0].Content)
	assert.Equal(t, 1000, gotReq.MaxTokens)
}

func TestGenerateServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	})

	_, err := c.Generate(context.Background(), "summarize this")
	var perr *provider.Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "openai", perr.Provider)
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New("", "")
	assert.Error(t, err)
}
