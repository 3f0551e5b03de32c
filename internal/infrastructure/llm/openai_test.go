package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeOpenAI(t *testing.T, status int, content string, seen *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if seen != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]string{"role": "assistant", "content": content},
			}},
		})
	}))
}

func TestOpenAIClient_Complete(t *testing.T) {
	var body map[string]any
	srv := newFakeOpenAI(t, http.StatusOK, "  Nice haircut, did you lose a bet?  ", &body)
	defer srv.Close()

	c := NewOpenAIClient("test-key", srv.URL, "")
	text, err := c.Complete(context.Background(), CompletionRequest{
		System:      "sys",
		History:     []Message{{Role: RoleUser, Content: "hi"}, {Role: RoleAssistant, Content: "yo"}},
		Prompt:      "roast me",
		MaxTokens:   150,
		Temperature: 0.8,
	})
	require.NoError(t, err)
	assert.Equal(t, "Nice haircut, did you lose a bet?", text)

	assert.Equal(t, defaultOpenAIModel, body["model"])
	assert.EqualValues(t, 150, body["max_tokens"])
	msgs, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 4)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Equal(t, "assistant", msgs[2].(map[string]any)["role"])
	assert.Equal(t, "roast me", msgs[3].(map[string]any)["content"])
}

func TestOpenAIClient_ServerError(t *testing.T) {
	srv := newFakeOpenAI(t, http.StatusInternalServerError, "", nil)
	defer srv.Close()

	_, err := NewOpenAIClient("test-key", srv.URL, "gpt-4").Complete(context.Background(), CompletionRequest{Prompt: "x"})
	assert.Error(t, err)
}

func TestOpenAIClient_EmptyContent(t *testing.T) {
	srv := newFakeOpenAI(t, http.StatusOK, "   ", nil)
	defer srv.Close()

	_, err := NewOpenAIClient("test-key", srv.URL, "gpt-4").Complete(context.Background(), CompletionRequest{Prompt: "x"})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNew_WithoutKeyIsDisabled(t *testing.T) {
	for _, key := range []string{"", "  ", placeholderKey} {
		p, err := New(context.Background(), Options{APIKey: key})
		require.NoError(t, err)
		assert.Equal(t, "disabled", p.Name())

		_, err = p.Complete(context.Background(), CompletionRequest{Prompt: "x"})
		assert.ErrorIs(t, err, ErrNotConfigured)
	}
}

func TestNew_SelectsProvider(t *testing.T) {
	p, err := New(context.Background(), Options{Provider: "deepseek", APIKey: "k", BaseURL: "https://api.deepseek.com/v1", Model: "deepseek-chat"})
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())

	_, err = New(context.Background(), Options{Provider: "carrier-pigeon", APIKey: "k"})
	assert.Error(t, err)
}
