package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedChat struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newChatServer(t *testing.T, reply string, captured *capturedChat) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   captured.Model,
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": reply},
			}},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIProvider_GenerateMessagesMapsRoles(t *testing.T) {
	var captured capturedChat
	srv := newChatServer(t, `{"name":"Green Stay"}`, &captured)

	p, err := NewOpenAIProvider("test-key", "gpt-test", srv.URL+"/v1")
	require.NoError(t, err)

	out, err := p.GenerateMessages(context.Background(), []Message{
		{Role: RoleModel, Text: "persona"},
		{Role: RoleUser, Text: "question"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Green Stay"}`, out)

	assert.Equal(t, "gpt-test", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "assistant", captured.Messages[0].Role)
	assert.Equal(t, "persona", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
}

func TestOpenAIProvider_SystemMessageUsesSystemRole(t *testing.T) {
	var captured capturedChat
	srv := newChatServer(t, `{"name":"Green Stay"}`, &captured)

	p, err := NewOpenAIProvider("test-key", "gpt-test", srv.URL+"/v1")
	require.NoError(t, err)

	_, err = p.GenerateMessages(context.Background(), []Message{
		{Role: RoleSystem, Text: "persona"},
		{Role: RoleUser, Text: "question"},
	})
	require.NoError(t, err)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "persona", captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
}

func TestOpenAIProvider_GenerateSendsSingleUserTurn(t *testing.T) {
	var captured capturedChat
	srv := newChatServer(t, "Take line 2 for three stops.", &captured)

	p, err := NewOpenAIProvider("test-key", "", srv.URL+"/v1")
	require.NoError(t, err)

	out, err := p.Generate(context.Background(), "describe the route")
	require.NoError(t, err)
	assert.Equal(t, "Take line 2 for three stops.", out)
	assert.Equal(t, DefaultOpenAIModel, captured.Model)
	require.Len(t, captured.Messages, 1)
	assert.Equal(t, "user", captured.Messages[0].Role)
}

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	_, err := NewOpenAIProvider("", "", "")
	assert.Error(t, err)
}
