package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoroute/internal/config"
)

func TestNewFromConfig_OpenAI(t *testing.T) {
	var captured capturedChat
	srv := newChatServer(t, "hello", &captured)
	defer srv.Close()

	p, closeFn, err := NewFromConfig(context.Background(), config.AIConfig{
		Provider:      config.ProviderOpenAI,
		OpenAIKey:     "test-key",
		OpenAIModel:   "gpt-test",
		OpenAIBaseURL: srv.URL + "/v1",
	})
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	defer func() { assert.NoError(t, closeFn()) }()

	out, err := p.Generate(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, "gpt-test", captured.Model)
}

func TestNewFromConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.AIConfig
		wantErr string
	}{
		{name: "unknown provider", cfg: config.AIConfig{Provider: "claude"}, wantErr: "unknown text generation provider"},
		{name: "openai without key", cfg: config.AIConfig{Provider: config.ProviderOpenAI}, wantErr: "missing api key"},
		{name: "gemini without key", cfg: config.AIConfig{Provider: config.ProviderGemini}, wantErr: "missing api key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, closeFn, err := NewFromConfig(context.Background(), tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, p)
			assert.Nil(t, closeFn)
		})
	}
}
