package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model name is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

var errEmptyConversation = errors.New("no messages to send")

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string, opts ...option.ClientOption) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:    client,
		model:     client.GenerativeModel(modelName),
		modelName: modelName,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	return responseText(resp)
}

// GenerateMessages moves system messages into the model's system instruction, replays the
// remaining turns but the last as chat history and sends the last one.
func (p *GeminiProvider) GenerateMessages(ctx context.Context, messages []Message) (string, error) {
	system, turns := splitSystem(messages)
	if len(turns) == 0 {
		return "", errEmptyConversation
	}
	last := turns[len(turns)-1]
	if last.Role != RoleUser {
		return "", fmt.Errorf("gemini: last message must be a user turn, got %q", last.Role)
	}

	model := p.model
	if system != nil {
		// GenerativeModel is shared across requests; the instruction goes on a per-call copy.
		model = p.client.GenerativeModel(p.modelName)
		model.SystemInstruction = system
	}

	cs := model.StartChat()
	cs.History = toContents(turns[:len(turns)-1])

	resp, err := cs.SendMessage(ctx, genai.Text(last.Text))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	return responseText(resp)
}

// splitSystem separates system messages into one instruction content. It returns nil
// when there are none.
func splitSystem(messages []Message) (*genai.Content, []Message) {
	var parts []genai.Part
	turns := make([]Message, 0, len(messages))
	for _, m := range messages {
		if m.Role == RoleSystem {
			parts = append(parts, genai.Text(m.Text))
			continue
		}
		turns = append(turns, m)
	}
	if len(parts) == 0 {
		return nil, turns
	}
	return &genai.Content{Parts: parts}, turns
}

func toContents(messages []Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		out = append(out, &genai.Content{
			Role:  string(m.Role),
			Parts: []genai.Part{genai.Text(m.Text)},
		})
	}
	return out
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}
	if responseText.Len() == 0 {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}
	return responseText.String(), nil
}
