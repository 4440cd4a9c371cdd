package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Message is a minimal chat message used by the core orchestrators.
// Role must be one of: "system", "user", or "assistant".
type Message struct {
	Role    string
	Content string
}

// Client is the language-model collaborator boundary: a chat-style call
// taking ordered history plus a bounded output length, returning a single
// reply text or failing with a provider error. Single attempt, no retries.
type Client interface {
	Chat(ctx context.Context, messages []Message, maxTokens int) (string, error)
}

// sampling temperature favoring determinism, shared by all calls
const temperature = 0.18

// OpenAIClient calls the OpenAI chat completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient constructs an OpenAI-backed LLM client for the given
// API key and model.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Chat sends the message history to the OpenAI chat completion API and
// returns the assistant's reply. An unexpected response shape is not an
// error: the stringified response is returned as a best-effort fallback,
// preserving availability over strict correctness.
func (c *OpenAIClient) Chat(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	if c.client == nil {
		return "", errors.New("openai client not initialized")
	}

	oaMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role != openai.ChatMessageRoleSystem && role != openai.ChatMessageRoleUser && role != openai.ChatMessageRoleAssistant {
			// coerce anything unknown to user
			role = openai.ChatMessageRoleUser
		}
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    oaMsgs,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	return extractReply(resp), nil
}

// extractReply pulls the assistant text out of a completion response,
// falling back to the stringified response when the shape is unexpected.
func extractReply(resp openai.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return fmt.Sprintf("%v", resp)
	}
	return resp.Choices[0].Message.Content
}
