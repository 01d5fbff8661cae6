package ai

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
)

const (
	maxTokens   = 300
	temperature = 0.7
)

// Completer turns a prompt into text.
type Completer interface {
	Complete(ctx context.Context, systemMsg, userMsg string) (string, error)
}

// Client is a Completer backed by an OpenAI-compatible chat API.
type Client struct {
	client *openai.Client
	model  string
}

// New returns a client. An empty baseURL keeps the OpenAI default.
func New(apiKey, baseURL, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *Client) Complete(ctx context.Context, systemMsg, userMsg string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemMsg,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userMsg,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoResponse
	}
	return resp.Choices[0].Message.Content, nil
}

// ErrNoResponse means the provider answered without any choice.
var ErrNoResponse = errors.New("no response from AI")
