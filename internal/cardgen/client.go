// Package cardgen turns free text or a topic into flashcard drafts via a
// hosted chat-completion model.
package cardgen

import (
	"context"
	"fmt"

	"flashdeck/internal/middleware"
	"flashdeck/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

// Generator is what handlers depend on; satisfied by Client and by test
// stubs.
type Generator interface {
	ExtractCards(ctx context.Context, content string, multipleChoice bool) ([]model.CardDraft, error)
	GenerateCards(ctx context.Context, topic string, count int, additionalContext string, multipleChoice bool) ([]model.CardDraft, error)
}

// completionAPI is the slice of the OpenAI client the adapter needs.
type completionAPI interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Client struct {
	api   completionAPI
	model string
}

func New(apiKey, modelName string) *Client {
	return &Client{
		api:   openai.NewClient(apiKey),
		model: modelName,
	}
}

// NewWithAPI injects a custom completion backend; used by tests.
func NewWithAPI(api completionAPI, modelName string) *Client {
	return &Client{api: api, model: modelName}
}

// ExtractCards asks the model for question/answer pairs found in content.
// Content is expected to be pre-truncated by the caller. A response the
// parser cannot use comes back as an empty slice, not an error.
func (c *Client) ExtractCards(ctx context.Context, content string, multipleChoice bool) ([]model.CardDraft, error) {
	return c.complete(ctx, completionSpec{
		system:      extractionSystemPrompt(multipleChoice),
		user:        "Extract flashcards from this content:\n\n" + content,
		temperature: 0.7,
		maxTokens:   3000,
	})
}

// GenerateCards asks the model for count cards about a topic, with optional
// extra context. Count must already be clamped by the caller.
func (c *Client) GenerateCards(ctx context.Context, topic string, count int, additionalContext string, multipleChoice bool) ([]model.CardDraft, error) {
	return c.complete(ctx, completionSpec{
		system:      generationSystemPrompt(count, multipleChoice),
		user:        generationUserPrompt(topic, count, additionalContext),
		temperature: 0.8,
		maxTokens:   4000,
	})
}

type completionSpec struct {
	system      string
	user        string
	temperature float32
	maxTokens   int
}

func (c *Client) complete(ctx context.Context, spec completionSpec) ([]model.CardDraft, error) {
	logger := middleware.GetLogger(ctx)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: spec.system},
			{Role: openai.ChatMessageRoleUser, Content: spec.user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: spec.temperature,
		MaxTokens:   spec.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("cardgen: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		logger.Warn("Completion returned no choices", "model", c.model)
		return []model.CardDraft{}, nil
	}

	cards, shape := ParseCards(resp.Choices[0].Message.Content)
	if shape == ShapeNone {
		logger.Warn("Completion output did not match any known card shape", "model", c.model)
	} else if shape != ShapeCards {
		logger.Info("Completion output matched a fallback shape", "shape", string(shape))
	}
	return cards, nil
}
