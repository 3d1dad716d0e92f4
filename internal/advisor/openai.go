package advisor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const adviseTimeout = 10 * time.Second

const systemPrompt = "You are an agronomy advisor for a smart farming dashboard. " +
	"Given sensor anomaly findings, reply with one short actionable sentence " +
	"for the farm operator. No markdown, no preamble."

// openAIClient wraps the chat completion call used for insight enrichment
type openAIClient struct {
	client *openai.Client
	model  string
}

func newOpenAIClient(apiKey, model string) *openAIClient {
	return &openAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

// Advise asks the model for a one-line advisory about the flagged fields
func (c *openAIClient) Advise(ctx context.Context, anomalous []string) (string, error) {
	prompt := "All fields are operating within normal sensor ranges."
	if len(anomalous) > 0 {
		prompt = fmt.Sprintf("Sensor anomalies were detected in: %s.", strings.Join(anomalous, ", "))
	}

	ctx, cancel := context.WithTimeout(ctx, adviseTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   120,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}

	advice := strings.TrimSpace(resp.Choices[0].Message.Content)
	if advice == "" {
		return "", fmt.Errorf("blank completion content")
	}
	return advice, nil
}
