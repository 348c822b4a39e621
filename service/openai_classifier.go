package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const (
	sentimentSystemPrompt = `You are a sentiment analyst for industry news. Given an article, respond with JSON only:
{"sentiment": "positive"|"negative"|"neutral", "score": <-1.0 to 1.0>, "confidence": <0.0 to 1.0>}`

	categorySystemPrompt = `You are a news categorizer for the HVAC, BESS and Finance industries. Given an article, respond with JSON only:
{"category": one of ["Product Launch","Market Trends","Competitor Financials","Regulatory Compliance","Technology Innovation","Industry Analysis"], "industry": one of ["HVAC","BESS","Finance"], "tags": ["up to 5 short tags"]}`
)

// OpenAIClassifier implements Classifier against an OpenAI-compatible
// endpoint.
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

func NewOpenAIClassifier(baseURL, apiKey, model string) *OpenAIClassifier {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIClassifier{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *OpenAIClassifier) AnalyzeSentiment(ctx context.Context, title, content string) (*SentimentResult, error) {
	raw, err := c.complete(ctx, sentimentSystemPrompt, title, content)
	if err != nil {
		return nil, err
	}
	var result SentimentResult
	if err := json.Unmarshal([]byte(stripFences(raw)), &result); err != nil {
		return nil, fmt.Errorf("parse sentiment response: %w", err)
	}
	return &result, nil
}

func (c *OpenAIClassifier) Categorize(ctx context.Context, title, content string) (*CategoryResult, error) {
	raw, err := c.complete(ctx, categorySystemPrompt, title, content)
	if err != nil {
		return nil, err
	}
	var result CategoryResult
	if err := json.Unmarshal([]byte(stripFences(raw)), &result); err != nil {
		return nil, fmt.Errorf("parse category response: %w", err)
	}
	return &result, nil
}

func (c *OpenAIClassifier) complete(ctx context.Context, system, title, content string) (string, error) {
	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: system,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: fmt.Sprintf("Title: %s\n\n%s", title, content),
				},
			},
		},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response generated")
	}
	return resp.Choices[0].Message.Content, nil
}

// stripFences removes markdown code fences some models wrap around JSON.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
