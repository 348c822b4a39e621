package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClassifier is the alternate Classifier backed by the Gemini API.
type GeminiClassifier struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClassifier(ctx context.Context, apiKey, modelName string) (*GeminiClassifier, error) {
	if apiKey == "" {
		return nil, errors.New("no API key provided")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	return &GeminiClassifier{client: client, model: model}, nil
}

func (c *GeminiClassifier) Close() error {
	return c.client.Close()
}

func (c *GeminiClassifier) AnalyzeSentiment(ctx context.Context, title, content string) (*SentimentResult, error) {
	raw, err := c.generate(ctx, sentimentSystemPrompt, title, content)
	if err != nil {
		return nil, err
	}
	var result SentimentResult
	if err := json.Unmarshal([]byte(stripFences(raw)), &result); err != nil {
		return nil, fmt.Errorf("parse sentiment response: %w", err)
	}
	return &result, nil
}

func (c *GeminiClassifier) Categorize(ctx context.Context, title, content string) (*CategoryResult, error) {
	raw, err := c.generate(ctx, categorySystemPrompt, title, content)
	if err != nil {
		return nil, err
	}
	var result CategoryResult
	if err := json.Unmarshal([]byte(stripFences(raw)), &result); err != nil {
		return nil, fmt.Errorf("parse category response: %w", err)
	}
	return &result, nil
}

func (c *GeminiClassifier) generate(ctx context.Context, system, title, content string) (string, error) {
	prompt := fmt.Sprintf("%s\n\nTitle: %s\n\n%s", system, title, content)
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no response generated")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("empty response")
	}
	return sb.String(), nil
}
