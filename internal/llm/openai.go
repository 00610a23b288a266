package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

const DefaultOpenAIModel = openai.GPT4oMini

type OpenAIGenerator struct {
	Client *openai.Client
	Model  string
}

// NewOpenAIGenerator builds a chat completion generator. baseURL overrides
// the API root when non-empty.
func NewOpenAIGenerator(apiKey, model, baseURL string, httpClient *http.Client) *OpenAIGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIGenerator{Client: openai.NewClientWithConfig(cfg), Model: model}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string, image *Image) (string, error) {
	msg := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if image != nil && len(image.Data) > 0 {
		dataURL := "data:" + image.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(image.Data)
		msg.MultiContent = []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: prompt},
			{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: dataURL, Detail: openai.ImageURLDetailAuto}},
		}
	} else {
		msg.Content = prompt
	}

	resp, err := g.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    g.Model,
		Messages: []openai.ChatCompletionMessage{msg},
	})
	if err != nil {
		return "", fmt.Errorf("generation error: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
