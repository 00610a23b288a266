package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

var ErrEmptyResponse = errors.New("no response from model")

// Image is an uploaded picture passed to the model next to the prompt.
type Image struct {
	Data     []byte
	MIMEType string
}

// Generator answers a prompt, optionally looking at an image.
type Generator interface {
	Generate(ctx context.Context, prompt string, image *Image) (string, error)
}

var (
	_ Generator = (*GeminiGenerator)(nil)
	_ Generator = (*OpenAIGenerator)(nil)
)

// New builds the generator for provider. An empty apiKey yields a nil
// Generator and no error: callers treat that as demo mode.
func New(ctx context.Context, provider, apiKey, model string, httpClient *http.Client) (Generator, error) {
	if apiKey == "" {
		return nil, nil
	}

	switch provider {
	case "", ProviderGemini:
		g, err := NewGeminiGenerator(ctx, apiKey, model, httpClient)
		if err != nil {
			return nil, err
		}
		return g, nil
	case ProviderOpenAI:
		return NewOpenAIGenerator(apiKey, model, "", httpClient), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Supported: %s, %s", provider, ProviderGemini, ProviderOpenAI)
	}
}
