package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "gemini-flash-latest"

var genaiGenerateContentHook = func(c *genai.Client, ctx context.Context, model string, contents []*genai.Content) (*genai.GenerateContentResponse, error) {
	return c.Models.GenerateContent(ctx, model, contents, nil)
}

type GeminiGenerator struct {
	Client *genai.Client
	Model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string, httpClient *http.Client) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client error: %w", err)
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiGenerator{Client: client, Model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, image *Image) (string, error) {
	parts := []*genai.Part{{Text: prompt}}
	if image != nil && len(image.Data) > 0 {
		parts = append(parts, &genai.Part{InlineData: &genai.Blob{Data: image.Data, MIMEType: image.MIMEType}})
	}

	resp, err := genaiGenerateContentHook(g.Client, ctx, g.Model, []*genai.Content{
		{Role: "user", Parts: parts},
	})
	if err != nil {
		return "", fmt.Errorf("generation error: %w", err)
	}

	text := firstCandidateText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// firstCandidateText joins the text parts of the first candidate that has
// content.
func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		var b strings.Builder
		for _, part := range candidate.Content.Parts {
			if part != nil {
				b.WriteString(part.Text)
			}
		}
		return b.String()
	}
	return ""
}
