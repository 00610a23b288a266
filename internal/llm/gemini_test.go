package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func stubGemini(t *testing.T, fn func(model string, contents []*genai.Content) (*genai.GenerateContentResponse, error)) {
	t.Helper()
	old := genaiGenerateContentHook
	genaiGenerateContentHook = func(_ *genai.Client, _ context.Context, model string, contents []*genai.Content) (*genai.GenerateContentResponse, error) {
		return fn(model, contents)
	}
	t.Cleanup(func() { genaiGenerateContentHook = old })
}

func geminiResponse(t *testing.T, raw string) *genai.GenerateContentResponse {
	t.Helper()
	var out genai.GenerateContentResponse
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return &out
}

func TestGeminiGenerator_TextOnly(t *testing.T) {
	var gotModel string
	stubGemini(t, func(model string, contents []*genai.Content) (*genai.GenerateContentResponse, error) {
		gotModel = model
		if len(contents) != 1 || len(contents[0].Parts) != 1 {
			t.Fatalf("expected one text part, got %#v", contents)
		}
		if contents[0].Parts[0].Text != "how to water rice?" {
			t.Fatalf("unexpected prompt %q", contents[0].Parts[0].Text)
		}
		return geminiResponse(t, `{"candidates":[{"content":{"parts":[{"text":"Keep "},{"text":"fields flooded."}]}}]}`), nil
	})

	g := &GeminiGenerator{Client: &genai.Client{}, Model: "gemini-test"}
	out, err := g.Generate(context.Background(), "how to water rice?", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "Keep fields flooded." {
		t.Fatalf("got %q", out)
	}
	if gotModel != "gemini-test" {
		t.Fatalf("model=%q", gotModel)
	}
}

func TestGeminiGenerator_WithImage(t *testing.T) {
	stubGemini(t, func(_ string, contents []*genai.Content) (*genai.GenerateContentResponse, error) {
		parts := contents[0].Parts
		if len(parts) != 2 || parts[1].InlineData == nil {
			t.Fatalf("expected prompt and inline image, got %#v", parts)
		}
		if parts[1].InlineData.MIMEType != "image/png" || string(parts[1].InlineData.Data) != "PNGDATA" {
			t.Fatalf("unexpected blob %#v", parts[1].InlineData)
		}
		return geminiResponse(t, `{"candidates":[{"content":{"parts":[{"text":"Early blight."}]}}]}`), nil
	})

	g := &GeminiGenerator{Client: &genai.Client{}, Model: DefaultGeminiModel}
	out, err := g.Generate(context.Background(), "look", &Image{Data: []byte("PNGDATA"), MIMEType: "image/png"})
	if err != nil || out != "Early blight." {
		t.Fatalf("got out=%q err=%v", out, err)
	}
}

func TestGeminiGenerator_GenerationError(t *testing.T) {
	stubGemini(t, func(string, []*genai.Content) (*genai.GenerateContentResponse, error) {
		return nil, errors.New("gemini down")
	})

	g := &GeminiGenerator{Client: &genai.Client{}}
	_, err := g.Generate(context.Background(), "q", nil)
	if err == nil || !strings.Contains(err.Error(), "generation error") {
		t.Fatalf("expected generation error, got %v", err)
	}
}

func TestGeminiGenerator_NoCandidates(t *testing.T) {
	stubGemini(t, func(string, []*genai.Content) (*genai.GenerateContentResponse, error) {
		return geminiResponse(t, `{"candidates":[]}`), nil
	})

	g := &GeminiGenerator{Client: &genai.Client{}}
	_, err := g.Generate(context.Background(), "q", nil)
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestFirstCandidateText_SkipsEmptyCandidates(t *testing.T) {
	resp := geminiResponse(t, `{"candidates":[{},{"content":{"parts":[{"text":"second"}]}}]}`)
	if got := firstCandidateText(resp); got != "second" {
		t.Fatalf("got %q", got)
	}
	if got := firstCandidateText(nil); got != "" {
		t.Fatalf("expected empty for nil, got %q", got)
	}
}
