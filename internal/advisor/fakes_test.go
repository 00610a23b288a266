package advisor

import (
	"context"
	"errors"

	"agro-help-api/internal/language"
	"agro-help-api/internal/llm"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

type fakeWeather struct {
	summary string
	calls   int
}

func (f *fakeWeather) Summary(ctx context.Context, lat, lon string) string {
	f.calls++
	return f.summary
}

type fakeLocations struct {
	name string
}

func (f *fakeLocations) LocationName(ctx context.Context, lat, lon string) string {
	return f.name
}

type fakeGenerator struct {
	answer string
	err    error
	calls  int
	prompt string
	image  *llm.Image
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, image *llm.Image) (string, error) {
	f.calls++
	f.prompt = prompt
	f.image = image
	return f.answer, f.err
}

type fakeAudio struct {
	audio   []byte
	panics  bool
	calls   int
	text    string
	ttsCode string
}

func (f *fakeAudio) Synthesize(ctx context.Context, text, ttsCode string) []byte {
	f.calls++
	f.text = text
	f.ttsCode = ttsCode
	if f.panics {
		panic(errors.New("decoder exploded"))
	}
	return f.audio
}

func newTestService(gen llm.Generator, w *fakeWeather, a *fakeAudio) *AdvisorService {
	svc := &AdvisorService{
		Languages: language.Default(),
		Locations: &fakeLocations{name: "Guntur, Andhra Pradesh"},
		Audio:     a,
	}
	if w != nil {
		svc.Weather = w
	}
	if gen != nil {
		svc.Generator = gen
	}
	return svc
}
