package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"agro-help-api/internal/language"
	"agro-help-api/internal/llm"

	"github.com/gabriel-vasile/mimetype"
)

var ErrInvalidImage = errors.New("uploaded file is not an image")

type AdvisorService struct {
	Languages language.Table
	Weather   WeatherProvider
	Locations LocationResolver
	Generator llm.Generator
	Audio     AudioSynthesizer
	DemoDelay time.Duration
}

// Predict answers one query. A nil Generator puts the service in demo mode.
func (as *AdvisorService) Predict(ctx context.Context, q Query) (Result, error) {
	profile := as.Languages.Resolve(q.Language)
	hasImage := len(q.Image) > 0

	if strings.TrimSpace(q.Text) == "" && !hasImage {
		return Result{Analysis: NoInputMessage}, nil
	}

	weatherContext := ""
	if q.Coordinates != nil && as.Weather != nil {
		weatherContext = as.Weather.Summary(ctx, q.Coordinates.Lat, q.Coordinates.Lon)
	}

	var analysis string
	if as.Generator == nil {
		answer, err := as.demo(ctx, q.Text, profile.DisplayName)
		if err != nil {
			return Result{}, err
		}
		analysis = answer
	} else {
		var image *llm.Image
		if hasImage {
			mt := mimetype.Detect(q.Image)
			if !strings.HasPrefix(mt.String(), "image/") {
				return Result{}, fmt.Errorf("%w: %s detected as %s", ErrInvalidImage, q.ImageName, mt.String())
			}
			image = &llm.Image{Data: q.Image, MIMEType: mt.String()}
		}

		prompt := buildPrompt(weatherContext, q.Text, profile.DisplayName, hasImage)
		answer, err := as.Generator.Generate(ctx, prompt, image)
		if err != nil {
			return Result{}, fmt.Errorf("ai request failed: %w", err)
		}
		analysis = answer
	}

	return Result{Analysis: analysis, Audio: as.speak(ctx, analysis, profile.TTSCode)}, nil
}

func (as *AdvisorService) demo(ctx context.Context, question, languageName string) (string, error) {
	if as.DemoDelay > 0 {
		timer := time.NewTimer(as.DemoDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}
	return demoAnswer(question, languageName), nil
}

// speak never fails the request: any panic in the audio path yields no audio.
func (as *AdvisorService) speak(ctx context.Context, text, ttsCode string) (audio []byte) {
	if as.Audio == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "audio generation panicked", "panic", r)
			audio = nil
		}
	}()
	return as.Audio.Synthesize(ctx, text, ttsCode)
}

func (as *AdvisorService) LocationName(ctx context.Context, lat, lon string) string {
	if as.Locations == nil {
		return ""
	}
	return as.Locations.LocationName(ctx, lat, lon)
}

func (as *AdvisorService) WeatherSummary(ctx context.Context, lat, lon string) string {
	if as.Weather == nil {
		return ""
	}
	return as.Weather.Summary(ctx, lat, lon)
}

func (as *AdvisorService) SupportedLanguages() []language.Profile {
	return as.Languages.Profiles()
}
