package advisor

import (
	"context"

	"agro-help-api/internal/geocode"
	"agro-help-api/internal/language"
	"agro-help-api/internal/speech"
	"agro-help-api/internal/weather"
)

type WeatherProvider interface {
	Summary(ctx context.Context, lat, lon string) string
}

type LocationResolver interface {
	LocationName(ctx context.Context, lat, lon string) string
}

type AudioSynthesizer interface {
	Synthesize(ctx context.Context, text, ttsCode string) []byte
}

type AdvisorServicePort interface {
	Predict(ctx context.Context, q Query) (Result, error)
	LocationName(ctx context.Context, lat, lon string) string
	WeatherSummary(ctx context.Context, lat, lon string) string
	SupportedLanguages() []language.Profile
}

var _ AdvisorServicePort = (*AdvisorService)(nil)
var _ WeatherProvider = (*weather.WeatherService)(nil)
var _ LocationResolver = (*geocode.GeocodeService)(nil)
var _ AudioSynthesizer = (*speech.Pipeline)(nil)
