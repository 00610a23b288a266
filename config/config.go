package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Port string `envconfig:"PORT" default:"8000"`

	GoogleAPIKey      string `envconfig:"GOOGLE_API_KEY"`
	OpenAIAPIKey      string `envconfig:"OPENAI_API_KEY"`
	OpenWeatherAPIKey string `envconfig:"OPENWEATHER_API_KEY"`

	AIProvider  string `envconfig:"AI_PROVIDER" default:"gemini"`
	GeminiModel string `envconfig:"GEMINI_MODEL" default:"gemini-flash-latest"`
	OpenAIModel string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`

	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173,http://localhost:5174,http://localhost:5175"`

	TTSBaseURL     string `envconfig:"TTS_BASE_URL" default:"https://translate.google.com/translate_tts"`
	WeatherBaseURL string `envconfig:"WEATHER_BASE_URL" default:"https://api.openweathermap.org/data/2.5/weather"`
	GeocodeBaseURL string `envconfig:"GEOCODE_BASE_URL" default:"https://nominatim.openstreetmap.org/reverse"`

	ChunkSize   int           `envconfig:"TTS_CHUNK_SIZE" default:"180"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"20s"`
	DemoDelay   time.Duration `envconfig:"DEMO_RESPONSE_DELAY" default:"2s"`
	MaxUploadMB int64         `envconfig:"MAX_UPLOAD_MB" default:"10"`
	LogLevel    string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string        `envconfig:"LOG_FORMAT" default:"json"`
}

// LoadConfig reads the process environment. Credentials still holding the
// sample .env placeholder are cleared so callers fall back to mock mode.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.GoogleAPIKey = dropPlaceholder(cfg.GoogleAPIKey, "YOUR_GOOGLE_API_KEY")
	cfg.OpenAIAPIKey = dropPlaceholder(cfg.OpenAIAPIKey, "YOUR_OPENAI_API_KEY")
	cfg.OpenWeatherAPIKey = dropPlaceholder(cfg.OpenWeatherAPIKey, "YOUR_OPENWEATHER_API_KEY")
	cfg.AIProvider = strings.ToLower(strings.TrimSpace(cfg.AIProvider))

	return cfg, nil
}

// AIKey returns the credential of the selected AI provider, or "" when the
// provider has none configured.
func (c Config) AIKey() string {
	switch c.AIProvider {
	case ProviderOpenAI:
		return c.OpenAIAPIKey
	default:
		return c.GoogleAPIKey
	}
}

func dropPlaceholder(value, placeholder string) string {
	value = strings.TrimSpace(value)
	if strings.Contains(value, placeholder) {
		return ""
	}
	return value
}
