package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"agro-help-api/internal/util"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

	MockSummary        = "Simulated Weather: Mostly Sunny, 28°C (API Key Missing)"
	UnavailableSummary = "Could not retrieve weather data."
)

type currentWeather struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main *struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

// WeatherService renders the current OpenWeather conditions as one sentence
// for the prompt. Without an API key it returns a fixed simulated summary.
type WeatherService struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewWeatherService(apiKey, baseURL string, client *http.Client) *WeatherService {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &WeatherService{APIKey: apiKey, BaseURL: baseURL, HTTP: client}
}

// Summary never fails: lookup problems are logged and reported as
// UnavailableSummary.
func (ws *WeatherService) Summary(ctx context.Context, lat, lon string) string {
	if ws.APIKey == "" {
		return MockSummary
	}

	summary, err := ws.fetch(ctx, lat, lon)
	if err != nil {
		slog.WarnContext(ctx, "weather lookup failed", "lat", lat, "lon", lon, "error", err)
		return UnavailableSummary
	}
	return summary
}

func (ws *WeatherService) fetch(ctx context.Context, lat, lon string) (string, error) {
	if err := util.ValidateCoordinates(lat, lon); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("lat", lat)
	q.Set("lon", lon)
	q.Set("appid", ws.APIKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ws.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("weather request build error: %w", err)
	}

	resp, err := ws.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("weather request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("weather api failed: status %d", resp.StatusCode)
	}

	var data currentWeather
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("weather decode error: %w", err)
	}
	if len(data.Weather) == 0 || data.Main == nil {
		return "", fmt.Errorf("weather response missing conditions")
	}

	temp := strconv.FormatFloat(data.Main.Temp, 'f', -1, 64)
	return fmt.Sprintf("Current weather is %s with a temperature of %s°C.", data.Weather[0].Description, temp), nil
}
