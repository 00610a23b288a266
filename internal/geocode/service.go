package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"agro-help-api/internal/util"
)

const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org/reverse"
	DefaultUserAgent = "AgroHelpApp/1.0"
)

type reverseResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		State   string `json:"state"`
	} `json:"address"`
}

// GeocodeService resolves coordinates to a "place, state" label using
// Nominatim reverse geocoding.
type GeocodeService struct {
	BaseURL   string
	UserAgent string
	HTTP      *http.Client
}

func NewGeocodeService(baseURL string, client *http.Client) *GeocodeService {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &GeocodeService{BaseURL: baseURL, UserAgent: DefaultUserAgent, HTTP: client}
}

// LocationName returns "" on any failure.
func (gs *GeocodeService) LocationName(ctx context.Context, lat, lon string) string {
	name, err := gs.lookup(ctx, lat, lon)
	if err != nil {
		slog.WarnContext(ctx, "reverse geocoding failed", "lat", lat, "lon", lon, "error", err)
		return ""
	}
	return name
}

func (gs *GeocodeService) lookup(ctx context.Context, lat, lon string) (string, error) {
	if err := util.ValidateCoordinates(lat, lon); err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", lat)
	q.Set("lon", lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, gs.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("geocode request build error: %w", err)
	}
	// Nominatim rejects requests without an identifying agent.
	req.Header.Set("User-Agent", gs.UserAgent)

	resp, err := gs.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocode request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("geocode failed: status %d", resp.StatusCode)
	}

	var data reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("geocode decode error: %w", err)
	}

	a := data.Address
	place := util.FirstNonEmpty(a.City, a.Town, a.Village)
	return util.JoinNonEmpty(", ", place, a.State), nil
}
