package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	DefaultTranslateTTSURL = "https://translate.google.com/translate_tts"
	translateTTSUserAgent  = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	maxClipBytes           = 4 << 20
)

var ErrEmptyClip = errors.New("tts returned an empty clip")

// TranslateTTS calls the Google Translate speech endpoint, which answers
// short texts with an MP3 clip.
type TranslateTTS struct {
	BaseURL string
	HTTP    *http.Client
}

func NewTranslateTTS(baseURL string, client *http.Client) *TranslateTTS {
	if baseURL == "" {
		baseURL = DefaultTranslateTTSURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &TranslateTTS{BaseURL: baseURL, HTTP: client}
}

func (t *TranslateTTS) Synthesize(ctx context.Context, text, langCode string) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("q", text)
	q.Set("tl", langCode)
	q.Set("client", "tw-ob")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("tts request build error: %w", err)
	}
	req.Header.Set("User-Agent", translateTTSUserAgent)

	resp, err := t.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("tts failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxClipBytes))
	if err != nil {
		return nil, fmt.Errorf("tts read error: %w", err)
	}
	if len(body) == 0 {
		return nil, ErrEmptyClip
	}

	// Throttled requests come back as 200 with an HTML page.
	if mt := mimetype.Detect(body); strings.HasPrefix(mt.String(), "text/") {
		return nil, fmt.Errorf("tts returned %s instead of audio", mt.String())
	}

	return body, nil
}
