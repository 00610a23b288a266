package speech

import (
	"context"
	"log/slog"
	"strings"
)

// Synthesizer turns a short text into one encoded audio clip.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, langCode string) ([]byte, error)
}

// Fetcher requests audio chunk by chunk. It is best effort: a failed chunk
// is logged and left out, the rest continue.
type Fetcher struct {
	TTS Synthesizer
}

// Fetch returns the clip for chunk, or false when the chunk is blank or the
// backend failed.
func (f *Fetcher) Fetch(ctx context.Context, chunk, langCode string) ([]byte, bool) {
	if strings.TrimSpace(chunk) == "" {
		return nil, false
	}

	clip, err := f.TTS.Synthesize(ctx, chunk, langCode)
	if err != nil {
		slog.WarnContext(ctx, "tts chunk failed, skipping", "lang", langCode, "chars", len(chunk), "error", err)
		return nil, false
	}
	if len(clip) == 0 {
		return nil, false
	}
	return clip, true
}

// FetchAll fetches every chunk sequentially and returns the clips that
// succeeded, in chunk order.
func (f *Fetcher) FetchAll(ctx context.Context, chunks []string, langCode string) [][]byte {
	clips := make([][]byte, 0, len(chunks))
	for _, chunk := range chunks {
		if clip, ok := f.Fetch(ctx, chunk, langCode); ok {
			clips = append(clips, clip)
		}
	}
	return clips
}
