package speech

import (
	"context"
	"log/slog"
)

// Pipeline turns an answer into one audio clip: clean, split, fetch, stitch.
type Pipeline struct {
	Fetcher   *Fetcher
	Stitcher  *Stitcher
	ChunkSize int
}

func NewPipeline(tts Synthesizer, chunkSize int) *Pipeline {
	return &Pipeline{
		Fetcher:   &Fetcher{TTS: tts},
		Stitcher:  &Stitcher{Codec: MP3Codec{}},
		ChunkSize: chunkSize,
	}
}

// Synthesize returns the spoken form of a Markdown answer, or nil when no
// audio could be produced.
func (p *Pipeline) Synthesize(ctx context.Context, text, ttsCode string) []byte {
	chunks := SplitChunks(CleanForSpeech(text), p.ChunkSize)
	if len(chunks) == 0 {
		return nil
	}

	clips := p.Fetcher.FetchAll(ctx, chunks, ttsCode)
	res := p.Stitcher.Stitch(clips)

	slog.InfoContext(ctx, "audio generated",
		"chunks", len(chunks),
		"clips", len(clips),
		"mode", res.Mode.String(),
		"bytes", len(res.Audio),
	)
	return res.Audio
}
