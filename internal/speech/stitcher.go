package speech

import (
	"bytes"
	"log/slog"
	"time"
)

type Mode int

const (
	ModeNone Mode = iota
	ModeDecoded
	ModeRaw
)

func (m Mode) String() string {
	switch m {
	case ModeDecoded:
		return "decoded"
	case ModeRaw:
		return "raw"
	default:
		return "none"
	}
}

// Segment is decoded audio: the codec frames in play order.
type Segment struct {
	Frames   [][]byte
	Duration time.Duration
}

func (s Segment) Len() int { return len(s.Frames) }

func (s *Segment) Append(other Segment) {
	s.Frames = append(s.Frames, other.Frames...)
	s.Duration += other.Duration
}

// Codec decodes single clips and encodes a combined segment back into one
// clip.
type Codec interface {
	Decode(clip []byte) (Segment, error)
	Encode(seg Segment) ([]byte, error)
}

type Result struct {
	Audio []byte
	Mode  Mode
}

// Stitcher joins clips into one. It decodes while it can; the first clip that
// fails to decode switches it to plain byte concatenation for the rest of the
// call. A nil Codec means decoding is unavailable.
type Stitcher struct {
	Codec Codec
}

// stitchState is either a decodingAccumulator or a rawAccumulator. The only
// transition is decoding to raw.
type stitchState interface {
	add(codec Codec, clip []byte) stitchState
}

type decodingAccumulator struct {
	decoded Segment
	seen    [][]byte
}

func (d decodingAccumulator) add(codec Codec, clip []byte) stitchState {
	seen := append(d.seen, clip)

	seg, err := codec.Decode(clip)
	if err != nil {
		slog.Warn("clip decode failed, switching to raw concatenation", "clip", len(seen), "error", err)
		return rawAccumulator{clips: seen}
	}

	d.decoded.Append(seg)
	d.seen = seen
	return d
}

type rawAccumulator struct {
	clips [][]byte
}

func (r rawAccumulator) add(_ Codec, clip []byte) stitchState {
	r.clips = append(r.clips, clip)
	return r
}

func (s *Stitcher) Stitch(clips [][]byte) Result {
	if len(clips) == 0 {
		return Result{Mode: ModeNone}
	}

	var state stitchState = decodingAccumulator{}
	if s.Codec == nil {
		state = rawAccumulator{}
	}
	for _, clip := range clips {
		state = state.add(s.Codec, clip)
	}

	switch st := state.(type) {
	case decodingAccumulator:
		if st.decoded.Len() == 0 {
			return concatRaw(st.seen)
		}
		out, err := s.Codec.Encode(st.decoded)
		if err != nil || len(out) == 0 {
			slog.Warn("re-encode failed, switching to raw concatenation", "error", err)
			return concatRaw(st.seen)
		}
		slog.Debug("clips stitched", "frames", st.decoded.Len(), "duration", st.decoded.Duration)
		return Result{Audio: out, Mode: ModeDecoded}
	case rawAccumulator:
		return concatRaw(st.clips)
	}
	return Result{Mode: ModeNone}
}

// concatRaw joins encoded clips byte for byte. MP3 players tolerate this for
// independently encoded clips, at the cost of repeated tags and gaps.
func concatRaw(clips [][]byte) Result {
	out := bytes.Join(clips, nil)
	if len(out) == 0 {
		return Result{Mode: ModeNone}
	}
	return Result{Audio: out, Mode: ModeRaw}
}
