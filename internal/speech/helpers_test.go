package speech

import (
	"bytes"
	"context"
	"errors"
	"strings"
)

// mp3Frame returns one silent MPEG-1 Layer III frame (128 kbps, 44.1 kHz,
// no CRC, no padding): 417 bytes starting with the frame sync.
func mp3Frame() []byte {
	f := make([]byte, 417)
	copy(f, []byte{0xFF, 0xFB, 0x90, 0x00})
	return f
}

func mp3Clip(frames int) []byte {
	return bytes.Repeat(mp3Frame(), frames)
}

type fakeSynth struct {
	calls  []string
	clips  map[string][]byte
	errFor map[string]error
}

func (f *fakeSynth) Synthesize(_ context.Context, text, _ string) ([]byte, error) {
	f.calls = append(f.calls, text)
	if err, ok := f.errFor[text]; ok {
		return nil, err
	}
	if clip, ok := f.clips[text]; ok {
		return clip, nil
	}
	return []byte("clip:" + text), nil
}

// fakeCodec decodes any clip that does not start with "bad" into a single
// frame holding the clip bytes.
type fakeCodec struct {
	decoded   []string
	encodeErr error
}

func (c *fakeCodec) Decode(clip []byte) (Segment, error) {
	c.decoded = append(c.decoded, string(clip))
	if strings.HasPrefix(string(clip), "bad") {
		return Segment{}, errors.New("malformed clip")
	}
	return Segment{Frames: [][]byte{clip}}, nil
}

func (c *fakeCodec) Encode(seg Segment) ([]byte, error) {
	if c.encodeErr != nil {
		return nil, c.encodeErr
	}
	return append([]byte("ENC|"), bytes.Join(seg.Frames, []byte("|"))...), nil
}
