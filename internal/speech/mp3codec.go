package speech

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/tcolgate/mp3"
)

var ErrNoFrames = errors.New("no mpeg audio frames found")

// MP3Codec works at the frame level: decoding splits a clip into its MPEG
// audio frames, dropping ID3 tags and junk between frames, and encoding
// writes the frames back as a single stream.
type MP3Codec struct{}

func (MP3Codec) Decode(clip []byte) (Segment, error) {
	dec := mp3.NewDecoder(bytes.NewReader(clip))

	var (
		seg     Segment
		frame   mp3.Frame
		skipped int
	)
	for {
		if err := dec.Decode(&frame, &skipped); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Segment{}, fmt.Errorf("decode mp3 frame %d: %w", seg.Len(), err)
		}

		data, err := io.ReadAll(frame.Reader())
		if err != nil {
			return Segment{}, fmt.Errorf("read mp3 frame %d: %w", seg.Len(), err)
		}
		seg.Frames = append(seg.Frames, data)
		seg.Duration += frame.Duration()
	}

	if seg.Len() == 0 {
		return Segment{}, ErrNoFrames
	}
	return seg, nil
}

func (MP3Codec) Encode(seg Segment) ([]byte, error) {
	if seg.Len() == 0 {
		return nil, ErrNoFrames
	}
	var buf bytes.Buffer
	for _, f := range seg.Frames {
		buf.Write(f)
	}
	return buf.Bytes(), nil
}
