package speech

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMP3Codec_DecodeFrames(t *testing.T) {
	seg, err := MP3Codec{}.Decode(mp3Clip(3))

	require.NoError(t, err)
	require.Equal(t, 3, seg.Len())
	require.Positive(t, seg.Duration)
	for _, f := range seg.Frames {
		require.Equal(t, mp3Frame(), f)
	}
}

func TestMP3Codec_DecodeGarbage(t *testing.T) {
	_, err := MP3Codec{}.Decode([]byte("this is not audio at all"))
	require.Error(t, err)
}

func TestMP3Codec_DecodeEmpty(t *testing.T) {
	_, err := MP3Codec{}.Decode(nil)
	require.ErrorIs(t, err, ErrNoFrames)
}

func TestMP3Codec_EncodeJoinsFrames(t *testing.T) {
	a, err := MP3Codec{}.Decode(mp3Clip(2))
	require.NoError(t, err)
	b, err := MP3Codec{}.Decode(mp3Clip(1))
	require.NoError(t, err)

	a.Append(b)
	out, err := MP3Codec{}.Encode(a)

	require.NoError(t, err)
	require.Equal(t, mp3Clip(3), out)
}

func TestMP3Codec_EncodeEmpty(t *testing.T) {
	_, err := MP3Codec{}.Encode(Segment{})
	require.ErrorIs(t, err, ErrNoFrames)
}

func TestStitcher_MP3Clips(t *testing.T) {
	s := &Stitcher{Codec: MP3Codec{}}

	res := s.Stitch([][]byte{mp3Clip(2), mp3Clip(1)})

	require.Equal(t, ModeDecoded, res.Mode)
	require.True(t, bytes.Equal(mp3Clip(3), res.Audio))
}

func TestStitcher_MP3ClipThenGarbage(t *testing.T) {
	s := &Stitcher{Codec: MP3Codec{}}
	junk := []byte("<html>rate limited</html>")

	res := s.Stitch([][]byte{mp3Clip(1), junk, mp3Clip(1)})

	require.Equal(t, ModeRaw, res.Mode)
	want := append(append(mp3Clip(1), junk...), mp3Clip(1)...)
	require.Equal(t, want, res.Audio)
}
