package audio

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameCodecRoundTrip(t *testing.T) {
	frames := [][]float64{
		{0.5, -0.25, 1.5, 0},
		{0.125, 2, -3.5, 0.75},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteFrames(&buf, frames))

	got, err := ReadFrames(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(frames))
	for i := range frames {
		for j := range frames[i] {
			// Half precision resolves these exactly.
			assert.Equal(t, frames[i][j], got[i][j], "frame %d slot %d", i, j)
		}
	}
}

func TestFrameCodecHalfPrecisionError(t *testing.T) {
	frames := [][]float64{{0.333333, -1.234567, 7.654321}}
	var buf bytes.Buffer
	require.NoError(t, WriteFrames(&buf, frames))
	got, err := ReadFrames(&buf)
	require.NoError(t, err)
	for j, v := range frames[0] {
		rel := math.Abs(got[0][j]-v) / math.Abs(v)
		assert.Less(t, rel, 1e-3, "slot %d", j)
	}
}

func TestFrameCodecRejectsRaggedAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteFrames(&buf, nil))
	assert.Error(t, WriteFrames(&buf, [][]float64{{1, 2}, {3}}))

	_, err := ReadFrames(bytes.NewReader([]byte("RIFFxxxx")))
	assert.Error(t, err)
}

func TestMonoStreamerClips(t *testing.T) {
	s := &monoStreamer{buf: []float64{0.5, 2, -2}}
	out := make([][2]float64, 2)

	n, ok := s.Stream(out)
	require.True(t, ok)
	require.Equal(t, 2, n)
	assert.Equal(t, 0.5, out[0][0])
	assert.Equal(t, 1.0, out[1][0])

	n, ok = s.Stream(out)
	require.True(t, ok)
	require.Equal(t, 1, n)
	assert.Equal(t, -1.0, out[0][0])

	n, ok = s.Stream(out)
	assert.False(t, ok)
	assert.Zero(t, n)
}
