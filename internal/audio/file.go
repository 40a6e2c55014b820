package audio

import (
	"io"
	"os"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/mewkiz/flac"
)

// Load reads an audio file into a mono sample vector in [-1, 1] and reports
// its sample rate. The container is chosen by extension: .flac is parsed as
// FLAC, everything else as WAV.
func Load(name string) ([]float64, int, error) {
	if strings.HasSuffix(name, ".flac") {
		return LoadFlac(name)
	}
	return LoadWav(name)
}

// LoadWav decodes a WAV file. Multi-channel input keeps the left channel.
func LoadWav(name string) ([]float64, int, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, 0, err
	}
	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	defer stream.Close()

	var out []float64
	buf := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(buf)
		for i := 0; i < n; i++ {
			out = append(out, buf[i][0])
		}
		if !ok {
			break
		}
	}
	return out, int(format.SampleRate), stream.Err()
}

// LoadFlac decodes a FLAC file. Multi-channel input keeps the first channel.
func LoadFlac(name string) ([]float64, int, error) {
	stream, err := flac.ParseFile(name)
	if err != nil {
		return nil, 0, err
	}
	defer stream.Close()

	scale := float64(int64(1) << (stream.Info.BitsPerSample - 1))
	var out []float64
	for {
		fr, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		for _, s := range fr.Subframes[0].Samples {
			out = append(out, float64(s)/scale)
		}
	}
	return out, int(stream.Info.SampleRate), nil
}

// SaveWav writes a mono sample vector as a 16-bit WAV file. Samples outside
// [-1, 1] are clipped.
func SaveWav(name string, vec []float64, sr int) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	format := beep.Format{SampleRate: beep.SampleRate(sr), NumChannels: 1, Precision: 2}
	if err := wav.Encode(f, &monoStreamer{buf: vec}, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type monoStreamer struct {
	buf []float64
	pos int
}

func (s *monoStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	n := 0
	for ; n < len(samples) && s.pos < len(s.buf); n++ {
		v := s.buf[s.pos]
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		samples[n][0] = v
		samples[n][1] = v
		s.pos++
	}
	return n, true
}

func (s *monoStreamer) Err() error { return nil }
