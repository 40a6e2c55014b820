package audio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/x448/float16"
)

// Parameter frames travel between the analysis and synthesis tools as
// fixed-width records of little-endian IEEE half-precision floats behind a
// small header carrying the record width.

var paramMagic = [4]byte{'g', 's', 'p', '1'}

// WriteFrames encodes equally sized parameter frames. All frames must share
// the width of the first one.
func WriteFrames(w io.Writer, frames [][]float64) error {
	if len(frames) == 0 {
		return fmt.Errorf("audio: no frames to write")
	}
	width := len(frames[0])
	if width == 0 || width > 1<<16-1 {
		return fmt.Errorf("audio: unencodable frame width %d", width)
	}
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(paramMagic[:]); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint16(width)); err != nil {
		return err
	}
	rec := make([]uint16, width)
	for _, fr := range frames {
		if len(fr) != width {
			return fmt.Errorf("audio: ragged frame width %d, want %d", len(fr), width)
		}
		for i, v := range fr {
			rec[i] = float16.Fromfloat32(float32(v)).Bits()
		}
		if err := binary.Write(bw, binary.LittleEndian, rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadFrames decodes a parameter file written by WriteFrames.
func ReadFrames(r io.Reader) ([][]float64, error) {
	br := bufio.NewReader(r)
	var magic [4]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, err
	}
	if magic != paramMagic {
		return nil, fmt.Errorf("audio: not a parameter file")
	}
	var width uint16
	if err := binary.Read(br, binary.LittleEndian, &width); err != nil {
		return nil, err
	}
	if width == 0 {
		return nil, fmt.Errorf("audio: zero frame width")
	}
	var frames [][]float64
	rec := make([]uint16, width)
	for {
		if err := binary.Read(br, binary.LittleEndian, rec); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		fr := make([]float64, width)
		for i, bits := range rec {
			fr[i] = float64(float16.Frombits(bits).Float32())
		}
		frames = append(frames, fr)
	}
	return frames, nil
}
