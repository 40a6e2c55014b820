package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/neurlang/gosptk/internal/audio"
	"github.com/neurlang/gosptk/mgcep"
)

const fftLen = 512

func main() {
	if len(os.Args) < 3 {
		log.Fatal("usage: mgcsp <param_file> <png_file> [alpha] [gamma]")
	}
	input, output := os.Args[1], os.Args[2]

	alpha, gamma := 0.42, 0.0
	if len(os.Args) > 3 {
		v, err := strconv.ParseFloat(os.Args[3], 64)
		if err != nil {
			log.WithError(err).Fatal("bad alpha")
		}
		alpha = v
	}
	if len(os.Args) > 4 {
		v, err := strconv.ParseFloat(os.Args[4], 64)
		if err != nil {
			log.WithError(err).Fatal("bad gamma")
		}
		gamma = v
	}

	f, err := os.Open(input)
	if err != nil {
		log.WithError(err).Fatal("cannot open parameter file")
	}
	frames, err := audio.ReadFrames(f)
	f.Close()
	if err != nil {
		log.WithError(err).Fatal("cannot read parameter file")
	}
	if len(frames) == 0 {
		log.Fatal("parameter file holds no frames")
	}

	rows := make([][]float64, len(frames))
	for i, mgc := range frames {
		sp, err := mgcep.MGC2LogAmplitude(mgc, alpha, gamma, fftLen)
		if err != nil {
			log.WithError(err).WithField("frame", i).Fatal("spectrum evaluation failed")
		}
		rows[i] = sp
	}

	if err := dumpimage(output, rows); err != nil {
		log.WithError(err).Fatal("cannot write image")
	}
	log.WithFields(log.Fields{
		"frames": len(rows),
		"bins":   len(rows[0]),
	}).Info("spectrogram written")
}

// dumpimage renders the log-amplitude matrix min/max normalized, one column
// per frame, low frequencies at the bottom.
func dumpimage(name string, rows [][]float64) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	bins := len(rows[0])
	img := image.NewRGBA(image.Rect(0, 0, len(rows), bins))

	lo, hi := rows[0][0], rows[0][0]
	for _, row := range rows {
		for _, v := range row {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	for x, row := range rows {
		for y, v := range row {
			val := (v - lo) / span
			var col color.RGBA
			col.R = uint8(255 * val)
			col.G = uint8(255 * val * val)
			col.B = uint8(255 * (1 - val) * val)
			col.A = 255
			img.SetRGBA(x, bins-y-1, col)
		}
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
