package main

import (
	"math"
	"math/rand"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/neurlang/gosptk/internal/audio"
	"github.com/neurlang/gosptk/mgcep"
	"github.com/neurlang/gosptk/synth"
)

const (
	frameShift = 256
	sampleRate = 16000
)

func main() {
	if len(os.Args) < 3 {
		log.Fatal("usage: synth <param_file> <wav_file> [pitch_period] [alpha]")
	}
	input, output := os.Args[1], os.Args[2]

	period := 0
	alpha := 0.42
	if len(os.Args) > 3 {
		v, err := strconv.Atoi(os.Args[3])
		if err != nil || v < 0 {
			log.Fatal("bad pitch period")
		}
		period = v
	}
	if len(os.Args) > 4 {
		v, err := strconv.ParseFloat(os.Args[4], 64)
		if err != nil {
			log.WithError(err).Fatal("bad alpha")
		}
		alpha = v
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

	filter := synth.MLSA{Alpha: alpha, Pade: 5}
	state := synth.NewState(filter, len(frames[0])-1)
	rng := rand.New(rand.NewSource(1))

	out := make([]float64, 0, len(frames)*frameShift)
	phase := 0
	for i, mc := range frames {
		b, err := mgcep.MC2B(mc, alpha)
		if err != nil {
			log.WithError(err).WithField("frame", i).Fatal("bad coefficient frame")
		}
		gain := math.Exp(b[0])
		for t := 0; t < frameShift; t++ {
			var x float64
			if period > 0 {
				if phase == 0 {
					x = math.Sqrt(float64(period))
				}
				phase++
				if phase >= period {
					phase = 0
				}
			} else {
				x = rng.NormFloat64()
			}
			y, err := filter.Apply(x*gain, b, state)
			if err != nil {
				log.WithError(err).WithField("frame", i).Fatal("synthesis failed")
			}
			out = append(out, y)
		}
	}

	if err := audio.SaveWav(output, out, sampleRate); err != nil {
		log.WithError(err).Fatal("cannot write wav")
	}
	log.WithFields(log.Fields{
		"frames":  len(frames),
		"samples": len(out),
	}).Info("waveform written")
}
