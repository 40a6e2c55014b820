package main

import (
	"math/cmplx"
	"os"
	"strconv"

	"github.com/r9y9/gossp/stft"
	log "github.com/sirupsen/logrus"

	"github.com/neurlang/gosptk/internal/audio"
	"github.com/neurlang/gosptk/mgcep"
)

const frameShift = 256

func main() {
	if len(os.Args) < 3 {
		log.Fatal("usage: mcep <audio_file> <param_file> [order] [alpha]")
	}
	input, output := os.Args[1], os.Args[2]

	// Analysis configuration
	an := mgcep.New()
	an.Alpha = 0.42
	an.FFTLen = 1024
	an.IType = mgcep.ITypeAmplitude
	an.EType = mgcep.ETypeAbsFloor
	an.Eps = 1e-8

	if len(os.Args) > 3 {
		order, err := strconv.Atoi(os.Args[3])
		if err != nil {
			log.WithError(err).Fatal("bad order")
		}
		an.Order = order
	}
	if len(os.Args) > 4 {
		alpha, err := strconv.ParseFloat(os.Args[4], 64)
		if err != nil {
			log.WithError(err).Fatal("bad alpha")
		}
		an.Alpha = alpha
	}

	samples, sr, err := audio.Load(input)
	if err != nil {
		log.WithError(err).WithField("file", input).Fatal("cannot load audio")
	}
	log.WithFields(log.Fields{"samples": len(samples), "rate": sr}).Info("audio loaded")

	s := stft.New(frameShift, an.FFTLen)
	spectra := s.STFT(samples)

	half := an.FFTLen/2 + 1
	frames := make([][]float64, 0, len(spectra))
	for i, spec := range spectra {
		amp := make([]float64, half)
		for j := 0; j < half; j++ {
			amp[j] = cmplx.Abs(spec[j])
		}
		mc, err := an.MGCep(amp, mgcep.OTypeCepstrum)
		if err != nil {
			log.WithError(err).WithField("frame", i).Fatal("analysis failed")
		}
		frames = append(frames, mc)
	}

	f, err := os.Create(output)
	if err != nil {
		log.WithError(err).Fatal("cannot create parameter file")
	}
	if err := audio.WriteFrames(f, frames); err != nil {
		f.Close()
		log.WithError(err).Fatal("cannot write parameter file")
	}
	if err := f.Close(); err != nil {
		log.WithError(err).Fatal("cannot close parameter file")
	}
	log.WithFields(log.Fields{
		"frames": len(frames),
		"order":  an.Order,
		"alpha":  an.Alpha,
	}).Info("mel-cepstra written")
}
