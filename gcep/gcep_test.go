package gcep

import (
	"math"
	"testing"

	gosptk "github.com/neurlang/gosptk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGexpGlogRoundTrip(t *testing.T) {
	gammas := []float64{0, -0.25, -0.5, -1}
	xs := []float64{-0.9, -0.1, 0, 0.3, 1.5}
	for _, g := range gammas {
		for _, x := range xs {
			y := Gexp(g, x)
			if y == 0 {
				continue // outside the valid domain for this gamma
			}
			assert.InDelta(t, x, Glog(g, y), 1e-12, "gamma=%g x=%g", g, x)
		}
	}
}

func TestGexpInvalidDomainIsZero(t *testing.T) {
	// 1 + gamma*x <= 0 must yield zero, not NaN or a panic.
	assert.Equal(t, 0.0, Gexp(-0.5, 3.0))
	assert.Equal(t, 0.0, Gexp(-1.0, 1.0))
}

func TestGexpGammaZeroIsExp(t *testing.T) {
	assert.InDelta(t, 1.0, Gexp(0, 0), 1e-15)
	assert.InDelta(t, 0.0, Glog(0, 1), 1e-15)
}

func TestGnormIgnormRoundTrip(t *testing.T) {
	c := []float64{0.7, 0.3, -0.2, 0.1, -0.05}
	for _, g := range []float64{0, -0.25, -0.5, -1} {
		n, err := Gnorm(c, g)
		require.NoError(t, err)
		back, err := Ignorm(n, g)
		require.NoError(t, err)
		for i := range c {
			assert.InDelta(t, c[i], back[i], 1e-12, "gamma=%g i=%d", g, i)
		}
	}
}

func TestGnormGainConvention(t *testing.T) {
	// K = (1 + gamma*c0)^(1/gamma) and the tail is divided by K^gamma,
	// so Gnorm, Ignorm and the stored gain all share one convention.
	c := []float64{0.7, 0.3, -0.2}
	n, err := Gnorm(c, -0.5)
	require.NoError(t, err)

	k := 1 - 0.5*0.7
	assert.InDelta(t, math.Pow(k, -2), n[0], 1e-12)
	assert.InDelta(t, Gexp(-0.5, 0.7), n[0], 1e-12)
	assert.InDelta(t, 0.3/k, n[1], 1e-12)
	assert.InDelta(t, -0.2/k, n[2], 1e-12)
}

func TestGnormGammaZeroKeepsHigherCoefficients(t *testing.T) {
	c := []float64{0.5, 0.3, -0.2}
	n, err := Gnorm(c, 0)
	require.NoError(t, err)
	assert.InDelta(t, Gexp(0, 0.5), n[0], 1e-15)
	assert.Equal(t, c[1], n[1])
	assert.Equal(t, c[2], n[2])
}

func TestGC2GCIdentity(t *testing.T) {
	c := []float64{0.9, 0.4, -0.3, 0.15, -0.02}
	for _, g := range []float64{0, -0.5, -1} {
		out, err := GC2GC(c, g, len(c)-1, g)
		require.NoError(t, err)
		for i := range c {
			assert.InDelta(t, c[i], out[i], 1e-12, "gamma=%g i=%d", g, i)
		}
	}
}

func TestGC2GCRoundTrip(t *testing.T) {
	c := []float64{0.9, 0.4, -0.3, 0.15, -0.02}
	mid, err := GC2GC(c, 0, len(c)-1, -0.5)
	require.NoError(t, err)
	back, err := GC2GC(mid, -0.5, len(c)-1, 0)
	require.NoError(t, err)
	for i := range c {
		assert.InDelta(t, c[i], back[i], 1e-9, "i=%d", i)
	}
}

func TestGammaValidation(t *testing.T) {
	c := []float64{0.5, 0.1}
	_, err := Gnorm(c, 0.1)
	assert.True(t, gosptk.IsValidation(err))
	_, err = Ignorm(c, 0.1)
	assert.True(t, gosptk.IsValidation(err))
	_, err = GC2GC(c, 0.1, 1, 0)
	assert.True(t, gosptk.IsValidation(err))
	_, err = GC2GC(c, 0, 1, 0.1)
	assert.True(t, gosptk.IsValidation(err))
	_, err = Gnorm(c, -1.5)
	assert.True(t, gosptk.IsValidation(err))
}
