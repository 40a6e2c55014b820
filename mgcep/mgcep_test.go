package mgcep

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gosptk "github.com/neurlang/gosptk"
	"github.com/neurlang/gosptk/gcep"
	"github.com/neurlang/gosptk/lpc"
)

// logAmpFrame samples the log-amplitude spectrum of a known low-order
// cepstrum on the fftlen/2+1 grid.
func logAmpFrame(ct []float64, fftlen int) []float64 {
	half := fftlen/2 + 1
	frame := make([]float64, half)
	for i := 0; i < half; i++ {
		w := 2 * math.Pi * float64(i) / float64(fftlen)
		v := ct[0]
		for k := 1; k < len(ct); k++ {
			v += ct[k] * math.Cos(float64(k)*w)
		}
		frame[i] = v
	}
	return frame
}

func testTarget() []float64 {
	return []float64{0.4, 0.8, -0.5, 0.25, -0.1}
}

func TestUELSRecoversKnownCepstrum(t *testing.T) {
	ct := testTarget()
	an := New()
	an.Order = 8
	an.FFTLen = 128
	an.IType = ITypeLogAmp
	an.MaxIter = 50
	an.Threshold = 1e-9

	frame := logAmpFrame(ct, an.FFTLen)
	c, err := an.UELS(frame)
	require.NoError(t, err)
	require.Len(t, c, an.Order+1)
	for k := 0; k < len(ct); k++ {
		assert.InDelta(t, ct[k], c[k], 1e-3, "k=%d", k)
	}
	for k := len(ct); k <= an.Order; k++ {
		assert.InDelta(t, 0, c[k], 1e-3, "k=%d", k)
	}
}

func TestMCepFitsSpectrum(t *testing.T) {
	ct := testTarget()
	an := New()
	an.Order = 16
	an.Alpha = 0.35
	an.FFTLen = 128
	an.IType = ITypeLogAmp
	an.MaxIter = 60
	an.Threshold = 1e-9

	frame := logAmpFrame(ct, an.FFTLen)
	mc, err := an.MCep(frame)
	require.NoError(t, err)

	got, err := MGC2LogAmplitude(mc, an.Alpha, 0, an.FFTLen)
	require.NoError(t, err)
	mae := 0.0
	for i, v := range got {
		mae += math.Abs(v - frame[i])
	}
	mae /= float64(len(got))
	assert.Less(t, mae, 0.05, "mel-cepstral fit too loose")
}

func TestMCepRecoversKnownMelCepstrum(t *testing.T) {
	mct := testTarget()
	an := New()
	an.Order = 8
	an.Alpha = 0.35
	an.FFTLen = 128
	an.IType = ITypeLogAmp
	an.MaxIter = 60
	an.Threshold = 1e-9

	// A frame sampled from the model class itself must come back exactly.
	frame, err := MGC2LogAmplitude(mct, an.Alpha, 0, an.FFTLen)
	require.NoError(t, err)
	mc, err := an.MCep(frame)
	require.NoError(t, err)
	for k := 0; k < len(mct); k++ {
		assert.InDelta(t, mct[k], mc[k], 1e-3, "k=%d", k)
	}
	for k := len(mct); k <= an.Order; k++ {
		assert.InDelta(t, 0, mc[k], 1e-3, "k=%d", k)
	}
}

func TestGCepFitsSpectrum(t *testing.T) {
	ct := testTarget()
	an := New()
	an.Order = 10
	an.Gamma = -0.5
	an.FFTLen = 128
	an.IType = ITypeLogAmp
	an.MaxIter = 60
	an.Threshold = 1e-9

	frame := logAmpFrame(ct, an.FFTLen)
	gc, err := an.GCep(frame)
	require.NoError(t, err)

	got, err := MGC2LogAmplitude(gc, 0, -0.5, an.FFTLen)
	require.NoError(t, err)
	mae := 0.0
	for i, v := range got {
		mae += math.Abs(v - frame[i])
	}
	mae /= float64(len(got))
	assert.Less(t, mae, 0.05, "generalized cepstral fit too loose")
}

func TestMGCepOutputTypeTable(t *testing.T) {
	ct := testTarget()
	an := New()
	an.Order = 10
	an.Alpha = 0.35
	an.Gamma = -0.5
	an.FFTLen = 128
	an.IType = ITypeLogAmp

	frame := logAmpFrame(ct, an.FFTLen)

	c, err := an.MGCep(frame, OTypeCepstrum)
	require.NoError(t, err)
	norm, err := an.MGCep(frame, OTypeNormCepstrum)
	require.NoError(t, err)
	b, err := an.MGCep(frame, OTypeB)
	require.NoError(t, err)
	b3, err := an.MGCep(frame, OTypeNormB)
	require.NoError(t, err)
	cg, err := an.MGCep(frame, OTypeNormCepstrumGain)
	require.NoError(t, err)
	bg, err := an.MGCep(frame, OTypeBGamma)
	require.NoError(t, err)

	// De-normalizing the normalized cepstrum output reproduces otype 0.
	denorm, err := gcep.Ignorm(norm, an.Gamma)
	require.NoError(t, err)
	for i := range c {
		assert.InDelta(t, c[i], denorm[i], 1e-10, "otype0 vs ignorm(otype2), i=%d", i)
	}

	// otype 1 and otype 3 share their shaping.
	assert.Equal(t, b, b3)

	// gamma-scaled variants only touch indices above 0.
	assert.Equal(t, norm[0], cg[0])
	assert.Equal(t, b[0], bg[0])
	for i := 1; i < len(b); i++ {
		assert.InDelta(t, norm[i]*an.Gamma, cg[i], 1e-12, "i=%d", i)
		assert.InDelta(t, b[i]*an.Gamma, bg[i], 1e-12, "i=%d", i)
	}

	// The b-form re-normalizes the de-normalized cepstrum in the b domain,
	// so its gain slot multiplies the synthesis filter exactly.
	bc, err := MC2B(c, an.Alpha)
	require.NoError(t, err)
	bn, err := gcep.Gnorm(bc, an.Gamma)
	require.NoError(t, err)
	for i := range b {
		assert.InDelta(t, bn[i], b[i], 1e-10, "i=%d", i)
	}
}

func TestMGCepGammaMinusOneMatchesLPC(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const r, theta = 0.9, 0.8
	c1 := 2 * r * math.Cos(theta)
	c2 := -r * r
	frame := make([]float64, 1024)
	var y1, y2 float64
	for i := range frame {
		v := c1*y1 + c2*y2 + rng.NormFloat64()
		y2, y1 = y1, v
		frame[i] = v
	}

	a, err := lpc.Analyze(frame, 2, 0)
	require.NoError(t, err)

	an := New()
	an.Order = 2
	an.Alpha = 0
	an.Gamma = -1
	an.FFTLen = 2048
	an.IType = ITypeWaveform
	an.MaxIter = 50
	an.Threshold = 1e-9
	b, err := an.MGCep(frame, OTypeB)
	require.NoError(t, err)

	// With gamma=-1 and alpha=0 the model is all-pole: A(z) = 1 - sum b_k z^-k.
	assert.InDelta(t, a[1], -b[1], 0.05)
	assert.InDelta(t, a[2], -b[2], 0.05)
	assert.InDelta(t, a[0], b[0], 0.2)
}

func TestMGCepLevelInvariance(t *testing.T) {
	ct := testTarget()
	an := New()
	an.Order = 10
	an.Alpha = 0.35
	an.Gamma = -0.5
	an.FFTLen = 128
	an.IType = ITypePeriodogram
	an.MaxIter = 60
	an.Threshold = 1e-9

	frame := make([]float64, an.FFTLen/2+1)
	for i := range frame {
		w := 2 * math.Pi * float64(i) / float64(an.FFTLen)
		v := ct[0]
		for k := 1; k < len(ct); k++ {
			v += ct[k] * math.Cos(float64(k)*w)
		}
		frame[i] = math.Exp(2 * v)
	}
	loud, err := an.MGCep(frame, OTypeNormCepstrum)
	require.NoError(t, err)

	// A uniformly quieter frame keeps the spectral shape; only the gain
	// moves, by the square root of the power scale.
	const scale = 1e-10
	quiet := make([]float64, len(frame))
	for i, v := range frame {
		quiet[i] = v * scale
	}
	q, err := an.MGCep(quiet, OTypeNormCepstrum)
	require.NoError(t, err)

	assert.InDelta(t, math.Log(loud[0])+0.5*math.Log(scale), math.Log(q[0]), 1e-8)
	for i := 1; i < len(loud); i++ {
		assert.InDelta(t, loud[i], q[i], 1e-8, "i=%d", i)
	}
}

func TestSilentFrameUnflooredIsNumericalFailure(t *testing.T) {
	an := New()
	an.Order = 4
	an.FFTLen = 64
	an.IType = ITypePeriodogram
	an.EType = ETypeNone

	frame := make([]float64, an.FFTLen/2+1)
	_, err := an.MGCep(frame, OTypeCepstrum)
	assert.True(t, gosptk.IsNumerical(err))

	// The same frame floored is analyzable.
	an.EType = ETypeAdd
	an.Eps = 1e-8
	_, err = an.MGCep(frame, OTypeCepstrum)
	assert.NoError(t, err)
}

func TestAnalyzerValidation(t *testing.T) {
	frame := make([]float64, 64)

	an := New()
	an.FFTLen = 64
	an.Gamma = 0.1
	_, err := an.MGCep(frame, OTypeCepstrum)
	assert.True(t, gosptk.IsValidation(err))

	an = New()
	an.FFTLen = 300
	_, err = an.MGCep(frame, OTypeCepstrum)
	assert.True(t, gosptk.IsValidation(err))

	an = New()
	an.FFTLen = 64
	an.Order = 8
	_, err = an.MGCep(frame, 6)
	assert.True(t, gosptk.IsValidation(err))

	an = New()
	an.FFTLen = 64
	an.Order = 8
	an.Eps = -1
	an.EType = ETypeAdd
	_, err = an.MGCep(frame, OTypeCepstrum)
	assert.True(t, gosptk.IsValidation(err))
}

func TestMC2BRoundTrip(t *testing.T) {
	mc := []float64{0.7, 0.45, -0.3, 0.2, -0.08, 0.03}
	for _, alpha := range []float64{0, 0.35, 0.42, -0.2} {
		b, err := MC2B(mc, alpha)
		require.NoError(t, err)
		back, err := B2MC(b, alpha)
		require.NoError(t, err)
		for i := range mc {
			assert.InDelta(t, mc[i], back[i], 1e-12, "alpha=%g i=%d", alpha, i)
		}
	}
}

func TestMGC2MGCIdentity(t *testing.T) {
	c := []float64{0.6, 0.4, -0.25, 0.12, -0.05}
	out, err := MGC2MGC(c, 0.35, -0.5, len(c)-1, 0.35, -0.5)
	require.NoError(t, err)
	for i := range c {
		assert.InDelta(t, c[i], out[i], 1e-10, "i=%d", i)
	}
}

func TestMGC2MGCRoundTrip(t *testing.T) {
	c := []float64{0.6, 0.4, -0.25, 0.12, -0.05}
	mid, err := MGC2MGC(c, 0, 0, 24, 0.35, -0.5)
	require.NoError(t, err)
	back, err := MGC2MGC(mid, 0.35, -0.5, len(c)-1, 0, 0)
	require.NoError(t, err)
	for i := range c {
		assert.InDelta(t, c[i], back[i], 1e-4, "i=%d", i)
	}
}
