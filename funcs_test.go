package number

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func piTimes(t *testing.T, num, den int64) Number {
	t.Helper()
	return New(RationalValue(mustRat(t, num, den)), PiMultiple)
}

// fuzzyNear asserts that n is an inexact scalar within delta of want.
func fuzzyNear(t *testing.T, n Number, want, delta float64) {
	t.Helper()
	require.False(t, n.IsExact())
	require.Equal(t, Scalar, n.Factor())
	f, ok := n.Value().Float64()
	require.True(t, ok)
	assert.InDelta(t, want, f, delta)
}

func TestSin(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		tests := []struct {
			arg  Number
			want Number
		}{
			{Zero, Zero},
			{Pi, Zero},
			{piTimes(t, 1, 2), One},
			{piTimes(t, 3, 2), Neg(One)},
			{piTimes(t, -1, 2), Neg(One)},
			{piTimes(t, 1, 6), FromRational(mustRat(t, 1, 2))},
			{piTimes(t, 5, 6), FromRational(mustRat(t, 1, 2))},
			{piTimes(t, 5, 2), One},
		}
		for _, tt := range tests {
			got := Sin(tt.arg)
			assert.True(t, got.IsExact(), "Sin(%v)", tt.arg)
			assert.True(t, Equals(got, tt.want), "Sin(%v) = %v, want %v", tt.arg, got, tt.want)
		}
	})

	t.Run("inexact", func(t *testing.T) {
		fuzzyNear(t, Sin(One), math.Sin(1), 1e-12)
		fuzzyNear(t, Sin(piTimes(t, 1, 3)), math.Sin(math.Pi/3), 1e-12)
		fuzzyNear(t, Sin(FromFloat64(10)), math.Sin(10), 1e-12)
	})

	t.Run("invalid", func(t *testing.T) {
		bad := MustDiv(One, Zero)
		assert.True(t, Sin(bad).Value().IsInvalid())
	})
}

func TestCos(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		tests := []struct {
			arg  Number
			want Number
		}{
			{Zero, One},
			{Pi, Neg(One)},
			{piTimes(t, 1, 2), Zero},
			{piTimes(t, 1, 3), FromRational(mustRat(t, 1, 2))},
			{piTimes(t, 2, 3), FromRational(mustRat(t, -1, 2))},
			{New(IntValue(2), PiMultiple), One},
		}
		for _, tt := range tests {
			got := Cos(tt.arg)
			assert.True(t, got.IsExact(), "Cos(%v)", tt.arg)
			assert.True(t, Equals(got, tt.want), "Cos(%v) = %v, want %v", tt.arg, got, tt.want)
		}
	})

	t.Run("inexact", func(t *testing.T) {
		fuzzyNear(t, Cos(One), math.Cos(1), 1e-12)
		fuzzyNear(t, Cos(piTimes(t, 1, 4)), math.Cos(math.Pi/4), 1e-12)
	})
}

func TestTan(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		assert.True(t, Equals(Tan(Zero), Zero))
		assert.True(t, Equals(Tan(Pi), Zero))
		assert.True(t, Equals(Tan(piTimes(t, 1, 4)), One))
		assert.True(t, Equals(Tan(piTimes(t, 3, 4)), Neg(One)))
	})

	t.Run("undefined at odd half turns", func(t *testing.T) {
		assert.True(t, Tan(piTimes(t, 1, 2)).Value().IsInvalid())
		assert.True(t, Tan(piTimes(t, 3, 2)).Value().IsInvalid())
	})

	t.Run("inexact", func(t *testing.T) {
		fuzzyNear(t, Tan(One), math.Tan(1), 1e-11)
	})
}

func TestAtan(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		assert.True(t, Equals(Atan(Zero), Zero))
		assert.True(t, Equals(Atan(One), piTimes(t, 1, 4)))
		assert.True(t, Equals(Atan(Neg(One)), piTimes(t, -1, 4)))
	})

	t.Run("inexact", func(t *testing.T) {
		fuzzyNear(t, Atan(FromRational(mustRat(t, 1, 3))), math.Atan(1.0/3), 1e-12)
		fuzzyNear(t, Atan(Two), math.Atan(2), 1e-12)
		fuzzyNear(t, Atan(FromInt64(100)), math.Atan(100), 1e-12)
		fuzzyNear(t, Atan(FromInt64(-100)), math.Atan(-100), 1e-12)
	})
}

func TestExp(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		assert.True(t, Equals(Exp(Zero), One))
		assert.True(t, Equals(Exp(One), E))
	})

	t.Run("inexact", func(t *testing.T) {
		fuzzyNear(t, Exp(Two), math.Exp(2), 1e-10)
		fuzzyNear(t, Exp(Neg(One)), math.Exp(-1), 1e-12)
		fuzzyNear(t, Exp(FromInt64(20)), math.Exp(20), 1e-4)
	})

	t.Run("overflow is invalid", func(t *testing.T) {
		assert.True(t, Exp(FromInt64(1000)).Value().IsInvalid())
	})
}

func TestLog(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		assert.True(t, Equals(Log(One), Zero))
		assert.True(t, Equals(Log(E), One))
	})

	t.Run("inexact", func(t *testing.T) {
		fuzzyNear(t, Log(Two), math.Ln2, 1e-12)
		fuzzyNear(t, Log(FromInt64(1000)), math.Log(1000), 1e-12)
		fuzzyNear(t, Log(FromRational(mustRat(t, 1, 2))), -math.Ln2, 1e-12)
	})

	t.Run("non-positive is invalid", func(t *testing.T) {
		assert.True(t, Log(Zero).Value().IsInvalid())
		assert.True(t, Log(Neg(One)).Value().IsInvalid())
	})
}

func TestSqrt(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		assert.True(t, Equals(Sqrt(Zero), Zero))
		assert.True(t, Equals(Sqrt(FromInt64(4)), Two))
		assert.True(t, Equals(Sqrt(FromInt64(144)), FromInt64(12)))
		assert.True(t, Equals(Sqrt(FromRational(mustRat(t, 9, 4))), FromRational(mustRat(t, 3, 2))))
	})

	t.Run("inexact", func(t *testing.T) {
		fuzzyNear(t, Sqrt(Two), math.Sqrt2, 1e-12)
		fuzzyNear(t, Sqrt(FromInt64(7)), math.Sqrt(7), 1e-12)
		fuzzyNear(t, Sqrt(FromFloat64(0.5)), math.Sqrt(0.5), 1e-12)
	})

	t.Run("negative is invalid", func(t *testing.T) {
		assert.True(t, Sqrt(Neg(One)).Value().IsInvalid())
	})
}

func TestPowInt(t *testing.T) {
	t.Run("exact rational", func(t *testing.T) {
		assert.True(t, Equals(PowInt(Two, 0), One))
		assert.True(t, Equals(PowInt(Two, 10), FromInt64(1024)))
		assert.True(t, Equals(PowInt(Two, -2), FromRational(mustRat(t, 1, 4))))
		assert.True(t, Equals(
			PowInt(FromRational(mustRat(t, 2, 3)), 2),
			FromRational(mustRat(t, 4, 9)),
		))
	})

	t.Run("identity", func(t *testing.T) {
		assert.True(t, Equals(PowInt(Pi, 1), Pi))
	})

	t.Run("zero to a negative power is invalid", func(t *testing.T) {
		assert.True(t, PowInt(Zero, -1).Value().IsInvalid())
	})

	t.Run("non-scalar factor goes scalar", func(t *testing.T) {
		fuzzyNear(t, PowInt(Pi, 2), math.Pi*math.Pi, 1e-9)
	})

	t.Run("fuzz scales with the exponent", func(t *testing.T) {
		x := NewFuzzy(DoubleValue(2), Scalar, NewFuzz(GaussianAbsolute, 0.01))
		p := PowInt(x, 3)
		fuzzyNear(t, p, 8, 1e-12)
		f, ok := p.(FuzzyNumber)
		require.True(t, ok)
		// d(x^3) = 3x^2 dx
		assert.InDelta(t, 3*4*0.01, f.Fuzz().Magnitude(), 1e-9)
	})
}

func TestDerivativeFuzzPropagation(t *testing.T) {
	// sin' = cos, so the input deviation maps through |cos| at the nominal.
	x := NewFuzzy(DoubleValue(1), Scalar, NewFuzz(GaussianAbsolute, 1e-3))
	s := Sin(x)
	f, ok := s.(FuzzyNumber)
	require.True(t, ok)
	assert.InDelta(t, math.Abs(math.Cos(1))*1e-3, f.Fuzz().Magnitude(), 1e-8)

	// exp' = exp.
	e := Exp(x)
	f, ok = e.(FuzzyNumber)
	require.True(t, ok)
	assert.InDelta(t, math.E*1e-3, f.Fuzz().Magnitude(), 1e-6)

	// log' = 1/x.
	l := Log(NewFuzzy(DoubleValue(10), Scalar, NewFuzz(GaussianAbsolute, 1e-3)))
	f, ok = l.(FuzzyNumber)
	require.True(t, ok)
	assert.InDelta(t, 1e-4, f.Fuzz().Magnitude(), 1e-8)
}
