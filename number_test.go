package number

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFuzzy(t *testing.T) {
	t.Run("zero magnitude collapses to exact", func(t *testing.T) {
		n := NewFuzzy(IntValue(3), Scalar, NewFuzz(GaussianAbsolute, 0))
		assert.True(t, n.IsExact())
		_, ok := n.(ExactNumber)
		assert.True(t, ok)
	})

	t.Run("invalid collapses to exact", func(t *testing.T) {
		n := NewFuzzy(InvalidValue(), Scalar, NewFuzz(GaussianAbsolute, 0.1))
		assert.True(t, n.IsExact())
		assert.True(t, n.Value().IsInvalid())
	})

	t.Run("positive magnitude stays fuzzy", func(t *testing.T) {
		n := NewFuzzy(DoubleValue(1.5), Scalar, NewFuzz(BoxAbsolute, 0.1))
		assert.False(t, n.IsExact())
		f, ok := n.(FuzzyNumber)
		require.True(t, ok)
		assert.Equal(t, BoxAbsolute, f.Fuzz().Shape())
	})
}

func TestAdd(t *testing.T) {
	t.Run("exact same factor", func(t *testing.T) {
		halfPi := New(RationalValue(mustRat(t, 1, 2)), PiMultiple)
		sum, err := Add(halfPi, halfPi)
		require.NoError(t, err)
		assert.True(t, sum.IsExact())
		assert.True(t, Equals(sum, Pi))
	})

	t.Run("scalar reconciles inexactly", func(t *testing.T) {
		sum, err := Add(One, Pi)
		require.NoError(t, err)
		assert.False(t, sum.IsExact())
		assert.Equal(t, Scalar, sum.Factor())
		f, _ := sum.Value().Float64()
		assert.InDelta(t, 1+math.Pi, f, 1e-12)
	})

	t.Run("exact zero reconciles exactly", func(t *testing.T) {
		sum, err := Add(One, New(IntValue(0), PiMultiple))
		require.NoError(t, err)
		assert.True(t, sum.IsExact())
		assert.True(t, Equals(sum, One))
	})

	t.Run("pi and e do not reconcile", func(t *testing.T) {
		_, err := Add(Pi, E)
		require.Error(t, err)
		assert.True(t, ErrIncompatibleFactor.Has(err))
	})

	t.Run("gaussian fuzz combines as root sum of squares", func(t *testing.T) {
		x := NewFuzzy(DoubleValue(1), Scalar, NewFuzz(GaussianAbsolute, 0.1))
		y := NewFuzzy(DoubleValue(2), Scalar, NewFuzz(GaussianAbsolute, 0.2))
		sum, err := Add(x, y)
		require.NoError(t, err)
		f, ok := sum.(FuzzyNumber)
		require.True(t, ok)
		assert.InDelta(t, 0.223606797749979, f.Fuzz().Magnitude(), 1e-9)
		v, _ := sum.Value().Float64()
		assert.Equal(t, 3.0, v)
	})

	t.Run("box fuzz sums half-widths", func(t *testing.T) {
		x := NewFuzzy(DoubleValue(1), Scalar, NewFuzz(BoxAbsolute, 0.1))
		y := NewFuzzy(DoubleValue(2), Scalar, NewFuzz(BoxAbsolute, 0.2))
		sum, err := Add(x, y)
		require.NoError(t, err)
		f, ok := sum.(FuzzyNumber)
		require.True(t, ok)
		assert.Equal(t, BoxAbsolute, f.Fuzz().Shape())
		assert.InDelta(t, 0.3*0.7071067811865476, f.Fuzz().Magnitude(), 1e-12)
	})

	t.Run("one fuzzy operand keeps its fuzz", func(t *testing.T) {
		x := NewFuzzy(DoubleValue(1), Scalar, NewFuzz(GaussianAbsolute, 0.1))
		sum, err := Add(x, Two)
		require.NoError(t, err)
		f, ok := sum.(FuzzyNumber)
		require.True(t, ok)
		assert.Equal(t, 0.1, f.Fuzz().Magnitude())
	})
}

func TestSub(t *testing.T) {
	d, err := Sub(FromInt64(5), FromInt64(3))
	require.NoError(t, err)
	assert.True(t, Equals(d, Two))

	// Fuzz magnitudes accumulate even when values cancel.
	x := NewFuzzy(DoubleValue(1), Scalar, NewFuzz(GaussianAbsolute, 0.1))
	d, err = Sub(x, x)
	require.NoError(t, err)
	f, ok := d.(FuzzyNumber)
	require.True(t, ok)
	assert.InDelta(t, 0.1*math.Sqrt2, f.Fuzz().Magnitude(), 1e-12)
}

func TestNegAbs(t *testing.T) {
	x := NewFuzzy(DoubleValue(-1.5), Scalar, NewFuzz(GaussianAbsolute, 0.1))
	n := Neg(x)
	v, _ := n.Value().Float64()
	assert.Equal(t, 1.5, v)
	f, ok := n.(FuzzyNumber)
	require.True(t, ok)
	assert.Equal(t, 0.1, f.Fuzz().Magnitude())

	a := Abs(x)
	v, _ = a.Value().Float64()
	assert.Equal(t, 1.5, v)

	assert.True(t, Equals(Abs(Two), Two))
}

func TestMul(t *testing.T) {
	t.Run("scalar keeps the other factor exact", func(t *testing.T) {
		p, err := Mul(Two, Pi)
		require.NoError(t, err)
		assert.True(t, p.IsExact())
		assert.True(t, Equals(p, New(IntValue(2), PiMultiple)))
	})

	t.Run("two non-scalars go scalar", func(t *testing.T) {
		p, err := Mul(Pi, Pi)
		require.NoError(t, err)
		assert.False(t, p.IsExact())
		assert.Equal(t, Scalar, p.Factor())
		f, _ := p.Value().Float64()
		assert.InDelta(t, math.Pi*math.Pi, f, 1e-12)
	})

	t.Run("relative fuzz survives", func(t *testing.T) {
		x := NewFuzzy(DoubleValue(2), Scalar, NewFuzz(GaussianRelative, 0.01))
		p, err := Mul(x, FromInt64(3))
		require.NoError(t, err)
		f, ok := p.(FuzzyNumber)
		require.True(t, ok)
		assert.Equal(t, GaussianRelative, f.Fuzz().Shape())
		assert.InDelta(t, 0.01, f.Fuzz().Magnitude(), 1e-12)
	})

	t.Run("two relative fuzzes combine", func(t *testing.T) {
		x := NewFuzzy(DoubleValue(2), Scalar, NewFuzz(GaussianRelative, 0.03))
		y := NewFuzzy(DoubleValue(3), Scalar, NewFuzz(GaussianRelative, 0.04))
		p, err := Mul(x, y)
		require.NoError(t, err)
		f, ok := p.(FuzzyNumber)
		require.True(t, ok)
		assert.InDelta(t, 0.05, f.Fuzz().Magnitude(), 1e-12)
	})
}

func TestDiv(t *testing.T) {
	t.Run("matching factors cancel exactly", func(t *testing.T) {
		q, err := Div(Pi, Pi)
		require.NoError(t, err)
		assert.True(t, q.IsExact())
		assert.True(t, Equals(q, One))
	})

	t.Run("scalar divisor keeps the factor", func(t *testing.T) {
		q, err := Div(Pi, Two)
		require.NoError(t, err)
		assert.True(t, q.IsExact())
		assert.Equal(t, PiMultiple, q.Factor())
		assert.True(t, Equals(q, New(RationalValue(mustRat(t, 1, 2)), PiMultiple)))
	})

	t.Run("exact quotient is rational", func(t *testing.T) {
		q, err := Div(One, FromInt64(3))
		require.NoError(t, err)
		assert.True(t, q.IsExact())
		assert.True(t, Equals(q, FromRational(mustRat(t, 1, 3))))
	})

	t.Run("division by zero absorbs", func(t *testing.T) {
		q, err := Div(One, Zero)
		require.NoError(t, err)
		assert.True(t, q.Value().IsInvalid())

		q, err = Div(Zero, Zero)
		require.NoError(t, err)
		assert.True(t, q.Value().IsInvalid())
	})
}

func TestCompare(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		c, err := Compare(One, Two, DefaultConfidence)
		require.NoError(t, err)
		assert.Equal(t, -1, c)

		c, err = Compare(Two, One, DefaultConfidence)
		require.NoError(t, err)
		assert.Equal(t, 1, c)

		c, err = Compare(FromRational(mustRat(t, 4, 2)), Two, DefaultConfidence)
		require.NoError(t, err)
		assert.Equal(t, 0, c)
	})

	t.Run("overlapping fuzzy values compare equal", func(t *testing.T) {
		x := NewFuzzy(DoubleValue(1.00), Scalar, NewFuzz(GaussianAbsolute, 0.1))
		y := NewFuzzy(DoubleValue(1.05), Scalar, NewFuzz(GaussianAbsolute, 0.1))
		c, err := Compare(x, y, DefaultConfidence)
		require.NoError(t, err)
		assert.Equal(t, 0, c)

		// Symmetric.
		c, err = Compare(y, x, DefaultConfidence)
		require.NoError(t, err)
		assert.Equal(t, 0, c)
	})

	t.Run("well separated fuzzy values order", func(t *testing.T) {
		x := NewFuzzy(DoubleValue(1), Scalar, NewFuzz(GaussianAbsolute, 0.1))
		y := NewFuzzy(DoubleValue(2), Scalar, NewFuzz(GaussianAbsolute, 0.1))
		c, err := Compare(x, y, DefaultConfidence)
		require.NoError(t, err)
		assert.Equal(t, -1, c)
	})

	t.Run("cross factor", func(t *testing.T) {
		c, err := Compare(Pi, FromInt64(3), DefaultConfidence)
		require.NoError(t, err)
		assert.Equal(t, 1, c)

		c, err = Compare(E, Pi, DefaultConfidence)
		require.NoError(t, err)
		assert.Equal(t, -1, c)
	})

	t.Run("invalid operand", func(t *testing.T) {
		bad, err := Div(One, Zero)
		require.NoError(t, err)
		_, err = Compare(bad, One, DefaultConfidence)
		require.Error(t, err)
		assert.True(t, ErrInvalidValue.Has(err))
	})
}

func TestEquals(t *testing.T) {
	t.Run("structural", func(t *testing.T) {
		assert.True(t, Equals(FromRational(mustRat(t, 4, 2)), Two))
		assert.False(t, Equals(One, Two))
		assert.False(t, Equals(Pi, E))
		assert.False(t, Equals(Pi, FromFloat64(math.Pi)))
	})

	t.Run("fuzz metadata must match", func(t *testing.T) {
		x := NewFuzzy(DoubleValue(1), Scalar, NewFuzz(GaussianAbsolute, 0.1))
		y := NewFuzzy(DoubleValue(1), Scalar, NewFuzz(GaussianAbsolute, 0.2))
		z := NewFuzzy(DoubleValue(1), Scalar, NewFuzz(BoxAbsolute, 0.1))
		assert.True(t, Equals(x, x))
		assert.False(t, Equals(x, y))
		assert.False(t, Equals(x, z))
		assert.False(t, Equals(x, FromInt64(1)))
	})

	t.Run("equals implies compare equal, not conversely", func(t *testing.T) {
		x := NewFuzzy(DoubleValue(1.00), Scalar, NewFuzz(GaussianAbsolute, 0.1))
		y := NewFuzzy(DoubleValue(1.05), Scalar, NewFuzz(GaussianAbsolute, 0.1))

		require.True(t, Equals(x, x))
		c, err := Compare(x, x, DefaultConfidence)
		require.NoError(t, err)
		assert.Equal(t, 0, c)

		c, err = Compare(x, y, DefaultConfidence)
		require.NoError(t, err)
		assert.Equal(t, 0, c)
		assert.False(t, Equals(x, y))
	})

	t.Run("invalid never equals", func(t *testing.T) {
		bad, err := Div(One, Zero)
		require.NoError(t, err)
		assert.False(t, Equals(bad, bad))
		assert.False(t, Equals(bad, Zero))
	})
}

func TestSignumIsZero(t *testing.T) {
	s, err := Signum(Neg(Two), DefaultConfidence)
	require.NoError(t, err)
	assert.Equal(t, -1, s)

	near := NewFuzzy(DoubleValue(0.01), Scalar, NewFuzz(GaussianAbsolute, 0.1))
	z, err := IsZero(near, DefaultConfidence)
	require.NoError(t, err)
	assert.True(t, z)

	z, err = IsZero(Two, DefaultConfidence)
	require.NoError(t, err)
	assert.False(t, z)
}

func TestMusts(t *testing.T) {
	assert.True(t, Equals(MustAdd(One, One), Two))
	assert.True(t, Equals(MustSub(Two, One), One))
	assert.True(t, Equals(MustMul(Two, One), Two))
	assert.True(t, Equals(MustDiv(Two, Two), One))
	assert.Equal(t, 0, MustCompare(One, One, DefaultConfidence))

	assert.Panics(t, func() { MustAdd(Pi, E) })
	assert.Panics(t, func() { MustParse("not a number") })
	assert.Panics(t, func() {
		bad := MustDiv(One, Zero)
		MustCompare(bad, One, DefaultConfidence)
	})
}
