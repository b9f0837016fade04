package number

import (
	"math"
	"math/big"
)

// Transcendental functions over Numbers.
//
// Every function first looks for an exact answer: trigonometry recognizes
// rational multiples of π with rational images, atan recognizes results
// that are exact multiples of π, sqrt recognizes perfect squares, and
// exp/log recognize the e-multiple factor. Everything else is evaluated
// through the series in series.go; the truncation estimate of the series is
// folded into the propagated fuzz additively, and the input fuzz propagates
// by the first-order derivative of the function at the nominal value.

// inexactResult wraps a series-evaluated scalar in a FuzzyNumber.
// The magnitude never drops below the rounding floor of the value itself,
// so an inexact evaluation always stays fuzzy.
func inexactResult(val, mag float64) Number {
	floor := math.Abs(val) * halfUlp
	if floor == 0 {
		floor = math.SmallestNonzeroFloat64
	}
	if mag < floor {
		mag = floor
	}
	return NewFuzzy(DoubleValue(val), Scalar, NewFuzz(GaussianAbsolute, mag))
}

// sumOf evaluates s under the default bound.
func sumOf(s Series) (sum, trunc float64) {
	sum, trunc, _ = s.Sum(DefaultBound)
	return sum, trunc
}

func ratInt64(num, den int64) Rational {
	r, _ := NewRationalFromInt64(num, den)
	return r
}

// ratMod2 returns r modulo 2, in [0, 2). Trigonometric arguments in units
// of π repeat with period 2.
func ratMod2(r Rational) Rational {
	num, den := r.parts()
	period := new(big.Int).Lsh(den, 1)
	q := new(big.Int).Div(num, period)
	rem := new(big.Int).Sub(num, new(big.Int).Mul(q, period))
	return reduceRational(rem, new(big.Int).Set(den))
}

// trigEntry maps an argument of arg·π, arg in [0, 2), to a rational image.
type trigEntry struct {
	argNum, argDen int64
	outNum, outDen int64
	undefined      bool
}

var sinExactTable = []trigEntry{
	{0, 1, 0, 1, false},
	{1, 1, 0, 1, false},
	{1, 2, 1, 1, false},
	{3, 2, -1, 1, false},
	{1, 6, 1, 2, false},
	{5, 6, 1, 2, false},
	{7, 6, -1, 2, false},
	{11, 6, -1, 2, false},
}

var cosExactTable = []trigEntry{
	{0, 1, 1, 1, false},
	{1, 1, -1, 1, false},
	{1, 2, 0, 1, false},
	{3, 2, 0, 1, false},
	{1, 3, 1, 2, false},
	{5, 3, 1, 2, false},
	{2, 3, -1, 2, false},
	{4, 3, -1, 2, false},
}

var tanExactTable = []trigEntry{
	{0, 1, 0, 1, false},
	{1, 1, 0, 1, false},
	{1, 4, 1, 1, false},
	{5, 4, 1, 1, false},
	{3, 4, -1, 1, false},
	{7, 4, -1, 1, false},
	{1, 2, 0, 1, true},
	{3, 2, 0, 1, true},
}

// lookupTrig matches r, already reduced modulo 2, against a table.
func lookupTrig(table []trigEntry, r Rational) (out ExactValue, hit bool) {
	for _, e := range table {
		if r.Cmp(ratInt64(e.argNum, e.argDen)) == 0 {
			if e.undefined {
				return InvalidValue(), true
			}
			return RationalValue(ratInt64(e.outNum, e.outDen)), true
		}
	}
	return ExactValue{}, false
}

// exactPiArg returns the exact rational π-coefficient of x, reduced modulo
// 2, when x is an exact π-multiple.
func exactPiArg(x Number) (Rational, bool) {
	if x.Factor() != PiMultiple || !x.IsExact() {
		return Rational{}, false
	}
	r, ok := x.Value().Rat()
	if !ok {
		return Rational{}, false
	}
	return ratMod2(r), true
}

// Sin returns the sine of x.
// An exact π-multiple whose sine is rational (multiples of π/6 on the
// rational-image subset) produces an ExactNumber; every other operand is
// evaluated by series on the Scalar basis and produces a FuzzyNumber.
func Sin(x Number) Number {
	if x.Value().IsInvalid() {
		return invalidNumber()
	}
	if x.IsExact() && x.Value().IsZero() {
		return Zero
	}
	if arg, ok := exactPiArg(x); ok {
		if out, hit := lookupTrig(sinExactTable, arg); hit {
			return New(out, Scalar)
		}
	}
	return sinInexact(scaleToScalar(x))
}

// Cos returns the cosine of x, with the same exactness rules as [Sin].
func Cos(x Number) Number {
	if x.Value().IsInvalid() {
		return invalidNumber()
	}
	if x.IsExact() && x.Value().IsZero() {
		return One
	}
	if arg, ok := exactPiArg(x); ok {
		if out, hit := lookupTrig(cosExactTable, arg); hit {
			return New(out, Scalar)
		}
	}
	return cosInexact(scaleToScalar(x))
}

// Tan returns the tangent of x. Odd multiples of π/2 have no tangent and
// yield the Invalid number.
func Tan(x Number) Number {
	if x.Value().IsInvalid() {
		return invalidNumber()
	}
	if x.IsExact() && x.Value().IsZero() {
		return Zero
	}
	if arg, ok := exactPiArg(x); ok {
		if out, hit := lookupTrig(tanExactTable, arg); hit {
			return New(out, Scalar)
		}
	}
	return tanInexact(scaleToScalar(x))
}

// reduceCircle folds f into [-π, π].
func reduceCircle(f float64) float64 {
	y := math.Mod(f, 2*math.Pi)
	switch {
	case y > math.Pi:
		y -= 2 * math.Pi
	case y < -math.Pi:
		y += 2 * math.Pi
	}
	return y
}

func sinInexact(x Number) Number {
	f, _ := x.Value().Float64()
	sum, trunc := sumOf(sinSeries(reduceCircle(f)))
	mag := trunc
	if fz, ok := absoluteFuzzOf(x); ok {
		mag += math.Abs(math.Cos(f)) * fz.Magnitude()
	}
	return inexactResult(sum, mag)
}

func cosInexact(x Number) Number {
	f, _ := x.Value().Float64()
	sum, trunc := sumOf(cosSeries(reduceCircle(f)))
	mag := trunc
	if fz, ok := absoluteFuzzOf(x); ok {
		mag += math.Abs(math.Sin(f)) * fz.Magnitude()
	}
	return inexactResult(sum, mag)
}

func tanInexact(x Number) Number {
	f, _ := x.Value().Float64()
	y := reduceCircle(f)
	s, strunc := sumOf(sinSeries(y))
	c, ctrunc := sumOf(cosSeries(y))
	if c == 0 {
		return invalidNumber()
	}
	t := s / c
	mag := (strunc + ctrunc) * (1 + math.Abs(t)) / math.Abs(c)
	if fz, ok := absoluteFuzzOf(x); ok {
		mag += (1 + t*t) * fz.Magnitude()
	}
	return inexactResult(t, mag)
}

// Atan returns the arc tangent of x.
// The exact arguments 0 and ±1 map to the exact results 0 and ±π/4, the
// latter as π-multiples; everything else is evaluated by series and
// produces a fuzzy Scalar.
func Atan(x Number) Number {
	if x.Value().IsInvalid() {
		return invalidNumber()
	}
	if x.Factor() != Scalar {
		x = scaleToScalar(x)
	}
	if r, ok := x.Value().Rat(); ok && x.IsExact() {
		switch {
		case r.IsZero():
			return Zero
		case r.Cmp(ratInt64(1, 1)) == 0:
			return New(RationalValue(ratInt64(1, 4)), PiMultiple)
		case r.Cmp(ratInt64(-1, 1)) == 0:
			return New(RationalValue(ratInt64(-1, 4)), PiMultiple)
		}
	}
	f, _ := x.Value().Float64()
	sum, trunc := atanApprox(f)
	mag := trunc
	if fz, ok := absoluteFuzzOf(x); ok {
		mag += fz.Magnitude() / (1 + f*f)
	}
	return inexactResult(sum, mag)
}

// atanApprox evaluates atan by the Gregory series after range reduction:
// arguments above 1/2 shift by π/4 via atan(x) = π/4 + atan((x-1)/(x+1)),
// arguments above 2 invert via atan(x) = π/2 - atan(1/x).
func atanApprox(f float64) (sum, trunc float64) {
	if f < 0 {
		sum, trunc = atanApprox(-f)
		return -sum, trunc
	}
	switch {
	case f <= 0.5:
		return sumOf(atanSeries(f))
	case f <= 2:
		s, t := sumOf(atanSeries((f - 1) / (f + 1)))
		return math.Pi/4 + s, t + math.Pi*halfUlp
	}
	s, t := sumOf(atanSeries(1 / f))
	return math.Pi/2 - s, t + math.Pi*halfUlp
}

// Exp returns e raised to x.
// exp(0) is exactly 1 and exp of the exact scalar 1 is exactly e, carried
// as an e-multiple; otherwise the Maclaurin series is evaluated after
// range reduction by powers of two.
func Exp(x Number) Number {
	if x.Value().IsInvalid() {
		return invalidNumber()
	}
	if x.IsExact() && x.Value().IsZero() {
		return One
	}
	if x.Factor() != Scalar {
		x = scaleToScalar(x)
	}
	if i, ok := x.Value().Int64(); ok && i == 1 && x.IsExact() {
		return E
	}
	f, _ := x.Value().Float64()
	k := math.Round(f / math.Ln2)
	sum, trunc := sumOf(expSeries(f - k*math.Ln2))
	val := math.Ldexp(sum, int(k))
	mag := math.Ldexp(trunc, int(k))
	if fz, ok := absoluteFuzzOf(x); ok {
		mag += math.Abs(val) * fz.Magnitude()
	}
	if math.IsInf(val, 0) {
		return invalidNumber()
	}
	return inexactResult(val, mag)
}

// Log returns the natural logarithm of x.
// log(1) is exactly 0 and log of the exact e-multiple 1·e is exactly 1;
// non-positive operands have no real logarithm and yield the Invalid
// number. Everything else is evaluated by the artanh series after binary
// range reduction.
func Log(x Number) Number {
	if x.Value().IsInvalid() {
		return invalidNumber()
	}
	if x.Factor() == EMultiple && x.IsExact() {
		if i, ok := x.Value().Int64(); ok && i == 1 {
			return One
		}
	}
	if x.Factor() != Scalar {
		x = scaleToScalar(x)
	}
	if x.Value().Sign() <= 0 {
		return invalidNumber()
	}
	if r, ok := x.Value().Rat(); ok && x.IsExact() && r.Cmp(ratInt64(1, 1)) == 0 {
		return Zero
	}
	f, _ := x.Value().Float64()
	m, exp2 := math.Frexp(f)
	sum, trunc := sumOf(logSeries(m))
	val := float64(exp2)*math.Ln2 + sum
	mag := trunc + math.Abs(float64(exp2))*math.Ln2*halfUlp
	if fz, ok := absoluteFuzzOf(x); ok {
		mag += fz.Magnitude() / f
	}
	return inexactResult(val, mag)
}

// ratSqrt returns the exact square root of r when both the numerator and
// the denominator are perfect squares.
func ratSqrt(r Rational) (Rational, bool) {
	num, den := r.parts()
	if num.Sign() < 0 {
		return Rational{}, false
	}
	sn := new(big.Int).Sqrt(num)
	if new(big.Int).Mul(sn, sn).Cmp(num) != 0 {
		return Rational{}, false
	}
	sd := new(big.Int).Sqrt(den)
	if new(big.Int).Mul(sd, sd).Cmp(den) != 0 {
		return Rational{}, false
	}
	return Rational{num: sn, den: sd}, true
}

// Sqrt returns the square root of x.
// An exact rational whose numerator and denominator are perfect squares
// produces an ExactNumber; a negative operand has no real square root and
// yields the Invalid number; everything else is evaluated by the Heron
// sequence and produces a FuzzyNumber whose fuzz includes the truncation
// of the final iterate.
func Sqrt(x Number) Number {
	if x.Value().IsInvalid() {
		return invalidNumber()
	}
	if x.Factor() != Scalar {
		x = scaleToScalar(x)
	}
	if x.Value().Sign() < 0 {
		return invalidNumber()
	}
	if x.IsExact() {
		if x.Value().IsZero() {
			return Zero
		}
		if r, ok := x.Value().Rat(); ok {
			if s, exact := ratSqrt(r); exact {
				return New(RationalValue(s), Scalar)
			}
		}
	}
	f, _ := x.Value().Float64()
	sum, trunc := sumOf(sqrtSeries(f))
	mag := trunc
	if fz, ok := absoluteFuzzOf(x); ok && sum > 0 {
		mag += fz.Magnitude() / (2 * sum)
	}
	return inexactResult(sum, mag)
}

// PowInt returns x raised to the integer exponent k.
// Exact scalar rationals are raised exactly; 0 to a negative power is
// undefined and yields the Invalid number. Fuzzy operands propagate
// relative fuzz scaled by |k|, and non-Scalar factors move to the Scalar
// basis first, since (a·π)^k is not itself a π-multiple.
func PowInt(x Number, k int) Number {
	if x.Value().IsInvalid() {
		return invalidNumber()
	}
	if k == 0 {
		return One
	}
	if k == 1 {
		return x
	}
	if x.IsExact() && x.Factor() == Scalar {
		if r, ok := x.Value().Rat(); ok {
			p, err := r.PowInt(k)
			if err != nil {
				return invalidNumber()
			}
			return New(RationalValue(p), Scalar)
		}
		f, _ := x.Value().Float64()
		return New(DoubleValue(math.Pow(f, float64(k))), Scalar)
	}
	if x.Factor() != Scalar {
		x = scaleToScalar(x)
	}
	f, _ := x.Value().Float64()
	val := math.Pow(f, float64(k))
	if math.IsInf(val, 0) || math.IsNaN(val) {
		return invalidNumber()
	}
	var mag float64
	if fz, ok := absoluteFuzzOf(x); ok {
		mag = math.Abs(float64(k)) * math.Pow(math.Abs(f), float64(k-1)) * fz.Magnitude()
	}
	return inexactResult(val, mag)
}
