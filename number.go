package number

import "math"

// DefaultConfidence is the confidence probability used for comparisons when
// the caller has no preference: two fuzzy values are declared equal when
// they lie within ~0.6745 combined standard deviations of each other.
const DefaultConfidence = 0.5

// Number is an immutable numeric quantity: an exact value, a dimensional
// factor, and, for [FuzzyNumber] only, a statistical error bound.
//
// The split between [ExactNumber] and [FuzzyNumber] is structural rather
// than a runtime flag: an ExactNumber has no fuzz field at all, so an exact
// computation cannot silently acquire uncertainty. Operations that introduce
// uncertainty return a FuzzyNumber; operations that stay in the exact domain
// return an ExactNumber.
//
// All values are immutable and safe for concurrent use.
type Number interface {
	// Value returns the underlying exact value, before the factor is
	// applied.
	Value() ExactValue
	// Factor returns the dimensional factor of the number.
	Factor() Factor
	// IsExact returns true for an ExactNumber.
	IsExact() bool
	String() string

	sealedNumber()
}

// ExactNumber is a Number without uncertainty.
type ExactNumber struct {
	value  ExactValue
	factor Factor
}

// FuzzyNumber is a Number carrying a statistical error bound.
// Its fuzz magnitude is always positive: a zero-magnitude bound collapses
// to an ExactNumber at construction.
type FuzzyNumber struct {
	value  ExactValue
	factor Factor
	fuzz   Fuzz
}

// New returns the exact number v·factor.
func New(v ExactValue, factor Factor) ExactNumber {
	return ExactNumber{value: v, factor: factor}
}

// NewFuzzy returns the number v·factor with the given error bound.
// A zero-magnitude bound is normalized away, producing an ExactNumber.
func NewFuzzy(v ExactValue, factor Factor, fuzz Fuzz) Number {
	if fuzz.IsZero() || v.IsInvalid() {
		return New(v, factor)
	}
	return FuzzyNumber{value: v, factor: factor, fuzz: fuzz}
}

// FromInt64 returns the exact scalar i.
func FromInt64(i int64) ExactNumber {
	return New(IntValue(i), Scalar)
}

// FromRational returns the exact scalar r.
func FromRational(r Rational) ExactNumber {
	return New(RationalValue(r), Scalar)
}

// FromFloat64 returns the scalar d as an exact double.
func FromFloat64(d float64) ExactNumber {
	return New(DoubleValue(d), Scalar)
}

// Frequently used constants.
var (
	Zero = FromInt64(0)
	One  = FromInt64(1)
	Two  = FromInt64(2)
	Pi   = New(IntValue(1), PiMultiple)
	E    = New(IntValue(1), EMultiple)
)

func (n ExactNumber) Value() ExactValue { return n.value }
func (n ExactNumber) Factor() Factor    { return n.factor }
func (n ExactNumber) IsExact() bool     { return true }
func (n ExactNumber) sealedNumber()     {}

func (n FuzzyNumber) Value() ExactValue { return n.value }
func (n FuzzyNumber) Factor() Factor    { return n.factor }
func (n FuzzyNumber) IsExact() bool     { return false }
func (n FuzzyNumber) sealedNumber()     {}

// Fuzz returns the error bound of n.
func (n FuzzyNumber) Fuzz() Fuzz { return n.fuzz }

// fuzzOf returns the error bound of n, reporting whether one is present.
func fuzzOf(n Number) (Fuzz, bool) {
	if f, ok := n.(FuzzyNumber); ok {
		return f.fuzz, true
	}
	return Fuzz{}, false
}

// absoluteFuzzOf is fuzzOf with the bound expressed in absolute units of
// the underlying value.
func absoluteFuzzOf(n Number) (Fuzz, bool) {
	f, ok := fuzzOf(n)
	if !ok {
		return Fuzz{}, false
	}
	nominal, _ := n.Value().Float64()
	return f.toAbsolute(nominal), true
}

// invalidNumber is the absorbing result of an undefined operation.
func invalidNumber() ExactNumber {
	return New(InvalidValue(), Scalar)
}

// scaleToScalar converts n to a Scalar-factor number of the same magnitude.
// The conversion happens in float64 and is therefore inexact for π- and
// e-multiples: the result carries the rounding of the multiplication plus
// any fuzz n already had, mapped through the factor. An exact zero stays an
// exact zero, whatever its factor.
func scaleToScalar(n Number) Number {
	if n.Factor() == Scalar {
		return n
	}
	if n.Value().IsInvalid() {
		return invalidNumber()
	}
	if n.Value().IsZero() {
		if fz, ok := absoluteFuzzOf(n); ok {
			return NewFuzzy(IntValue(0), Scalar, fz.scaled(n.Factor().multiplier()))
		}
		return Zero
	}
	mult := n.Factor().multiplier()
	nominal, _ := n.Value().Float64()
	scaled := nominal * mult
	conv := NewFuzz(GaussianAbsolute, math.Abs(scaled)*halfUlp)
	if fz, ok := absoluteFuzzOf(n); ok {
		conv = convolve(fz.scaled(mult), conv)
	}
	return NewFuzzy(DoubleValue(scaled), Scalar, conv)
}

// reconcileAdditive brings x and y to a common factor for addition and
// subtraction. Matching factors are kept as is; a Scalar operand forces the
// other onto the Scalar basis, inexactly. A π-multiple and an e-multiple
// have no defined additive reconciliation and fail with
// [ErrIncompatibleFactor].
func reconcileAdditive(x, y Number) (Number, Number, error) {
	switch {
	case x.Factor() == y.Factor():
		return x, y, nil
	case x.Factor() == Scalar:
		return x, scaleToScalar(y), nil
	case y.Factor() == Scalar:
		return scaleToScalar(x), y, nil
	}
	return nil, nil, ErrIncompatibleFactor.New("cannot reconcile %v and %v for addition", x.Factor(), y.Factor())
}

// Add returns the sum of x and y.
// Exact operands with a common factor produce an exact sum; otherwise the
// operand fuzzes convolve under the independent-error assumption, an exact
// operand contributing zero fuzz.
func Add(x, y Number) (Number, error) {
	x, y, err := reconcileAdditive(x, y)
	if err != nil {
		return nil, err
	}
	v := x.Value().Add(y.Value())
	fx, okx := absoluteFuzzOf(x)
	fy, oky := absoluteFuzzOf(y)
	switch {
	case !okx && !oky:
		return New(v, x.Factor()), nil
	case okx && oky:
		return NewFuzzy(v, x.Factor(), convolve(fx, fy)), nil
	case okx:
		return NewFuzzy(v, x.Factor(), fx), nil
	}
	return NewFuzzy(v, x.Factor(), fy), nil
}

// Sub returns the difference of x and y.
// Subtraction propagates fuzz exactly like addition: error magnitudes do
// not cancel.
func Sub(x, y Number) (Number, error) {
	return Add(x, Neg(y))
}

// Neg returns x with the opposite sign. The fuzz of x is unaffected.
func Neg(x Number) Number {
	if f, ok := fuzzOf(x); ok {
		return NewFuzzy(x.Value().Neg(), x.Factor(), f)
	}
	return New(x.Value().Neg(), x.Factor())
}

// Abs returns the absolute value of x. The fuzz of x is unaffected.
func Abs(x Number) Number {
	if x.Value().Sign() >= 0 {
		return x
	}
	return Neg(x)
}

// mulFactor resolves the factor bookkeeping for multiplication: a Scalar
// operand keeps the other factor intact and exact; two non-Scalar factors
// have no product factor, so both operands move to the Scalar basis first.
func mulFactor(x, y Number) (Number, Number, Factor) {
	switch {
	case x.Factor() == Scalar && y.Factor() == Scalar:
		return x, y, Scalar
	case x.Factor() == Scalar:
		return x, y, y.Factor()
	case y.Factor() == Scalar:
		return x, y, x.Factor()
	}
	return scaleToScalar(x), scaleToScalar(y), Scalar
}

// Mul returns the product of x and y.
// Relative fuzz survives multiplication unchanged for a single fuzzy
// operand and combines as the root sum of squares when both are fuzzy.
func Mul(x, y Number) (Number, error) {
	x, y, factor := mulFactor(x, y)
	v := x.Value().Mul(y.Value())
	f, fuzzy := mulFuzz(x, y)
	if !fuzzy {
		return New(v, factor), nil
	}
	return NewFuzzy(v, factor, f), nil
}

// mulFuzz computes the relative error bound of a product or quotient of
// x and y. Absolute bounds convert to relative against their own operand
// before combining and the result is expressed relative to the result.
func mulFuzz(x, y Number) (Fuzz, bool) {
	xn, _ := x.Value().Float64()
	yn, _ := y.Value().Float64()
	fx, okx := fuzzOf(x)
	fy, oky := fuzzOf(y)
	switch {
	case !okx && !oky:
		return Fuzz{}, false
	case okx && oky:
		return convolveRelative(fx.toRelative(xn), fy.toRelative(yn)), true
	case okx:
		return fx.toRelative(xn), true
	}
	return fy.toRelative(yn), true
}

// Div returns the quotient of x and y.
// Matching non-Scalar factors cancel exactly to Scalar. Division by an
// exact zero yields the Invalid number rather than an error.
func Div(x, y Number) (Number, error) {
	var factor Factor
	switch {
	case x.Factor() == y.Factor():
		// Matching factors cancel, exactly.
		factor = Scalar
	case y.Factor() == Scalar:
		factor = x.Factor()
	case x.Factor() == Scalar:
		y = scaleToScalar(y)
		factor = Scalar
	default:
		x, y = scaleToScalar(x), scaleToScalar(y)
		factor = Scalar
	}
	v := x.Value().Div(y.Value())
	if v.IsInvalid() {
		return invalidNumber(), nil
	}
	f, fuzzy := mulFuzz(x, y)
	if !fuzzy {
		return New(v, factor), nil
	}
	return NewFuzzy(v, factor, f), nil
}

// effectiveSigma returns the comparison-facing standard deviation of n in
// units of its underlying value: the Gaussian-equivalent deviation, snapped
// to zero below the comparison epsilon.
func effectiveSigma(n Number) float64 {
	f, ok := absoluteFuzzOf(n)
	if !ok {
		return 0
	}
	s := f.sigma()
	if s < fuzzSnapEpsilon {
		return 0
	}
	return s
}

// Compare compares x and y numerically at confidence p and returns:
//
//	-1 if x < y
//	 0 if x == y, or their error distributions overlap at confidence p
//	+1 if x > y
//
// Operands with different factors are first scaled to their Scalar
// magnitudes; the scaling is defined for every factor this package knows,
// so with the current factor set that path cannot fail. Two exact operands
// compare exactly. Fuzzy operands whose distributions overlap at confidence
// p compare as equal even though the underlying values differ; this is
// deliberately weaker than [Equals].
//
// Compare returns [ErrInvalidValue] if either operand is Invalid.
func Compare(x, y Number, p float64) (int, error) {
	if x.Value().IsInvalid() || y.Value().IsInvalid() {
		return 0, ErrInvalidValue.New("cannot compare invalid values")
	}

	if x.Factor() == y.Factor() {
		c, _ := x.Value().Cmp(y.Value())
		if c == 0 {
			return 0, nil
		}
		sx, sy := effectiveSigma(x), effectiveSigma(y)
		if sx == 0 && sy == 0 {
			return c, nil
		}
		xf, _ := x.Value().Float64()
		yf, _ := y.Value().Float64()
		if overlap(xf-yf, NewFuzz(GaussianAbsolute, sx), NewFuzz(GaussianAbsolute, sy), p) {
			return 0, nil
		}
		return c, nil
	}

	// Cross-factor comparison happens on the Scalar magnitudes.
	xm, ym := x.Factor().multiplier(), y.Factor().multiplier()
	xf, _ := x.Value().Float64()
	yf, _ := y.Value().Float64()
	xf, yf = xf*xm, yf*ym
	sx, sy := effectiveSigma(x)*xm, effectiveSigma(y)*ym
	if sx != 0 || sy != 0 {
		if overlap(xf-yf, NewFuzz(GaussianAbsolute, sx), NewFuzz(GaussianAbsolute, sy), p) {
			return 0, nil
		}
	}
	switch {
	case xf < yf:
		return -1, nil
	case xf > yf:
		return 1, nil
	}
	return 0, nil
}

// Equals reports strict structural equality: the exact values must be
// equal, the factors identical, and the fuzz descriptors identical as
// metadata. Two fuzzy numbers whose distributions merely overlap are not
// Equals-equal even though Compare declares them equal; the asymmetry is
// deliberate. Invalid never equals anything, including itself.
func Equals(x, y Number) bool {
	if x.Value().IsInvalid() || y.Value().IsInvalid() {
		return false
	}
	if x.Factor() != y.Factor() {
		return false
	}
	if c, ok := x.Value().Cmp(y.Value()); !ok || c != 0 {
		return false
	}
	fx, okx := fuzzOf(x)
	fy, oky := fuzzOf(y)
	if okx != oky {
		return false
	}
	return fx == fy
}

// Signum returns the sign of x at confidence p: a fuzzy value whose
// distribution overlaps zero reports 0.
// Signum returns [ErrInvalidValue] if x is Invalid.
func Signum(x Number, p float64) (int, error) {
	return Compare(x, Zero, p)
}

// IsZero reports whether x is zero at confidence p.
// IsZero returns [ErrInvalidValue] if x is Invalid.
func IsZero(x Number, p float64) (bool, error) {
	s, err := Signum(x, p)
	if err != nil {
		return false, err
	}
	return s == 0, nil
}
