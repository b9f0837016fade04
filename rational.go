package number

import (
	"math/big"
)

// Rational is an exact fraction.
// The numerator carries the sign, the denominator is always positive, and
// the pair is always reduced to lowest terms.
// The zero value is the numeric value 0 (that is, 0/1).
//
// Rational is immutable: every operation returns a new value and never
// mutates its operands, so values are safe to share between goroutines.
type Rational struct {
	num *big.Int // nil means 0
	den *big.Int // nil means 1, never 0 otherwise
}

var (
	intZero = big.NewInt(0)
	intOne  = big.NewInt(1)
	intTen  = big.NewInt(10)
)

// NewRational returns the reduced fraction num/den.
// NewRational returns [ErrDivisionByZero] if den is 0.
func NewRational(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, ErrDivisionByZero.New("rational %s/0", num)
	}
	return reduceRational(new(big.Int).Set(num), new(big.Int).Set(den)), nil
}

// NewRationalFromInt64 returns the reduced fraction num/den.
// NewRationalFromInt64 returns [ErrDivisionByZero] if den is 0.
func NewRationalFromInt64(num, den int64) (Rational, error) {
	return NewRational(big.NewInt(num), big.NewInt(den))
}

// reduceRational normalizes num/den in place and takes ownership of both
// arguments. The caller must pass freshly allocated integers.
func reduceRational(num, den *big.Int) Rational {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return Rational{}
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(intOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
	return Rational{num: num, den: den}
}

// parts returns the numerator and denominator, resolving the zero value.
// The returned integers are shared and must not be mutated.
func (r Rational) parts() (num, den *big.Int) {
	num, den = r.num, r.den
	if num == nil {
		num = intZero
	}
	if den == nil {
		den = intOne
	}
	return num, den
}

// Num returns a copy of the numerator of r.
func (r Rational) Num() *big.Int {
	num, _ := r.parts()
	return new(big.Int).Set(num)
}

// Den returns a copy of the denominator of r.
// The denominator is always positive.
func (r Rational) Den() *big.Int {
	_, den := r.parts()
	return new(big.Int).Set(den)
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r == 0
//	+1 if r > 0
func (r Rational) Sign() int {
	num, _ := r.parts()
	return num.Sign()
}

// IsZero returns true if r == 0.
func (r Rational) IsZero() bool {
	return r.Sign() == 0
}

// IsInt returns true if the denominator of r is 1.
func (r Rational) IsInt() bool {
	_, den := r.parts()
	return den.Cmp(intOne) == 0
}

// Add returns the sum of r and s.
func (r Rational) Add(s Rational) Rational {
	rn, rd := r.parts()
	sn, sd := s.parts()
	num := new(big.Int).Mul(rn, sd)
	num.Add(num, new(big.Int).Mul(sn, rd))
	den := new(big.Int).Mul(rd, sd)
	return reduceRational(num, den)
}

// Sub returns the difference of r and s.
func (r Rational) Sub(s Rational) Rational {
	return r.Add(s.Neg())
}

// Mul returns the product of r and s.
func (r Rational) Mul(s Rational) Rational {
	rn, rd := r.parts()
	sn, sd := s.parts()
	num := new(big.Int).Mul(rn, sn)
	den := new(big.Int).Mul(rd, sd)
	return reduceRational(num, den)
}

// Div returns the quotient of r and s.
// Div returns [ErrDivisionByZero] if s is 0.
func (r Rational) Div(s Rational) (Rational, error) {
	inv, err := s.Inv()
	if err != nil {
		return Rational{}, err
	}
	return r.Mul(inv), nil
}

// Inv returns 1/r.
// Inv returns [ErrDivisionByZero] if r is 0.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Rational{}, ErrDivisionByZero.New("inverse of zero rational")
	}
	num, den := r.parts()
	return reduceRational(new(big.Int).Set(den), new(big.Int).Set(num)), nil
}

// Neg returns r with the opposite sign.
func (r Rational) Neg() Rational {
	num, den := r.parts()
	return Rational{num: new(big.Int).Neg(num), den: new(big.Int).Set(den)}
}

// Abs returns the absolute value of r.
func (r Rational) Abs() Rational {
	if r.Sign() >= 0 {
		return r
	}
	return r.Neg()
}

// PowInt returns r raised to the integer exponent k.
// PowInt returns [ErrDivisionByZero] if r is 0 and k is negative.
func (r Rational) PowInt(k int) (Rational, error) {
	if k < 0 {
		inv, err := r.Inv()
		if err != nil {
			return Rational{}, err
		}
		return inv.PowInt(-k)
	}
	num, den := r.parts()
	e := big.NewInt(int64(k))
	pn := new(big.Int).Exp(num, e, nil)
	pd := new(big.Int).Exp(den, e, nil)
	return reduceRational(pn, pd), nil
}

// Cmp compares r and s numerically and returns:
//
//	-1 if r < s
//	 0 if r == s
//	+1 if r > s
//
// The comparison is exact: it cross-multiplies over the positive
// denominators instead of rounding through floating point.
func (r Rational) Cmp(s Rational) int {
	rn, rd := r.parts()
	sn, sd := s.parts()
	left := new(big.Int).Mul(rn, sd)
	right := new(big.Int).Mul(sn, rd)
	return left.Cmp(right)
}

// Float64 returns the nearest float64 to r.
func (r Rational) Float64() float64 {
	num, den := r.parts()
	f, _ := new(big.Rat).SetFrac(num, den).Float64()
	return f
}

// ExactValue returns r in its most specific exact form: an integer-valued
// rational collapses to an integer.
func (r Rational) ExactValue() ExactValue {
	return RationalValue(r)
}

// String implements the [fmt.Stringer] interface.
// Integers render without a denominator.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rational) String() string {
	num, den := r.parts()
	if r.IsInt() {
		return num.String()
	}
	return num.String() + "/" + den.String()
}
