package number

import (
	"math"
	"math/big"
	"strconv"
)

// form identifies the active variant of an ExactValue, most specific first.
type form uint8

const (
	formInt form = iota
	formBig
	formRat
	formDouble
	formInvalid
)

// ExactValue is a tagged union over a machine integer, an arbitrary-precision
// integer, an exact rational, a double, and the absorbing Invalid variant.
// A value is always held in the most specific form that represents the same
// quantity: an integer-valued rational collapses to an integer, and a big
// integer within the int64 range collapses to a machine integer. Every
// constructor and every arithmetic result passes through this
// canonicalization, so two equal exact quantities always share a form.
//
// A double is canonical only for quantities that arise from inherently
// inexact computation; canonicalization never re-expands a double into a
// rational after the fact.
//
// The zero value is the numeric value 0.
type ExactValue struct {
	form form
	i    int64
	b    *big.Int
	r    Rational
	d    float64
}

// IntValue returns the exact value i.
func IntValue(i int64) ExactValue {
	return ExactValue{form: formInt, i: i}
}

// BigIntValue returns the exact value b, collapsed to a machine integer
// when b fits in an int64.
func BigIntValue(b *big.Int) ExactValue {
	if b.IsInt64() {
		return IntValue(b.Int64())
	}
	return ExactValue{form: formBig, b: new(big.Int).Set(b)}
}

// bigValue is like [BigIntValue] but takes ownership of b.
func bigValue(b *big.Int) ExactValue {
	if b.IsInt64() {
		return IntValue(b.Int64())
	}
	return ExactValue{form: formBig, b: b}
}

// RationalValue returns the exact value r, collapsed to an integer when the
// denominator of r is 1.
func RationalValue(r Rational) ExactValue {
	if r.IsInt() {
		num, _ := r.parts()
		return bigValue(new(big.Int).Set(num))
	}
	return ExactValue{form: formRat, r: r}
}

// DoubleValue returns the inexact value d.
// NaN and infinities are not representable and yield the Invalid value.
func DoubleValue(d float64) ExactValue {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return InvalidValue()
	}
	return ExactValue{form: formDouble, d: d}
}

// InvalidValue returns the Invalid value, the result of an undefined exact
// operation such as 0/0. Invalid absorbs: any arithmetic involving it is
// Invalid.
func InvalidValue() ExactValue {
	return ExactValue{form: formInvalid}
}

// IsInvalid returns true if v is the Invalid value.
func (v ExactValue) IsInvalid() bool {
	return v.form == formInvalid
}

// IsZero returns true if v == 0.
func (v ExactValue) IsZero() bool {
	switch v.form {
	case formInt:
		return v.i == 0
	case formDouble:
		return v.d == 0
	case formInvalid:
		return false
	}
	// Canonical big and rational forms are never integer zero.
	return false
}

// IsExactForm returns true if v is held in an exact form, that is, any form
// other than double and Invalid.
func (v ExactValue) IsExactForm() bool {
	return v.form == formInt || v.form == formBig || v.form == formRat
}

// Sign returns:
//
//	-1 if v < 0
//	 0 if v == 0 or v is Invalid
//	+1 if v > 0
func (v ExactValue) Sign() int {
	switch v.form {
	case formInt:
		switch {
		case v.i < 0:
			return -1
		case v.i > 0:
			return 1
		}
		return 0
	case formBig:
		return v.b.Sign()
	case formRat:
		return v.r.Sign()
	case formDouble:
		switch {
		case v.d < 0:
			return -1
		case v.d > 0:
			return 1
		}
		return 0
	}
	return 0
}

// Int64 returns v as an int64 if v is held in the machine integer form.
func (v ExactValue) Int64() (int64, bool) {
	if v.form != formInt {
		return 0, false
	}
	return v.i, true
}

// BigInt returns v as a big integer if v is an integer of either width.
func (v ExactValue) BigInt() (*big.Int, bool) {
	switch v.form {
	case formInt:
		return big.NewInt(v.i), true
	case formBig:
		return new(big.Int).Set(v.b), true
	}
	return nil, false
}

// Rat returns v as an exact rational if v is held in an exact form.
func (v ExactValue) Rat() (Rational, bool) {
	switch v.form {
	case formInt:
		return Rational{num: big.NewInt(v.i), den: big.NewInt(1)}, true
	case formBig:
		return Rational{num: new(big.Int).Set(v.b), den: big.NewInt(1)}, true
	case formRat:
		return v.r, true
	}
	return Rational{}, false
}

// Float64 returns the nearest float64 to v.
// The second return value is false only for the Invalid value.
func (v ExactValue) Float64() (float64, bool) {
	switch v.form {
	case formInt:
		return float64(v.i), true
	case formBig:
		f, _ := new(big.Float).SetInt(v.b).Float64()
		return f, true
	case formRat:
		return v.r.Float64(), true
	case formDouble:
		return v.d, true
	}
	return 0, false
}

// float is Float64 for callers that have already excluded Invalid.
func (v ExactValue) float() float64 {
	f, _ := v.Float64()
	return f
}

// rat is Rat for callers that have already excluded double and Invalid.
func (v ExactValue) rat() Rational {
	r, _ := v.Rat()
	return r
}

// Add returns the sum of v and w in the most specific form.
func (v ExactValue) Add(w ExactValue) ExactValue {
	switch {
	case v.form == formInvalid || w.form == formInvalid:
		return InvalidValue()
	case v.form == formDouble || w.form == formDouble:
		return DoubleValue(v.float() + w.float())
	case v.form == formRat || w.form == formRat:
		return RationalValue(v.rat().Add(w.rat()))
	case v.form == formBig || w.form == formBig:
		vb, _ := v.BigInt()
		wb, _ := w.BigInt()
		return bigValue(vb.Add(vb, wb))
	}
	if z, ok := addInt64(v.i, w.i); ok {
		return IntValue(z)
	}
	return bigValue(new(big.Int).Add(big.NewInt(v.i), big.NewInt(w.i)))
}

// Sub returns the difference of v and w in the most specific form.
func (v ExactValue) Sub(w ExactValue) ExactValue {
	return v.Add(w.Neg())
}

// Mul returns the product of v and w in the most specific form.
func (v ExactValue) Mul(w ExactValue) ExactValue {
	switch {
	case v.form == formInvalid || w.form == formInvalid:
		return InvalidValue()
	case v.form == formDouble || w.form == formDouble:
		return DoubleValue(v.float() * w.float())
	case v.form == formRat || w.form == formRat:
		return RationalValue(v.rat().Mul(w.rat()))
	case v.form == formBig || w.form == formBig:
		vb, _ := v.BigInt()
		wb, _ := w.BigInt()
		return bigValue(vb.Mul(vb, wb))
	}
	if z, ok := mulInt64(v.i, w.i); ok {
		return IntValue(z)
	}
	return bigValue(new(big.Int).Mul(big.NewInt(v.i), big.NewInt(w.i)))
}

// Div returns the quotient of v and w in the most specific form.
// Integer quotients stay exact by producing a rational.
// Division by an exact or double zero yields the Invalid value, which covers
// 0/0 as well; the error is absorbed rather than surfaced so arithmetic
// chains remain composable.
func (v ExactValue) Div(w ExactValue) ExactValue {
	switch {
	case v.form == formInvalid || w.form == formInvalid:
		return InvalidValue()
	case w.IsZero():
		return InvalidValue()
	case v.form == formDouble || w.form == formDouble:
		return DoubleValue(v.float() / w.float())
	}
	q, err := v.rat().Div(w.rat())
	if err != nil {
		return InvalidValue()
	}
	return RationalValue(q)
}

// Neg returns v with the opposite sign.
func (v ExactValue) Neg() ExactValue {
	switch v.form {
	case formInt:
		if z, ok := negInt64(v.i); ok {
			return IntValue(z)
		}
		return bigValue(new(big.Int).Neg(big.NewInt(v.i)))
	case formBig:
		return bigValue(new(big.Int).Neg(v.b))
	case formRat:
		return RationalValue(v.r.Neg())
	case formDouble:
		return DoubleValue(-v.d)
	}
	return InvalidValue()
}

// Abs returns the absolute value of v.
func (v ExactValue) Abs() ExactValue {
	if v.Sign() < 0 {
		return v.Neg()
	}
	return v
}

// Cmp compares v and w numerically and returns:
//
//	-1 if v < w
//	 0 if v == w
//	+1 if v > w
//
// The second return value is false if either operand is Invalid, in which
// case no ordering is defined.
// Exact operands compare exactly via cross-multiplication; if either operand
// is a double the comparison happens in float64.
func (v ExactValue) Cmp(w ExactValue) (int, bool) {
	switch {
	case v.form == formInvalid || w.form == formInvalid:
		return 0, false
	case v.form == formDouble || w.form == formDouble:
		vf, wf := v.float(), w.float()
		switch {
		case vf < wf:
			return -1, true
		case vf > wf:
			return 1, true
		}
		return 0, true
	}
	return v.rat().Cmp(w.rat()), true
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v ExactValue) String() string {
	switch v.form {
	case formInt:
		return strconv.FormatInt(v.i, 10)
	case formBig:
		return v.b.String()
	case formRat:
		return v.r.String()
	case formDouble:
		return strconv.FormatFloat(v.d, 'g', -1, 64)
	}
	return "invalid"
}
