package number

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// String implements the [fmt.Stringer] interface.
// Exact rationals with a power-of-ten-compatible denominator render as
// plain decimals, so rendering round-trips with [Parse] for exact numbers:
// the literal "1.25" parses to the rational 5/4, which renders back as
// "1.25". Other rationals render as "n/d", and a non-Scalar factor appends
// its token.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n ExactNumber) String() string {
	return renderExact(n.value) + n.factor.suffix()
}

// String implements the [fmt.Stringer] interface.
// The nominal value renders as a decimal cut at the resolution of the fuzz,
// followed by the fuzz digits in the units of the last rendered place:
// "(nn)" for Gaussian fuzz, "[nn]" for Box fuzz.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n FuzzyNumber) String() string {
	f, _ := n.value.Float64()
	fz := n.fuzz.toAbsolute(f)

	// Express the magnitude as one or two digits in the place of the last
	// rendered fractional digit.
	mag := fz.Magnitude()
	scale := 0
	for mag < 1 {
		mag *= 10
		scale++
	}
	for mag >= 100 {
		mag /= 10
		scale--
	}
	digits := int(math.Round(mag))
	if digits >= 100 {
		digits /= 10
		scale--
	}
	if scale < 0 {
		scale = 0
	}

	var sb strings.Builder
	sb.WriteString(strconv.FormatFloat(f, 'f', scale, 64))
	if fz.isBox() {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(digits))
		sb.WriteByte(']')
	} else {
		sb.WriteByte('(')
		sb.WriteString(strconv.Itoa(digits))
		sb.WriteByte(')')
	}
	sb.WriteString(n.factor.suffix())
	return sb.String()
}

// renderExact renders an exact value, preferring decimal notation for
// rationals whose denominator divides a power of ten.
func renderExact(v ExactValue) string {
	r, ok := v.Rat()
	if !ok || r.IsInt() {
		return v.String()
	}
	digits, scale, ok := decimalDigits(r)
	if !ok {
		return r.String()
	}
	return composeDecimal(digits, scale, r.Sign() < 0)
}

// maxDecimalScale bounds the decimal expansion of a rational before the
// renderer falls back to "n/d" notation.
const maxDecimalScale = 60

// decimalDigits returns the unsigned digits of r scaled to an integer,
// together with the number of fractional places, when the denominator of r
// is of the form 2^a·5^b with max(a, b) within the renderable range.
func decimalDigits(r Rational) (*big.Int, int, bool) {
	num, den := r.parts()
	rest := new(big.Int).Set(den)
	two := big.NewInt(2)
	five := big.NewInt(5)
	rem := new(big.Int)
	a, b := 0, 0
	for {
		q, m := new(big.Int).QuoRem(rest, two, rem)
		if m.Sign() != 0 {
			break
		}
		rest, a = q, a+1
	}
	for {
		q, m := new(big.Int).QuoRem(rest, five, rem)
		if m.Sign() != 0 {
			break
		}
		rest, b = q, b+1
	}
	if rest.Cmp(intOne) != 0 {
		return nil, 0, false
	}
	scale := a
	if b > a {
		scale = b
	}
	if scale > maxDecimalScale {
		return nil, 0, false
	}
	// digits = |num| * 10^scale / den = |num| * 2^(scale-a) * 5^(scale-b)
	digits := new(big.Int).Abs(num)
	digits.Mul(digits, new(big.Int).Exp(two, big.NewInt(int64(scale-a)), nil))
	digits.Mul(digits, new(big.Int).Exp(five, big.NewInt(int64(scale-b)), nil))
	return digits, scale, true
}

// composeDecimal writes digits with a decimal point scale places from the
// right, zero-padding so there is always a digit on both sides of the point.
func composeDecimal(digits *big.Int, scale int, neg bool) string {
	s := digits.String()
	if len(s) < scale+1 {
		s = strings.Repeat("0", scale+1-len(s)) + s
	}
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString(s[:len(s)-scale])
	if scale > 0 {
		sb.WriteByte('.')
		sb.WriteString(s[len(s)-scale:])
	}
	return sb.String()
}
