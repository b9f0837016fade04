package number

import (
	"math"
	"math/big"
	"strings"
)

// Parse converts a string to a Number.
// The input must be in one of the following formats:
//
//	123
//	-1.25
//	5/4
//	3.1415927
//	3.14159*
//	3.14159...
//	1.23456(12)
//	1.23456[12]
//	0.22e-9
//	1.5π
//	2e
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign    ::= '+' | '-'
//	digits  ::= { '0' | '1' | ... | '9' }
//	body    ::= digits | digits '/' digits | digits '.' digits | '.' digits | digits '.'
//	fuzz    ::= '...' | '*' | '(' digits ')' | '[' digits ']'
//	exp     ::= ('e' | 'E') [sign] digits
//	factor  ::= 'pi' | 'Pi' | 'PI' | 'π' | 'e' | 'ε'
//	literal ::= [sign] body [fuzz] [exp] [factor]
//
// The numeric body always parses to an exact rational. Fuzz is attached as
// follows, with one unit meaning the place value of the last fractional
// digit:
//
//   - '(nn)' is an explicit Gaussian standard deviation of nn units;
//     '[nn]' is the Box equivalent, a half-width of nn units.
//   - '*' marks the last digit as rounded: Gaussian, half a unit.
//   - '...' marks the digits as continuing: Box, half a unit.
//   - An unmarked decimal with more than two fractional digits is
//     implicitly fuzzy, as if it carried '(5)' on its last digit — unless
//     it ends with a pair of zeros, which forces exactness.
//
// A trailing 'e' that is not followed by exponent digits is the e-multiple
// factor token, not an exponent.
//
// A zero denominator in a rational body produces the Invalid number, per
// the absorption policy for exact-domain failures; structurally malformed
// input returns [ErrInvalidLiteral].
func Parse(s string) (Number, error) {
	var (
		pos      int
		width    = len(s)
		neg      bool
		coef     digitAcc
		den      digitAcc
		isRat    bool
		scale    int
		hascoef  bool
		fracTail [2]byte
		marker   byte // 0, '.' for '...', '*', '(', '['
		markAcc  digitAcc
		eneg     bool
		exp      int
		factor   Factor
	)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer part
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hascoef = true
		coef.push(s[pos])
		pos++
	}

	// Denominator or fraction
	switch {
	case pos < width && s[pos] == '/':
		if !hascoef {
			return nil, ErrInvalidLiteral.New("%q: no numerator", s)
		}
		isRat = true
		pos++
		hasden := false
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hasden = true
			den.push(s[pos])
			pos++
		}
		if !hasden {
			return nil, ErrInvalidLiteral.New("%q: no denominator", s)
		}
	case pos < width && s[pos] == '.':
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hascoef = true
			coef.push(s[pos])
			fracTail[0], fracTail[1] = fracTail[1], s[pos]
			scale++
			pos++
		}
	}
	if !hascoef {
		return nil, ErrInvalidLiteral.New("%q: no digits", s)
	}

	// Fuzz marker
	switch {
	case strings.HasPrefix(s[pos:], "..."):
		marker = '.'
		pos += 3
	case pos < width && s[pos] == '*':
		marker = '*'
		pos++
	case pos < width && (s[pos] == '(' || s[pos] == '['):
		open := s[pos]
		closing := byte(')')
		if open == '[' {
			closing = ']'
		}
		marker = open
		pos++
		hasmag := false
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hasmag = true
			markAcc.push(s[pos])
			pos++
		}
		if !hasmag || pos == width || s[pos] != closing {
			return nil, ErrInvalidLiteral.New("%q: malformed fuzz marker", s)
		}
		pos++
	}

	// Exponent. A bare 'e' with no digits is the e-multiple factor token
	// and is left for the factor scanner.
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		j := pos + 1
		jneg := false
		if j < width && (s[j] == '-' || s[j] == '+') {
			jneg = s[j] == '-'
			j++
		}
		if j < width && s[j] >= '0' && s[j] <= '9' {
			eneg = jneg
			for j < width && s[j] >= '0' && s[j] <= '9' {
				exp = exp*10 + int(s[j]-'0')
				if exp > 300 {
					return nil, ErrInvalidLiteral.New("%q: exponent out of range", s)
				}
				j++
			}
			pos = j
		}
	}
	if eneg {
		exp = -exp
	}

	// Factor token
	switch rest := s[pos:]; rest {
	case "":
		// skip
	case "pi", "Pi", "PI", "π":
		factor = PiMultiple
		pos = width
	case "e", "ε":
		factor = EMultiple
		pos = width
	}

	if pos != width {
		return nil, ErrInvalidLiteral.New("%q: invalid character %q", s, s[pos])
	}

	// Exact part
	num := coef.value()
	if neg {
		num.Neg(num)
	}
	var d *big.Int
	if isRat {
		d = den.value()
	} else {
		d = pow10Big(scale)
	}
	if exp > 0 {
		num.Mul(num, pow10Big(exp))
	} else if exp < 0 {
		d = new(big.Int).Mul(d, pow10Big(-exp))
	}
	r, err := NewRational(num, d)
	if err != nil {
		// Absorbed, not surfaced: 1/0 is the Invalid number.
		return New(InvalidValue(), factor), nil
	}
	v := RationalValue(r)

	// Fuzz
	unit := math.Pow10(exp - scale)
	var fz Fuzz
	switch marker {
	case '.':
		fz = NewFuzz(BoxAbsolute, 0.5*unit)
	case '*':
		fz = NewFuzz(GaussianAbsolute, 0.5*unit)
	case '(', '[':
		mag, ok := markAcc.int64()
		if !ok {
			return nil, ErrInvalidLiteral.New("%q: fuzz magnitude out of range", s)
		}
		shape := GaussianAbsolute
		if marker == '[' {
			shape = BoxAbsolute
		}
		fz = NewFuzz(shape, float64(mag)*unit)
	default:
		if !isRat && scale > 2 && (fracTail[0] != '0' || fracTail[1] != '0') {
			fz = NewFuzz(GaussianAbsolute, 5*unit)
		}
	}

	if fz.IsZero() {
		return New(v, factor), nil
	}
	return NewFuzzy(v, factor, fz), nil
}

// digitAcc accumulates decimal digits, starting on the int64 fast path and
// promoting to big.Int on overflow.
type digitAcc struct {
	i int64
	b *big.Int
}

func (a *digitAcc) push(c byte) {
	if a.b == nil {
		if z, ok := mulInt64(a.i, 10); ok {
			if z, ok := addInt64(z, int64(c-'0')); ok {
				a.i = z
				return
			}
		}
		a.b = big.NewInt(a.i)
	}
	a.b.Mul(a.b, intTen)
	a.b.Add(a.b, big.NewInt(int64(c-'0')))
}

func (a *digitAcc) value() *big.Int {
	if a.b != nil {
		return new(big.Int).Set(a.b)
	}
	return big.NewInt(a.i)
}

func (a *digitAcc) int64() (int64, bool) {
	if a.b != nil {
		return 0, false
	}
	return a.i, true
}

func pow10Big(k int) *big.Int {
	if k < len(pow10) {
		return big.NewInt(pow10[k])
	}
	return new(big.Int).Exp(intTen, big.NewInt(int64(k)), nil)
}
