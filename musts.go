package number

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return n
}

// MustAdd is like [Add] but panics if the factors cannot be reconciled.
func MustAdd(x, y Number) Number {
	z, err := Add(x, y)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v, %v) failed: %v", x, y, err))
	}
	return z
}

// MustSub is like [Sub] but panics if the factors cannot be reconciled.
func MustSub(x, y Number) Number {
	z, err := Sub(x, y)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v, %v) failed: %v", x, y, err))
	}
	return z
}

// MustMul is like [Mul] but panics if the factors cannot be reconciled.
func MustMul(x, y Number) Number {
	z, err := Mul(x, y)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v, %v) failed: %v", x, y, err))
	}
	return z
}

// MustDiv is like [Div] but panics if the factors cannot be reconciled.
func MustDiv(x, y Number) Number {
	z, err := Div(x, y)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v, %v) failed: %v", x, y, err))
	}
	return z
}

// MustCompare is like [Compare] but panics on an Invalid operand.
func MustCompare(x, y Number, p float64) int {
	c, err := Compare(x, y, p)
	if err != nil {
		panic(fmt.Sprintf("MustCompare(%v, %v, %v) failed: %v", x, y, p, err))
	}
	return c
}
