package number

import "math"

// Factor is the dimensional interpretation of a Number's underlying value.
// A Scalar value maps to itself, a PiMultiple value v maps to v·π, and an
// EMultiple value v maps to v·e. Carrying the factor separately keeps
// quantities such as π/2 exact.
type Factor uint8

const (
	Scalar Factor = iota
	PiMultiple
	EMultiple
)

// multiplier returns the real magnitude of one unit of f.
func (f Factor) multiplier() float64 {
	switch f {
	case PiMultiple:
		return math.Pi
	case EMultiple:
		return math.E
	}
	return 1
}

// suffix returns the token the renderer appends for f.
func (f Factor) suffix() string {
	switch f {
	case PiMultiple:
		return "π"
	case EMultiple:
		return "ε"
	}
	return ""
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (f Factor) String() string {
	switch f {
	case PiMultiple:
		return "π"
	case EMultiple:
		return "ε"
	case Scalar:
		return "scalar"
	}
	return "factor(" + string('0'+byte(f)) + ")"
}
