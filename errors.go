package number

import "github.com/zeebo/errs"

// Error classes returned by this package.
//
// Exact-domain failures (0/0, square root of a negative, division by an
// exact zero) do not surface as errors at all: they are absorbed into the
// Invalid value and propagate through further arithmetic, so chains of
// operations remain composable without error checks at every step.
// The classes below cover structural failures, which are surfaced to the
// caller immediately.
var (
	// ErrDivisionByZero is returned when a Rational is constructed or
	// inverted with a zero denominator.
	ErrDivisionByZero = errs.Class("division by zero")

	// ErrIncompatibleFactor is returned when two numbers whose factors
	// cannot be reconciled are combined, such as the sum of a π-multiple
	// and an e-multiple.
	ErrIncompatibleFactor = errs.Class("incompatible factor")

	// ErrInvalidValue is returned when an operation that must produce a
	// definite answer, such as Compare, receives an Invalid operand.
	ErrInvalidValue = errs.Class("invalid value")

	// ErrUnboundedSeries is returned when an infinite series is evaluated
	// with neither an epsilon threshold nor a term limit. This is a
	// precondition violation by the caller, not a runtime condition.
	ErrUnboundedSeries = errs.Class("unbounded series evaluation")

	// ErrInvalidLiteral is returned by Parse for malformed input.
	ErrInvalidLiteral = errs.Class("invalid literal")
)
