/*
Package number implements immutable numbers that are exact whenever
possible and carry explicit statistical error bounds when they are not.
Quantities that can be represented without rounding stay exact through
arbitrarily long chains of arithmetic; quantities that cannot are tracked
as a nominal value plus a "fuzz", and every operation propagates that
fuzz instead of silently discarding it.

# Representation

[ExactValue] is a tagged union over five variants, most specific first:

  - a machine integer (int64);
  - an arbitrary-precision integer, used only beyond the int64 range;
  - an exact rational, always reduced, with a positive denominator;
  - a double, used only for inherently inexact quantities;
  - Invalid, the absorbing result of an undefined operation such as 0/0.

A value is always held in the most specific variant that represents the
same quantity: an integer-valued rational collapses to an integer and a
small big integer collapses to a machine integer. This canonicalization
runs after every construction and every arithmetic result, so it is
idempotent and two equal exact quantities always share a variant.
Canonicalization never re-expands a double into a rational.

[Number] pairs an ExactValue with a dimensional [Factor] — Scalar, a
multiple of π, or a multiple of e — and exists in two structural variants.
An [ExactNumber] has no fuzz field at all, so exact computations cannot
silently acquire uncertainty; a [FuzzyNumber] carries a [Fuzz], a
distribution shape (Gaussian or Box, absolute or relative) and a
non-negative magnitude. A fuzz of magnitude zero is normalized away at
construction.

# Arithmetic

Arithmetic between exact operands is exact: integers overflow into big
integers, division produces rationals, and matching factors cancel in
division. As soon as an operand is fuzzy, fuzz propagates under the
independent-error assumption: absolute deviations combine as the root sum
of squares through addition, relative deviations through multiplication,
and transcendental functions apply the first-order derivative at the
nominal value, folding in the truncation error of the underlying
[Series] evaluation.

# Comparison

The package deliberately distinguishes two notions of equality:

  - [Compare] is statistical: two fuzzy numbers whose distributions
    overlap at the given confidence compare as equal even though their
    underlying values differ.
  - [Equals] is structural: values, factors, and fuzz descriptors must
    match exactly.

Equals implies Compare-equality, never the converse.

# Transcendental functions

sin, cos, and tan recognize exact rational multiples of π with rational
images (sin of the exact π/2 is the exact 1); atan maps ±1 to the exact
±π/4; sqrt recognizes perfect squares; exp and log recognize the
e-multiple factor. Every other evaluation runs a convergent series to the
default bound and returns a FuzzyNumber.

# Lazy expressions

[Expr] builds arithmetic as an immutable tree and materializes it on
demand. A rewrite pass cancels algebraic inverses before numeric
evaluation, so the square of a square root materializes exactly even
though the eager pipeline accumulates fuzz.

# Errors

Exact-domain failures — 0/0, division by an exact zero, the square root
of a negative — are absorbed into the Invalid value and propagate through
further arithmetic, keeping chains composable without error checks at
every step. Structural failures — irreconcilable factors, malformed
literals, evaluating an unbounded infinite series — surface immediately
as classed errors. Only the Must* helpers panic.

All types in this package are immutable value types: no operation blocks,
performs I/O, or mutates shared state, so values are safe for concurrent
use without coordination.
*/
package number
