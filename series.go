package number

import "math"

// Series is a finite or lazily infinite sequence of float64 terms.
// Terms are produced by pure indexing, so the same series can be evaluated
// repeatedly, and at different bounds, without reconstruction and without
// shared state. Partial sums of a series bound the truncation error of the
// transcendental evaluations built on top of it.
type Series struct {
	term func(n int) float64
	size int // < 0 when infinite
}

// FiniteSeries returns a series over the given terms.
func FiniteSeries(terms ...float64) Series {
	ts := append([]float64(nil), terms...)
	return Series{
		term: func(n int) float64 { return ts[n] },
		size: len(ts),
	}
}

// InfiniteSeries returns a lazy series whose n-th term is term(n).
// The generator must be pure: it is re-evaluated per request and is never
// memoized by the series itself.
func InfiniteSeries(term func(n int) float64) Series {
	return Series{term: term, size: -1}
}

// IsFinite returns true if s has a fixed number of terms.
func (s Series) IsFinite() bool { return s.size >= 0 }

// Len returns the number of terms of a finite series and -1 for an
// infinite one.
func (s Series) Len() int {
	if s.size < 0 {
		return -1
	}
	return s.size
}

// At returns the n-th term.
func (s Series) At(n int) float64 { return s.term(n) }

// Bound is a termination policy for series evaluation: stop once a term
// falls below Epsilon in magnitude, or after MaxTerms terms, whichever
// comes first. A zero Bound carries no policy at all, and evaluating an
// infinite series with it is a precondition violation.
type Bound struct {
	Epsilon  float64
	MaxTerms int
}

// DefaultBound is a conservative policy suitable for evaluating the
// convergent expansions in this package to near float64 precision.
var DefaultBound = Bound{Epsilon: 1e-16, MaxTerms: 200}

func (b Bound) unbounded() bool {
	return b.Epsilon <= 0 && b.MaxTerms <= 0
}

// Sum evaluates the partial sums of s under the bound policy and returns the
// final sum together with an estimate of the truncation error (the magnitude
// of the last consumed term, or 0 when a finite series ran to completion).
//
// Sum returns [ErrUnboundedSeries] if s is infinite and b carries neither an
// epsilon nor a term limit; without one of them termination cannot be
// guaranteed.
func (s Series) Sum(b Bound) (sum, trunc float64, err error) {
	if !s.IsFinite() && b.unbounded() {
		return 0, 0, ErrUnboundedSeries.New("infinite series requires an epsilon or term limit")
	}
	for n := 0; ; n++ {
		if s.IsFinite() && n == s.size {
			return sum, 0, nil
		}
		if b.MaxTerms > 0 && n == b.MaxTerms {
			return sum, trunc, nil
		}
		t := s.term(n)
		sum += t
		trunc = math.Abs(t)
		if b.Epsilon > 0 && trunc < b.Epsilon {
			return sum, trunc, nil
		}
	}
}

// expSeries is the Maclaurin expansion of e^x: term n is x^n/n!.
func expSeries(x float64) Series {
	return InfiniteSeries(func(n int) float64 {
		t := 1.0
		for k := 1; k <= n; k++ {
			t *= x / float64(k)
		}
		return t
	})
}

// sinSeries is the Maclaurin expansion of sin x:
// term n is (-1)^n·x^(2n+1)/(2n+1)!.
func sinSeries(x float64) Series {
	return InfiniteSeries(func(n int) float64 {
		t := x
		for k := 1; k <= n; k++ {
			t *= -x * x / float64(2*k*(2*k+1))
		}
		return t
	})
}

// cosSeries is the Maclaurin expansion of cos x:
// term n is (-1)^n·x^(2n)/(2n)!.
func cosSeries(x float64) Series {
	return InfiniteSeries(func(n int) float64 {
		t := 1.0
		for k := 1; k <= n; k++ {
			t *= -x * x / float64((2*k-1)*2*k)
		}
		return t
	})
}

// atanSeries is the Gregory expansion of atan x for |x| <= 1:
// term n is (-1)^n·x^(2n+1)/(2n+1).
func atanSeries(x float64) Series {
	return InfiniteSeries(func(n int) float64 {
		p := x
		for k := 1; k <= n; k++ {
			p *= -x * x
		}
		return p / float64(2*n+1)
	})
}

// logSeries is the artanh expansion of ln x around 1, with z = (x-1)/(x+1):
// term n is 2·z^(2n+1)/(2n+1). It converges for any positive x, fastest for
// x near 1, so callers range-reduce first.
func logSeries(x float64) Series {
	z := (x - 1) / (x + 1)
	return InfiniteSeries(func(n int) float64 {
		p := z
		for k := 1; k <= n; k++ {
			p *= z * z
		}
		return 2 * p / float64(2*n+1)
	})
}

// sqrtSeries is the sequence of Heron corrections for √x: the n-th partial
// sum equals the n-th Newton iterate, so an epsilon bound on the terms bounds
// the distance between consecutive iterates. Terms are pure in the index; the
// iterate is recomputed from the seed on each request.
func sqrtSeries(x float64) Series {
	iterate := func(n int) float64 {
		v := x
		if v < 1 {
			v = 1
		}
		for i := 0; i < n; i++ {
			v = (v + x/v) / 2
		}
		return v
	}
	return InfiniteSeries(func(n int) float64 {
		if n == 0 {
			return iterate(0)
		}
		return iterate(n) - iterate(n-1)
	})
}
