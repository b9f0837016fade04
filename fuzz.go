package number

import "math"

// Shape describes the error distribution a Fuzz assumes, and whether its
// magnitude is absolute or relative to the value it is attached to.
type Shape uint8

const (
	// GaussianAbsolute is a normal distribution; the magnitude is one
	// standard deviation in the units of the value.
	GaussianAbsolute Shape = iota
	// GaussianRelative is a normal distribution; the magnitude is one
	// standard deviation as a fraction of the value.
	GaussianRelative
	// BoxAbsolute is a uniform distribution; the magnitude is the
	// half-width of its support in the units of the value.
	BoxAbsolute
	// BoxRelative is a uniform distribution; the magnitude is the
	// half-width of its support as a fraction of the value.
	BoxRelative
)

const (
	// boxSigma converts a Box half-width to the standard deviation of the
	// uniform distribution it describes: σ = w/√3.
	boxSigma = 0.5773502691896258

	// boxConvolve scales the summed half-widths when two Box fuzzes are
	// convolved; the convolution of two uniforms concentrates towards the
	// center, so the combined support is narrower than the plain sum.
	boxConvolve = 0.7071067811865476

	// fuzzSnapEpsilon is the comparison-only threshold: a standard
	// deviation below this snaps to exact zero during comparison.
	// Stored fuzz magnitudes are never altered.
	fuzzSnapEpsilon = 1e-15

	// halfUlp is the relative rounding error of one float64 operation.
	halfUlp = 1.1102230246251565e-16
)

// Fuzz is a statistical error bound: a distribution shape and a non-negative
// magnitude. A Fuzz is immutable; propagation through arithmetic always
// produces new values.
type Fuzz struct {
	shape Shape
	mag   float64
}

// NewFuzz returns a Fuzz with the given shape and magnitude.
// The magnitude is forced non-negative; a NaN magnitude is treated as 0,
// which is semantically "exact".
func NewFuzz(shape Shape, mag float64) Fuzz {
	if math.IsNaN(mag) {
		mag = 0
	}
	return Fuzz{shape: shape, mag: math.Abs(mag)}
}

// Shape returns the distribution shape of f.
func (f Fuzz) Shape() Shape { return f.shape }

// Magnitude returns the magnitude of f.
func (f Fuzz) Magnitude() float64 { return f.mag }

// IsZero returns true if f has magnitude 0, which is equivalent to "exact".
func (f Fuzz) IsZero() bool { return f.mag == 0 }

func (f Fuzz) isBox() bool {
	return f.shape == BoxAbsolute || f.shape == BoxRelative
}

func (f Fuzz) isRelative() bool {
	return f.shape == GaussianRelative || f.shape == BoxRelative
}

// toAbsolute returns f expressed with an absolute magnitude for a value of
// the given nominal size.
func (f Fuzz) toAbsolute(value float64) Fuzz {
	if !f.isRelative() {
		return f
	}
	shape := GaussianAbsolute
	if f.isBox() {
		shape = BoxAbsolute
	}
	return Fuzz{shape: shape, mag: f.mag * math.Abs(value)}
}

// toRelative returns f expressed with a relative magnitude for a value of
// the given nominal size. A zero value has no meaningful relative error and
// keeps the absolute representation.
func (f Fuzz) toRelative(value float64) Fuzz {
	if f.isRelative() || value == 0 {
		return f
	}
	shape := GaussianRelative
	if f.isBox() {
		shape = BoxRelative
	}
	return Fuzz{shape: shape, mag: f.mag / math.Abs(value)}
}

// sigma returns the Gaussian-equivalent standard deviation of f, assuming
// the magnitude is already absolute.
func (f Fuzz) sigma() float64 {
	if f.isBox() {
		return f.mag * boxSigma
	}
	return f.mag
}

// scaled returns f with its magnitude multiplied by |k|, preserving shape.
func (f Fuzz) scaled(k float64) Fuzz {
	return Fuzz{shape: f.shape, mag: f.mag * math.Abs(k)}
}

// convolve combines two absolute fuzzes under the independent-error
// assumption, as addition and subtraction require. Two Gaussians combine as
// the root sum of squares; two Boxes combine by summing half-widths, scaled
// by the convolution constant; mixed shapes combine through their
// Gaussian-equivalent deviations.
func convolve(f, g Fuzz) Fuzz {
	if f.isBox() && g.isBox() {
		return Fuzz{shape: BoxAbsolute, mag: (f.mag + g.mag) * boxConvolve}
	}
	return Fuzz{shape: GaussianAbsolute, mag: math.Hypot(f.sigma(), g.sigma())}
}

// convolveRelative combines two relative fuzzes as multiplication and
// division require: relative deviations combine as the root sum of squares.
func convolveRelative(f, g Fuzz) Fuzz {
	if f.isBox() && g.isBox() {
		return Fuzz{shape: BoxRelative, mag: (f.mag + g.mag) * boxConvolve}
	}
	return Fuzz{shape: GaussianRelative, mag: math.Hypot(f.sigma(), g.sigma())}
}

// confidenceScale maps a confidence probability p to the multiple of the
// combined standard deviation within which two distributions are declared
// overlapping: z(p) = √2·erfinv(p). The default p of 0.5 maps to ~0.6745σ.
func confidenceScale(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return math.Inf(1)
	}
	return math.Sqrt2 * math.Erfinv(p)
}

// overlap reports whether two distributions centered delta apart, with the
// given absolute fuzzes, overlap at confidence p. Deviations below the snap
// epsilon are treated as exact zero for the test.
func overlap(delta float64, f, g Fuzz, p float64) bool {
	fs, gs := f.sigma(), g.sigma()
	if fs < fuzzSnapEpsilon {
		fs = 0
	}
	if gs < fuzzSnapEpsilon {
		gs = 0
	}
	combined := math.Hypot(fs, gs)
	if combined == 0 {
		return delta == 0
	}
	return math.Abs(delta) <= confidenceScale(p)*combined
}
