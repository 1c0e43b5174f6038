package testutil

import "math"

// Distances returns n uniformly spaced profile coordinates starting at zero.
func Distances(n int, dx float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * dx
	}
	return out
}

// GaussianPulse returns a Gaussian-shaped anomaly of the given peak
// amplitude, centered at sample index center with standard deviation sigma
// in samples.
func GaussianPulse(n, center int, sigma, amplitude float64) []float64 {
	out := make([]float64, n)
	if sigma <= 0 {
		if center >= 0 && center < n {
			out[center] = amplitude
		}
		return out
	}
	for i := range out {
		d := (float64(i) - float64(center)) / sigma
		out[i] = amplitude * math.Exp(-0.5*d*d)
	}
	return out
}

// Ramp returns a linear sequence start + i*step.
func Ramp(n int, start, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// DC returns a constant-valued sequence.
func DC(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}
