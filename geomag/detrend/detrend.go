package detrend

import (
	"errors"
	"fmt"
)

// Errors returned by detrend functions.
var (
	ErrTooShort           = errors.New("detrend: need at least 2 samples")
	ErrLengthMismatch     = errors.New("detrend: abscissa and ordinate must have same length")
	ErrEmptyInput         = errors.New("detrend: input is empty")
	ErrDegenerateAbscissa = errors.New("detrend: abscissa values are all identical")
)

// Fit computes the least-squares line y ≈ slope*x + intercept.
//
// The fit uses the closed-form normal equations for a degree-1 polynomial.
// Sums are accumulated around the abscissa mean to keep the system well
// conditioned for profiles with large coordinate offsets.
func Fit(x, y []float64) (slope, intercept float64, err error) {
	if len(x) != len(y) {
		return 0, 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), len(y))
	}

	if len(x) < 2 {
		return 0, 0, fmt.Errorf("%w: got %d", ErrTooShort, len(x))
	}

	n := float64(len(x))

	meanX := 0.0
	meanY := 0.0

	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}

	meanX /= n
	meanY /= n

	sxx := 0.0
	sxy := 0.0

	for i := range x {
		dx := x[i] - meanX
		sxx += dx * dx
		sxy += dx * (y[i] - meanY)
	}

	if sxx == 0 {
		return 0, 0, ErrDegenerateAbscissa
	}

	slope = sxy / sxx
	intercept = meanY - slope*meanX

	return slope, intercept, nil
}

// Remove fits a linear trend to (x, y) and returns y minus the fitted line.
//
// The inputs are not modified; the residual is returned in a new slice of
// the same length.
func Remove(x, y []float64) ([]float64, error) {
	slope, intercept, err := Fit(x, y)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(y))
	for i := range y {
		out[i] = y[i] - (slope*x[i] + intercept)
	}

	return out, nil
}

// RemoveMean returns y minus its arithmetic mean in a new slice.
//
// This is the degree-0 counterpart of Remove for callers that want the DC
// offset gone without touching any gradient in the data.
func RemoveMean(y []float64) ([]float64, error) {
	if len(y) == 0 {
		return nil, ErrEmptyInput
	}

	sum := 0.0
	for _, v := range y {
		sum += v
	}

	mean := sum / float64(len(y))

	out := make([]float64, len(y))
	for i := range y {
		out[i] = y[i] - mean
	}

	return out, nil
}
