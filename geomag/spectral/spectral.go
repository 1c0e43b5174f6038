package spectral

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by spectral functions.
var (
	ErrEmptyInput      = errors.New("spectral: input signal is empty")
	ErrInvalidSpacing  = errors.New("spectral: sampling interval must be positive and finite")
	ErrInvalidSize     = errors.New("spectral: transform size must be > 0")
	ErrFilterLength    = errors.New("spectral: filter length does not match bin count")
	ErrMissingBins     = errors.New("spectral: transform holds no bins")
	ErrTruncationRange = errors.New("spectral: original length exceeds bin count")
)

// Transform holds the padded spectrum of a profile together with the
// metadata needed to invert it.
type Transform struct {
	// Bins is the complex spectrum of the zero-padded signal.
	Bins []complex128

	// Wavenumbers holds the angular wavenumber in rad/m for each bin,
	// index-for-index with Bins.
	Wavenumbers []float64

	// N is the signal length before padding; Inverse returns this many
	// samples.
	N int

	// Spacing is the sampling interval in meters.
	Spacing float64
}

// Option configures the forward transform.
type Option func(*config)

type config struct {
	paddingFactor int
}

func defaultConfig() config {
	return config{paddingFactor: 2}
}

// WithPaddingFactor sets the minimum ratio of transform size to signal
// length before rounding up to a power of two. Values below 1 are ignored.
// The default factor 2 is a leakage-suppression heuristic, not a
// requirement; 1 disables the extra padding.
func WithPaddingFactor(factor int) Option {
	return func(c *config) {
		if factor >= 1 {
			c.paddingFactor = factor
		}
	}
}

// Forward zero-pads signal to the smallest power of two not below
// factor*len(signal), computes the forward transform, and builds the
// matching wavenumber array.
func Forward(signal []float64, dx float64, opts ...Option) (*Transform, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	if dx <= 0 || math.IsNaN(dx) || math.IsInf(dx, 0) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSpacing, dx)
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	size := NextPowerOfTwo(cfg.paddingFactor * len(signal))

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectral: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, size)
	for i, v := range signal {
		padded[i] = complex(v, 0)
	}

	bins := make([]complex128, size)

	err = plan.Forward(bins, padded)
	if err != nil {
		return nil, fmt.Errorf("spectral: forward transform failed: %w", err)
	}

	wavenumbers, err := Wavenumbers(size, dx)
	if err != nil {
		return nil, err
	}

	return &Transform{
		Bins:        bins,
		Wavenumbers: wavenumbers,
		N:           len(signal),
		Spacing:     dx,
	}, nil
}

// Filter multiplies Bins elementwise by op in place.
func (t *Transform) Filter(op []complex128) error {
	if len(op) != len(t.Bins) {
		return fmt.Errorf("%w: %d != %d", ErrFilterLength, len(op), len(t.Bins))
	}

	for i := range t.Bins {
		t.Bins[i] *= op[i]
	}

	return nil
}

// Inverse transforms Bins back to the spatial domain and returns the real
// part of the first N samples, discarding the padding tail.
func (t *Transform) Inverse() ([]float64, error) {
	if len(t.Bins) == 0 {
		return nil, ErrMissingBins
	}

	if t.N <= 0 || t.N > len(t.Bins) {
		return nil, fmt.Errorf("%w: n=%d, bins=%d", ErrTruncationRange, t.N, len(t.Bins))
	}

	plan, err := algofft.NewPlan64(len(t.Bins))
	if err != nil {
		return nil, fmt.Errorf("spectral: failed to create FFT plan: %w", err)
	}

	spatial := make([]complex128, len(t.Bins))

	err = plan.Inverse(spatial, t.Bins)
	if err != nil {
		return nil, fmt.Errorf("spectral: inverse transform failed: %w", err)
	}

	out := make([]float64, t.N)
	for i := range out {
		out[i] = real(spatial[i])
	}

	return out, nil
}

// Wavenumbers returns the angular wavenumber in rad/m for each bin of an
// m-point transform at sampling interval dx.
//
// The layout follows the standard discrete-frequency convention: index 0 is
// DC, indices up to m/2-1 carry increasing positive wavenumbers, and the
// upper half wraps to the most negative value. Values cover [-π/dx, π/dx).
func Wavenumbers(m int, dx float64) ([]float64, error) {
	if m <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, m)
	}

	if dx <= 0 || math.IsNaN(dx) || math.IsInf(dx, 0) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSpacing, dx)
	}

	out := make([]float64, m)
	step := 2 * math.Pi / (float64(m) * dx)

	half := (m + 1) / 2
	for i := 0; i < half; i++ {
		out[i] = float64(i) * step
	}

	for i := half; i < m; i++ {
		out[i] = float64(i-m) * step
	}

	return out, nil
}

// NextPowerOfTwo returns the next power of 2 >= n.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
