package rtp

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-geomag/geomag/detrend"
	"github.com/cwbudde/algo-geomag/geomag/spectral"
	"github.com/cwbudde/algo-geomag/geomag/taper"
)

// Option configures the reduction pipeline.
type Option func(*config)

type config struct {
	taperAlpha    float64
	paddingFactor int
}

func defaultConfig() config {
	return config{
		taperAlpha:    taper.DefaultAlpha,
		paddingFactor: 2,
	}
}

// WithTaperAlpha sets the Tukey taper fraction applied after detrending.
// Zero disables the taper entirely; values outside [0, 1] are ignored.
func WithTaperAlpha(alpha float64) Option {
	return func(c *config) {
		if alpha >= 0 && alpha <= 1 {
			c.taperAlpha = alpha
		}
	}
}

// WithPaddingFactor sets the minimum ratio of transform size to profile
// length before rounding up to a power of two. Values below 1 are ignored.
func WithPaddingFactor(factor int) Option {
	return func(c *config) {
		if factor >= 1 {
			c.paddingFactor = factor
		}
	}
}

// ReduceToPole converts an anomaly profile measured under an oblique field
// into the equivalent profile under a vertical field.
//
// distance and anomaly must have equal length n >= 2; distance is treated
// as uniformly spaced with step dx (dx is authoritative, the distance
// values themselves only anchor the trend fit). The result has length n.
//
// The call is pure: the input slices are never modified and no state
// survives the call, so distinct profiles may be reduced concurrently.
func ReduceToPole(distance, anomaly []float64, dx float64, geom FieldGeometry, opts ...Option) ([]float64, error) {
	if len(distance) != len(anomaly) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(distance), len(anomaly))
	}

	if len(anomaly) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooShort, len(anomaly))
	}

	if dx <= 0 || math.IsNaN(dx) || math.IsInf(dx, 0) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSpacing, dx)
	}

	err := geom.Validate()
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	residual, err := detrend.Remove(distance, anomaly)
	if err != nil {
		return nil, fmt.Errorf("rtp: detrend: %w", err)
	}

	if cfg.taperAlpha > 0 {
		coeffs, err := taper.Tukey(len(residual), cfg.taperAlpha)
		if err != nil {
			return nil, fmt.Errorf("rtp: taper: %w", err)
		}

		err = taper.ApplyCoefficientsInPlace(residual, coeffs)
		if err != nil {
			return nil, fmt.Errorf("rtp: taper: %w", err)
		}
	}

	tr, err := spectral.Forward(residual, dx, spectral.WithPaddingFactor(cfg.paddingFactor))
	if err != nil {
		return nil, fmt.Errorf("rtp: %w", err)
	}

	op, err := Operator(geom, tr.Wavenumbers)
	if err != nil {
		return nil, err
	}

	err = tr.Filter(op)
	if err != nil {
		return nil, fmt.Errorf("rtp: %w", err)
	}

	out, err := tr.Inverse()
	if err != nil {
		return nil, fmt.Errorf("rtp: %w", err)
	}

	return out, nil
}

// Negate returns the elementwise negation of result in a new slice.
//
// Some interpretation workflows mirror the reduced anomaly about the
// distance axis before display (an amplitude flip). That convention is
// cosmetic, not part of the transform, so it lives here as optional
// post-processing rather than a pipeline stage.
func Negate(result []float64) []float64 {
	out := make([]float64, len(result))
	for i, v := range result {
		out[i] = -v
	}

	return out
}
