package rtp

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by rtp functions.
var (
	ErrTooShort           = errors.New("rtp: need at least 2 samples")
	ErrLengthMismatch     = errors.New("rtp: distance and anomaly must have same length")
	ErrInvalidSpacing     = errors.New("rtp: sampling interval must be positive and finite")
	ErrInvalidInclination = errors.New("rtp: inclination must be in [-90, 90] degrees")
	ErrNonFiniteGeometry  = errors.New("rtp: field geometry values must be finite")
	ErrDegenerateGeometry = errors.New("rtp: transfer function denominator vanishes for this geometry")
)

// FieldGeometry describes the inducing geomagnetic field direction and the
// bearing of the survey profile. All angles are in degrees.
type FieldGeometry struct {
	// InclinationDeg is the field inclination, degrees from horizontal,
	// positive downward. Must lie in [-90, 90].
	InclinationDeg float64

	// DeclinationDeg is the field declination, degrees east of geographic
	// north.
	DeclinationDeg float64

	// AzimuthDeg is the profile bearing, degrees east of north.
	AzimuthDeg float64
}

// Validate checks that the geometry is finite and the inclination is in
// range. Declination and azimuth are conventionally in [0, 360) but any
// finite value is accepted; the trigonometry wraps naturally.
func (g FieldGeometry) Validate() error {
	for _, v := range []float64{g.InclinationDeg, g.DeclinationDeg, g.AzimuthDeg} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %+v", ErrNonFiniteGeometry, g)
		}
	}

	if g.InclinationDeg < -90 || g.InclinationDeg > 90 {
		return fmt.Errorf("%w: %f", ErrInvalidInclination, g.InclinationDeg)
	}

	return nil
}

// UnitVector returns the cartesian components of the unit inducing-field
// direction: x north, y east, z down.
func (g FieldGeometry) UnitVector() (fx, fy, fz float64) {
	inc := g.InclinationDeg * math.Pi / 180
	dec := g.DeclinationDeg * math.Pi / 180

	fx = math.Cos(inc) * math.Cos(dec)
	fy = math.Cos(inc) * math.Sin(dec)
	fz = math.Sin(inc)

	return fx, fy, fz
}

// ProfileDirection returns the horizontal direction cosines of the survey
// line.
func (g FieldGeometry) ProfileDirection() (kx, ky float64) {
	theta := g.AzimuthDeg * math.Pi / 180

	return math.Cos(theta), math.Sin(theta)
}
