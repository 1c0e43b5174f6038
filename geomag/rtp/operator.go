package rtp

import (
	"fmt"
	"math"
)

// degeneracyEpsilon is the smallest denominator magnitude the operator
// accepts before declaring the geometry degenerate.
const degeneracyEpsilon = 1e-12

// Operator builds the per-wavenumber RTP transfer function for the given
// geometry. The returned slice matches wavenumbers index-for-index.
//
// The zero-wavenumber entry is fixed at 1+0i: the formula is undefined at
// DC, so the mean level passes through unmodified. For every other entry
//
//	op(k) = Fz / (Fx·kx + Fy·ky + i·Fz·sign(k))
//
// Since the field direction is a unit vector, |op| <= 1 always, with
// equality only when the horizontal projection Fx·kx + Fy·ky is zero.
//
// The denominator magnitude does not depend on k, so a degenerate geometry
// (horizontal field perpendicular to the profile) invalidates every
// wavenumber at once; Operator reports it as ErrDegenerateGeometry rather
// than emitting Inf or NaN entries.
func Operator(geom FieldGeometry, wavenumbers []float64) ([]complex128, error) {
	err := geom.Validate()
	if err != nil {
		return nil, err
	}

	fx, fy, fz := geom.UnitVector()
	kx, ky := geom.ProfileDirection()
	horizontal := fx*kx + fy*ky

	if math.Hypot(horizontal, fz) < degeneracyEpsilon {
		return nil, fmt.Errorf("%w: inclination %f°, declination %f°, azimuth %f°",
			ErrDegenerateGeometry, geom.InclinationDeg, geom.DeclinationDeg, geom.AzimuthDeg)
	}

	out := make([]complex128, len(wavenumbers))

	for i, k := range wavenumbers {
		if k == 0 {
			out[i] = 1
			continue
		}

		sign := 1.0
		if k < 0 {
			sign = -1
		}

		out[i] = complex(fz, 0) / complex(horizontal, fz*sign)
	}

	return out, nil
}
