// Package rtp implements the one-dimensional reduction-to-pole transform
// for magnetic anomaly profiles.
//
// A magnetic anomaly measured under an oblique inducing field is skewed and
// shifted relative to its source body; the same anomaly measured under a
// vertical field (as at the magnetic pole) sits symmetrically over the
// source. ReduceToPole converts the former into the latter by filtering in
// the wavenumber domain: the profile is detrended, edge-tapered, transformed
// with zero padding, multiplied by a geometry-dependent transfer function,
// and transformed back.
//
// The transfer function is the 1-D simplification of the classical RTP
// operator, valid when the anomaly wavenumber vector lies along the profile
// azimuth:
//
//	op(k) = Fz / (Fx·kx + Fy·ky + i·Fz·sign(k))
//
// where (Fx, Fy, Fz) is the unit inducing-field direction and (kx, ky) the
// profile direction. |op| never exceeds 1, so the transform cannot amplify
// total signal energy.
//
// The pipeline is a pure function of its inputs: caller slices are never
// modified, no state survives a call, and independent profiles may be
// processed concurrently without coordination.
//
// # Usage
//
//	geom := rtp.FieldGeometry{InclinationDeg: 42.3, DeclinationDeg: 0.97, AzimuthDeg: 90}
//	result, err := rtp.ReduceToPole(distance, anomaly, 10, geom)
//	if err != nil {
//		// validation or degenerate-geometry error
//	}
//
// For a horizontal field perpendicular to the profile the transfer function
// is undefined at every wavenumber; ReduceToPole reports this as
// ErrDegenerateGeometry instead of producing unusable output.
package rtp
