// Package detrend removes slowly varying trends from profile data before
// spectral processing.
//
// A linear drift in a measured profile concentrates energy near zero
// wavenumber and leaves a step at the wrap-around boundary of a finite
// transform; both artifacts corrupt frequency-domain filtering far more than
// the drift itself. Remove fits a first-degree least-squares polynomial and
// returns the residual.
//
// # Usage
//
//	residual, err := detrend.Remove(distance, anomaly)
//	if err != nil {
//		// handle validation error
//	}
package detrend
