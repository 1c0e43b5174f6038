// Package taper provides edge-tapering windows for profile data ahead of a
// finite discrete transform.
//
// A finite transform treats its input as periodic; a nonzero sample at one
// profile end wraps onto the other and injects broadband leakage. Tapering
// weights the outer samples down smoothly so the implied periodic extension
// is continuous. The Tukey window is the workhorse here: flat over the
// central portion, half-cosine roll-off over a configurable edge fraction,
// so the anomaly amplitude in the profile interior is untouched.
//
// Windows follow the canonical symmetric definition and reach zero at the
// first and last sample (except the rectangular window).
//
// # Usage
//
//	coeffs, err := taper.Tukey(len(anomaly), 0.1)
//	if err != nil {
//		// handle invalid parameters
//	}
//	windowed, err := taper.ApplyCoefficients(anomaly, coeffs)
package taper
