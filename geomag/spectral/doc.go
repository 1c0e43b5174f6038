// Package spectral provides the padded forward and inverse transforms used
// for wavenumber-domain filtering of uniformly sampled profiles.
//
// Forward zero-pads a profile to a power-of-two length, runs the discrete
// Fourier transform, and builds the matching angular-wavenumber array in
// rad/m (zero first, increasing positive wavenumbers, then the sign-folded
// negative half). The padding pushes circular-wrap artifacts of the implicit
// periodic extension beyond the data support; the default factor of two can
// be raised through WithPaddingFactor.
//
// Filtering happens on Transform.Bins; Inverse returns to the spatial domain
// and discards the padding tail.
package spectral
