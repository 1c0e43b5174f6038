package taper

import (
	"errors"
	"fmt"
)

var (
	errEmptyCoeffs      = errors.New("taper: window coefficients must not be empty")
	errZeroCoherentGain = errors.New("taper: window coherent gain is zero")
	errMismatchedLength = errors.New("taper: samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("taper: window size must be > 0: %d", size)
	}
	return nil
}

func validateTukey(size int, alpha float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	if alpha < 0 || alpha > 1 {
		return fmt.Errorf("taper: tukey alpha must be in [0,1]: %f", alpha)
	}
	return nil
}
