package taper

import (
	"math"
	"testing"
)

func TestGenerateAllTypesFinite(t *testing.T) {
	types := []Type{
		TypeRectangular,
		TypeHann,
		TypeCosine,
		TypeWelch,
		TypeTriangle,
		TypeTukey,
	}

	for _, typ := range types {
		t.Run(Info(typ).Name, func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}

				if v < 0 || v > 1 {
					t.Fatalf("coefficient[%d] out of [0,1]: %v", i, v)
				}
			}
		})
	}
}

func TestTukeyZeroAtEdges(t *testing.T) {
	for _, n := range []int{16, 100, 101, 1024} {
		w, err := Tukey(n, 0.1)
		if err != nil {
			t.Fatalf("Tukey(%d) failed: %v", n, err)
		}

		if math.Abs(w[0]) > 1e-12 || math.Abs(w[n-1]) > 1e-12 {
			t.Fatalf("n=%d: edges = %v, %v, want 0, 0", n, w[0], w[n-1])
		}
	}
}

func TestTukeyFlatCenter(t *testing.T) {
	n := 100
	alpha := 0.1

	w, err := Tukey(n, alpha)
	if err != nil {
		t.Fatalf("Tukey failed: %v", err)
	}

	// Samples with position in [alpha/2, 1-alpha/2] sit on the flat top.
	lo := int(math.Ceil(alpha / 2 * float64(n-1)))
	hi := int(math.Floor((1 - alpha/2) * float64(n-1)))

	for i := lo; i <= hi; i++ {
		if w[i] != 1 {
			t.Fatalf("w[%d] = %v, want 1", i, w[i])
		}
	}
}

func TestTukeySymmetric(t *testing.T) {
	for _, n := range []int{33, 64} {
		w, err := Tukey(n, 0.25)
		if err != nil {
			t.Fatalf("Tukey failed: %v", err)
		}

		for i := 0; i < n/2; i++ {
			if math.Abs(w[i]-w[n-1-i]) > 1e-12 {
				t.Fatalf("n=%d asymmetric at %d: %v != %v", n, i, w[i], w[n-1-i])
			}
		}
	}
}

func TestTukeyLimitCases(t *testing.T) {
	n := 64

	rect, err := Tukey(n, 0)
	if err != nil {
		t.Fatalf("Tukey(alpha=0) failed: %v", err)
	}

	for i, v := range rect {
		if v != 1 {
			t.Fatalf("alpha=0: w[%d] = %v, want 1", i, v)
		}
	}

	hannLike, err := Tukey(n, 1)
	if err != nil {
		t.Fatalf("Tukey(alpha=1) failed: %v", err)
	}

	hann := Generate(TypeHann, n)
	for i := range hann {
		if math.Abs(hannLike[i]-hann[i]) > 1e-12 {
			t.Fatalf("alpha=1: w[%d] = %v, want hann %v", i, hannLike[i], hann[i])
		}
	}
}

func TestTukeyMonotoneRamp(t *testing.T) {
	w, err := Tukey(200, 0.2)
	if err != nil {
		t.Fatalf("Tukey failed: %v", err)
	}

	rampLen := 0.1 * 199
	ramp := int(rampLen)
	for i := 1; i <= ramp; i++ {
		if w[i] < w[i-1] {
			t.Fatalf("ramp not monotone at %d: %v < %v", i, w[i], w[i-1])
		}
	}
}

func TestSlopeModes(t *testing.T) {
	n := 64

	left := Generate(TypeTukey, n, WithAlpha(0.5), WithSlope(SlopeLeft))
	for i := n / 2; i < n; i++ {
		if left[i] != 1 {
			t.Fatalf("SlopeLeft: w[%d] = %v, want 1", i, left[i])
		}
	}

	right := Generate(TypeTukey, n, WithAlpha(0.5), WithSlope(SlopeRight))
	for i := 0; i < n/2; i++ {
		if right[i] != 1 {
			t.Fatalf("SlopeRight: w[%d] = %v, want 1", i, right[i])
		}
	}
}

func TestTukeyValidation(t *testing.T) {
	if _, err := Tukey(0, 0.1); err == nil {
		t.Fatal("expected error for size 0")
	}

	if _, err := Tukey(16, -0.1); err == nil {
		t.Fatal("expected error for negative alpha")
	}

	if _, err := Tukey(16, 1.5); err == nil {
		t.Fatal("expected error for alpha > 1")
	}
}

func TestApplyCoefficients(t *testing.T) {
	samples := []float64{2, 4, 6, 8}
	coeffs := []float64{0, 0.5, 0.5, 0}

	out, err := ApplyCoefficients(samples, coeffs)
	if err != nil {
		t.Fatalf("ApplyCoefficients failed: %v", err)
	}

	want := []float64{0, 2, 3, 0}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}

	if samples[0] != 2 {
		t.Fatal("input mutated")
	}

	if _, err := ApplyCoefficients(samples, coeffs[:2]); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestEquivalentNoiseBandwidth(t *testing.T) {
	rect := Generate(TypeRectangular, 256)

	enbw, err := EquivalentNoiseBandwidth(rect)
	if err != nil {
		t.Fatalf("ENBW failed: %v", err)
	}

	if math.Abs(enbw-1) > 1e-12 {
		t.Fatalf("rectangular ENBW = %v, want 1", enbw)
	}

	hann := Generate(TypeHann, 4096)

	enbw, err = EquivalentNoiseBandwidth(hann)
	if err != nil {
		t.Fatalf("ENBW failed: %v", err)
	}

	if math.Abs(enbw-1.5) > 0.01 {
		t.Fatalf("hann ENBW = %v, want 1.5", enbw)
	}
}
