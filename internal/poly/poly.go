// Package poly evaluates polynomials with fixed coefficient tables.
package poly

// Horner evaluates a polynomial using Horner's method.
// Given coefficients [c0, c1, c2, ..., cn], computes:
//
//	p(x) = c0 + x*(c1 + x*(c2 + ... + x*cn))
//
// The smallest terms are accumulated first.
//
// Example:
//
//	coeffs := []float64{1.0, 2.0, 3.0} // represents 1 + 2x + 3x²
//	result := Horner(x, coeffs)
func Horner(x float64, coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}

	// Start with the last coefficient
	result := coeffs[len(coeffs)-1]

	// Work backwards through the coefficients
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = result*x + coeffs[i]
	}

	return result
}

// Odd evaluates x*p(x²), the form taken by odd series such as atanh and the
// Stirling correction.
func Odd(x float64, coeffs []float64) float64 {
	return x * Horner(x*x, coeffs)
}
