package berlekamp

import (
	"github.com/aishutin-labs/galoisfactor/galois"
	"github.com/aishutin-labs/galoisfactor/polynomial"
)

// FactorizeDistinctDegree factors a known square-free, monic
// polynomial into irreducible factors using the distinct-degree
// strategy: it first groups the unknown factors by degree d via
// repeated gcd(f, x^(q^d) - x), then splits any group containing more
// than one same-degree factor with the same subalgebra-basis split
// Factorize uses. This does less unnecessary basis work than
// Factorize's default path when most of poly's irreducible factors
// have distinct degrees, at the cost of the extra Frobenius-matrix
// powering this grouping step needs.
//
// poly must already be square-free (no repeated irreducible factor);
// callers that don't know this in advance should peel repeated
// factors with Factorize's square-free decomposition first.
func FactorizeDistinctDegree(f *galois.Field, poly polynomial.Polynomial, stats *Stats) ([]polynomial.Polynomial, error) {
	poly = poly.MakeMonic(f)
	if poly.IsZero() || poly.IsOne() {
		return nil, nil
	}
	if !polynomial.Gcd(f, poly, poly.Derivative(f)).IsOne() {
		return nil, ErrNotSquareFree
	}
	return distinctDegreeSplit(f, poly, stats), nil
}

func distinctDegreeSplit(f *galois.Field, poly polynomial.Polynomial, stats *Stats) []polynomial.Polynomial {
	matrix := buildFrobeniusMatrix(f, poly)

	var result []polynomial.Polynomial
	factorizing := poly
	x := polynomial.New(f, []galois.Element{f.Zero(), f.One()})
	current := x

	for degree := 1; 2*degree < factorizing.Size(); degree++ {
		current = applyFrobeniusMatrix(f, current, matrix)
		stats.addGcd(1)
		gcd := polynomial.Gcd(f, factorizing, current.Sub(f, x))
		if gcd.Size() <= 1 {
			continue
		}
		factorizing = factorizing.Divide(f, gcd)
		if gcd.Size() == degree+1 {
			// Exactly one irreducible factor of this degree.
			result = append(result, gcd)
			continue
		}
		result = append(result, splitSquareFree(f, gcd, stats)...)
	}
	if factorizing.Size() > 1 {
		result = append(result, factorizing)
	}
	return result
}

// applyFrobeniusMatrix computes poly^q mod the polynomial matrix was
// built against, using the linearity of the q-th power map over 𝔽_q
// instead of repeated multiplication.
func applyFrobeniusMatrix(f *galois.Field, poly polynomial.Polynomial, matrix [][]galois.Element) polynomial.Polynomial {
	n := len(matrix)
	elems := poly.Coefficients()
	result := make([]galois.Element, n)
	for j := range result {
		result[j] = f.Zero()
	}
	for i := 0; i < len(elems) && i < n; i++ {
		a := elems[i]
		if a == f.Zero() {
			continue
		}
		for j := 0; j < n; j++ {
			result[j] = f.Add(result[j], f.Multiply(a, matrix[i][j]))
		}
	}
	return polynomial.New(f, result)
}
