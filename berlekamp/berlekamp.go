// Package berlekamp factors a univariate polynomial over a finite
// field into its monic irreducible factors, following §4.C of the
// factorization design: Berlekamp's algorithm, built on the galois
// and polynomial packages.
//
// The algorithm has three layers. The outer loop (FactorizeImpl in
// the grounding source) repeatedly peels off the square-free part of
// the polynomial via gcd(f, f'), falling back to a Frobenius p-th
// root when the derivative vanishes entirely (a pure p-th power in
// characteristic p). Each square-free piece is then split into
// irreducible factors by finding a basis of the Berlekamp subalgebra
// — the polynomials g with g^q = g (mod f) — via Gauss-Jordan
// elimination, then splitting candidate factors against each basis
// vector's translates. FactorizeDistinctDegree offers a second
// splitting strategy that first groups factors by degree before
// running the same basis split on each group.
package berlekamp

import (
	"sort"

	"github.com/aishutin-labs/galoisfactor/galois"
	"github.com/aishutin-labs/galoisfactor/polynomial"
)

// Factor is an irreducible polynomial together with its multiplicity
// in the original factorization.
type Factor struct {
	Poly  polynomial.Polynomial
	Power int
}

// Factorize returns the irreducible factorization of poly over f:
// poly == c * prod(factor.Poly^factor.Power), up to the leading
// coefficient c that MakeMonic divides out. The zero and unit
// polynomials factor to an empty, nil-error result. stats may be nil.
func Factorize(f *galois.Field, poly polynomial.Polynomial, stats *Stats) ([]Factor, error) {
	poly = poly.MakeMonic(f)
	if poly.IsZero() || poly.IsOne() {
		return nil, nil
	}
	return factorizeImpl(f, poly, stats).result(), nil
}

func factorizeImpl(f *galois.Field, poly polynomial.Polynomial, stats *Stats) *factorAccumulator {
	acc := newFactorAccumulator()
	for !poly.IsOne() {
		derivative := poly.Derivative(f)
		if derivative.IsZero() {
			root := frobeniusRoot(f, poly)
			// A vanishing derivative on a nonzero, non-unit polynomial
			// over 𝔽_q is rare enough that recursing here, rather than
			// looping, keeps this branch simple.
			for _, sub := range factorizeImpl(f, root, stats).result() {
				acc.add(sub.Poly, sub.Power*int(f.Characteristic()))
			}
			break
		}
		stats.addGcd(1)
		gcd := polynomial.Gcd(f, poly, derivative)
		squareFree := poly.Divide(f, gcd)
		for _, factor := range splitSquareFree(f, squareFree, stats) {
			acc.add(factor, 1)
		}
		poly = gcd
	}
	return acc
}

// frobeniusRoot returns g such that g^p == poly, for a poly known to
// be a perfect p-th power (poly.Derivative is zero). In characteristic
// p every nonzero coefficient of such a polynomial sits at an exponent
// divisible by p; taking each surviving coefficient to the
// p^(k-1)-th power inverts the Frobenius endomorphism a -> a^p on 𝔽_q.
func frobeniusRoot(f *galois.Field, poly polynomial.Polynomial) polynomial.Polynomial {
	p := int(f.Characteristic())
	exponent := frobeniusInverseExponent(f)
	elems := poly.Coefficients()
	out := make([]galois.Element, (len(elems)+p-1)/p)
	for i := 0; i < len(elems); i += p {
		out[i/p] = f.Pow(elems[i], exponent)
	}
	return polynomial.New(f, out)
}

func frobeniusInverseExponent(f *galois.Field) int64 {
	p := uint64(f.Characteristic())
	result := uint64(1)
	for i := uint32(0); i+1 < f.Degree(); i++ {
		result *= p
	}
	return int64(result)
}

// splitSquareFree splits a known square-free, monic polynomial into
// its irreducible factors via the Berlekamp subalgebra basis.
func splitSquareFree(f *galois.Field, poly polynomial.Polynomial, stats *Stats) []polynomial.Polynomial {
	basis := findFactorizingBasis(f, poly, stats)
	if len(basis) == 1 {
		return []polynomial.Polynomial{poly}
	}

	fieldElements := f.AllFieldElements()
	factors := []polynomial.Polynomial{poly}
	for _, g := range basis {
		var next []polynomial.Polynomial
		for _, factor := range factors {
			for _, c := range fieldElements {
				stats.addGcd(1)
				candidate := polynomial.Gcd(f, factor, g.Sub(f, polynomial.Constant(f, c)))
				if !candidate.IsOne() {
					next = append(next, candidate)
				}
			}
		}
		stats.addSplitWork(uint64(poly.Size()))
		if len(next) == len(basis) {
			return next
		}
		factors, next = next, nil
	}
	return factors
}

// findFactorizingBasis returns a basis of the Berlekamp subalgebra of
// poly: the polynomials g (mod poly) with g^q == g. Its dimension d
// equals the number of irreducible factors poly splits into.
func findFactorizingBasis(f *galois.Field, poly polynomial.Polynomial, stats *Stats) []polynomial.Polynomial {
	n := poly.Size() - 1
	matrix := buildSubalgebraMatrix(f, poly)
	matrix = performGaussElimination(f, matrix, stats)
	rank := len(matrix)

	var freePositions, dataPositions []int
	column := 0
	for row := 0; row < rank; row++ {
		for column < n && matrix[row][column] == f.Zero() {
			freePositions = append(freePositions, column)
			column++
		}
		dataPositions = append(dataPositions, column)
		column++
	}
	for column < n {
		freePositions = append(freePositions, column)
		column++
	}

	if len(freePositions) != n-rank {
		panic(errBasisSizeMismatch)
	}

	result := make([]polynomial.Polynomial, 0, len(freePositions))
	for _, col := range freePositions {
		current := make([]galois.Element, n)
		for i := range current {
			current[i] = f.Zero()
		}
		current[col] = f.One()
		for row := 0; row < rank; row++ {
			current[dataPositions[row]] = f.Negate(matrix[row][col])
		}
		result = append(result, polynomial.New(f, current))
	}
	return result
}

// buildFrobeniusMatrix returns A with rows A_i = x^(i*q) mod modulo,
// i ranging over 0..n-1, so that for any polynomial y of degree < n,
// y's coefficient vector times A is the coefficient vector of y^q mod
// modulo — the q-th power map is 𝔽_q-linear since every coefficient a
// satisfies a^q == a.
func buildFrobeniusMatrix(f *galois.Field, modulo polynomial.Polynomial) [][]galois.Element {
	q := f.Size()
	n := modulo.Size() - 1
	result := make([][]galois.Element, n)
	for i := range result {
		result[i] = make([]galois.Element, n)
		for j := range result[i] {
			result[i][j] = f.Zero()
		}
	}

	xq := make([]galois.Element, q+1)
	for i := range xq {
		xq[i] = f.Zero()
	}
	xq[q] = f.One()
	base := polynomial.New(f, xq).Mod(f, modulo)

	current := polynomial.Constant(f, f.One())
	for power := 0; power < n; power++ {
		for i, e := range current.Coefficients() {
			result[power][i] = e
		}
		current = current.Multiply(f, base).Mod(f, modulo)
	}
	return result
}

// buildSubalgebraMatrix returns (A - I)^T, where A is the Frobenius
// matrix of buildFrobeniusMatrix: y*A = y^q (mod modulo), so
// y*(A-I) = 0 exactly when y is in the Berlekamp subalgebra, and
// (A-I)^T * y^T = 0 is that same condition as a left null space.
func buildSubalgebraMatrix(f *galois.Field, modulo polynomial.Polynomial) [][]galois.Element {
	matrix := buildFrobeniusMatrix(f, modulo)
	n := len(matrix)
	for i := 0; i < n; i++ {
		matrix[i][i] = f.Sub(matrix[i][i], f.One())
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			matrix[i][j], matrix[j][i] = matrix[j][i], matrix[i][j]
		}
	}
	return matrix
}

// performGaussElimination reduces matrix to row-echelon form in
// place, over f, and returns the nonzero rows (so len(result) is the
// matrix's rank).
func performGaussElimination(f *galois.Field, matrix [][]galois.Element, stats *Stats) [][]galois.Element {
	n := len(matrix)
	row := 0
	for column := 0; column < n; column++ {
		nextRow := row
		for nextRow < n && matrix[nextRow][column] == f.Zero() {
			nextRow++
		}
		if nextRow == n {
			continue
		}
		matrix[nextRow], matrix[row] = matrix[row], matrix[nextRow]

		pivotInverse := f.Inverse(matrix[row][column])
		for i := column; i < n; i++ {
			matrix[row][i] = f.Multiply(matrix[row][i], pivotInverse)
		}
		for other := 0; other < n; other++ {
			if other == row || matrix[other][column] == f.Zero() {
				continue
			}
			coefficient := matrix[other][column]
			matrix[other][column] = f.Zero()
			for i := column + 1; i < n; i++ {
				matrix[other][i] = f.Sub(matrix[other][i], f.Multiply(matrix[row][i], coefficient))
			}
			stats.addGauss(1)
		}
		row++
	}
	return matrix[:row]
}

type factorAccumulator struct {
	index   map[string]int
	factors []Factor
}

func newFactorAccumulator() *factorAccumulator {
	return &factorAccumulator{index: make(map[string]int)}
}

func (a *factorAccumulator) add(p polynomial.Polynomial, power int) {
	key := polyKey(p)
	if idx, ok := a.index[key]; ok {
		a.factors[idx].Power += power
		return
	}
	a.index[key] = len(a.factors)
	a.factors = append(a.factors, Factor{Poly: p, Power: power})
}

func (a *factorAccumulator) result() []Factor {
	out := make([]Factor, len(a.factors))
	copy(out, a.factors)
	sort.Slice(out, func(i, j int) bool { return out[i].Poly.Less(out[j].Poly) })
	return out
}

// polyKey gives polynomial.Polynomial a comparable identity so
// factors can be accumulated in a map, mirroring the original's
// std::map<Polynom, int> (Go map keys must be comparable, and a
// Polynomial's coefficient slice isn't).
func polyKey(p polynomial.Polynomial) string {
	coeffs := p.Coefficients()
	key := make([]byte, len(coeffs)*4)
	for i, c := range coeffs {
		key[4*i] = byte(c)
		key[4*i+1] = byte(c >> 8)
		key[4*i+2] = byte(c >> 16)
		key[4*i+3] = byte(c >> 24)
	}
	return string(key)
}
