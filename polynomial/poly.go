// Package polynomial implements dense univariate polynomials over a
// 𝔽_q finite field, following §4.B of the factorization design: a
// coefficient slice, low to high, with the invariant that the slice
// never carries a trailing (highest-power) zero. The zero polynomial
// is the empty slice.
//
// Every Polynomial carries an explicit *galois.Field parameter at each
// call rather than storing one, mirroring the galois package's own
// explicit-field-threading convention. Methods never mutate their
// receiver; they return a fresh Polynomial, matching the teacher's
// preference for value types over aliased mutable state.
package polynomial

import "github.com/aishutin-labs/galoisfactor/galois"

// Polynomial is a dense coefficient vector over 𝔽_q, coefficients
// ordered low-degree first. coeffs[len(coeffs)-1], if present, is
// never the field's zero element.
type Polynomial struct {
	coeffs []galois.Element
}

// New builds a Polynomial from coefficients (low to high degree),
// trimming any trailing zeros.
func New(f *galois.Field, coeffs []galois.Element) Polynomial {
	cp := make([]galois.Element, len(coeffs))
	copy(cp, coeffs)
	return trim(f, cp)
}

// Zero returns the zero polynomial.
func Zero() Polynomial { return Polynomial{} }

// Constant returns the degree-0 polynomial with value a, or the zero
// polynomial if a is the field's zero element.
func Constant(f *galois.Field, a galois.Element) Polynomial {
	return trim(f, []galois.Element{a})
}

// Monomial returns a*x^degree.
func Monomial(f *galois.Field, a galois.Element, degree int) Polynomial {
	if a == f.Zero() {
		return Zero()
	}
	c := make([]galois.Element, degree+1)
	for i := range c {
		c[i] = f.Zero()
	}
	c[degree] = a
	return Polynomial{coeffs: c}
}

func trim(f *galois.Field, coeffs []galois.Element) Polynomial {
	n := len(coeffs)
	for n > 0 && coeffs[n-1] == f.Zero() {
		n--
	}
	return Polynomial{coeffs: coeffs[:n]}
}

// Size returns the number of stored coefficients (degree+1 for a
// nonzero polynomial, 0 for the zero polynomial).
func (p Polynomial) Size() int { return len(p.coeffs) }

// Degree returns the polynomial's degree, or -1 for the zero
// polynomial.
func (p Polynomial) Degree() int { return len(p.coeffs) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return len(p.coeffs) == 0 }

// IsOne reports whether p is the constant polynomial 1.
func (p Polynomial) IsOne() bool { return len(p.coeffs) == 1 && p.coeffs[0] == 1 }

// Coefficients returns a fresh copy of p's coefficients, low to high.
func (p Polynomial) Coefficients() []galois.Element {
	out := make([]galois.Element, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// At returns the coefficient of x^i, or the field's zero element if i
// is beyond p's stored degree.
func (p Polynomial) At(f *galois.Field, i int) galois.Element {
	if i < 0 || i >= len(p.coeffs) {
		return f.Zero()
	}
	return p.coeffs[i]
}

// LeadingCoefficient returns the coefficient of the highest stored
// power. It panics if p is the zero polynomial; callers must check
// IsZero first.
func (p Polynomial) LeadingCoefficient() galois.Element {
	if len(p.coeffs) == 0 {
		panic(errLeadingCoefficientOfZero)
	}
	return p.coeffs[len(p.coeffs)-1]
}

// Equal reports whether p and other have identical coefficient
// vectors. Both operands must already satisfy the trim invariant,
// which every constructor and every method below preserves.
func (p Polynomial) Equal(other Polynomial) bool {
	if len(p.coeffs) != len(other.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i] != other.coeffs[i] {
			return false
		}
	}
	return true
}

// Less defines a strict total order over polynomials: shorter (lower
// degree) sorts first; among equal-length polynomials, the first
// differing coefficient (scanned low to high) decides. This has no
// algebraic meaning — it exists so factors can be placed in a
// deterministic, reproducible order — and any total order consistent
// across a single run would do equally well.
func (p Polynomial) Less(other Polynomial) bool {
	if len(p.coeffs) != len(other.coeffs) {
		return len(p.coeffs) < len(other.coeffs)
	}
	for i := range p.coeffs {
		if p.coeffs[i] != other.coeffs[i] {
			return p.coeffs[i] < other.coeffs[i]
		}
	}
	return false
}

// Add returns p+other.
func (p Polynomial) Add(f *galois.Field, other Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(other.coeffs) > n {
		n = len(other.coeffs)
	}
	result := make([]galois.Element, n)
	for i := 0; i < n; i++ {
		result[i] = f.Add(p.At(f, i), other.At(f, i))
	}
	return trim(f, result)
}

// Sub returns p-other.
func (p Polynomial) Sub(f *galois.Field, other Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(other.coeffs) > n {
		n = len(other.coeffs)
	}
	result := make([]galois.Element, n)
	for i := 0; i < n; i++ {
		result[i] = f.Sub(p.At(f, i), other.At(f, i))
	}
	return trim(f, result)
}

// Negate returns -p.
func (p Polynomial) Negate(f *galois.Field) Polynomial {
	result := make([]galois.Element, len(p.coeffs))
	for i, c := range p.coeffs {
		result[i] = f.Negate(c)
	}
	return trim(f, result)
}

// Multiply returns p*other, by schoolbook convolution.
func (p Polynomial) Multiply(f *galois.Field, other Polynomial) Polynomial {
	if p.IsZero() || other.IsZero() {
		return Zero()
	}
	if len(other.coeffs) == 1 {
		return p.ScalarMultiply(f, other.coeffs[0])
	}
	n := len(p.coeffs) + len(other.coeffs) - 1
	result := make([]galois.Element, n)
	for i := range result {
		result[i] = f.Zero()
	}
	for i, a := range p.coeffs {
		if a == f.Zero() {
			continue
		}
		for j, b := range other.coeffs {
			result[i+j] = f.Add(result[i+j], f.Multiply(a, b))
		}
	}
	return trim(f, result)
}

// ScalarMultiply returns a*p for a field element a.
func (p Polynomial) ScalarMultiply(f *galois.Field, a galois.Element) Polynomial {
	if a == f.Zero() {
		return Zero()
	}
	result := make([]galois.Element, len(p.coeffs))
	for i, c := range p.coeffs {
		result[i] = f.Multiply(c, a)
	}
	return trim(f, result)
}

// DivMod returns the quotient and remainder of dividing p by other,
// such that p == quotient*other + remainder and remainder.Degree() <
// other.Degree(). It panics if other is the zero polynomial.
//
// The algorithm works from the leading term down, exactly mirroring a
// schoolbook long division: at each step it cancels the current
// dividend's leading coefficient against the divisor's.
func (p Polynomial) DivMod(f *galois.Field, other Polynomial) (quotient, remainder Polynomial) {
	if other.IsZero() {
		panic(ErrDivisionByZero)
	}
	if len(p.coeffs) < len(other.coeffs) {
		return Zero(), p
	}
	if len(other.coeffs) == 1 {
		return p.ScalarMultiply(f, f.Inverse(other.coeffs[0])), Zero()
	}

	work := make([]galois.Element, len(p.coeffs))
	copy(work, p.coeffs)

	resultSize := len(work) - len(other.coeffs) + 1
	q := make([]galois.Element, resultSize)
	divisorLead := other.coeffs[len(other.coeffs)-1]

	for power := resultSize - 1; power >= 0; power-- {
		dividentIdx := len(work) - 1 - (resultSize - 1 - power)
		coefficient := f.Divide(work[dividentIdx], divisorLead)
		q[power] = coefficient
		if coefficient == f.Zero() {
			continue
		}
		for j := len(other.coeffs) - 1; j >= 0; j-- {
			idx := dividentIdx - (len(other.coeffs) - 1 - j)
			work[idx] = f.Sub(work[idx], f.Multiply(other.coeffs[j], coefficient))
		}
	}
	return trim(f, q), trim(f, work[:len(other.coeffs)-1])
}

// Divide returns the quotient of dividing p by other. It panics if
// other is the zero polynomial.
func (p Polynomial) Divide(f *galois.Field, other Polynomial) Polynomial {
	q, _ := p.DivMod(f, other)
	return q
}

// Mod returns the remainder of dividing p by other. It panics if
// other is the zero polynomial.
func (p Polynomial) Mod(f *galois.Field, other Polynomial) Polynomial {
	_, r := p.DivMod(f, other)
	return r
}

// Derivative returns p', the formal derivative: coefficient i of p
// contributes i*p[i] (i reduced mod the field's characteristic, via
// galois.Field.FromInt) to coefficient i-1 of the result.
func (p Polynomial) Derivative(f *galois.Field) Polynomial {
	if len(p.coeffs) <= 1 {
		return Zero()
	}
	result := make([]galois.Element, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		result[i-1] = f.Multiply(f.FromInt(uint64(i)), p.coeffs[i])
	}
	return trim(f, result)
}

// MakeMonic returns p scaled so its leading coefficient is 1. It
// returns p unchanged (a copy) if p is already zero or already monic.
func (p Polynomial) MakeMonic(f *galois.Field) Polynomial {
	if p.IsZero() {
		return p
	}
	leading := p.LeadingCoefficient()
	if leading == f.One() {
		return New(f, p.coeffs)
	}
	return p.ScalarMultiply(f, f.Inverse(leading))
}

// Gcd returns the greatest common divisor of p and other, made monic,
// via the Euclidean algorithm. Gcd(0, 0) is the zero polynomial.
func Gcd(f *galois.Field, a, b Polynomial) Polynomial {
	for !b.IsZero() {
		a, b = b, a.Mod(f, b)
	}
	return a.MakeMonic(f)
}
