package polynomial

import (
	"math/rand"
	"testing"

	"github.com/aishutin-labs/galoisfactor/galois"
)

func gf8(t *testing.T) *galois.Field {
	t.Helper()
	f, err := galois.NewField(2, 3, []uint32{1, 1, 0, 1})
	if err != nil {
		t.Fatalf("NewField: %s", err)
	}
	return f
}

func gf9(t *testing.T) *galois.Field {
	t.Helper()
	f, err := galois.NewField(3, 2, []uint32{2, 2, 1})
	if err != nil {
		t.Fatalf("NewField: %s", err)
	}
	return f
}

func randomPoly(f *galois.Field, rng *rand.Rand, maxDegree int) Polynomial {
	elems := f.AllFieldElements()
	n := rng.Intn(maxDegree + 1)
	coeffs := make([]galois.Element, n)
	for i := range coeffs {
		coeffs[i] = elems[rng.Intn(len(elems))]
	}
	return New(f, coeffs)
}

func TestTrimInvariant(t *testing.T) {
	f := gf8(t)
	p := New(f, []galois.Element{1, 0, 3, 0, 0})
	if p.Degree() != 2 {
		t.Fatalf("Degree() = %d, want 2 (trailing zeros must be trimmed)", p.Degree())
	}
	zero := New(f, []galois.Element{0, 0, 0})
	if !zero.IsZero() {
		t.Fatalf("all-zero coefficients did not trim to the zero polynomial")
	}
}

func TestDivModIdentity(t *testing.T) {
	f := gf8(t)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a := randomPoly(f, rng, 8)
		b := randomPoly(f, rng, 4)
		if b.IsZero() {
			continue
		}
		q, r := a.DivMod(f, b)
		if !r.IsZero() && r.Degree() >= b.Degree() {
			t.Fatalf("remainder degree %d not less than divisor degree %d", r.Degree(), b.Degree())
		}
		got := q.Multiply(f, b).Add(f, r)
		if !got.Equal(a) {
			t.Fatalf("q*b+r != a for a=%v b=%v: got %v", a.coeffs, b.coeffs, got.coeffs)
		}
	}
}

func TestDivModGF9(t *testing.T) {
	f := gf9(t)
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		a := randomPoly(f, rng, 8)
		b := randomPoly(f, rng, 4)
		if b.IsZero() {
			continue
		}
		q, r := a.DivMod(f, b)
		got := q.Multiply(f, b).Add(f, r)
		if !got.Equal(a) {
			t.Fatalf("q*b+r != a for a=%v b=%v", a.coeffs, b.coeffs)
		}
	}
}

func TestDivideByZeroPanics(t *testing.T) {
	f := gf8(t)
	p := New(f, []galois.Element{1, 1})
	defer func() {
		if recover() == nil {
			t.Fatal("DivMod by the zero polynomial did not panic")
		}
	}()
	p.DivMod(f, Zero())
}

func TestDerivativeLinear(t *testing.T) {
	f := gf8(t)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		a := randomPoly(f, rng, 6)
		b := randomPoly(f, rng, 6)
		lhs := a.Add(f, b).Derivative(f)
		rhs := a.Derivative(f).Add(f, b.Derivative(f))
		if !lhs.Equal(rhs) {
			t.Fatalf("(a+b)' != a'+b' for a=%v b=%v", a.coeffs, b.coeffs)
		}
	}
}

func TestDerivativeOfConstantIsZero(t *testing.T) {
	f := gf8(t)
	c := Constant(f, 5)
	if !c.Derivative(f).IsZero() {
		t.Fatalf("derivative of a constant must be zero")
	}
}

func TestMakeMonic(t *testing.T) {
	f := gf8(t)
	p := New(f, []galois.Element{3, 5, 6})
	m := p.MakeMonic(f)
	if m.IsZero() || m.LeadingCoefficient() != f.One() {
		t.Fatalf("MakeMonic did not produce a monic polynomial: %v", m.coeffs)
	}
	if p.MakeMonic(f).MakeMonic(f).LeadingCoefficient() != f.One() {
		t.Fatalf("MakeMonic is not idempotent")
	}
}

func TestGcdDividesBoth(t *testing.T) {
	f := gf8(t)
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 50; i++ {
		a := randomPoly(f, rng, 6)
		b := randomPoly(f, rng, 6)
		if a.IsZero() || b.IsZero() {
			continue
		}
		g := Gcd(f, a, b)
		if g.IsZero() {
			t.Fatalf("Gcd(%v,%v) is zero for nonzero inputs", a.coeffs, b.coeffs)
		}
		if _, r := a.DivMod(f, g); !r.IsZero() {
			t.Fatalf("gcd does not divide a: a=%v g=%v", a.coeffs, g.coeffs)
		}
		if _, r := b.DivMod(f, g); !r.IsZero() {
			t.Fatalf("gcd does not divide b: b=%v g=%v", b.coeffs, g.coeffs)
		}
	}
}

func TestLessIsAStrictTotalOrder(t *testing.T) {
	f := gf8(t)
	a := New(f, []galois.Element{1, 2})
	b := New(f, []galois.Element{1, 3})
	c := New(f, []galois.Element{1, 2, 1})
	if !a.Less(b) {
		t.Fatalf("expected a < b for a=%v b=%v", a.coeffs, b.coeffs)
	}
	if b.Less(a) {
		t.Fatalf("Less must be asymmetric")
	}
	if !a.Less(c) {
		t.Fatalf("expected shorter polynomial a to sort before longer c")
	}
	if a.Less(a) {
		t.Fatalf("Less must be irreflexive")
	}
}

func TestRingAxioms(t *testing.T) {
	for _, f := range []*galois.Field{gf8(t), gf9(t)} {
		rng := rand.New(rand.NewSource(5))
		for i := 0; i < 100; i++ {
			a := randomPoly(f, rng, 5)
			b := randomPoly(f, rng, 5)
			c := randomPoly(f, rng, 5)
			if !a.Add(f, b).Equal(b.Add(f, a)) {
				t.Fatalf("addition not commutative")
			}
			lhs := a.Multiply(f, b.Add(f, c))
			rhs := a.Multiply(f, b).Add(f, a.Multiply(f, c))
			if !lhs.Equal(rhs) {
				t.Fatalf("distributivity failed")
			}
			if !a.Sub(f, a).IsZero() {
				t.Fatalf("a-a != 0")
			}
		}
	}
}
