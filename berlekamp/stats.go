package berlekamp

import "sync/atomic"

// Stats is an optional counter a caller can thread through Factorize
// and FactorizeDistinctDegree to observe how much splitting work was
// done, mirroring the original algorithm's atomic<int64_t> metric_
// (and, in the distinct-degree variant, its separate Gauss/division
// action counters). A nil *Stats is valid everywhere and simply
// discards every increment, so passing stats is always optional.
type Stats struct {
	splitWork       uint64
	gaussOperations uint64
	gcdOperations   uint64
}

func (s *Stats) addSplitWork(n uint64) {
	if s == nil {
		return
	}
	atomic.AddUint64(&s.splitWork, n)
}

func (s *Stats) addGauss(n uint64) {
	if s == nil {
		return
	}
	atomic.AddUint64(&s.gaussOperations, n)
}

func (s *Stats) addGcd(n uint64) {
	if s == nil {
		return
	}
	atomic.AddUint64(&s.gcdOperations, n)
}

// SplitWork returns the accumulated basis-splitting work: each
// completed round of the splitting loop adds the size (degree + 1) of
// the polynomial being split, the same quantity the original
// metric_.fetch_add(polynom.Size()) tracked.
func (s *Stats) SplitWork() uint64 {
	if s == nil {
		return 0
	}
	return atomic.LoadUint64(&s.splitWork)
}

// GaussOperations returns the number of Gauss-elimination row
// reductions (one per row cleared against a pivot) performed across
// every basis computation.
func (s *Stats) GaussOperations() uint64 {
	if s == nil {
		return 0
	}
	return atomic.LoadUint64(&s.gaussOperations)
}

// GcdOperations returns the number of Euclidean GCD calls counted
// during factorization: the square-free step's gcd(f, f'), every GCD
// of the basis-splitting loop, and every gcd(f, x^(q^d) - x) of the
// distinct-degree grouping.
func (s *Stats) GcdOperations() uint64 {
	if s == nil {
		return 0
	}
	return atomic.LoadUint64(&s.gcdOperations)
}
