package berlekamp

import "errors"

// ErrNotSquareFree is returned by FactorizeDistinctDegree when its
// input still has a repeated irreducible factor; the distinct-degree
// strategy assumes its caller has already peeled repeated factors off
// with the same square-free decomposition Factorize uses internally.
var ErrNotSquareFree = errors.New("berlekamp: input to FactorizeDistinctDegree must be square-free")

// errBasisSizeMismatch is the panic value used when the computed
// Berlekamp subalgebra basis doesn't match the nullity of its
// defining matrix — an internal invariant break, not a condition a
// caller can trigger with any input.
var errBasisSizeMismatch = errors.New("berlekamp: basis size does not match the nullity of the Berlekamp subalgebra matrix")
