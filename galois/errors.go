package galois

import "errors"

// Sentinel errors. NewField returns the shape and size errors below,
// Verify returns ErrNotPrimitive, and ErrZeroDivisor is a panic value
// rather than a returned error. Arithmetic on a
// constructed Field never returns an error; dividing or inverting the
// zero element is a precondition violation and panics instead (see
// Field.Divide, Field.Inverse).
var (
	// ErrInvalidBase is returned when p < 2.
	ErrInvalidBase = errors.New("galois: field characteristic must be >= 2")
	// ErrInvalidPower is returned when k < 1.
	ErrInvalidPower = errors.New("galois: field extension degree must be >= 1")
	// ErrGeneratorShape is returned when g does not have exactly k+1
	// coefficients or is not monic (leading coefficient 1).
	ErrGeneratorShape = errors.New("galois: generator must have k+1 coefficients with leading coefficient 1")
	// ErrFieldTooLarge is returned when the requested (p, k) would
	// make the packed representation overflow the 32-bit Element
	// space. Out of scope per spec: very large fields.
	ErrFieldTooLarge = errors.New("galois: field size exceeds the supported packed-element range")
	// ErrZeroDivisor is the panic value used by Divide and Inverse
	// when asked to divide or invert by the zero element.
	ErrZeroDivisor = errors.New("galois: division or inversion by the zero element")
	// ErrNotPrimitive is returned by Verify when the supplied
	// generator does not actually generate the full multiplicative
	// group (poly_to_log collisions, or fewer than q-1 distinct
	// nonzero powers of alpha).
	ErrNotPrimitive = errors.New("galois: generator is not primitive for this field")
)
