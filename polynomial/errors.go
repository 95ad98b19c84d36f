package polynomial

import "errors"

// ErrDivisionByZero is the panic value used by DivMod, Divide and Mod
// when asked to divide by the zero polynomial, mirroring
// galois.ErrZeroDivisor: a precondition violation, not a recoverable
// error a caller is expected to check for ahead of time.
var ErrDivisionByZero = errors.New("polynomial: division by the zero polynomial")

// errLeadingCoefficientOfZero is the panic value used by
// LeadingCoefficient when called on the zero polynomial, which has
// none.
var errLeadingCoefficientOfZero = errors.New("polynomial: LeadingCoefficient of the zero polynomial")
