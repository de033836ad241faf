package operation

import "errors"

// ErrUnknownOperation is returned by [Catalog.Resolve] (and propagated
// unchanged by the engine) when the requested name is not bound in the
// catalog. The error is wrapped with the offending name so callers can use
// [errors.Is] to detect the condition and still see which lookup failed.
//
// Example:
//
//	if errors.Is(err, operation.ErrUnknownOperation) {
//	    // the name was never registered
//	}
var ErrUnknownOperation = errors.New("calcgo: unknown operation")

// ErrDivisionByZero is returned by partial operations (division, modulo) when
// the second operand is exactly zero. It is surfaced to the caller of the
// evaluator unchanged; there is no silent IEEE-infinity fallback.
var ErrDivisionByZero = errors.New("calcgo: division by zero")

// ErrDuplicateOperation is returned by [Catalog.Register] on a catalog built
// with [WithRejectDuplicates] when the name is already bound. Catalogs without
// that option replace the prior binding instead and never return this error.
var ErrDuplicateOperation = errors.New("calcgo: operation already registered")
