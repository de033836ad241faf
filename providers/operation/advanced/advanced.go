package advanced

import (
	"context"
	"fmt"
	"math"

	"github.com/leofalp/calcgo/providers/operation"
)

// NewPotencia returns the exponentiation operation:
// potencia(a, b) = a raised to the power b, per [math.Pow] semantics.
func NewPotencia() *operation.Operation {
	return operation.New("potencia",
		func(ctx context.Context, a, b float64) (float64, error) {
			return math.Pow(a, b), nil
		},
		operation.WithSymbol("^"),
		operation.WithDescription("Raises the first operand to the power of the second."),
	)
}

// NewModulo returns the remainder operation: modulo(a, b) = a mod b, per
// [math.Mod] semantics. Like division it is undefined at b == 0 and fails
// there with an error wrapping [operation.ErrDivisionByZero].
func NewModulo() *operation.Operation {
	return operation.New("modulo",
		func(ctx context.Context, a, b float64) (float64, error) {
			if b == 0 {
				return 0, fmt.Errorf("%w: %g mod 0", operation.ErrDivisionByZero, a)
			}
			return math.Mod(a, b), nil
		},
		operation.WithSymbol("%"),
		operation.WithDescription("Returns the floating-point remainder of the first operand divided by the second. Fails when the divisor is zero."),
	)
}

// Catalog returns a new catalog carrying only the advanced operations.
// Merge it into an arithmetic catalog to build a full calculator.
func Catalog() *operation.Catalog {
	return operation.NewCatalogWithOperations(
		NewPotencia(),
		NewModulo(),
	)
}
