package arithmetic

import (
	"context"
	"fmt"

	"github.com/leofalp/calcgo/providers/operation"
)

// NewSuma returns the addition operation: suma(a, b) = a + b.
func NewSuma() *operation.Operation {
	return operation.New("suma",
		func(ctx context.Context, a, b float64) (float64, error) {
			return a + b, nil
		},
		operation.WithSymbol("+"),
		operation.WithDescription("Adds the two operands."),
	)
}

// NewResta returns the subtraction operation: resta(a, b) = a - b.
func NewResta() *operation.Operation {
	return operation.New("resta",
		func(ctx context.Context, a, b float64) (float64, error) {
			return a - b, nil
		},
		operation.WithSymbol("-"),
		operation.WithDescription("Subtracts the second operand from the first."),
	)
}

// NewMultiplicacion returns the multiplication operation:
// multiplicacion(a, b) = a * b.
func NewMultiplicacion() *operation.Operation {
	return operation.New("multiplicacion",
		func(ctx context.Context, a, b float64) (float64, error) {
			return a * b, nil
		},
		operation.WithSymbol("*"),
		operation.WithDescription("Multiplies the two operands."),
	)
}

// NewDivision returns the division operation: division(a, b) = a / b.
// Division is undefined at b == 0 and fails there with an error wrapping
// [operation.ErrDivisionByZero]; it never returns an IEEE infinity.
func NewDivision() *operation.Operation {
	return operation.New("division",
		func(ctx context.Context, a, b float64) (float64, error) {
			if b == 0 {
				return 0, fmt.Errorf("%w: %g / 0", operation.ErrDivisionByZero, a)
			}
			return a / b, nil
		},
		operation.WithSymbol("/"),
		operation.WithDescription("Divides the first operand by the second. Fails when the divisor is zero."),
	)
}

// Catalog returns a new catalog pre-seeded with the four basic operations.
// Each call returns an independent catalog; mutating one does not affect
// catalogs returned by earlier or later calls.
func Catalog() *operation.Catalog {
	return operation.NewCatalogWithOperations(
		NewSuma(),
		NewResta(),
		NewMultiplicacion(),
		NewDivision(),
	)
}
