// Package arithmetic provides the four basic operations: suma, resta,
// multiplicacion and division over float64 operands.
//
// Each constructor returns an independent, self-contained [operation.Operation];
// no constructor reads another operation's internals, so any subset can be
// registered on its own. [Catalog] returns a catalog pre-seeded with all four,
// which is the usual starting point for a basic calculator.
//
// Division is the one partial operation: a second operand of exactly zero
// fails with an error wrapping [operation.ErrDivisionByZero] instead of
// producing an IEEE infinity.
package arithmetic
