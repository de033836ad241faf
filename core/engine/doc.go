// Package engine evaluates arithmetic requests against an operation catalog.
//
// An [Evaluator] owns exactly one [operation.Catalog] and is otherwise
// stateless: evaluating resolves the requested name, applies the operation to
// the operand pair and returns the result. Resolution and application errors
// ([operation.ErrUnknownOperation], [operation.ErrDivisionByZero]) propagate
// to the caller unchanged.
//
// Optional capabilities are attached at construction: [WithObservability]
// wraps each evaluation in a span, and [WithHistory] records every successful
// evaluation in a history store.
package engine
