package operation

import (
	"context"
	"time"

	"github.com/leofalp/calcgo/providers/observability"
)

// Info holds the metadata an operation advertises: its canonical name, an
// optional display symbol ("+", "^", ...) and a human-readable description.
type Info struct {
	Name        string
	Symbol      string
	Description string
}

// Documented is the metadata capability. Implement it when a type only needs
// to be listed or displayed, never executed.
type Documented interface {
	// OperationInfo returns the metadata (name, symbol, description) used to
	// advertise this operation in catalogs and command output.
	OperationInfo() Info
}

// Appliable is the execution capability: a pure binary transform over two
// float64 operands. Implementations must not mutate shared state; partial
// functions report their undefined points through an error wrapping
// [ErrDivisionByZero] rather than returning IEEE infinities.
type Appliable interface {
	// Apply computes the operation over (a, b). The context carries an
	// optional observability span; implementations must not block on it.
	Apply(ctx context.Context, a, b float64) (float64, error)
}

// Binary is what a [Catalog] stores: an operation that is both documented and
// appliable. Callers needing only one side should depend on [Documented] or
// [Appliable] instead.
type Binary interface {
	Documented
	Appliable
}

// ApplyFunc is the function form of the execution capability.
type ApplyFunc func(ctx context.Context, a, b float64) (float64, error)

// Operation is the standard [Binary] implementation: a name bound to an
// [ApplyFunc]. It is immutable after construction; build one with [New].
type Operation struct {
	name        string
	symbol      string
	description string
	fn          ApplyFunc
}

var _ Binary = (*Operation)(nil)

// opOptions holds optional configuration for an operation created via [New].
type opOptions struct {
	Symbol      string
	Description string
}

// WithSymbol sets a short display symbol for the operation, e.g. "+" or "^".
// The symbol is advisory; resolution in a catalog is by name.
func WithSymbol(symbol string) func(*opOptions) {
	return func(o *opOptions) {
		o.Symbol = symbol
	}
}

// WithDescription sets a human-readable description for the operation, shown
// by catalog listings and the ops command.
func WithDescription(description string) func(*opOptions) {
	return func(o *opOptions) {
		o.Description = description
	}
}

// New constructs an [Operation] with the given canonical name and apply
// function. Optional metadata is provided through [WithSymbol] and
// [WithDescription].
//
// Example:
//
//	suma := operation.New("suma",
//	    func(ctx context.Context, a, b float64) (float64, error) { return a + b, nil },
//	    operation.WithSymbol("+"),
//	)
func New(name string, fn ApplyFunc, options ...func(*opOptions)) *Operation {
	opts := &opOptions{}
	for _, option := range options {
		option(opts)
	}

	return &Operation{
		name:        name,
		symbol:      opts.Symbol,
		description: opts.Description,
		fn:          fn,
	}
}

// OperationInfo returns the metadata used to advertise this operation.
func (o *Operation) OperationInfo() Info {
	return Info{
		Name:        o.name,
		Symbol:      o.symbol,
		Description: o.description,
	}
}

// Apply executes the underlying function over (a, b). When a span is present
// in ctx, start/end events are emitted with the operands, and the result or
// error plus the execution duration are recorded on the span.
func (o *Operation) Apply(ctx context.Context, a, b float64) (float64, error) {
	span := observability.SpanFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventApplyStart,
			observability.String(observability.AttrOperationName, o.name),
			observability.Float64(observability.AttrOperandA, a),
			observability.Float64(observability.AttrOperandB, b),
		)
		defer span.AddEvent(observability.EventApplyEnd)
	}

	start := time.Now()
	result, err := o.fn(ctx, a, b)
	duration := time.Since(start)

	if err != nil {
		if span != nil {
			span.RecordError(err)
			span.SetAttributes(
				observability.Duration(observability.AttrOperationDuration, duration),
			)
		}
		return 0, err
	}

	if span != nil {
		span.SetAttributes(
			observability.Float64(observability.AttrOperationResult, result),
			observability.Duration(observability.AttrOperationDuration, duration),
		)
	}

	return result, nil
}
