package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/leofalp/calcgo/core/parse"
	"github.com/leofalp/calcgo/providers/history"
	"github.com/leofalp/calcgo/providers/observability"
	"github.com/leofalp/calcgo/providers/operation"
)

// Request is a transient evaluation request: two operands and the name of the
// operation to apply. It is not persisted; history records are derived from
// it after a successful evaluation.
type Request struct {
	A         float64 `json:"a"`
	B         float64 `json:"b"`
	Operation string  `json:"operation"`
}

// Result carries the outcome of a single evaluation together with the request
// that produced it and the wall-clock time the application took.
type Result struct {
	Request  Request
	Value    float64
	Duration time.Duration
}

// Evaluator applies named operations from its catalog to operand pairs.
// It holds its catalog exclusively; two evaluators never share registrations
// unless explicitly constructed over the same catalog. Build one with [New].
type Evaluator struct {
	catalog *operation.Catalog
	obs     observability.Provider
	history history.Store
}

// Option configures an [Evaluator] at construction time.
type Option func(*Evaluator)

// WithObservability attaches an observability provider. Each evaluation is
// then wrapped in a span carrying the operation name, operands, result and
// duration, with errors recorded on the span.
func WithObservability(provider observability.Provider) Option {
	return func(e *Evaluator) {
		e.obs = provider
	}
}

// WithHistory attaches a history store. Every successful evaluation is
// appended as a [history.Record] with a fresh ID; failed evaluations are not
// recorded.
func WithHistory(store history.Store) Option {
	return func(e *Evaluator) {
		e.history = store
	}
}

// New constructs an [Evaluator] over the given catalog.
// A nil catalog is replaced with an empty one, so every evaluation on such an
// evaluator fails with [operation.ErrUnknownOperation].
func New(catalog *operation.Catalog, options ...Option) *Evaluator {
	if catalog == nil {
		catalog = operation.NewCatalog()
	}
	evaluator := &Evaluator{catalog: catalog}
	for _, option := range options {
		option(evaluator)
	}
	return evaluator
}

// Catalog returns the catalog this evaluator resolves against. Registering on
// it extends the evaluator without touching existing operations.
func (e *Evaluator) Catalog() *operation.Catalog {
	return e.catalog
}

// SupportedOperations returns the sorted canonical names this evaluator can
// currently resolve.
func (e *Evaluator) SupportedOperations() []string {
	return e.catalog.Names()
}

// Supports reports whether the evaluator can resolve the given name.
func (e *Evaluator) Supports(name string) bool {
	return e.catalog.Has(name)
}

// Evaluate resolves name in the catalog and applies it to (a, b).
// Resolution failures ([operation.ErrUnknownOperation]) and application
// failures ([operation.ErrDivisionByZero]) are returned unchanged. There are
// no other side effects beyond the optional span and history record.
func (e *Evaluator) Evaluate(ctx context.Context, a, b float64, name string) (float64, error) {
	result, err := e.EvaluateRequest(ctx, Request{A: a, B: b, Operation: name})
	return result.Value, err
}

// EvaluateRequest evaluates req and returns the full [Result].
func (e *Evaluator) EvaluateRequest(ctx context.Context, req Request) (Result, error) {
	if e.obs != nil {
		var span observability.Span
		ctx, span = e.obs.StartSpan(ctx, "calc.evaluate",
			observability.String(observability.AttrOperationName, req.Operation),
			observability.Float64(observability.AttrOperandA, req.A),
			observability.Float64(observability.AttrOperandB, req.B),
		)
		defer span.End()
	}

	result := Result{Request: req}

	op, err := e.catalog.Resolve(req.Operation)
	if err != nil {
		e.recordError(ctx, err)
		return result, err
	}

	start := time.Now()
	value, err := op.Apply(ctx, req.A, req.B)
	result.Duration = time.Since(start)
	if err != nil {
		e.recordError(ctx, err)
		return result, err
	}
	result.Value = value

	if span := observability.SpanFromContext(ctx); span != nil {
		span.SetAttributes(
			observability.Float64(observability.AttrOperationResult, value),
		)
		span.SetStatus(observability.StatusOK, "")
	}

	if e.history != nil {
		e.history.Append(ctx, history.Record{
			ID:          uuid.New(),
			A:           req.A,
			B:           req.B,
			Operation:   req.Operation,
			Value:       value,
			EvaluatedAt: time.Now(),
		})
	}

	return result, nil
}

// EvaluateJSON parses content as a JSON-encoded [Request] (repairing loose
// JSON when needed) and evaluates it. Parse errors are returned before any
// catalog lookup happens.
func (e *Evaluator) EvaluateJSON(ctx context.Context, content string) (Result, error) {
	req, err := parse.As[Request](content)
	if err != nil {
		return Result{}, err
	}
	return e.EvaluateRequest(ctx, req)
}

func (e *Evaluator) recordError(ctx context.Context, err error) {
	if span := observability.SpanFromContext(ctx); span != nil {
		span.RecordError(err)
		span.SetStatus(observability.StatusError, err.Error())
	}
}
