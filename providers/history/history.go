package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is one completed evaluation: the operands, the operation that was
// applied, the value it produced and when it happened.
type Record struct {
	ID          uuid.UUID `json:"id"`
	A           float64   `json:"a"`
	B           float64   `json:"b"`
	Operation   string    `json:"operation"`
	Value       float64   `json:"value"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// Store is the capability an engine needs to record evaluations. Only
// successful evaluations are recorded; failed ones surface their error to the
// caller and leave no trace here.
type Store interface {
	// Append stores a record at the end of the history.
	Append(ctx context.Context, record Record)

	// All returns a copy of every stored record, oldest first.
	All(ctx context.Context) ([]Record, error)

	// Count returns the number of records stored.
	Count(ctx context.Context) (int, error)

	// Clear removes all records.
	Clear(ctx context.Context)
}
