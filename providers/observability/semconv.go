package observability

// Semantic conventions for observability attributes.
// These constants define standard attribute names to ensure consistency
// across different components of the system.

// --- Evaluation Attributes ---

const (
	// AttrOperationName is the canonical name of the operation being applied
	AttrOperationName = "calc.operation"

	// AttrOperandA is the first operand of the evaluation
	AttrOperandA = "calc.operand.a"

	// AttrOperandB is the second operand of the evaluation
	AttrOperandB = "calc.operand.b"

	// AttrOperationResult is the numeric result of a successful application
	AttrOperationResult = "calc.result"

	// AttrOperationDuration is the wall-clock time spent applying the operation
	AttrOperationDuration = "calc.duration"

	// AttrCatalogSize is the number of operations bound in the catalog
	AttrCatalogSize = "calc.catalog.size"
)

// --- Span Events ---

const (
	// EventApplyStart marks the start of a single operation application
	EventApplyStart = "calc.apply.start"

	// EventApplyEnd marks the end of a single operation application
	EventApplyEnd = "calc.apply.end"

	// EventHistoryAppend marks a record being appended to the history store
	EventHistoryAppend = "calc.history.append"

	// EventHistoryClear marks the history store being cleared
	EventHistoryClear = "calc.history.clear"
)

// --- History Attributes ---

const (
	// AttrHistoryRecordID is the unique identifier of a history record
	AttrHistoryRecordID = "calc.history.record.id"

	// AttrHistoryTotalRecords is the running total of records in the store
	AttrHistoryTotalRecords = "calc.history.total"
)
