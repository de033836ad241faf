// Package operation defines the building blocks of the calcgo evaluation
// system: self-describing binary arithmetic operations and the catalog that
// resolves them by name.
//
// An operation is a named, pure function over two float64 operands. Operations
// are built with [New] and stored in a [Catalog]; the engine resolves them by
// canonical (lowercased) name and applies them. Adding a new operation kind is
// always a registration, never an edit to an existing operation or to the
// evaluator.
//
// The capability surface is split on purpose: [Documented] exposes metadata
// only, [Appliable] exposes execution only, and [Binary] combines the two for
// catalog storage. Callers should depend on the narrowest of the three that
// covers their need.
package operation
