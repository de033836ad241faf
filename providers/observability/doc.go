// Package observability defines the pluggable tracing and logging surface
// used across calcgo. The engine and operations emit span events through the
// [Span] found in the request context; when no provider is configured the
// emission paths are nil-checked no-ops, so the library stays silent by
// default.
//
// The slog subpackage provides the standard provider, backed by log/slog.
package observability
