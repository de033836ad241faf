// Package inmemory provides a concurrency-safe, slice-backed implementation
// of the history.Store capability. Reads return copies, so callers can never
// mutate internal state through a returned slice.
package inmemory
