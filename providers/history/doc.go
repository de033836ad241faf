// Package history defines the evaluation-history capability: a store of
// completed evaluations the engine can append to when configured with one.
// The inmemory subpackage provides the standard implementation.
package history
