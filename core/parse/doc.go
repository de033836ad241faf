// Package parse converts loosely formatted JSON into typed values. Requests
// arriving from the command line or from generated text frequently use single
// quotes, unquoted keys or trailing commas; this package tries a strict
// unmarshal first and, when that fails, repairs the input once with
// jsonrepair before giving up with a clear error.
//
// The main entry point is the generic [As] function.
package parse
