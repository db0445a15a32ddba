// Package errors provides structured error types for the remote-mount library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: the remote id, the bundle
// URL, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLoad, errors.KindTimeout).
//		Remote("user-card").
//		Detail("load did not settle within 10s").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotRegistered("user-card")
//	err := errors.LoadFailed("user-card", url, cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
