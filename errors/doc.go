// Package errors provides structured error types for the napi-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the export name, a detail message, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindSymbolNotFound).
//		Symbol("napi_create_int32").
//		Detail("export not present in library").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.SymbolNotFound("napi_create_int32", cause)
//	err := errors.ScopeClosed(generation)
//
// Local precondition failures (missing symbols, closed scopes, null handles)
// are always *Error values. Host status codes are not errors at this layer;
// they are returned as abi.Status data.
//
// All errors implement the standard error interface and support errors.Is/As:
//
//	if errors.Is(err, errors.ErrScopeClosed) { ... }
package errors
