package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the binding the error occurred
type Phase string

const (
	PhaseResolve  Phase = "resolve"  // symbol lookup
	PhaseDispatch Phase = "dispatch" // foreign call construction
	PhaseScope    Phase = "scope"    // scope stack operations
	PhaseHandle   Phase = "handle"   // scoped handle access
	PhaseLoad     Phase = "load"     // library loading
	PhaseEntry    Phase = "entry"    // module bootstrap
)

// Kind categorizes the error
type Kind string

const (
	KindSymbolNotFound  Kind = "symbol_not_found"
	KindNullAddress     Kind = "null_address"
	KindOutOfScope      Kind = "out_of_scope"
	KindScopeClosed     Kind = "scope_closed"
	KindScopeOrder      Kind = "scope_order"
	KindInvalidArgument Kind = "invalid_argument"
	KindUnsupported     Kind = "unsupported"
	KindNotInitialized  Kind = "not_initialized"
	KindStatus          Kind = "status"
	KindPanic           Kind = "panic"
)

// Sentinels for errors.Is. They carry no phase, so they match by kind alone.
var (
	ErrSymbolNotFound  = &Error{Kind: KindSymbolNotFound}
	ErrNullAddress     = &Error{Kind: KindNullAddress}
	ErrOutOfScope      = &Error{Kind: KindOutOfScope}
	ErrScopeOrder      = &Error{Kind: KindScopeOrder}
	ErrScopeClosed     = &Error{Kind: KindScopeClosed}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrUnsupported     = &Error{Kind: KindUnsupported}
	ErrNotInitialized  = &Error{Kind: KindNotInitialized}
	ErrStatus          = &Error{Kind: KindStatus}
	ErrPanic           = &Error{Kind: KindPanic}
)

// Error is the structured error type used throughout the binding
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Symbol string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Symbol != "" {
		b.WriteString(" (")
		b.WriteString(e.Symbol)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// A target without a phase matches on kind alone.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return (t.Phase == "" || e.Phase == t.Phase) && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Symbol sets the export or operation name
func (b *Builder) Symbol(name string) *Builder {
	b.err.Symbol = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// SymbolNotFound creates a missing-export error
func SymbolNotFound(name string, cause error) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindSymbolNotFound,
		Symbol: name,
		Detail: "export not present in library",
		Cause:  cause,
	}
}

// NullAddress creates an error for a call through an unbound address
func NullAddress(name string) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindNullAddress,
		Symbol: name,
		Detail: "resolved address is null",
	}
}

// OutOfScope creates an error for an operation with no current scope
func OutOfScope(what string) *Error {
	return &Error{
		Phase:  PhaseScope,
		Kind:   KindOutOfScope,
		Detail: fmt.Sprintf("%s requires an open scope", what),
	}
}

// ScopeOrder creates an error for a non-LIFO close
func ScopeOrder(closing, current uint64) *Error {
	return &Error{
		Phase:  PhaseScope,
		Kind:   KindScopeOrder,
		Detail: fmt.Sprintf("scope %d closed while scope %d is current", closing, current),
		Value:  closing,
	}
}

// ScopeClosed creates an error for a handle used after its scope closed
func ScopeClosed(generation uint64) *Error {
	return &Error{
		Phase:  PhaseHandle,
		Kind:   KindScopeClosed,
		Detail: fmt.Sprintf("owning scope %d is closed", generation),
		Value:  generation,
	}
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidArgument,
		Detail: detail,
	}
}

// NullHandle creates the error for a zero handle where a live one is required
func NullHandle(category string) *Error {
	return &Error{
		Phase:  PhaseHandle,
		Kind:   KindInvalidArgument,
		Detail: fmt.Sprintf("null %s handle", category),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// NotInitialized creates a not-initialized error
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// Load creates a library loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidArgument,
		Detail: detail,
		Cause:  cause,
	}
}

// Status wraps a non-OK host status returned by symbol. The dispatch core
// returns statuses as values; helper layers use this to report them as
// errors. The status stays reachable as the cause.
func Status(phase Phase, symbol string, status error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindStatus,
		Symbol: symbol,
		Cause:  status,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// MissingSymbolsError is returned when preloading finds absent exports
type MissingSymbolsError struct {
	Symbols []string
}

// NewMissingSymbolsError creates an error from a list of export names
func NewMissingSymbolsError(symbols []string) *MissingSymbolsError {
	return &MissingSymbolsError{Symbols: append([]string(nil), symbols...)}
}

func (e *MissingSymbolsError) Error() string {
	if len(e.Symbols) == 0 {
		return "[resolve] symbol_not_found: no symbols specified"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("missing %d export(s):\n", len(e.Symbols)))

	// Group by prefix so node_api_* additions stand apart from napi_*
	byPrefix := make(map[string][]string)
	var order []string
	for _, s := range e.Symbols {
		p := symbolPrefix(s)
		if _, exists := byPrefix[p]; !exists {
			order = append(order, p)
		}
		byPrefix[p] = append(byPrefix[p], s)
	}

	for _, p := range order {
		b.WriteString("\n  ")
		b.WriteString(p)
		b.WriteString(":\n")
		for _, s := range byPrefix[p] {
			b.WriteString("    - ")
			b.WriteString(s)
			b.WriteByte('\n')
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// Is reports whether target matches this error type
func (e *MissingSymbolsError) Is(target error) bool {
	if _, ok := target.(*MissingSymbolsError); ok {
		return true
	}
	return target == ErrSymbolNotFound
}

func symbolPrefix(name string) string {
	if strings.HasPrefix(name, "node_api_") {
		return "node_api"
	}
	if p, _, found := strings.Cut(name, "_"); found {
		return p
	}
	return name
}
