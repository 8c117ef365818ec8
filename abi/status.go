package abi

import "strconv"

// Status is the napi_status result every host operation returns.
type Status int32

const (
	OK Status = iota
	InvalidArg
	ObjectExpected
	StringExpected
	NameExpected
	FunctionExpected
	NumberExpected
	BooleanExpected
	ArrayExpected
	GenericFailure
	PendingException
	Cancelled
	EscapeCalledTwice
	HandleScopeMismatch
	CallbackScopeMismatch
	QueueFull
	Closing
	BigintExpected
	DateExpected
	ArrayBufferExpected
	DetachableArrayBufferExpected
	WouldDeadlock
	NoExternalBuffersAllowed
	CannotRunJS
)

var statusNames = [...]string{
	OK:                            "ok",
	InvalidArg:                    "invalid_arg",
	ObjectExpected:                "object_expected",
	StringExpected:                "string_expected",
	NameExpected:                  "name_expected",
	FunctionExpected:              "function_expected",
	NumberExpected:                "number_expected",
	BooleanExpected:               "boolean_expected",
	ArrayExpected:                 "array_expected",
	GenericFailure:                "generic_failure",
	PendingException:              "pending_exception",
	Cancelled:                     "cancelled",
	EscapeCalledTwice:             "escape_called_twice",
	HandleScopeMismatch:           "handle_scope_mismatch",
	CallbackScopeMismatch:         "callback_scope_mismatch",
	QueueFull:                     "queue_full",
	Closing:                       "closing",
	BigintExpected:                "bigint_expected",
	DateExpected:                  "date_expected",
	ArrayBufferExpected:           "arraybuffer_expected",
	DetachableArrayBufferExpected: "detachable_arraybuffer_expected",
	WouldDeadlock:                 "would_deadlock",
	NoExternalBuffersAllowed:      "no_external_buffers_allowed",
	CannotRunJS:                   "cannot_run_js",
}

// String returns the host name of the status without the napi_ prefix.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// Error lets a status travel as an error in consumer code.
func (s Status) Error() string {
	return "napi_" + s.String()
}

// Err returns nil for OK and the status itself otherwise.
func (s Status) Err() error {
	if s == OK {
		return nil
	}
	return s
}

// Known reports whether s is a member of the enumeration.
func (s Status) Known() bool {
	return s >= 0 && int(s) < len(statusNames)
}
