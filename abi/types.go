package abi

import "unsafe"

// Handle is satisfied by every opaque handle category the host issues.
// The zero value of each is the null handle.
type Handle interface {
	~uintptr
	Category() string
}

// Opaque handle categories. The host owns every referent; these only
// carry the identifier.
type (
	Env                  uintptr
	Value                uintptr
	Ref                  uintptr
	HandleScope          uintptr
	EscapableHandleScope uintptr
	CallbackInfo         uintptr
	Deferred             uintptr
	AsyncWork            uintptr
	AsyncContext         uintptr
	CallbackScope        uintptr
)

func (Env) Category() string                  { return "env" }
func (Value) Category() string                { return "value" }
func (Ref) Category() string                  { return "reference" }
func (HandleScope) Category() string          { return "handle scope" }
func (EscapableHandleScope) Category() string { return "escapable handle scope" }
func (CallbackInfo) Category() string         { return "callback info" }
func (Deferred) Category() string             { return "deferred" }
func (AsyncWork) Category() string            { return "async work" }
func (AsyncContext) Category() string         { return "async context" }
func (CallbackScope) Category() string        { return "callback scope" }

// AutoLength is NAPI_AUTO_LENGTH: the maximum pointer-sized unsigned value,
// meaning "NUL-terminated, length unknown". The typed facade always passes
// explicit lengths; AutoLength is for raw calls that hand over C strings.
const AutoLength = ^uintptr(0)

// Bool is the one-byte boolean the host reads and writes.
type Bool uint8

// BoolByte encodes a Go bool for the host.
func BoolByte(b bool) Bool {
	if b {
		return 1
	}
	return 0
}

// True reports whether the host wrote a nonzero byte.
func (b Bool) True() bool { return b != 0 }

// ValueType is napi_valuetype.
type ValueType int32

const (
	Undefined ValueType = iota
	Null
	Boolean
	Number
	String
	Symbol
	Object
	Function
	External
	BigInt
)

var valueTypeNames = [...]string{"undefined", "null", "boolean", "number", "string", "symbol", "object", "function", "external", "bigint"}

func (t ValueType) String() string {
	if t >= 0 && int(t) < len(valueTypeNames) {
		return valueTypeNames[t]
	}
	return "unknown"
}

// TypedArrayType is napi_typedarray_type.
type TypedArrayType int32

const (
	Int8Array TypedArrayType = iota
	Uint8Array
	Uint8ClampedArray
	Int16Array
	Uint16Array
	Int32Array
	Uint32Array
	Float32Array
	Float64Array
	BigInt64Array
	BigUint64Array
)

// ElementSize returns the byte width of one element.
func (t TypedArrayType) ElementSize() int {
	switch t {
	case Int8Array, Uint8Array, Uint8ClampedArray:
		return 1
	case Int16Array, Uint16Array:
		return 2
	case Int32Array, Uint32Array, Float32Array:
		return 4
	case Float64Array, BigInt64Array, BigUint64Array:
		return 8
	}
	return 0
}

// PropertyAttributes is napi_property_attributes.
type PropertyAttributes int32

const (
	PropertyDefault      PropertyAttributes = 0
	PropertyWritable     PropertyAttributes = 1 << 0
	PropertyEnumerable   PropertyAttributes = 1 << 1
	PropertyConfigurable PropertyAttributes = 1 << 2
	PropertyStatic       PropertyAttributes = 1 << 10

	PropertyDefaultMethod     = PropertyWritable | PropertyConfigurable
	PropertyDefaultJSProperty = PropertyWritable | PropertyEnumerable | PropertyConfigurable
)

// KeyCollectionMode is napi_key_collection_mode.
type KeyCollectionMode int32

const (
	KeyIncludePrototypes KeyCollectionMode = iota
	KeyOwnOnly
)

// KeyFilter is napi_key_filter.
type KeyFilter int32

const (
	KeyAllProperties KeyFilter = 0
	KeyWritable      KeyFilter = 1 << 0
	KeyEnumerable    KeyFilter = 1 << 1
	KeyConfigurable  KeyFilter = 1 << 2
	KeySkipStrings   KeyFilter = 1 << 3
	KeySkipSymbols   KeyFilter = 1 << 4
)

// KeyConversion is napi_key_conversion.
type KeyConversion int32

const (
	KeyKeepNumbers KeyConversion = iota
	KeyNumbersToStrings
)

// PropertyDescriptor mirrors napi_property_descriptor field for field.
type PropertyDescriptor struct {
	UTF8Name   uintptr // const char*
	Name       Value
	Method     uintptr // napi_callback
	Getter     uintptr
	Setter     uintptr
	Value      Value
	Attributes PropertyAttributes
	Data       uintptr
}

// ExtendedErrorInfo mirrors napi_extended_error_info.
type ExtendedErrorInfo struct {
	ErrorMessage    uintptr // const char*
	EngineReserved  uintptr
	EngineErrorCode uint32
	ErrorCode       Status
}

// Message copies the host error message, which may be absent.
func (e *ExtendedErrorInfo) Message() string {
	return GoString(e.ErrorMessage)
}

// TypeTag mirrors napi_type_tag.
type TypeTag struct {
	Lower uint64
	Upper uint64
}

// NodeVersion mirrors napi_node_version.
type NodeVersion struct {
	Major   uint32
	Minor   uint32
	Patch   uint32
	Release uintptr // const char*
}

// ModuleVersion is NAPI_MODULE_VERSION.
const ModuleVersion = 1

// Module mirrors napi_module as consumed by napi_module_register.
type Module struct {
	Version      int32
	Flags        uint32
	Filename     uintptr // const char*
	RegisterFunc uintptr // napi_addon_register_func
	ModName      uintptr // const char*
	Priv         uintptr
	Reserved     [4]uintptr
}

// GoString copies a NUL-terminated host string. A zero pointer yields "".
func GoString(p uintptr) string {
	if p == 0 {
		return ""
	}
	ptr := *(*unsafe.Pointer)(unsafe.Pointer(&p))
	n := 0
	for *(*byte)(unsafe.Add(ptr, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(ptr), n))
}
