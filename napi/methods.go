package napi

import (
	"strings"

	"github.com/wippyai/napi-runtime/abi"
)

// Method identifies one host export. Its value is the dispatch slot.
type Method int

const (
	// Scalars
	GetUndefined Method = iota
	GetNull
	GetGlobal
	GetBoolean
	CreateObject
	CreateArray
	CreateArrayWithLength
	CreateDouble
	CreateInt32
	CreateUint32
	CreateInt64
	CreateStringLatin1
	CreateStringUTF8
	CreateStringUTF16
	CreateSymbol
	SymbolFor
	CreateBigintInt64
	CreateBigintUint64
	CreateBigintWords

	// Errors
	CreateError
	CreateTypeError
	CreateRangeError
	CreateSyntaxError
	Throw
	ThrowError
	ThrowTypeError
	ThrowRangeError
	ThrowSyntaxError
	IsError
	IsExceptionPending
	GetAndClearLastException
	GetLastErrorInfo
	FatalException

	// Values
	GetValueDouble
	GetValueInt32
	GetValueUint32
	GetValueInt64
	GetValueBool
	GetValueStringLatin1
	GetValueStringUTF8
	GetValueStringUTF16
	GetValueBigintInt64
	GetValueBigintUint64
	GetValueBigintWords
	Typeof
	CoerceToBool
	CoerceToNumber
	CoerceToObject
	CoerceToString
	Instanceof
	StrictEquals

	// Objects
	GetPrototype
	SetProperty
	GetProperty
	HasProperty
	DeleteProperty
	HasOwnProperty
	SetNamedProperty
	GetNamedProperty
	HasNamedProperty
	SetElement
	GetElement
	HasElement
	DeleteElement
	GetPropertyNames
	GetAllPropertyNames
	DefineProperties
	ObjectFreeze
	ObjectSeal
	TypeTagObject
	CheckObjectTypeTag

	// Functions
	CreateFunction
	CallFunction
	NewInstance
	GetCbInfo
	GetNewTarget
	DefineClass

	// Wrap and externals
	Wrap
	Unwrap
	RemoveWrap
	CreateExternal
	GetValueExternal
	AddFinalizer

	// References
	CreateReference
	DeleteReference
	ReferenceRef
	ReferenceUnref
	GetReferenceValue

	// Handle scopes
	OpenHandleScope
	CloseHandleScope
	OpenEscapableHandleScope
	CloseEscapableHandleScope
	EscapeHandle

	// Arrays and buffers
	IsArray
	GetArrayLength
	CreateArraybuffer
	CreateExternalArraybuffer
	GetArraybufferInfo
	IsArraybuffer
	DetachArraybuffer
	IsDetachedArraybuffer
	CreateTypedarray
	GetTypedarrayInfo
	IsTypedarray
	CreateDataview
	GetDataviewInfo
	IsDataview
	CreateBuffer
	CreateBufferCopy
	CreateExternalBuffer
	GetBufferInfo
	IsBuffer

	// Date
	CreateDate
	GetDateValue
	IsDate

	// Promise
	CreatePromise
	ResolveDeferred
	RejectDeferred
	IsPromise

	// Script
	RunScript

	// Environment
	GetVersion
	GetNodeVersion
	AdjustExternalMemory
	SetInstanceData
	GetInstanceData
	AddEnvCleanupHook
	RemoveEnvCleanupHook

	// Async
	CreateAsyncWork
	DeleteAsyncWork
	QueueAsyncWork
	CancelAsyncWork
	AsyncInit
	AsyncDestroy
	MakeCallback
	OpenCallbackScope
	CloseCallbackScope

	// Registration
	ModuleRegister

	methodCount
)

type methodInfo struct {
	Export    string
	Signature abi.Signature
}

const (
	w    = abi.ArgWord
	i32  = abi.ArgI32
	i64  = abi.ArgI64
	bl   = abi.ArgBool
	f64  = abi.ArgF64
	ptr  = abi.ArgPtr
	txt  = abi.ArgText
	ow   = abi.OutWord
	oi32 = abi.OutI32
	ou32 = abi.OutU32
	oi64 = abi.OutI64
	of64 = abi.OutF64
	obl  = abi.OutBool
	iow  = abi.InOutWord
)

var sig = abi.Sig

var methodTable = [methodCount]methodInfo{
	GetUndefined:          {"napi_get_undefined", sig(ow)},
	GetNull:               {"napi_get_null", sig(ow)},
	GetGlobal:             {"napi_get_global", sig(ow)},
	GetBoolean:            {"napi_get_boolean", sig(bl, ow)},
	CreateObject:          {"napi_create_object", sig(ow)},
	CreateArray:           {"napi_create_array", sig(ow)},
	CreateArrayWithLength: {"napi_create_array_with_length", sig(w, ow)},
	CreateDouble:          {"napi_create_double", sig(f64, ow)},
	CreateInt32:           {"napi_create_int32", sig(i32, ow)},
	CreateUint32:          {"napi_create_uint32", sig(i32, ow)},
	CreateInt64:           {"napi_create_int64", sig(i64, ow)},
	CreateStringLatin1:    {"napi_create_string_latin1", sig(ptr, w, ow)},
	CreateStringUTF8:      {"napi_create_string_utf8", sig(ptr, w, ow)},
	CreateStringUTF16:     {"napi_create_string_utf16", sig(ptr, w, ow)},
	CreateSymbol:          {"napi_create_symbol", sig(w, ow)},
	SymbolFor:             {"node_api_symbol_for", sig(ptr, w, ow)},
	CreateBigintInt64:     {"napi_create_bigint_int64", sig(i64, ow)},
	CreateBigintUint64:    {"napi_create_bigint_uint64", sig(i64, ow)},
	CreateBigintWords:     {"napi_create_bigint_words", sig(i32, w, ptr, ow)},

	CreateError:              {"napi_create_error", sig(w, w, ow)},
	CreateTypeError:          {"napi_create_type_error", sig(w, w, ow)},
	CreateRangeError:         {"napi_create_range_error", sig(w, w, ow)},
	CreateSyntaxError:        {"node_api_create_syntax_error", sig(w, w, ow)},
	Throw:                    {"napi_throw", sig(w)},
	ThrowError:               {"napi_throw_error", sig(txt, txt)},
	ThrowTypeError:           {"napi_throw_type_error", sig(txt, txt)},
	ThrowRangeError:          {"napi_throw_range_error", sig(txt, txt)},
	ThrowSyntaxError:         {"node_api_throw_syntax_error", sig(txt, txt)},
	IsError:                  {"napi_is_error", sig(w, obl)},
	IsExceptionPending:       {"napi_is_exception_pending", sig(obl)},
	GetAndClearLastException: {"napi_get_and_clear_last_exception", sig(ow)},
	GetLastErrorInfo:         {"napi_get_last_error_info", sig(ow)},
	FatalException:           {"napi_fatal_exception", sig(w)},

	GetValueDouble:       {"napi_get_value_double", sig(w, of64)},
	GetValueInt32:        {"napi_get_value_int32", sig(w, oi32)},
	GetValueUint32:       {"napi_get_value_uint32", sig(w, ou32)},
	GetValueInt64:        {"napi_get_value_int64", sig(w, oi64)},
	GetValueBool:         {"napi_get_value_bool", sig(w, obl)},
	GetValueStringLatin1: {"napi_get_value_string_latin1", sig(w, ptr, w, ow)},
	GetValueStringUTF8:   {"napi_get_value_string_utf8", sig(w, ptr, w, ow)},
	GetValueStringUTF16:  {"napi_get_value_string_utf16", sig(w, ptr, w, ow)},
	GetValueBigintInt64:  {"napi_get_value_bigint_int64", sig(w, oi64, obl)},
	GetValueBigintUint64: {"napi_get_value_bigint_uint64", sig(w, oi64, obl)},
	GetValueBigintWords:  {"napi_get_value_bigint_words", sig(w, oi32, iow, ptr)},
	Typeof:               {"napi_typeof", sig(w, oi32)},
	CoerceToBool:         {"napi_coerce_to_bool", sig(w, ow)},
	CoerceToNumber:       {"napi_coerce_to_number", sig(w, ow)},
	CoerceToObject:       {"napi_coerce_to_object", sig(w, ow)},
	CoerceToString:       {"napi_coerce_to_string", sig(w, ow)},
	Instanceof:           {"napi_instanceof", sig(w, w, obl)},
	StrictEquals:         {"napi_strict_equals", sig(w, w, obl)},

	GetPrototype:        {"napi_get_prototype", sig(w, ow)},
	SetProperty:         {"napi_set_property", sig(w, w, w)},
	GetProperty:         {"napi_get_property", sig(w, w, ow)},
	HasProperty:         {"napi_has_property", sig(w, w, obl)},
	DeleteProperty:      {"napi_delete_property", sig(w, w, obl)},
	HasOwnProperty:      {"napi_has_own_property", sig(w, w, obl)},
	SetNamedProperty:    {"napi_set_named_property", sig(w, txt, w)},
	GetNamedProperty:    {"napi_get_named_property", sig(w, txt, ow)},
	HasNamedProperty:    {"napi_has_named_property", sig(w, txt, obl)},
	SetElement:          {"napi_set_element", sig(w, i32, w)},
	GetElement:          {"napi_get_element", sig(w, i32, ow)},
	HasElement:          {"napi_has_element", sig(w, i32, obl)},
	DeleteElement:       {"napi_delete_element", sig(w, i32, obl)},
	GetPropertyNames:    {"napi_get_property_names", sig(w, ow)},
	GetAllPropertyNames: {"napi_get_all_property_names", sig(w, i32, i32, i32, ow)},
	DefineProperties:    {"napi_define_properties", sig(w, w, ptr)},
	ObjectFreeze:        {"napi_object_freeze", sig(w)},
	ObjectSeal:          {"napi_object_seal", sig(w)},
	TypeTagObject:       {"napi_type_tag_object", sig(w, ptr)},
	CheckObjectTypeTag:  {"napi_check_object_type_tag", sig(w, ptr, obl)},

	CreateFunction: {"napi_create_function", sig(ptr, w, w, w, ow)},
	CallFunction:   {"napi_call_function", sig(w, w, w, ptr, ow)},
	NewInstance:    {"napi_new_instance", sig(w, w, ptr, ow)},
	GetCbInfo:      {"napi_get_cb_info", sig(w, iow, ptr, ow, ow)},
	GetNewTarget:   {"napi_get_new_target", sig(w, ow)},
	DefineClass:    {"napi_define_class", sig(ptr, w, w, w, w, ptr, ow)},

	Wrap:             {"napi_wrap", sig(w, w, w, w, ow)},
	Unwrap:           {"napi_unwrap", sig(w, ow)},
	RemoveWrap:       {"napi_remove_wrap", sig(w, ow)},
	CreateExternal:   {"napi_create_external", sig(w, w, w, ow)},
	GetValueExternal: {"napi_get_value_external", sig(w, ow)},
	AddFinalizer:     {"napi_add_finalizer", sig(w, w, w, w, ow)},

	CreateReference:   {"napi_create_reference", sig(w, i32, ow)},
	DeleteReference:   {"napi_delete_reference", sig(w)},
	ReferenceRef:      {"napi_reference_ref", sig(w, ou32)},
	ReferenceUnref:    {"napi_reference_unref", sig(w, ou32)},
	GetReferenceValue: {"napi_get_reference_value", sig(w, ow)},

	OpenHandleScope:           {"napi_open_handle_scope", sig(ow)},
	CloseHandleScope:          {"napi_close_handle_scope", sig(w)},
	OpenEscapableHandleScope:  {"napi_open_escapable_handle_scope", sig(ow)},
	CloseEscapableHandleScope: {"napi_close_escapable_handle_scope", sig(w)},
	EscapeHandle:              {"napi_escape_handle", sig(w, w, ow)},

	IsArray:                   {"napi_is_array", sig(w, obl)},
	GetArrayLength:            {"napi_get_array_length", sig(w, ou32)},
	CreateArraybuffer:         {"napi_create_arraybuffer", sig(w, ow, ow)},
	CreateExternalArraybuffer: {"napi_create_external_arraybuffer", sig(w, w, w, w, ow)},
	GetArraybufferInfo:        {"napi_get_arraybuffer_info", sig(w, ow, ow)},
	IsArraybuffer:             {"napi_is_arraybuffer", sig(w, obl)},
	DetachArraybuffer:         {"napi_detach_arraybuffer", sig(w)},
	IsDetachedArraybuffer:     {"napi_is_detached_arraybuffer", sig(w, obl)},
	CreateTypedarray:          {"napi_create_typedarray", sig(i32, w, w, w, ow)},
	GetTypedarrayInfo:         {"napi_get_typedarray_info", sig(w, oi32, ow, ow, ow, ow)},
	IsTypedarray:              {"napi_is_typedarray", sig(w, obl)},
	CreateDataview:            {"napi_create_dataview", sig(w, w, w, ow)},
	GetDataviewInfo:           {"napi_get_dataview_info", sig(w, ow, ow, ow, ow)},
	IsDataview:                {"napi_is_dataview", sig(w, obl)},
	CreateBuffer:              {"napi_create_buffer", sig(w, ow, ow)},
	CreateBufferCopy:          {"napi_create_buffer_copy", sig(w, ptr, ow, ow)},
	CreateExternalBuffer:      {"napi_create_external_buffer", sig(w, w, w, w, ow)},
	GetBufferInfo:             {"napi_get_buffer_info", sig(w, ow, ow)},
	IsBuffer:                  {"napi_is_buffer", sig(w, obl)},

	CreateDate:   {"napi_create_date", sig(f64, ow)},
	GetDateValue: {"napi_get_date_value", sig(w, of64)},
	IsDate:       {"napi_is_date", sig(w, obl)},

	CreatePromise:   {"napi_create_promise", sig(ow, ow)},
	ResolveDeferred: {"napi_resolve_deferred", sig(w, w)},
	RejectDeferred:  {"napi_reject_deferred", sig(w, w)},
	IsPromise:       {"napi_is_promise", sig(w, obl)},

	RunScript: {"napi_run_script", sig(w, ow)},

	GetVersion:           {"napi_get_version", sig(ou32)},
	GetNodeVersion:       {"napi_get_node_version", sig(ow)},
	AdjustExternalMemory: {"napi_adjust_external_memory", sig(i64, oi64)},
	SetInstanceData:      {"napi_set_instance_data", sig(w, w, w)},
	GetInstanceData:      {"napi_get_instance_data", sig(ow)},
	AddEnvCleanupHook:    {"napi_add_env_cleanup_hook", sig(w, w)},
	RemoveEnvCleanupHook: {"napi_remove_env_cleanup_hook", sig(w, w)},

	CreateAsyncWork:    {"napi_create_async_work", sig(w, w, w, w, w, ow)},
	DeleteAsyncWork:    {"napi_delete_async_work", sig(w)},
	QueueAsyncWork:     {"napi_queue_async_work", sig(w)},
	CancelAsyncWork:    {"napi_cancel_async_work", sig(w)},
	AsyncInit:          {"napi_async_init", sig(w, w, ow)},
	AsyncDestroy:       {"napi_async_destroy", sig(w)},
	MakeCallback:       {"napi_make_callback", sig(w, w, w, w, ptr, ow)},
	OpenCallbackScope:  {"napi_open_callback_scope", sig(w, w, ow)},
	CloseCallbackScope: {"napi_close_callback_scope", sig(w)},

	ModuleRegister: {"napi_module_register", abi.RawSig(ptr)},
}

var (
	exportNames = func() []string {
		names := make([]string, methodCount)
		for m := Method(0); m < methodCount; m++ {
			names[m] = methodTable[m].Export
		}
		return names
	}()
	methodsByName = func() map[string]Method {
		idx := make(map[string]Method, 2*int(methodCount))
		for m := Method(0); m < methodCount; m++ {
			idx[methodTable[m].Export] = m
			idx[m.String()] = m
		}
		return idx
	}()
)

// Export returns the C symbol name, "" for an unknown method.
func (m Method) Export() string {
	if !m.Valid() {
		return ""
	}
	return methodTable[m].Export
}

// Signature returns the parameter layout after napi_env.
func (m Method) Signature() abi.Signature {
	if !m.Valid() {
		return abi.Signature{}
	}
	return methodTable[m].Signature
}

// String is the export without its napi_ or node_api_ prefix.
func (m Method) String() string {
	e := m.Export()
	if e == "" {
		return "unknown"
	}
	if s, ok := strings.CutPrefix(e, "napi_"); ok {
		return s
	}
	s, _ := strings.CutPrefix(e, "node_api_")
	return s
}

// Valid reports whether m names a declared operation.
func (m Method) Valid() bool {
	return m >= 0 && m < methodCount
}

// Methods returns every declared operation in table order.
func Methods() []Method {
	ms := make([]Method, methodCount)
	for i := range ms {
		ms[i] = Method(i)
	}
	return ms
}

// Exports returns the export names indexed by Method, the layout
// symbols.NewTable expects.
func Exports() []string {
	return append([]string(nil), exportNames...)
}

// LookupMethod finds a method by export name or short name.
func LookupMethod(name string) (Method, bool) {
	m, ok := methodsByName[name]
	return m, ok
}
