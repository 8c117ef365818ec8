package napi

import (
	"unsafe"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/dispatch"
)

func (a *API) OpenHandleScope(env abi.Env, result *abi.HandleScope) (abi.Status, error) {
	return dispatch.V0O1(a.d, int(OpenHandleScope), env, result)
}

func (a *API) CloseHandleScope(env abi.Env, scope abi.HandleScope) (abi.Status, error) {
	return dispatch.V1O0(a.d, int(CloseHandleScope), env, scope)
}

func (a *API) OpenEscapableHandleScope(env abi.Env, result *abi.EscapableHandleScope) (abi.Status, error) {
	return dispatch.V0O1(a.d, int(OpenEscapableHandleScope), env, result)
}

func (a *API) CloseEscapableHandleScope(env abi.Env, scope abi.EscapableHandleScope) (abi.Status, error) {
	return dispatch.V1O0(a.d, int(CloseEscapableHandleScope), env, scope)
}

// EscapeHandle promotes escapee to the parent scope. The host allows it
// once per escapable scope.
func (a *API) EscapeHandle(env abi.Env, scope abi.EscapableHandleScope, escapee abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V2O1(a.d, int(EscapeHandle), env, scope, escapee, result)
}

func (a *API) IsArray(env abi.Env, value abi.Value, result *bool) (abi.Status, error) {
	return isCheck(a, IsArray, env, value, result)
}

func (a *API) GetArrayLength(env abi.Env, value abi.Value, result *uint32) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(GetArrayLength), env, value, result)
}

// CreateArraybuffer allocates length bytes in the host. data receives the
// backing store address and may be nil.
func (a *API) CreateArraybuffer(env abi.Env, length uintptr, data *uintptr, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O2(a.d, int(CreateArraybuffer), env, length, data, result)
}

// CreateExternalArraybuffer exposes memory the caller owns. It must not be
// Go memory.
func (a *API) CreateExternalArraybuffer(env abi.Env, data, length, finalize, hint uintptr, result *abi.Value) (abi.Status, error) {
	return dispatch.V4O1(a.d, int(CreateExternalArraybuffer), env, data, length, finalize, hint, result)
}

func (a *API) GetArraybufferInfo(env abi.Env, value abi.Value, data, length *uintptr) (abi.Status, error) {
	return dispatch.V1O2(a.d, int(GetArraybufferInfo), env, value, data, length)
}

func (a *API) IsArraybuffer(env abi.Env, value abi.Value, result *bool) (abi.Status, error) {
	return isCheck(a, IsArraybuffer, env, value, result)
}

func (a *API) DetachArraybuffer(env abi.Env, value abi.Value) (abi.Status, error) {
	return dispatch.V1O0(a.d, int(DetachArraybuffer), env, value)
}

func (a *API) IsDetachedArraybuffer(env abi.Env, value abi.Value, result *bool) (abi.Status, error) {
	return isCheck(a, IsDetachedArraybuffer, env, value, result)
}

func (a *API) CreateTypedarray(env abi.Env, typ abi.TypedArrayType, length uintptr, arraybuffer abi.Value, byteOffset uintptr, result *abi.Value) (abi.Status, error) {
	return dispatch.V4O1(a.d, int(CreateTypedarray), env, typ, length, arraybuffer, byteOffset, result)
}

// GetTypedarrayInfo reads the layout of a typed array. Any out may be nil.
func (a *API) GetTypedarrayInfo(env abi.Env, value abi.Value, typ *abi.TypedArrayType, length, data *uintptr, arraybuffer *abi.Value, byteOffset *uintptr) (abi.Status, error) {
	return dispatch.V1O5(a.d, int(GetTypedarrayInfo), env, value, typ, length, data, arraybuffer, byteOffset)
}

func (a *API) IsTypedarray(env abi.Env, value abi.Value, result *bool) (abi.Status, error) {
	return isCheck(a, IsTypedarray, env, value, result)
}

func (a *API) CreateDataview(env abi.Env, length uintptr, arraybuffer abi.Value, byteOffset uintptr, result *abi.Value) (abi.Status, error) {
	return dispatch.V3O1(a.d, int(CreateDataview), env, length, arraybuffer, byteOffset, result)
}

func (a *API) GetDataviewInfo(env abi.Env, value abi.Value, length, data *uintptr, arraybuffer *abi.Value, byteOffset *uintptr) (abi.Status, error) {
	return dispatch.V1O4(a.d, int(GetDataviewInfo), env, value, length, data, arraybuffer, byteOffset)
}

func (a *API) IsDataview(env abi.Env, value abi.Value, result *bool) (abi.Status, error) {
	return isCheck(a, IsDataview, env, value, result)
}

func (a *API) CreateBuffer(env abi.Env, size uintptr, data *uintptr, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O2(a.d, int(CreateBuffer), env, size, data, result)
}

// CreateBufferCopy copies src into a new host Buffer.
func (a *API) CreateBufferCopy(env abi.Env, src []byte, resultData *uintptr, result *abi.Value) (abi.Status, error) {
	return dispatch.V2O2(a.d, int(CreateBufferCopy), env, uintptr(len(src)), unsafe.Pointer(unsafe.SliceData(src)), resultData, result)
}

func (a *API) CreateExternalBuffer(env abi.Env, length, data, finalize, hint uintptr, result *abi.Value) (abi.Status, error) {
	return dispatch.V4O1(a.d, int(CreateExternalBuffer), env, length, data, finalize, hint, result)
}

func (a *API) GetBufferInfo(env abi.Env, value abi.Value, data, length *uintptr) (abi.Status, error) {
	return dispatch.V1O2(a.d, int(GetBufferInfo), env, value, data, length)
}

func (a *API) IsBuffer(env abi.Env, value abi.Value, result *bool) (abi.Status, error) {
	return isCheck(a, IsBuffer, env, value, result)
}

// CreateDate creates a Date from milliseconds since the Unix epoch.
func (a *API) CreateDate(env abi.Env, msec float64, result *abi.Value) (abi.Status, error) {
	return dispatch.F64O1(a.d, int(CreateDate), env, msec, result)
}

func (a *API) GetDateValue(env abi.Env, value abi.Value, result *float64) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(GetDateValue), env, value, result)
}

func (a *API) IsDate(env abi.Env, value abi.Value, result *bool) (abi.Status, error) {
	return isCheck(a, IsDate, env, value, result)
}

func (a *API) CreatePromise(env abi.Env, deferred *abi.Deferred, promise *abi.Value) (abi.Status, error) {
	return dispatch.V0O2(a.d, int(CreatePromise), env, deferred, promise)
}

// ResolveDeferred settles the promise. The deferred is consumed even on
// failure.
func (a *API) ResolveDeferred(env abi.Env, deferred abi.Deferred, resolution abi.Value) (abi.Status, error) {
	return dispatch.V2O0(a.d, int(ResolveDeferred), env, deferred, resolution)
}

func (a *API) RejectDeferred(env abi.Env, deferred abi.Deferred, rejection abi.Value) (abi.Status, error) {
	return dispatch.V2O0(a.d, int(RejectDeferred), env, deferred, rejection)
}

func (a *API) IsPromise(env abi.Env, value abi.Value, result *bool) (abi.Status, error) {
	return isCheck(a, IsPromise, env, value, result)
}
