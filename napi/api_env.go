package napi

import (
	"unsafe"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/dispatch"
)

// RunScript evaluates script, which must be a string value.
func (a *API) RunScript(env abi.Env, script abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(RunScript), env, script, result)
}

// GetVersion reports the highest Node-API version the host supports.
func (a *API) GetVersion(env abi.Env, result *uint32) (abi.Status, error) {
	return dispatch.V0O1(a.d, int(GetVersion), env, result)
}

// GetNodeVersion points result at a static host struct.
func (a *API) GetNodeVersion(env abi.Env, result **abi.NodeVersion) (abi.Status, error) {
	return dispatch.V0O1(a.d, int(GetNodeVersion), env, result)
}

func (a *API) AdjustExternalMemory(env abi.Env, change int64, result *int64) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(AdjustExternalMemory), env, change, result)
}

func (a *API) SetInstanceData(env abi.Env, data, finalize, hint uintptr) (abi.Status, error) {
	return dispatch.V3O0(a.d, int(SetInstanceData), env, data, finalize, hint)
}

func (a *API) GetInstanceData(env abi.Env, data *uintptr) (abi.Status, error) {
	return dispatch.V0O1(a.d, int(GetInstanceData), env, data)
}

func (a *API) AddEnvCleanupHook(env abi.Env, fn, arg uintptr) (abi.Status, error) {
	return dispatch.V2O0(a.d, int(AddEnvCleanupHook), env, fn, arg)
}

func (a *API) RemoveEnvCleanupHook(env abi.Env, fn, arg uintptr) (abi.Status, error) {
	return dispatch.V2O0(a.d, int(RemoveEnvCleanupHook), env, fn, arg)
}

func (a *API) CreateAsyncWork(env abi.Env, resource, resourceName abi.Value, execute, complete, data uintptr, result *abi.AsyncWork) (abi.Status, error) {
	return dispatch.V5O1(a.d, int(CreateAsyncWork), env, resource, resourceName, execute, complete, data, result)
}

func (a *API) DeleteAsyncWork(env abi.Env, work abi.AsyncWork) (abi.Status, error) {
	return dispatch.V1O0(a.d, int(DeleteAsyncWork), env, work)
}

func (a *API) QueueAsyncWork(env abi.Env, work abi.AsyncWork) (abi.Status, error) {
	return dispatch.V1O0(a.d, int(QueueAsyncWork), env, work)
}

func (a *API) CancelAsyncWork(env abi.Env, work abi.AsyncWork) (abi.Status, error) {
	return dispatch.V1O0(a.d, int(CancelAsyncWork), env, work)
}

func (a *API) AsyncInit(env abi.Env, resource, resourceName abi.Value, result *abi.AsyncContext) (abi.Status, error) {
	return dispatch.V2O1(a.d, int(AsyncInit), env, resource, resourceName, result)
}

func (a *API) AsyncDestroy(env abi.Env, ctx abi.AsyncContext) (abi.Status, error) {
	return dispatch.V1O0(a.d, int(AsyncDestroy), env, ctx)
}

func (a *API) MakeCallback(env abi.Env, ctx abi.AsyncContext, recv, fn abi.Value, args []abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V5O1(a.d, int(MakeCallback), env, ctx, recv, fn, uintptr(len(args)), values(args), result)
}

func (a *API) OpenCallbackScope(env abi.Env, resource abi.Value, ctx abi.AsyncContext, result *abi.CallbackScope) (abi.Status, error) {
	return dispatch.V2O1(a.d, int(OpenCallbackScope), env, resource, ctx, result)
}

func (a *API) CloseCallbackScope(env abi.Env, scope abi.CallbackScope) (abi.Status, error) {
	return dispatch.V1O0(a.d, int(CloseCallbackScope), env, scope)
}

// ModuleRegister hands mod to the host loader. The C function returns
// nothing, so the status is OK whenever the call was made. The host keeps
// the pointer; mod must stay reachable for the life of the process.
func (a *API) ModuleRegister(mod *abi.Module) (abi.Status, error) {
	if _, err := dispatch.Raw(a.d, int(ModuleRegister), unsafe.Pointer(mod)); err != nil {
		return abi.GenericFailure, err
	}
	return abi.OK, nil
}

// Invoke calls m with already-lowered arguments, env first unless the
// signature has none. Nothing is pinned or checked against the signature;
// it exists for probing and tests.
func (a *API) Invoke(m Method, args ...uintptr) (abi.Status, error) {
	return a.d.Invoke(int(m), args...)
}
