package napi

import (
	"unsafe"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/dispatch"
)

func (a *API) GetPrototype(env abi.Env, object abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(GetPrototype), env, object, result)
}

func (a *API) SetProperty(env abi.Env, object, key, value abi.Value) (abi.Status, error) {
	return dispatch.V3O0(a.d, int(SetProperty), env, object, key, value)
}

func (a *API) GetProperty(env abi.Env, object, key abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V2O1(a.d, int(GetProperty), env, object, key, result)
}

func (a *API) HasProperty(env abi.Env, object, key abi.Value, result *bool) (abi.Status, error) {
	return pairCheck(a, HasProperty, env, object, key, result)
}

// DeleteProperty reports in result whether the deletion succeeded; result
// may be nil.
func (a *API) DeleteProperty(env abi.Env, object, key abi.Value, result *bool) (abi.Status, error) {
	return pairCheck(a, DeleteProperty, env, object, key, result)
}

func (a *API) HasOwnProperty(env abi.Env, object, key abi.Value, result *bool) (abi.Status, error) {
	return pairCheck(a, HasOwnProperty, env, object, key, result)
}

func (a *API) SetNamedProperty(env abi.Env, object abi.Value, name string, value abi.Value) (abi.Status, error) {
	return dispatch.Text1V(a.d, int(SetNamedProperty), env, object, name, value)
}

func (a *API) GetNamedProperty(env abi.Env, object abi.Value, name string, result *abi.Value) (abi.Status, error) {
	return dispatch.Text1(a.d, int(GetNamedProperty), env, object, name, result)
}

func (a *API) HasNamedProperty(env abi.Env, object abi.Value, name string, result *bool) (abi.Status, error) {
	var b abi.Bool
	st, err := dispatch.Text1(a.d, int(HasNamedProperty), env, object, name, boolSlot(result, &b))
	storeBool(result, b)
	return st, err
}

func (a *API) SetElement(env abi.Env, object abi.Value, index uint32, value abi.Value) (abi.Status, error) {
	return dispatch.V3O0(a.d, int(SetElement), env, object, index, value)
}

func (a *API) GetElement(env abi.Env, object abi.Value, index uint32, result *abi.Value) (abi.Status, error) {
	return dispatch.V2O1(a.d, int(GetElement), env, object, index, result)
}

func (a *API) HasElement(env abi.Env, object abi.Value, index uint32, result *bool) (abi.Status, error) {
	return pairCheck(a, HasElement, env, object, index, result)
}

func (a *API) DeleteElement(env abi.Env, object abi.Value, index uint32, result *bool) (abi.Status, error) {
	return pairCheck(a, DeleteElement, env, object, index, result)
}

func (a *API) GetPropertyNames(env abi.Env, object abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(GetPropertyNames), env, object, result)
}

func (a *API) GetAllPropertyNames(env abi.Env, object abi.Value, mode abi.KeyCollectionMode, filter abi.KeyFilter, conversion abi.KeyConversion, result *abi.Value) (abi.Status, error) {
	return dispatch.V4O1(a.d, int(GetAllPropertyNames), env, object, mode, filter, conversion, result)
}

// DefineProperties defines props on object. Descriptor names given as
// UTF8Name must point to memory that outlives the call.
func (a *API) DefineProperties(env abi.Env, object abi.Value, props []abi.PropertyDescriptor) (abi.Status, error) {
	return dispatch.V3O0(a.d, int(DefineProperties), env, object, uintptr(len(props)), descriptors(props))
}

func (a *API) ObjectFreeze(env abi.Env, object abi.Value) (abi.Status, error) {
	return dispatch.V1O0(a.d, int(ObjectFreeze), env, object)
}

func (a *API) ObjectSeal(env abi.Env, object abi.Value) (abi.Status, error) {
	return dispatch.V1O0(a.d, int(ObjectSeal), env, object)
}

func (a *API) TypeTagObject(env abi.Env, object abi.Value, tag *abi.TypeTag) (abi.Status, error) {
	return dispatch.V2O0(a.d, int(TypeTagObject), env, object, unsafe.Pointer(tag))
}

func (a *API) CheckObjectTypeTag(env abi.Env, object abi.Value, tag *abi.TypeTag, result *bool) (abi.Status, error) {
	return pairCheck(a, CheckObjectTypeTag, env, object, unsafe.Pointer(tag), result)
}

// CreateFunction creates a function backed by the C callback cb. An empty
// name creates an anonymous function.
func (a *API) CreateFunction(env abi.Env, name string, cb, data uintptr, result *abi.Value) (abi.Status, error) {
	return dispatch.V4O1(a.d, int(CreateFunction), env, textData(name), uintptr(len(name)), cb, data, result)
}

func (a *API) CallFunction(env abi.Env, recv, fn abi.Value, args []abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V4O1(a.d, int(CallFunction), env, recv, fn, uintptr(len(args)), values(args), result)
}

func (a *API) NewInstance(env abi.Env, constructor abi.Value, args []abi.Value, result *abi.Value) (abi.Status, error) {
	return dispatch.V3O1(a.d, int(NewInstance), env, constructor, uintptr(len(args)), values(args), result)
}

// GetCbInfo reads the arguments of the current callback into argv. argc
// is set to len(argv) before the call and holds the actual argument count
// after it. Any out may be nil.
func (a *API) GetCbInfo(env abi.Env, info abi.CallbackInfo, argc *uintptr, argv []abi.Value, this *abi.Value, data *uintptr) (abi.Status, error) {
	if argc != nil {
		*argc = uintptr(len(argv))
	}
	return dispatch.CB(a.d, int(GetCbInfo), env, info, argc, argv, this, data)
}

func (a *API) GetNewTarget(env abi.Env, info abi.CallbackInfo, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(GetNewTarget), env, info, result)
}

func (a *API) DefineClass(env abi.Env, name string, constructor, data uintptr, props []abi.PropertyDescriptor, result *abi.Value) (abi.Status, error) {
	return dispatch.V6O1(a.d, int(DefineClass), env,
		textData(name), uintptr(len(name)), constructor, data, uintptr(len(props)), descriptors(props), result)
}

// Wrap associates native with object. result may be nil, in which case
// the host keeps no reference for the caller.
func (a *API) Wrap(env abi.Env, object abi.Value, native, finalize, hint uintptr, result *abi.Ref) (abi.Status, error) {
	return dispatch.V4O1(a.d, int(Wrap), env, object, native, finalize, hint, result)
}

func (a *API) Unwrap(env abi.Env, object abi.Value, result *uintptr) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(Unwrap), env, object, result)
}

func (a *API) RemoveWrap(env abi.Env, object abi.Value, result *uintptr) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(RemoveWrap), env, object, result)
}

func (a *API) CreateExternal(env abi.Env, data, finalize, hint uintptr, result *abi.Value) (abi.Status, error) {
	return dispatch.V3O1(a.d, int(CreateExternal), env, data, finalize, hint, result)
}

func (a *API) GetValueExternal(env abi.Env, value abi.Value, result *uintptr) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(GetValueExternal), env, value, result)
}

func (a *API) AddFinalizer(env abi.Env, object abi.Value, data, finalize, hint uintptr, result *abi.Ref) (abi.Status, error) {
	return dispatch.V4O1(a.d, int(AddFinalizer), env, object, data, finalize, hint, result)
}

func (a *API) CreateReference(env abi.Env, value abi.Value, initial uint32, result *abi.Ref) (abi.Status, error) {
	return dispatch.V2O1(a.d, int(CreateReference), env, value, initial, result)
}

func (a *API) DeleteReference(env abi.Env, ref abi.Ref) (abi.Status, error) {
	return dispatch.V1O0(a.d, int(DeleteReference), env, ref)
}

func (a *API) ReferenceRef(env abi.Env, ref abi.Ref, result *uint32) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(ReferenceRef), env, ref, result)
}

func (a *API) ReferenceUnref(env abi.Env, ref abi.Ref, result *uint32) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(ReferenceUnref), env, ref, result)
}

func (a *API) GetReferenceValue(env abi.Env, ref abi.Ref, result *abi.Value) (abi.Status, error) {
	return dispatch.V1O1(a.d, int(GetReferenceValue), env, ref, result)
}

func descriptors(props []abi.PropertyDescriptor) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(props))
}

func values(vs []abi.Value) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(vs))
}

// textData passes a name by pointer and explicit length; empty is NULL.
func textData(s string) unsafe.Pointer {
	if s == "" {
		return nil
	}
	return unsafe.Pointer(unsafe.StringData(s))
}
