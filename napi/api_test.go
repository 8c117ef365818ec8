package napi

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/dispatch"
	"github.com/wippyai/napi-runtime/errors"
	"github.com/wippyai/napi-runtime/testbed"
)

const env = abi.Env(0xE0)

// statusFor gives each method a distinct status so forwarding mix-ups show.
func statusFor(m Method) abi.Status {
	return abi.Status(int(m) % 24)
}

func stubAll(h *testbed.Host) {
	for _, m := range Methods() {
		sig := m.Signature()
		h.Stub(m.Export(), sig, statusFor(m))
		if len(sig.Args) > 0 && sig.Args[0] == abi.ArgF64 {
			id := m
			outIdx := 1
			h.HandleF64(m.Export(), func(_ uintptr, _ float64, out uintptr) abi.Status {
				testbed.WriteKind(out, abi.OutWord, testbed.Want(abi.OutWord, outIdx))
				return statusFor(id)
			})
		}
	}
}

func newAPI(t *testing.T) (*API, *testbed.Host) {
	t.Helper()
	h := testbed.New()
	stubAll(h)
	api, err := Bind(h, WithCaller(h))
	require.NoError(t, err)
	return api, h
}

func TestInvoke_RoundTripEveryMethod(t *testing.T) {
	api, h := newAPI(t)

	for _, m := range Methods() {
		sig := m.Signature()
		slots := make([]uint64, len(sig.Args))
		var args []uintptr
		if !sig.NoEnv {
			args = append(args, uintptr(env))
		}
		for i, k := range sig.Args {
			if k.IsOut() {
				args = append(args, uintptr(unsafe.Pointer(&slots[i])))
			} else {
				args = append(args, uintptr(0x100+i))
			}
		}

		st, err := api.Invoke(m, args...)
		require.NoError(t, err, m.String())
		assert.Equal(t, statusFor(m), st, m.String())

		call := h.LastCall()
		assert.Equal(t, m.Export(), call.Symbol)
		assert.Equal(t, args, call.Args, m.String())
		for i, k := range sig.Args {
			if k.IsOut() {
				assert.Equal(t, testbed.Want(k, i), testbed.ReadKind(uintptr(unsafe.Pointer(&slots[i])), k), "%s slot %d", m, i)
			}
		}
	}
	for _, m := range Methods() {
		assert.True(t, api.Resolved(m), m.String())
		assert.Equal(t, 1, h.Lookups(m.Export()), m.String())
	}
}

func TestFacade_EveryMethodReachesItsExport(t *testing.T) {
	api, h := newAPI(t)

	var (
		v      abi.Value
		b      bool
		n      uintptr
		u32    uint32
		i32    int32
		i64    int64
		u64    uint64
		f      float64
		data   uintptr
		ref    abi.Ref
		hs     abi.HandleScope
		ehs    abi.EscapableHandleScope
		def    abi.Deferred
		work   abi.AsyncWork
		actx   abi.AsyncContext
		cbs    abi.CallbackScope
		vt     abi.ValueType
		tat    abi.TypedArrayType
		info   *abi.ExtendedErrorInfo
		ver    *abi.NodeVersion
		tag    = abi.TypeTag{Lower: 1, Upper: 2}
		buf    = make([]byte, 8)
		buf16  = make([]uint16, 8)
		words  = make([]uint64, 2)
		argv   = make([]abi.Value, 2)
		props  = []abi.PropertyDescriptor{{Attributes: abi.PropertyDefaultMethod}}
		mod    = &abi.Module{Version: abi.ModuleVersion}
		object = abi.Value(0x51)
	)

	calls := map[Method]func() (abi.Status, error){
		GetUndefined:          func() (abi.Status, error) { return api.GetUndefined(env, &v) },
		GetNull:               func() (abi.Status, error) { return api.GetNull(env, &v) },
		GetGlobal:             func() (abi.Status, error) { return api.GetGlobal(env, &v) },
		GetBoolean:            func() (abi.Status, error) { return api.GetBoolean(env, true, &v) },
		CreateObject:          func() (abi.Status, error) { return api.CreateObject(env, &v) },
		CreateArray:           func() (abi.Status, error) { return api.CreateArray(env, &v) },
		CreateArrayWithLength: func() (abi.Status, error) { return api.CreateArrayWithLength(env, 3, &v) },
		CreateDouble:          func() (abi.Status, error) { return api.CreateDouble(env, 1.5, &v) },
		CreateInt32:           func() (abi.Status, error) { return api.CreateInt32(env, 42, &v) },
		CreateUint32:          func() (abi.Status, error) { return api.CreateUint32(env, 42, &v) },
		CreateInt64:           func() (abi.Status, error) { return api.CreateInt64(env, -42, &v) },
		CreateStringLatin1:    func() (abi.Status, error) { return api.CreateStringLatin1(env, []byte("abc"), &v) },
		CreateStringUTF8:      func() (abi.Status, error) { return api.CreateStringUTF8(env, "héllo", &v) },
		CreateStringUTF16:     func() (abi.Status, error) { return api.CreateStringUTF16(env, []uint16{'h', 'i'}, &v) },
		CreateSymbol:          func() (abi.Status, error) { return api.CreateSymbol(env, 0, &v) },
		SymbolFor:             func() (abi.Status, error) { return api.SymbolFor(env, "key", &v) },
		CreateBigintInt64:     func() (abi.Status, error) { return api.CreateBigintInt64(env, -1, &v) },
		CreateBigintUint64:    func() (abi.Status, error) { return api.CreateBigintUint64(env, math.MaxUint64, &v) },
		CreateBigintWords:     func() (abi.Status, error) { return api.CreateBigintWords(env, 1, words, &v) },

		CreateError:              func() (abi.Status, error) { return api.CreateError(env, 0, object, &v) },
		CreateTypeError:          func() (abi.Status, error) { return api.CreateTypeError(env, 0, object, &v) },
		CreateRangeError:         func() (abi.Status, error) { return api.CreateRangeError(env, 0, object, &v) },
		CreateSyntaxError:        func() (abi.Status, error) { return api.CreateSyntaxError(env, 0, object, &v) },
		Throw:                    func() (abi.Status, error) { return api.Throw(env, object) },
		ThrowError:               func() (abi.Status, error) { return api.ThrowError(env, "E", "boom") },
		ThrowTypeError:           func() (abi.Status, error) { return api.ThrowTypeError(env, "", "boom") },
		ThrowRangeError:          func() (abi.Status, error) { return api.ThrowRangeError(env, "E", "boom") },
		ThrowSyntaxError:         func() (abi.Status, error) { return api.ThrowSyntaxError(env, "E", "boom") },
		IsError:                  func() (abi.Status, error) { return api.IsError(env, object, &b) },
		IsExceptionPending:       func() (abi.Status, error) { return api.IsExceptionPending(env, &b) },
		GetAndClearLastException: func() (abi.Status, error) { return api.GetAndClearLastException(env, &v) },
		GetLastErrorInfo:         func() (abi.Status, error) { return api.GetLastErrorInfo(env, &info) },
		FatalException:           func() (abi.Status, error) { return api.FatalException(env, object) },

		GetValueDouble:       func() (abi.Status, error) { return api.GetValueDouble(env, object, &f) },
		GetValueInt32:        func() (abi.Status, error) { return api.GetValueInt32(env, object, &i32) },
		GetValueUint32:       func() (abi.Status, error) { return api.GetValueUint32(env, object, &u32) },
		GetValueInt64:        func() (abi.Status, error) { return api.GetValueInt64(env, object, &i64) },
		GetValueBool:         func() (abi.Status, error) { return api.GetValueBool(env, object, &b) },
		GetValueStringLatin1: func() (abi.Status, error) { return api.GetValueStringLatin1(env, object, buf, &n) },
		GetValueStringUTF8:   func() (abi.Status, error) { return api.GetValueStringUTF8(env, object, buf, &n) },
		GetValueStringUTF16:  func() (abi.Status, error) { return api.GetValueStringUTF16(env, object, buf16, &n) },
		GetValueBigintInt64:  func() (abi.Status, error) { return api.GetValueBigintInt64(env, object, &i64, &b) },
		GetValueBigintUint64: func() (abi.Status, error) { return api.GetValueBigintUint64(env, object, &u64, &b) },
		GetValueBigintWords:  func() (abi.Status, error) { return api.GetValueBigintWords(env, object, &i32, &n, words) },
		Typeof:               func() (abi.Status, error) { return api.Typeof(env, object, &vt) },
		CoerceToBool:         func() (abi.Status, error) { return api.CoerceToBool(env, object, &v) },
		CoerceToNumber:       func() (abi.Status, error) { return api.CoerceToNumber(env, object, &v) },
		CoerceToObject:       func() (abi.Status, error) { return api.CoerceToObject(env, object, &v) },
		CoerceToString:       func() (abi.Status, error) { return api.CoerceToString(env, object, &v) },
		Instanceof:           func() (abi.Status, error) { return api.Instanceof(env, object, object, &b) },
		StrictEquals:         func() (abi.Status, error) { return api.StrictEquals(env, object, object, &b) },

		GetPrototype:        func() (abi.Status, error) { return api.GetPrototype(env, object, &v) },
		SetProperty:         func() (abi.Status, error) { return api.SetProperty(env, object, 1, 2) },
		GetProperty:         func() (abi.Status, error) { return api.GetProperty(env, object, 1, &v) },
		HasProperty:         func() (abi.Status, error) { return api.HasProperty(env, object, 1, &b) },
		DeleteProperty:      func() (abi.Status, error) { return api.DeleteProperty(env, object, 1, &b) },
		HasOwnProperty:      func() (abi.Status, error) { return api.HasOwnProperty(env, object, 1, &b) },
		SetNamedProperty:    func() (abi.Status, error) { return api.SetNamedProperty(env, object, "x", 2) },
		GetNamedProperty:    func() (abi.Status, error) { return api.GetNamedProperty(env, object, "x", &v) },
		HasNamedProperty:    func() (abi.Status, error) { return api.HasNamedProperty(env, object, "x", &b) },
		SetElement:          func() (abi.Status, error) { return api.SetElement(env, object, 0, 2) },
		GetElement:          func() (abi.Status, error) { return api.GetElement(env, object, 0, &v) },
		HasElement:          func() (abi.Status, error) { return api.HasElement(env, object, 0, &b) },
		DeleteElement:       func() (abi.Status, error) { return api.DeleteElement(env, object, 0, &b) },
		GetPropertyNames:    func() (abi.Status, error) { return api.GetPropertyNames(env, object, &v) },
		GetAllPropertyNames: func() (abi.Status, error) { return api.GetAllPropertyNames(env, object, abi.KeyOwnOnly, abi.KeyEnumerable, abi.KeyNumbersToStrings, &v) },
		DefineProperties:    func() (abi.Status, error) { return api.DefineProperties(env, object, props) },
		ObjectFreeze:        func() (abi.Status, error) { return api.ObjectFreeze(env, object) },
		ObjectSeal:          func() (abi.Status, error) { return api.ObjectSeal(env, object) },
		TypeTagObject:       func() (abi.Status, error) { return api.TypeTagObject(env, object, &tag) },
		CheckObjectTypeTag:  func() (abi.Status, error) { return api.CheckObjectTypeTag(env, object, &tag, &b) },

		CreateFunction: func() (abi.Status, error) { return api.CreateFunction(env, "fn", 0x9000, 0, &v) },
		CallFunction:   func() (abi.Status, error) { return api.CallFunction(env, object, object, argv, &v) },
		NewInstance:    func() (abi.Status, error) { return api.NewInstance(env, object, argv, &v) },
		GetCbInfo:      func() (abi.Status, error) { return api.GetCbInfo(env, 0x77, &n, argv, &v, &data) },
		GetNewTarget:   func() (abi.Status, error) { return api.GetNewTarget(env, 0x77, &v) },
		DefineClass:    func() (abi.Status, error) { return api.DefineClass(env, "Point", 0x9000, 0, props, &v) },

		Wrap:             func() (abi.Status, error) { return api.Wrap(env, object, 1, 0, 0, &ref) },
		Unwrap:           func() (abi.Status, error) { return api.Unwrap(env, object, &data) },
		RemoveWrap:       func() (abi.Status, error) { return api.RemoveWrap(env, object, &data) },
		CreateExternal:   func() (abi.Status, error) { return api.CreateExternal(env, 1, 0, 0, &v) },
		GetValueExternal: func() (abi.Status, error) { return api.GetValueExternal(env, object, &data) },
		AddFinalizer:     func() (abi.Status, error) { return api.AddFinalizer(env, object, 1, 0x9000, 0, nil) },

		CreateReference:   func() (abi.Status, error) { return api.CreateReference(env, object, 1, &ref) },
		DeleteReference:   func() (abi.Status, error) { return api.DeleteReference(env, 0x33) },
		ReferenceRef:      func() (abi.Status, error) { return api.ReferenceRef(env, 0x33, &u32) },
		ReferenceUnref:    func() (abi.Status, error) { return api.ReferenceUnref(env, 0x33, &u32) },
		GetReferenceValue: func() (abi.Status, error) { return api.GetReferenceValue(env, 0x33, &v) },

		OpenHandleScope:           func() (abi.Status, error) { return api.OpenHandleScope(env, &hs) },
		CloseHandleScope:          func() (abi.Status, error) { return api.CloseHandleScope(env, 0x44) },
		OpenEscapableHandleScope:  func() (abi.Status, error) { return api.OpenEscapableHandleScope(env, &ehs) },
		CloseEscapableHandleScope: func() (abi.Status, error) { return api.CloseEscapableHandleScope(env, 0x45) },
		EscapeHandle:              func() (abi.Status, error) { return api.EscapeHandle(env, 0x45, object, &v) },

		IsArray:                   func() (abi.Status, error) { return api.IsArray(env, object, &b) },
		GetArrayLength:            func() (abi.Status, error) { return api.GetArrayLength(env, object, &u32) },
		CreateArraybuffer:         func() (abi.Status, error) { return api.CreateArraybuffer(env, 16, &data, &v) },
		CreateExternalArraybuffer: func() (abi.Status, error) { return api.CreateExternalArraybuffer(env, 0x8000, 16, 0, 0, &v) },
		GetArraybufferInfo:        func() (abi.Status, error) { return api.GetArraybufferInfo(env, object, &data, &n) },
		IsArraybuffer:             func() (abi.Status, error) { return api.IsArraybuffer(env, object, &b) },
		DetachArraybuffer:         func() (abi.Status, error) { return api.DetachArraybuffer(env, object) },
		IsDetachedArraybuffer:     func() (abi.Status, error) { return api.IsDetachedArraybuffer(env, object, &b) },
		CreateTypedarray:          func() (abi.Status, error) { return api.CreateTypedarray(env, abi.Float64Array, 2, object, 0, &v) },
		GetTypedarrayInfo:         func() (abi.Status, error) { return api.GetTypedarrayInfo(env, object, &tat, &n, &data, &v, &n) },
		IsTypedarray:              func() (abi.Status, error) { return api.IsTypedarray(env, object, &b) },
		CreateDataview:            func() (abi.Status, error) { return api.CreateDataview(env, 8, object, 0, &v) },
		GetDataviewInfo:           func() (abi.Status, error) { return api.GetDataviewInfo(env, object, &n, &data, &v, &n) },
		IsDataview:                func() (abi.Status, error) { return api.IsDataview(env, object, &b) },
		CreateBuffer:              func() (abi.Status, error) { return api.CreateBuffer(env, 8, &data, &v) },
		CreateBufferCopy:          func() (abi.Status, error) { return api.CreateBufferCopy(env, buf, &data, &v) },
		CreateExternalBuffer:      func() (abi.Status, error) { return api.CreateExternalBuffer(env, 16, 0x8000, 0, 0, &v) },
		GetBufferInfo:             func() (abi.Status, error) { return api.GetBufferInfo(env, object, &data, &n) },
		IsBuffer:                  func() (abi.Status, error) { return api.IsBuffer(env, object, &b) },

		CreateDate:   func() (abi.Status, error) { return api.CreateDate(env, 1e12, &v) },
		GetDateValue: func() (abi.Status, error) { return api.GetDateValue(env, object, &f) },
		IsDate:       func() (abi.Status, error) { return api.IsDate(env, object, &b) },

		CreatePromise:   func() (abi.Status, error) { return api.CreatePromise(env, &def, &v) },
		ResolveDeferred: func() (abi.Status, error) { return api.ResolveDeferred(env, 0x66, object) },
		RejectDeferred:  func() (abi.Status, error) { return api.RejectDeferred(env, 0x66, object) },
		IsPromise:       func() (abi.Status, error) { return api.IsPromise(env, object, &b) },

		RunScript: func() (abi.Status, error) { return api.RunScript(env, object, &v) },

		GetVersion:           func() (abi.Status, error) { return api.GetVersion(env, &u32) },
		GetNodeVersion:       func() (abi.Status, error) { return api.GetNodeVersion(env, &ver) },
		AdjustExternalMemory: func() (abi.Status, error) { return api.AdjustExternalMemory(env, 1024, &i64) },
		SetInstanceData:      func() (abi.Status, error) { return api.SetInstanceData(env, 1, 0, 0) },
		GetInstanceData:      func() (abi.Status, error) { return api.GetInstanceData(env, &data) },
		AddEnvCleanupHook:    func() (abi.Status, error) { return api.AddEnvCleanupHook(env, 0x9000, 1) },
		RemoveEnvCleanupHook: func() (abi.Status, error) { return api.RemoveEnvCleanupHook(env, 0x9000, 1) },

		CreateAsyncWork:    func() (abi.Status, error) { return api.CreateAsyncWork(env, 0, object, 0x9000, 0x9010, 0, &work) },
		DeleteAsyncWork:    func() (abi.Status, error) { return api.DeleteAsyncWork(env, 0x88) },
		QueueAsyncWork:     func() (abi.Status, error) { return api.QueueAsyncWork(env, 0x88) },
		CancelAsyncWork:    func() (abi.Status, error) { return api.CancelAsyncWork(env, 0x88) },
		AsyncInit:          func() (abi.Status, error) { return api.AsyncInit(env, 0, object, &actx) },
		AsyncDestroy:       func() (abi.Status, error) { return api.AsyncDestroy(env, 0x99) },
		MakeCallback:       func() (abi.Status, error) { return api.MakeCallback(env, 0x99, object, object, argv, &v) },
		OpenCallbackScope:  func() (abi.Status, error) { return api.OpenCallbackScope(env, object, 0x99, &cbs) },
		CloseCallbackScope: func() (abi.Status, error) { return api.CloseCallbackScope(env, 0xAA) },

		ModuleRegister: func() (abi.Status, error) { return api.ModuleRegister(mod) },
	}

	for _, m := range Methods() {
		call, ok := calls[m]
		if !assert.True(t, ok, "no facade call for %s", m) {
			continue
		}
		st, err := call()
		require.NoError(t, err, m.String())

		want := statusFor(m)
		if m == ModuleRegister {
			want = abi.OK
		}
		assert.Equal(t, want, st, m.String())

		last := h.LastCall()
		assert.Equal(t, m.Export(), last.Symbol)
		sig := m.Signature()
		switch {
		case sig.NoEnv:
			assert.Len(t, last.Args, len(sig.Args), m.String())
		case sig.Args[0] == abi.ArgF64:
			assert.Len(t, last.Args, 2, m.String())
		default:
			assert.Len(t, last.Args, len(sig.Args)+1, m.String())
			assert.Equal(t, uintptr(env), last.Args[0], m.String())
		}
	}
	assert.Len(t, calls, int(methodCount))
}

func TestFacade_DecodesOuts(t *testing.T) {
	api, _ := newAPI(t)

	var b bool
	_, err := api.IsError(env, 1, &b)
	require.NoError(t, err)
	assert.True(t, b)

	var vt abi.ValueType
	_, err = api.Typeof(env, 1, &vt)
	require.NoError(t, err)
	assert.Equal(t, abi.ValueType(-101), vt)

	var f float64
	_, err = api.GetValueDouble(env, 1, &f)
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	var i64 int64
	lossless := false
	_, err = api.GetValueBigintInt64(env, 1, &i64, &lossless)
	require.NoError(t, err)
	assert.Equal(t, int64(-301), i64)
	assert.True(t, lossless)

	var v abi.Value
	_, err = api.CreateDouble(env, 2.5, &v)
	require.NoError(t, err)
	assert.Equal(t, abi.Value(testbed.Want(abi.OutWord, 1)), v)
}

func TestFacade_NilBoolOutStaysNull(t *testing.T) {
	h := testbed.New()
	var got uintptr = 1
	h.Handle("napi_is_error", func(args []uintptr) abi.Status {
		got = args[2]
		return abi.InvalidArg
	})
	api, err := Bind(h, WithCaller(h))
	require.NoError(t, err)

	st, err := api.IsError(env, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, abi.InvalidArg, st)
	assert.Zero(t, got)
}

func TestFacade_StringsCrossAsUTF8(t *testing.T) {
	h := testbed.New()
	var gotStr string
	var gotLen uintptr
	h.Handle("napi_create_string_utf8", func(args []uintptr) abi.Status {
		gotLen = args[2]
		gotStr = string(testbed.Bytes(args[1], int(args[2])))
		testbed.Write(args[3], abi.Value(5))
		return abi.OK
	})
	var name string
	h.Handle("napi_get_named_property", func(args []uintptr) abi.Status {
		name = testbed.String(args[2])
		return abi.OK
	})
	api, err := Bind(h, WithCaller(h))
	require.NoError(t, err)

	var v abi.Value
	_, err = api.CreateStringUTF8(env, "héllo", &v)
	require.NoError(t, err)
	assert.Equal(t, "héllo", gotStr)
	assert.Equal(t, uintptr(len("héllo")), gotLen)
	assert.Equal(t, abi.Value(5), v)

	_, err = api.CreateStringUTF8(env, "", &v)
	require.NoError(t, err)
	assert.Zero(t, gotLen)

	_, err = api.GetNamedProperty(env, 1, "length", &v)
	require.NoError(t, err)
	assert.Equal(t, "length", name)
}

func TestFacade_GetCbInfoSetsCapacity(t *testing.T) {
	h := testbed.New()
	var capacity uintptr
	h.Handle("napi_get_cb_info", func(args []uintptr) abi.Status {
		capacity = testbed.Read[uintptr](args[2])
		argv := args[3]
		testbed.Write(argv, abi.Value(0x501))
		testbed.Write(argv+unsafe.Sizeof(abi.Value(0)), abi.Value(0x502))
		testbed.Write(args[2], uintptr(3))
		testbed.Write(args[4], abi.Value(0x600))
		return abi.OK
	})
	api, err := Bind(h, WithCaller(h))
	require.NoError(t, err)

	argv := make([]abi.Value, 2)
	var argc uintptr
	var this abi.Value
	st, err := api.GetCbInfo(env, 0x77, &argc, argv, &this, nil)
	require.NoError(t, err)
	assert.Equal(t, abi.OK, st)
	assert.Equal(t, uintptr(2), capacity)
	assert.Equal(t, uintptr(3), argc)
	assert.Equal(t, []abi.Value{0x501, 0x502}, argv)
	assert.Equal(t, abi.Value(0x600), this)
}

func TestBind_MissingExportIsLazy(t *testing.T) {
	h := testbed.New().Returns("napi_get_version", abi.OK)
	api, err := Bind(h, WithCaller(h))
	require.NoError(t, err)

	var u uint32
	st, err := api.GetVersion(env, &u)
	require.NoError(t, err)
	assert.Equal(t, abi.OK, st)

	var v abi.Value
	st, err = api.CreateObject(env, &v)
	assert.Equal(t, abi.GenericFailure, st)
	assert.ErrorIs(t, err, errors.ErrSymbolNotFound)
}

func TestBind_Preload(t *testing.T) {
	h := testbed.New().Returns("napi_get_version", abi.OK)
	_, err := Bind(h, WithCaller(h), WithPreload())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrSymbolNotFound)

	full := testbed.New()
	stubAll(full)
	api, err := Bind(full, WithCaller(full), WithPreload())
	require.NoError(t, err)
	assert.True(t, api.Resolved(CreateInt32))
}

func TestBind_NilLibrary(t *testing.T) {
	_, err := Bind(nil)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestNewAPI(t *testing.T) {
	_, err := NewAPI(nil)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)

	api, _ := newAPI(t)
	again, err := NewAPI(api.Dispatcher())
	require.NoError(t, err)
	addr, err := again.Addr(GetUndefined)
	require.NoError(t, err)
	assert.NotZero(t, addr)
}

func TestInvoke_AutoLengthText(t *testing.T) {
	h := testbed.New()
	var gotLen uintptr
	var gotStr string
	h.Handle("napi_create_string_utf8", func(args []uintptr) abi.Status {
		gotLen = args[2]
		gotStr = testbed.String(args[1])
		return abi.OK
	})
	api, err := Bind(h, WithCaller(h))
	require.NoError(t, err)

	txt := dispatch.NewText("auto")
	defer txt.Release()
	var v abi.Value
	st, err := api.Invoke(CreateStringUTF8, uintptr(env), uintptr(txt.Ptr()), abi.AutoLength, uintptr(unsafe.Pointer(&v)))
	require.NoError(t, err)
	assert.Equal(t, abi.OK, st)
	assert.Equal(t, abi.AutoLength, gotLen)
	assert.Equal(t, "auto", gotStr)
}
