package dispatch

import (
	"strings"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/errors"
	"github.com/wippyai/napi-runtime/symbols"
	"github.com/wippyai/napi-runtime/testbed"
)

const (
	opCreateInt32 = iota
	opThrowError
	opGetValueString
	opCreateDouble
	opMissing
	opNull
	opRegister
	opCount
)

var exports = []string{
	opCreateInt32:    "napi_create_int32",
	opThrowError:     "napi_throw_error",
	opGetValueString: "napi_get_value_string_utf8",
	opCreateDouble:   "napi_create_double",
	opMissing:        "napi_not_there",
	opNull:           "napi_null",
	opRegister:       "napi_module_register",
}

func newDispatcher(t *testing.T, h *testbed.Host) *Dispatcher {
	t.Helper()
	table, err := symbols.NewTable(h, exports)
	require.NoError(t, err)
	d, err := New(table, WithCaller(h))
	require.NoError(t, err)
	return d
}

func TestDispatch_CreateInt32(t *testing.T) {
	h := testbed.New().Handle("napi_create_int32", func(args []uintptr) abi.Status {
		if len(args) != 3 {
			return abi.InvalidArg
		}
		testbed.Write(args[2], abi.Value(0x1000+args[1]))
		return abi.OK
	})
	d := newDispatcher(t, h)

	var result abi.Value
	st, err := V1O1(d, opCreateInt32, abi.Env(0x42), int32(42), &result)
	require.NoError(t, err)
	assert.Equal(t, abi.OK, st)
	assert.Equal(t, abi.Value(0x1000+42), result)

	call := h.LastCall()
	assert.Equal(t, uintptr(0x42), call.Args[0], "env is first")
	assert.Equal(t, uintptr(42), call.Args[1])
	assert.Equal(t, uintptr(unsafe.Pointer(&result)), call.Args[2])
}

func TestDispatch_NegativeInt32(t *testing.T) {
	var got uint32
	h := testbed.New().Handle("napi_create_int32", func(args []uintptr) abi.Status {
		got = uint32(args[1])
		return abi.OK
	})
	d := newDispatcher(t, h)

	var result abi.Value
	_, err := V1O1(d, opCreateInt32, 1, int32(-1), &result)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xffffffff), got)
}

func TestDispatch_StatusForwardedVerbatim(t *testing.T) {
	for _, st := range []abi.Status{abi.OK, abi.InvalidArg, abi.PendingException, abi.CannotRunJS, abi.Status(99)} {
		h := testbed.New().Returns("napi_create_int32", st)
		d := newDispatcher(t, h)
		var result abi.Value
		got, err := V1O1(d, opCreateInt32, 1, int32(0), &result)
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}
}

func TestDispatch_ResolvesOnce(t *testing.T) {
	h := testbed.New().Returns("napi_create_int32", abi.OK)
	d := newDispatcher(t, h)

	var result abi.Value
	for i := 0; i < 5; i++ {
		_, err := V1O1(d, opCreateInt32, 1, int32(i), &result)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, h.Lookups("napi_create_int32"))
	assert.Len(t, h.Calls(), 5)
}

func TestDispatch_ConcurrentFirstUse(t *testing.T) {
	h := testbed.New().Returns("napi_create_int32", abi.OK)
	d := newDispatcher(t, h)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var result abi.Value
			st, err := V1O1(d, opCreateInt32, 1, int32(1), &result)
			assert.NoError(t, err)
			assert.Equal(t, abi.OK, st)
		}()
	}
	wg.Wait()
	assert.Len(t, h.Calls(), 16)
}

func TestDispatch_MissingSymbol(t *testing.T) {
	h := testbed.New()
	d := newDispatcher(t, h)

	var result abi.Value
	st, err := V1O1(d, opMissing, 1, int32(0), &result)
	assert.Equal(t, abi.GenericFailure, st)
	assert.ErrorIs(t, err, errors.ErrSymbolNotFound)
	assert.Contains(t, err.Error(), "napi_not_there")
	assert.Empty(t, h.Calls())
}

func TestDispatch_NullAddressNeverCalled(t *testing.T) {
	h := testbed.New().Null("napi_null")
	d := newDispatcher(t, h)

	var result abi.Value
	st, err := V0O1(d, opNull, 1, &result)
	assert.Equal(t, abi.GenericFailure, st)
	assert.Error(t, err)
	assert.Empty(t, h.Calls())
}

func TestDispatch_ThrowErrorNullCode(t *testing.T) {
	var code, msg string
	var codePtr uintptr
	h := testbed.New().Handle("napi_throw_error", func(args []uintptr) abi.Status {
		codePtr = args[1]
		code = testbed.String(args[1])
		msg = testbed.String(args[2])
		return abi.PendingException
	})
	d := newDispatcher(t, h)
	before := OutstandingText()

	st, err := Text2(d, opThrowError, 1, "", "boom")
	require.NoError(t, err)
	assert.Equal(t, abi.PendingException, st)
	assert.Zero(t, codePtr, "absent code travels as NULL")
	assert.Equal(t, "", code)
	assert.Equal(t, "boom", msg)
	assert.Equal(t, before, OutstandingText(), "buffers released")
}

func TestDispatch_ThrowErrorLongMessage(t *testing.T) {
	long := strings.Repeat("x", 4096)
	var msg string
	h := testbed.New().Handle("napi_throw_error", func(args []uintptr) abi.Status {
		msg = testbed.String(args[2])
		return abi.OK
	})
	d := newDispatcher(t, h)
	before := OutstandingText()
	heap := TextHeapAllocations()

	_, err := Text2(d, opThrowError, 1, "E_CODE", long)
	require.NoError(t, err)
	assert.Equal(t, long, msg)
	assert.Equal(t, heap+1, TextHeapAllocations())
	assert.Equal(t, before, OutstandingText())
}

func TestDispatch_TextReleasedOnMissingSymbol(t *testing.T) {
	d := newDispatcher(t, testbed.New())
	before := OutstandingText()
	_, err := Text2(d, opThrowError, 1, "code", "msg")
	assert.Error(t, err)
	assert.Equal(t, before, OutstandingText())
}

func TestDispatch_BufferArgument(t *testing.T) {
	h := testbed.New().Handle("napi_get_value_string_utf8", func(args []uintptr) abi.Status {
		buf := testbed.Bytes(args[2], int(args[3]))
		n := copy(buf, "hello")
		buf[n] = 0
		testbed.Write(args[4], uintptr(n))
		return abi.OK
	})
	d := newDispatcher(t, h)

	buf := make([]byte, 16)
	var n uintptr
	st, err := V3O1(d, opGetValueString, 1, abi.Value(9), unsafe.Pointer(&buf[0]), uintptr(len(buf)), &n)
	require.NoError(t, err)
	assert.Equal(t, abi.OK, st)
	assert.Equal(t, "hello", string(buf[:n]))
}

func TestDispatch_NilPointerArgIsNull(t *testing.T) {
	var got uintptr = 1
	h := testbed.New().Handle("napi_get_value_string_utf8", func(args []uintptr) abi.Status {
		got = args[2]
		return abi.OK
	})
	d := newDispatcher(t, h)

	var n uintptr
	_, err := V3O1(d, opGetValueString, 1, abi.Value(9), unsafe.Pointer(nil), uintptr(0), &n)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestDispatch_F64(t *testing.T) {
	h := testbed.New().HandleF64("napi_create_double", func(env uintptr, v float64, out uintptr) abi.Status {
		testbed.Write(out, abi.Value(uintptr(v*10)))
		return abi.OK
	})
	d := newDispatcher(t, h)

	var result abi.Value
	st, err := F64O1(d, opCreateDouble, 1, 4.2, &result)
	require.NoError(t, err)
	assert.Equal(t, abi.OK, st)
	assert.Equal(t, abi.Value(42), result)
}

func TestDispatch_RawNoEnv(t *testing.T) {
	var args []uintptr
	h := testbed.New().Handle("napi_module_register", func(a []uintptr) abi.Status {
		args = a
		return abi.OK
	})
	d := newDispatcher(t, h)

	mod := &abi.Module{Version: abi.ModuleVersion}
	_, err := Raw(d, opRegister, unsafe.Pointer(mod))
	require.NoError(t, err)
	require.Len(t, args, 1)
	assert.Equal(t, int32(abi.ModuleVersion), testbed.Read[int32](args[0]))
}

func TestDispatch_ArgumentOrder(t *testing.T) {
	var got []uintptr
	h := testbed.New().Handle("napi_create_int32", func(a []uintptr) abi.Status {
		got = a
		return abi.OK
	})
	d := newDispatcher(t, h)

	var o1, o2 uintptr
	_, err := V4O0(d, opCreateInt32, 7, uintptr(1), uintptr(2), uintptr(3), uintptr(4))
	require.NoError(t, err)
	assert.Equal(t, []uintptr{7, 1, 2, 3, 4}, got)

	_, err = V2O2(d, opCreateInt32, 7, uintptr(1), uintptr(2), &o1, &o2)
	require.NoError(t, err)
	assert.Equal(t, []uintptr{7, 1, 2, uintptr(unsafe.Pointer(&o1)), uintptr(unsafe.Pointer(&o2))}, got)
}

func TestNew_NilTable(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}

func TestText(t *testing.T) {
	tx := NewText("")
	assert.NotNil(t, tx.Ptr(), "present empty string")
	assert.Equal(t, []byte{0}, tx.Bytes())
	tx.Release()
	tx.Release()

	opt := OptionalText("")
	assert.Nil(t, opt.Ptr())
	assert.Equal(t, []byte{0}, opt.Bytes(), "still terminated")
	opt.Release()

	s := NewText("héllo")
	assert.Equal(t, append([]byte("héllo"), 0), s.Bytes())
	s.Release()
	assert.Nil(t, s.Ptr())
}

func TestText_StaleReleaseKeepsReusedBuffer(t *testing.T) {
	before := OutstandingText()
	first := NewText("first")
	first.Release()

	second := NewText("second")
	first.Release()
	copied := first
	copied.Release()

	require.NotNil(t, second.Ptr(), "live buffer survives stale releases")
	assert.Equal(t, append([]byte("second"), 0), second.Bytes())
	assert.Nil(t, first.Ptr())
	assert.Nil(t, first.Bytes())
	assert.Equal(t, before+1, OutstandingText())

	second.Release()
	assert.Equal(t, before, OutstandingText())
}

func TestText_Boundary(t *testing.T) {
	heap := TextHeapAllocations()
	fits := NewText(strings.Repeat("a", inlineTextSize-1))
	assert.Equal(t, heap, TextHeapAllocations())
	fits.Release()

	spills := NewText(strings.Repeat("a", inlineTextSize))
	assert.Equal(t, heap+1, TextHeapAllocations())
	assert.Len(t, spills.Bytes(), inlineTextSize+1)
	spills.Release()
}

func TestDispatcher_Addr(t *testing.T) {
	h := testbed.New().Returns("napi_create_int32", abi.OK)
	d := newDispatcher(t, h)
	addr, err := d.Addr(opCreateInt32)
	require.NoError(t, err)
	assert.NotZero(t, addr)
	assert.Same(t, d.Table(), d.Table())

	_, err = d.Addr(opCount)
	assert.ErrorIs(t, err, errors.ErrInvalidArgument)
}
