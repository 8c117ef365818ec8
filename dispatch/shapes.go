package dispatch

import (
	"runtime"
	"unsafe"

	"github.com/wippyai/napi-runtime/abi"
)

// Call shapes. VnOm takes n by-value slots followed by m out slots, with
// env always first. Value slots keep their C order; pointer slots inside
// the value run are unsafe.Pointer args. Every shape pins the Go memory it
// lowers, so the host may write through it even if the call reenters Go.

func V0O1[O any](d *Dispatcher, id int, env abi.Env, o1 *O) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), out(&p, o1))
}

func V1O1[A Arg, O any](d *Dispatcher, id int, env abi.Env, a A, o1 *O) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), word(&p, a), out(&p, o1))
}

func V2O1[A, B Arg, O any](d *Dispatcher, id int, env abi.Env, a A, b B, o1 *O) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), word(&p, a), word(&p, b), out(&p, o1))
}

func V3O1[A, B, C Arg, O any](d *Dispatcher, id int, env abi.Env, a A, b B, c C, o1 *O) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), word(&p, a), word(&p, b), word(&p, c), out(&p, o1))
}

func V4O1[A, B, C, D Arg, O any](d *Dispatcher, id int, env abi.Env, a A, b B, c C, dd D, o1 *O) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), word(&p, a), word(&p, b), word(&p, c), word(&p, dd), out(&p, o1))
}

func V5O1[A, B, C, D, E Arg, O any](d *Dispatcher, id int, env abi.Env, a A, b B, c C, dd D, e E, o1 *O) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), word(&p, a), word(&p, b), word(&p, c), word(&p, dd), word(&p, e), out(&p, o1))
}

func V6O1[A, B, C, D, E, F Arg, O any](d *Dispatcher, id int, env abi.Env, a A, b B, c C, dd D, e E, f F, o1 *O) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), word(&p, a), word(&p, b), word(&p, c), word(&p, dd), word(&p, e), word(&p, f), out(&p, o1))
}

func V1O0[A Arg](d *Dispatcher, id int, env abi.Env, a A) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), word(&p, a))
}

func V2O0[A, B Arg](d *Dispatcher, id int, env abi.Env, a A, b B) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), word(&p, a), word(&p, b))
}

func V3O0[A, B, C Arg](d *Dispatcher, id int, env abi.Env, a A, b B, c C) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), word(&p, a), word(&p, b), word(&p, c))
}

func V4O0[A, B, C, D Arg](d *Dispatcher, id int, env abi.Env, a A, b B, c C, dd D) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), word(&p, a), word(&p, b), word(&p, c), word(&p, dd))
}

func V0O2[O1, O2 any](d *Dispatcher, id int, env abi.Env, o1 *O1, o2 *O2) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), out(&p, o1), out(&p, o2))
}

func V1O2[A Arg, O1, O2 any](d *Dispatcher, id int, env abi.Env, a A, o1 *O1, o2 *O2) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), word(&p, a), out(&p, o1), out(&p, o2))
}

func V2O2[A, B Arg, O1, O2 any](d *Dispatcher, id int, env abi.Env, a A, b B, o1 *O1, o2 *O2) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), word(&p, a), word(&p, b), out(&p, o1), out(&p, o2))
}

// V3O2 is the callback-info shape: a value, an in/out count, a caller
// buffer, then two outs.
func V3O2[A, B, C Arg, O1, O2 any](d *Dispatcher, id int, env abi.Env, a A, b B, c C, o1 *O1, o2 *O2) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), word(&p, a), word(&p, b), word(&p, c), out(&p, o1), out(&p, o2))
}

func V1O4[A Arg, O1, O2, O3, O4 any](d *Dispatcher, id int, env abi.Env, a A, o1 *O1, o2 *O2, o3 *O3, o4 *O4) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), word(&p, a), out(&p, o1), out(&p, o2), out(&p, o3), out(&p, o4))
}

func V1O5[A Arg, O1, O2, O3, O4, O5 any](d *Dispatcher, id int, env abi.Env, a A, o1 *O1, o2 *O2, o3 *O3, o4 *O4, o5 *O5) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, uintptr(env), word(&p, a), out(&p, o1), out(&p, o2), out(&p, o3), out(&p, o4), out(&p, o5))
}

// F64O1 passes one double, which travels in a floating-point register.
func F64O1[O any](d *Dispatcher, id int, env abi.Env, v float64, o1 *O) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invokeF64(id, env, v, out(&p, o1))
}

// Raw calls an operation that takes no env.
func Raw[A Arg](d *Dispatcher, id int, a A) (abi.Status, error) {
	var p runtime.Pinner
	defer p.Unpin()
	return d.invoke(id, word(&p, a))
}

// Text2 passes two optional strings as NUL-terminated UTF-8. An empty
// string is absent and travels as NULL. Both buffers are released when the
// call returns, whatever the outcome.
func Text2(d *Dispatcher, id int, env abi.Env, first, second string) (abi.Status, error) {
	a := OptionalText(first)
	defer a.Release()
	b := OptionalText(second)
	defer b.Release()
	return V2O0(d, id, env, a.Ptr(), b.Ptr())
}

// Text1 is (value, name, *out): a named lookup on an object.
func Text1[O any](d *Dispatcher, id int, env abi.Env, obj abi.Value, name string, o1 *O) (abi.Status, error) {
	t := NewText(name)
	defer t.Release()
	return V2O1(d, id, env, obj, t.Ptr(), o1)
}

// Text1V is (value, name, value): a named store.
func Text1V(d *Dispatcher, id int, env abi.Env, obj abi.Value, name string, v abi.Value) (abi.Status, error) {
	t := NewText(name)
	defer t.Release()
	return V3O0(d, id, env, obj, t.Ptr(), v)
}

// Buf is (value, buffer, capacity, *length), the string getter shape. An
// empty buf travels as NULL, which asks the host for the length only.
func Buf[E any](d *Dispatcher, id int, env abi.Env, v abi.Value, buf []E, n *uintptr) (abi.Status, error) {
	return V3O1(d, id, env, v, sliceData(buf), uintptr(len(buf)), n)
}

// BufIn is (buffer, length, *out) for input text and byte copies. An empty
// buffer still travels as a non-NULL pointer with length zero.
func BufIn[E any, O any](d *Dispatcher, id int, env abi.Env, buf []E, o1 *O) (abi.Status, error) {
	ptr := sliceData(buf)
	if ptr == nil {
		ptr = unsafe.Pointer(&emptyInput)
	}
	return V2O1(d, id, env, ptr, uintptr(len(buf)), o1)
}

// CB is the callback-info shape. argc is read as the capacity of argv and
// written back with the actual count; any of the outs may be nil.
func CB[D any](d *Dispatcher, id int, env abi.Env, info abi.CallbackInfo, argc *uintptr, argv []abi.Value, this *abi.Value, data *D) (abi.Status, error) {
	return V3O2(d, id, env, info, unsafe.Pointer(argc), sliceData(argv), this, data)
}

// BigWords is (value, *sign, &count, words) for BigInt word export.
func BigWords(d *Dispatcher, id int, env abi.Env, v abi.Value, sign *int32, count *uintptr, words []uint64) (abi.Status, error) {
	return V4O0(d, id, env, v, unsafe.Pointer(sign), unsafe.Pointer(count), sliceData(words))
}

var emptyInput [8]byte

func sliceData[E any](s []E) unsafe.Pointer {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(s))
}
