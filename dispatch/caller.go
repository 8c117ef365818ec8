package dispatch

import (
	"sync"

	"github.com/ebitengine/purego"
)

// Caller performs the raw foreign call. Arguments are already lowered to
// machine words, env first. The return is the raw result register.
type Caller interface {
	Call(fn uintptr, args ...uintptr) uintptr
	// CallF64 covers the (env, double, out) shape, whose double travels in a
	// floating-point register that Call cannot reach.
	CallF64(fn uintptr, env uintptr, v float64, out uintptr) uintptr
}

type f64Func = func(env uintptr, v float64, out uintptr) int32

// NativeCaller calls through purego with the platform C calling convention.
type NativeCaller struct {
	f64 sync.Map // fn address -> f64Func
}

// NewNativeCaller returns the purego-backed caller.
func NewNativeCaller() *NativeCaller {
	return &NativeCaller{}
}

func (c *NativeCaller) Call(fn uintptr, args ...uintptr) uintptr {
	r1, _, _ := purego.SyscallN(fn, args...)
	return r1
}

func (c *NativeCaller) CallF64(fn uintptr, env uintptr, v float64, out uintptr) uintptr {
	cached, ok := c.f64.Load(fn)
	if !ok {
		var f f64Func
		purego.RegisterFunc(&f, fn)
		cached, _ = c.f64.LoadOrStore(fn, f)
	}
	return uintptr(uint32(cached.(f64Func)(env, v, out)))
}
