package dispatch

import (
	"runtime"
	"unsafe"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/errors"
	"github.com/wippyai/napi-runtime/symbols"
)

// Dispatcher turns an operation identifier into a foreign call.
type Dispatcher struct {
	table  *symbols.Table
	caller Caller
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithCaller replaces the purego caller, typically with a fake in tests.
func WithCaller(c Caller) Option {
	return func(d *Dispatcher) {
		d.caller = c
	}
}

// New creates a dispatcher over table.
func New(table *symbols.Table, opts ...Option) (*Dispatcher, error) {
	if table == nil {
		return nil, errors.InvalidArgument(errors.PhaseDispatch, "nil symbol table")
	}
	d := &Dispatcher{table: table}
	for _, opt := range opts {
		opt(d)
	}
	if d.caller == nil {
		d.caller = NewNativeCaller()
	}
	return d, nil
}

// Table returns the symbol table the dispatcher resolves through.
func (d *Dispatcher) Table() *symbols.Table {
	return d.table
}

// Addr resolves id. Resolution failures surface unchanged; a null address
// is a hard error and is never called.
func (d *Dispatcher) Addr(id int) (uintptr, error) {
	addr, err := d.table.Lookup(id)
	if err != nil {
		return 0, err
	}
	if addr == 0 {
		return 0, errors.NullAddress(d.table.Export(id))
	}
	return addr, nil
}

// Invoke calls id with words that are already lowered. Memory behind
// them is the caller's to keep alive and in place.
func (d *Dispatcher) Invoke(id int, args ...uintptr) (abi.Status, error) {
	return d.invoke(id, args...)
}

// invoke forwards the host status as-is. On a local failure the status is
// GenericFailure so a caller that drops the error still does not see OK.
func (d *Dispatcher) invoke(id int, args ...uintptr) (abi.Status, error) {
	addr, err := d.Addr(id)
	if err != nil {
		return abi.GenericFailure, err
	}
	return abi.Status(int32(d.caller.Call(addr, args...))), nil
}

func (d *Dispatcher) invokeF64(id int, env abi.Env, v float64, out uintptr) (abi.Status, error) {
	addr, err := d.Addr(id)
	if err != nil {
		return abi.GenericFailure, err
	}
	return abi.Status(int32(d.caller.CallF64(addr, uintptr(env), v, out))), nil
}

// Word is any integer-like value passed in a general-purpose register.
type Word interface {
	~uintptr | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Arg is a by-value slot: a word, or Go memory the host reads during the
// call. Pointers are pinned until the call returns.
type Arg interface {
	Word | unsafe.Pointer
}

func word[T Arg](p *runtime.Pinner, v T) uintptr {
	if ptr, ok := any(v).(unsafe.Pointer); ok {
		return pinned(p, ptr)
	}
	return uintptr(v)
}

func out[O any](p *runtime.Pinner, o *O) uintptr {
	return pinned(p, unsafe.Pointer(o))
}

func pinned(p *runtime.Pinner, ptr unsafe.Pointer) uintptr {
	if ptr != nil {
		p.Pin(ptr)
	}
	return uintptr(ptr)
}
