// Package testbed is an in-process stand-in for a Node-API host. It
// satisfies symbols.Library and dispatch.Caller, so bindings can be
// exercised without node: every export is a Go handler that reads its
// arguments as machine words and writes results through out pointers.
package testbed

import (
	"fmt"
	"math"
	"sync"
	"unsafe"

	"github.com/wippyai/napi-runtime/abi"
)

// Handler implements one host export. args holds every lowered argument,
// env first for env-taking operations.
type Handler func(args []uintptr) abi.Status

// F64Handler implements an (env, double, out) export.
type F64Handler func(env uintptr, v float64, out uintptr) abi.Status

// Call records one foreign call as the host saw it.
type Call struct {
	Symbol string
	Args   []uintptr
	F64    float64
}

// Host is a fake Node-API host.
type Host struct {
	mu       sync.Mutex
	next     uintptr
	addrs    map[string]uintptr
	names    map[uintptr]string
	handlers map[uintptr]Handler
	f64      map[uintptr]F64Handler
	null     map[string]bool
	lookups  map[string]int
	calls    []Call
}

const baseAddr = 0x7f0000001000

// New returns an empty host. Unregistered symbols fail lookup.
func New() *Host {
	return &Host{
		next:     baseAddr,
		addrs:    make(map[string]uintptr),
		names:    make(map[uintptr]string),
		handlers: make(map[uintptr]Handler),
		f64:      make(map[uintptr]F64Handler),
		null:     make(map[string]bool),
		lookups:  make(map[string]int),
	}
}

func (h *Host) addr(symbol string) uintptr {
	if a, ok := h.addrs[symbol]; ok {
		return a
	}
	a := h.next
	h.next += 0x10
	h.addrs[symbol] = a
	h.names[a] = symbol
	return a
}

// Handle registers fn as the implementation of symbol.
func (h *Host) Handle(symbol string, fn Handler) *Host {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[h.addr(symbol)] = fn
	return h
}

// HandleF64 registers a double-taking export.
func (h *Host) HandleF64(symbol string, fn F64Handler) *Host {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.f64[h.addr(symbol)] = fn
	return h
}

// Returns registers symbol as a handler that only returns st.
func (h *Host) Returns(symbol string, st abi.Status) *Host {
	return h.Handle(symbol, func([]uintptr) abi.Status { return st })
}

// Null makes symbol resolve successfully to address zero.
func (h *Host) Null(symbol string) *Host {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.null[symbol] = true
	return h
}

// Lookup implements symbols.Library.
func (h *Host) Lookup(name string) (uintptr, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lookups[name]++
	if h.null[name] {
		return 0, nil
	}
	a, ok := h.addrs[name]
	if !ok {
		return 0, fmt.Errorf("undefined symbol: %s", name)
	}
	return a, nil
}

// Lookups returns how many times name was looked up.
func (h *Host) Lookups(name string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lookups[name]
}

// Call implements dispatch.Caller.
func (h *Host) Call(fn uintptr, args ...uintptr) uintptr {
	h.mu.Lock()
	name := h.names[fn]
	handler := h.handlers[fn]
	h.calls = append(h.calls, Call{Symbol: name, Args: append([]uintptr(nil), args...)})
	h.mu.Unlock()
	if handler == nil {
		panic(fmt.Sprintf("testbed: call to unhandled address %#x (%s)", fn, name))
	}
	return uintptr(uint32(handler(args)))
}

// CallF64 implements dispatch.Caller.
func (h *Host) CallF64(fn uintptr, env uintptr, v float64, out uintptr) uintptr {
	h.mu.Lock()
	name := h.names[fn]
	handler := h.f64[fn]
	h.calls = append(h.calls, Call{Symbol: name, Args: []uintptr{env, out}, F64: v})
	h.mu.Unlock()
	if handler == nil {
		panic(fmt.Sprintf("testbed: f64 call to unhandled address %#x (%s)", fn, name))
	}
	return uintptr(uint32(handler(env, v, out)))
}

// Calls returns a snapshot of every call so far.
func (h *Host) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Call(nil), h.calls...)
}

// LastCall returns the most recent call, or the zero Call.
func (h *Host) LastCall() Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.calls) == 0 {
		return Call{}
	}
	return h.calls[len(h.calls)-1]
}

// Reset forgets recorded calls and lookup counts.
func (h *Host) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = nil
	h.lookups = make(map[string]int)
}

// Stub registers symbol with a handler that writes Want(kind, i) through
// every out slot of sig and returns st.
func (h *Host) Stub(symbol string, sig abi.Signature, st abi.Status) *Host {
	return h.Handle(symbol, func(args []uintptr) abi.Status {
		off := 1
		if sig.NoEnv {
			off = 0
		}
		for i, k := range sig.Args {
			if !k.IsOut() || off+i >= len(args) || args[off+i] == 0 {
				continue
			}
			WriteKind(args[off+i], k, Want(k, i))
		}
		return st
	})
}

// Want is the raw value Stub writes for an out slot of kind k at index i.
func Want(k abi.ArgKind, i int) uint64 {
	switch k {
	case abi.OutWord, abi.InOutWord:
		return 0xA000 + uint64(i)
	case abi.OutI32:
		return uint64(uint32(int32(-100 - i)))
	case abi.OutU32:
		return 200 + uint64(i)
	case abi.OutI64:
		return uint64(int64(-300 - i))
	case abi.OutF64:
		return math.Float64bits(float64(i) + 0.5)
	case abi.OutBool:
		return 1
	}
	return 0
}

// WriteKind stores raw at addr with the width of k.
func WriteKind(addr uintptr, k abi.ArgKind, raw uint64) {
	switch k.Size() {
	case 1:
		Write(addr, uint8(raw))
	case 4:
		Write(addr, uint32(raw))
	case 8:
		Write(addr, raw)
	}
}

// ReadKind loads a value of the width of k from addr.
func ReadKind(addr uintptr, k abi.ArgKind) uint64 {
	switch k.Size() {
	case 1:
		return uint64(Read[uint8](addr))
	case 4:
		return uint64(Read[uint32](addr))
	case 8:
		return Read[uint64](addr)
	}
	return 0
}

// Write stores v at a lowered address.
func Write[T any](addr uintptr, v T) {
	*(*T)(ptr(addr)) = v
}

// Read loads a T from a lowered address.
func Read[T any](addr uintptr) T {
	return *(*T)(ptr(addr))
}

// Bytes views n bytes at a lowered address.
func Bytes(addr uintptr, n int) []byte {
	if addr == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(ptr(addr)), n)
}

// String copies a NUL-terminated string at a lowered address.
func String(addr uintptr) string {
	return abi.GoString(addr)
}

func ptr(addr uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
}
