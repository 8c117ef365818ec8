package scope

import (
	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/errors"
)

// Value is a handle bound to the scope it was created in. It can only be
// read while that scope is open.
type Value[H abi.Handle] struct {
	h     H
	scope *Scope
	gen   uint64
}

// New binds h to the current scope of st.
func New[H abi.Handle](st *Stack, h H) (Value[H], error) {
	if h == 0 {
		return Value[H]{}, errors.NullHandle(h.Category())
	}
	if st == nil || st.current == nil {
		return Value[H]{}, errors.OutOfScope(h.Category() + " binding")
	}
	return Value[H]{h: h, scope: st.current, gen: st.current.gen}, nil
}

// NewIn binds h to s, which must still be open.
func NewIn[H abi.Handle](s *Scope, h H) (Value[H], error) {
	if h == 0 {
		return Value[H]{}, errors.NullHandle(h.Category())
	}
	if s == nil {
		return Value[H]{}, errors.OutOfScope(h.Category() + " binding")
	}
	if s.IsDisposed() {
		return Value[H]{}, errors.ScopeClosed(s.gen)
	}
	return Value[H]{h: h, scope: s, gen: s.gen}, nil
}

// Handle returns the raw handle if its scope is still open.
func (v Value[H]) Handle() (H, error) {
	var zero H
	if v.scope == nil {
		return zero, errors.NullHandle(zero.Category())
	}
	if v.scope.IsDisposed() {
		return zero, errors.ScopeClosed(v.gen)
	}
	return v.h, nil
}

// TryHandle is Handle without the error.
func (v Value[H]) TryHandle() (H, bool) {
	h, err := v.Handle()
	return h, err == nil
}

// MustHandle panics with the Handle error.
func (v Value[H]) MustHandle() H {
	h, err := v.Handle()
	if err != nil {
		panic(err)
	}
	return h
}

func (v Value[H]) IsAlive() bool {
	return v.scope != nil && !v.scope.IsDisposed()
}

func (v Value[H]) Scope() *Scope {
	return v.scope
}

// Generation is the generation of the owning scope.
func (v Value[H]) Generation() uint64 {
	return v.gen
}
