package interop

import (
	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/errors"
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/resource"
	"github.com/wippyai/napi-runtime/scope"
)

// Wrap attaches v to the host object obj. v stays in the resource table
// until the host collects obj or RemoveWrap detaches it.
func (r *Runtime) Wrap(s *scope.Scope, obj scope.Value[abi.Value], v any) error {
	if s == nil {
		return errors.OutOfScope("wrap")
	}
	o, err := obj.Handle()
	if err != nil {
		return err
	}
	fin, err := finalizeTrampoline.entry()
	if err != nil {
		return err
	}
	h := r.table.Insert(resource.KindWrapped, v)
	if h == 0 {
		return errors.Wrap(errors.PhaseEntry, errors.KindInvalidArgument, resource.ErrClosed, "wrap")
	}
	if err := check(napi.Wrap)(r.api.Wrap(s.Env(), o, uintptr(h), fin, 0, nil)); err != nil {
		r.table.Remove(h)
		return err
	}
	return nil
}

// Unwrap returns the Go value attached to obj by Wrap.
func (r *Runtime) Unwrap(s *scope.Scope, obj scope.Value[abi.Value]) (any, error) {
	h, err := r.native(s, obj, false)
	if err != nil {
		return nil, err
	}
	v, _ := r.table.GetTyped(h, resource.KindWrapped)
	return v, nil
}

// RemoveWrap detaches the Go value from obj and returns it. The host no
// longer finalizes obj on its behalf.
func (r *Runtime) RemoveWrap(s *scope.Scope, obj scope.Value[abi.Value]) (any, error) {
	h, err := r.native(s, obj, true)
	if err != nil {
		return nil, err
	}
	v, _ := r.table.Remove(h)
	return v, nil
}

// UnwrapAs is Unwrap with a type check.
func UnwrapAs[T any](r *Runtime, s *scope.Scope, obj scope.Value[abi.Value]) (T, error) {
	var zero T
	v, err := r.Unwrap(s, obj)
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, errors.New(errors.PhaseHandle, errors.KindInvalidArgument).
			Detail("wrapped value is %T, not %T", v, zero).Build()
	}
	return t, nil
}

func (r *Runtime) native(s *scope.Scope, obj scope.Value[abi.Value], remove bool) (resource.Handle, error) {
	if s == nil {
		return 0, errors.OutOfScope("unwrap")
	}
	o, err := obj.Handle()
	if err != nil {
		return 0, err
	}
	var native uintptr
	if remove {
		err = check(napi.RemoveWrap)(r.api.RemoveWrap(s.Env(), o, &native))
	} else {
		err = check(napi.Unwrap)(r.api.Unwrap(s.Env(), o, &native))
	}
	if err != nil {
		return 0, err
	}
	h := resource.Handle(native)
	if _, ok := r.table.GetTyped(h, resource.KindWrapped); !ok {
		return 0, errors.New(errors.PhaseHandle, errors.KindInvalidArgument).
			Detail("object wraps %#x, not a Go value", native).Build()
	}
	return h, nil
}
