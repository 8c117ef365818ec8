package interop

import (
	"go.uber.org/zap"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/errors"
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/resource"
	"github.com/wippyai/napi-runtime/scope"
)

// NewExternal creates a host external value carrying v. v stays in the
// resource table until the host collects the external.
func (r *Runtime) NewExternal(s *scope.Scope, v any) (scope.Value[abi.Value], error) {
	if s == nil {
		return scope.Value[abi.Value]{}, errors.OutOfScope("external creation")
	}
	fin, err := finalizeTrampoline.entry()
	if err != nil {
		return scope.Value[abi.Value]{}, err
	}
	h := r.table.Insert(resource.KindExternal, v)
	if h == 0 {
		return scope.Value[abi.Value]{}, errors.Wrap(errors.PhaseEntry, errors.KindInvalidArgument, resource.ErrClosed, "external")
	}
	var ext abi.Value
	if err := check(napi.CreateExternal)(r.api.CreateExternal(s.Env(), uintptr(h), fin, 0, &ext)); err != nil {
		r.table.Remove(h)
		return scope.Value[abi.Value]{}, err
	}
	return scope.NewIn(s, ext)
}

// ExternalValue returns the Go value carried by an external made with
// NewExternal.
func (r *Runtime) ExternalValue(s *scope.Scope, ext scope.Value[abi.Value]) (any, error) {
	if s == nil {
		return nil, errors.OutOfScope("external access")
	}
	e, err := ext.Handle()
	if err != nil {
		return nil, err
	}
	var data uintptr
	if err := check(napi.GetValueExternal)(r.api.GetValueExternal(s.Env(), e, &data)); err != nil {
		return nil, err
	}
	v, ok := r.table.GetTyped(resource.Handle(data), resource.KindExternal)
	if !ok {
		return nil, errors.New(errors.PhaseHandle, errors.KindInvalidArgument).
			Detail("external carries %#x, not a Go value", data).Build()
	}
	return v, nil
}

// SetInstanceData stores v as the instance data of env, replacing and
// releasing what an earlier call stored.
func (r *Runtime) SetInstanceData(env abi.Env, v any) error {
	if env == 0 {
		return errors.NullHandle(env.Category())
	}
	fin, err := finalizeTrampoline.entry()
	if err != nil {
		return err
	}
	h := r.table.Insert(resource.KindInstanceData, v)
	if h == 0 {
		return errors.Wrap(errors.PhaseEntry, errors.KindInvalidArgument, resource.ErrClosed, "instance data")
	}
	if err := check(napi.SetInstanceData)(r.api.SetInstanceData(env, uintptr(h), fin, 0)); err != nil {
		r.table.Remove(h)
		return err
	}
	// The host drops the previous data without finalizing it.
	if prev := r.instance; prev != 0 {
		r.table.Remove(prev)
	}
	r.instance = h
	return nil
}

// InstanceData returns the value SetInstanceData stored for env, or nil
// when none was stored.
func (r *Runtime) InstanceData(env abi.Env) (any, error) {
	if env == 0 {
		return nil, errors.NullHandle(env.Category())
	}
	var data uintptr
	if err := check(napi.GetInstanceData)(r.api.GetInstanceData(env, &data)); err != nil {
		return nil, err
	}
	if data == 0 {
		return nil, nil
	}
	v, ok := r.table.GetTyped(resource.Handle(data), resource.KindInstanceData)
	if !ok {
		return nil, errors.New(errors.PhaseHandle, errors.KindInvalidArgument).
			Detail("instance data %#x is not a Go value", data).Build()
	}
	return v, nil
}

// OnCollect runs fn once the host collects obj. fn runs on the host thread
// outside any scope and must not use handles.
func (r *Runtime) OnCollect(s *scope.Scope, obj scope.Value[abi.Value], fn func()) error {
	if fn == nil {
		return errors.InvalidArgument(errors.PhaseEntry, "nil finalizer")
	}
	if s == nil {
		return errors.OutOfScope("finalizer")
	}
	o, err := obj.Handle()
	if err != nil {
		return err
	}
	fin, err := finalizeTrampoline.entry()
	if err != nil {
		return err
	}
	h := r.table.Insert(resource.KindFinalizeHint, fn)
	if h == 0 {
		return errors.Wrap(errors.PhaseEntry, errors.KindInvalidArgument, resource.ErrClosed, "finalizer")
	}
	if err := check(napi.AddFinalizer)(r.api.AddFinalizer(s.Env(), o, 0, fin, uintptr(h), nil)); err != nil {
		r.table.Remove(h)
		return err
	}
	return nil
}

// runFinalizeHint removes and runs the function OnCollect stored.
func (r *Runtime) runFinalizeHint(hint uintptr) {
	h := resource.Handle(hint)
	if _, ok := r.table.GetTyped(h, resource.KindFinalizeHint); !ok {
		return
	}
	v, _ := r.table.Remove(h)
	fn, ok := v.(func())
	if !ok {
		return
	}
	if err := guard(func() error { fn(); return nil }); err != nil {
		r.logger.Error("finalizer failed", zap.Error(err))
	}
}
