package interop

import (
	"go.uber.org/zap"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/errors"
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/scope"
)

type (
	nameKey   string
	globalKey struct{}
	undefKey  struct{}
)

// Name returns the host string for name, interned in s's data block.
// Repeated lookups in the same scope reuse one handle.
func (r *Runtime) Name(s *scope.Scope, name string) (scope.Value[abi.Value], error) {
	return scope.Intern(s, nameKey(name), func() (abi.Value, error) {
		var v abi.Value
		return v, check(napi.CreateStringUTF8)(r.api.CreateStringUTF8(s.Env(), name, &v))
	})
}

// Global returns the global object, interned in s's data block.
func (r *Runtime) Global(s *scope.Scope) (scope.Value[abi.Value], error) {
	return scope.Intern(s, globalKey{}, func() (abi.Value, error) {
		var v abi.Value
		return v, check(napi.GetGlobal)(r.api.GetGlobal(s.Env(), &v))
	})
}

// Undefined returns the undefined value, interned in s's data block.
func (r *Runtime) Undefined(s *scope.Scope) (scope.Value[abi.Value], error) {
	return scope.Intern(s, undefKey{}, func() (abi.Value, error) {
		var v abi.Value
		return v, check(napi.GetUndefined)(r.api.GetUndefined(s.Env(), &v))
	})
}

// NewString creates a host string without interning it.
func (r *Runtime) NewString(s *scope.Scope, str string) (scope.Value[abi.Value], error) {
	if s == nil {
		return scope.Value[abi.Value]{}, errors.OutOfScope("string creation")
	}
	var v abi.Value
	if err := check(napi.CreateStringUTF8)(r.api.CreateStringUTF8(s.Env(), str, &v)); err != nil {
		return scope.Value[abi.Value]{}, err
	}
	return scope.NewIn(s, v)
}

// String copies the host string v into Go.
func (r *Runtime) String(s *scope.Scope, v scope.Value[abi.Value]) (string, error) {
	h, err := v.Handle()
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", errors.OutOfScope("string read")
	}
	var n uintptr
	if err := check(napi.GetValueStringUTF8)(r.api.GetValueStringUTF8(s.Env(), h, nil, &n)); err != nil {
		return "", err
	}
	buf := make([]byte, n+1)
	if err := check(napi.GetValueStringUTF8)(r.api.GetValueStringUTF8(s.Env(), h, buf, &n)); err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

// NamedProperty reads obj[name] using the interned key.
func (r *Runtime) NamedProperty(s *scope.Scope, obj scope.Value[abi.Value], name string) (scope.Value[abi.Value], error) {
	o, err := obj.Handle()
	if err != nil {
		return scope.Value[abi.Value]{}, err
	}
	key, err := r.Name(s, name)
	if err != nil {
		return scope.Value[abi.Value]{}, err
	}
	var v abi.Value
	if err := check(napi.GetProperty)(r.api.GetProperty(s.Env(), o, key.MustHandle(), &v)); err != nil {
		return scope.Value[abi.Value]{}, err
	}
	return scope.NewIn(s, v)
}

// SetNamedProperty writes obj[name] = v using the interned key.
func (r *Runtime) SetNamedProperty(s *scope.Scope, obj scope.Value[abi.Value], name string, v scope.Value[abi.Value]) error {
	o, err := obj.Handle()
	if err != nil {
		return err
	}
	val, err := v.Handle()
	if err != nil {
		return err
	}
	key, err := r.Name(s, name)
	if err != nil {
		return err
	}
	return check(napi.SetProperty)(r.api.SetProperty(s.Env(), o, key.MustHandle(), val))
}

// ThrowError throws a host Error with code and msg. An empty code throws
// without one.
func (r *Runtime) ThrowError(env abi.Env, code, msg string) error {
	if env == 0 {
		return errors.NullHandle(env.Category())
	}
	return check(napi.ThrowError)(r.api.ThrowError(env, code, msg))
}

// throw turns a Go error into a pending host exception unless one is
// already pending.
func (r *Runtime) throw(env abi.Env, code string, err error) {
	var pending bool
	if st, cerr := r.api.IsExceptionPending(env, &pending); cerr == nil && st == abi.OK && pending {
		r.logger.Debug("exception already pending", zap.Error(err))
		return
	}
	if terr := r.ThrowError(env, code, err.Error()); terr != nil {
		r.logger.Warn("throw failed", zap.Error(terr), zap.NamedError("thrown", err))
	}
}
