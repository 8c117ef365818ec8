package interop

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/errors"
	"github.com/wippyai/napi-runtime/napi"
	"github.com/wippyai/napi-runtime/resource"
	"github.com/wippyai/napi-runtime/scope"
)

// Each trampoline is created once and shared by every env: purego keeps a
// fixed number of callback slots for the life of the process.
type trampoline struct {
	once sync.Once
	fn   any
	addr uintptr
}

// Addr returns the C entry of the trampoline, creating it on first use.
func (t *trampoline) Addr() uintptr {
	t.once.Do(func() {
		t.addr = newCallback(t.fn)
	})
	return t.addr
}

// entry is Addr that fails where callbacks are unavailable.
func (t *trampoline) entry() (uintptr, error) {
	if addr := t.Addr(); addr != 0 {
		return addr, nil
	}
	return 0, errors.Unsupported(errors.PhaseEntry, "host callbacks on this platform")
}

// Every trampoline returns a word: host callbacks declared void ignore it.
var (
	// napi_value (*)(napi_env, napi_callback_info)
	functionTrampoline = &trampoline{fn: func(env, info uintptr) uintptr {
		return uintptr(invokeFunction(abi.Env(env), abi.CallbackInfo(info)))
	}}

	// void (*)(napi_env, void* data, void* hint)
	finalizeTrampoline = &trampoline{fn: func(env, data, hint uintptr) uintptr {
		finalize(abi.Env(env), data, hint)
		return 0
	}}

	// void (*)(void* arg)
	cleanupTrampoline = &trampoline{fn: func(arg uintptr) uintptr {
		cleanup(abi.Env(arg))
		return 0
	}}

	// napi_value (*)(napi_env, napi_value exports)
	entryTrampoline = &trampoline{fn: func(env, exports uintptr) uintptr {
		return uintptr(Bootstrap(abi.Env(env), abi.Value(exports)))
	}}
)

// inlineArgs is how many arguments a callback reads before asking the
// host for the full count.
const inlineArgs = 8

// Func implements a function the host can call. Returning the zero Value
// yields undefined; returning an error throws it.
type Func func(c *Call) (scope.Value[abi.Value], error)

// Call is one invocation of a Func. It is only valid until the Func
// returns.
type Call struct {
	rt    *Runtime
	scope *scope.Scope
	this  scope.Value[abi.Value]
	args  []scope.Value[abi.Value]
}

// Runtime returns the runtime the call arrived on.
func (c *Call) Runtime() *Runtime { return c.rt }

// Scope returns the scope the call runs in.
func (c *Call) Scope() *scope.Scope { return c.scope }

// Env returns the calling env.
func (c *Call) Env() abi.Env { return c.scope.Env() }

// This returns the receiver.
func (c *Call) This() scope.Value[abi.Value] { return c.this }

// Len returns the number of arguments passed.
func (c *Call) Len() int { return len(c.args) }

// Args returns the arguments passed.
func (c *Call) Args() []scope.Value[abi.Value] { return c.args }

// Arg returns argument i, or undefined when fewer were passed.
func (c *Call) Arg(i int) (scope.Value[abi.Value], error) {
	if i >= 0 && i < len(c.args) {
		return c.args[i], nil
	}
	return c.rt.Undefined(c.scope)
}

// NewFunction creates a host function named name that runs fn. fn stays
// in the resource table until the host collects the function.
func (r *Runtime) NewFunction(s *scope.Scope, name string, fn Func) (scope.Value[abi.Value], error) {
	if fn == nil {
		return scope.Value[abi.Value]{}, errors.InvalidArgument(errors.PhaseEntry, "nil function")
	}
	if s == nil {
		return scope.Value[abi.Value]{}, errors.OutOfScope("function creation")
	}
	cb, err := functionTrampoline.entry()
	if err != nil {
		return scope.Value[abi.Value]{}, err
	}
	fin, err := finalizeTrampoline.entry()
	if err != nil {
		return scope.Value[abi.Value]{}, err
	}
	h := r.table.Insert(resource.KindCallback, fn)
	if h == 0 {
		return scope.Value[abi.Value]{}, errors.Wrap(errors.PhaseEntry, errors.KindInvalidArgument, resource.ErrClosed, "register function")
	}
	env := s.Env()
	var v abi.Value
	if err := check(napi.CreateFunction)(r.api.CreateFunction(env, name, cb, uintptr(h), &v)); err != nil {
		r.table.Remove(h)
		return scope.Value[abi.Value]{}, err
	}
	if err := check(napi.AddFinalizer)(r.api.AddFinalizer(env, v, uintptr(h), fin, 0, nil)); err != nil {
		r.logger.Warn("function finalizer not attached",
			zap.String("name", name),
			zap.Error(err))
	}
	return scope.NewIn(s, v)
}

// invokeFunction is the Go body behind every function NewFunction creates.
// The host has a handle scope open for the call.
func invokeFunction(env abi.Env, info abi.CallbackInfo) abi.Value {
	r, ok := For(env)
	if !ok {
		Logger().Error("callback for unattached env", zap.Uintptr("env", uintptr(env)))
		return 0
	}
	var result abi.Value
	err := r.boundary(env, func(s *scope.Scope) error {
		v, err := r.dispatch(s, info)
		if err != nil || v.Scope() == nil {
			return err
		}
		result, err = v.Handle()
		return err
	})
	if err != nil {
		r.logger.Debug("callback failed", zap.Error(err))
		r.throw(env, "", err)
		return 0
	}
	return result
}

func (r *Runtime) dispatch(s *scope.Scope, info abi.CallbackInfo) (scope.Value[abi.Value], error) {
	env := s.Env()
	var (
		argc uintptr
		this abi.Value
		data uintptr
	)
	argv := make([]abi.Value, inlineArgs)
	if err := check(napi.GetCbInfo)(r.api.GetCbInfo(env, info, &argc, argv, &this, &data)); err != nil {
		return scope.Value[abi.Value]{}, err
	}
	if argc > uintptr(len(argv)) {
		argv = make([]abi.Value, argc)
		if err := check(napi.GetCbInfo)(r.api.GetCbInfo(env, info, &argc, argv, nil, nil)); err != nil {
			return scope.Value[abi.Value]{}, err
		}
	}
	argv = argv[:min(argc, uintptr(len(argv)))]

	h := resource.Handle(data)
	v, ok := r.table.Borrow(h)
	if !ok {
		return scope.Value[abi.Value]{}, errors.New(errors.PhaseEntry, errors.KindInvalidArgument).
			Detail("callback data %#x is not a registered function", data).Build()
	}
	defer r.table.ReturnBorrow(h)
	fn, ok := v.(Func)
	if !ok {
		return scope.Value[abi.Value]{}, errors.New(errors.PhaseEntry, errors.KindInvalidArgument).
			Detail("callback data %#x holds %T", data, v).Build()
	}

	call := &Call{rt: r, scope: s, args: make([]scope.Value[abi.Value], len(argv))}
	if this != 0 {
		call.this, _ = scope.NewIn(s, this)
	}
	for i, a := range argv {
		av, err := scope.NewIn(s, a)
		if err != nil {
			return scope.Value[abi.Value]{}, err
		}
		call.args[i] = av
	}
	return fn(call)
}

// finalize releases the table entries behind a collected host object:
// the data value, and the OnCollect function travelling as the hint.
func finalize(env abi.Env, data, hint uintptr) {
	r, ok := For(env)
	if !ok {
		Logger().Debug("finalizer after env detached",
			zap.Uintptr("env", uintptr(env)),
			zap.Uintptr("data", data))
		return
	}
	if data != 0 {
		if _, ok := r.table.Remove(resource.Handle(data)); !ok {
			r.logger.Debug("finalized value already released",
				zap.Uintptr("data", data),
				zap.Uintptr("hint", hint))
		}
	}
	if hint != 0 {
		r.runFinalizeHint(hint)
	}
}

// cleanup runs when the host tears env down.
func cleanup(env abi.Env) {
	r, ok := For(env)
	if !ok {
		return
	}
	Detach(env)
	if err := r.Close(); err != nil {
		r.logger.Warn("runtime close failed", zap.Error(err))
	}
	r.logger.Debug("env cleaned up", zap.Uintptr("env", uintptr(env)))
}

// boundary runs fn in a scope for one host-to-Go transition. Scopes fn
// leaves open are closed before returning, so the stack is back at the
// depth it had on entry and handles from the call are dead.
func (r *Runtime) boundary(env abi.Env, fn func(*scope.Scope) error) error {
	depth := r.stack.Depth()
	err := guard(func() error {
		return r.stack.Do(env, fn)
	})
	if r.stack.Depth() > depth {
		if uerr := r.stack.Unwind(depth); err == nil {
			err = uerr
		}
	}
	return err
}

// guard runs fn and reports a panic as an error. Panics must not unwind
// into host frames.
func guard(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.New(errors.PhaseEntry, errors.KindPanic).
				Detail("panic: %v", p).
				Value(p).
				Build()
		}
	}()
	return fn()
}
