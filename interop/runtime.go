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

// Runtime ties the facade to a scope stack and a resource table for one
// env. It must only be used on the thread that owns the env.
type Runtime struct {
	api    *napi.API
	stack  *scope.Stack
	table  *resource.Table
	logger *zap.Logger

	instance resource.Handle
}

// Option configures New.
type Option func(*Runtime)

// WithLogger sets the logger for the runtime and its default stack.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runtime) {
		r.logger = l
	}
}

// WithStack uses st instead of a fresh stack.
func WithStack(st *scope.Stack) Option {
	return func(r *Runtime) {
		r.stack = st
	}
}

// WithTable keeps wrapped values and callbacks in t.
func WithTable(t *resource.Table) Option {
	return func(r *Runtime) {
		r.table = t
	}
}

// New creates a runtime over api.
func New(api *napi.API, opts ...Option) (*Runtime, error) {
	if api == nil {
		return nil, errors.InvalidArgument(errors.PhaseEntry, "nil api")
	}
	r := &Runtime{api: api}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = Logger()
	}
	if r.stack == nil {
		r.stack = scope.NewStack(scope.WithLogger(r.logger))
	}
	if r.table == nil {
		r.table = resource.NewTable()
	}
	return r, nil
}

// API returns the facade.
func (r *Runtime) API() *napi.API {
	return r.api
}

// Stack returns the scope stack.
func (r *Runtime) Stack() *scope.Stack {
	return r.stack
}

// Table returns the resource table.
func (r *Runtime) Table() *resource.Table {
	return r.table
}

// Close drops every value the runtime still holds.
func (r *Runtime) Close() error {
	return r.table.Close()
}

// WithHandleScope runs fn inside a host handle scope mirrored by a Scope.
// Both close when fn returns; handles created in fn die with them.
func (r *Runtime) WithHandleScope(env abi.Env, fn func(*scope.Scope) error) error {
	return r.stack.Do(env, func(s *scope.Scope) error {
		var hs abi.HandleScope
		if err := check(napi.OpenHandleScope)(r.api.OpenHandleScope(env, &hs)); err != nil {
			return err
		}
		s.OnClose(func() error {
			return check(napi.CloseHandleScope)(r.api.CloseHandleScope(env, hs))
		})
		return fn(s)
	})
}

// WithEscapableHandleScope is WithHandleScope for fn that produces one
// handle to keep. The returned handle is escaped into the enclosing host
// scope and outlives the one fn ran in.
func (r *Runtime) WithEscapableHandleScope(env abi.Env, fn func(*scope.Scope) (abi.Value, error)) (abi.Value, error) {
	var escaped abi.Value
	err := r.stack.Do(env, func(s *scope.Scope) error {
		var hs abi.EscapableHandleScope
		if err := check(napi.OpenEscapableHandleScope)(r.api.OpenEscapableHandleScope(env, &hs)); err != nil {
			return err
		}
		s.OnClose(func() error {
			return check(napi.CloseEscapableHandleScope)(r.api.CloseEscapableHandleScope(env, hs))
		})
		v, err := fn(s)
		if err != nil {
			return err
		}
		return check(napi.EscapeHandle)(r.api.EscapeHandle(env, hs, v, &escaped))
	})
	if err != nil {
		return 0, err
	}
	return escaped, nil
}

// check folds the result of facade call m into one error: the call error
// when the host was not reached, otherwise a status error naming the
// export unless the status is OK. The status stays reachable through
// errors.Is and errors.As.
func check(m napi.Method) func(abi.Status, error) error {
	return func(st abi.Status, err error) error {
		if err != nil {
			return err
		}
		if st == abi.OK {
			return nil
		}
		return errors.Status(errors.PhaseDispatch, m.Export(), st)
	}
}

var runtimes sync.Map // abi.Env -> *Runtime

// Attach makes r the runtime that host callbacks for env are routed to.
func (r *Runtime) Attach(env abi.Env) {
	runtimes.Store(env, r)
}

// Detach stops routing callbacks for env to any runtime.
func Detach(env abi.Env) {
	runtimes.Delete(env)
}

// For returns the runtime attached to env.
func For(env abi.Env) (*Runtime, bool) {
	v, ok := runtimes.Load(env)
	if !ok {
		return nil, false
	}
	return v.(*Runtime), true
}
