package scope

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/errors"
)

// Stack tracks the scopes open on one thread of execution. It is not safe
// for concurrent use; give each env or thread its own.
type Stack struct {
	current *Scope
	depth   int
	gen     uint64
	logger  *zap.Logger
}

// StackOption configures a Stack.
type StackOption func(*Stack)

// WithLogger overrides the package logger for one stack.
func WithLogger(l *zap.Logger) StackOption {
	return func(st *Stack) {
		st.logger = l
	}
}

// NewStack returns an empty stack.
func NewStack(opts ...StackOption) *Stack {
	st := &Stack{}
	for _, opt := range opts {
		opt(st)
	}
	if st.logger == nil {
		st.logger = Logger()
	}
	return st
}

// Scope is one lifetime region. Once disposed it never comes back.
type Scope struct {
	stack    *Stack
	parent   *Scope
	env      abi.Env
	gen      uint64
	data     *Data
	hooks    []func() error
	disposed atomic.Bool
}

type enterConfig struct {
	fresh bool
}

// EnterOption configures Enter.
type EnterOption func(*enterConfig)

// FreshData gives the new scope its own data block instead of sharing
// its parent's.
func FreshData() EnterOption {
	return func(c *enterConfig) {
		c.fresh = true
	}
}

// Enter opens a scope for env nested in the current one.
func (st *Stack) Enter(env abi.Env, opts ...EnterOption) (*Scope, error) {
	if env == 0 {
		return nil, errors.NullHandle(env.Category())
	}
	var cfg enterConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	st.gen++
	s := &Scope{
		stack:  st,
		parent: st.current,
		env:    env,
		gen:    st.gen,
	}
	if cfg.fresh || s.parent == nil {
		s.data = newData()
	} else {
		s.data = s.parent.data
	}
	st.current = s
	st.depth++
	st.logger.Debug("scope entered",
		zap.Uint64("generation", s.gen),
		zap.Int("depth", st.depth),
		zap.Uintptr("env", uintptr(env)))
	return s, nil
}

// Close disposes s, which must be the current scope. Closing an already
// disposed scope does nothing. Close hooks run newest first while s is
// still current; the first hook error is returned after s is disposed.
func (st *Stack) Close(s *Scope) error {
	if s == nil {
		return errors.InvalidArgument(errors.PhaseScope, "nil scope")
	}
	if s.IsDisposed() {
		return nil
	}
	if s.stack != st || st.current != s {
		var cur uint64
		if st.current != nil {
			cur = st.current.gen
		}
		st.logger.Warn("scope closed out of order",
			zap.Uint64("closing", s.gen),
			zap.Uint64("current", cur))
		return errors.ScopeOrder(s.gen, cur)
	}

	var first error
	for i := len(s.hooks) - 1; i >= 0; i-- {
		if err := s.hooks[i](); err != nil && first == nil {
			first = err
		}
	}
	s.hooks = nil
	s.disposed.Store(true)
	st.current = s.parent
	st.depth--
	st.logger.Debug("scope closed",
		zap.Uint64("generation", s.gen),
		zap.Int("depth", st.depth))
	return first
}

// Current returns the innermost open scope, or nil.
func (st *Stack) Current() *Scope {
	return st.current
}

// Env returns the env of the current scope.
func (st *Stack) Env() (abi.Env, error) {
	if st.current == nil {
		return 0, errors.OutOfScope("env access")
	}
	return st.current.env, nil
}

// Depth returns the number of open scopes.
func (st *Stack) Depth() int {
	return st.depth
}

// Unwind closes scopes innermost first until depth remain open. It is how
// a call boundary recovers from scopes left open below it; the first close
// error is returned.
func (st *Stack) Unwind(depth int) error {
	var first error
	for st.depth > depth && st.current != nil {
		s := st.current
		st.logger.Warn("unwinding leaked scope",
			zap.Uint64("generation", s.gen),
			zap.Int("depth", st.depth))
		if err := st.Close(s); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Do runs fn inside a new scope and closes it whatever fn returns. A
// panic in fn still closes the scope before propagating.
func (st *Stack) Do(env abi.Env, fn func(*Scope) error, opts ...EnterOption) (err error) {
	s, err := st.Enter(env, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(s); err == nil {
			err = cerr
		}
	}()
	return fn(s)
}

// Parent returns the enclosing scope, nil at the root.
func (s *Scope) Parent() *Scope {
	return s.parent
}

func (s *Scope) Env() abi.Env {
	return s.env
}

// Generation is unique per stack and increases with every Enter.
func (s *Scope) Generation() uint64 {
	return s.gen
}

// IsDisposed may be called from any goroutine.
func (s *Scope) IsDisposed() bool {
	return s.disposed.Load()
}

func (s *Scope) Data() *Data {
	return s.data
}

// OnClose registers fn to run when s is closed. Hooks on a disposed scope
// are dropped.
func (s *Scope) OnClose(fn func() error) {
	if fn == nil || s.IsDisposed() {
		return
	}
	s.hooks = append(s.hooks, fn)
}
