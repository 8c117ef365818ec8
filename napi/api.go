package napi

import (
	"go.uber.org/zap"

	"github.com/wippyai/napi-runtime/dispatch"
	"github.com/wippyai/napi-runtime/errors"
	"github.com/wippyai/napi-runtime/symbols"
)

// API is the typed facade over every declared Node-API operation.
// Methods return the host status unchanged; the error is non-nil only when
// the call could not be made.
type API struct {
	d *dispatch.Dispatcher
}

type config struct {
	caller  dispatch.Caller
	logger  *zap.Logger
	preload bool
}

// Option configures Bind.
type Option func(*config)

// WithCaller calls through c instead of purego.
func WithCaller(c dispatch.Caller) Option {
	return func(cfg *config) {
		cfg.caller = c
	}
}

// WithLogger installs l as the symbols package logger.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *config) {
		cfg.logger = l
	}
}

// WithPreload resolves every export up front and fails Bind if any is
// missing. Without it, resolution is lazy and per operation.
func WithPreload() Option {
	return func(cfg *config) {
		cfg.preload = true
	}
}

// Bind builds a symbol table over lib for every declared method.
func Bind(lib symbols.Library, opts ...Option) (*API, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger != nil {
		symbols.SetLogger(cfg.logger)
	}
	table, err := symbols.NewTable(lib, exportNames)
	if err != nil {
		return nil, err
	}
	if cfg.preload {
		if err := table.Preload(); err != nil {
			return nil, err
		}
	}
	var dopts []dispatch.Option
	if cfg.caller != nil {
		dopts = append(dopts, dispatch.WithCaller(cfg.caller))
	}
	d, err := dispatch.New(table, dopts...)
	if err != nil {
		return nil, err
	}
	return &API{d: d}, nil
}

// NewAPI wraps an existing dispatcher. Its table must be indexed by Method.
func NewAPI(d *dispatch.Dispatcher) (*API, error) {
	if d == nil {
		return nil, errors.InvalidArgument(errors.PhaseDispatch, "nil dispatcher")
	}
	if n := d.Table().Len(); n != int(methodCount) {
		return nil, errors.New(errors.PhaseDispatch, errors.KindInvalidArgument).
			Detail("table has %d slots, want %d", n, methodCount).
			Build()
	}
	return &API{d: d}, nil
}

// Dispatcher returns the underlying dispatcher.
func (a *API) Dispatcher() *dispatch.Dispatcher {
	return a.d
}

// Resolved reports whether m's address is already cached.
func (a *API) Resolved(m Method) bool {
	_, ok := a.d.Table().Resolved(int(m))
	return ok
}

// Addr resolves m without calling it.
func (a *API) Addr(m Method) (uintptr, error) {
	return a.d.Addr(int(m))
}
