package symbols

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/napi-runtime/errors"
)

// Table caches one resolved address per operation identifier.
// Slots are written at most once per successful lookup and are never cleared.
type Table struct {
	lib     Library
	exports []string
	slots   []atomic.Uintptr
}

// NewTable creates a table with one slot per export name.
// exports[id] is the name Lookup uses for id.
func NewTable(lib Library, exports []string) (*Table, error) {
	if lib == nil {
		return nil, errors.InvalidArgument(errors.PhaseResolve, "nil library")
	}
	return &Table{
		lib:     lib,
		exports: exports,
		slots:   make([]atomic.Uintptr, len(exports)),
	}, nil
}

// Len returns the number of slots.
func (t *Table) Len() int {
	return len(t.slots)
}

// Export returns the canonical export name for id.
func (t *Table) Export(id int) string {
	if uint(id) >= uint(len(t.exports)) {
		return ""
	}
	return t.exports[id]
}

// Resolve returns the address for id, looking up name on first use.
func (t *Table) Resolve(id int, name string) (uintptr, error) {
	if uint(id) >= uint(len(t.slots)) {
		return 0, errors.InvalidArgument(errors.PhaseResolve, fmt.Sprintf("operation id %d out of range [0,%d)", id, len(t.slots)))
	}
	if addr := t.slots[id].Load(); addr != 0 {
		return addr, nil
	}
	return t.resolveSlow(id, name)
}

// Lookup resolves id by its canonical export name.
func (t *Table) Lookup(id int) (uintptr, error) {
	return t.Resolve(id, t.Export(id))
}

// Resolved reports the cached address without resolving.
func (t *Table) Resolved(id int) (uintptr, bool) {
	if uint(id) >= uint(len(t.slots)) {
		return 0, false
	}
	addr := t.slots[id].Load()
	return addr, addr != 0
}

// Preload resolves every slot and reports all missing exports at once.
func (t *Table) Preload() error {
	var missing []string
	for id, name := range t.exports {
		if _, err := t.Resolve(id, name); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return errors.NewMissingSymbolsError(missing)
	}
	return nil
}

func (t *Table) resolveSlow(id int, name string) (uintptr, error) {
	if name == "" {
		return 0, errors.InvalidArgument(errors.PhaseResolve, fmt.Sprintf("operation id %d has no export name", id))
	}
	addr, err := t.lib.Lookup(name)
	if err != nil {
		Logger().Debug("symbol lookup failed", zap.String("symbol", name), zap.Error(err))
		return 0, errors.SymbolNotFound(name, err)
	}
	if addr == 0 {
		Logger().Debug("symbol resolved to null", zap.String("symbol", name))
		return 0, errors.SymbolNotFound(name, nil)
	}
	t.slots[id].Store(addr)
	Logger().Debug("symbol resolved", zap.String("symbol", name), zap.Uintptr("addr", addr))
	return addr, nil
}
