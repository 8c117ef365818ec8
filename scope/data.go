package scope

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/napi-runtime/abi"
	"github.com/wippyai/napi-runtime/errors"
)

// Data is the lifetime-data block nested scopes share. It holds interned
// values keyed by any comparable key.
type Data struct {
	mu      sync.Mutex
	entries map[any]any
}

func newData() *Data {
	return &Data{entries: make(map[any]any)}
}

// Len counts cached entries, stale ones included.
func (d *Data) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

// Forget drops the entry for key.
func (d *Data) Forget(key any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.entries, key)
}

func (d *Data) load(key any) (any, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.entries[key]
	return v, ok
}

func (d *Data) store(key, v any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[key] = v
}

// Intern returns the value cached under key in s's data block, creating
// it with create when absent or when the scope it was bound to has
// closed. A returned value is always alive; new values bind to s.
func Intern[K comparable, H abi.Handle](s *Scope, key K, create func() (H, error)) (Value[H], error) {
	if s == nil {
		var zero H
		return Value[H]{}, errors.OutOfScope(zero.Category() + " interning")
	}
	if s.IsDisposed() {
		return Value[H]{}, errors.ScopeClosed(s.gen)
	}
	d := s.data
	if cached, ok := d.load(key); ok {
		v, typed := cached.(Value[H])
		if typed && v.IsAlive() {
			return v, nil
		}
		s.stack.logger.Debug("interned value invalidated",
			zap.String("key", fmt.Sprint(key)),
			zap.Uint64("generation", v.gen))
	}
	// create may call into the host, which may intern again; no lock held.
	h, err := create()
	if err != nil {
		return Value[H]{}, err
	}
	v, err := NewIn(s, h)
	if err != nil {
		return Value[H]{}, err
	}
	d.store(key, v)
	return v, nil
}
