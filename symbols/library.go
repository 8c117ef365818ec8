package symbols

import (
	"github.com/wippyai/napi-runtime/errors"
)

// Library looks up exported symbols in a loaded image.
type Library interface {
	Lookup(name string) (uintptr, error)
}

// NativeLibrary is a dlopen handle.
type NativeLibrary struct {
	path   string
	handle uintptr
	closed bool
}

// Path returns the path the library was opened with; empty for Self.
func (l *NativeLibrary) Path() string {
	return l.path
}

// Lookup returns the address of an exported symbol.
func (l *NativeLibrary) Lookup(name string) (uintptr, error) {
	if l == nil || l.handle == 0 || l.closed {
		return 0, errors.NotInitialized(errors.PhaseLoad, "library")
	}
	return dlsym(l.handle, name)
}

// Close releases the handle. Closing twice is a no-op.
// Addresses resolved from the library must not be called afterwards.
func (l *NativeLibrary) Close() error {
	if l == nil || l.closed {
		return nil
	}
	l.closed = true
	if err := dlclose(l.handle); err != nil {
		return errors.Load("close library", err)
	}
	l.handle = 0
	return nil
}

// Open loads the shared library at path.
func Open(path string) (*NativeLibrary, error) {
	if path == "" {
		return nil, errors.InvalidArgument(errors.PhaseLoad, "empty library path")
	}
	h, err := dlopen(path)
	if err != nil {
		return nil, errors.Load("open "+path, err)
	}
	return &NativeLibrary{path: path, handle: h}, nil
}

// Self opens the hosting executable, which is where node exports
// the napi_* symbols an addon binds against.
func Self() (*NativeLibrary, error) {
	h, err := dlopen("")
	if err != nil {
		return nil, errors.Load("open hosting executable", err)
	}
	return &NativeLibrary{handle: h}, nil
}
