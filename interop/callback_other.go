//go:build !darwin && !freebsd && !(linux && (amd64 || arm64))

package interop

// newCallback reports no address; callers fail with an unsupported error.
var newCallback = func(any) uintptr { return 0 }
