//go:build darwin || freebsd || (linux && (amd64 || arm64))

package interop

import "github.com/ebitengine/purego"

// newCallback turns a Go function into a C function pointer.
var newCallback = purego.NewCallback
