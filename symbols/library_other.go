//go:build !darwin && !freebsd && !linux

package symbols

import "github.com/wippyai/napi-runtime/errors"

func dlopen(string) (uintptr, error) {
	return 0, errors.Unsupported(errors.PhaseLoad, "dynamic loading on this platform")
}

func dlsym(uintptr, string) (uintptr, error) {
	return 0, errors.Unsupported(errors.PhaseLoad, "dynamic loading on this platform")
}

func dlclose(uintptr) error {
	return nil
}
