// Package napi is the typed facade over the Node-API C surface.
//
// Every declared operation has a Method, an export name and an
// abi.Signature, and one API method that mirrors the C function with Go
// types. Out-parameters stay pointers, buffers become slices, and names
// become Go strings:
//
//	api, err := napi.Bind(lib)
//	if err != nil {
//		return err
//	}
//	var v abi.Value
//	if st, err := api.CreateInt32(env, 42, &v); err != nil || st != abi.OK {
//		...
//	}
//
// Statuses are never interpreted here. An API method returns a non-nil
// error only when the export could not be resolved, in which case the
// status is abi.GenericFailure and the host was not called.
//
// Thread-safe functions are not declared. Their constructor takes more
// value arguments than any dispatch shape carries.
package napi
