// Package napiruntime is a Go binding to the Node-API C interface.
//
// It resolves Node-API exports from the host process or a loaded library
// and calls them through purego, with no cgo. Every call returns the host
// status unchanged, so the binding adds no policy of its own on top of
// the C contract.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	napiruntime/         Root package (documentation only)
//	├── abi/             Handles, status codes, enums and C struct layouts
//	├── symbols/         Lazy, cached export resolution (Symbol Table)
//	├── dispatch/        Foreign call construction by shape (Invocation Dispatcher)
//	├── napi/            One typed method per Node-API operation (Binding Facade)
//	├── scope/           Scope Stack and scope-checked handles (ScopedValue)
//	├── resource/        Go values behind integer handles for void* slots
//	├── interop/         Handle scopes, functions, wrapping, module entry point
//	├── errors/          Structured error types for debugging
//	├── testbed/         Fake host for tests
//	└── cmd/napiprobe/   Reports which operations a library exports
//
// # Quick Start
//
// Bind the host and call an operation:
//
//	lib, err := symbols.Self()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	api, err := napi.Bind(lib)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var v abi.Value
//	st, err := api.CreateInt32(env, 42, &v)
//	if err != nil {
//	    log.Fatal(err) // the host was never reached
//	}
//	if st != abi.OK {
//	    // the host reported a failure; see GetLastErrorInfo
//	}
//
// # Calling Convention
//
// Every operation takes napi_env first and writes results through out
// pointers. Handles are opaque words; zero is the null handle of every
// category. Strings are passed as UTF-8 with an explicit length, and the
// NUL-terminated forms used by error codes treat "" as NULL.
//
// Symbols resolve on first use and are cached for the life of the table.
// A missing export fails only the operations that need it.
//
// # Scopes
//
// The host invalidates handles when their handle scope closes. The scope
// package mirrors that on the Go side: a scope.Value refuses to yield its
// handle once the Scope it was created in is disposed.
//
//	err := rt.WithHandleScope(env, func(s *scope.Scope) error {
//	    name, err := rt.Name(s, "length")
//	    ...
//	})
//
// # Thread Safety
//
// The symbol table and dispatcher are safe for concurrent use. A Stack,
// its Scopes and a Runtime belong to the thread that owns the env, as
// does every host call made with that env.
package napiruntime
