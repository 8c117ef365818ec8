// Package symbols resolves host exports to callable addresses.
//
// A Library is anything that can look up an export by name. NativeLibrary
// wraps a dlopen handle through purego; tests supply their own.
//
// A Table memoizes one address per operation identifier:
//
//	lib, err := symbols.Self()
//	if err != nil {
//	    return err
//	}
//	table, err := symbols.NewTable(lib, exports)
//	if err != nil {
//	    return err
//	}
//	addr, err := table.Resolve(id, "napi_create_int32")
//
// The first Resolve for an identifier performs the lookup; later calls are a
// single atomic load. Concurrent first calls may each look the symbol up, but
// the library returns the same address, so the last store wins harmlessly.
//
// A missing export is a SymbolNotFound error. It is never cached, and the
// table never substitutes a stub.
package symbols
