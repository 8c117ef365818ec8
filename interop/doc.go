// Package interop is the layer an addon is written against. It pairs the
// napi facade with a scope stack and a resource table, and provides the
// pieces every addon needs on top of raw operations:
//
//   - handle scopes that open and close with a Go function
//   - interned property names and globals
//   - Go values wrapped into host objects
//   - Go functions the host can call
//   - the module entry point
//
// A minimal addon:
//
//	func init() {
//		lib, _ := symbols.Self()
//		api, _ := napi.Bind(lib)
//		interop.Register(api, func(r *interop.Runtime, s *scope.Scope, exports scope.Value[abi.Value]) (scope.Value[abi.Value], error) {
//			fn, err := r.NewFunction(s, "hello", hello)
//			if err != nil {
//				return scope.Value[abi.Value]{}, err
//			}
//			return scope.Value[abi.Value]{}, r.SetNamedProperty(s, exports, "hello", fn)
//		})
//		interop.RegisterModule("hello")
//	}
//
// Host callbacks (function calls, finalizers, env cleanup) find their
// Runtime by env. Bootstrap attaches one per env; cleanup detaches it.
package interop
