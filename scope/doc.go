// Package scope gates host handles behind explicit lifetimes.
//
// A Stack is a LIFO of Scopes. Handles obtained from the host are wrapped
// in a Value bound to the scope that was current when they were obtained;
// once that scope closes, every Value bound to it fails with
// errors.ErrScopeClosed instead of handing out a handle the host may
// already have recycled.
//
//	st := scope.NewStack()
//	err := st.Do(env, func(s *scope.Scope) error {
//		obj, err := scope.New(st, raw)
//		if err != nil {
//			return err
//		}
//		h, err := obj.Handle()
//		...
//	})
//
// Closing is strictly innermost first. Closing any other scope returns
// errors.ErrScopeOrder and leaves the stack unchanged; closing a scope
// twice is a no-op.
//
// Intern caches values in the data block nested scopes share, so
// repeated lookups (property names, the global object) hit the host once
// per live scope. A cached value whose scope has closed is recreated on
// the next lookup.
package scope
