// Package dispatch performs Node-API calls by operation identifier.
//
// An identifier is resolved through a symbols.Table on first use and the
// address is reused afterwards. Arguments are lowered to machine words in
// C order with env first; Go memory handed to the host (out slots, string
// buffers, descriptor arrays) is pinned for the duration of the call.
//
// The host status is returned verbatim. When the call cannot be made at
// all, the status is abi.GenericFailure and the error says why:
//
//	st, err := dispatch.V1O1(d, id, env, int32(42), &result)
//	if err != nil {
//		// symbol missing or resolved to null; nothing was called
//	}
//
// Shapes are named VnOm after their n value slots and m trailing out
// slots. F64O1 covers the one double-taking shape and Raw the env-less
// module registration call. Buf, BufIn, CB and BigWords name the buffer
// shapes by what they carry. Strings cross as NUL-terminated UTF-8 through
// Text, which is pooled and must be released after the call.
package dispatch
