// Package abi holds the bit-level data model shared by every layer of the
// binding: opaque handle categories, the napi_status enumeration, host enums,
// and Go mirrors of the C structs that cross the boundary.
//
// Nothing here calls into the host. Layouts follow node_api_types.h and
// js_native_api_types.h on LP64 targets.
package abi
