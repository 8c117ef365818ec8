// Package resource maps Go values to integer handles the host can carry.
//
// Node-API stores caller data as void*: the native object behind a wrap,
// an external's payload, instance data, finalize hints. Go pointers cannot
// be kept by C past a call, so the value stays in a Table and the host
// keeps only its Handle:
//
//	table := resource.NewTable()
//	h := table.Insert(resource.KindWrapped, counter)
//	// pass uintptr(h) as the native object
//	v, ok := table.GetTyped(h, resource.KindWrapped)
//
// Handles carry a slot generation. Once a value is removed its handle
// stops resolving, even after the slot is reused for another value.
//
// Borrow holds a value against removal while a callback uses it; Remove
// on a borrowed handle fails until every borrow is returned. Values that
// implement Dropper are notified when removed or when the table closes.
//
// Observers receive created, dropped, borrowed and returned events.
package resource
