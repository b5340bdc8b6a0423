package shadow

import "github.com/aq1018/embedded-shadow/slice"

// StagingBuffer is the append-only, insertion-ordered log of pending writes
// a StagedHostView commits or rolls back. The core only depends on this
// interface; package staging's PatchStagingBuffer is the bundled concrete
// realization.
//
// AllocStaged's callback signature is intentionally a plain bool rather than
// a generic WriteResult[R]: Go methods can never declare their own type
// parameters, on an interface or a concrete receiver alike. The richer,
// value-returning API is the package-level generic function AllocStaged in
// staged.go, which threads its R through a captured closure variable around
// this bool-returning call — the same trick the original implementation's
// HostViewStaged.alloc_staged plays around its own staging trait.
type StagingBuffer interface {
	// AnyStaged reports whether any writes are currently staged.
	AnyStaged() bool
	// AllocStaged reserves length bytes targeting addr, invokes f with a
	// scratch read-write slice, and retains the entry only if f returns
	// true (commit); otherwise the reservation is rolled back. Returns
	// ErrStageFull if there is no room for the reservation.
	AllocStaged(addr uint16, length int, f func(slice.RWSlice) bool) (bool, error)
	// IterStaged invokes f with the address and an RO slice over each
	// staged entry's data, in insertion order.
	IterStaged(f func(addr uint16, data slice.ROSlice) error) error
	// Clear discards every staged entry.
	Clear() error
}
