// Package diag provides ad-hoc debug dumps of a shadow table's state, in the
// style of the teacher's own spew.Dump(err) calls for inspecting otherwise
// opaque values during development.
package diag

import (
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/aq1018/embedded-shadow/shadow"
	"github.com/aq1018/embedded-shadow/slice"
)

// DirtyBlock is a snapshot of one dirty block, suitable for dumping.
type DirtyBlock struct {
	Addr uint16
	Data []byte
}

// Snapshot is a point-in-time view of a Storage's dirty blocks, captured
// under its Kernel view.
type Snapshot struct {
	AnyDirty bool
	Blocks   []DirtyBlock
}

// Capture takes a Snapshot of storage's current dirty blocks without
// clearing them.
func Capture(storage *shadow.Storage) Snapshot {
	var snap Snapshot
	storage.WithKernelView(func(k *shadow.KernelView) {
		snap.AnyDirty = k.AnyDirty()
		k.IterDirty(func(blockAddr uint16, data slice.ROSlice) error {
			raw := make([]byte, data.Len())
			data.CopyTo(raw)
			snap.Blocks = append(snap.Blocks, DirtyBlock{Addr: blockAddr, Data: raw})
			return nil
		})
	})
	return snap
}

// Dump writes a spew dump of storage's current dirty-block snapshot to w.
func Dump(w io.Writer, storage *shadow.Storage) {
	spew.Fdump(w, Capture(storage))
}
