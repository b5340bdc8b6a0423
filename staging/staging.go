// Package staging provides PatchStagingBuffer, the bundled fixed-capacity
// realization of shadow.StagingBuffer: a byte arena plus an entry table,
// sized once at construction and never resized afterward.
package staging

import (
	"github.com/aq1018/embedded-shadow/shadow"
	"github.com/aq1018/embedded-shadow/slice"
)

type stagedWrite struct {
	addr uint16
	off  int
	len  int
}

// PatchStagingBuffer is a fixed-capacity staging buffer: dataCap bytes of
// arena space and entryCap entries, both set at construction. Entries are
// insertion-ordered; IterStaged walks them in that order, and overlapping
// later entries are expected to take precedence over earlier ones when a
// caller resolves an overlay read (shadow.StagedHostView does this).
type PatchStagingBuffer struct {
	data     []byte
	entries  []stagedWrite
	dataCap  int
	entryCap int
}

// New constructs a PatchStagingBuffer with room for dataCap bytes of staged
// data across at most entryCap entries.
func New(dataCap, entryCap int) *PatchStagingBuffer {
	return &PatchStagingBuffer{
		data:     make([]byte, 0, dataCap),
		entries:  make([]stagedWrite, 0, entryCap),
		dataCap:  dataCap,
		entryCap: entryCap,
	}
}

// AnyStaged reports whether any entry is currently staged.
func (p *PatchStagingBuffer) AnyStaged() bool { return len(p.entries) > 0 }

// AllocStaged reserves length bytes of arena space, invokes f with a
// read-write slice over that reservation, and keeps the entry only if f
// returns true. If f returns false the reservation is reclaimed. Returns
// shadow.ErrStageFull if either the arena or the entry table has no room.
func (p *PatchStagingBuffer) AllocStaged(addr uint16, length int, f func(slice.RWSlice) bool) (bool, error) {
	off := len(p.data)
	if off+length > p.dataCap {
		return false, shadow.NewStageFullError(addr, length)
	}
	if len(p.entries) >= p.entryCap {
		return false, shadow.NewStageFullError(addr, length)
	}

	p.data = p.data[:off+length]
	for i := off; i < off+length; i++ {
		p.data[i] = 0
	}

	keep := f(slice.NewRW(p.data[off : off+length]))

	if keep {
		p.entries = append(p.entries, stagedWrite{addr: addr, off: off, len: length})
	} else {
		p.data = p.data[:off]
	}
	return keep, nil
}

// IterStaged invokes f with the address and an RO slice over each staged
// entry's data, in insertion order.
func (p *PatchStagingBuffer) IterStaged(f func(addr uint16, data slice.ROSlice) error) error {
	for _, e := range p.entries {
		if err := f(e.addr, slice.NewRO(p.data[e.off:e.off+e.len])); err != nil {
			return err
		}
	}
	return nil
}

// Clear discards every staged entry and reclaims the arena.
func (p *PatchStagingBuffer) Clear() error {
	p.data = p.data[:0]
	p.entries = p.entries[:0]
	return nil
}
