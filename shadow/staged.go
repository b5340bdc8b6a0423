package shadow

import "github.com/aq1018/embedded-shadow/slice"

// maxOverlayScratch bounds the size of overlay reads StagedHostView can
// materialize without allocating. Reads larger than this still work; they
// just pay one heap allocation sized to the request instead of reusing the
// fixed scratch array, since Go (unlike the original no_std implementation)
// has no dynamically-sized stack array to fall back to.
const maxOverlayScratch = 256

// StagedHostView is a HostView whose reads transparently overlay an attached
// StagingBuffer's pending writes on top of Storage's base bytes, and whose
// writes go into that buffer instead of Storage until committed.
type StagedHostView struct {
	host *HostView
	buf  StagingBuffer
}

func newStagedHostView(s *Storage, buf StagingBuffer) *StagedHostView {
	return &StagedHostView{host: newHostView(s), buf: buf}
}

// IsStaged reports whether the attached buffer holds any pending writes.
func (v *StagedHostView) IsStaged() bool { return v.buf.AnyStaged() }

// IterStaged invokes f with the address and an RO slice for each staged
// entry, in insertion order.
func (v *StagedHostView) IterStaged(f func(addr uint16, data slice.ROSlice) error) error {
	return v.buf.IterStaged(f)
}

// RollbackStaged discards every staged entry; Storage is left untouched.
func (v *StagedHostView) RollbackStaged() error {
	return v.buf.Clear()
}

// CommitStaged applies every staged entry to Storage in insertion order,
// marking dirty for every block each entry covers and notifying the persist
// policy once per entry. Access is re-checked for every entry before any
// entry is applied, so a denial anywhere leaves Storage untouched and the
// buffer intact for the caller to inspect or roll back.
func (v *StagedHostView) CommitStaged() error {
	if !v.buf.AnyStaged() {
		return nil
	}

	entryIdx := -1
	if err := v.buf.IterStaged(func(addr uint16, data slice.ROSlice) error {
		entryIdx++
		if !v.host.s.access.CanWrite(addr, data.Len()) {
			e := newErr(KindDenied, addr, data.Len())
			e.EntryAt = entryIdx
			return e
		}
		return nil
	}); err != nil {
		return err
	}

	if err := v.buf.IterStaged(func(addr uint16, data slice.ROSlice) error {
		length := data.Len()
		if err := v.host.s.table.withBytesMut(addr, length, func(b []byte) error {
			data.CopyTo(b)
			return nil
		}); err != nil {
			return err
		}
		if err := v.host.s.table.markDirty(addr, length); err != nil {
			return err
		}
		v.host.notifyPersist(addr, length)
		return nil
	}); err != nil {
		return err
	}

	return v.buf.Clear()
}

// WithStagedROSlice reads through the overlay: if no staged entry intersects
// (addr, len), f observes a direct slice over Storage bytes; otherwise f
// observes a materialized slice with pending bytes superimposed on the base.
// The access policy's read check applies either way.
func WithStagedROSlice[R any](v *StagedHostView, addr uint16, length int, f func(slice.ROSlice) R) (result R, err error) {
	if !v.host.s.access.CanRead(addr, length) {
		return result, newErr(KindDenied, addr, length)
	}

	overlaps, err := overlayOverlaps(v.buf, addr, length)
	if err != nil {
		return result, err
	}

	if !overlaps {
		err = v.host.s.table.withBytes(addr, length, func(b []byte) error {
			result = f(slice.NewRO(b))
			return nil
		})
		return result, err
	}

	var scratch [maxOverlayScratch]byte
	buf := scratch[:length]
	if length > maxOverlayScratch {
		buf = make([]byte, length)
	}

	if err := v.host.s.table.withBytes(addr, length, func(b []byte) error {
		copy(buf, b)
		return nil
	}); err != nil {
		return result, err
	}

	if err := v.buf.IterStaged(func(eaddr uint16, data slice.ROSlice) error {
		overlayInto(buf, addr, length, eaddr, data)
		return nil
	}); err != nil {
		return result, err
	}

	result = f(slice.NewRO(buf))
	return result, nil
}

// AllocStaged reserves (addr, len) in the attached buffer after consulting
// the write access check and validating the range against Storage, invokes
// f with a scratch read-write slice, and retains the staged entry only if
// f's WriteResult is Dirty.
func AllocStaged[R any](v *StagedHostView, addr uint16, length int, f func(slice.RWSlice) WriteResult[R]) (result R, err error) {
	if !v.host.s.access.CanWrite(addr, length) {
		return result, newErr(KindDenied, addr, length)
	}
	if _, _, spanErr := v.host.s.table.bm.Span(addr, length); spanErr != nil {
		return result, errFromSpan(spanErr, addr, length)
	}

	var wr WriteResult[R]
	_, err = v.buf.AllocStaged(addr, length, func(s slice.RWSlice) bool {
		wr = f(s)
		return wr.IsDirty()
	})
	if err != nil {
		return result, err
	}
	return wr.Value(), nil
}

// overlayOverlaps reports whether any staged entry intersects [addr, addr+len).
func overlayOverlaps(buf StagingBuffer, addr uint16, length int) (bool, error) {
	found := false
	err := buf.IterStaged(func(eaddr uint16, data slice.ROSlice) error {
		if rangesIntersect(addr, length, eaddr, data.Len()) {
			found = true
		}
		return nil
	})
	return found, err
}

func rangesIntersect(aAddr uint16, aLen int, bAddr uint16, bLen int) bool {
	aStart, aEnd := int(aAddr), int(aAddr)+aLen
	bStart, bEnd := int(bAddr), int(bAddr)+bLen
	return aStart < bEnd && bStart < aEnd
}

// overlayInto superimposes entry (eaddr, data)'s bytes onto dst, which
// represents [addr, addr+len) of base storage. Later calls (later entries,
// by insertion order) overwrite earlier ones for the same byte, which is
// exactly "last entry wins" as long as callers invoke this in insertion
// order.
func overlayInto(dst []byte, addr uint16, length int, eaddr uint16, data slice.ROSlice) {
	eStart, eEnd := int(eaddr), int(eaddr)+data.Len()
	start, end := int(addr), int(addr)+length

	lo := eStart
	if start > lo {
		lo = start
	}
	hi := eEnd
	if end < hi {
		hi = end
	}
	if lo >= hi {
		return
	}

	data.CopyToAt(lo-eStart, dst[lo-start:hi-start])
}
