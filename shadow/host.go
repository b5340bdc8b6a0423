package shadow

import "github.com/aq1018/embedded-shadow/slice"

// HostView is the application-side capability over a Storage: reads consult
// the access policy's read check, writes consult its write check and mark
// dirty, and a dirty write notifies the persist policy. A HostView's
// lifetime is bounded to the WithHostView(Unchecked) call that produced it;
// do not retain one past that call.
type HostView struct {
	s *Storage
}

func newHostView(s *Storage) *HostView { return &HostView{s: s} }

// ReadRange reads len(out) bytes starting at addr into out, after consulting
// the access policy's read check.
func (h *HostView) ReadRange(addr uint16, out []byte) error {
	if !h.s.access.CanRead(addr, len(out)) {
		return newErr(KindDenied, addr, len(out))
	}
	return h.s.table.withBytes(addr, len(out), func(b []byte) error {
		copy(out, b)
		return nil
	})
}

// WriteRange writes data at addr, after consulting the access policy's
// write check, marks the covering blocks dirty, and notifies the persist
// policy.
func (h *HostView) WriteRange(addr uint16, data []byte) error {
	if err := h.writeRangeNoPersist(addr, data); err != nil {
		return err
	}
	h.notifyPersist(addr, len(data))
	return nil
}

func (h *HostView) writeRangeNoPersist(addr uint16, data []byte) error {
	if !h.s.access.CanWrite(addr, len(data)) {
		return newErr(KindDenied, addr, len(data))
	}
	if err := h.s.table.withBytesMut(addr, len(data), func(b []byte) error {
		copy(b, data)
		return nil
	}); err != nil {
		return err
	}
	return h.s.table.markDirty(addr, len(data))
}

func (h *HostView) notifyPersist(addr uint16, length int) {
	should := h.s.persist.PushPersistKeys(addr, length, func(key interface{}) {
		h.s.trigger.PushKey(key)
	})
	if should {
		h.s.trigger.RequestPersist()
	}
}

// WithROSlice validates (addr, len), consults the read access check, and on
// success invokes f with a read-only slice over that range, returning its
// result. Denied or out-of-range requests never invoke f.
func WithROSlice[R any](h *HostView, addr uint16, length int, f func(slice.ROSlice) R) (result R, err error) {
	if !h.s.access.CanRead(addr, length) {
		return result, newErr(KindDenied, addr, length)
	}
	err = h.s.table.withBytes(addr, length, func(b []byte) error {
		result = f(slice.NewRO(b))
		return nil
	})
	return result, err
}

// WithWOSlice validates (addr, len), consults the write access check, and on
// success invokes f with a write-only slice over that range. A Dirty result
// marks the covering blocks dirty and notifies the persist policy; a Clean
// result does neither.
func WithWOSlice[R any](h *HostView, addr uint16, length int, f func(slice.WOSlice) WriteResult[R]) (result R, err error) {
	if !h.s.access.CanWrite(addr, length) {
		return result, newErr(KindDenied, addr, length)
	}

	var wr WriteResult[R]
	err = h.s.table.withBytesMut(addr, length, func(b []byte) error {
		wr = f(slice.NewWO(b))
		return nil
	})
	if err != nil {
		return result, err
	}

	if wr.IsDirty() {
		if err := h.s.table.markDirty(addr, length); err != nil {
			return result, err
		}
		h.notifyPersist(addr, length)
	}
	return wr.Value(), nil
}

// WithRWSlice combines WithROSlice and WithWOSlice: both access checks
// apply, and f observes a read-write slice over the current bytes before
// deciding, via its WriteResult, whether to mark the range dirty.
func WithRWSlice[R any](h *HostView, addr uint16, length int, f func(slice.RWSlice) WriteResult[R]) (result R, err error) {
	if !h.s.access.CanRead(addr, length) {
		return result, newErr(KindDenied, addr, length)
	}
	if !h.s.access.CanWrite(addr, length) {
		return result, newErr(KindDenied, addr, length)
	}

	var wr WriteResult[R]
	err = h.s.table.withBytesMut(addr, length, func(b []byte) error {
		wr = f(slice.NewRW(b))
		return nil
	})
	if err != nil {
		return result, err
	}

	if wr.IsDirty() {
		if err := h.s.table.markDirty(addr, length); err != nil {
			return result, err
		}
		h.notifyPersist(addr, length)
	}
	return wr.Value(), nil
}
