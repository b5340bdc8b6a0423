package shadow

import "github.com/aq1018/embedded-shadow/slice"

// KernelView is the hardware-driver-side capability over a Storage: it
// bypasses the access policy entirely (the kernel side represents the
// privileged hardware driver), and its writes never mark dirty or notify
// persistence — it exists to reflect values read back from hardware, and to
// drain and clear dirty blocks. A KernelView's lifetime is bounded to the
// WithKernelView(Unchecked) call that produced it.
type KernelView struct {
	s *Storage
}

func newKernelView(s *Storage) *KernelView { return &KernelView{s: s} }

// AnyDirty reports whether any block in the table is dirty.
func (k *KernelView) AnyDirty() bool { return k.s.table.anyDirty() }

// IsDirty reports whether any block overlapping (addr, len) is dirty.
func (k *KernelView) IsDirty(addr uint16, length int) (bool, error) {
	return k.s.table.isDirty(addr, length)
}

// ClearAllDirty clears every dirty bit.
func (k *KernelView) ClearAllDirty() { k.s.table.clearAllDirty() }

// ClearDirty clears the dirty bit of every block whose range intersects
// [addr, addr+len).
func (k *KernelView) ClearDirty(addr uint16, length int) error {
	return k.s.table.clearDirty(addr, length)
}

// IterDirty invokes f with the starting address and an RO slice for each
// dirty block, in ascending block-index order. The first error f returns
// short-circuits the iteration and is returned; dirty bits are not cleared
// by this call.
func (k *KernelView) IterDirty(f func(blockAddr uint16, data slice.ROSlice) error) error {
	return k.s.table.iterDirty(func(blockAddr uint16, data []byte) error {
		return f(blockAddr, slice.NewRO(data))
	})
}

// ReadRange reads len(out) bytes starting at addr into out, bypassing the
// access policy.
func (k *KernelView) ReadRange(addr uint16, out []byte) error {
	return k.s.table.withBytes(addr, len(out), func(b []byte) error {
		copy(out, b)
		return nil
	})
}

// WriteRange writes data at addr, bypassing the access policy. It does not
// mark the range dirty nor notify persistence.
func (k *KernelView) WriteRange(addr uint16, data []byte) error {
	return k.s.table.withBytesMut(addr, len(data), func(b []byte) error {
		copy(b, data)
		return nil
	})
}

// KernelWithROSlice validates (addr, len) and invokes f with a read-only
// slice over that range, bypassing the access policy.
func KernelWithROSlice[R any](k *KernelView, addr uint16, length int, f func(slice.ROSlice) R) (result R, err error) {
	err = k.s.table.withBytes(addr, length, func(b []byte) error {
		result = f(slice.NewRO(b))
		return nil
	})
	return result, err
}

// KernelWithRWSlice validates (addr, len) and invokes f with a read-write
// slice over that range, bypassing the access policy. Writes through the
// slice never mark dirty nor notify persistence.
func KernelWithRWSlice[R any](k *KernelView, addr uint16, length int, f func(slice.RWSlice) R) (result R, err error) {
	err = k.s.table.withBytesMut(addr, length, func(b []byte) error {
		result = f(slice.NewRW(b))
		return nil
	})
	return result, err
}
