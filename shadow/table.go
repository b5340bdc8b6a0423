package shadow

import (
	"github.com/aq1018/embedded-shadow/bitmap"
	"github.com/aq1018/embedded-shadow/blockmap"
)

// table owns the raw bytes and the dirty bitmap. It performs no access
// control and no persistence notification of its own; Storage's views layer
// that discipline on top.
type table struct {
	bm    blockmap.Map
	bytes []byte
	dirty bitmap.Bitmap
}

func newTable(bm blockmap.Map) *table {
	return &table{
		bm:    bm,
		bytes: make([]byte, bm.TS),
		dirty: bitmap.New(bm.BC),
	}
}

func (t *table) withBytes(addr uint16, length int, f func([]byte) error) error {
	offset, end, err := t.bm.Span(addr, length)
	if err != nil {
		return errFromSpan(err, addr, length)
	}
	return f(t.bytes[offset:end])
}

func (t *table) withBytesMut(addr uint16, length int, f func([]byte) error) error {
	return t.withBytes(addr, length, f)
}

func (t *table) markDirty(addr uint16, length int) error {
	first, last, err := t.bm.BlockSpan(addr, length)
	if err != nil {
		return errFromSpan(err, addr, length)
	}
	t.dirty.SetRange(first, last)
	return nil
}

func (t *table) clearDirty(addr uint16, length int) error {
	first, last, err := t.bm.BlockSpan(addr, length)
	if err != nil {
		return errFromSpan(err, addr, length)
	}
	t.dirty.ClearRange(first, last)
	return nil
}

func (t *table) isDirty(addr uint16, length int) (bool, error) {
	first, last, err := t.bm.BlockSpan(addr, length)
	if err != nil {
		return false, errFromSpan(err, addr, length)
	}
	for i := first; i <= last; i++ {
		if t.dirty.Test(i) {
			return true, nil
		}
	}
	return false, nil
}

func (t *table) anyDirty() bool {
	return t.dirty.Any()
}

func (t *table) clearAllDirty() {
	t.dirty.ClearAll()
}

func (t *table) iterDirty(f func(blockAddr uint16, data []byte) error) error {
	var iterErr error
	t.dirty.Iterate(func(i int) bool {
		addr := t.bm.BlockAddr(i)
		data := t.bytes[int(addr) : int(addr)+t.bm.BS]
		if err := f(addr, data); err != nil {
			iterErr = err
			return false
		}
		return true
	})
	return iterErr
}
