package slice

// RWSlice is a read-write window over a contiguous byte range: the union of
// ROSlice and WOSlice's capabilities, plus ModifyAt for in-place transforms.
type RWSlice struct {
	b []byte
}

// NewRW wraps b as a read-write slice.
func NewRW(b []byte) RWSlice { return RWSlice{b: b} }

// Len returns the number of bytes in the slice.
func (s RWSlice) Len() int { return len(s.b) }

// RO returns a read-only view over the same bytes.
func (s RWSlice) RO() ROSlice { return ROSlice{b: s.b} }

// WO returns a write-only view over the same bytes.
func (s RWSlice) WO() WOSlice { return WOSlice{b: s.b} }

func (s RWSlice) ReadU8At(offset int) uint8             { return s.RO().ReadU8At(offset) }
func (s RWSlice) TryReadU8At(offset int) (uint8, bool)   { return s.RO().TryReadU8At(offset) }
func (s RWSlice) ReadI8At(offset int) int8               { return s.RO().ReadI8At(offset) }
func (s RWSlice) TryReadI8At(offset int) (int8, bool)    { return s.RO().TryReadI8At(offset) }
func (s RWSlice) ReadU16LEAt(offset int) uint16          { return s.RO().ReadU16LEAt(offset) }
func (s RWSlice) TryReadU16LEAt(offset int) (uint16, bool) { return s.RO().TryReadU16LEAt(offset) }
func (s RWSlice) ReadU16BEAt(offset int) uint16          { return s.RO().ReadU16BEAt(offset) }
func (s RWSlice) TryReadU16BEAt(offset int) (uint16, bool) { return s.RO().TryReadU16BEAt(offset) }
func (s RWSlice) ReadI16LEAt(offset int) int16           { return s.RO().ReadI16LEAt(offset) }
func (s RWSlice) TryReadI16LEAt(offset int) (int16, bool) { return s.RO().TryReadI16LEAt(offset) }
func (s RWSlice) ReadI16BEAt(offset int) int16           { return s.RO().ReadI16BEAt(offset) }
func (s RWSlice) TryReadI16BEAt(offset int) (int16, bool) { return s.RO().TryReadI16BEAt(offset) }
func (s RWSlice) ReadU32LEAt(offset int) uint32          { return s.RO().ReadU32LEAt(offset) }
func (s RWSlice) TryReadU32LEAt(offset int) (uint32, bool) { return s.RO().TryReadU32LEAt(offset) }
func (s RWSlice) ReadU32BEAt(offset int) uint32          { return s.RO().ReadU32BEAt(offset) }
func (s RWSlice) TryReadU32BEAt(offset int) (uint32, bool) { return s.RO().TryReadU32BEAt(offset) }
func (s RWSlice) ReadI32LEAt(offset int) int32           { return s.RO().ReadI32LEAt(offset) }
func (s RWSlice) TryReadI32LEAt(offset int) (int32, bool) { return s.RO().TryReadI32LEAt(offset) }
func (s RWSlice) ReadI32BEAt(offset int) int32           { return s.RO().ReadI32BEAt(offset) }
func (s RWSlice) TryReadI32BEAt(offset int) (int32, bool) { return s.RO().TryReadI32BEAt(offset) }
func (s RWSlice) CopyTo(dst []byte)                      { s.RO().CopyTo(dst) }
func (s RWSlice) CopyToAt(offset int, dst []byte)        { s.RO().CopyToAt(offset, dst) }
func (s RWSlice) TryCopyToAt(offset int, dst []byte) bool { return s.RO().TryCopyToAt(offset, dst) }

func (s RWSlice) WriteU8At(offset int, v uint8)             { s.WO().WriteU8At(offset, v) }
func (s RWSlice) TryWriteU8At(offset int, v uint8) bool     { return s.WO().TryWriteU8At(offset, v) }
func (s RWSlice) WriteI8At(offset int, v int8)              { s.WO().WriteI8At(offset, v) }
func (s RWSlice) TryWriteI8At(offset int, v int8) bool      { return s.WO().TryWriteI8At(offset, v) }
func (s RWSlice) WriteU16LEAt(offset int, v uint16)         { s.WO().WriteU16LEAt(offset, v) }
func (s RWSlice) TryWriteU16LEAt(offset int, v uint16) bool { return s.WO().TryWriteU16LEAt(offset, v) }
func (s RWSlice) WriteU16BEAt(offset int, v uint16)         { s.WO().WriteU16BEAt(offset, v) }
func (s RWSlice) TryWriteU16BEAt(offset int, v uint16) bool { return s.WO().TryWriteU16BEAt(offset, v) }
func (s RWSlice) WriteI16LEAt(offset int, v int16)          { s.WO().WriteI16LEAt(offset, v) }
func (s RWSlice) TryWriteI16LEAt(offset int, v int16) bool  { return s.WO().TryWriteI16LEAt(offset, v) }
func (s RWSlice) WriteI16BEAt(offset int, v int16)          { s.WO().WriteI16BEAt(offset, v) }
func (s RWSlice) TryWriteI16BEAt(offset int, v int16) bool  { return s.WO().TryWriteI16BEAt(offset, v) }
func (s RWSlice) WriteU32LEAt(offset int, v uint32)         { s.WO().WriteU32LEAt(offset, v) }
func (s RWSlice) TryWriteU32LEAt(offset int, v uint32) bool { return s.WO().TryWriteU32LEAt(offset, v) }
func (s RWSlice) WriteU32BEAt(offset int, v uint32)         { s.WO().WriteU32BEAt(offset, v) }
func (s RWSlice) TryWriteU32BEAt(offset int, v uint32) bool { return s.WO().TryWriteU32BEAt(offset, v) }
func (s RWSlice) WriteI32LEAt(offset int, v int32)          { s.WO().WriteI32LEAt(offset, v) }
func (s RWSlice) TryWriteI32LEAt(offset int, v int32) bool  { return s.WO().TryWriteI32LEAt(offset, v) }
func (s RWSlice) WriteI32BEAt(offset int, v int32)          { s.WO().WriteI32BEAt(offset, v) }
func (s RWSlice) TryWriteI32BEAt(offset int, v int32) bool  { return s.WO().TryWriteI32BEAt(offset, v) }
func (s RWSlice) CopyFrom(src []byte)                       { s.WO().CopyFrom(src) }
func (s RWSlice) CopyFromAt(offset int, src []byte)         { s.WO().CopyFromAt(offset, src) }
func (s RWSlice) TryCopyFromAt(offset int, src []byte) bool { return s.WO().TryCopyFromAt(offset, src) }
func (s RWSlice) Fill(value byte)                           { s.WO().Fill(value) }
func (s RWSlice) FillAt(offset, n int, value byte)          { s.WO().FillAt(offset, n, value) }
func (s RWSlice) TryFillAt(offset, n int, value byte) bool  { return s.WO().TryFillAt(offset, n, value) }

// ModifyAt reads the len bytes at offset, lets f transform them in place,
// and writes them back. Panics if offset/len are out of range.
func (s RWSlice) ModifyAt(offset, length int, f func([]byte)) {
	checkBounds(len(s.b), offset, length)
	f(s.b[offset : offset+length])
}
