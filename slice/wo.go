package slice

// WOSlice is a write-only window over a contiguous byte range. No read
// methods are exposed: a callback holding a WOSlice can only produce bytes,
// never observe what was already there.
type WOSlice struct {
	b []byte
}

// NewWO wraps b as a write-only slice.
func NewWO(b []byte) WOSlice { return WOSlice{b: b} }

// Len returns the number of bytes in the slice.
func (s WOSlice) Len() int { return len(s.b) }

// WriteU8At writes a byte at offset, panicking if out of range.
func (s WOSlice) WriteU8At(offset int, v uint8) {
	checkBounds(len(s.b), offset, 1)
	s.b[offset] = v
}

// TryWriteU8At writes a byte at offset, returning ok=false if out of range.
func (s WOSlice) TryWriteU8At(offset int, v uint8) (ok bool) {
	if !boundsOK(len(s.b), offset, 1) {
		return false
	}
	s.b[offset] = v
	return true
}

// WriteI8At writes a signed byte at offset, panicking if out of range.
func (s WOSlice) WriteI8At(offset int, v int8) { s.WriteU8At(offset, uint8(v)) }

// TryWriteI8At writes a signed byte at offset, returning ok=false if out of range.
func (s WOSlice) TryWriteI8At(offset int, v int8) bool { return s.TryWriteU8At(offset, uint8(v)) }

// WriteU16LEAt writes a little-endian uint16 at offset, panicking if out of range.
func (s WOSlice) WriteU16LEAt(offset int, v uint16) {
	checkBounds(len(s.b), offset, 2)
	s.b[offset] = byte(v)
	s.b[offset+1] = byte(v >> 8)
}

// TryWriteU16LEAt writes a little-endian uint16 at offset, returning ok=false if out of range.
func (s WOSlice) TryWriteU16LEAt(offset int, v uint16) bool {
	if !boundsOK(len(s.b), offset, 2) {
		return false
	}
	s.WriteU16LEAt(offset, v)
	return true
}

// WriteU16BEAt writes a big-endian uint16 at offset, panicking if out of range.
func (s WOSlice) WriteU16BEAt(offset int, v uint16) {
	checkBounds(len(s.b), offset, 2)
	s.b[offset] = byte(v >> 8)
	s.b[offset+1] = byte(v)
}

// TryWriteU16BEAt writes a big-endian uint16 at offset, returning ok=false if out of range.
func (s WOSlice) TryWriteU16BEAt(offset int, v uint16) bool {
	if !boundsOK(len(s.b), offset, 2) {
		return false
	}
	s.WriteU16BEAt(offset, v)
	return true
}

// WriteI16LEAt writes a little-endian int16 at offset, panicking if out of range.
func (s WOSlice) WriteI16LEAt(offset int, v int16) { s.WriteU16LEAt(offset, uint16(v)) }

// TryWriteI16LEAt writes a little-endian int16 at offset, returning ok=false if out of range.
func (s WOSlice) TryWriteI16LEAt(offset int, v int16) bool {
	return s.TryWriteU16LEAt(offset, uint16(v))
}

// WriteI16BEAt writes a big-endian int16 at offset, panicking if out of range.
func (s WOSlice) WriteI16BEAt(offset int, v int16) { s.WriteU16BEAt(offset, uint16(v)) }

// TryWriteI16BEAt writes a big-endian int16 at offset, returning ok=false if out of range.
func (s WOSlice) TryWriteI16BEAt(offset int, v int16) bool {
	return s.TryWriteU16BEAt(offset, uint16(v))
}

// WriteU32LEAt writes a little-endian uint32 at offset, panicking if out of range.
func (s WOSlice) WriteU32LEAt(offset int, v uint32) {
	checkBounds(len(s.b), offset, 4)
	s.b[offset] = byte(v)
	s.b[offset+1] = byte(v >> 8)
	s.b[offset+2] = byte(v >> 16)
	s.b[offset+3] = byte(v >> 24)
}

// TryWriteU32LEAt writes a little-endian uint32 at offset, returning ok=false if out of range.
func (s WOSlice) TryWriteU32LEAt(offset int, v uint32) bool {
	if !boundsOK(len(s.b), offset, 4) {
		return false
	}
	s.WriteU32LEAt(offset, v)
	return true
}

// WriteU32BEAt writes a big-endian uint32 at offset, panicking if out of range.
func (s WOSlice) WriteU32BEAt(offset int, v uint32) {
	checkBounds(len(s.b), offset, 4)
	s.b[offset] = byte(v >> 24)
	s.b[offset+1] = byte(v >> 16)
	s.b[offset+2] = byte(v >> 8)
	s.b[offset+3] = byte(v)
}

// TryWriteU32BEAt writes a big-endian uint32 at offset, returning ok=false if out of range.
func (s WOSlice) TryWriteU32BEAt(offset int, v uint32) bool {
	if !boundsOK(len(s.b), offset, 4) {
		return false
	}
	s.WriteU32BEAt(offset, v)
	return true
}

// WriteI32LEAt writes a little-endian int32 at offset, panicking if out of range.
func (s WOSlice) WriteI32LEAt(offset int, v int32) { s.WriteU32LEAt(offset, uint32(v)) }

// TryWriteI32LEAt writes a little-endian int32 at offset, returning ok=false if out of range.
func (s WOSlice) TryWriteI32LEAt(offset int, v int32) bool {
	return s.TryWriteU32LEAt(offset, uint32(v))
}

// WriteI32BEAt writes a big-endian int32 at offset, panicking if out of range.
func (s WOSlice) WriteI32BEAt(offset int, v int32) { s.WriteU32BEAt(offset, uint32(v)) }

// TryWriteI32BEAt writes a big-endian int32 at offset, returning ok=false if out of range.
func (s WOSlice) TryWriteI32BEAt(offset int, v int32) bool {
	return s.TryWriteU32BEAt(offset, uint32(v))
}

// CopyFrom copies all of src into the slice, panicking if it doesn't fit.
func (s WOSlice) CopyFrom(src []byte) { s.CopyFromAt(0, src) }

// CopyFromAt copies src into the slice starting at offset, panicking if out of range.
func (s WOSlice) CopyFromAt(offset int, src []byte) {
	checkBounds(len(s.b), offset, len(src))
	copy(s.b[offset:offset+len(src)], src)
}

// TryCopyFromAt copies src into the slice starting at offset, returning
// ok=false instead of panicking if out of range.
func (s WOSlice) TryCopyFromAt(offset int, src []byte) (ok bool) {
	if !boundsOK(len(s.b), offset, len(src)) {
		return false
	}
	copy(s.b[offset:offset+len(src)], src)
	return true
}

// Fill sets every byte in the slice to value.
func (s WOSlice) Fill(value byte) { s.FillAt(0, len(s.b), value) }

// FillAt sets n bytes starting at offset to value, panicking if out of range.
func (s WOSlice) FillAt(offset, n int, value byte) {
	checkBounds(len(s.b), offset, n)
	for i := offset; i < offset+n; i++ {
		s.b[i] = value
	}
}

// TryFillAt sets n bytes starting at offset to value, returning ok=false
// instead of panicking if out of range.
func (s WOSlice) TryFillAt(offset, n int, value byte) (ok bool) {
	if !boundsOK(len(s.b), offset, n) {
		return false
	}
	s.FillAt(offset, n, value)
	return true
}
