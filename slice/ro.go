package slice

// ROSlice is a read-only window over a contiguous byte range. Its length and
// base are fixed for its lifetime; offsets passed to its accessors are
// bounds-checked against its own length, not against any larger storage.
type ROSlice struct {
	b []byte
}

// NewRO wraps b as a read-only slice.
func NewRO(b []byte) ROSlice { return ROSlice{b: b} }

// Len returns the number of bytes in the slice.
func (s ROSlice) Len() int { return len(s.b) }

// ReadU8At returns the byte at offset, panicking if out of range.
func (s ROSlice) ReadU8At(offset int) uint8 {
	checkBounds(len(s.b), offset, 1)
	return s.b[offset]
}

// TryReadU8At returns the byte at offset, or ok=false if out of range.
func (s ROSlice) TryReadU8At(offset int) (v uint8, ok bool) {
	if !boundsOK(len(s.b), offset, 1) {
		return 0, false
	}
	return s.b[offset], true
}

// ReadI8At returns the signed byte at offset, panicking if out of range.
func (s ROSlice) ReadI8At(offset int) int8 {
	return int8(s.ReadU8At(offset))
}

// TryReadI8At returns the signed byte at offset, or ok=false if out of range.
func (s ROSlice) TryReadI8At(offset int) (v int8, ok bool) {
	u, ok := s.TryReadU8At(offset)
	return int8(u), ok
}

// ReadU16LEAt reads a little-endian uint16 at offset, panicking if out of range.
func (s ROSlice) ReadU16LEAt(offset int) uint16 {
	checkBounds(len(s.b), offset, 2)
	return uint16(s.b[offset]) | uint16(s.b[offset+1])<<8
}

// TryReadU16LEAt reads a little-endian uint16 at offset, or ok=false if out of range.
func (s ROSlice) TryReadU16LEAt(offset int) (v uint16, ok bool) {
	if !boundsOK(len(s.b), offset, 2) {
		return 0, false
	}
	return s.ReadU16LEAt(offset), true
}

// ReadU16BEAt reads a big-endian uint16 at offset, panicking if out of range.
func (s ROSlice) ReadU16BEAt(offset int) uint16 {
	checkBounds(len(s.b), offset, 2)
	return uint16(s.b[offset])<<8 | uint16(s.b[offset+1])
}

// TryReadU16BEAt reads a big-endian uint16 at offset, or ok=false if out of range.
func (s ROSlice) TryReadU16BEAt(offset int) (v uint16, ok bool) {
	if !boundsOK(len(s.b), offset, 2) {
		return 0, false
	}
	return s.ReadU16BEAt(offset), true
}

// ReadI16LEAt reads a little-endian int16 at offset, panicking if out of range.
func (s ROSlice) ReadI16LEAt(offset int) int16 { return int16(s.ReadU16LEAt(offset)) }

// TryReadI16LEAt reads a little-endian int16 at offset, or ok=false if out of range.
func (s ROSlice) TryReadI16LEAt(offset int) (int16, bool) {
	u, ok := s.TryReadU16LEAt(offset)
	return int16(u), ok
}

// ReadI16BEAt reads a big-endian int16 at offset, panicking if out of range.
func (s ROSlice) ReadI16BEAt(offset int) int16 { return int16(s.ReadU16BEAt(offset)) }

// TryReadI16BEAt reads a big-endian int16 at offset, or ok=false if out of range.
func (s ROSlice) TryReadI16BEAt(offset int) (int16, bool) {
	u, ok := s.TryReadU16BEAt(offset)
	return int16(u), ok
}

// ReadU32LEAt reads a little-endian uint32 at offset, panicking if out of range.
func (s ROSlice) ReadU32LEAt(offset int) uint32 {
	checkBounds(len(s.b), offset, 4)
	return uint32(s.b[offset]) | uint32(s.b[offset+1])<<8 |
		uint32(s.b[offset+2])<<16 | uint32(s.b[offset+3])<<24
}

// TryReadU32LEAt reads a little-endian uint32 at offset, or ok=false if out of range.
func (s ROSlice) TryReadU32LEAt(offset int) (v uint32, ok bool) {
	if !boundsOK(len(s.b), offset, 4) {
		return 0, false
	}
	return s.ReadU32LEAt(offset), true
}

// ReadU32BEAt reads a big-endian uint32 at offset, panicking if out of range.
func (s ROSlice) ReadU32BEAt(offset int) uint32 {
	checkBounds(len(s.b), offset, 4)
	return uint32(s.b[offset])<<24 | uint32(s.b[offset+1])<<16 |
		uint32(s.b[offset+2])<<8 | uint32(s.b[offset+3])
}

// TryReadU32BEAt reads a big-endian uint32 at offset, or ok=false if out of range.
func (s ROSlice) TryReadU32BEAt(offset int) (v uint32, ok bool) {
	if !boundsOK(len(s.b), offset, 4) {
		return 0, false
	}
	return s.ReadU32BEAt(offset), true
}

// ReadI32LEAt reads a little-endian int32 at offset, panicking if out of range.
func (s ROSlice) ReadI32LEAt(offset int) int32 { return int32(s.ReadU32LEAt(offset)) }

// TryReadI32LEAt reads a little-endian int32 at offset, or ok=false if out of range.
func (s ROSlice) TryReadI32LEAt(offset int) (int32, bool) {
	u, ok := s.TryReadU32LEAt(offset)
	return int32(u), ok
}

// ReadI32BEAt reads a big-endian int32 at offset, panicking if out of range.
func (s ROSlice) ReadI32BEAt(offset int) int32 { return int32(s.ReadU32BEAt(offset)) }

// TryReadI32BEAt reads a big-endian int32 at offset, or ok=false if out of range.
func (s ROSlice) TryReadI32BEAt(offset int) (int32, bool) {
	u, ok := s.TryReadU32BEAt(offset)
	return int32(u), ok
}

// CopyTo copies the whole slice into dst, panicking if dst is too small.
func (s ROSlice) CopyTo(dst []byte) {
	s.CopyToAt(0, dst)
}

// CopyToAt copies len(dst) bytes starting at offset into dst, panicking if
// out of range.
func (s ROSlice) CopyToAt(offset int, dst []byte) {
	checkBounds(len(s.b), offset, len(dst))
	copy(dst, s.b[offset:offset+len(dst)])
}

// TryCopyToAt copies len(dst) bytes starting at offset into dst, returning
// ok=false instead of panicking if out of range.
func (s ROSlice) TryCopyToAt(offset int, dst []byte) (ok bool) {
	if !boundsOK(len(s.b), offset, len(dst)) {
		return false
	}
	copy(dst, s.b[offset:offset+len(dst)])
	return true
}
