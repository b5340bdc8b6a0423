// Package slice provides zero-copy, bounds-checked byte-window wrappers with
// typed little/big-endian accessors, mirroring the read-only, write-only, and
// read-write capabilities a shadow table view hands to a caller's callback.
//
// Every accessor comes in two forms: an infallible form that panics on an
// out-of-range offset or length, and a "Try" form that returns ok=false
// instead. Multi-byte accessors spell out their endianness in the method
// name; none of them couple to host byte order.
package slice

func boundsOK(length, offset, width int) bool {
	if offset < 0 || width < 0 {
		return false
	}
	return offset+width <= length && offset+width >= offset
}

func checkBounds(length, offset, width int) {
	if !boundsOK(length, offset, width) {
		panic("slice: access out of bounds")
	}
}
