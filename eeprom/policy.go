package eeprom

// WordKey identifies one word-aligned, two-byte cell of a shadow table that
// needs to be flushed to a Store. It is the eeprom package's own
// policy.PersistKey type.
type WordKey struct {
	WordAddr uint32
}

// Policy is a policy.PersistPolicy that, for any dirty write covering
// (addr, length), pushes a WordKey for every 2-byte-aligned word that range
// overlaps.
type Policy struct{}

// PushPersistKeys implements policy.PersistPolicy.
func (Policy) PushPersistKeys(addr uint16, length int, push func(interface{})) bool {
	if length == 0 {
		return false
	}
	start := int(addr) / 2
	end := (int(addr) + length - 1) / 2
	for w := start; w <= end; w++ {
		push(WordKey{WordAddr: uint32(w)})
	}
	return true
}
