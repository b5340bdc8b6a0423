// Package policy defines the access-control and persistence hooks a shadow
// table consults on every read, write, and region mutation. The core never
// implements a concrete policy itself; it only calls these interfaces.
package policy

// PersistKey identifies a region that needs to be persisted. Concrete
// persist policies choose their own key type (an address, a register name,
// an enum) and wire it through PersistPolicy/PersistTrigger together.
type PersistKey = interface{}

// AccessPolicy controls read/write access to shadow table regions.
type AccessPolicy interface {
	CanRead(addr uint16, length int) bool
	CanWrite(addr uint16, length int) bool
}

// AllowAll permits every read and write. It is the default when a caller
// supplies no policy of their own.
type AllowAll struct{}

func (AllowAll) CanRead(addr uint16, length int) bool  { return true }
func (AllowAll) CanWrite(addr uint16, length int) bool { return true }

// DenyAll refuses every read and write. Mostly useful in tests that assert a
// view correctly surfaces ErrDenied.
type DenyAll struct{}

func (DenyAll) CanRead(addr uint16, length int) bool  { return false }
func (DenyAll) CanWrite(addr uint16, length int) bool { return false }

// Region describes one allow-listed address range.
type Region struct {
	Addr      uint16
	Length    int
	Readable  bool
	Writeable bool
}

func (r Region) contains(addr uint16, length int) bool {
	start := int(addr)
	end := start + length
	rstart := int(r.Addr)
	rend := rstart + r.Length
	return start >= rstart && end <= rend
}

// Regions is a partition/allow-list access policy: a request is permitted
// only if it falls entirely within one region that grants the requested
// capability. Regions are evaluated in order; the first containing region
// decides the outcome.
type Regions struct {
	Regions []Region
}

func (r Regions) CanRead(addr uint16, length int) bool {
	for _, region := range r.Regions {
		if region.contains(addr, length) {
			return region.Readable
		}
	}
	return false
}

func (r Regions) CanWrite(addr uint16, length int) bool {
	for _, region := range r.Regions {
		if region.contains(addr, length) {
			return region.Writeable
		}
	}
	return false
}

// PersistPolicy decides which regions require persistence and emits keys
// identifying them for a successful Host dirty write covering (addr, len).
type PersistPolicy interface {
	// PushPersistKeys invokes push once per key that identifies data needing
	// persistence within (addr, len), and reports whether any key was
	// pushed.
	PushPersistKeys(addr uint16, length int, push func(key PersistKey)) (shouldPersist bool)
}

// NoPersistPolicy never requests persistence. It is the default when a
// caller supplies no persist policy of their own.
type NoPersistPolicy struct{}

func (NoPersistPolicy) PushPersistKeys(addr uint16, length int, push func(key PersistKey)) bool {
	return false
}

// AlwaysPersistPolicy requests persistence for every write, pushing the
// written range itself (addr, len) as the key.
type AlwaysPersistPolicy struct{}

// RangeKey is the persist key pushed by AlwaysPersistPolicy: the exact byte
// range a Host write touched.
type RangeKey struct {
	Addr   uint16
	Length int
}

func (AlwaysPersistPolicy) PushPersistKeys(addr uint16, length int, push func(key PersistKey)) bool {
	push(RangeKey{Addr: addr, Length: length})
	return true
}

// PersistTrigger receives persistence keys and is then signaled to act on
// them. The core only notifies through this interface; it never drives
// persistence timing itself.
type PersistTrigger interface {
	PushKey(key PersistKey)
	RequestPersist()
}

// NoPersistTrigger discards every key and request. It is the default when a
// caller supplies no persist trigger of their own.
type NoPersistTrigger struct{}

func (*NoPersistTrigger) PushKey(key PersistKey) {}
func (*NoPersistTrigger) RequestPersist()        {}
