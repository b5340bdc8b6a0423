// Package regmap is a pure addressing convenience layered above package
// shadow: a named table of register descriptors translating symbolic names
// into the (addr, len) pairs Host/Kernel view calls take. It never touches
// a shadow.Storage directly, mirroring how the teacher's ecad package is
// just constants consumed elsewhere, never aware of frames itself.
package regmap

import "fmt"

// Register describes one named, typed register: its byte offset within a
// table and its width in bytes.
type Register struct {
	Name   string
	Offset uint16
	Width  int
}

// End returns the offset one past the register's last byte.
func (r Register) End() int { return int(r.Offset) + r.Width }

// Map is a validated, immutable table of registers, keyed by name.
type Map struct {
	byName map[string]Register
	regs   []Register
}

// Lookup returns the register named name, and whether it was found.
func (m Map) Lookup(name string) (Register, bool) {
	r, ok := m.byName[name]
	return r, ok
}

// MustOffset returns the offset of the register named name, panicking if it
// is not in the map. Mirrors the teacher's assert-like constant access: a
// caller referencing a register by name has already chosen to trust the map
// it built, so a missing name is a programmer error, not a runtime one.
func (m Map) MustOffset(name string) uint16 {
	r, ok := m.byName[name]
	if !ok {
		panic(fmt.Sprintf("regmap: no register named %q", name))
	}
	return r.Offset
}

// MustWidth returns the width of the register named name, panicking if it is
// not in the map.
func (m Map) MustWidth(name string) int {
	r, ok := m.byName[name]
	if !ok {
		panic(fmt.Sprintf("regmap: no register named %q", name))
	}
	return r.Width
}

// Registers returns every register in the map, in the order they were added
// to the Builder.
func (m Map) Registers() []Register {
	out := make([]Register, len(m.regs))
	copy(out, m.regs)
	return out
}

// Builder constructs a Map fluently, validating as registers are added that
// no two overlap and (once built) that every register fits within a given
// table size.
type Builder struct {
	regs []Register
	err  error
}

// NewBuilder starts an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Add appends a register, recording (but not yet returning) an error if it
// overlaps one already added.
func (b *Builder) Add(name string, offset uint16, width int) *Builder {
	if b.err != nil {
		return b
	}
	if width <= 0 {
		b.err = fmt.Errorf("regmap: register %q has non-positive width %d", name, width)
		return b
	}
	r := Register{Name: name, Offset: offset, Width: width}
	for _, existing := range b.regs {
		if rangesOverlap(existing, r) {
			b.err = fmt.Errorf("regmap: register %q overlaps %q", name, existing.Name)
			return b
		}
	}
	b.regs = append(b.regs, r)
	return b
}

// Build validates every added register fits within [0, ts) and returns the
// finished Map.
func (b *Builder) Build(ts int) (Map, error) {
	if b.err != nil {
		return Map{}, b.err
	}
	byName := make(map[string]Register, len(b.regs))
	for _, r := range b.regs {
		if r.End() > ts {
			return Map{}, fmt.Errorf("regmap: register %q (offset=%#04x width=%d) exceeds table size %d", r.Name, r.Offset, r.Width, ts)
		}
		if _, dup := byName[r.Name]; dup {
			return Map{}, fmt.Errorf("regmap: duplicate register name %q", r.Name)
		}
		byName[r.Name] = r
	}
	return Map{byName: byName, regs: b.regs}, nil
}

func rangesOverlap(a, b Register) bool {
	aStart, aEnd := int(a.Offset), a.End()
	bStart, bEnd := int(b.Offset), b.End()
	return aStart < bEnd && bStart < aEnd
}
