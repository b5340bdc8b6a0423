package transport

import (
	"errors"
	"sync"
)

// ErrOutOfRange is returned when a block falls outside the Loopback
// device's backing array.
var ErrOutOfRange = errors.New("transport: block out of range")

// Loopback is an in-process stand-in for "the real hardware register file":
// its own independent byte array, mutated only through WriteBlock/ReadBlock,
// the same role sim.MMDevice's latched shadow buffer plays for a simulated
// EtherCAT slave. It is safe for concurrent use.
type Loopback struct {
	mu  sync.Mutex
	mem []byte
}

// NewLoopback allocates a Loopback device backed by size bytes, all
// initially zero.
func NewLoopback(size int) *Loopback {
	return &Loopback{mem: make([]byte, size)}
}

// WriteBlock copies data into the device's memory at addr.
func (l *Loopback) WriteBlock(addr uint16, data []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := int(addr)
	end := start + len(data)
	if end > len(l.mem) {
		return ErrOutOfRange
	}
	copy(l.mem[start:end], data)
	return nil
}

// ReadBlock copies len(out) bytes from the device's memory at addr into out.
func (l *Loopback) ReadBlock(addr uint16, out []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := int(addr)
	end := start + len(out)
	if end > len(l.mem) {
		return ErrOutOfRange
	}
	copy(out, l.mem[start:end])
	return nil
}

// Snapshot returns a copy of the device's full backing array, useful for
// tests asserting on the device's state after a sync cycle.
func (l *Loopback) Snapshot() []byte {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]byte, len(l.mem))
	copy(out, l.mem)
	return out
}
