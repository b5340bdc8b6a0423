// Package transport is the pluggable hardware-facing boundary the sync
// engine drives, plus an in-process Loopback implementation (grounded on the
// teacher's sim.L2Bus/sim.MMDevice) that tests and example programs use to
// exercise a full Host-write -> dirty -> sync-engine -> Transport.WriteBlock
// -> Kernel-clear round trip without real hardware.
package transport

// Transport is the interface a syncengine.Engine drives: WriteBlock pushes a
// dirty block's bytes to the device, ReadBlock pulls bytes back in.
type Transport interface {
	WriteBlock(addr uint16, data []byte) error
	ReadBlock(addr uint16, out []byte) error
}
