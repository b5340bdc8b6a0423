// Package shadow implements the shadow register table: a RAM-resident
// mirror of a peripheral's register map with block-granularity dirty
// tracking, dual Host/Kernel view disciplines, pluggable access and persist
// policies, and a staged-overlay transaction mode.
package shadow

import (
	"github.com/aq1018/embedded-shadow/blockmap"
	"github.com/aq1018/embedded-shadow/critsec"
	"github.com/aq1018/embedded-shadow/policy"
	"github.com/aq1018/embedded-shadow/slice"
)

// Storage is the root of a shadow table: it owns the byte array and dirty
// bitmap, and hands out short-lived Host and Kernel views over them. A
// Storage is safe for concurrent use by multiple goroutines as long as its
// critical section actually serializes them (the bundled default,
// critsec.Mutex, does).
type Storage struct {
	table   *table
	section critsec.Section
	access  policy.AccessPolicy
	persist policy.PersistPolicy
	trigger policy.PersistTrigger
}

// Option configures a Storage at construction time.
type Option func(*Storage)

// WithAccessPolicy overrides the default AllowAll access policy.
func WithAccessPolicy(p policy.AccessPolicy) Option {
	return func(s *Storage) { s.access = p }
}

// WithPersistPolicy overrides the default NoPersistPolicy.
func WithPersistPolicy(p policy.PersistPolicy) Option {
	return func(s *Storage) { s.persist = p }
}

// WithPersistTrigger overrides the default NoPersistTrigger.
func WithPersistTrigger(t policy.PersistTrigger) Option {
	return func(s *Storage) { s.trigger = t }
}

// WithSection overrides the default critsec.Mutex critical section.
func WithSection(sec critsec.Section) Option {
	return func(s *Storage) { s.section = sec }
}

// NewStorage validates ts == bs*bc (and bs, bc, ts's bounds) and constructs a
// Storage with all bytes initially zero and no blocks dirty. Unset options
// default to AllowAll, NoPersistPolicy, NoPersistTrigger, and critsec.Mutex.
func NewStorage(ts, bs, bc int, opts ...Option) (*Storage, error) {
	bm, err := blockmap.New(ts, bs, bc)
	if err != nil {
		return nil, err
	}

	s := &Storage{
		table:   newTable(bm),
		section: &critsec.Mutex{},
		access:  policy.AllowAll{},
		persist: policy.NoPersistPolicy{},
		trigger: &policy.NoPersistTrigger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// WithHostView obtains a Host view via f, running it under the critical
// section.
func (s *Storage) WithHostView(f func(*HostView)) {
	s.section.Do(func() {
		f(newHostView(s))
	})
}

// WithHostViewUnchecked obtains a Host view via f without acquiring the
// critical section. Sound only if the caller guarantees exclusive access.
func (s *Storage) WithHostViewUnchecked(f func(*HostView)) {
	f(newHostView(s))
}

// WithKernelView obtains a Kernel view via f, running it under the critical
// section.
func (s *Storage) WithKernelView(f func(*KernelView)) {
	s.section.Do(func() {
		f(newKernelView(s))
	})
}

// WithKernelViewUnchecked obtains a Kernel view via f without acquiring the
// critical section. Sound only if the caller guarantees exclusive access.
func (s *Storage) WithKernelViewUnchecked(f func(*KernelView)) {
	f(newKernelView(s))
}

// WithStagedHostView attaches buf to a Host context and runs f over the
// resulting StagedHostView, under the critical section.
func (s *Storage) WithStagedHostView(buf StagingBuffer, f func(*StagedHostView)) {
	s.section.Do(func() {
		f(newStagedHostView(s, buf))
	})
}

// WithStagedHostViewUnchecked is WithStagedHostView without the critical
// section.
func (s *Storage) WithStagedHostViewUnchecked(buf StagingBuffer, f func(*StagedHostView)) {
	f(newStagedHostView(s, buf))
}

// WithDefaults invokes f with a write-only slice over (addr, len), bypassing
// the access policy and marking nothing dirty nor notifying persistence.
// Intended for one-time factory/EEPROM loads before the Host is activated.
func (s *Storage) WithDefaults(addr uint16, length int, f func(slice.WOSlice)) error {
	var outerErr error
	s.section.Do(func() {
		outerErr = s.withDefaultsUnlocked(addr, length, f)
	})
	return outerErr
}

// WithDefaultsUnchecked is WithDefaults without the critical section, for
// pre-goroutine-start init.
func (s *Storage) WithDefaultsUnchecked(addr uint16, length int, f func(slice.WOSlice)) error {
	return s.withDefaultsUnlocked(addr, length, f)
}

func (s *Storage) withDefaultsUnlocked(addr uint16, length int, f func(slice.WOSlice)) error {
	return s.table.withBytesMut(addr, length, func(b []byte) error {
		f(slice.NewWO(b))
		return nil
	})
}
