package shadow

import (
	"errors"
	"fmt"

	"github.com/aq1018/embedded-shadow/blockmap"
)

// ErrKind enumerates the stable error kinds a shadow table operation can
// fail with.
type ErrKind int

const (
	// KindOutOfBounds means an address range exceeded the table's total
	// size, or its arithmetic overflowed.
	KindOutOfBounds ErrKind = iota
	// KindZeroLength means an operation was attempted with a zero-length
	// range.
	KindZeroLength
	// KindDenied means the access policy refused the operation.
	KindDenied
	// KindStageFull means the staging buffer's data or entry capacity was
	// exhausted.
	KindStageFull
)

func (k ErrKind) String() string {
	switch k {
	case KindOutOfBounds:
		return "out of bounds"
	case KindZeroLength:
		return "zero length"
	case KindDenied:
		return "denied"
	case KindStageFull:
		return "stage full"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// ErrOutOfBounds, ErrZeroLength, ErrDenied and ErrStageFull are sentinels
// usable with errors.Is against any *ShadowError of the matching kind.
var (
	ErrOutOfBounds = errors.New("shadow: out of bounds")
	ErrZeroLength  = errors.New("shadow: zero length")
	ErrDenied      = errors.New("shadow: access denied")
	ErrStageFull   = errors.New("shadow: staging capacity exhausted")
)

func sentinelFor(k ErrKind) error {
	switch k {
	case KindOutOfBounds:
		return ErrOutOfBounds
	case KindZeroLength:
		return ErrZeroLength
	case KindDenied:
		return ErrDenied
	case KindStageFull:
		return ErrStageFull
	default:
		return nil
	}
}

// ShadowError carries a stable Kind plus enough context (address, length,
// and for a denied commit, the offending staged entry's index) to render a
// one-line diagnostic, in the style of ecmd.WorkingCounterError.
type ShadowError struct {
	Kind    ErrKind
	Addr    uint16
	Length  int
	EntryAt int // -1 unless Kind == KindDenied during a staged commit
}

func newErr(kind ErrKind, addr uint16, length int) *ShadowError {
	return &ShadowError{Kind: kind, Addr: addr, Length: length, EntryAt: -1}
}

// NewStageFullError builds a KindStageFull *ShadowError for a staging buffer
// implementation (outside this package) that has run out of data or entry
// capacity for a reservation targeting (addr, length).
func NewStageFullError(addr uint16, length int) *ShadowError {
	return newErr(KindStageFull, addr, length)
}

func (e *ShadowError) Error() string {
	if e.EntryAt >= 0 {
		return fmt.Sprintf("shadow: %s at addr=%#04x len=%d (staged entry %d)", e.Kind, e.Addr, e.Length, e.EntryAt)
	}
	return fmt.Sprintf("shadow: %s at addr=%#04x len=%d", e.Kind, e.Addr, e.Length)
}

// Is reports whether target is the sentinel error matching e's Kind, so
// callers can write errors.Is(err, shadow.ErrDenied) without caring about
// the structured fields.
func (e *ShadowError) Is(target error) bool {
	return target == sentinelFor(e.Kind)
}

// errFromSpan converts a blockmap span error into the shadow package's own
// *ShadowError, preserving the requested range for diagnostics.
func errFromSpan(err error, addr uint16, length int) error {
	if err == nil {
		return nil
	}
	kind := KindOutOfBounds
	if errors.Is(err, blockmap.ErrZeroLength) {
		kind = KindZeroLength
	}
	return newErr(kind, addr, length)
}
