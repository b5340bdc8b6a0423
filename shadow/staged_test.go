package shadow

import (
	"errors"
	"testing"

	"github.com/aq1018/embedded-shadow/policy"
	"github.com/aq1018/embedded-shadow/slice"
)

// memStagingBuffer is a minimal StagingBuffer used only to exercise
// StagedHostView's overlay and commit logic independently of the concrete
// arena-backed implementation.
type memStagingBuffer struct {
	entries []memEntry
}

type memEntry struct {
	addr uint16
	data []byte
}

func (m *memStagingBuffer) AnyStaged() bool { return len(m.entries) > 0 }

func (m *memStagingBuffer) AllocStaged(addr uint16, length int, f func(slice.RWSlice) bool) (bool, error) {
	buf := make([]byte, length)
	keep := f(slice.NewRW(buf))
	if keep {
		m.entries = append(m.entries, memEntry{addr: addr, data: buf})
	}
	return keep, nil
}

func (m *memStagingBuffer) IterStaged(f func(addr uint16, data slice.ROSlice) error) error {
	for _, e := range m.entries {
		if err := f(e.addr, slice.NewRO(e.data)); err != nil {
			return err
		}
	}
	return nil
}

func (m *memStagingBuffer) Clear() error {
	m.entries = nil
	return nil
}

func TestStagedWriteDoesNotTouchStorageUntilCommit(t *testing.T) {
	s, _ := NewStorage(16, 4, 4)
	buf := &memStagingBuffer{}

	s.WithStagedHostView(buf, func(v *StagedHostView) {
		_, err := AllocStaged(v, 0, 4, func(r slice.RWSlice) WriteResult[struct{}] {
			r.WriteU8At(0, 99)
			return Dirty(struct{}{})
		})
		if err != nil {
			t.Fatalf("AllocStaged: %v", err)
		}
		if !v.IsStaged() {
			t.Fatalf("expected IsStaged to be true")
		}
	})

	s.WithKernelView(func(k *KernelView) {
		if k.AnyDirty() {
			t.Fatalf("staged-but-uncommitted writes must not mark storage dirty")
		}
		var got uint8
		KernelWithROSlice(k, 0, 4, func(r slice.ROSlice) struct{} {
			got = r.ReadU8At(0)
			return struct{}{}
		})
		if got != 0 {
			t.Fatalf("expected base storage untouched, got %d", got)
		}
	})
}

func TestStagedOverlayReadSeesPendingBytes(t *testing.T) {
	s, _ := NewStorage(16, 4, 4)
	s.WithHostView(func(h *HostView) {
		h.WriteRange(0, []byte{1, 2, 3, 4})
	})

	buf := &memStagingBuffer{}
	s.WithStagedHostView(buf, func(v *StagedHostView) {
		AllocStaged(v, 1, 2, func(r slice.RWSlice) WriteResult[struct{}] {
			r.WriteU8At(0, 0xAA)
			r.WriteU8At(1, 0xBB)
			return Dirty(struct{}{})
		})

		got, err := WithStagedROSlice(v, 0, 4, func(r slice.ROSlice) []byte {
			out := make([]byte, 4)
			r.CopyTo(out)
			return out
		})
		if err != nil {
			t.Fatalf("WithStagedROSlice: %v", err)
		}
		want := []byte{1, 0xAA, 0xBB, 4}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("got %v, want %v", got, want)
			}
		}
	})
}

func TestStagedOverlayReadOutsideOverlapIsDirectStorageSlice(t *testing.T) {
	s, _ := NewStorage(16, 4, 4)
	s.WithHostView(func(h *HostView) {
		h.WriteRange(8, []byte{7, 7, 7, 7})
	})

	buf := &memStagingBuffer{}
	s.WithStagedHostView(buf, func(v *StagedHostView) {
		AllocStaged(v, 0, 4, func(r slice.RWSlice) WriteResult[struct{}] {
			return Dirty(struct{}{})
		})

		got, err := WithStagedROSlice(v, 8, 4, func(r slice.ROSlice) uint8 {
			return r.ReadU8At(0)
		})
		if err != nil {
			t.Fatalf("WithStagedROSlice: %v", err)
		}
		if got != 7 {
			t.Fatalf("expected unrelated range unaffected, got %d", got)
		}
	})
}

func TestStagedLaterEntryWinsOverEarlierOnOverlap(t *testing.T) {
	s, _ := NewStorage(16, 4, 4)
	buf := &memStagingBuffer{}

	s.WithStagedHostView(buf, func(v *StagedHostView) {
		AllocStaged(v, 0, 4, func(r slice.RWSlice) WriteResult[struct{}] {
			r.Fill(0x11)
			return Dirty(struct{}{})
		})
		AllocStaged(v, 2, 4, func(r slice.RWSlice) WriteResult[struct{}] {
			r.Fill(0x22)
			return Dirty(struct{}{})
		})

		got, _ := WithStagedROSlice(v, 0, 6, func(r slice.ROSlice) []byte {
			out := make([]byte, 6)
			r.CopyTo(out)
			return out
		})
		want := []byte{0x11, 0x11, 0x22, 0x22, 0x22, 0x22}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("got %v, want %v", got, want)
			}
		}
	})
}

func TestCommitStagedAppliesInInsertionOrderAndMarksDirty(t *testing.T) {
	var trig countingTrigger
	s, _ := NewStorage(16, 4, 4,
		WithPersistPolicy(policy.AlwaysPersistPolicy{}),
		WithPersistTrigger(&trig),
	)
	buf := &memStagingBuffer{}

	s.WithStagedHostView(buf, func(v *StagedHostView) {
		AllocStaged(v, 0, 4, func(r slice.RWSlice) WriteResult[struct{}] {
			r.Fill(0x11)
			return Dirty(struct{}{})
		})
		AllocStaged(v, 2, 4, func(r slice.RWSlice) WriteResult[struct{}] {
			r.Fill(0x22)
			return Dirty(struct{}{})
		})
		if err := v.CommitStaged(); err != nil {
			t.Fatalf("CommitStaged: %v", err)
		}
		if v.IsStaged() {
			t.Fatalf("expected buffer cleared after commit")
		}
	})

	if trig.requests != 2 {
		t.Fatalf("expected one persist request per committed entry, got %d", trig.requests)
	}

	s.WithKernelView(func(k *KernelView) {
		got := make([]byte, 6)
		k.ReadRange(0, got)
		want := []byte{0x11, 0x11, 0x22, 0x22, 0x22, 0x22}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("got %v, want %v", got, want)
			}
		}
		if !k.AnyDirty() {
			t.Fatalf("expected committed ranges to be dirty")
		}
	})
}

func TestRollbackStagedLeavesStorageUntouched(t *testing.T) {
	s, _ := NewStorage(16, 4, 4)
	s.WithHostView(func(h *HostView) {
		h.WriteRange(0, []byte{5, 5, 5, 5})
	})

	buf := &memStagingBuffer{}
	s.WithStagedHostView(buf, func(v *StagedHostView) {
		AllocStaged(v, 0, 4, func(r slice.RWSlice) WriteResult[struct{}] {
			r.Fill(0x99)
			return Dirty(struct{}{})
		})
		if err := v.RollbackStaged(); err != nil {
			t.Fatalf("RollbackStaged: %v", err)
		}
		if v.IsStaged() {
			t.Fatalf("expected buffer empty after rollback")
		}
	})

	s.WithKernelView(func(k *KernelView) {
		got := make([]byte, 4)
		k.ReadRange(0, got)
		for _, b := range got {
			if b != 5 {
				t.Fatalf("expected storage unchanged by rollback, got %v", got)
			}
		}
	})
}

// togglePolicy denies writes once armed, to exercise commit-time re-checking
// of access independent of whatever the policy allowed at stage time.
type togglePolicy struct {
	denyAddr uint16
	armed    bool
}

func (p *togglePolicy) CanRead(addr uint16, length int) bool { return true }
func (p *togglePolicy) CanWrite(addr uint16, length int) bool {
	if p.armed && addr == p.denyAddr {
		return false
	}
	return true
}

func TestCommitStagedIsAllOrNothingOnDenial(t *testing.T) {
	pol := &togglePolicy{denyAddr: 4}
	s, _ := NewStorage(16, 4, 4, WithAccessPolicy(pol))
	buf := &memStagingBuffer{}

	s.WithStagedHostView(buf, func(v *StagedHostView) {
		AllocStaged(v, 0, 4, func(r slice.RWSlice) WriteResult[struct{}] {
			r.Fill(0x11)
			return Dirty(struct{}{})
		})
		AllocStaged(v, 4, 4, func(r slice.RWSlice) WriteResult[struct{}] {
			r.Fill(0x22)
			return Dirty(struct{}{})
		})

		pol.armed = true
		err := v.CommitStaged()
		if !errors.Is(err, ErrDenied) {
			t.Fatalf("expected ErrDenied, got %v", err)
		}
		if !v.IsStaged() {
			t.Fatalf("expected buffer to remain intact after a failed commit")
		}
	})

	s.WithKernelView(func(k *KernelView) {
		if k.AnyDirty() {
			t.Fatalf("expected no partial commit to have applied")
		}
	})
}
