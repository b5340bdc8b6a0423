package staging

import (
	"errors"
	"testing"

	"github.com/aq1018/embedded-shadow/shadow"
	"github.com/aq1018/embedded-shadow/slice"
)

func stageWrite(p *PatchStagingBuffer, addr uint16, data []byte) error {
	_, err := p.AllocStaged(addr, len(data), func(s slice.RWSlice) bool {
		s.CopyFrom(data)
		return true
	})
	return err
}

func TestAccumulatesEntries(t *testing.T) {
	p := New(64, 8)
	if p.AnyStaged() {
		t.Fatalf("expected empty buffer")
	}

	if err := stageWrite(p, 0, []byte{0x01, 0x02}); err != nil {
		t.Fatalf("stageWrite: %v", err)
	}
	if !p.AnyStaged() {
		t.Fatalf("expected staged after first write")
	}
	if err := stageWrite(p, 10, []byte{0x03, 0x04}); err != nil {
		t.Fatalf("stageWrite: %v", err)
	}

	count := 0
	p.IterStaged(func(addr uint16, data slice.ROSlice) error {
		count++
		return nil
	})
	if count != 2 {
		t.Fatalf("expected 2 entries, got %d", count)
	}
}

func TestStageFullOnDataOverflow(t *testing.T) {
	p := New(64, 8)
	if err := stageWrite(p, 0, make([]byte, 60)); err != nil {
		t.Fatalf("stageWrite: %v", err)
	}

	err := stageWrite(p, 100, make([]byte, 8))
	if !errors.Is(err, shadow.ErrStageFull) {
		t.Fatalf("expected ErrStageFull, got %v", err)
	}
}

func TestStageFullOnEntryOverflow(t *testing.T) {
	p := New(64, 8)
	for i := 0; i < 8; i++ {
		if err := stageWrite(p, uint16(i*2), []byte{0x01}); err != nil {
			t.Fatalf("stageWrite %d: %v", i, err)
		}
	}

	err := stageWrite(p, 100, []byte{0x01})
	if !errors.Is(err, shadow.ErrStageFull) {
		t.Fatalf("expected ErrStageFull, got %v", err)
	}
}

func TestClearEmptiesBuffer(t *testing.T) {
	p := New(64, 8)
	stageWrite(p, 0, []byte{0x01, 0x02, 0x03})
	stageWrite(p, 10, []byte{0x04, 0x05})

	if !p.AnyStaged() {
		t.Fatalf("expected staged entries")
	}
	if err := p.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if p.AnyStaged() {
		t.Fatalf("expected no staged entries after Clear")
	}
}

func TestAllocStagedKeepsOnTrue(t *testing.T) {
	p := New(64, 8)
	keep, err := p.AllocStaged(10, 4, func(s slice.RWSlice) bool {
		s.CopyFrom([]byte{0xAA, 0xBB, 0xCC, 0xDD})
		return true
	})
	if err != nil || !keep {
		t.Fatalf("AllocStaged: keep=%v err=%v", keep, err)
	}
	if !p.AnyStaged() {
		t.Fatalf("expected entry retained")
	}

	found := false
	p.IterStaged(func(addr uint16, data slice.ROSlice) error {
		if addr != 10 {
			t.Fatalf("unexpected addr %d", addr)
		}
		got := make([]byte, 4)
		data.CopyTo(got)
		want := []byte{0xAA, 0xBB, 0xCC, 0xDD}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("got %v, want %v", got, want)
			}
		}
		found = true
		return nil
	})
	if !found {
		t.Fatalf("expected to find the staged entry")
	}
}

func TestAllocStagedReclaimsOnFalse(t *testing.T) {
	p := New(64, 8)
	keep, err := p.AllocStaged(10, 4, func(s slice.RWSlice) bool {
		s.CopyFrom([]byte{0xAA, 0xBB, 0xCC, 0xDD})
		return false
	})
	if err != nil || keep {
		t.Fatalf("AllocStaged: keep=%v err=%v", keep, err)
	}
	if p.AnyStaged() {
		t.Fatalf("expected no entries retained")
	}

	// Space should have been reclaimed: a second reservation of the full
	// capacity should still succeed.
	if err := stageWrite(p, 0, make([]byte, 64)); err != nil {
		t.Fatalf("expected reclaimed space to be reusable: %v", err)
	}
}
