package regmap

import "testing"

func TestBuilderRejectsOverlap(t *testing.T) {
	_, err := NewBuilder().
		Add("a", 0, 4).
		Add("b", 2, 4).
		Build(16)
	if err == nil {
		t.Fatalf("expected overlap to be rejected")
	}
}

func TestBuilderRejectsOutOfBounds(t *testing.T) {
	_, err := NewBuilder().
		Add("a", 12, 8).
		Build(16)
	if err == nil {
		t.Fatalf("expected register exceeding table size to be rejected")
	}
}

func TestBuilderRejectsDuplicateName(t *testing.T) {
	_, err := NewBuilder().
		Add("a", 0, 2).
		Add("a", 4, 2).
		Build(16)
	if err == nil {
		t.Fatalf("expected duplicate name to be rejected")
	}
}

func TestLookupAndMustOffset(t *testing.T) {
	m, err := NewBuilder().
		Add("status", 4, 2).
		Add("control", 0, 4).
		Build(16)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	r, ok := m.Lookup("status")
	if !ok || r.Offset != 4 || r.Width != 2 {
		t.Fatalf("unexpected lookup result: %+v ok=%v", r, ok)
	}

	if off := m.MustOffset("control"); off != 0 {
		t.Fatalf("expected offset 0, got %d", off)
	}

	if _, ok := m.Lookup("missing"); ok {
		t.Fatalf("expected missing register to not be found")
	}
}

func TestMustOffsetPanicsOnMissing(t *testing.T) {
	m, _ := NewBuilder().Add("a", 0, 2).Build(8)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustOffset to panic for an unknown name")
		}
	}()
	m.MustOffset("missing")
}

func TestECRegistersBuildsWithoutPanicking(t *testing.T) {
	off := ECRegisters.MustOffset("ALControl")
	if off != 0x0120 {
		t.Fatalf("expected ALControl at 0x0120, got %#04x", off)
	}
	sm0 := ECRegisters.MustOffset("SyncManager0")
	sm1 := ECRegisters.MustOffset("SyncManager1")
	if int(sm1-sm0) != SyncManagerChannelLen {
		t.Fatalf("expected sync manager channels to be %d bytes apart, got %d", SyncManagerChannelLen, sm1-sm0)
	}
}
