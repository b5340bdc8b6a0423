package eeprom

import (
	"testing"

	"github.com/aq1018/embedded-shadow/policy"
	"github.com/aq1018/embedded-shadow/shadow"
)

func TestMemStoreReadWriteWord(t *testing.T) {
	s := NewMemStore(4, 0)
	if err := s.WriteWord(1, 0xBEEF); err != nil {
		t.Fatalf("WriteWord: %v", err)
	}
	got, err := s.ReadWord(1)
	if err != nil {
		t.Fatalf("ReadWord: %v", err)
	}
	if got != 0xBEEF {
		t.Fatalf("got %#04x, want 0xBEEF", got)
	}
}

func TestMemStoreRejectsOpsAfterClose(t *testing.T) {
	s := NewMemStore(4, 0)
	s.Close()
	if _, err := s.ReadWord(0); err != ErrClosed {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if err := s.WriteWord(0, 1); err != ErrClosed {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

func TestPolicyPushesWordAlignedKeys(t *testing.T) {
	p := Policy{}
	var keys []WordKey
	should := p.PushPersistKeys(3, 3, func(k policy.PersistKey) {
		keys = append(keys, k.(WordKey))
	})
	if !should {
		t.Fatalf("expected PushPersistKeys to request persistence")
	}
	// bytes 3,4,5 span word 1 (bytes 2-3) through word 2 (bytes 4-5).
	want := []uint32{1, 2}
	if len(keys) != len(want) {
		t.Fatalf("got %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i].WordAddr != want[i] {
			t.Fatalf("got %v, want %v", keys, want)
		}
	}
}

func TestBackendFlushesDirtyWordsToStore(t *testing.T) {
	store := NewMemStore(8, 0)
	backend := NewBackend(store)

	s, _ := shadow.NewStorage(16, 4, 4,
		shadow.WithPersistPolicy(Policy{}),
		shadow.WithPersistTrigger(backend),
	)
	backend.Bind(s)

	// The Host write alone must be enough to reach the Store: no manual
	// PushPersistKeys/RequestPersist step.
	s.WithHostView(func(h *shadow.HostView) {
		h.WriteRange(4, []byte{0x34, 0x12})
	})

	word, err := store.ReadWord(2)
	if err != nil {
		t.Fatalf("ReadWord: %v", err)
	}
	if word != 0x1234 {
		t.Fatalf("got %#04x, want 0x1234", word)
	}
}

func TestLoadDefaultsBypassesAccessAndDirty(t *testing.T) {
	store := NewMemStore(4, 0)
	store.WriteWord(0, 0xAABB)
	store.WriteWord(1, 0xCCDD)

	s, _ := shadow.NewStorage(16, 4, 4, shadow.WithAccessPolicy(policy.DenyAll{}))
	backend := NewBackend(store)
	backend.Bind(s)

	if err := backend.LoadDefaults(2); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}

	s.WithKernelView(func(k *shadow.KernelView) {
		if k.AnyDirty() {
			t.Fatalf("LoadDefaults must not mark dirty")
		}
		var got [4]byte
		k.ReadRange(0, got[:])
		if got[0] != 0xBB || got[1] != 0xAA || got[2] != 0xDD || got[3] != 0xCC {
			t.Fatalf("unexpected bytes loaded: %v", got)
		}
	})
}
