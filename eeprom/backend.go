package eeprom

import (
	"sync"

	"github.com/aq1018/embedded-shadow/policy"
	"github.com/aq1018/embedded-shadow/shadow"
	"github.com/aq1018/embedded-shadow/slice"
)

// Backend ties a shadow.Storage to a Store: it implements policy.PersistTrigger,
// queuing WordKey values pushed by Policy and, on RequestPersist, reading the
// current bytes for each queued word out of storage and writing them to the
// Store via the word handshake.
//
// Construction is two-phase because Backend and Storage are mutually
// dependent: Storage.WithPersistTrigger needs a PersistTrigger before
// NewStorage returns, but PushKey/RequestPersist need the Storage to read
// bytes back out of. NewBackend builds the trigger side on its own; Bind
// attaches the Storage once it exists, before any Host write can reach it.
type Backend struct {
	storage *shadow.Storage
	store   Store

	mu      sync.Mutex
	pending map[uint32]struct{}
}

// NewBackend constructs a Backend over store, ready to be passed to
// shadow.WithPersistTrigger before its Storage exists. Bind must be called
// with the resulting Storage before any Host write notifies this Backend.
func NewBackend(store Store) *Backend {
	return &Backend{
		store:   store,
		pending: make(map[uint32]struct{}),
	}
}

// Bind attaches s as the Storage this Backend reads words back out of. Call
// it once, right after shadow.NewStorage returns, before starting any Host
// writer or background worker.
func (b *Backend) Bind(s *shadow.Storage) {
	b.storage = s
}

// PushKey implements policy.PersistTrigger, queuing key if it is a WordKey.
func (b *Backend) PushKey(key policy.PersistKey) {
	wk, ok := key.(WordKey)
	if !ok {
		return
	}
	b.mu.Lock()
	b.pending[wk.WordAddr] = struct{}{}
	b.mu.Unlock()
}

// RequestPersist implements policy.PersistTrigger, flushing every queued
// word to the Store. A word that fails to write is left pending so a later
// RequestPersist retries it. Storage calls RequestPersist from inside a Host
// view, with its critical section already held, so words are read back out
// of storage without acquiring that section again.
func (b *Backend) RequestPersist() {
	b.mu.Lock()
	addrs := make([]uint32, 0, len(b.pending))
	for a := range b.pending {
		addrs = append(addrs, a)
	}
	b.mu.Unlock()

	for _, addr := range addrs {
		if err := b.flushWord(addr); err != nil {
			continue
		}
		b.mu.Lock()
		delete(b.pending, addr)
		b.mu.Unlock()
	}
}

func (b *Backend) flushWord(wordAddr uint32) error {
	byteAddr := uint16(wordAddr * 2)

	var raw [2]byte
	b.storage.WithKernelViewUnchecked(func(k *shadow.KernelView) {
		k.ReadRange(byteAddr, raw[:])
	})

	word := uint16(raw[0]) | uint16(raw[1])<<8
	return b.store.WriteWord(wordAddr, word)
}

// LoadDefaults reads the first wordCount words from the Store and writes them into storage's
// bytes without going through the access policy and without marking
// anything dirty — the one-time factory/EEPROM load Storage.WithDefaults
// exists for.
func (b *Backend) LoadDefaults(wordCount int) error {
	return b.storage.WithDefaultsUnchecked(0, wordCount*2, func(w slice.WOSlice) {
		for i := 0; i < wordCount; i++ {
			word, err := b.store.ReadWord(uint32(i))
			if err != nil {
				continue
			}
			w.WriteU16LEAt(i*2, word)
		}
	})
}
