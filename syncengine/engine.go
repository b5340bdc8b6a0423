// Package syncengine runs a background goroutine that periodically (or on
// explicit request) drains a shadow table's dirty blocks out to a hardware
// transport, clearing each block only once its bytes have actually left the
// table. It is built the way the teacher's ecmd.Multiplexer is: a
// request/response channel for out-of-band cycles plus a tomb for lifetime
// management, here using gopkg.in/tomb.v2 in place of the teacher's
// unmaintained launchpad.net/tomb.
package syncengine

import (
	"context"
	"time"

	"github.com/aq1018/embedded-shadow/shadow"
	"github.com/aq1018/embedded-shadow/slice"
	"github.com/aq1018/embedded-shadow/transport"
	tomb "gopkg.in/tomb.v2"
)

type triggerReq struct {
	respChan chan error
}

// Engine periodically calls IterDirty on storage's Kernel view, writes each
// dirty block to a transport.Transport, and clears exactly the range it
// flushed. It also implements policy.PersistTrigger (via TriggerNow wired as
// the RequestPersist hook) so a Host write's persist notification can force
// an immediate out-of-cycle flush.
//
// Construction is two-phase, the same way eeprom.Backend's is: New builds the
// engine around its Transport without a Storage, so it can be passed to
// shadow.WithPersistTrigger before NewStorage returns; Bind attaches the
// Storage afterward, before Start or any Host write.
type Engine struct {
	storage   *shadow.Storage
	transport transport.Transport
	interval  time.Duration

	reqChan chan triggerReq
	t       tomb.Tomb
}

// New constructs an Engine over tr, ticking every interval once Start is
// called. Bind must be called with the target Storage before Start.
func New(tr transport.Transport, interval time.Duration) *Engine {
	return &Engine{
		transport: tr,
		interval:  interval,
		reqChan:   make(chan triggerReq),
	}
}

// Bind attaches s as the Storage this Engine syncs. Call it once, right
// after shadow.NewStorage returns, before Start or any Host write.
func (e *Engine) Bind(s *shadow.Storage) {
	e.storage = s
}

// Start launches the engine's background goroutine. ctx's cancellation kills
// the tomb the same way an explicit Stop does.
func (e *Engine) Start(ctx context.Context) {
	e.t.Go(func() error {
		return e.loop(ctx)
	})
}

// Stop kills the tomb and waits for the loop goroutine to exit.
func (e *Engine) Stop() error {
	e.t.Kill(nil)
	return e.t.Wait()
}

// TriggerNow requests an out-of-cycle sync and blocks until it completes,
// mirroring ecmd.Multiplexer.Cycle()'s request/response-channel idiom.
func (e *Engine) TriggerNow() error {
	req := triggerReq{respChan: make(chan error, 1)}
	select {
	case e.reqChan <- req:
	case <-e.t.Dying():
		return tomb.ErrDying
	}
	select {
	case err := <-req.respChan:
		return err
	case <-e.t.Dying():
		return tomb.ErrDying
	}
}

// PushKey satisfies policy.PersistTrigger; the engine does not batch keys by
// identity, it simply flushes whatever is dirty on the next trigger.
func (e *Engine) PushKey(key interface{}) {}

// RequestPersist satisfies policy.PersistTrigger by requesting an immediate,
// fire-and-forget sync cycle. Errors from that cycle are not observable here;
// callers wanting the error should call TriggerNow directly instead of
// relying on the persist-policy hook.
func (e *Engine) RequestPersist() {
	go func() { _ = e.TriggerNow() }()
}

func (e *Engine) loop(ctx context.Context) error {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			e.sync()

		case req := <-e.reqChan:
			req.respChan <- e.sync()

		case <-ctx.Done():
			return ctx.Err()

		case <-e.t.Dying():
			return nil
		}
	}
}

func (e *Engine) sync() error {
	var syncErr error
	e.storage.WithKernelView(func(k *shadow.KernelView) {
		syncErr = k.IterDirty(func(blockAddr uint16, data slice.ROSlice) error {
			raw := make([]byte, data.Len())
			data.CopyTo(raw)
			if err := e.transport.WriteBlock(blockAddr, raw); err != nil {
				return err
			}
			return k.ClearDirty(blockAddr, data.Len())
		})
	})
	return syncErr
}
