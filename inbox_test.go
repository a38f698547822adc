package vlist_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-theft-auto/vlist"
)

type countingRepainter struct {
	calls atomic.Int32
}

func (r *countingRepainter) RequestRepaint() {
	r.calls.Add(1)
}

func TestInboxSendAndRead(t *testing.T) {
	in := vlist.NewInbox[int]()

	in.Send(1)
	in.Send(2)
	in.Send(3)

	got := in.Read(nil)
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("Read = %v, want [1 2 3]", got)
	}

	if again := in.Read(nil); again != nil {
		t.Errorf("second Read = %v, want nil", again)
	}
}

func TestInboxReadLast(t *testing.T) {
	in := vlist.NewInbox[string]()

	if _, ok := in.ReadLast(nil); ok {
		t.Error("ReadLast on empty inbox reported a value")
	}

	sender := in.Sender()
	sender.Send("a")
	sender.Send("b")

	v, ok := in.ReadLast(nil)
	if !ok || v != "b" {
		t.Errorf("ReadLast = %q, %v; want \"b\", true", v, ok)
	}
}

func TestInboxReplace(t *testing.T) {
	in := vlist.NewInbox[int]()
	sender := in.Sender()

	sender.Send(1)
	sender.Send(2)
	sender.Replace(99)

	got := in.Read(nil)
	if len(got) != 1 || got[0] != 99 {
		t.Errorf("Read after Replace = %v, want [99]", got)
	}
}

func TestInboxRepainterAttached(t *testing.T) {
	rp := &countingRepainter{}
	in := vlist.NewInboxWithRepainter[int](rp)

	in.Send(1)
	in.Send(2)

	if got := rp.calls.Load(); got != 2 {
		t.Errorf("repaint requests = %d, want 2", got)
	}
}

// Read picks the repainter up from the frame context, so senders
// created before the UI existed still wake the event loop.
func TestInboxCapturesRepainterFromContext(t *testing.T) {
	rp := &countingRepainter{}
	in := vlist.NewInbox[int]()
	sender := in.Sender()

	// No repainter yet: sends queue silently.
	sender.Send(1)
	if rp.calls.Load() != 0 {
		t.Fatal("repaint requested before capture")
	}

	ui := vlist.New(&mockRenderer{}, vlist.WithRepainter(rp))
	ctx := ui.Begin(vlist.NewInputState(), vlist.Vec2{X: 800, Y: 600}, 0.016)
	got := in.Read(ctx)
	_ = ui.End()

	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("Read = %v, want [1]", got)
	}

	sender.Send(2)
	if rp.calls.Load() != 1 {
		t.Errorf("repaint requests after capture = %d, want 1", rp.calls.Load())
	}
}

func TestInboxConcurrentSenders(t *testing.T) {
	in := vlist.NewInbox[int]()

	const senders = 8
	const perSender = 100

	var wg sync.WaitGroup
	for s := 0; s < senders; s++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sender := in.Sender()
			for i := 0; i < perSender; i++ {
				sender.Send(i)
			}
		}()
	}
	wg.Wait()

	got := in.Read(nil)
	if len(got) != senders*perSender {
		t.Errorf("received %d values, want %d", len(got), senders*perSender)
	}
}
