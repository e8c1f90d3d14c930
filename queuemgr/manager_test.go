package queuemgr

import (
	"testing"

	"github.com/sttelite/queue-manager/region"
)

type recordingLogger struct {
	debugs []string
	warns  []string
}

func (r *recordingLogger) Debug(event string, fields ...Field) { r.debugs = append(r.debugs, event) }
func (r *recordingLogger) Warn(event string, fields ...Field)  { r.warns = append(r.warns, event) }

func panicHooks() region.Hooks {
	return region.Hooks{
		OnOutOfMemory:      func() { panic("oom") },
		OnIllegalOperation: func() { panic("illegal") },
	}
}

// S8 (manager logging).
func TestManagerLogsOneDebugEventPerCall(t *testing.T) {
	rec := &recordingLogger{}
	m := New(panicHooks(), rec)

	q := m.CreateQueue()
	m.Enqueue(q, 0x41)
	m.Dequeue(q)
	m.DestroyQueue(q)

	if len(rec.debugs) != 4 {
		t.Fatalf("got %d debug events, want 4: %v", len(rec.debugs), rec.debugs)
	}
	if len(rec.warns) != 0 {
		t.Fatalf("got %d warn events on a clean run, want 0: %v", len(rec.warns), rec.warns)
	}
}

func TestManagerLogsWarnBeforeOOMHookFires(t *testing.T) {
	rec := &recordingLogger{}
	m := New(panicHooks(), rec)

	for i := 0; i < region.NumSlots; i++ {
		m.CreateQueue()
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected the OOM hook to panic")
			}
		}()
		m.CreateQueue()
	}()

	if len(rec.warns) != 1 || rec.warns[0] != "fault" {
		t.Fatalf("warns = %v, want exactly one \"fault\" event", rec.warns)
	}
}

func TestManagerVerifyDelegatesToRegion(t *testing.T) {
	m := New(panicHooks(), nil)
	q := m.CreateQueue()
	m.Enqueue(q, 1)

	stats, problems := m.Verify()
	if len(problems) != 0 {
		t.Fatalf("unexpected problems: %v", problems)
	}
	if stats.LiveQueues != 1 || stats.AllocBlocks != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
