package log

import (
	"sync"
	"testing"
	"time"
)

type recordingLogger struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingLogger) Log(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func TestMultiLogger(t *testing.T) {
	a, b := &recordingLogger{}, &recordingLogger{}
	m := NewMultiLogger(a, nil, b)

	m.Log(Event{Timestamp: time.Now(), ConnectionID: "x"})

	if len(a.events) != 1 || len(b.events) != 1 {
		t.Fatalf("got %d/%d events, want 1/1", len(a.events), len(b.events))
	}
	if b.events[0].ConnectionID != "x" {
		t.Errorf("ConnectionID = %q, want x", b.events[0].ConnectionID)
	}
}

func TestOrNoop(t *testing.T) {
	if _, ok := OrNoop(nil).(NoopLogger); !ok {
		t.Error("OrNoop(nil) is not NoopLogger")
	}
	r := &recordingLogger{}
	if OrNoop(r) != Logger(r) {
		t.Error("OrNoop(r) did not return r")
	}
}

func TestNewFrameEvent(t *testing.T) {
	reply := []byte{0x05, 0x00, 0x02}
	fe := NewFrameEvent(reply, DirectionIn)
	if fe.Sequence != 5 {
		t.Errorf("Sequence = %d, want 5", fe.Sequence)
	}
	if fe.OpCode != 0 {
		t.Errorf("OpCode = %s, want none", fe.OpCode)
	}
	if fe.Size != 5 {
		t.Errorf("Size = %d, want 5", fe.Size)
	}
}
