package events

import "testing"

func TestEmitCallsHandlersInOrder(t *testing.T) {
	e := NewEmitter()

	var got []int
	e.On("tick", func(args ...any) { got = append(got, 1) })
	e.On("tick", func(args ...any) { got = append(got, 2) })
	e.On("other", func(args ...any) { got = append(got, 99) })

	e.Emit("tick")

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("handler order = %v, want [1 2]", got)
	}
}

func TestEmitForwardsPayload(t *testing.T) {
	e := NewEmitter()

	var got []any
	e.On("msg", func(args ...any) { got = args })

	e.Emit("msg", "hello", 42)

	if len(got) != 2 || got[0] != "hello" || got[1] != 42 {
		t.Errorf("payload = %v", got)
	}
}

func TestUnsubscribe(t *testing.T) {
	e := NewEmitter()

	calls := 0
	off := e.On("tick", func(args ...any) { calls++ })

	e.Emit("tick")
	off()
	off() // second call is a no-op
	e.Emit("tick")

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if e.HandlerCount("tick") != 0 {
		t.Errorf("HandlerCount = %d, want 0", e.HandlerCount("tick"))
	}
}

func TestUnsubscribeKeepsSiblings(t *testing.T) {
	e := NewEmitter()

	var got []string
	offA := e.On("tick", func(args ...any) { got = append(got, "a") })
	e.On("tick", func(args ...any) { got = append(got, "b") })

	offA()
	e.Emit("tick")

	if len(got) != 1 || got[0] != "b" {
		t.Errorf("surviving handlers = %v, want [b]", got)
	}
}

func TestNilHandlerIgnored(t *testing.T) {
	e := NewEmitter()
	off := e.On("tick", nil)
	off()

	if e.HandlerCount("tick") != 0 {
		t.Error("nil handler was registered")
	}
}

func TestRemoveAll(t *testing.T) {
	e := NewEmitter()

	calls := 0
	e.On("a", func(args ...any) { calls++ })
	e.On("b", func(args ...any) { calls++ })

	e.RemoveAll()
	e.Emit("a")
	e.Emit("b")

	if calls != 0 {
		t.Errorf("calls after RemoveAll = %d, want 0", calls)
	}
}

func TestHandlerCanUnsubscribeDuringEmit(t *testing.T) {
	e := NewEmitter()

	var off func()
	calls := 0
	off = e.On("tick", func(args ...any) {
		calls++
		off()
	})

	e.Emit("tick")
	e.Emit("tick")

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
