package command

import "testing"

func TestBubbleFIFOOrder(t *testing.T) {
	b := NewBubble()
	b.Push(Search{Query: "first"})
	b.Push(CloseView{})
	b.Push(Search{Query: "second"})

	items := b.Drain()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if got := items[0].(Search).Query; got != "first" {
		t.Fatalf("expected first, got %q", got)
	}
	if _, ok := items[1].(CloseView); !ok {
		t.Fatalf("expected CloseView second, got %T", items[1])
	}
	if b.Len() != 0 {
		t.Fatalf("expected drained bubble, got %d items", b.Len())
	}
}

func TestBubbleRetainConsumesMatches(t *testing.T) {
	b := NewBubble()
	b.Push(ValueChanged{Key: "search", Value: "mario"})
	b.Push(CloseView{})
	b.Push(Toast{Text: "hi"})

	var value string
	b.Retain(func(c Command) bool {
		if vc, ok := c.(ValueChanged); ok {
			value = vc.Value
			return false
		}
		return true
	})

	if value != "mario" {
		t.Fatalf("expected consumed value, got %q", value)
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 remaining, got %d", b.Len())
	}
	if _, ok := b.Items()[0].(CloseView); !ok {
		t.Fatalf("expected CloseView passed through, got %T", b.Items()[0])
	}
}

func TestBusConcurrentSenders(t *testing.T) {
	bus := NewBus(16)
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			bus.Send(Redraw{})
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	for i := 0; i < 8; i++ {
		if _, ok := (<-bus.C()).(Redraw); !ok {
			t.Fatalf("expected Redraw command")
		}
	}
}

func TestBusTrySendFull(t *testing.T) {
	bus := NewBus(1)
	if !bus.TrySend(Exit{}) {
		t.Fatalf("expected send into empty buffer to succeed")
	}
	if bus.TrySend(Exit{}) {
		t.Fatalf("expected send into full buffer to fail")
	}
}
