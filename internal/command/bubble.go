package command

// Bubble is the transient FIFO scoped to a single input dispatch. A child
// pushes commands it wants its logical parent to see; each ancestor on the
// active path may consume, drop or pass entries through. The queue is
// created fresh for every dispatch and never retained across frames.
type Bubble struct {
	items []Command
}

// NewBubble returns an empty bubble queue.
func NewBubble() *Bubble {
	return &Bubble{}
}

// Push appends a command to the back of the queue.
func (b *Bubble) Push(c Command) {
	b.items = append(b.items, c)
}

// Len reports the number of queued commands.
func (b *Bubble) Len() int { return len(b.items) }

// Items returns the queued commands in FIFO order for read-only inspection.
func (b *Bubble) Items() []Command { return b.items }

// Retain keeps only the commands for which keep returns true, preserving
// order. Ancestors use it to consume matched entries while passing the rest
// toward the root.
func (b *Bubble) Retain(keep func(Command) bool) {
	kept := b.items[:0]
	for _, c := range b.items {
		if keep(c) {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(b.items); i++ {
		b.items[i] = nil
	}
	b.items = kept
}

// Drain removes and returns all queued commands in FIFO order.
func (b *Bubble) Drain() []Command {
	items := b.items
	b.items = nil
	return items
}

// Clear discards all queued commands.
func (b *Bubble) Clear() {
	b.items = nil
}
