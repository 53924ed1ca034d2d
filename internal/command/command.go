// Package command carries cross-cutting requests from view nodes to the
// application root. A node emits a Command when the effect it wants is
// outside its own subtree: quitting the shell, launching a game, showing a
// toast. Commands travel either through the per-dispatch bubble queue, where
// ancestors may intercept them, or directly on the process-wide bus.
package command

import "time"

// Command is the closed union of requests a node cannot fulfil itself.
type Command interface {
	isCommand()
}

// Exit asks the shell to persist its state and terminate.
type Exit struct{}

// CloseView asks the logical parent to dismiss the emitting overlay.
type CloseView struct{}

// StartSearch asks the root to activate the search keyboard overlay.
type StartSearch struct{}

// Search carries a submitted search query toward the results view.
type Search struct {
	Query string
}

// ValueChanged reports an edited value that should be persisted. The
// keyboard overlay uses it to deliver its submitted text.
type ValueChanged struct {
	Key   string
	Value string
}

// Exec asks the process root to replace the shell with the given command
// line. Emitted once a durable session record exists.
type Exec struct {
	Command string
	Args    []string
}

// Toast asks the root to show a transient message. A zero Duration keeps the
// toast up until it is replaced; an empty Text dismisses the current toast.
type Toast struct {
	Text     string
	Duration time.Duration
}

// Redraw asks the root to mark the whole tree for redraw, used after a
// shared resource such as the style sheet changes.
type Redraw struct{}

// SaveStateScreenshot asks the root to run the capture-then-snapshot
// sequence for the given state slot.
type SaveStateScreenshot struct {
	Slot int
}

// PopulateDb asks the root to (re)index the game database before a search.
type PopulateDb struct{}

func (Exit) isCommand()                {}
func (CloseView) isCommand()           {}
func (StartSearch) isCommand()         {}
func (Search) isCommand()              {}
func (ValueChanged) isCommand()        {}
func (Exec) isCommand()                {}
func (Toast) isCommand()               {}
func (Redraw) isCommand()              {}
func (SaveStateScreenshot) isCommand() {}
func (PopulateDb) isCommand()          {}
