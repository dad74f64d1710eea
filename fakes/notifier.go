package fakes

import (
	"sync"

	"github.com/emiago/sipdialog"
)

// Notifier is a recording fake for dialog.Notifier: every
// notification is appended to a slice for assertions instead of
// being delivered anywhere, the way the teacher's recorders capture
// outbound traffic for inspection rather than sending it.
type Notifier struct {
	mu            sync.Mutex
	DialogEvents  []dialog.DialogEvent
	SessionEvents []dialog.SessionEvent
}

func (n *Notifier) DialogUpdate(e dialog.DialogEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.DialogEvents = append(n.DialogEvents, e)
}

func (n *Notifier) SessionUpdate(e dialog.SessionEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.SessionEvents = append(n.SessionEvents, e)
}

// DialogKinds returns the recorded DialogEvent kinds in order, handy
// for asserting a notification sequence without comparing full
// event structs.
func (n *Notifier) DialogKinds() []dialog.DialogEventKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	kinds := make([]dialog.DialogEventKind, len(n.DialogEvents))
	for i, e := range n.DialogEvents {
		kinds[i] = e.Kind
	}
	return kinds
}
