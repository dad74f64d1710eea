package dialog

// HibernateHint is the scheduler-facing signal C6's store() leaves
// behind after each call, letting an outer supervisor decide whether
// the Call itself can be compacted or retired.
type HibernateHint int

const (
	HibernateNone HibernateHint = iota
	HibernateDialogStop
	HibernateDialogConfirmed
)

// Call is the ordered collection of dialogs sharing one SIP Call-ID,
// per §3's Call data model. Mutation is expected to happen from a
// single serialized context per Call (§5); Call itself does no
// locking.
type Call struct {
	ID        string
	Dialogs   []*Dialog
	Hibernate HibernateHint
}

// NewCall constructs an empty Call for the given Call-ID.
func NewCall(id string) *Call {
	return &Call{ID: id}
}

// Find is C6's find: a linear scan by DialogID.
func (c *Call) Find(id DialogID) (*Dialog, bool) {
	for _, d := range c.Dialogs {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

// Store is C6's store: head-fast-path first, then a general upsert
// by id, per §4.7. The head optimization is kept even though it is
// functionally equivalent to the general path, since it is what
// produces the hibernate hint the outer scheduler relies on (§9).
func (c *Call) Store(d *Dialog) {
	if len(c.Dialogs) > 0 && c.Dialogs[0].ID == d.ID {
		switch {
		case d.Status.IsStop():
			c.Dialogs = c.Dialogs[1:]
			c.Hibernate = HibernateDialogStop
		case d.Status.Kind == KindConfirmed:
			c.Dialogs[0] = d
			c.Hibernate = HibernateDialogConfirmed
		default:
			c.Dialogs[0] = d
			c.Hibernate = HibernateNone
		}
		return
	}

	for i, existing := range c.Dialogs {
		if existing.ID == d.ID {
			switch {
			case d.Status.IsStop():
				c.Dialogs = append(c.Dialogs[:i], c.Dialogs[i+1:]...)
				c.Hibernate = HibernateDialogStop
			case d.Status.Kind == KindConfirmed:
				c.Dialogs[i] = d
				c.Hibernate = HibernateDialogConfirmed
			default:
				c.Dialogs[i] = d
				c.Hibernate = HibernateNone
			}
			return
		}
	}

	if d.Status.IsStop() {
		// Not found and already terminal: nothing to insert.
		return
	}
	c.Dialogs = append(c.Dialogs, d)
	if d.Status.Kind == KindConfirmed {
		c.Hibernate = HibernateDialogConfirmed
	} else {
		c.Hibernate = HibernateNone
	}
}
