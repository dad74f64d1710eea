package dialog

// SubStatus is a subscription's status (§3 "Subscription"): active,
// pending, or terminated with a reason.
type SubStatus struct {
	Kind   SubKind
	Reason string
}

type SubKind int

const (
	SubActive SubKind = iota
	SubPending
	SubTerminated
)

func SubTerminate(reason string) SubStatus {
	return SubStatus{Kind: SubTerminated, Reason: reason}
}

func (s SubStatus) IsTerminated() bool { return s.Kind == SubTerminated }

// Subscription is a single event-package subscription attached to a
// dialog (e.g. REFER progress via implicit subscription, or an
// explicit SUBSCRIBE/NOTIFY pair sharing the dialog).
type Subscription struct {
	EventID string
	Status  SubStatus
}

// FindSub is C7's find_sub: a linear scan by event id.
func FindSub(eventID string, d *Dialog) (*Subscription, bool) {
	for _, s := range d.Subs {
		if s.EventID == eventID {
			return s, true
		}
	}
	return nil, false
}

// StoreSub is C7's store_sub, mirroring C6's head-fast-path (§4.8):
// a subscription in a terminated status is removed on write; an
// update at the head of the list is replaced in place without a
// linear scan, since the subscription just acted on is usually the
// one at the front.
func StoreSub(sub *Subscription, d *Dialog) {
	if len(d.Subs) > 0 && d.Subs[0].EventID == sub.EventID {
		if sub.Status.IsTerminated() {
			d.Subs = d.Subs[1:]
			return
		}
		d.Subs[0] = sub
		return
	}

	for i, s := range d.Subs {
		if s.EventID == sub.EventID {
			if sub.Status.IsTerminated() {
				d.Subs = append(d.Subs[:i], d.Subs[i+1:]...)
				return
			}
			d.Subs[i] = sub
			return
		}
	}

	if sub.Status.IsTerminated() {
		return
	}
	d.Subs = append(d.Subs, sub)
}
