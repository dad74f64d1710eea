package dialog

import (
	"context"
	"time"

	"github.com/looplab/fsm"
)

// allKinds lists every dialog Kind, used both as the event name fired
// to reach a state and as a legal source for every other event. The
// state machine contract in §4.2 does not restrict which
// prior status a transaction layer may request next - that ordering
// discipline lives entirely in the caller - so the graph here is
// deliberately permissive; what it buys is the library's bookkeeping
// of "current state" plus an enter-state hook for transition logging,
// in place of a hand-rolled switch doing the same thing.
var allKinds = []string{
	KindInit.String(),
	KindProceedingUAC.String(),
	KindProceedingUAS.String(),
	KindAcceptedUAC.String(),
	KindAcceptedUAS.String(),
	KindConfirmed.String(),
	KindBye.String(),
	KindStop.String(),
}

func (d *Dialog) initFSM() {
	events := make(fsm.Events, 0, len(allKinds))
	for _, k := range allKinds {
		events = append(events, fsm.EventDesc{Name: k, Src: allKinds, Dst: k})
	}

	d.fsm = fsm.NewFSM(KindInit.String(), events, fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			d.statemachineLog.Debug().
				Str("dialog_id", string(d.ID)).
				Str("from", e.Src).
				Str("to", e.Dst).
				Msg("dialog state transition")
		},
	})
}

// fireFSM drives the looplab/fsm transition for k, tolerating the
// no-op case of a transition back into the same state (e.g. a
// repeated accepted_uas retransmission-triggered re-entry).
func (d *Dialog) fireFSM(k Kind) {
	if d.fsm == nil {
		return
	}
	err := d.fsm.Event(context.Background(), k.String())
	if err != nil {
		if _, ok := err.(fsm.NoTransitionError); !ok {
			d.statemachineLog.Debug().Err(err).Msg("fsm event")
		}
	}
}

// StatusUpdate is C5's status_update: the single entry point driving
// a dialog's status transitions, timer arming/cancellation, C4
// invocation, and notification emission, per the full §4.2 contract.
func StatusUpdate(d *Dialog, call *Call, newStatus Status, cfg Config, timers TimerService, notifier Notifier, transport Transport, appID string) {
	d.statemachineLog = cfg.Logger()
	if d.fsm == nil {
		d.initFSM()
	}

	wasInit := d.Status.Kind == KindInit
	oldStatus := d.Status

	if wasInit {
		notifier.DialogUpdate(DialogEvent{Kind: DialogEventStart, DialogID: d.ID})
	}

	timers.CancelTimer(d.RetransTimer)
	timers.CancelTimer(d.TimeoutTimer)
	d.RetransTimer = TimerHandle{}
	d.TimeoutTimer = TimerHandle{}

	d.Status = newStatus
	d.Updated = time.Now()
	d.fireFSM(newStatus.Kind)

	if newStatus.IsStop() {
		d.StopReason = newStatus.Reason
		notifier.DialogUpdate(DialogEvent{Kind: DialogEventStop, DialogID: d.ID, Status: newStatus})
	} else {
		if !oldStatus.Equal(newStatus) {
			notifier.DialogUpdate(DialogEvent{Kind: DialogEventStatus, DialogID: d.ID, Status: newStatus})
		}
		d.TimeoutTimer = timers.StartTimer(d.ID, TimerTimeout, cfg.DialogExpiry, func() {
			DispatchTimeout(d, call, cfg, timers, notifier, transport, appID)
		})
	}

	if d.MediaStarted && (newStatus.Kind == KindBye || newStatus.Kind == KindStop) {
		notifier.SessionUpdate(SessionEvent{Kind: SessionEventStop, DialogID: d.ID})
		d.MediaStarted = false
	}

	switch newStatus.Kind {
	case KindProceedingUAC, KindProceedingUAS, KindAcceptedUAC, KindAcceptedUAS:
		updateRoute(d, d.Role, appID, transport)
		updateTarget(d, d.Role, cfg.Logger())
		if d.pendingTargetUpdate {
			notifier.DialogUpdate(DialogEvent{Kind: DialogEventTargetUpdate, DialogID: d.ID})
			d.pendingTargetUpdate = false
		}
		updateSession(d, notifier)
	}

	if newStatus.Kind == KindAcceptedUAS {
		d.NextRetrans = 2 * cfg.T1
		d.RetransTimer = timers.StartTimer(d.ID, TimerRetrans, cfg.T1, func() {
			DispatchRetrans(d, call, cfg, timers, notifier, transport, appID)
		})
	}

	if newStatus.Kind == KindConfirmed {
		updateSession(d, notifier)
		d.InviteReq, d.InviteResp, d.ACKReq = nil, nil, nil
	}

	if newStatus.IsStop() {
		dialogsActive.Dec()
	}
}
