package dialog

// DispatchRetrans is C8's mapping of a fired retrans timer to a
// state-machine input, per §4.6. A firing while the dialog has since
// moved out of accepted_uas is a stale timer and is logged and
// dropped rather than acted on.
func DispatchRetrans(d *Dialog, call *Call, cfg Config, timers TimerService, notifier Notifier, transport Transport, appID string) {
	if d.Status.Kind != KindAcceptedUAS {
		cfg.Logger().Warn().Str("dialog_id", string(d.ID)).Str("status", d.Status.String()).
			Msg("retransmission timer fired outside accepted_uas, dropping as stale")
		retransmissionsTotal.WithLabelValues("stale").Inc()
		return
	}

	err := transport.ResendResponse(d.InviteResp, d.ID, ResendOptions{Destination: d.RemoteTarget.HostPort()})
	if err != nil {
		retransmissionsTotal.WithLabelValues("failure").Inc()
		StatusUpdate(d, call, Stop(ReasonACKTimeout), cfg, timers, notifier, transport, appID)
		if call != nil {
			call.Store(d)
		}
		return
	}

	retransmissionsTotal.WithLabelValues("success").Inc()

	armPeriod := d.NextRetrans
	if armPeriod > cfg.T2 {
		armPeriod = cfg.T2
	}
	d.NextRetrans = armPeriod * 2
	if d.NextRetrans > cfg.T2 {
		d.NextRetrans = cfg.T2
	}

	d.RetransTimer = timers.StartTimer(d.ID, TimerRetrans, armPeriod, func() {
		DispatchRetrans(d, call, cfg, timers, notifier, transport, appID)
	})
}

// DispatchTimeout is C8's mapping of a fired dialog inactivity timer:
// ack_timeout while waiting on the peer's ACK, otherwise a plain
// inactivity timeout, per §4.6.
func DispatchTimeout(d *Dialog, call *Call, cfg Config, timers TimerService, notifier Notifier, transport Transport, appID string) {
	reason := ReasonTimeout
	if d.Status.Kind == KindAcceptedUAC || d.Status.Kind == KindAcceptedUAS {
		reason = ReasonACKTimeout
	}
	StatusUpdate(d, call, Stop(reason), cfg, timers, notifier, transport, appID)
	if call != nil {
		call.Store(d)
	}
}
