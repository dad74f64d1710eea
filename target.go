package dialog

import (
	"time"

	"github.com/emiago/sipdialog/sip"
	"github.com/rs/zerolog"
)

// updateTarget is C4b: target update, run against the stored INVITE
// request/response pair on every proceeding/accepted transition.
func updateTarget(d *Dialog, role Role, log zerolog.Logger) {
	req, resp := d.InviteReq, d.InviteResp

	var remoteContacts, localContacts []*sip.ContactHeader
	switch role {
	case RoleUAC:
		remoteContacts = resp.Contacts
		localContacts = req.Contacts
	default:
		remoteContacts = req.Contacts
		localContacts = resp.Contacts
	}

	prevRemote := d.RemoteTarget

	if len(remoteContacts) == 1 {
		target := remoteContacts[0].Address
		if d.Secure {
			target = target.WithSecure(true)
		}
		d.RemoteTarget = target
	} else {
		log.Warn().Int("contacts", len(remoteContacts)).Str("dialog_id", string(d.ID)).
			Msg("target update: zero or multiple remote Contacts, retaining previous remote_target")
	}

	if len(localContacts) == 1 {
		d.LocalTarget = localContacts[0].Address
	} else {
		log.Warn().Int("contacts", len(localContacts)).Str("dialog_id", string(d.ID)).
			Msg("target update: zero or multiple local Contacts, retaining previous local_target")
	}

	code := int(resp.StatusCode)
	d.Early = d.Early && code >= 100 && code < 200

	if d.Answered.IsZero() && code >= 200 {
		d.Answered = time.Now()
	}

	targetChanged := !d.RemoteTarget.Equals(prevRemote)
	if targetChanged && !prevRemote.IsInvalid() {
		d.pendingTargetUpdate = true
	}

	// §4.4 step 7: while the INVITE exchange is still in flight, keep
	// the stored request's Contact synced with the newly learned
	// target so a later final response reflects it.
	if d.InviteClass == RoleUAS && !resp.IsFinal() {
		req.SetContact(&sip.ContactHeader{NameAddr: sip.NameAddr{Address: d.RemoteTarget}})
	} else if d.InviteClass == RoleUAC && !resp.IsFinal() {
		req.SetContact(&sip.ContactHeader{NameAddr: sip.NameAddr{Address: d.LocalTarget}})
	}
}
