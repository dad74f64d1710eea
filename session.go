package dialog

import (
	"bytes"

	"github.com/pion/sdp/v3"
)

// updateSession is C4c: commit a pending SDP offer/answer pair once
// both are present, per §4.5. If either is still nil the dialog is
// returned unchanged.
func updateSession(d *Dialog, notifier Notifier) {
	if d.SDPOffer == nil || d.SDPAnswer == nil {
		return
	}

	var localSDP, remoteSDP []byte
	switch {
	case d.SDPOffer.Party == PartyLocal && d.SDPAnswer.Party == PartyRemote:
		localSDP, remoteSDP = d.SDPOffer.SDP, d.SDPAnswer.SDP
	case d.SDPOffer.Party == PartyRemote && d.SDPAnswer.Party == PartyLocal:
		localSDP, remoteSDP = d.SDPAnswer.SDP, d.SDPOffer.SDP
	default:
		// Same-party offer/answer is not a valid negotiation; drop the
		// pending pair without committing anything.
		d.SDPOffer, d.SDPAnswer = nil, nil
		return
	}

	switch {
	case !d.MediaStarted:
		notifier.SessionUpdate(SessionEvent{Kind: SessionEventStart, DialogID: d.ID, LocalSDP: localSDP, RemoteSDP: remoteSDP})
	case !sdpEqual(localSDP, d.LocalSDP) || !sdpEqual(remoteSDP, d.RemoteSDP):
		notifier.SessionUpdate(SessionEvent{Kind: SessionEventUpdate, DialogID: d.ID, LocalSDP: localSDP, RemoteSDP: remoteSDP})
	}

	d.LocalSDP = localSDP
	d.RemoteSDP = remoteSDP
	d.MediaStarted = true
	d.SDPOffer, d.SDPAnswer = nil, nil
}

// sdpEqual compares two SDP bodies by parsed session version and
// content rather than byte-for-byte, so a re-sent identical offer
// does not spuriously trigger a session_update(update). Bodies that
// fail to parse fall back to a raw byte comparison.
func sdpEqual(a, b []byte) bool {
	if bytes.Equal(a, b) {
		return true
	}

	var sdA, sdB sdp.SessionDescription
	if err := sdA.Unmarshal(a); err != nil {
		return false
	}
	if err := sdB.Unmarshal(b); err != nil {
		return false
	}

	if sdA.Origin.SessionVersion != sdB.Origin.SessionVersion {
		return false
	}
	if sdA.Origin.SessionID != sdB.Origin.SessionID {
		return false
	}

	rawA, errA := sdA.Marshal()
	rawB, errB := sdB.Marshal()
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(rawA, rawB)
}
