package dialog

import (
	"time"

	"github.com/emiago/sipdialog/sip"
	"github.com/looplab/fsm"
	"github.com/rs/zerolog"
)

// Dialog is the record of §3: attributes describing one RFC 3261
// dialog, replaced in place as requests and responses flow through
// it. Mutation style follows §9 - a mutable record is fine because
// §5 guarantees all mutation to a given Call (and its dialogs)
// happens sequentially.
type Dialog struct {
	ID     DialogID
	Role   Role
	AppID  string
	CallID string

	Created  time.Time
	Updated  time.Time
	Answered time.Time // zero value = undefined, per §3 invariant 4

	Status Status

	LocalSeq  uint32
	RemoteSeq uint32

	LocalURI  sip.Uri
	RemoteURI sip.Uri

	LocalTarget  sip.Uri
	RemoteTarget sip.Uri
	RouteSet     []sip.Uri

	Secure bool // write-once at creation, §3 invariant 5
	Early  bool // latches false on first final response, §3 invariant 4/P3

	CallerTag string

	LocalSDP     []byte
	RemoteSDP    []byte
	MediaStarted bool
	SDPOffer     *SDPExchange
	SDPAnswer    *SDPExchange

	InviteReq   *sip.Request
	InviteResp  *sip.Response
	InviteClass Role // which side's INVITE exchange is driving state; only meaningful while InviteReq != nil
	ACKReq      *sip.Request

	RetransTimer TimerHandle
	TimeoutTimer TimerHandle
	NextRetrans  time.Duration

	StopReason string
	Subs       []*Subscription

	// pendingTargetUpdate is set by updateTarget when remote_target
	// changed from a non-sentinel value; the state machine reads and
	// clears it after running C4 to decide whether to emit
	// dialog_update(target_update).
	pendingTargetUpdate bool

	fsm             *fsm.FSM
	statemachineLog zerolog.Logger
}

// Create is C3's dialog creation: a fresh dialog from the
// establishing request/response pair, status=init, early=true,
// media_started=false, secure computed from the establishing
// Request-URI scheme and transport, and the role-dependent CSeq/URI
// assignment of §4.1.
func Create(role Role, req *sip.Request, resp *sip.Response, appID string) (*Dialog, error) {
	id, err := MakeDialogID(role, resp)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	d := &Dialog{
		ID:           id,
		Role:         role,
		AppID:        appID,
		Created:      now,
		Updated:      now,
		Status:       St(KindInit),
		Early:        true,
		MediaStarted: false,
		LocalTarget:  sip.InvalidURI,
		RemoteTarget: sip.InvalidURI,
		InviteReq:    req,
		InviteResp:   resp,
		InviteClass:  role,
	}

	if req.CallID != "" {
		d.CallID = string(req.CallID)
	} else {
		d.CallID = string(resp.CallID)
	}

	switch role {
	case RoleUAC:
		if req.CSeq != nil {
			d.LocalSeq = req.CSeq.SeqNo
		}
		d.RemoteSeq = 0
		if req.From != nil {
			d.LocalURI = req.From.Address
			d.CallerTag = req.From.Tag()
		}
		if req.To != nil {
			d.RemoteURI = req.To.Address
		}
	case RoleUAS, RoleProxy:
		d.LocalSeq = 0
		if req.CSeq != nil {
			d.RemoteSeq = req.CSeq.SeqNo
		}
		if req.To != nil {
			d.LocalURI = req.To.Address
		}
		if req.From != nil {
			d.RemoteURI = req.From.Address
			d.CallerTag = req.From.Tag()
		}
	}

	d.Secure = req.Recipient.Secure && req.Transport() == sip.TransportTLS

	dialogsActive.Inc()

	return d, nil
}

// ValidateRemoteCSeq is the supplemented-feature CSeq check of
// SPEC_FULL.md, grounded on the teacher's ReadBye: an in-dialog
// request from the remote party must carry CSeq = remote_seq + 1.
func (d *Dialog) ValidateRemoteCSeq(seq uint32) error {
	if seq != d.RemoteSeq+1 {
		return ErrInvalidCSeq
	}
	return nil
}

// IsTerminal reports whether the dialog is in {stop,_} (§3 invariant
// 3: once here, no further mutation except removal from the Call).
func (d *Dialog) IsTerminal() bool {
	return d.Status.IsStop()
}
