package dialog

import "strconv"

// Role is the perspective from which a dialog is tracked: initiator
// (UAC), responder (UAS), or a transparent proxy pass-through.
type Role int

const (
	RoleUAC Role = iota
	RoleUAS
	RoleProxy
)

func (r Role) String() string {
	switch r {
	case RoleUAC:
		return "uac"
	case RoleUAS:
		return "uas"
	case RoleProxy:
		return "proxy"
	default:
		return "unknown"
	}
}

// Kind enumerates the dialog status values of §3, short of the
// payload {stop,reason} carries - see Status.
type Kind int

const (
	KindInit Kind = iota
	KindProceedingUAC
	KindProceedingUAS
	KindAcceptedUAC
	KindAcceptedUAS
	KindConfirmed
	KindBye
	KindStop
)

func (k Kind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindProceedingUAC:
		return "proceeding_uac"
	case KindProceedingUAS:
		return "proceeding_uas"
	case KindAcceptedUAC:
		return "accepted_uac"
	case KindAcceptedUAS:
		return "accepted_uas"
	case KindConfirmed:
		return "confirmed"
	case KindBye:
		return "bye"
	case KindStop:
		return "stop"
	default:
		return "unknown"
	}
}

// Status is the dialog status tagged variant of §3/§9: a Kind, plus a
// Reason that is only meaningful when Kind == KindStop. Keeping a
// single KindStop value (rather than one per reason) is what §9 means
// by "any stop reason" branches remaining trivial to match on.
type Status struct {
	Kind   Kind
	Reason string
}

// Stop builds a {stop, reason} status.
func Stop(reason string) Status { return Status{Kind: KindStop, Reason: reason} }

// St builds a non-stop status from its Kind.
func St(k Kind) Status { return Status{Kind: k} }

func (s Status) IsStop() bool { return s.Kind == KindStop }

func (s Status) String() string {
	if s.Kind == KindStop {
		return "stop:" + s.Reason
	}
	return s.Kind.String()
}

func (s Status) Equal(other Status) bool {
	return s.Kind == other.Kind && (s.Kind != KindStop || s.Reason == other.Reason)
}

// Stop reasons §4.2 normalizes SIP final-response codes into, plus
// the two reasons the timer dispatcher (§4.6) produces directly.
const (
	ReasonBusy               = "busy"
	ReasonCancelled          = "cancelled"
	ReasonServiceUnavailable = "service_unavailable"
	ReasonDeclined           = "declined"
	ReasonTimeout            = "timeout"
	ReasonACKTimeout         = "ack_timeout"
)

// NormalizeReason maps a SIP final-response status code to the
// canonical stop reason of §4.2/P5, passing through any other code
// unchanged (as its decimal string).
func NormalizeReason(code int) string {
	switch code {
	case 486:
		return ReasonBusy
	case 487:
		return ReasonCancelled
	case 503:
		return ReasonServiceUnavailable
	case 603:
		return ReasonDeclined
	default:
		return strconv.Itoa(code)
	}
}

// Party identifies which side of the dialog an SDP offer or answer
// originated from.
type Party int

const (
	PartyLocal Party = iota
	PartyRemote
)

// SDPSource identifies which message carried an SDP offer or answer.
type SDPSource int

const (
	SourceRequest SDPSource = iota
	SourceResponse
	SourceACK
)

// SDPExchange is a pending offer or answer: who produced it, which
// message it rode in on, and the body itself.
type SDPExchange struct {
	Party  Party
	Source SDPSource
	SDP    []byte
}
