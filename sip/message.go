package sip

// RequestMethod names a SIP request method.
type RequestMethod string

func (m RequestMethod) String() string { return string(m) }

// Methods the dialog layer cares about. A fuller method set (REGISTER,
// OPTIONS, SUBSCRIBE, NOTIFY, ...) belongs to the message layer this
// module does not own; INVITE/ACK/CANCEL/BYE are the ones whose
// semantics the dialog state machine itself depends on.
const (
	INVITE RequestMethod = "INVITE"
	ACK    RequestMethod = "ACK"
	CANCEL RequestMethod = "CANCEL"
	BYE    RequestMethod = "BYE"
)

// StatusCode is a SIP response status code (1xx-6xx).
type StatusCode int

func (c StatusCode) IsProvisional() bool { return c >= 100 && c < 200 }
func (c StatusCode) IsSuccess() bool     { return c >= 200 && c < 300 }
func (c StatusCode) IsFinal() bool       { return c >= 200 }

// Transport names the wire transport a message arrived on or will be
// sent over. Only "tls" makes a dialog secure (§3 invariant 5); the
// concrete socket handling lives in the transport collaborator.
type Transport string

const (
	TransportUDP Transport = "udp"
	TransportTCP Transport = "tcp"
	TransportTLS Transport = "tls"
	TransportWS  Transport = "ws"
	TransportWSS Transport = "wss"
)
