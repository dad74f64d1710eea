package sip

// Request is the subset of a parsed SIP request the dialog layer
// reads or rewrites. Parsing the request off the wire, and writing it
// back, are transport/parser concerns this module consumes as an
// already-built value (§1 "Out of scope").
type Request struct {
	Method    RequestMethod
	Recipient Uri

	From   *FromHeader
	To     *ToHeader
	CallID CallIDHeader
	CSeq   *CSeqHeader

	// Contacts holds every Contact header value, in message order.
	// §4.4 distinguishes the zero/one/many cases explicitly.
	Contacts []*ContactHeader

	// RecordRoutes holds every Record-Route header value, top to
	// bottom as it appears on the wire. §4.3 reads this list for the
	// UAS role without reversing it.
	RecordRoutes []*RecordRouteHeader

	Routes []*RouteHeader

	transport Transport
	source    string
	body      []byte
}

// NewRequest builds a bare request for the given method and
// request-URI, mirroring the teacher's sip.NewRequest constructor.
func NewRequest(method RequestMethod, recipient Uri) *Request {
	return &Request{Method: method, Recipient: recipient}
}

func (r *Request) IsInvite() bool { return r.Method == INVITE }
func (r *Request) IsAck() bool    { return r.Method == ACK }
func (r *Request) IsCancel() bool { return r.Method == CANCEL }
func (r *Request) IsBye() bool    { return r.Method == BYE }

// Contact returns the single Contact header if exactly one is
// present, and ok=false otherwise (zero or multiple).
func (r *Request) Contact() (c *ContactHeader, ok bool) {
	if len(r.Contacts) != 1 {
		return nil, false
	}
	return r.Contacts[0], true
}

func (r *Request) Transport() Transport     { return r.transport }
func (r *Request) SetTransport(t Transport) { r.transport = t }
func (r *Request) Source() string           { return r.source }
func (r *Request) SetSource(s string)       { r.source = s }
func (r *Request) Body() []byte             { return r.body }
func (r *Request) SetBody(b []byte)         { r.body = b }

// SetContact overwrites the Contacts list with a single value. Used
// by the target updater (§4.4 step 7) to keep an in-flight INVITE
// request's Contact synced with a newly learned target (the remote
// target for a UAS exchange, the local target for a UAC one).
func (r *Request) SetContact(c *ContactHeader) {
	r.Contacts = []*ContactHeader{c}
}

// Clone returns a shallow copy sufficient for storing an independent
// snapshot of the establishing INVITE (headers are not mutated in
// place elsewhere once stored).
func (r *Request) Clone() *Request {
	if r == nil {
		return nil
	}
	n := *r
	n.Contacts = append([]*ContactHeader(nil), r.Contacts...)
	n.RecordRoutes = append([]*RecordRouteHeader(nil), r.RecordRoutes...)
	n.Routes = append([]*RouteHeader(nil), r.Routes...)
	return &n
}
