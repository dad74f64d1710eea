package sip

// NameAddr is the shared shape of the From/To/Contact header triple:
// an optional display name, a URI, and header parameters. The three
// headers below wrap it in distinct types since their parameters
// carry different meaning (tag vs expires/q).
type NameAddr struct {
	DisplayName string
	Address     Uri
	Params      Params
}

// Tag returns the "tag" parameter, or "" if absent.
func (n NameAddr) Tag() string {
	if n.Params == nil {
		return ""
	}
	return n.Params["tag"]
}

// FromHeader is the From header of a request or response.
type FromHeader struct{ NameAddr }

// ToHeader is the To header of a request or response.
type ToHeader struct{ NameAddr }

// ContactHeader is a single Contact header value. A message can carry
// more than one (§4.4 explicitly deals with zero/one/many Contacts).
type ContactHeader struct{ NameAddr }

// Clone returns a deep-enough copy for independent mutation of Params.
func (c *ContactHeader) Clone() *ContactHeader {
	if c == nil {
		return nil
	}
	return &ContactHeader{NameAddr{
		DisplayName: c.DisplayName,
		Address:     c.Address,
		Params:      c.Params.Clone(),
	}}
}

// RecordRouteHeader is a single Record-Route header value, populated
// by proxies so that in-dialog requests are routed back through them.
type RecordRouteHeader struct {
	Address Uri
	Params  Params
}

// RouteHeader is a single Route header value, built from a dialog's
// route set for subsequent in-dialog requests.
type RouteHeader struct {
	Address Uri
	Params  Params
}

// CSeqHeader is the CSeq header: a sequence number plus the method it
// was issued for.
type CSeqHeader struct {
	SeqNo  uint32
	Method RequestMethod
}

// CallIDHeader is the Call-ID header value.
type CallIDHeader string
