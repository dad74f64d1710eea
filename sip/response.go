package sip

// Response is the subset of a parsed SIP response the dialog layer
// reads. See Request for why this is a plain data carrier rather than
// a parser/serializer.
type Response struct {
	StatusCode StatusCode
	Reason     string

	From   *FromHeader
	To     *ToHeader
	CallID CallIDHeader
	CSeq   *CSeqHeader

	Contacts     []*ContactHeader
	RecordRoutes []*RecordRouteHeader

	transport Transport
	body      []byte
}

// NewResponse builds a bare response.
func NewResponse(statusCode StatusCode, reason string) *Response {
	return &Response{StatusCode: statusCode, Reason: reason}
}

// NewResponseFromRequest builds a response that copies the dialog
// identifying headers of req, the way the teacher's
// NewResponseFromRequest does for To/From/Call-ID/CSeq.
func NewResponseFromRequest(req *Request, statusCode StatusCode, reason string, body []byte) *Response {
	res := NewResponse(statusCode, reason)
	res.From = req.From
	res.To = req.To
	res.CallID = req.CallID
	if req.CSeq != nil {
		cseq := *req.CSeq
		res.CSeq = &cseq
	}
	res.body = body
	return res
}

func (r *Response) IsProvisional() bool { return r.StatusCode.IsProvisional() }
func (r *Response) IsSuccess() bool     { return r.StatusCode.IsSuccess() }
func (r *Response) IsFinal() bool       { return r.StatusCode.IsFinal() }

func (r *Response) Contact() (c *ContactHeader, ok bool) {
	if len(r.Contacts) != 1 {
		return nil, false
	}
	return r.Contacts[0], true
}

func (r *Response) Transport() Transport     { return r.transport }
func (r *Response) SetTransport(t Transport) { r.transport = t }
func (r *Response) Body() []byte             { return r.body }
func (r *Response) SetBody(b []byte)         { r.body = b }
