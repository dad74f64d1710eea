// Package siptest builds the sip.Request/sip.Response values used
// across dialog package tests, mirroring the teacher's siptest
// package of test-only request/response helpers.
package siptest

import (
	"github.com/emiago/sipdialog/sip"
)

// Uri is a small convenience constructor for a plain sip: URI.
func Uri(user, host string) sip.Uri {
	return sip.Uri{User: user, Host: host}
}

// NewInvite builds a bare INVITE request between from/to URIs with
// the given From-tag and CSeq, ready to be stored as a dialog's
// invite_req.
func NewInvite(fromURI, toURI sip.Uri, fromTag string, cseq uint32) *sip.Request {
	req := sip.NewRequest(sip.INVITE, toURI)
	req.From = &sip.FromHeader{NameAddr: sip.NameAddr{Address: fromURI, Params: sip.Params{"tag": fromTag}}}
	req.To = &sip.ToHeader{NameAddr: sip.NameAddr{Address: toURI}}
	req.CallID = sip.CallIDHeader("test-call-id")
	req.CSeq = &sip.CSeqHeader{SeqNo: cseq, Method: sip.INVITE}
	return req
}

// NewFinalResponse builds a final response to req carrying a To-tag,
// a single Contact, and optionally a body, ready to drive Create/
// StatusUpdate in a test.
func NewFinalResponse(req *sip.Request, code int, toTag string, contact sip.Uri, body []byte) *sip.Response {
	res := sip.NewResponseFromRequest(req, sip.StatusCode(code), "", body)
	to := *req.To
	to.Params = sip.Params{"tag": toTag}
	res.To = &to
	res.Contacts = []*sip.ContactHeader{{NameAddr: sip.NameAddr{Address: contact}}}
	return res
}

// NewProvisionalResponse builds a 1xx response carrying a To-tag (an
// early-dialog-establishing provisional), mirroring NewFinalResponse
// for the 100 <= code < 200 case.
func NewProvisionalResponse(req *sip.Request, code int, toTag string, contact sip.Uri) *sip.Response {
	res := NewFinalResponse(req, code, toTag, contact, nil)
	return res
}

// WithRequestRecordRoute appends Record-Route hops (in wire order) to
// req, used to exercise §4.3's route update. WithResponseRecordRoute
// does the same for a response.
func WithRequestRecordRoute(req *sip.Request, hops ...sip.Uri) *sip.Request {
	for _, h := range hops {
		req.RecordRoutes = append(req.RecordRoutes, &sip.RecordRouteHeader{Address: h})
	}
	return req
}

func WithResponseRecordRoute(res *sip.Response, hops ...sip.Uri) *sip.Response {
	for _, h := range hops {
		res.RecordRoutes = append(res.RecordRoutes, &sip.RecordRouteHeader{Address: h})
	}
	return res
}
