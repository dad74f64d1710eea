package dialog

import "github.com/emiago/sipdialog/sip"

// updateRoute is C4a: route set construction runs exactly once, the
// first time a dialog is answered. Every call after that is a no-op,
// per §4.3 "After answered is set, route update is a no-op."
func updateRoute(d *Dialog, role Role, appID string, transport Transport) {
	if !d.Answered.IsZero() {
		return
	}

	var hops []*sip.RecordRouteHeader
	switch role {
	case RoleUAC:
		hops = reverseRecordRoutes(d.InviteResp.RecordRoutes)
	default:
		hops = d.InviteReq.RecordRoutes
	}

	if len(hops) > 0 && transport != nil && transport.IsLocal(appID, hops[0].Address) {
		hops = hops[1:]
	}

	routeSet := make([]sip.Uri, len(hops))
	for i, h := range hops {
		routeSet[i] = h.Address
	}
	d.RouteSet = routeSet
}

func reverseRecordRoutes(in []*sip.RecordRouteHeader) []*sip.RecordRouteHeader {
	out := make([]*sip.RecordRouteHeader, len(in))
	for i, h := range in {
		out[len(in)-1-i] = h
	}
	return out
}
