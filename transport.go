package dialog

import "github.com/emiago/sipdialog/sip"

// ResendOptions carries the destination details a retransmission is
// sent to; kept separate from sip.Response so the transport
// collaborator does not need to re-derive them from the message.
type ResendOptions struct {
	Destination string
}

// Transport is the narrow collaborator interface §6 defines towards
// the transport layer: a predicate used by route update, and a resend
// primitive used by retransmission. Socket handling, listeners, and
// wire framing live entirely outside this module.
type Transport interface {
	// IsLocal reports whether uri is one of this application's own
	// listening addresses, for the purposes of §4.3's Record-Route
	// head-stripping.
	IsLocal(appID string, uri sip.Uri) bool
	// ResendResponse retransmits a previously sent final response for
	// the retransmission timer (§4.6). A non-nil error is treated as
	// the "transport send failure" of §7 and forces {stop,
	// ack_timeout}.
	ResendResponse(res *sip.Response, dialogID DialogID, opts ResendOptions) error
}
