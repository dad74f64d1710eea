package dialog

import "errors"

var (
	// ErrMissingDialogHeaders is returned when a response lacks the
	// Call-ID/From/To headers a DialogId is derived from.
	ErrMissingDialogHeaders = errors.New("dialog: response missing Call-ID/From/To")
	// ErrMissingDialogTag is returned when the response's From or To
	// header has no tag parameter yet (not dialog-establishing).
	ErrMissingDialogTag = errors.New("dialog: response missing From/To tag")
	// ErrDialogNotFound names the case of no dialog matching a
	// requested id. Call.Find reports that case with ok=false and does
	// not return this error.
	ErrDialogNotFound = errors.New("dialog: not found")
	// ErrSubscriptionNotFound names the case of no subscription
	// matching an event id. FindSub reports that case with ok=false and
	// does not return this error.
	ErrSubscriptionNotFound = errors.New("dialog: subscription not found")
	// ErrDialogTerminated names an operation on a dialog already in
	// {stop,_} (§3 invariant 3). No function in this package returns
	// it; StatusUpdate does not check for a terminal dialog.
	ErrDialogTerminated = errors.New("dialog: already terminated")
	// ErrInvalidCSeq is returned by ValidateRemoteCSeq for an
	// out-of-order in-dialog request.
	ErrInvalidCSeq = errors.New("dialog: invalid CSeq for in-dialog request")
	// ErrNoOfferAnswer names the case of no complete offer/answer pair
	// being pending. The session updater returns no error; in that case
	// it leaves the dialog unchanged.
	ErrNoOfferAnswer = errors.New("dialog: no pending offer/answer")
)
