package dialog

import (
	"github.com/emiago/sipdialog/sip"
	"github.com/google/uuid"
)

// idSeparator mirrors the teacher's TxSeperator convention for
// joining the components of an opaque identifier.
const idSeparator = "__"

// DialogID is the opaque, deterministic identifier of §3 invariant 1:
// a pure function of role + the establishing response's Call-ID and
// tags. Re-deriving it from the same response and role always yields
// the same value.
type DialogID string

// MakeDialogID derives the DialogID from the establishing response,
// swapping which tag is "local" vs "remote" by role per §4.1: UAC
// reads its own tag from From, UAS from To.
func MakeDialogID(role Role, resp *sip.Response) (DialogID, error) {
	if resp == nil || resp.From == nil || resp.To == nil || resp.CallID == "" {
		return "", ErrMissingDialogHeaders
	}
	fromTag := resp.From.Tag()
	toTag := resp.To.Tag()
	if fromTag == "" || toTag == "" {
		return "", ErrMissingDialogTag
	}

	callID := string(resp.CallID)
	if role == RoleUAC {
		return DialogID(callID + idSeparator + fromTag + idSeparator + toTag), nil
	}
	return DialogID(callID + idSeparator + toTag + idSeparator + fromTag), nil
}

// NewTag mints a fresh From/To-tag, mirroring the teacher's
// dialog_ua.go use of uuid.NewRandom() to generate a UAS's To-tag
// before the establishing response is sent. Tag generation precedes
// dialog creation (the establishing response must already carry one
// by the time Create/MakeDialogID run), so this lives here as the
// helper whatever constructs that response reaches for.
func NewTag() string {
	return uuid.NewString()
}
