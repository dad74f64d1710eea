// Package fakes provides narrow test doubles for the dialog
// package's collaborator interfaces (Transport, TimerService,
// Notifier), mirroring the teacher's fakes package but scoped to
// this module's own narrow interfaces rather than raw connections.
package fakes

import (
	"sync"

	"github.com/emiago/sipdialog"
	"github.com/emiago/sipdialog/sip"
)

// Transport is a recording fake for dialog.Transport.
type Transport struct {
	mu sync.Mutex

	LocalAddrs []string // host:port strings treated as local

	ResendCalls []ResendCall
	ResendErr   error // returned by every ResendResponse call when non-nil
}

// ResendCall records a single ResendResponse invocation.
type ResendCall struct {
	Response *sip.Response
	DialogID dialog.DialogID
	Opts     dialog.ResendOptions
}

func (t *Transport) IsLocal(appID string, uri sip.Uri) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	hp := uri.HostPort()
	for _, a := range t.LocalAddrs {
		if a == hp {
			return true
		}
	}
	return false
}

func (t *Transport) ResendResponse(res *sip.Response, dialogID dialog.DialogID, opts dialog.ResendOptions) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ResendCalls = append(t.ResendCalls, ResendCall{Response: res, DialogID: dialogID, Opts: opts})
	return t.ResendErr
}

// Calls returns the number of ResendResponse invocations so far.
func (t *Transport) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.ResendCalls)
}
