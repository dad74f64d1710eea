package dialog

import (
	"testing"
	"time"

	"github.com/emiago/sipdialog/fakes"
	"github.com/emiago/sipdialog/siptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDialog(t *testing.T, role Role) (*Dialog, *Call) {
	t.Helper()
	from := siptest.Uri("alice", "alice.com")
	to := siptest.Uri("bob", "bob.com")
	req := siptest.NewInvite(from, to, "tagA", 1)
	resp := siptest.NewFinalResponse(req, 200, "tagB", siptest.Uri("bob", "192.0.2.1"), nil)

	d, err := Create(role, req, resp, "app1")
	require.NoError(t, err)

	call := NewCall(d.CallID)
	call.Store(d)
	return d, call
}

// TestHappyUACFlow is scenario 1: init -> accepted_uac -> confirmed,
// with dialog_update(start) first and early/answered latched.
func TestHappyUACFlow(t *testing.T) {
	d, call := newTestDialog(t, RoleUAC)
	cfg := NewConfig(WithT1(500 * time.Millisecond))
	timers := fakes.NewTimerService()
	notifier := &fakes.Notifier{}
	transport := &fakes.Transport{}

	StatusUpdate(d, call, St(KindAcceptedUAC), cfg, timers, notifier, transport, "app1")
	require.False(t, d.Early)
	require.False(t, d.Answered.IsZero())

	StatusUpdate(d, call, St(KindConfirmed), cfg, timers, notifier, transport, "app1")
	require.Nil(t, d.InviteReq)
	require.Nil(t, d.InviteResp)

	kinds := notifier.DialogKinds()
	require.Len(t, kinds, 3)
	assert.Equal(t, DialogEventStart, kinds[0])
	assert.Equal(t, DialogEventStatus, kinds[1])
	assert.Equal(t, DialogEventStatus, kinds[2])
}

// TestRetransmissionDoubling is scenario 2: 10 successful resends
// produce arm periods 500,1000,2000,4000,4000,... then a failing
// 11th resend stops the dialog with ack_timeout.
func TestRetransmissionDoubling(t *testing.T) {
	d, call := newTestDialog(t, RoleUAS)
	cfg := NewConfig(WithT1(500*time.Millisecond), WithT2(4*time.Second))
	timers := fakes.NewTimerService()
	notifier := &fakes.Notifier{}
	transport := &fakes.Transport{}

	StatusUpdate(d, call, St(KindAcceptedUAS), cfg, timers, notifier, transport, "app1")

	period, ok := timers.Period(d.ID, TimerRetrans)
	require.True(t, ok)
	assert.Equal(t, 500*time.Millisecond, period)

	expected := []time.Duration{
		1000 * time.Millisecond, 2000 * time.Millisecond, 4000 * time.Millisecond,
		4000 * time.Millisecond, 4000 * time.Millisecond, 4000 * time.Millisecond,
		4000 * time.Millisecond, 4000 * time.Millisecond, 4000 * time.Millisecond,
		4000 * time.Millisecond,
	}
	for i, want := range expected {
		fired := timers.FireByTag(d.ID, TimerRetrans)
		require.True(t, fired, "firing %d", i)
		got, ok := timers.Period(d.ID, TimerRetrans)
		require.True(t, ok)
		assert.Equal(t, want, got, "arm period after firing %d", i)
	}

	transport.ResendErr = assert.AnError
	fired := timers.FireByTag(d.ID, TimerRetrans)
	require.True(t, fired)

	assert.True(t, d.Status.IsStop())
	assert.Equal(t, ReasonACKTimeout, d.Status.Reason)
	_, found := call.Find(d.ID)
	assert.False(t, found)
}

// TestTimeoutInAcceptedUAC is scenario 3.
func TestTimeoutInAcceptedUAC(t *testing.T) {
	d, call := newTestDialog(t, RoleUAC)
	cfg := NewConfig()
	timers := fakes.NewTimerService()
	notifier := &fakes.Notifier{}
	transport := &fakes.Transport{}

	StatusUpdate(d, call, St(KindAcceptedUAC), cfg, timers, notifier, transport, "app1")
	fired := timers.FireByTag(d.ID, TimerTimeout)
	require.True(t, fired)

	assert.True(t, d.Status.IsStop())
	assert.Equal(t, ReasonACKTimeout, d.Status.Reason)
	assert.Equal(t, HibernateDialogStop, call.Hibernate)
	_, found := call.Find(d.ID)
	assert.False(t, found)
}

// TestTargetUpdateSentinel is scenario 4.
func TestTargetUpdateSentinel(t *testing.T) {
	from := siptest.Uri("alice", "alice.com")
	to := siptest.Uri("bob", "bob.com")
	req := siptest.NewInvite(from, to, "tagA", 1)
	firstContact := siptest.Uri("bob", "192.0.2.1")
	resp := siptest.NewProvisionalResponse(req, 180, "tagB", firstContact)

	d, err := Create(RoleUAC, req, resp, "app1")
	require.NoError(t, err)
	assert.True(t, d.RemoteTarget.IsInvalid())

	call := NewCall(d.CallID)
	call.Store(d)
	cfg := NewConfig()
	timers := fakes.NewTimerService()
	notifier := &fakes.Notifier{}
	transport := &fakes.Transport{}

	StatusUpdate(d, call, St(KindProceedingUAC), cfg, timers, notifier, transport, "app1")
	assert.Equal(t, firstContact, d.RemoteTarget)
	assert.Empty(t, dialogEventKindsOf(notifier, DialogEventTargetUpdate))

	secondContact := siptest.Uri("bob", "192.0.2.2")
	d.InviteResp = siptest.NewFinalResponse(req, 200, "tagB", secondContact, nil)
	StatusUpdate(d, call, St(KindAcceptedUAC), cfg, timers, notifier, transport, "app1")
	assert.Equal(t, secondContact, d.RemoteTarget)
	assert.NotEmpty(t, dialogEventKindsOf(notifier, DialogEventTargetUpdate))
}

func dialogEventKindsOf(n *fakes.Notifier, want DialogEventKind) []DialogEvent {
	var out []DialogEvent
	for _, e := range n.DialogEvents {
		if e.Kind == want {
			out = append(out, e)
		}
	}
	return out
}
