package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallStoreHeadFastPath(t *testing.T) {
	d1 := &Dialog{ID: "d1", Status: St(KindInit)}
	call := NewCall("call1")
	call.Store(d1)
	require.Len(t, call.Dialogs, 1)

	d1.Status = St(KindConfirmed)
	call.Store(d1)
	assert.Equal(t, HibernateDialogConfirmed, call.Hibernate)
	require.Len(t, call.Dialogs, 1)

	d1.Status = Stop(ReasonTimeout)
	call.Store(d1)
	assert.Equal(t, HibernateDialogStop, call.Hibernate)
	assert.Empty(t, call.Dialogs)
}

func TestCallStoreByKeyNotHead(t *testing.T) {
	d1 := &Dialog{ID: "d1", Status: St(KindInit)}
	d2 := &Dialog{ID: "d2", Status: St(KindInit)}
	call := NewCall("call1")
	call.Store(d1)
	call.Store(d2)
	require.Len(t, call.Dialogs, 2)

	d2.Status = Stop(ReasonBusy)
	call.Store(d2)
	require.Len(t, call.Dialogs, 1)
	assert.Equal(t, DialogID("d1"), call.Dialogs[0].ID)
}

// TestUniqueness is P1: at most one entry per DialogId.
func TestUniqueness(t *testing.T) {
	call := NewCall("call1")
	d := &Dialog{ID: "d1", Status: St(KindInit)}
	call.Store(d)
	call.Store(d)
	call.Store(d)
	assert.Len(t, call.Dialogs, 1)
}

func TestFindNotFound(t *testing.T) {
	call := NewCall("call1")
	_, ok := call.Find("missing")
	assert.False(t, ok)
}
