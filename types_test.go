package dialog

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeReason is P5.
func TestNormalizeReason(t *testing.T) {
	cases := map[int]string{
		486: ReasonBusy,
		487: ReasonCancelled,
		503: ReasonServiceUnavailable,
		603: ReasonDeclined,
		500: strconv.Itoa(500),
	}
	for code, want := range cases {
		assert.Equal(t, want, NormalizeReason(code))
	}
}

func TestStatusEqual(t *testing.T) {
	assert.True(t, St(KindConfirmed).Equal(St(KindConfirmed)))
	assert.False(t, St(KindConfirmed).Equal(St(KindBye)))
	assert.True(t, Stop(ReasonBusy).Equal(Stop(ReasonBusy)))
	assert.False(t, Stop(ReasonBusy).Equal(Stop(ReasonDeclined)))
}
