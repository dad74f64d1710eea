package fakes

import (
	"sync"
	"time"

	"github.com/emiago/sipdialog"
)

// scheduledTimer is one pending fake timer.
type scheduledTimer struct {
	dialogID dialog.DialogID
	tag      dialog.TimerKind
	period   time.Duration
	fire     func()
	armed    bool
}

// TimerService is a manually-driven dialog.TimerService: nothing
// fires on a wall clock, tests call FireByTag to step time
// forward deterministically, the way the teacher's siptest recorders
// replace real I/O with an inspectable double.
type TimerService struct {
	mu     sync.Mutex
	nextID uint64
	timers map[uint64]*scheduledTimer
}

// NewTimerService constructs an empty TimerService.
func NewTimerService() *TimerService {
	return &TimerService{timers: make(map[uint64]*scheduledTimer)}
}

func (s *TimerService) StartTimer(dialogID dialog.DialogID, tag dialog.TimerKind, d time.Duration, fire func()) dialog.TimerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.timers[id] = &scheduledTimer{dialogID: dialogID, tag: tag, period: d, fire: fire, armed: true}
	return dialog.NewTimerHandle(id)
}

func (s *TimerService) CancelTimer(h dialog.TimerHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[dialog.TimerHandleID(h)]; ok {
		t.armed = false
	}
}

// FireByTag fires the single armed timer of the given kind for a
// dialog id, returning false if none is armed. Firing an already
// cancelled handle is a silent no-op, mirroring the stale-timer
// tolerance §5 requires of a real TimerService.
func (s *TimerService) FireByTag(dialogID dialog.DialogID, tag dialog.TimerKind) bool {
	s.mu.Lock()
	var target *scheduledTimer
	for _, t := range s.timers {
		if t.dialogID == dialogID && t.tag == tag && t.armed {
			target = t
			break
		}
	}
	s.mu.Unlock()
	if target == nil {
		return false
	}
	s.mu.Lock()
	target.armed = false
	s.mu.Unlock()
	target.fire()
	return true
}

// Period returns the currently armed period for (dialogID, tag), for
// assertions on the retransmission back-off sequence (P7).
func (s *TimerService) Period(dialogID dialog.DialogID, tag dialog.TimerKind) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.timers {
		if t.dialogID == dialogID && t.tag == tag && t.armed {
			return t.period, true
		}
	}
	return 0, false
}
