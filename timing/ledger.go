package timing

import (
	"fmt"
	"math"
	"time"

	"github.com/elliotchance/orderedmap/v2"
)

// Action identifies a gated input gesture tracked by a Ledger.
type Action uint8

const (
	// ActionStance is the press of the stance control.
	ActionStance Action = iota
	// ActionFlip is the press of the control that flips the prone orientation.
	ActionFlip
	// ActionCrawl is the press of the forward or backward movement controls while prone.
	ActionCrawl
	// ActionTurn is the press of the left or right movement controls while prone.
	ActionTurn
)

func (a Action) String() string {
	switch a {
	case ActionStance:
		return "stance"
	case ActionFlip:
		return "flip"
	case ActionCrawl:
		return "crawl"
	case ActionTurn:
		return "turn"
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// Phase is the edge of a control that is being debounced.
type Phase uint8

const (
	// PhaseJustPressed is the first frame a control is down.
	PhaseJustPressed Phase = iota
	// PhaseHeld is any later frame the control is still down.
	PhaseHeld
)

// Never is the elapsed time reported for actions that were never recorded.
const Never = time.Duration(math.MaxInt64)

// Entry is the ledger state kept for a single action.
type Entry struct {
	// Last is the time the action was last recorded.
	Last time.Time
	// Interval is the current repeat interval held input must wait before it is accepted again.
	Interval time.Duration
}

// Ledger tracks the last accepted timestamp and repeat interval of every gated action. Entries are
// created lazily on the first edge of an action and are overwritten afterwards; they are never removed.
// A Ledger is not safe for concurrent use.
type Ledger struct {
	entries *orderedmap.OrderedMap[Action, *Entry]
}

// NewLedger returns an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: orderedmap.NewOrderedMap[Action, *Entry]()}
}

func (l *Ledger) entry(a Action) *Entry {
	if e, ok := l.entries.Get(a); ok {
		return e
	}
	e := &Entry{}
	l.entries.Set(a, e)
	return e
}

// Record stores now as the last time the action happened.
func (l *Ledger) Record(a Action, now time.Time) {
	l.entry(a).Last = now
}

// Recorded returns true if the action was recorded at least once.
func (l *Ledger) Recorded(a Action) bool {
	e, ok := l.entries.Get(a)
	return ok && !e.Last.IsZero()
}

// Elapsed returns the time passed since the action was last recorded. Actions that were never
// recorded report Never.
func (l *Ledger) Elapsed(a Action, now time.Time) time.Duration {
	if !l.Recorded(a) {
		return Never
	}
	e, _ := l.entries.Get(a)
	return now.Sub(e.Last)
}

// SetRepeatInterval sets the current repeat interval of the action.
func (l *Ledger) SetRepeatInterval(a Action, d time.Duration) {
	l.entry(a).Interval = d
}

// RepeatInterval returns the current repeat interval of the action.
func (l *Ledger) RepeatInterval(a Action) time.Duration {
	if e, ok := l.entries.Get(a); ok {
		return e.Interval
	}
	return 0
}

// Press records a fresh press of the action and widens its repeat interval, so that held input
// waits for the initial delay before it starts repeating.
func (l *Ledger) Press(a Action, now time.Time, wide time.Duration) {
	e := l.entry(a)
	e.Last = now
	e.Interval = wide
}

// Repeat returns true if held input for the action is accepted at now. An accepted repeat is
// recorded and narrows the repeat interval for the following repeats.
func (l *Ledger) Repeat(a Action, now time.Time, narrow time.Duration) bool {
	if l.Elapsed(a, now) < l.RepeatInterval(a) {
		return false
	}
	e := l.entry(a)
	e.Last = now
	e.Interval = narrow
	return true
}

// Debounce applies Press or Repeat depending on the phase passed and returns true if the edge
// should be acted upon. A just-pressed edge is always accepted.
func (l *Ledger) Debounce(a Action, phase Phase, now time.Time, wide, narrow time.Duration) bool {
	if phase == PhaseJustPressed {
		l.Press(a, now, wide)
		return true
	}
	return l.Repeat(a, now, narrow)
}

// Len returns the number of actions tracked by the ledger.
func (l *Ledger) Len() int {
	return l.entries.Len()
}

// Snapshot returns the ledger state as an ordered map of action name to entry, in the order the
// actions were first seen. It is intended for debug output.
func (l *Ledger) Snapshot() *orderedmap.OrderedMap[string, any] {
	data := orderedmap.NewOrderedMap[string, any]()
	for el := l.entries.Front(); el != nil; el = el.Next() {
		data.Set(el.Key.String(), fmt.Sprintf("%dms@%s", el.Value.Interval.Milliseconds(), el.Value.Last.Format("15:04:05.000")))
	}
	return data
}
