package player

import (
	"fmt"
	"time"

	"github.com/elliotchance/orderedmap/v2"
)

// SuspensionKind identifies a timed protocol.
type SuspensionKind uint8

const (
	// SuspensionDive holds prone logic and every cancel check while the dive clip plays.
	SuspensionDive SuspensionKind = iota
	// SuspensionExitImmunity keeps the character damage immune while getting up from prone.
	SuspensionExitImmunity
	// SuspensionWeaponDraw pauses prone aiming and movement while a new weapon is drawn.
	SuspensionWeaponDraw
	// SuspensionCrawl keeps a crawl cycle exclusive until its clip has played.
	SuspensionCrawl
)

func (k SuspensionKind) String() string {
	switch k {
	case SuspensionDive:
		return "dive"
	case SuspensionExitImmunity:
		return "exit_immunity"
	case SuspensionWeaponDraw:
		return "weapon_draw"
	case SuspensionCrawl:
		return "crawl"
	}
	return fmt.Sprintf("suspension(%d)", uint8(k))
}

// Suspension is a timed protocol waiting to complete. The controller polls suspensions at the start
// of every tick and completes the ones whose duration elapsed.
type Suspension struct {
	Kind     SuspensionKind
	Start    time.Time
	Duration time.Duration

	// done clears the flag guarding the protocol. aborted is true if the suspension was cut short by
	// the recovery fallback.
	done func(now time.Time, aborted bool)
}

// Expired returns true if the suspension's duration elapsed at now.
func (s *Suspension) Expired(now time.Time) bool {
	return now.Sub(s.Start) >= s.Duration
}

type suspensionQueue struct {
	pending *orderedmap.OrderedMap[SuspensionKind, *Suspension]
}

func newSuspensionQueue() *suspensionQueue {
	return &suspensionQueue{pending: orderedmap.NewOrderedMap[SuspensionKind, *Suspension]()}
}

// Suspend schedules done to run once d has elapsed from now. A pending suspension of the same kind
// is replaced without running its completion; the new one owns the same flag.
func (c *Controller) Suspend(kind SuspensionKind, now time.Time, d time.Duration, done func(now time.Time, aborted bool)) {
	c.suspensions.pending.Delete(kind)
	c.suspensions.pending.Set(kind, &Suspension{Kind: kind, Start: now, Duration: d, done: done})
	c.Dbg.Notify(DebugModeSuspensions, true, "suspend %s for %v", kind, d)
}

// Suspended returns true if a suspension of the kind is pending.
func (c *Controller) Suspended(kind SuspensionKind) bool {
	_, ok := c.suspensions.pending.Get(kind)
	return ok
}

// Abort cuts a pending suspension of the kind short, running its completion with aborted set. It
// does nothing if no such suspension is pending.
func (c *Controller) Abort(kind SuspensionKind, now time.Time) {
	s, ok := c.suspensions.pending.Get(kind)
	if !ok {
		return
	}
	c.suspensions.pending.Delete(kind)
	c.Dbg.Notify(DebugModeSuspensions, true, "abort %s", kind)
	if s.done != nil {
		c.safely("abort "+kind.String(), func() { s.done(now, true) })
	}
}

// pollSuspensions completes every suspension that expired at now, in the order they were scheduled.
// A suspension is removed from the queue before its completion runs, so a completion that fails
// never runs twice.
func (c *Controller) pollSuspensions(now time.Time) {
	var expired []*Suspension
	for el := c.suspensions.pending.Front(); el != nil; el = el.Next() {
		if el.Value.Expired(now) {
			expired = append(expired, el.Value)
		}
	}
	for _, s := range expired {
		c.suspensions.pending.Delete(s.Kind)
		c.Dbg.Notify(DebugModeSuspensions, true, "complete %s after %v", s.Kind, now.Sub(s.Start))
		if s.done != nil {
			s.done(now, false)
		}
	}
}

// abortSuspensions runs the completion of every pending suspension with aborted set, clearing all
// guarding flags. Completions that panic are logged and skipped.
func (c *Controller) abortSuspensions(now time.Time) {
	for _, kind := range c.suspensions.pending.Keys() {
		s, _ := c.suspensions.pending.Get(kind)
		c.suspensions.pending.Delete(kind)
		c.Dbg.Notify(DebugModeSuspensions, true, "abort %s", kind)
		if s.done != nil {
			c.safely("abort "+kind.String(), func() { s.done(now, true) })
		}
	}
}
