package player_test

import (
	"testing"
	"time"

	"github.com/TimothyDexter/FiveM-StanceModifier/player"
)

type completion struct {
	calls   int
	aborted bool
	at      time.Time
}

func (c *completion) done(now time.Time, aborted bool) {
	c.calls++
	c.aborted, c.at = aborted, now
}

func TestSuspensionCompletesOnExpiry(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	var comp completion
	start := h.Clock.Now()
	h.c.Suspend(player.SuspensionCrawl, start, 100*time.Millisecond, comp.done)

	h.step(99 * time.Millisecond)
	if comp.calls != 0 || !h.c.Suspended(player.SuspensionCrawl) {
		t.Fatal("suspension completed before its duration elapsed")
	}
	h.step(time.Millisecond)
	if comp.calls != 1 || comp.aborted || !comp.at.Equal(start.Add(100*time.Millisecond)) {
		t.Fatalf("unexpected completion %+v", comp)
	}
	if h.c.Suspended(player.SuspensionCrawl) {
		t.Fatal("completed suspension still pending")
	}

	h.step(time.Second)
	if comp.calls != 1 {
		t.Fatalf("suspension completed %d times", comp.calls)
	}
}

func TestAbortRunsCompletionOnce(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	var crawl, draw completion
	h.c.Suspend(player.SuspensionCrawl, h.Clock.Now(), 100*time.Millisecond, crawl.done)
	h.c.Suspend(player.SuspensionWeaponDraw, h.Clock.Now(), 100*time.Millisecond, draw.done)

	h.c.Abort(player.SuspensionCrawl, h.Clock.Now())
	h.c.Abort(player.SuspensionDive, h.Clock.Now())
	if crawl.calls != 1 || !crawl.aborted || h.c.Suspended(player.SuspensionCrawl) {
		t.Fatalf("expected the crawl to be aborted, got %+v", crawl)
	}

	h.step(100 * time.Millisecond)
	if crawl.calls != 1 {
		t.Fatalf("aborted suspension completed again, %d calls", crawl.calls)
	}
	if draw.calls != 1 || draw.aborted {
		t.Fatalf("other suspensions should be untouched, got %+v", draw)
	}
}

func TestSuspensionReplacedBySameKind(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	var first, second completion
	h.c.Suspend(player.SuspensionWeaponDraw, h.Clock.Now(), 50*time.Millisecond, first.done)
	h.c.Suspend(player.SuspensionWeaponDraw, h.Clock.Now(), 80*time.Millisecond, second.done)

	h.step(50 * time.Millisecond)
	if first.calls != 0 || second.calls != 0 {
		t.Fatal("replaced suspension should not complete")
	}
	h.step(30 * time.Millisecond)
	if first.calls != 0 || second.calls != 1 {
		t.Fatalf("expected only the replacement to complete, got %d and %d", first.calls, second.calls)
	}
}

func TestSuspensionsCompleteInScheduleOrder(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	var order []player.SuspensionKind
	record := func(kind player.SuspensionKind) func(time.Time, bool) {
		return func(time.Time, bool) { order = append(order, kind) }
	}
	now := h.Clock.Now()
	h.c.Suspend(player.SuspensionCrawl, now, 20*time.Millisecond, record(player.SuspensionCrawl))
	h.c.Suspend(player.SuspensionDive, now, 10*time.Millisecond, record(player.SuspensionDive))

	h.step(time.Second)
	if len(order) != 2 || order[0] != player.SuspensionCrawl || order[1] != player.SuspensionDive {
		t.Fatalf("unexpected completion order %v", order)
	}
}

func TestRecoveryAbortsSuspensions(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	var comp completion
	h.c.Suspend(player.SuspensionWeaponDraw, h.Clock.Now(), time.Hour, comp.done)
	h.c.Suspend(player.SuspensionCrawl, h.Clock.Now(), time.Hour, func(time.Time, bool) {
		panic("completion failed")
	})

	h.c.StorePosture(player.Posture(42))
	res := h.step(frame)
	if res.Outcome != player.TickOutcomeRecovered {
		t.Fatalf("expected recovery, got %s", res.Outcome)
	}
	if comp.calls != 1 || !comp.aborted {
		t.Fatalf("pending suspension should be aborted, got %+v", comp)
	}
	if h.c.Suspended(player.SuspensionWeaponDraw) || h.c.Suspended(player.SuspensionCrawl) {
		t.Fatal("aborted suspensions still pending")
	}
}
