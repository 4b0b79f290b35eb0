package player_test

import (
	"errors"
	"testing"
	"time"

	"github.com/TimothyDexter/FiveM-StanceModifier/game"
	"github.com/TimothyDexter/FiveM-StanceModifier/player"
	"github.com/TimothyDexter/FiveM-StanceModifier/player/component"
	"github.com/TimothyDexter/FiveM-StanceModifier/player/playertest"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

const (
	frame = 10 * time.Millisecond
	gap   = 50 * time.Millisecond
)

type recorder struct {
	changes [][2]player.Posture
}

func (r *recorder) HandlePostureChange(from, to player.Posture) {
	r.changes = append(r.changes, [2]player.Posture{from, to})
}

func (r *recorder) visited(p player.Posture) bool {
	for _, ch := range r.changes {
		if ch[1] == p {
			return true
		}
	}
	return false
}

type harness struct {
	*playertest.Rig
	c    *player.Controller
	rec  *recorder
	hook *test.Hook
}

func newHarness(t *testing.T, opts player.Opts) *harness {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	r := playertest.NewRig()
	c := player.New(log, opts, r.Providers())
	component.Register(c)
	rec := &recorder{}
	c.Handle(rec)
	return &harness{Rig: r, c: c, rec: rec, hook: hook}
}

// tap taps the stance control and leaves a short gap before the next input.
func (h *harness) tap() player.TickResult {
	res := h.Tap(h.c, gap)
	h.Clock.Advance(gap)
	return res
}

func (h *harness) step(d time.Duration) player.TickResult {
	return h.Step(h.c, d)
}

func (h *harness) expect(t *testing.T, want player.Posture) {
	t.Helper()
	if got := h.c.Posture(); got != want {
		t.Fatalf("expected posture %s, got %s", want, got)
	}
}

func TestTapCycle(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	h.expect(t, player.PostureIdle)

	want := []player.Posture{
		player.PostureStealth, player.PostureCrouch, player.PostureProne, player.PostureIdle,
		player.PostureStealth, player.PostureCrouch, player.PostureProne, player.PostureIdle,
	}
	for i, p := range want {
		res := h.tap()
		if res.Outcome != player.TickOutcomeNormal {
			t.Fatalf("tap %d: unexpected outcome %s (%v)", i, res.Outcome, res.Err)
		}
		if !res.Changed() {
			t.Fatalf("tap %d: posture did not change", i)
		}
		h.expect(t, p)
	}
	if len(h.rec.changes) != len(want) {
		t.Fatalf("expected %d posture changes, got %d: %v", len(want), len(h.rec.changes), h.rec.changes)
	}
	history := h.c.History()
	if len(history) != len(want) {
		t.Fatalf("expected %d transitions in history, got %d", len(want), len(history))
	}
	if last := history[len(history)-1]; last.From != player.PostureProne || last.To != player.PostureIdle || !last.At.Equal(h.Clock.Now().Add(-gap)) {
		t.Fatalf("unexpected last transition %s", last)
	}
}

func TestHoldJumpsToProne(t *testing.T) {
	for _, start := range []player.Posture{player.PostureIdle, player.PostureStealth, player.PostureCrouch} {
		t.Run(start.String(), func(t *testing.T) {
			h := newHarness(t, player.DefaultOpts())
			for h.c.Posture() != start {
				h.tap()
			}
			before := len(h.rec.changes)

			h.Hold(h.c, game.HoldThreshold-frame, frame)
			h.expect(t, start)
			h.step(frame)
			h.expect(t, player.PostureProne)

			changes := h.rec.changes[before:]
			if len(changes) != 1 || changes[0] != [2]player.Posture{start, player.PostureProne} {
				t.Fatalf("hold should jump straight to prone, got %v", changes)
			}
			if len(h.Pose.Overrides) != 0 {
				t.Fatalf("crouch overrides should be reset on prone entry, got %v", h.Pose.Overrides)
			}

			h.step(200 * time.Millisecond)
			h.Input.Release(player.ControlStance)
			h.step(frame)
			h.expect(t, player.PostureProne)
		})
	}
}

func TestHoldInProneDoesNothing(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	for h.c.Posture() != player.PostureProne {
		h.tap()
	}
	h.Hold(h.c, time.Second, frame)
	h.Input.Release(player.ControlStance)
	h.step(frame)
	h.expect(t, player.PostureProne)
}

func TestProneBlockedNeverReachesProne(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	h.c.SetBlocking(false, true)

	h.tap()
	h.expect(t, player.PostureStealth)
	h.tap()
	h.expect(t, player.PostureCrouch)
	h.tap()
	h.expect(t, player.PostureIdle)

	// A hold is never consumed while prone is blocked, so its release taps instead.
	h.Hold(h.c, time.Second, frame)
	h.expect(t, player.PostureIdle)
	h.Input.Release(player.ControlStance)
	h.step(frame)
	h.expect(t, player.PostureStealth)

	for i := 0; i < 10; i++ {
		h.tap()
	}
	if h.rec.visited(player.PostureProne) {
		t.Fatalf("prone reached while blocked: %v", h.rec.changes)
	}
}

func TestCrouchBlockedResolvesToIdle(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	h.c.SetBlocking(true, false)

	h.tap()
	h.expect(t, player.PostureStealth)
	h.tap()
	h.expect(t, player.PostureIdle)

	if crouch, prone := h.c.Blocking(); !crouch || prone {
		t.Fatalf("unexpected blocking state crouch=%v prone=%v", crouch, prone)
	}
}

func TestCrouchBlockedMidCrouchReturnsToIdle(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	h.tap()
	h.tap()
	h.expect(t, player.PostureCrouch)

	h.c.SetBlocking(true, false)
	h.step(frame)
	h.expect(t, player.PostureIdle)
	if len(h.Pose.Overrides) != 0 {
		t.Fatalf("crouch overrides should be reset, got %v", h.Pose.Overrides)
	}
}

func TestReleaseNoiseIsIgnored(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())

	h.Tap(h.c, game.ReleaseNoiseWindow)
	h.expect(t, player.PostureIdle)

	h.Clock.Advance(gap)
	h.Tap(h.c, game.ReleaseNoiseWindow+time.Millisecond)
	h.expect(t, player.PostureStealth)
}

func TestForcedCancel(t *testing.T) {
	tests := map[string]func(r *playertest.Rig){
		"restrained":       func(r *playertest.Rig) { r.Restraints.Restrained = true },
		"scenario":         func(r *playertest.Rig) { r.Restraints.Scenario = true },
		"cancel control":   func(r *playertest.Rig) { r.Input.Press(player.ControlCancel) },
		"vehicle":          func(r *playertest.Rig) { r.Env.InVehicle = true },
		"entering vehicle": func(r *playertest.Rig) { r.Env.EnteringVehicle = true },
		"water":            func(r *playertest.Rig) { r.Env.InWater = true },
		"swimming":         func(r *playertest.Rig) { r.Env.Swimming = true },
		"underwater":       func(r *playertest.Rig) { r.Env.Underwater = true },
		"restraint animation": func(r *playertest.Rig) {
			r.Pose.Playing[player.AnimationRef{Set: "mp_arresting", Clip: "idle"}] = true
		},
	}
	for name, apply := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, player.DefaultOpts())
			h.tap()
			h.tap()
			h.expect(t, player.PostureCrouch)

			apply(h.Rig)
			// Input is not read while an override is present.
			h.Input.Press(player.ControlStance)
			res := h.step(frame)
			if res.Outcome != player.TickOutcomeForcedCancel {
				t.Fatalf("expected forced cancel, got %s", res.Outcome)
			}
			h.expect(t, player.PostureIdle)
			if len(h.Pose.Overrides) != 0 {
				t.Fatalf("crouch overrides should be reset, got %v", h.Pose.Overrides)
			}
		})
	}
}

func TestForcedCancelIgnoresStealth(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	h.tap()
	h.expect(t, player.PostureStealth)

	h.Env.InWater = true
	res := h.tap()
	if res.Outcome != player.TickOutcomeForcedCancel {
		t.Fatalf("expected forced cancel, got %s", res.Outcome)
	}
	h.expect(t, player.PostureStealth)
}

func TestCrouchContinuousChecks(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	h.tap()
	h.tap()
	h.expect(t, player.PostureCrouch)

	h.Camera.Mode = player.ViewModeFirstPerson
	disabled := h.Camera.FirstPersonDisabled
	h.step(frame)
	if h.Camera.Mode != player.ViewModeThirdPersonNear {
		t.Fatalf("first person camera should be forced out, got %v", h.Camera.Mode)
	}
	if h.Camera.FirstPersonDisabled != disabled+1 {
		t.Fatal("first person should be disabled every crouch tick")
	}
	if h.Input.Disabled[player.ControlStance] == 0 {
		t.Fatal("native stance control should be disabled while crouched")
	}
	if h.Pose.Overrides[player.LocomotionMovement] != game.ClipsetCrouchMovement ||
		h.Pose.Overrides[player.LocomotionStrafe] != game.ClipsetCrouchStrafe {
		t.Fatalf("crouch clipsets should be applied, got %v", h.Pose.Overrides)
	}

	h.Env.StealthGait = true
	h.step(frame)
	h.expect(t, player.PostureStealth)
	if len(h.Pose.Overrides) != 0 {
		t.Fatalf("crouch overrides should be reset, got %v", h.Pose.Overrides)
	}
}

func TestCrouchFallReturnsToIdle(t *testing.T) {
	for name, apply := range map[string]func(e *playertest.Environment){
		"fall":         func(e *playertest.Environment) { e.Falling = true },
		"close combat": func(e *playertest.Environment) { e.CloseCombat = true },
	} {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, player.DefaultOpts())
			h.tap()
			h.tap()
			tasks := h.Pose.ClearedTasks

			apply(h.Env)
			h.step(frame)
			h.expect(t, player.PostureIdle)
			if h.Pose.ClearedTasks == tasks {
				t.Fatal("tasks should be cleared when crouch is cut short")
			}
		})
	}
}

func TestProneBlockedMidProne(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	for h.c.Posture() != player.PostureProne {
		h.tap()
	}
	h.c.SetBlocking(false, true)
	for i := 0; i < 20; i++ {
		h.step(frame)
	}
	h.expect(t, player.PostureProne)

	opts := player.DefaultOpts()
	opts.EvictBlockedProne = true
	h = newHarness(t, opts)
	for h.c.Posture() != player.PostureProne {
		h.tap()
	}
	h.c.SetBlocking(false, true)
	h.step(frame)
	h.expect(t, player.PostureIdle)
	if !h.Pose.Immune {
		t.Fatal("evicting prone should run the exit protocol")
	}
}

func TestExitImmunity(t *testing.T) {
	tapIn := func(h *harness) {
		for h.c.Posture() != player.PostureProne {
			h.tap()
		}
	}
	holdIn := func(h *harness) {
		h.Hold(h.c, time.Second, frame)
		h.Input.Release(player.ControlStance)
		h.step(frame)
		h.Clock.Advance(gap)
	}
	tapOut := func(h *harness) { h.Tap(h.c, gap) }
	cancelOut := func(h *harness) {
		h.Restraints.Restrained = true
		h.step(frame)
	}

	tests := map[string]struct{ enter, exit func(h *harness) }{
		"tap":                   {enter: tapIn, exit: tapOut},
		"hold then tap":         {enter: holdIn, exit: tapOut},
		"forced cancel":         {enter: tapIn, exit: cancelOut},
		"hold then forced exit": {enter: holdIn, exit: cancelOut},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, player.DefaultOpts())
			tt.enter(h)
			h.expect(t, player.PostureProne)
			tt.exit(h)
			h.expect(t, player.PostureIdle)

			if !h.Pose.Immune || !h.Pose.ImmuneSince.Equal(h.Clock.Now()) {
				t.Fatal("exiting prone should grant damage immunity")
			}
			if len(h.Pose.Falls) == 0 || h.Pose.Falls[len(h.Pose.Falls)-1] != game.ExitFallDuration {
				t.Fatalf("exiting prone should force a short fall, got %v", h.Pose.Falls)
			}
			h.step(game.ExitImmunityDuration - time.Millisecond)
			if !h.Pose.Immune {
				t.Fatal("immunity revoked too early")
			}
			h.step(time.Millisecond)
			if h.Pose.Immune {
				t.Fatal("immunity should be revoked after the immunity window")
			}
		})
	}
}

func TestIdleClearsLingeringAnimations(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	dive := player.AnimationRef{Set: game.AnimSetJump, Clip: game.AnimDive}
	crawl := player.AnimationRef{Set: game.AnimSetCrawl, Clip: game.AnimOnBackBwd}
	h.Pose.Playing[dive] = true
	h.Pose.Playing[crawl] = true

	h.step(frame)
	if h.Pose.Playing[dive] || h.Pose.Playing[crawl] {
		t.Fatalf("idle should clear dive and crawl clips, still playing %v", h.Pose.Playing)
	}
}

func TestPoseErrorsAreLogged(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	h.Pose.Err = errors.New("executor unavailable")

	h.tap()
	res := h.tap()
	if res.Outcome != player.TickOutcomeNormal || res.Err != nil {
		t.Fatalf("pose errors should not fail the tick, got %s (%v)", res.Outcome, res.Err)
	}
	h.expect(t, player.PostureCrouch)

	var warned bool
	for _, entry := range h.hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warned = true
		}
	}
	if !warned {
		t.Fatal("expected a warning for the failed pose call")
	}
}

func TestRecoverInvalidPosture(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	h.c.StorePosture(player.Posture(9))

	res := h.step(frame)
	if res.Outcome != player.TickOutcomeRecovered {
		t.Fatalf("expected recovery, got %s", res.Outcome)
	}
	if !errors.Is(res.Err, player.ErrInvalidPosture) {
		t.Fatalf("expected an invalid posture error, got %v", res.Err)
	}
	h.expect(t, player.PostureIdle)
	if h.hook.LastEntry() == nil || h.hook.LastEntry().Level != logrus.ErrorLevel {
		t.Fatal("recovery should be logged as an error")
	}

	res = h.tap()
	if res.Outcome != player.TickOutcomeNormal {
		t.Fatalf("controller should run normally after recovery, got %s", res.Outcome)
	}
	h.expect(t, player.PostureStealth)
}

func TestRecoverCollaboratorPanic(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())
	for h.c.Posture() != player.PostureProne {
		h.tap()
	}

	h.Env.Panic = "vehicle query failed"
	res := h.step(frame)
	if res.Outcome != player.TickOutcomeRecovered || res.Err == nil {
		t.Fatalf("expected recovery from the panic, got %s (%v)", res.Outcome, res.Err)
	}
	h.expect(t, player.PostureIdle)
	if !h.Pose.Immune {
		t.Fatal("recovering from prone should run the exit protocol")
	}

	h.Env.Panic = nil
	h.step(game.ExitImmunityDuration)
	if h.Pose.Immune {
		t.Fatal("immunity should be revoked after recovering from prone")
	}
}

func TestMissingProneComponent(t *testing.T) {
	r := playertest.NewRig()
	c := player.New(nil, player.DefaultOpts(), r.Providers())
	r.Hold(c, time.Second, frame)

	if c.Posture() != player.PostureIdle {
		t.Fatalf("expected idle without a prone component, got %s", c.Posture())
	}
}

func TestEndToEndScenario(t *testing.T) {
	h := newHarness(t, player.DefaultOpts())

	h.tap()
	h.expect(t, player.PostureStealth)
	h.tap()
	h.expect(t, player.PostureCrouch)

	// Held for less than the hold threshold, so the release taps.
	h.Hold(h.c, 150*time.Millisecond, frame)
	h.expect(t, player.PostureCrouch)
	h.Input.Release(player.ControlStance)
	h.step(frame)
	h.expect(t, player.PostureProne)

	h.Clock.Advance(gap)
	h.c.SetBlocking(false, true)
	h.step(frame)
	h.expect(t, player.PostureProne)

	h.tap()
	h.expect(t, player.PostureIdle)

	h.tap()
	h.tap()
	h.tap()
	h.expect(t, player.PostureIdle)
	if n := len(h.rec.changes); h.rec.changes[n-1] != [2]player.Posture{player.PostureCrouch, player.PostureIdle} {
		t.Fatalf("blocked prone should resolve to idle, got %v", h.rec.changes)
	}
}

func TestNewRequiresProviders(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for missing providers")
		}
	}()
	player.New(nil, player.DefaultOpts(), player.Providers{})
}
