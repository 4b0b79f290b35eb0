package component

import (
	"time"

	"github.com/TimothyDexter/FiveM-StanceModifier/game"
	"github.com/TimothyDexter/FiveM-StanceModifier/player"
	"github.com/TimothyDexter/FiveM-StanceModifier/timing"
	"github.com/TimothyDexter/FiveM-StanceModifier/utils"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/zeebo/xxh3"
)

// ProneComponent runs the prone sub-controller of a player.Controller. Every flag it holds is set by
// one of its protocols and cleared only by the suspension that protocol scheduled.
type ProneComponent struct {
	c *player.Controller

	orientation, prevOrientation player.Orientation
	// weapon is the fingerprint of the weapon equipped when it was last observed.
	weapon uint64

	diving, crawling, aiming, drawing bool
}

// NewProneComponent returns a new prone component for the controller.
func NewProneComponent(c *player.Controller) *ProneComponent {
	return &ProneComponent{c: c}
}

// Orientation returns the side the character is lying on.
func (pc *ProneComponent) Orientation() player.Orientation {
	return pc.orientation
}

// Diving returns true while the dive into prone is playing.
func (pc *ProneComponent) Diving() bool {
	return pc.diving
}

// Crawling returns true while a crawl cycle is playing.
func (pc *ProneComponent) Crawling() bool {
	return pc.crawling
}

// Aiming returns true while the weapon is raised.
func (pc *ProneComponent) Aiming() bool {
	return pc.aiming
}

// Drawing returns true while a newly equipped weapon is being drawn.
func (pc *ProneComponent) Drawing() bool {
	return pc.drawing
}

// Enter runs the prone entry protocol. A character that is running or sprinting dives first, which
// holds every other prone check until the dive clip has played.
func (pc *ProneComponent) Enter(now time.Time) {
	env, pose := pc.c.Environment(), pc.c.Pose()

	pc.aiming = false
	pc.orientation, pc.prevOrientation = player.OrientationOnFront, player.OrientationOnFront
	pc.weapon = weaponFingerprint(env.CurrentWeapon())

	if !env.IsRunning() && !env.IsSprinting() {
		pc.settle()
		return
	}

	pose.ClearTasks()
	pc.diving = true
	pc.c.PoseErr("play dive", pose.PlayAnimation(player.Animation{
		AnimationRef: player.AnimationRef{Set: game.AnimSetJump, Clip: game.AnimDive},
		BlendIn:      game.AnimBlendIn,
		BlendOut:     game.AnimBlendOut,
		Duration:     player.PlayUntilCleared,
		Flags:        player.AnimationFlagRagdollOnCollision,
	}))
	pc.c.Dbg.Notify(player.DebugModeProne, true, "dive started")
	pc.c.Suspend(player.SuspensionDive, now, pc.c.Opts().DiveDuration, func(_ time.Time, aborted bool) {
		pc.diving = false
		if !aborted {
			pc.settle()
		}
	})
}

// settle finishes the entry protocol once the character is on the ground.
func (pc *ProneComponent) settle() {
	if pc.c.Posture() != player.PostureProne {
		return
	}
	env, pose := pc.c.Environment(), pc.c.Pose()
	if env.IsUncontrolledFall() {
		pc.c.ForceIdle("fell while going prone")
		return
	}
	if env.IsArmed() {
		pc.c.PoseErr("begin aim pose", pose.BeginScriptedAimPose(game.ScriptedAimTask))
		return
	}
	pc.c.PoseErr("play lying", pose.PlayAnimation(player.Animation{
		AnimationRef: player.AnimationRef{Set: game.AnimSetCrawl, Clip: game.AnimOnFrontFwd},
		BlendIn:      game.AnimBlendIn,
		BlendOut:     game.AnimBlendOut,
		Duration:     player.PlayUntilCleared,
		Flags:        player.AnimationFlagStayInEndFrame,
	}))
}

// Exit runs the prone exit protocol. Getting up forces a short uncontrolled fall, which may register
// as a fall impact, so the character is damage immune until the immunity suspension completes.
func (pc *ProneComponent) Exit(now time.Time) {
	for _, kind := range []player.SuspensionKind{player.SuspensionDive, player.SuspensionWeaponDraw, player.SuspensionCrawl} {
		pc.c.Abort(kind, now)
	}
	pose := pc.c.Pose()
	pose.SetDamageImmune(true)
	pose.ForceUncontrolledFall(game.ExitFallDuration)
	pc.c.Suspend(player.SuspensionExitImmunity, now, pc.c.Opts().ExitImmunityDuration, func(time.Time, bool) {
		pose.SetDamageImmune(false)
	})
}

// Tick runs the prone logic for a frame.
func (pc *ProneComponent) Tick(now time.Time) {
	if pc.drawing {
		return
	}
	pc.handleFlip(now)
	if pc.handleWeaponChange(now) {
		return
	}
	pc.handleAim()
	if pc.aiming {
		return
	}
	pc.handleCrawl(now)
	pc.handleTurn(now)
}

// handleFlip flips the orientation when the flip control is pressed, at most once per cooldown.
func (pc *ProneComponent) handleFlip(now time.Time) {
	if !pc.c.Input().JustPressed(player.ControlFlip) {
		return
	}
	ledger := pc.c.Ledger()
	if ledger.Elapsed(timing.ActionFlip, now) <= pc.c.Opts().FlipCooldown {
		return
	}
	ledger.Record(timing.ActionFlip, now)

	pc.orientation = pc.orientation.Flipped()
	pc.c.Dbg.Notify(player.DebugModeProne, true, "flipped to %s", pc.orientation)
	pc.lieDown()
}

// handleWeaponChange replays the lying clip when the equipped weapon changed and pauses the rest of
// the prone logic while the weapon is drawn. It returns true if a change was handled.
func (pc *ProneComponent) handleWeaponChange(now time.Time) bool {
	name := pc.c.Environment().CurrentWeapon()
	weapon := weaponFingerprint(name)
	if weapon == pc.weapon {
		return false
	}
	pc.weapon = weapon

	if pc.c.Dbg.Enabled(player.DebugModeProne) {
		data := orderedmap.NewOrderedMap[string, any]()
		data.Set("weapon", name)
		data.Set("orientation", pc.orientation)
		data.Set("aiming", pc.aiming)
		pc.c.Dbg.Notify(player.DebugModeProne, true, "weapon changed %s", utils.OrderedMapToString(*data))
	}

	pc.lieDown()
	pc.drawing = true
	pc.c.Suspend(player.SuspensionWeaponDraw, now, pc.c.Opts().WeaponDrawDuration, func(time.Time, bool) {
		pc.drawing = false
	})
	return true
}

// handleAim raises the weapon while the aim control is held and lowers it once released. Lying on
// the back inverts the facing of the aim pose, so the heading is turned around while aiming.
func (pc *ProneComponent) handleAim() {
	input, env := pc.c.Input(), pc.c.Environment()
	switch {
	case !pc.aiming && !pc.crawling && env.IsArmed() && input.Pressed(player.ControlAim):
		pc.c.PoseErr("begin aim pose", pc.c.Pose().BeginScriptedAimPose(game.ScriptedAimTask))
		if pc.orientation == player.OrientationOnBack {
			env.SetHeading(game.InvertHeading(env.Heading()))
		}
		pc.aiming = true
	case pc.aiming && !input.Pressed(player.ControlAim):
		if pc.orientation == player.OrientationOnBack {
			env.SetHeading(game.InvertHeading(env.Heading()))
			pc.lieDown()
		}
		pc.aiming = false
	}
}

// handleCrawl starts a crawl cycle for forward or backward input. Held input repeats after the
// ledger's initial delay, and a cycle never starts while another is playing.
func (pc *ProneComponent) handleCrawl(now time.Time) {
	input := pc.c.Input()
	var (
		phase   timing.Phase
		forward bool
	)
	switch {
	case input.JustPressed(player.ControlMoveForward) || input.JustPressed(player.ControlMoveBackward):
		phase, forward = timing.PhaseJustPressed, input.JustPressed(player.ControlMoveForward)
	case input.Pressed(player.ControlMoveForward) || input.Pressed(player.ControlMoveBackward):
		phase, forward = timing.PhaseHeld, input.Pressed(player.ControlMoveForward)
	default:
		return
	}

	opts := pc.c.Opts()
	if !pc.c.Ledger().Debounce(timing.ActionCrawl, phase, now, opts.RepeatIntervalWide, opts.RepeatIntervalNarrow) || pc.crawling {
		return
	}
	direction := player.CrawlBackward
	if forward {
		direction = player.CrawlForward
	}
	pc.crawl(now, direction)
}

// crawl plays a single crawl cycle in the direction passed.
func (pc *ProneComponent) crawl(now time.Time, direction player.CrawlDirection) {
	pc.crawling = true
	clip := crawlClip(direction, pc.orientation)
	pose := pc.c.Pose()
	pc.c.PoseErr("clear "+clip, pose.ClearAnimation(game.AnimSetCrawl, clip))
	pc.c.PoseErr("play "+clip, pose.PlayAnimation(player.Animation{
		AnimationRef: player.AnimationRef{Set: game.AnimSetCrawl, Clip: clip},
		BlendIn:      game.AnimBlendIn,
		BlendOut:     game.AnimBlendOut,
		Duration:     player.PlayUntilCleared,
		Flags:        player.AnimationFlagStayInEndFrame,
	}))
	pc.c.Dbg.Notify(player.DebugModeProne, true, "crawl %s (%s)", direction, clip)
	pc.c.Suspend(player.SuspensionCrawl, now, pc.c.Opts().CrawlDuration, func(time.Time, bool) {
		pc.crawling = false
	})
}

// handleTurn turns the heading for left or right input. A press turns by the full step, and held
// input turns by the smaller repeat step at the ledger's repeat rate.
func (pc *ProneComponent) handleTurn(now time.Time) {
	input, opts := pc.c.Input(), pc.c.Opts()
	var (
		phase timing.Phase
		left  bool
		step  float32
	)
	switch {
	case input.JustPressed(player.ControlMoveLeft) || input.JustPressed(player.ControlMoveRight):
		phase, left, step = timing.PhaseJustPressed, input.JustPressed(player.ControlMoveLeft), opts.TurnStepDegrees
	case input.Pressed(player.ControlMoveLeft) || input.Pressed(player.ControlMoveRight):
		phase, left, step = timing.PhaseHeld, input.Pressed(player.ControlMoveLeft), opts.TurnRepeatDegrees
	default:
		return
	}

	if !pc.c.Ledger().Debounce(timing.ActionTurn, phase, now, opts.RepeatIntervalWide, opts.RepeatIntervalNarrow) {
		return
	}
	if !left {
		step = -step
	}
	env := pc.c.Environment()
	env.SetHeading(game.TurnHeading(env.Heading(), step))
}

// lieDown replays the lying clip for the current orientation. The heading is turned around the
// first time the character lies on a side different from the previous one.
func (pc *ProneComponent) lieDown() {
	if pc.orientation != pc.prevOrientation {
		env := pc.c.Environment()
		env.SetHeading(game.InvertHeading(env.Heading()))
		pc.prevOrientation = pc.orientation
	}

	clip := game.AnimOnFrontFwd
	if pc.orientation == player.OrientationOnBack {
		clip = game.AnimOnBackFwd
	}
	pc.c.PoseErr("play "+clip, pc.c.Pose().PlayAnimation(player.Animation{
		AnimationRef: player.AnimationRef{Set: game.AnimSetCrawl, Clip: clip},
		BlendIn:      game.AnimBlendIn,
		BlendOut:     game.AnimBlendOut,
		Duration:     player.PlayUntilCleared,
		Flags:        player.AnimationFlagStayInEndFrame,
		StartPhase:   game.LyingStartPhase,
	}))
}

// crawlClip returns the crawl clip for a direction. Lying on the back inverts the effective facing,
// so forward and backward swap clips.
func crawlClip(direction player.CrawlDirection, orientation player.Orientation) string {
	forward := direction == player.CrawlForward
	if orientation == player.OrientationOnBack {
		if forward {
			return game.AnimOnBackBwd
		}
		return game.AnimOnBackFwd
	}
	if forward {
		return game.AnimOnFrontFwd
	}
	return game.AnimOnFrontBwd
}

func weaponFingerprint(name string) uint64 {
	return xxh3.HashString(name)
}
