package player

import (
	"time"

	"github.com/TimothyDexter/FiveM-StanceModifier/game"
	"github.com/TimothyDexter/FiveM-StanceModifier/oerror"
	"github.com/TimothyDexter/FiveM-StanceModifier/timing"
)

// handleStanceInput reads the stance control and resolves taps and holds.
func (c *Controller) handleStanceInput(now time.Time) error {
	switch {
	case c.input.JustPressed(ControlStance):
		c.holdConsumed = false
		c.ledger.Record(timing.ActionStance, now)
	case c.input.Pressed(ControlStance):
		if c.proneBlocked() || c.ledger.Elapsed(timing.ActionStance, now) < c.opts.HoldThreshold {
			return nil
		}
		c.holdConsumed = true
		if p := c.Posture(); p == PostureIdle || p == PostureStealth || p == PostureCrouch {
			c.Dbg.Notify(DebugModeTransitions, true, "hold jump from %s", p)
			return c.enterProne(now)
		}
	case c.input.JustReleased(ControlStance):
		elapsed := c.ledger.Elapsed(timing.ActionStance, now)
		if elapsed <= c.opts.ReleaseNoiseWindow {
			c.Dbg.Notify(DebugModeLedger, true, "ignored release %v after press", elapsed)
			return nil
		}
		c.ledger.Record(timing.ActionStance, now)
		if !c.holdConsumed {
			return c.advance(now)
		}
	}
	return nil
}

// advance moves the posture one step along Idle, Stealth, Crouch, Prone and back to Idle.
func (c *Controller) advance(now time.Time) error {
	c.pose.ClearTasks()
	c.cancelCrouch()

	switch p := c.Posture(); p {
	case PostureIdle:
		c.setPosture(PostureStealth)
	case PostureStealth:
		if c.crouchBlocked() {
			c.setPosture(PostureIdle)
			return nil
		}
		c.setPosture(PostureCrouch)
	case PostureCrouch:
		if c.proneBlocked() {
			c.setPosture(PostureIdle)
			return nil
		}
		return c.enterProne(now)
	case PostureProne:
		if err := c.exitProne(now); err != nil {
			return err
		}
		c.setPosture(PostureIdle)
	default:
		return oerror.Newf("advance from unexpected %s", p)
	}
	return nil
}

// enterProne sets the posture to prone and runs the entry protocol of the prone component.
func (c *Controller) enterProne(now time.Time) error {
	if c.prone == nil {
		return ErrNoProneComponent
	}
	if c.proneBlocked() {
		c.setPosture(PostureIdle)
		return nil
	}
	if c.Posture() == PostureCrouch {
		c.cancelCrouch()
	}
	c.setPosture(PostureProne)
	c.prone.Enter(now)
	return nil
}

func (c *Controller) exitProne(now time.Time) error {
	if c.prone == nil {
		return ErrNoProneComponent
	}
	c.prone.Exit(now)
	return nil
}

// cancelCrouch restores the locomotion overrides the crouch posture applies.
func (c *Controller) cancelCrouch() {
	c.poseErr("reset movement clipset", c.pose.ResetLocomotionOverride(LocomotionMovement))
	c.poseErr("reset strafe clipset", c.pose.ResetLocomotionOverride(LocomotionStrafe))
}

// applyCrouch applies the locomotion overrides of the crouch posture.
func (c *Controller) applyCrouch() {
	c.poseErr("set movement clipset", c.pose.SetLocomotionOverride(LocomotionMovement, game.ClipsetCrouchMovement))
	c.poseErr("set strafe clipset", c.pose.SetLocomotionOverride(LocomotionStrafe, game.ClipsetCrouchStrafe))
}

// clearStanceAnimations clears any dive or crawl clip still playing.
func (c *Controller) clearStanceAnimations() {
	if c.pose.IsPlayingAnimation(game.AnimSetJump, game.AnimDive) {
		c.poseErr("clear dive", c.pose.ClearAnimation(game.AnimSetJump, game.AnimDive))
	}
	for _, clip := range game.CrawlAnimations {
		if c.pose.IsPlayingAnimation(game.AnimSetCrawl, clip) {
			c.poseErr("clear "+clip, c.pose.ClearAnimation(game.AnimSetCrawl, clip))
		}
	}
}
