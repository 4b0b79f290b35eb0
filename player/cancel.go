package player

import (
	"time"

	"github.com/TimothyDexter/FiveM-StanceModifier/game"
)

// cancelRequested returns true if any condition that overrides crouch and prone is present.
func (c *Controller) cancelRequested() bool {
	if r := c.restraints; r != nil && (r.IsRestrained() || r.IsUsingScenario()) {
		return true
	}
	for _, anim := range c.opts.RestraintAnimations {
		if c.pose.IsPlayingAnimation(anim.Set, anim.Clip) {
			return true
		}
	}
	return c.input.JustPressed(ControlCancel) ||
		c.env.IsInVehicle() || c.env.IsEnteringVehicle() ||
		c.env.IsInWater() || c.env.IsSwimming() || c.env.IsUnderwater()
}

// forceCancel reverts crouch and prone to idle if an override condition is present. It returns true
// if a condition was present, in which case posture input must not be read this tick.
func (c *Controller) forceCancel(now time.Time) (bool, error) {
	if !c.cancelRequested() {
		return false, nil
	}
	switch p := c.Posture(); p {
	case PostureCrouch:
		c.cancelCrouch()
		c.setPosture(PostureIdle)
		c.Dbg.Notify(DebugModeTransitions, true, "crouch cancelled by override")
	case PostureProne:
		c.Dbg.Notify(DebugModeTransitions, true, "prone cancelled by override")
		return true, c.advance(now)
	}
	return true, nil
}

// tickCrouch runs the checks crouch performs every tick.
func (c *Controller) tickCrouch() {
	if c.env.IsStealthGait() {
		c.cancelCrouch()
		c.setPosture(PostureStealth)
		return
	}

	if c.camera.ViewMode() == ViewModeFirstPerson {
		c.camera.SetViewMode(ViewModeThirdPersonNear)
	}
	c.camera.DisableFirstPersonThisFrame()
	c.input.DisableThisFrame(ControlStance)

	if c.env.IsUncontrolledFall() || c.env.IsInCloseCombat() || c.crouchBlocked() {
		c.pose.ClearTasks()
		c.cancelCrouch()
		c.setPosture(PostureIdle)
		return
	}
	c.applyCrouch()
}

// tickProne runs the checks prone performs every tick and hands the remaining frame to the prone
// component.
func (c *Controller) tickProne(now time.Time) error {
	c.input.DisableThisFrame(ControlStance)
	if c.prone == nil {
		return ErrNoProneComponent
	}
	if c.prone.Diving() {
		return nil
	}

	closeCombat := c.env.IsInCloseCombat()
	if closeCombat {
		c.pose.ForceUncontrolledFall(game.CloseCombatFallDuration)
	}
	if closeCombat || c.env.IsUncontrolledFall() {
		c.pose.ClearTasks()
		c.ForceIdle("fell out of prone")
		return nil
	}
	if c.opts.EvictBlockedProne && c.proneBlocked() {
		c.pose.ClearTasks()
		return c.advance(now)
	}
	c.prone.Tick(now)
	return nil
}
