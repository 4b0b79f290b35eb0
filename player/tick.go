package player

import (
	"time"

	"github.com/TimothyDexter/FiveM-StanceModifier/oerror"
)

// Tick runs the controller for a single frame. It completes expired suspensions, applies override
// conditions, reads the stance control and finally runs the checks of the current posture. A tick
// that fails resets the posture to idle and reports the failure in the returned result.
func (c *Controller) Tick() (res TickResult) {
	now := c.clock.Now()
	res.Previous = c.Posture()

	defer func() {
		if v := recover(); v != nil {
			res.Err = c.recoverTick(now, v)
			res.Outcome = TickOutcomeRecovered
		}
		res.Posture = c.Posture()
	}()

	outcome, err := c.tick(now)
	if err != nil {
		res.Err, res.Outcome = c.fallback(now, err), TickOutcomeRecovered
		return res
	}
	res.Outcome = outcome
	return res
}

func (c *Controller) tick(now time.Time) (TickOutcome, error) {
	c.pollSuspensions(now)
	if p := c.Posture(); !p.Valid() {
		return TickOutcomeNormal, oerror.Newf("controller reached unexpected %s", p)
	}

	outcome := TickOutcomeNormal
	if c.prone != nil && c.prone.Diving() {
		outcome = TickOutcomeSuspended
	} else {
		cancelled, err := c.forceCancel(now)
		if err != nil {
			return outcome, err
		}
		if cancelled {
			outcome = TickOutcomeForcedCancel
		} else if err := c.handleStanceInput(now); err != nil {
			return outcome, err
		}
	}

	switch p := c.Posture(); p {
	case PostureIdle:
		c.clearStanceAnimations()
	case PostureStealth:
	case PostureCrouch:
		c.tickCrouch()
	case PostureProne:
		if err := c.tickProne(now); err != nil {
			return outcome, err
		}
	default:
		return outcome, oerror.Newf("tick in unexpected %s", p)
	}
	if c.Dbg.Enabled(DebugModeLedger) && c.ledger.Len() > 0 {
		c.Dbg.Notify(DebugModeLedger, true, "ledger: %s", ledgerString(c))
	}
	return outcome, nil
}
