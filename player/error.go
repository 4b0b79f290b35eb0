package player

import (
	"errors"
	"fmt"
	"time"

	"github.com/TimothyDexter/FiveM-StanceModifier/oerror"
	"github.com/TimothyDexter/FiveM-StanceModifier/utils"
	"github.com/getsentry/sentry-go"
)

var (
	// ErrNoProneComponent is returned when prone is entered on a controller without a prone component.
	ErrNoProneComponent = errors.New("stance: no prone component set")
	// ErrInvalidPosture is wrapped by errors raised for postures outside the known set.
	ErrInvalidPosture = errors.New("stance: invalid posture")
)

// recoverTick handles a panic raised during a tick, most likely by a collaborator, and falls back
// to idle.
func (c *Controller) recoverTick(now time.Time, v any) error {
	err, ok := v.(error)
	if !ok {
		err = oerror.Newf("%v", v)
	}
	c.log.Errorf("stance: tick panic: %v", v)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("posture", c.Posture().String())
		scope.SetTag("orientation", c.Orientation().String())
		scope.SetExtra("history", historyString(c))
	})
	hub.Recover(err)

	c.resetToIdle(now)
	return err
}

// fallback handles a failure reported by a tick step, falls back to idle and returns the failure.
func (c *Controller) fallback(now time.Time, err error) error {
	var stanceErr *oerror.StanceError
	if errors.As(err, &stanceErr) {
		err = fmt.Errorf("%w: %w", ErrInvalidPosture, err)
	}
	c.log.Errorf("stance: %v, resetting to idle", err)

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("posture", c.Posture().String())
		scope.SetExtra("history", historyString(c))
	})
	hub.CaptureException(err)

	c.resetToIdle(now)
	return err
}

// resetToIdle aborts every pending protocol, exits prone if needed and sets the posture to idle.
func (c *Controller) resetToIdle(now time.Time) {
	wasProne := c.Posture() == PostureProne
	c.holdConsumed = false
	c.abortSuspensions(now)
	if wasProne && c.prone != nil {
		c.safely("prone exit", func() { c.prone.Exit(now) })
	}
	c.safely("set idle", func() { c.setPosture(PostureIdle) })
	if !c.Posture().Valid() {
		c.posture.Store(uint32(PostureIdle))
	}
}

// safely runs f and logs a panic raised by it instead of propagating it.
func (c *Controller) safely(op string, f func()) {
	defer func() {
		if v := recover(); v != nil {
			c.log.Errorf("stance: %s panic: %v", op, v)
		}
	}()
	f()
}

func ledgerString(c *Controller) string {
	return utils.OrderedMapToString(*c.ledger.Snapshot())
}
