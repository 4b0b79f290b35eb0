package player

import "go.uber.org/atomic"

// BlockingPolicy holds the latched vetoes external subsystems place on crouch and prone.
type BlockingPolicy struct {
	crouch, prone atomic.Bool
}

// SetBlocking latches whether entering crouch and prone is blocked. Any combination is legal and
// takes effect on the next evaluation of the corresponding entry rule. It is safe to call from any
// goroutine.
func (c *Controller) SetBlocking(crouchBlocked, proneBlocked bool) {
	c.blocking.crouch.Store(crouchBlocked)
	c.blocking.prone.Store(proneBlocked)
	c.Dbg.Notify(DebugModeTransitions, true, "blocking set: crouch=%v prone=%v", crouchBlocked, proneBlocked)
}

// Blocking returns whether entering crouch and prone is currently blocked.
func (c *Controller) Blocking() (crouchBlocked, proneBlocked bool) {
	return c.blocking.crouch.Load(), c.blocking.prone.Load()
}

func (c *Controller) crouchBlocked() bool {
	return c.blocking.crouch.Load()
}

func (c *Controller) proneBlocked() bool {
	return c.blocking.prone.Load()
}
