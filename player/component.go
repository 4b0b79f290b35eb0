package player

import "time"

// ProneComponent runs the prone sub-controller: entry and exit of the posture, orientation, aiming,
// weapon changes and crawling.
type ProneComponent interface {
	// Enter runs the entry protocol. The controller has already set the posture to prone.
	Enter(now time.Time)
	// Exit runs the exit protocol. The controller sets the posture to idle afterwards.
	Exit(now time.Time)
	// Tick runs the prone logic for a frame in which the character stays prone.
	Tick(now time.Time)

	Orientation() Orientation
	Diving() bool
	Crawling() bool
	Aiming() bool
}

// SetProne sets the prone component of the controller.
func (c *Controller) SetProne(pc ProneComponent) {
	c.prone = pc
}

// Prone returns the prone component of the controller.
func (c *Controller) Prone() ProneComponent {
	return c.prone
}
