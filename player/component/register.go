package component

import "github.com/TimothyDexter/FiveM-StanceModifier/player"

// Register registers the components for the given controller.
func Register(c *player.Controller) {
	c.SetProne(NewProneComponent(c))
}
