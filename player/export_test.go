package player

// StorePosture stores p without any transition checks.
func (c *Controller) StorePosture(p Posture) {
	c.posture.Store(uint32(p))
}
