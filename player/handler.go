package player

// Handler handles notifications from a Controller.
type Handler interface {
	// HandlePostureChange is called after the posture changed from one value to another.
	HandlePostureChange(from, to Posture)
}

// NopHandler implements Handler and does nothing.
type NopHandler struct{}

func (NopHandler) HandlePostureChange(Posture, Posture) {}

// Handle sets the handler of the controller. Passing nil resets it to a NopHandler.
func (c *Controller) Handle(h Handler) {
	if h == nil {
		h = NopHandler{}
	}
	c.hMutex.Lock()
	c.h = h
	c.hMutex.Unlock()
}

func (c *Controller) handler() Handler {
	c.hMutex.RLock()
	defer c.hMutex.RUnlock()
	return c.h
}
