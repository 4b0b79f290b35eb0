package player

import (
	"fmt"
	"strings"
	"time"
)

// historySize is the number of posture changes a controller remembers.
const historySize = 16

// Transition is a single posture change.
type Transition struct {
	At       time.Time
	From, To Posture
}

func (t Transition) String() string {
	return fmt.Sprintf("%s %s->%s", t.At.Format("15:04:05.000"), t.From, t.To)
}

// History returns the most recent posture changes, oldest first.
func (c *Controller) History() []Transition {
	list := make([]Transition, 0, c.history.Len())
	for t := range c.history.Iter() {
		list = append(list, t)
	}
	return list
}

func (c *Controller) recordTransition(from, to Posture) {
	if err := c.history.Append(Transition{At: c.clock.Now(), From: from, To: to}); err != nil {
		c.log.Warnf("stance: record transition: %v", err)
	}
}

func historyString(c *Controller) string {
	parts := make([]string, 0, c.history.Len())
	for t := range c.history.Iter() {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, ", ")
}
