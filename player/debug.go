package player

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	DebugModeTransitions = iota
	DebugModeLedger
	DebugModeProne
	DebugModeSuspensions
	debugModeCount
)

// DebugModes maps the names accepted in settings to debug modes.
var DebugModes = map[string]int{
	"transitions": DebugModeTransitions,
	"ledger":      DebugModeLedger,
	"prone":       DebugModeProne,
	"suspensions": DebugModeSuspensions,
}

// Debugger writes debug output for the modes that are enabled.
type Debugger struct {
	log   *logrus.Logger
	modes [debugModeCount]bool
}

// Toggle flips the given debug mode.
func (d *Debugger) Toggle(mode int) {
	d.checkMode(mode)
	d.modes[mode] = !d.modes[mode]
}

// Enable enables the given debug mode.
func (d *Debugger) Enable(mode int) {
	d.checkMode(mode)
	d.modes[mode] = true
}

// Enabled returns true if the given debug mode is enabled.
func (d *Debugger) Enabled(mode int) bool {
	d.checkMode(mode)
	return d.modes[mode]
}

// Notify logs the formatted message if the mode is enabled and cond is true.
func (d *Debugger) Notify(mode int, cond bool, format string, args ...any) {
	if !cond || !d.Enabled(mode) {
		return
	}
	d.log.Debugf(format, args...)
}

func (d *Debugger) checkMode(mode int) {
	if mode < 0 || mode >= debugModeCount {
		panic(fmt.Errorf("unknown debug mode %v", mode))
	}
}
