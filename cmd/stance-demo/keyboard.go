package main

import (
	"time"

	"github.com/TimothyDexter/FiveM-StanceModifier/player"
)

// repeatRelease is how long a key fed through Repeat stays down without a new key event. It must
// be longer than the initial key repeat delay of the terminal.
const repeatRelease = 550 * time.Millisecond

// Keyboard turns terminal key events into the press, hold and release edges of a
// player.InputProvider. Terminals only report key presses, so every control is released on a
// schedule: taps after a fixed duration and repeated keys once their repeats stop arriving.
type Keyboard struct {
	down, pressed, released map[player.Control]bool
	pending                 map[player.Control]bool
	releaseAt               map[player.Control]time.Time
	disabled                map[player.Control]bool
}

// NewKeyboard returns a keyboard with every control up.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		down:      make(map[player.Control]bool),
		pressed:   make(map[player.Control]bool),
		released:  make(map[player.Control]bool),
		pending:   make(map[player.Control]bool),
		releaseAt: make(map[player.Control]time.Time),
		disabled:  make(map[player.Control]bool),
	}
}

// Tap presses the control on the next frame and releases it once d passed.
func (k *Keyboard) Tap(c player.Control, now time.Time, d time.Duration) {
	k.pending[c] = true
	k.releaseAt[c] = now.Add(d)
}

// Repeat presses the control on the next frame and keeps it down for as long as key repeats keep
// arriving.
func (k *Keyboard) Repeat(c player.Control, now time.Time) {
	if !k.down[c] {
		k.pending[c] = true
	}
	k.releaseAt[c] = now.Add(repeatRelease)
}

// Toggle presses the control if it is up and releases it otherwise.
func (k *Keyboard) Toggle(c player.Control, now time.Time) {
	if k.down[c] || k.pending[c] {
		delete(k.pending, c)
		k.releaseAt[c] = now
		return
	}
	k.pending[c] = true
	delete(k.releaseAt, c)
}

// Frame computes the edges for a new frame. A control is always down for at least one frame.
func (k *Keyboard) Frame(now time.Time) {
	clear(k.pressed)
	clear(k.released)
	clear(k.disabled)

	for c, at := range k.releaseAt {
		if !k.down[c] || now.Before(at) {
			continue
		}
		k.down[c], k.released[c] = false, true
		delete(k.releaseAt, c)
	}
	for c := range k.pending {
		if k.released[c] {
			// Released and pressed again before a frame passed: press on the next frame.
			continue
		}
		k.down[c], k.pressed[c] = true, true
		delete(k.pending, c)
	}
}

// Down returns true if the control is currently down.
func (k *Keyboard) Down(c player.Control) bool {
	return k.down[c]
}

// Disabled returns true if the native handling of the control was suppressed this frame.
func (k *Keyboard) Disabled(c player.Control) bool {
	return k.disabled[c]
}

func (k *Keyboard) JustPressed(c player.Control) bool  { return k.pressed[c] }
func (k *Keyboard) Pressed(c player.Control) bool      { return k.down[c] }
func (k *Keyboard) JustReleased(c player.Control) bool { return k.released[c] }
func (k *Keyboard) DisableThisFrame(c player.Control)  { k.disabled[c] = true }
