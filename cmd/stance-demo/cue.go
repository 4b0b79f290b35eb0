package main

import (
	"time"

	"github.com/TimothyDexter/FiveM-StanceModifier/player"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate  = beep.SampleRate(44100)
	cueDuration = 60 * time.Millisecond
)

// cueFrequencies holds the tone played when entering each posture, descending as the character
// gets lower.
var cueFrequencies = map[player.Posture]float64{
	player.PostureIdle:    880,
	player.PostureStealth: 660,
	player.PostureCrouch:  495,
	player.PostureProne:   330,
}

// Cue plays a short tone on every posture change. It is silent if the speaker could not be set up.
type Cue struct {
	enabled bool
}

// NewCue sets up the speaker. The returned error is not fatal: the cue simply stays silent.
func NewCue() (*Cue, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Cue{}, err
	}
	return &Cue{enabled: true}, nil
}

// Play plays the tone of the posture passed.
func (c *Cue) Play(p player.Posture) {
	if !c.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, cueFrequencies[p])
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(cueDuration), sine))
}

// Close closes the speaker.
func (c *Cue) Close() {
	if c.enabled {
		speaker.Close()
	}
}

// handler reports posture changes of the demo controller.
type handler struct {
	ch  *Character
	cue *Cue
}

func (h handler) HandlePostureChange(from, to player.Posture) {
	h.ch.event("posture %s -> %s", from, to)
	h.cue.Play(to)
}
