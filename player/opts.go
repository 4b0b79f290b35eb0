package player

import (
	"time"

	"github.com/TimothyDexter/FiveM-StanceModifier/game"
)

// Opts holds the tunables of a Controller.
type Opts struct {
	HoldThreshold      time.Duration
	ReleaseNoiseWindow time.Duration

	DiveDuration         time.Duration
	ExitImmunityDuration time.Duration
	FlipCooldown         time.Duration
	WeaponDrawDuration   time.Duration
	CrawlDuration        time.Duration

	RepeatIntervalWide   time.Duration
	RepeatIntervalNarrow time.Duration

	TurnStepDegrees   float32
	TurnRepeatDegrees float32

	// EvictBlockedProne returns a prone character to idle as soon as prone gets blocked. By
	// default blocking only prevents new entries into prone.
	EvictBlockedProne bool

	// RestraintAnimations are clips that, while playing, cancel crouch and prone.
	RestraintAnimations []AnimationRef
}

// DefaultOpts returns the default tunables.
func DefaultOpts() Opts {
	opts := Opts{
		HoldThreshold:      game.HoldThreshold,
		ReleaseNoiseWindow: game.ReleaseNoiseWindow,

		DiveDuration:         game.DiveDuration,
		ExitImmunityDuration: game.ExitImmunityDuration,
		FlipCooldown:         game.FlipCooldown,
		WeaponDrawDuration:   game.WeaponDrawDuration,
		CrawlDuration:        game.CrawlDuration,

		RepeatIntervalWide:   game.RepeatIntervalWide,
		RepeatIntervalNarrow: game.RepeatIntervalNarrow,

		TurnStepDegrees:   game.TurnStepDegrees,
		TurnRepeatDegrees: game.TurnRepeatDegrees,
	}
	for _, anim := range game.RestraintAnimations {
		opts.RestraintAnimations = append(opts.RestraintAnimations, AnimationRef{Set: anim[0], Clip: anim[1]})
	}
	return opts
}

// Opts returns the tunables of the controller.
func (c *Controller) Opts() *Opts {
	return &c.opts
}
