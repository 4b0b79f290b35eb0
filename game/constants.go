package game

import "time"

const (
	// HoldThreshold is how long the stance control must stay held before the hold jumps straight to prone.
	HoldThreshold = 200 * time.Millisecond
	// ReleaseNoiseWindow is the window after a press in which a release of the same control is ignored.
	ReleaseNoiseWindow = 10 * time.Millisecond

	// DiveDuration matches the length of the dive clip and must not be shortened.
	DiveDuration = 1100 * time.Millisecond
	// ExitImmunityDuration is how long the character is damage immune while getting up from prone.
	ExitImmunityDuration = 250 * time.Millisecond
	// ExitFallDuration is the length of the uncontrolled fall forced when getting up from prone.
	ExitFallDuration = time.Millisecond
	// CloseCombatFallDuration is the length of the uncontrolled fall forced when close combat cancels prone.
	CloseCombatFallDuration = time.Millisecond

	FlipCooldown       = 1000 * time.Millisecond
	WeaponDrawDuration = 1000 * time.Millisecond
	CrawlDuration      = 850 * time.Millisecond

	// RepeatIntervalWide is the delay after a press before held input starts repeating.
	RepeatIntervalWide = 100 * time.Millisecond
	// RepeatIntervalNarrow is the delay between repeats once held input is repeating.
	RepeatIntervalNarrow = 10 * time.Millisecond

	TurnStepDegrees   = float32(2)
	TurnRepeatDegrees = float32(0.75)
)

const (
	AnimBlendIn  = float32(8)
	AnimBlendOut = float32(-8)
	// LyingStartPhase is the start offset handed to the executor when replaying a lying clip.
	LyingStartPhase = float32(1000)
)

const (
	AnimSetCrawl = "move_crawl"
	AnimSetJump  = "move_jump"

	AnimDive        = "dive_start_run"
	AnimOnFrontFwd  = "onfront_fwd"
	AnimOnFrontBwd  = "onfront_bwd"
	AnimOnBackFwd   = "onback_fwd"
	AnimOnBackBwd   = "onback_bwd"
	ScriptedAimTask = "SCRIPTED_GUN_TASK_PLANE_WING"

	ClipsetCrouchMovement = "move_m@fire"
	ClipsetCrouchStrafe   = "move_ped_crouched_strafing"
)

// CrawlAnimations lists every clip in the crawl set that may linger once the character is idle again.
var CrawlAnimations = []string{AnimOnFrontFwd, AnimOnFrontBwd, AnimOnBackFwd, AnimOnBackBwd}

// RestraintAnimations lists the clips played by arrest and surrender systems. While any of them is
// playing the character is treated as restrained.
var RestraintAnimations = [][2]string{
	{"mp_arresting", "idle"},
	{"random@mugging3", "handsup_standing_base"},
	{"random@arrests@busted", "idle_a"},
}
