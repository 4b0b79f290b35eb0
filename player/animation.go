package player

import "time"

// AnimationFlag is a bitmask of playback options handed to the pose executor.
type AnimationFlag uint32

const (
	AnimationFlagNone           AnimationFlag = 0
	AnimationFlagLoop           AnimationFlag = 1
	AnimationFlagStayInEndFrame AnimationFlag = 2
	// AnimationFlagRagdollOnCollision lets the character fall if it hits something mid clip.
	AnimationFlagRagdollOnCollision AnimationFlag = 4194304
)

// PlayUntilCleared is the duration of clips that play until cleared or superseded.
const PlayUntilCleared time.Duration = -1

// AnimationRef names a clip within an animation set.
type AnimationRef struct {
	Set  string `json:"set" toml:"set"`
	Clip string `json:"clip" toml:"clip"`
}

// Animation is a request to play a clip on the character's single pose slot.
type Animation struct {
	AnimationRef

	BlendIn, BlendOut float32
	// Duration is how long the clip plays. PlayUntilCleared keeps it until cleared or superseded.
	Duration time.Duration
	Flags    AnimationFlag
	// StartPhase is an optional offset into the clip.
	StartPhase float32
}
