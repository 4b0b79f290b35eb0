package player

import "time"

// InputProvider reports the edges of logical controls for the current frame.
type InputProvider interface {
	// JustPressed returns true on the first frame the control is down.
	JustPressed(c Control) bool
	// Pressed returns true on every frame the control is down.
	Pressed(c Control) bool
	// JustReleased returns true on the first frame the control is up again.
	JustReleased(c Control) bool
	// DisableThisFrame suppresses the native handling of the control for the current frame.
	DisableThisFrame(c Control)
}

// Clock is a monotonic time source used for every timestamp the controller records.
type Clock interface {
	Now() time.Time
}

// PoseExecutor plays and clears animations and locomotion overrides on the character. Only one
// animation or override set may own the pose slot at a time.
type PoseExecutor interface {
	PlayAnimation(a Animation) error
	ClearAnimation(set, clip string) error
	IsPlayingAnimation(set, clip string) bool
	// ClearTasks stops every task and animation currently owning the pose slot.
	ClearTasks()

	SetLocomotionOverride(kind LocomotionKind, clipset string) error
	// ResetLocomotionOverride restores the default clipset of the slot, including the
	// character's chosen walking style.
	ResetLocomotionOverride(kind LocomotionKind) error

	BeginScriptedAimPose(task string) error
	ForceUncontrolledFall(d time.Duration)
	SetDamageImmune(immune bool)
}

// Environment answers queries about the character and the world around it. Implementations that
// cannot answer a query this frame should report false.
type Environment interface {
	IsUncontrolledFall() bool
	IsInCloseCombat() bool
	IsInWater() bool
	IsSwimming() bool
	IsUnderwater() bool
	IsInVehicle() bool
	IsEnteringVehicle() bool
	// IsStealthGait returns true if the locomotion system moved the character into its own stealth gait.
	IsStealthGait() bool
	IsRunning() bool
	IsSprinting() bool
	IsArmed() bool
	// CurrentWeapon returns the name of the equipped weapon.
	CurrentWeapon() string
	// Heading returns the heading of the character in degrees.
	Heading() float32
	SetHeading(heading float32)
}

// Camera controls the follow camera of the character.
type Camera interface {
	ViewMode() ViewMode
	SetViewMode(mode ViewMode)
	DisableFirstPersonThisFrame()
}

// Restraints bridges subsystems that hold the character in place, such as arrests or scenarios.
type Restraints interface {
	IsRestrained() bool
	IsUsingScenario() bool
}

// Providers bundles the collaborators of a Controller. Restraints and Clock are optional.
type Providers struct {
	Input       InputProvider
	Clock       Clock
	Pose        PoseExecutor
	Environment Environment
	Camera      Camera
	Restraints  Restraints
}

type wallClock struct{}

func (wallClock) Now() time.Time {
	return time.Now()
}
