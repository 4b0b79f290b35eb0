// Package playertest provides in-memory collaborators for driving a player.Controller in tests.
package playertest

import (
	"time"

	"github.com/TimothyDexter/FiveM-StanceModifier/player"
)

// Epoch is the time every Clock starts at.
var Epoch = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

// Clock is a manually advanced player.Clock.
type Clock struct {
	now time.Time
}

// Now returns the current time of the clock.
func (c *Clock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Since returns the time passed since Epoch.
func (c *Clock) Since() time.Duration {
	return c.now.Sub(Epoch)
}

// Input is a scripted player.InputProvider. Press and Release set the edges reported for the next
// frame, EndFrame clears them.
type Input struct {
	down, pressed, released map[player.Control]bool
	Disabled                map[player.Control]int
}

func newInput() *Input {
	return &Input{
		down:     make(map[player.Control]bool),
		pressed:  make(map[player.Control]bool),
		released: make(map[player.Control]bool),
		Disabled: make(map[player.Control]int),
	}
}

// Press puts the control down. It has no effect if the control is already down.
func (i *Input) Press(c player.Control) {
	if i.down[c] {
		return
	}
	i.down[c], i.pressed[c] = true, true
}

// Release lets the control up. It has no effect if the control is not down.
func (i *Input) Release(c player.Control) {
	if !i.down[c] {
		return
	}
	i.down[c], i.released[c] = false, true
}

// EndFrame clears the edges of the frame.
func (i *Input) EndFrame() {
	clear(i.pressed)
	clear(i.released)
}

func (i *Input) JustPressed(c player.Control) bool  { return i.pressed[c] }
func (i *Input) Pressed(c player.Control) bool      { return i.down[c] }
func (i *Input) JustReleased(c player.Control) bool { return i.released[c] }
func (i *Input) DisableThisFrame(c player.Control)  { i.Disabled[c]++ }

// Pose is a recording player.PoseExecutor.
type Pose struct {
	Played    []player.Animation
	Cleared   []player.AnimationRef
	Playing   map[player.AnimationRef]bool
	Overrides map[player.LocomotionKind]string

	ClearedTasks int
	AimPoses     int
	Falls        []time.Duration

	Immune bool
	// ImmuneSince is the time immunity was last granted.
	ImmuneSince time.Time

	// Err is returned from every call that can fail.
	Err error

	clock *Clock
}

func (p *Pose) PlayAnimation(a player.Animation) error {
	if p.Err != nil {
		return p.Err
	}
	p.Played = append(p.Played, a)
	p.Playing[a.AnimationRef] = true
	return nil
}

func (p *Pose) ClearAnimation(set, clip string) error {
	if p.Err != nil {
		return p.Err
	}
	ref := player.AnimationRef{Set: set, Clip: clip}
	p.Cleared = append(p.Cleared, ref)
	delete(p.Playing, ref)
	return nil
}

func (p *Pose) IsPlayingAnimation(set, clip string) bool {
	return p.Playing[player.AnimationRef{Set: set, Clip: clip}]
}

func (p *Pose) ClearTasks() {
	p.ClearedTasks++
	clear(p.Playing)
}

func (p *Pose) SetLocomotionOverride(kind player.LocomotionKind, clipset string) error {
	if p.Err != nil {
		return p.Err
	}
	p.Overrides[kind] = clipset
	return nil
}

func (p *Pose) ResetLocomotionOverride(kind player.LocomotionKind) error {
	if p.Err != nil {
		return p.Err
	}
	delete(p.Overrides, kind)
	return nil
}

func (p *Pose) BeginScriptedAimPose(string) error {
	if p.Err != nil {
		return p.Err
	}
	p.AimPoses++
	return nil
}

func (p *Pose) ForceUncontrolledFall(d time.Duration) {
	p.Falls = append(p.Falls, d)
}

func (p *Pose) SetDamageImmune(immune bool) {
	if immune && !p.Immune {
		p.ImmuneSince = p.clock.Now()
	}
	p.Immune = immune
}

// PlayedClip returns how many times the clip was played, optionally only counting plays with the
// given start phase.
func (p *Pose) PlayedClip(clip string, startPhase ...float32) (n int) {
	for _, a := range p.Played {
		if a.Clip != clip {
			continue
		}
		if len(startPhase) > 0 && a.StartPhase != startPhase[0] {
			continue
		}
		n++
	}
	return n
}

// Environment is a mutable player.Environment.
type Environment struct {
	Falling, CloseCombat            bool
	InWater, Swimming, Underwater   bool
	InVehicle, EnteringVehicle      bool
	StealthGait, Running, Sprinting bool
	Armed                           bool
	Weapon                          string
	Facing                          float32

	// Panic is raised from IsInVehicle if set.
	Panic any
}

func (e *Environment) IsUncontrolledFall() bool { return e.Falling }
func (e *Environment) IsInCloseCombat() bool    { return e.CloseCombat }
func (e *Environment) IsInWater() bool          { return e.InWater }
func (e *Environment) IsSwimming() bool         { return e.Swimming }
func (e *Environment) IsUnderwater() bool       { return e.Underwater }
func (e *Environment) IsEnteringVehicle() bool  { return e.EnteringVehicle }
func (e *Environment) IsStealthGait() bool      { return e.StealthGait }
func (e *Environment) IsRunning() bool          { return e.Running }
func (e *Environment) IsSprinting() bool        { return e.Sprinting }
func (e *Environment) IsArmed() bool            { return e.Armed }
func (e *Environment) CurrentWeapon() string    { return e.Weapon }
func (e *Environment) Heading() float32         { return e.Facing }
func (e *Environment) SetHeading(h float32)     { e.Facing = h }

func (e *Environment) IsInVehicle() bool {
	if e.Panic != nil {
		panic(e.Panic)
	}
	return e.InVehicle
}

// Camera is a mutable player.Camera.
type Camera struct {
	Mode                player.ViewMode
	FirstPersonDisabled int
}

func (c *Camera) ViewMode() player.ViewMode        { return c.Mode }
func (c *Camera) SetViewMode(mode player.ViewMode) { c.Mode = mode }
func (c *Camera) DisableFirstPersonThisFrame()     { c.FirstPersonDisabled++ }

// Restraints is a mutable player.Restraints.
type Restraints struct {
	Restrained, Scenario bool
}

func (r *Restraints) IsRestrained() bool    { return r.Restrained }
func (r *Restraints) IsUsingScenario() bool { return r.Scenario }

// Rig bundles a full set of collaborators sharing one Clock.
type Rig struct {
	Clock      *Clock
	Input      *Input
	Pose       *Pose
	Env        *Environment
	Camera     *Camera
	Restraints *Restraints
}

// NewRig returns a Rig with an idle, unarmed character facing north.
func NewRig() *Rig {
	clock := &Clock{now: Epoch}
	return &Rig{
		Clock: clock,
		Input: newInput(),
		Pose: &Pose{
			Playing:   make(map[player.AnimationRef]bool),
			Overrides: make(map[player.LocomotionKind]string),
			clock:     clock,
		},
		Env:        &Environment{Weapon: "unarmed"},
		Camera:     &Camera{Mode: player.ViewModeThirdPersonNear},
		Restraints: &Restraints{},
	}
}

// Providers returns the collaborators as player.Providers.
func (r *Rig) Providers() player.Providers {
	return player.Providers{
		Input:       r.Input,
		Clock:       r.Clock,
		Pose:        r.Pose,
		Environment: r.Env,
		Camera:      r.Camera,
		Restraints:  r.Restraints,
	}
}

// Tick ticks the controller at the current time and ends the input frame.
func (r *Rig) Tick(c *player.Controller) player.TickResult {
	res := c.Tick()
	r.Input.EndFrame()
	return res
}

// Step advances the clock by d and ticks the controller.
func (r *Rig) Step(c *player.Controller, d time.Duration) player.TickResult {
	r.Clock.Advance(d)
	return r.Tick(c)
}

// Tap presses the stance control, releases it after held and ticks on both edges. The clock is
// left at the release.
func (r *Rig) Tap(c *player.Controller, held time.Duration) player.TickResult {
	r.Input.Press(player.ControlStance)
	r.Tick(c)
	r.Clock.Advance(held)
	r.Input.Release(player.ControlStance)
	return r.Tick(c)
}

// Hold presses the stance control and keeps it down for d, ticking every frame. The control is not
// released.
func (r *Rig) Hold(c *player.Controller, d, frame time.Duration) {
	r.Input.Press(player.ControlStance)
	r.Tick(c)
	for elapsed := frame; elapsed <= d; elapsed += frame {
		r.Step(c, frame)
	}
}
