package main

import (
	"fmt"
	"time"

	"github.com/TimothyDexter/FiveM-StanceModifier/game"
	"github.com/TimothyDexter/FiveM-StanceModifier/player"
	"github.com/TimothyDexter/FiveM-StanceModifier/utils"
)

// maxEvents is the number of pose executor calls kept for display.
const maxEvents = 8

var weapons = []string{"weapon_unarmed", "weapon_pistol", "weapon_carbinerifle"}

// Character is a simulated character standing in for the game. It implements every collaborator of
// a player.Controller except input.
type Character struct {
	now func() time.Time

	heading float32
	turned  float32
	weapon  int

	Running, Falling, CloseCombat bool
	InVehicle, InWater            bool
	Restrained                    bool

	view      player.ViewMode
	immune    bool
	fallUntil time.Time
	aimTask   string

	playing   map[player.AnimationRef]player.Animation
	overrides map[player.LocomotionKind]string

	events *utils.CircularQueue[string]
}

// NewCharacter returns an unarmed character standing still.
func NewCharacter(now func() time.Time) *Character {
	return &Character{
		now:       now,
		view:      player.ViewModeThirdPersonNear,
		playing:   make(map[player.AnimationRef]player.Animation),
		overrides: make(map[player.LocomotionKind]string),
		events:    utils.NewCircularQueue[string](maxEvents),
	}
}

func (ch *Character) event(format string, args ...any) {
	_ = ch.events.Append(ch.now().Format("15:04:05.000") + " " + fmt.Sprintf(format, args...))
}

// NextWeapon equips the next weapon in the rotation.
func (ch *Character) NextWeapon() {
	ch.weapon = (ch.weapon + 1) % len(weapons)
	ch.event("equip %s", weapons[ch.weapon])
}

func (ch *Character) PlayAnimation(a player.Animation) error {
	ch.playing[a.AnimationRef] = a
	ch.event("play %s/%s", a.Set, a.Clip)
	return nil
}

func (ch *Character) ClearAnimation(set, clip string) error {
	delete(ch.playing, player.AnimationRef{Set: set, Clip: clip})
	return nil
}

func (ch *Character) IsPlayingAnimation(set, clip string) bool {
	_, ok := ch.playing[player.AnimationRef{Set: set, Clip: clip}]
	return ok
}

func (ch *Character) ClearTasks() {
	clear(ch.playing)
	ch.aimTask = ""
}

func (ch *Character) SetLocomotionOverride(kind player.LocomotionKind, clipset string) error {
	if ch.overrides[kind] != clipset {
		ch.event("%s clipset %s", kind, clipset)
	}
	ch.overrides[kind] = clipset
	return nil
}

func (ch *Character) ResetLocomotionOverride(kind player.LocomotionKind) error {
	delete(ch.overrides, kind)
	return nil
}

func (ch *Character) BeginScriptedAimPose(task string) error {
	ch.aimTask = task
	ch.event("aim pose %s", task)
	return nil
}

func (ch *Character) ForceUncontrolledFall(d time.Duration) {
	ch.fallUntil = ch.now().Add(d)
	ch.event("fall for %v", d)
}

func (ch *Character) SetDamageImmune(immune bool) {
	if immune != ch.immune {
		ch.event("damage immune %v", immune)
	}
	ch.immune = immune
}

func (ch *Character) IsUncontrolledFall() bool {
	return ch.Falling || ch.now().Before(ch.fallUntil)
}

func (ch *Character) IsInCloseCombat() bool   { return ch.CloseCombat }
func (ch *Character) IsInWater() bool         { return ch.InWater }
func (ch *Character) IsSwimming() bool        { return false }
func (ch *Character) IsUnderwater() bool      { return false }
func (ch *Character) IsInVehicle() bool       { return ch.InVehicle }
func (ch *Character) IsEnteringVehicle() bool { return false }
func (ch *Character) IsStealthGait() bool     { return false }
func (ch *Character) IsRunning() bool         { return ch.Running }
func (ch *Character) IsSprinting() bool       { return false }
func (ch *Character) IsArmed() bool           { return ch.weapon != 0 }
func (ch *Character) CurrentWeapon() string   { return weapons[ch.weapon] }
func (ch *Character) Heading() float32        { return ch.heading }

func (ch *Character) SetHeading(heading float32) {
	ch.turned += game.HeadingDelta(ch.heading, heading)
	ch.heading = game.NormalizeHeading(heading)
}

// Turned returns the signed rotation in degrees accumulated over every heading change, taking the
// shortest way round for each.
func (ch *Character) Turned() float32 { return ch.turned }

func (ch *Character) ViewMode() player.ViewMode { return ch.view }

func (ch *Character) SetViewMode(mode player.ViewMode) {
	ch.view = mode
	ch.event("view mode %d", mode)
}

func (ch *Character) DisableFirstPersonThisFrame() {}

// ToggleFirstPerson switches between the near third person and first person cameras.
func (ch *Character) ToggleFirstPerson() {
	if ch.view == player.ViewModeFirstPerson {
		ch.view = player.ViewModeThirdPersonNear
		return
	}
	ch.view = player.ViewModeFirstPerson
}

func (ch *Character) IsRestrained() bool    { return ch.Restrained }
func (ch *Character) IsUsingScenario() bool { return false }
