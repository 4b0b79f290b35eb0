package player

import "fmt"

// Posture is the body stance of the character.
type Posture uint32

const (
	PostureIdle Posture = iota
	PostureStealth
	PostureCrouch
	PostureProne
)

func (p Posture) String() string {
	switch p {
	case PostureIdle:
		return "idle"
	case PostureStealth:
		return "stealth"
	case PostureCrouch:
		return "crouch"
	case PostureProne:
		return "prone"
	}
	return fmt.Sprintf("posture(%d)", uint32(p))
}

// Valid returns true if the posture is one of the known postures.
func (p Posture) Valid() bool {
	return p <= PostureProne
}

// Orientation is the side the character lies on while prone.
type Orientation uint8

const (
	// OrientationOnFront is lying face down.
	OrientationOnFront Orientation = iota
	// OrientationOnBack is lying face up.
	OrientationOnBack
)

func (o Orientation) String() string {
	if o == OrientationOnBack {
		return "on_back"
	}
	return "on_front"
}

// Flipped returns the opposite orientation.
func (o Orientation) Flipped() Orientation {
	if o == OrientationOnBack {
		return OrientationOnFront
	}
	return OrientationOnBack
}

// CrawlDirection is the direction of a single crawl cycle.
type CrawlDirection uint8

const (
	CrawlForward CrawlDirection = iota
	CrawlBackward
)

func (d CrawlDirection) String() string {
	if d == CrawlBackward {
		return "backward"
	}
	return "forward"
}

// Control is a logical input the controller reads from an InputProvider.
type Control uint8

const (
	// ControlStance cycles and holds the posture.
	ControlStance Control = iota
	// ControlCancel returns the character to idle.
	ControlCancel
	// ControlFlip flips the prone orientation.
	ControlFlip
	// ControlAim raises the weapon while prone.
	ControlAim
	ControlMoveForward
	ControlMoveBackward
	ControlMoveLeft
	ControlMoveRight
)

func (c Control) String() string {
	switch c {
	case ControlStance:
		return "stance"
	case ControlCancel:
		return "cancel"
	case ControlFlip:
		return "flip"
	case ControlAim:
		return "aim"
	case ControlMoveForward:
		return "move_forward"
	case ControlMoveBackward:
		return "move_backward"
	case ControlMoveLeft:
		return "move_left"
	case ControlMoveRight:
		return "move_right"
	}
	return fmt.Sprintf("control(%d)", uint8(c))
}

// ViewMode is the follow camera mode.
type ViewMode uint8

const (
	ViewModeThirdPersonNear ViewMode = iota
	ViewModeThirdPersonMedium
	ViewModeThirdPersonFar
	ViewModeCinematic
	ViewModeFirstPerson
)

// LocomotionKind is the locomotion slot an override clipset is applied to.
type LocomotionKind uint8

const (
	LocomotionMovement LocomotionKind = iota
	LocomotionStrafe
)

func (k LocomotionKind) String() string {
	if k == LocomotionStrafe {
		return "strafe"
	}
	return "movement"
}
