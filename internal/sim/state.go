// Package sim implements the pet simulation core: gravity-driven motion,
// spontaneous jumps, viewport boundary resolution with energy loss, and
// animation state classification. The core is pure logic with no external
// dependencies; the platform supplies viewport size and wall-clock time.
package sim

import (
	"time"

	"github.com/vovakirdan/tui-pet/internal/core"
)

// AnimationState is one of the eight discrete animation labels the
// renderer consumes. Exactly one label is active per frame.
type AnimationState int

const (
	IdleRight AnimationState = iota
	IdleLeft
	RunRight
	RunLeft
	JumpRight
	JumpLeft
	FallRight
	FallLeft
)

// String returns the fixed string identifier for this animation state.
func (a AnimationState) String() string {
	switch a {
	case IdleRight:
		return "idle-right"
	case IdleLeft:
		return "idle-left"
	case RunRight:
		return "run-right"
	case RunLeft:
		return "run-left"
	case JumpRight:
		return "jump-right"
	case JumpLeft:
		return "jump-left"
	case FallRight:
		return "fall-right"
	case FallLeft:
		return "fall-left"
	default:
		return "idle-right"
	}
}

// Right returns true if this state faces right.
func (a AnimationState) Right() bool {
	switch a {
	case IdleRight, RunRight, JumpRight, FallRight:
		return true
	default:
		return false
	}
}

// AllStates lists every animation state, in label order.
// Skins use this to verify sprite coverage.
func AllStates() []AnimationState {
	return []AnimationState{
		IdleRight, IdleLeft,
		RunRight, RunLeft,
		JumpRight, JumpLeft,
		FallRight, FallLeft,
	}
}

// PetState is the single mutable record owned by the simulator.
// Position is the top-left corner of the pet's bounding box in viewport
// pixels; velocity is in pixels per second.
type PetState struct {
	Pos        core.Vec2
	Vel        core.Vec2
	OnGround   bool
	Facing     bool // true = facing right
	Anim       AnimationState
	Viewport   core.Vec2 // last-known sanitized viewport size
	LastUpdate time.Time
}

// Frame is the per-step output consumed by the renderer: the pet's
// top-left position and the active animation label.
type Frame struct {
	X, Y float64
	Anim AnimationState
}

// Classify maps a velocity/ground-contact/facing triple to an animation
// state. Pure and deterministic; the simulator never sets the animation
// label any other way.
//
// Airborne states follow vertical velocity (up = jumping, down = falling)
// and face the current facing direction. Grounded states run when the
// horizontal speed exceeds moveThreshold, with the run direction taken
// from the velocity sign; otherwise the pet idles facing its direction.
func Classify(onGround bool, vel core.Vec2, facing bool, moveThreshold float64) AnimationState {
	if !onGround {
		if vel.Y < 0 {
			if facing {
				return JumpRight
			}
			return JumpLeft
		}
		if facing {
			return FallRight
		}
		return FallLeft
	}

	if core.AbsF(vel.X) > moveThreshold {
		if vel.X >= 0 {
			return RunRight
		}
		return RunLeft
	}

	if facing {
		return IdleRight
	}
	return IdleLeft
}
