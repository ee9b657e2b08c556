package sim

import (
	"math"
	"sync"
	"time"

	"github.com/vovakirdan/tui-pet/internal/config"
	"github.com/vovakirdan/tui-pet/internal/core"
)

// Rand is the source of randomness for jump triggers and launch velocities.
// Satisfied by *math/rand.Rand; injectable so tests can script the draws.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithRand sets the random source. Defaults to a time-seeded math/rand.Rand
// in the platform layer; tests pass a scripted source.
func WithRand(r Rand) Option {
	return func(s *Simulator) {
		s.rng = r
	}
}

// WithNow sets the wall-clock source used by the frame clock.
func WithNow(now func() time.Time) Option {
	return func(s *Simulator) {
		s.now = now
	}
}

// Simulator owns one PetState and advances it frame by frame.
// All access goes through the exclusive lock: the host may call Advance
// from its tick loop and Reset from input callbacks concurrently.
type Simulator struct {
	mu    sync.Mutex
	cfg   config.PetConfig
	state PetState
	rng   Rand
	now   func() time.Time

	// Cumulative activity counters, reported via Snapshot.
	jumps    uint64
	bounces  uint64
	distance float64
}

// New creates a simulator and places the pet at its resting position
// within the given viewport.
func New(cfg config.PetConfig, viewportW, viewportH float64, opts ...Option) *Simulator {
	cfg.Validate()

	s := &Simulator{
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = newDefaultRand()
	}

	s.reset(viewportW, viewportH)
	return s
}

// Advance runs one simulation step using current wall-clock time and
// returns the updated position and animation label.
func (s *Simulator) Advance(viewportW, viewportH float64) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	vw, vh := s.sanitizeViewport(viewportW, viewportH)

	// Cache the viewport so transient zero sizes during host resize
	// never reach the physics math.
	if core.AbsF(s.state.Viewport.X-vw) > 1.0 || core.AbsF(s.state.Viewport.Y-vh) > 1.0 {
		s.state.Viewport = core.Vec2{X: vw, Y: vh}
	}

	dt := s.step()
	prev := s.state.Pos

	s.integrate(dt)
	s.resolveBounds(vw, vh)
	s.state.Anim = Classify(s.state.OnGround, s.state.Vel, s.state.Facing, s.cfg.Behavior.MoveThreshold)

	dx := s.state.Pos.X - prev.X
	dy := s.state.Pos.Y - prev.Y
	s.distance += math.Hypot(dx, dy)

	return s.frame()
}

// Reset reinitializes the pet from the given viewport size: centered
// horizontally, resting on the floor, zero velocity, idle facing right.
func (s *Simulator) Reset(viewportW, viewportH float64) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset(viewportW, viewportH)
	return s.frame()
}

// reset is the construction rule shared by New and Reset.
// Caller must hold the lock (or be the constructor).
func (s *Simulator) reset(viewportW, viewportH float64) {
	vw, vh := s.sanitizeViewport(viewportW, viewportH)

	s.state = PetState{
		Pos: core.Vec2{
			X: vw/2 - s.cfg.Pet.Width/2,
			Y: vh - s.cfg.Pet.Height,
		},
		Vel:        core.Vec2{},
		OnGround:   true,
		Facing:     true,
		Anim:       IdleRight,
		Viewport:   core.Vec2{X: vw, Y: vh},
		LastUpdate: s.now(),
	}
}

// step measures the elapsed wall time since the previous frame and
// returns it clamped to the configured maximum. The clamp absorbs stalls
// (process suspension) so a single oversized step cannot tunnel the pet
// through a boundary.
func (s *Simulator) step() float64 {
	t := s.now()
	dt := t.Sub(s.state.LastUpdate).Seconds()
	s.state.LastUpdate = t
	return core.ClampF(dt, 0, s.cfg.Physics.MaxDeltaTime)
}

// integrate applies gravity and the spontaneous jump trial to velocity,
// then integrates velocity into position (semi-implicit Euler).
func (s *Simulator) integrate(dt float64) {
	if !s.state.OnGround {
		s.state.Vel.Y += s.cfg.Physics.Gravity * dt
	}

	// Jump trial: one grounded Bernoulli draw per frame. The chance is
	// per-frame rather than time-normalized, matching the renderer's
	// frame pacing.
	if s.state.OnGround && s.rng.Float64() < s.cfg.Behavior.JumpChance {
		s.state.Vel.Y = s.cfg.Physics.JumpForce
		s.state.Vel.X = s.launchVelocity()
		s.state.OnGround = false
		s.jumps++
	}

	s.state.Pos = s.state.Pos.Add(s.state.Vel.Scale(dt))
}

// launchVelocity draws the horizontal velocity for a jump: magnitude
// uniform in [0, max_horizontal_speed), signed by the facing direction,
// occasionally inverted and halved for an into-the-wall hop.
func (s *Simulator) launchVelocity() float64 {
	v := s.rng.Float64() * s.cfg.Physics.MaxHorizontalSpeed
	if !s.state.Facing {
		v = -v
	}
	if s.rng.Float64() < s.cfg.Behavior.InvertChance {
		v = -v / 2
	}
	return v
}

// resolveBounds clamps the pet to the viewport and converts wall
// collisions into velocity changes or ground contact. Each axis is
// resolved independently; opposite edges of one axis cannot both trigger
// in a single frame.
func (s *Simulator) resolveBounds(vw, vh float64) {
	// Floor (maximum y in screen coordinates)
	floor := vh - s.cfg.Pet.Height - s.cfg.Bounce.FloorMargin
	if s.state.Pos.Y > floor {
		s.state.Pos.Y = floor
		s.state.Vel.Y = 0
		s.state.OnGround = true
	}

	// Ceiling: clamp without bounce
	if s.state.Pos.Y < 0 {
		s.state.Pos.Y = 0
		s.state.Vel.Y = 0
	}

	// Left wall: bounce with energy loss, face right
	if s.state.Pos.X < 0 {
		s.state.Pos.X = 0
		s.state.Vel.X = -s.state.Vel.X * s.cfg.Bounce.LeftRetention
		s.state.Facing = true
		s.bounces++
	}

	// Right wall: bounce with more energy loss, face left
	rightBound := vw - s.cfg.Pet.Width
	if s.state.Pos.X > rightBound {
		s.state.Pos.X = rightBound
		s.state.Vel.X = -s.state.Vel.X * s.cfg.Bounce.RightRetention
		s.state.Facing = false
		s.bounces++
	}
}

// sanitizeViewport replaces zero or near-zero dimensions with the
// configured defaults. A not-yet-sized host window reports transient
// tiny sizes that must never reach the physics math.
func (s *Simulator) sanitizeViewport(w, h float64) (float64, float64) {
	if w <= s.cfg.Viewport.MinSize {
		w = s.cfg.Viewport.DefaultWidth
	}
	if h <= s.cfg.Viewport.MinSize {
		h = s.cfg.Viewport.DefaultHeight
	}
	return w, h
}

// frame builds the per-step output. Caller must hold the lock.
func (s *Simulator) frame() Frame {
	return Frame{
		X:    s.state.Pos.X,
		Y:    s.state.Pos.Y,
		Anim: s.state.Anim,
	}
}

// Config returns the simulator's effective configuration.
func (s *Simulator) Config() config.PetConfig {
	return s.cfg
}
