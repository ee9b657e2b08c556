package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-pet/internal/config"
)

// stubRand replays a scripted sequence of draws, then keeps returning
// 0.99 (which suppresses jump trials at the default chance).
type stubRand struct {
	vals []float64
	i    int
}

func (r *stubRand) Float64() float64 {
	if r.i >= len(r.vals) {
		return 0.99
	}
	v := r.vals[r.i]
	r.i++
	return v
}

// noJump is a random source that never triggers the jump trial.
func noJump() *stubRand {
	return &stubRand{}
}

// fakeClock is a scriptable wall clock.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1000, 0)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestSim(r Rand, clock *fakeClock, w, h float64) *Simulator {
	return New(config.DefaultPetConfig(), w, h, WithRand(r), WithNow(clock.now))
}

func TestResetDeterminism(t *testing.T) {
	clock := newFakeClock()
	s := newTestSim(noJump(), clock, 400, 300)

	snap := s.Snapshot()
	if snap.X != 150 || snap.Y != 200 {
		t.Errorf("Start position = (%v, %v), expected (150, 200)", snap.X, snap.Y)
	}
	if !snap.OnGround {
		t.Error("Pet should start grounded")
	}
	if !snap.Facing {
		t.Error("Pet should start facing right")
	}
	if snap.VelX != 0 || snap.VelY != 0 {
		t.Errorf("Start velocity = (%v, %v), expected zero", snap.VelX, snap.VelY)
	}
	if snap.Anim != IdleRight {
		t.Errorf("Start animation = %v, expected idle-right", snap.Anim)
	}

	frame := s.Reset(800, 600)
	if frame.X != 350 || frame.Y != 500 {
		t.Errorf("Reset(800, 600) position = (%v, %v), expected (350, 500)", frame.X, frame.Y)
	}
	if frame.Anim != IdleRight {
		t.Errorf("Reset animation = %v, expected idle-right", frame.Anim)
	}
}

func TestIdleFrameLeavesPetInPlace(t *testing.T) {
	clock := newFakeClock()
	s := newTestSim(noJump(), clock, 400, 300)

	clock.advance(16 * time.Millisecond)
	frame := s.Advance(400, 300)

	if frame.X != 150 || frame.Y != 200 {
		t.Errorf("Position after idle frame = (%v, %v), expected (150, 200)", frame.X, frame.Y)
	}
	if got := frame.Anim.String(); got != "idle-right" {
		t.Errorf("Animation = %q, expected \"idle-right\"", got)
	}

	snap := s.Snapshot()
	if !snap.OnGround || snap.VelY != 0 {
		t.Errorf("Pet should remain grounded with zero vy, got grounded=%v vy=%v", snap.OnGround, snap.VelY)
	}
}

func TestJumpLaunchFacingRight(t *testing.T) {
	clock := newFakeClock()
	// Draws: jump trial (hit), magnitude, invert trial (miss)
	s := newTestSim(&stubRand{vals: []float64{0.0, 0.5, 0.99}}, clock, 400, 300)

	clock.advance(16 * time.Millisecond)
	s.Advance(400, 300)

	snap := s.Snapshot()
	if snap.OnGround {
		t.Fatal("Pet should be airborne after jump")
	}
	if snap.VelY != -500 {
		t.Errorf("VelY = %v, expected -500 (jump force)", snap.VelY)
	}
	if snap.VelX != 100 {
		t.Errorf("VelX = %v, expected 100 (0.5 * max speed, facing right)", snap.VelX)
	}
	if snap.Jumps != 1 {
		t.Errorf("Jumps = %d, expected 1", snap.Jumps)
	}
	if snap.Anim != JumpRight {
		t.Errorf("Animation = %v, expected jump-right", snap.Anim)
	}
}

func TestJumpLaunchInverted(t *testing.T) {
	clock := newFakeClock()
	// Invert trial hits: launch flips against facing and halves
	s := newTestSim(&stubRand{vals: []float64{0.0, 0.5, 0.05}}, clock, 400, 300)

	clock.advance(16 * time.Millisecond)
	s.Advance(400, 300)

	snap := s.Snapshot()
	if snap.VelX != -50 {
		t.Errorf("VelX = %v, expected -50 (inverted and halved)", snap.VelX)
	}
}

func TestJumpLaunchFacingLeft(t *testing.T) {
	clock := newFakeClock()
	s := newTestSim(&stubRand{vals: []float64{0.0, 0.5, 0.99}}, clock, 400, 300)
	s.state.Facing = false

	clock.advance(16 * time.Millisecond)
	s.Advance(400, 300)

	snap := s.Snapshot()
	if snap.VelX != -100 {
		t.Errorf("VelX = %v, expected -100 (signed by facing)", snap.VelX)
	}
	if snap.Anim != JumpLeft {
		t.Errorf("Animation = %v, expected jump-left", snap.Anim)
	}
}

func TestDeltaTimeClamp(t *testing.T) {
	clock := newFakeClock()
	s := newTestSim(&stubRand{vals: []float64{0.0, 0.5, 0.99}}, clock, 400, 300)

	// Jump so the pet is airborne
	clock.advance(16 * time.Millisecond)
	s.Advance(400, 300)
	before := s.Snapshot()

	// A 10-second stall must integrate at most a 0.05s step
	clock.advance(10 * time.Second)
	s.Advance(400, 300)
	after := s.Snapshot()

	wantVy := before.VelY + 980*0.05
	if after.VelY != wantVy {
		t.Errorf("VelY after stall = %v, expected %v (0.05s of gravity)", after.VelY, wantVy)
	}
	wantY := before.Y + wantVy*0.05
	if after.Y != wantY {
		t.Errorf("Y after stall = %v, expected %v (0.05s step)", after.Y, wantY)
	}
}

func TestBounceEnergyLossLeftWall(t *testing.T) {
	clock := newFakeClock()
	s := newTestSim(noJump(), clock, 400, 300)
	s.state.Pos.X = 5
	s.state.Vel.X = -200
	s.state.Facing = false

	clock.advance(50 * time.Millisecond)
	s.Advance(400, 300)

	snap := s.Snapshot()
	if snap.X != 0 {
		t.Errorf("X = %v, expected clamped to 0", snap.X)
	}
	if snap.VelX != 160 {
		t.Errorf("VelX = %v, expected 160 (rebound at 0.8 retention)", snap.VelX)
	}
	if !snap.Facing {
		t.Error("Left-wall bounce should force facing right")
	}
	if snap.Bounces != 1 {
		t.Errorf("Bounces = %d, expected 1", snap.Bounces)
	}
}

func TestBounceEnergyLossRightWall(t *testing.T) {
	clock := newFakeClock()
	s := newTestSim(noJump(), clock, 400, 300)
	s.state.Pos.X = 295
	s.state.Vel.X = 200

	clock.advance(50 * time.Millisecond)
	s.Advance(400, 300)

	snap := s.Snapshot()
	if snap.X != 300 {
		t.Errorf("X = %v, expected clamped to 300 (width - pet width)", snap.X)
	}
	if snap.VelX != -100 {
		t.Errorf("VelX = %v, expected -100 (rebound at 0.5 retention)", snap.VelX)
	}
	if snap.Facing {
		t.Error("Right-wall bounce should force facing left")
	}
}

func TestCeilingClampNoBounce(t *testing.T) {
	clock := newFakeClock()
	s := newTestSim(noJump(), clock, 400, 300)
	s.state.Pos.Y = 2
	s.state.Vel.Y = -300
	s.state.OnGround = false

	clock.advance(50 * time.Millisecond)
	s.Advance(400, 300)

	snap := s.Snapshot()
	if snap.Y != 0 {
		t.Errorf("Y = %v, expected clamped to 0", snap.Y)
	}
	if snap.VelY != 0 {
		t.Errorf("VelY = %v, expected zeroed at ceiling", snap.VelY)
	}
	if snap.OnGround {
		t.Error("Ceiling contact should not ground the pet")
	}
}

func TestViewportSanitized(t *testing.T) {
	clock := newFakeClock()
	s := newTestSim(noJump(), clock, 0, 0)

	// Defaults must replace the invalid size at construction
	snap := s.Snapshot()
	if snap.ViewportW != 400 || snap.ViewportH != 300 {
		t.Errorf("Viewport = %vx%v, expected defaults 400x300", snap.ViewportW, snap.ViewportH)
	}
	if snap.X != 150 || snap.Y != 200 {
		t.Errorf("Position = (%v, %v), expected (150, 200) from defaults", snap.X, snap.Y)
	}

	// Transient near-zero sizes during advance must not reach the physics
	clock.advance(16 * time.Millisecond)
	frame := s.Advance(1, 1)
	if frame.X != 150 || frame.Y != 200 {
		t.Errorf("Position after transient size = (%v, %v), expected unchanged", frame.X, frame.Y)
	}
}

func TestViewportResizeCached(t *testing.T) {
	clock := newFakeClock()
	s := newTestSim(noJump(), clock, 400, 300)

	clock.advance(16 * time.Millisecond)
	s.Advance(800, 600)

	snap := s.Snapshot()
	if snap.ViewportW != 800 || snap.ViewportH != 600 {
		t.Errorf("Viewport = %vx%v, expected cached resize to 800x600", snap.ViewportW, snap.ViewportH)
	}
}

func TestBoundsInvariant(t *testing.T) {
	clock := newFakeClock()
	s := New(config.DefaultPetConfig(), 400, 300,
		WithRand(NewSeededRand(12345)), WithNow(clock.now))

	viewports := []struct{ w, h float64 }{
		{400, 300},
		{800, 600},
		{400, 300},
	}

	for _, vp := range viewports {
		for i := 0; i < 2000; i++ {
			clock.advance(16 * time.Millisecond)
			s.Advance(vp.w, vp.h)

			snap := s.Snapshot()
			if snap.X < 0 || snap.X > vp.w-100 {
				t.Fatalf("X = %v out of [0, %v] at frame %d (viewport %vx%v)", snap.X, vp.w-100, i, vp.w, vp.h)
			}
			if snap.Y < 0 || snap.Y > vp.h-100 {
				t.Fatalf("Y = %v out of [0, %v] at frame %d (viewport %vx%v)", snap.Y, vp.h-100, i, vp.w, vp.h)
			}
			if snap.OnGround && snap.VelY != 0 {
				t.Fatalf("Grounded with VelY = %v at frame %d", snap.VelY, i)
			}
		}
	}
}

func TestSeededDeterminism(t *testing.T) {
	clock1 := newFakeClock()
	clock2 := newFakeClock()

	s1 := New(config.DefaultPetConfig(), 400, 300,
		WithRand(NewSeededRand(777)), WithNow(clock1.now))
	s2 := New(config.DefaultPetConfig(), 400, 300,
		WithRand(NewSeededRand(777)), WithNow(clock2.now))

	for i := 0; i < 500; i++ {
		clock1.advance(16 * time.Millisecond)
		clock2.advance(16 * time.Millisecond)
		s1.Advance(400, 300)
		s2.Advance(400, 300)
	}

	if s1.Snapshot() != s2.Snapshot() {
		t.Errorf("Same seed diverged:\n  %+v\n  %+v", s1.Snapshot(), s2.Snapshot())
	}
}

func TestTemperamentAffectsJumpChance(t *testing.T) {
	calm := config.DefaultPetConfig()
	config.ApplyTemperament(&calm, config.TemperamentCalm)

	hyper := config.DefaultPetConfig()
	config.ApplyTemperament(&hyper, config.TemperamentHyper)

	if calm.Behavior.JumpChance >= hyper.Behavior.JumpChance {
		t.Errorf("Calm jump chance %v should be below hyper %v",
			calm.Behavior.JumpChance, hyper.Behavior.JumpChance)
	}

	// A calm pet must still be simulated within bounds
	clock := newFakeClock()
	s := New(calm, 400, 300, WithRand(NewSeededRand(1)), WithNow(clock.now))
	for i := 0; i < 500; i++ {
		clock.advance(16 * time.Millisecond)
		s.Advance(400, 300)
	}
	snap := s.Snapshot()
	if snap.X < 0 || snap.X > 300 || snap.Y < 0 || snap.Y > 200 {
		t.Errorf("Calm pet out of bounds: (%v, %v)", snap.X, snap.Y)
	}
}
