package sim

// Snapshot captures the complete simulation state for determinism testing,
// the stats HUD, and session persistence.
type Snapshot struct {
	X, Y       float64
	VelX, VelY float64
	OnGround   bool
	Facing     bool
	Anim       AnimationState
	ViewportW  float64
	ViewportH  float64
	Jumps      uint64
	Bounces    uint64
	DistancePx float64
}

// Snapshot returns the current simulation snapshot.
func (s *Simulator) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		X:          s.state.Pos.X,
		Y:          s.state.Pos.Y,
		VelX:       s.state.Vel.X,
		VelY:       s.state.Vel.Y,
		OnGround:   s.state.OnGround,
		Facing:     s.state.Facing,
		Anim:       s.state.Anim,
		ViewportW:  s.state.Viewport.X,
		ViewportH:  s.state.Viewport.Y,
		Jumps:      s.jumps,
		Bounces:    s.bounces,
		DistancePx: s.distance,
	}
}
