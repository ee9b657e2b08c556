package core

// RuntimeConfig contains configuration passed to the platform at startup.
// The terminal is the pet's viewport; CellW/CellH define how many simulation
// pixels one terminal cell covers, so the physics stays in pixel units
// regardless of terminal size.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic simulation (0 = time-based)
	CellW    float64 // Simulation pixels per cell, horizontally
	CellH    float64 // Simulation pixels per cell, vertically
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		CellW:    10,
		CellH:    20,
	}
}

// ViewportPx returns the viewport size in simulation pixels.
func (c RuntimeConfig) ViewportPx() (float64, float64) {
	return float64(c.ScreenW) * c.CellW, float64(c.ScreenH) * c.CellH
}
