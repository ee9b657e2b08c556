// Package config provides YAML-based configuration loading and temperament
// presets for the pet simulation.
package config

// PetConfig contains all tunable parameters for the pet simulation.
type PetConfig struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Pet      PetBox         `yaml:"pet"`
	Bounce   BounceConfig   `yaml:"bounce"`
	Behavior BehaviorConfig `yaml:"behavior"`
	Viewport ViewportConfig `yaml:"viewport"`
}

// PhysicsConfig defines the motion integration parameters.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`              // px/s², downward-positive
	JumpForce          float64 `yaml:"jump_force"`           // px/s, negative = upward
	MaxHorizontalSpeed float64 `yaml:"max_horizontal_speed"` // px/s, jump launch cap
	MaxDeltaTime       float64 `yaml:"max_delta_time"`       // seconds, integration step cap
}

// PetBox defines the pet's bounding box in simulation pixels.
type PetBox struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BounceConfig defines wall collision response.
// Retention is the fraction of speed kept (direction reversed) per bounce.
type BounceConfig struct {
	LeftRetention  float64 `yaml:"left_retention"`
	RightRetention float64 `yaml:"right_retention"`
	FloorMargin    float64 `yaml:"floor_margin"` // px lifted above the bottom edge
}

// BehaviorConfig defines the spontaneous jump behavior and the
// animation classifier threshold.
type BehaviorConfig struct {
	JumpChance    float64 `yaml:"jump_chance"`    // Bernoulli p per grounded frame
	InvertChance  float64 `yaml:"invert_chance"`  // chance a launch flips against facing
	MoveThreshold float64 `yaml:"move_threshold"` // px/s, below this the pet idles
}

// ViewportConfig defines viewport validation.
// Dimensions at or below MinSize are replaced with the defaults so a
// not-yet-sized window never reaches the physics math.
type ViewportConfig struct {
	MinSize       float64 `yaml:"min_size"`
	DefaultWidth  float64 `yaml:"default_width"`
	DefaultHeight float64 `yaml:"default_height"`
}

// Temperament represents a named behavior preset.
type Temperament string

const (
	TemperamentCalm   Temperament = "calm"
	TemperamentNormal Temperament = "normal"
	TemperamentHyper  Temperament = "hyper"
)

// ApplyTemperament scales the jump behavior for a named preset.
// Unknown temperaments leave the config untouched.
func ApplyTemperament(cfg *PetConfig, t Temperament) {
	switch t {
	case TemperamentCalm:
		cfg.Behavior.JumpChance *= 0.3
		cfg.Physics.JumpForce *= 0.8
	case TemperamentNormal:
		// Config values as-is
	case TemperamentHyper:
		cfg.Behavior.JumpChance *= 3.0
		cfg.Physics.JumpForce *= 1.2
		cfg.Physics.MaxHorizontalSpeed *= 1.5
	}
}

// Validate replaces nonsensical values with defaults so a hand-edited
// config cannot break the simulation invariants.
func (c *PetConfig) Validate() {
	def := DefaultPetConfig()

	if c.Physics.Gravity <= 0 {
		c.Physics.Gravity = def.Physics.Gravity
	}
	if c.Physics.JumpForce >= 0 {
		c.Physics.JumpForce = def.Physics.JumpForce
	}
	if c.Physics.MaxHorizontalSpeed <= 0 {
		c.Physics.MaxHorizontalSpeed = def.Physics.MaxHorizontalSpeed
	}
	if c.Physics.MaxDeltaTime <= 0 {
		c.Physics.MaxDeltaTime = def.Physics.MaxDeltaTime
	}
	if c.Pet.Width <= 0 {
		c.Pet.Width = def.Pet.Width
	}
	if c.Pet.Height <= 0 {
		c.Pet.Height = def.Pet.Height
	}
	if c.Bounce.LeftRetention < 0 || c.Bounce.LeftRetention > 1 {
		c.Bounce.LeftRetention = def.Bounce.LeftRetention
	}
	if c.Bounce.RightRetention < 0 || c.Bounce.RightRetention > 1 {
		c.Bounce.RightRetention = def.Bounce.RightRetention
	}
	if c.Bounce.FloorMargin < 0 {
		c.Bounce.FloorMargin = def.Bounce.FloorMargin
	}
	if c.Behavior.JumpChance < 0 || c.Behavior.JumpChance > 1 {
		c.Behavior.JumpChance = def.Behavior.JumpChance
	}
	if c.Behavior.InvertChance < 0 || c.Behavior.InvertChance > 1 {
		c.Behavior.InvertChance = def.Behavior.InvertChance
	}
	if c.Behavior.MoveThreshold < 0 {
		c.Behavior.MoveThreshold = def.Behavior.MoveThreshold
	}
	if c.Viewport.MinSize <= 0 {
		c.Viewport.MinSize = def.Viewport.MinSize
	}
	if c.Viewport.DefaultWidth <= c.Viewport.MinSize {
		c.Viewport.DefaultWidth = def.Viewport.DefaultWidth
	}
	if c.Viewport.DefaultHeight <= c.Viewport.MinSize {
		c.Viewport.DefaultHeight = def.Viewport.DefaultHeight
	}
}
