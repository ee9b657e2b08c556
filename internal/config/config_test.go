package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultPetConfig(t *testing.T) {
	cfg := DefaultPetConfig()

	if cfg.Physics.Gravity != 980.0 {
		t.Errorf("Gravity = %v, expected 980", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpForce != -500.0 {
		t.Errorf("JumpForce = %v, expected -500", cfg.Physics.JumpForce)
	}
	if cfg.Bounce.LeftRetention != 0.8 || cfg.Bounce.RightRetention != 0.5 {
		t.Errorf("Retention = %v/%v, expected 0.8/0.5",
			cfg.Bounce.LeftRetention, cfg.Bounce.RightRetention)
	}
	if cfg.Behavior.JumpChance != 0.01 {
		t.Errorf("JumpChance = %v, expected 0.01", cfg.Behavior.JumpChance)
	}
	if cfg.Viewport.DefaultWidth != 400 || cfg.Viewport.DefaultHeight != 300 {
		t.Errorf("Viewport defaults = %vx%v, expected 400x300",
			cfg.Viewport.DefaultWidth, cfg.Viewport.DefaultHeight)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg PetConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded default YAML does not parse: %v", err)
	}

	if cfg != DefaultPetConfig() {
		t.Errorf("Embedded default diverges from hardcoded default:\n  %+v\n  %+v",
			cfg, DefaultPetConfig())
	}
}

func TestApplyTemperament(t *testing.T) {
	base := DefaultPetConfig()

	calm := DefaultPetConfig()
	ApplyTemperament(&calm, TemperamentCalm)
	if calm.Behavior.JumpChance >= base.Behavior.JumpChance {
		t.Errorf("Calm JumpChance = %v, expected below %v",
			calm.Behavior.JumpChance, base.Behavior.JumpChance)
	}
	if calm.Physics.JumpForce <= base.Physics.JumpForce {
		t.Errorf("Calm JumpForce = %v, expected weaker than %v",
			calm.Physics.JumpForce, base.Physics.JumpForce)
	}

	normal := DefaultPetConfig()
	ApplyTemperament(&normal, TemperamentNormal)
	if normal != base {
		t.Error("Normal temperament should leave config untouched")
	}

	hyper := DefaultPetConfig()
	ApplyTemperament(&hyper, TemperamentHyper)
	if hyper.Behavior.JumpChance <= base.Behavior.JumpChance {
		t.Errorf("Hyper JumpChance = %v, expected above %v",
			hyper.Behavior.JumpChance, base.Behavior.JumpChance)
	}

	unknown := DefaultPetConfig()
	ApplyTemperament(&unknown, Temperament("grumpy"))
	if unknown != base {
		t.Error("Unknown temperament should leave config untouched")
	}
}

func TestValidateRepairsBadValues(t *testing.T) {
	def := DefaultPetConfig()

	tests := []struct {
		name   string
		mutate func(*PetConfig)
		check  func(PetConfig) bool
	}{
		{
			name:   "negative gravity",
			mutate: func(c *PetConfig) { c.Physics.Gravity = -10 },
			check:  func(c PetConfig) bool { return c.Physics.Gravity == def.Physics.Gravity },
		},
		{
			name:   "upward gravity direction on jump force",
			mutate: func(c *PetConfig) { c.Physics.JumpForce = 500 },
			check:  func(c PetConfig) bool { return c.Physics.JumpForce == def.Physics.JumpForce },
		},
		{
			name:   "zero pet width",
			mutate: func(c *PetConfig) { c.Pet.Width = 0 },
			check:  func(c PetConfig) bool { return c.Pet.Width == def.Pet.Width },
		},
		{
			name:   "retention above one",
			mutate: func(c *PetConfig) { c.Bounce.LeftRetention = 1.5 },
			check:  func(c PetConfig) bool { return c.Bounce.LeftRetention == def.Bounce.LeftRetention },
		},
		{
			name:   "jump chance above one",
			mutate: func(c *PetConfig) { c.Behavior.JumpChance = 2 },
			check:  func(c PetConfig) bool { return c.Behavior.JumpChance == def.Behavior.JumpChance },
		},
		{
			name:   "zero delta cap",
			mutate: func(c *PetConfig) { c.Physics.MaxDeltaTime = 0 },
			check:  func(c PetConfig) bool { return c.Physics.MaxDeltaTime == def.Physics.MaxDeltaTime },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPetConfig()
			tc.mutate(&cfg)
			cfg.Validate()
			if !tc.check(cfg) {
				t.Errorf("Validate() did not repair %s", tc.name)
			}
		})
	}
}

func TestLoadPetCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet.yaml")

	data := []byte(`
physics:
  gravity: 500.0
  jump_force: -300.0
  max_horizontal_speed: 150.0
  max_delta_time: 0.1
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}

	cfg, err := LoadPet(path)
	if err != nil {
		t.Fatalf("LoadPet() error: %v", err)
	}

	if cfg.Physics.Gravity != 500.0 {
		t.Errorf("Gravity = %v, expected 500 from custom config", cfg.Physics.Gravity)
	}
	// Omitted sections are repaired by validation
	if cfg.Pet.Width != 100.0 {
		t.Errorf("Pet.Width = %v, expected default 100 for omitted section", cfg.Pet.Width)
	}
}

func TestLoadPetMissingCustomPath(t *testing.T) {
	_, err := LoadPet("/nonexistent/pet.yaml")
	if err == nil {
		t.Error("LoadPet() with missing custom path should fail")
	}
}
