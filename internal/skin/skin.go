// Package skin provides the pet's terminal appearance. Skins register
// themselves in init() functions, allowing the platform to discover and
// instantiate them without hardcoded dependencies.
package skin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/sim"
)

// Skin renders the pet for one animation state at a time.
// Sprites are rows of runes anchored at the pet's top-left cell; rows may
// have uneven widths, trailing spaces are not required.
type Skin interface {
	// ID returns a unique identifier for this skin (e.g., "blob").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Sprite returns the art for the given animation state.
	// frame selects the animation frame for states with a cycle (running);
	// implementations wrap it, so any non-negative value is valid.
	Sprite(state sim.AnimationState, frame int) []string

	// Color returns the skin's foreground color.
	Color() core.Color

	// Size returns the sprite footprint in cells (width, height).
	Size() (int, int)
}

// Info contains metadata about a registered skin.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a skin.
type Factory func() Skin

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a skin factory to the registry.
// Typically called from a skin's init() function.
// Panics if a skin with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("skin: %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered skins, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get instantiates a skin by its ID.
// Returns an error if the skin ID is not registered.
func Get(id string) (Skin, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("skin: unknown skin %q", id)
	}

	return f(), nil
}

// Exists checks if a skin with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// spriteSet is the common backing for built-in skins: one or more frames
// of art per animation state.
type spriteSet map[sim.AnimationState][][]string

// frameFor picks a frame from the set, wrapping the frame counter.
func (s spriteSet) frameFor(state sim.AnimationState, frame int) []string {
	frames, ok := s[state]
	if !ok || len(frames) == 0 {
		return nil
	}
	if frame < 0 {
		frame = 0
	}
	return frames[frame%len(frames)]
}
