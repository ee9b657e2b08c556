package skin

import (
	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/sim"
)

// Ghost is a floating sheet skin with a ragged hem.
type Ghost struct {
	set spriteSet
}

// NewGhost creates the ghost skin.
func NewGhost() *Ghost {
	return &Ghost{set: ghostSprites}
}

func (g *Ghost) ID() string        { return "ghost" }
func (g *Ghost) Title() string     { return "Ghost" }
func (g *Ghost) Color() core.Color { return core.ColorBrightCyan }
func (g *Ghost) Size() (int, int)  { return 10, 5 }

func (g *Ghost) Sprite(state sim.AnimationState, frame int) []string {
	return g.set.frameFor(state, frame)
}

var ghostSprites = spriteSet{
	sim.IdleRight: {{
		`   .-""-. `,
		`  /      \`,
		`  |  o o |`,
		`  |   __ |`,
		`  \_^^^^_/`,
	}},
	sim.IdleLeft: {{
		` .-""-.   `,
		`/      \  `,
		`| o o  |  `,
		`| __   |  `,
		`\_^^^^_/  `,
	}},
	sim.RunRight: {
		{
			`   .-""-. `,
			`  /      \`,
			` ~|  o o |`,
			`  |   o  |`,
			`  \_^v^v_/`,
		},
		{
			`   .-""-. `,
			`  /      \`,
			`~ |  o o |`,
			`  |   o  |`,
			`  \_v^v^_/`,
		},
	},
	sim.RunLeft: {
		{
			` .-""-.   `,
			`/      \  `,
			`| o o  |~ `,
			`|  o   |  `,
			`\_^v^v_/  `,
		},
		{
			` .-""-.   `,
			`/      \  `,
			`| o o  | ~`,
			`|  o   |  `,
			`\_v^v^_/  `,
		},
	},
	sim.JumpRight: {{
		`   .-""-./`,
		`  /      \`,
		`  |  ^ ^ |`,
		`  |   o  |`,
		`  \_~~~~_/`,
	}},
	sim.JumpLeft: {{
		`\.-""-.   `,
		`/      \  `,
		`| ^ ^  |  `,
		`|  o   |  `,
		`\_~~~~_/  `,
	}},
	sim.FallRight: {{
		`   .-""-. `,
		`  /      \`,
		`  |  O O |`,
		`  |   ~  |`,
		`  \_,,,,_/`,
	}},
	sim.FallLeft: {{
		` .-""-.   `,
		`/      \  `,
		`| O O  |  `,
		`|  ~   |  `,
		`\_,,,,_/  `,
	}},
}

func init() {
	Register("ghost", func() Skin {
		return NewGhost()
	})
}
