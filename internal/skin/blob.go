package skin

import (
	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/sim"
)

// Blob is the default skin: a round creature with drifting eyes.
type Blob struct {
	set spriteSet
}

// NewBlob creates the blob skin.
func NewBlob() *Blob {
	return &Blob{set: blobSprites}
}

func (b *Blob) ID() string        { return "blob" }
func (b *Blob) Title() string     { return "Blob" }
func (b *Blob) Color() core.Color { return core.ColorBrightGreen }
func (b *Blob) Size() (int, int)  { return 10, 5 }

func (b *Blob) Sprite(state sim.AnimationState, frame int) []string {
	return b.set.frameFor(state, frame)
}

var blobSprites = spriteSet{
	sim.IdleRight: {{
		`   ____   `,
		`  /    \  `,
		` |  o o | `,
		` |   .. | `,
		`  \____/  `,
	}},
	sim.IdleLeft: {{
		`   ____   `,
		`  /    \  `,
		` | o o  | `,
		` | ..   | `,
		`  \____/  `,
	}},
	sim.RunRight: {
		{
			`   ____   `,
			`  /    \~ `,
			` |  o o | `,
			` |   .. | `,
			`  \_/\_/  `,
		},
		{
			`   ____   `,
			` ~/    \  `,
			` |  o o | `,
			` |   .. | `,
			`  /\__/\  `,
		},
	},
	sim.RunLeft: {
		{
			`   ____   `,
			` ~/    \  `,
			` | o o  | `,
			` | ..   | `,
			`  \_/\_/  `,
		},
		{
			`   ____   `,
			`  /    \~ `,
			` | o o  | `,
			` | ..   | `,
			`  /\__/\  `,
		},
	},
	sim.JumpRight: {{
		`   ____ /`,
		`  /    \/`,
		` |  ^ ^ |`,
		` |   o  |`,
		`  \____/`,
	}},
	sim.JumpLeft: {{
		`\ ____`,
		` \/    \`,
		` | ^ ^  |`,
		` |  o   |`,
		`  \____/`,
	}},
	sim.FallRight: {{
		`   ____   `,
		`  /    \  `,
		` |  o o | `,
		` |   O  | `,
		`  \~~~~/  `,
	}},
	sim.FallLeft: {{
		`   ____   `,
		`  /    \  `,
		` | o o  | `,
		` |  O   | `,
		`  \~~~~/  `,
	}},
}

func init() {
	Register("blob", func() Skin {
		return NewBlob()
	})
}
