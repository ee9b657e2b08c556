package skin

import (
	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/sim"
)

// Cat is a cat skin with a trailing tail that swaps sides with facing.
type Cat struct {
	set spriteSet
}

// NewCat creates the cat skin.
func NewCat() *Cat {
	return &Cat{set: catSprites}
}

func (c *Cat) ID() string        { return "cat" }
func (c *Cat) Title() string     { return "Cat" }
func (c *Cat) Color() core.Color { return core.ColorOrange }
func (c *Cat) Size() (int, int)  { return 10, 5 }

func (c *Cat) Sprite(state sim.AnimationState, frame int) []string {
	return c.set.frameFor(state, frame)
}

var catSprites = spriteSet{
	sim.IdleRight: {{
		`    /\_/\ `,
		`   ( o.o )`,
		`    > ^ < `,
		`   /|   | `,
		` (_/|___| `,
	}},
	sim.IdleLeft: {{
		` /\_/\    `,
		`( o.o )   `,
		` > ^ <    `,
		` |   |\   `,
		` |___|\_) `,
	}},
	sim.RunRight: {
		{
			`    /\_/\ `,
			`   ( o.o )`,
			`  ~ > - < `,
			`   /|   |\`,
			`   / \ / \`,
		},
		{
			`    /\_/\ `,
			`   ( o.o )`,
			` ~  > - < `,
			`   \|   |/`,
			`   \ / \ /`,
		},
	},
	sim.RunLeft: {
		{
			` /\_/\    `,
			`( o.o )   `,
			` > - < ~  `,
			`/|   |\   `,
			`/ \ / \   `,
		},
		{
			` /\_/\    `,
			`( o.o )   `,
			` > - <  ~ `,
			`\|   |/   `,
			`\ / \ /   `,
		},
	},
	sim.JumpRight: {{
		`    /\_/\/`,
		`   ( O.O )`,
		`    > ^ < `,
		`    |   | `,
		`    \\ // `,
	}},
	sim.JumpLeft: {{
		`\/\_/\    `,
		`( O.O )   `,
		` > ^ <    `,
		` |   |    `,
		` \\ //    `,
	}},
	sim.FallRight: {{
		`    /\_/\ `,
		`   ( O.O )`,
		`    > o < `,
		`   /|   |\`,
		`  ~ ~ ~ ~ `,
	}},
	sim.FallLeft: {{
		` /\_/\    `,
		`( O.O )   `,
		` > o <    `,
		`/|   |\   `,
		` ~ ~ ~ ~  `,
	}},
}

func init() {
	Register("cat", func() Skin {
		return NewCat()
	})
}
