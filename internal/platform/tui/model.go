package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/sim"
	"github.com/vovakirdan/tui-pet/internal/skin"
	"github.com/vovakirdan/tui-pet/internal/storage"
)

// runCycleTicks controls how many simulation ticks each run-animation
// frame lasts. At 60 fps this gives a 10 fps leg cycle.
const runCycleTicks = 6

// Model is the Bubble Tea model hosting the pet simulation.
// The terminal window is the pet's viewport: cell dimensions are mapped
// to simulation pixels via the runtime config cell scale.
type Model struct {
	sim       *sim.Simulator
	skin      skin.Skin
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	frame     sim.Frame
	tick      int
	showStats bool
	startedAt time.Time
	saved     bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model hosting the given simulator.
func NewModel(simulator *sim.Simulator, sk skin.Skin, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		sim:       simulator,
		skin:      sk,
		screen:    core.NewScreen(cfg.ScreenW, sceneRows(cfg.ScreenH)),
		store:     store,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		startedAt: time.Now(),
	}
}

// sceneRows returns the number of screen rows used by the pet scene.
// The bottom row is reserved for the help line.
func sceneRows(screenH int) int {
	return core.Max(1, screenH-1)
}

// ScenePx returns the pet scene size in simulation pixels for the given
// runtime config. Simulators hosted by this package must be sized with it
// so the floor lands on the drawn floor line.
func ScenePx(cfg core.RuntimeConfig) (float64, float64) {
	w := float64(cfg.ScreenW) * cfg.CellW
	h := float64(sceneRows(cfg.ScreenH)) * cfg.CellH
	return w, h
}

// viewportPx returns the scene size in simulation pixels.
func (m Model) viewportPx() (float64, float64) {
	return ScenePx(m.config)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveSession()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reset):
		w, h := m.viewportPx()
		m.frame = m.sim.Reset(w, h)

	case key.Matches(msg, m.keys.Stats):
		m.showStats = !m.showStats
	}

	return m, nil
}

// handleResize processes window resize events. The simulation reacts on
// the next tick through the new viewport dimensions; the pet is clamped
// into the smaller window by the boundary resolver, no reset needed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, sceneRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	w, h := m.viewportPx()
	m.frame = m.sim.Advance(w, h)
	m.tick++
	return m, tickCmd(m.config.TickRate)
}

// saveSession records the session's activity counters. Best-effort: the
// pet exits regardless of storage availability.
func (m *Model) saveSession() {
	if m.store == nil || m.saved {
		return
	}
	m.saved = true

	snap := m.sim.Snapshot()
	//nolint:errcheck // Best-effort save on exit
	m.store.SaveSession(storage.Session{
		SkinID:     m.skin.ID(),
		Duration:   int(time.Since(m.startedAt).Seconds()),
		Jumps:      int(snap.Jumps),
		Bounces:    int(snap.Bounces),
		DistancePx: snap.DistancePx,
	})
}

// View renders the scene plus the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.drawScene()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// drawScene renders the floor, the pet sprite, and the optional stats HUD
// into the screen buffer.
func (m Model) drawScene() {
	m.screen.Clear()

	// Floor line along the bottom of the scene
	floorRow := m.screen.Height() - 1
	m.screen.DrawHLine(0, floorRow, m.screen.Width(), '═', core.ColorGray)

	// Pet sprite, pixel position mapped to cells
	cellX := int(m.frame.X / m.config.CellW)
	cellY := int(m.frame.Y / m.config.CellH)
	rows := m.skin.Sprite(m.frame.Anim, m.tick/runCycleTicks)
	for dy, row := range rows {
		dx := 0
		for _, r := range row {
			if r != ' ' {
				m.screen.SetColored(cellX+dx, cellY+dy, r, m.skin.Color())
			}
			dx++
		}
	}

	if m.showStats {
		m.drawStats()
	}
}

// drawStats draws the stats HUD in the top-left corner.
func (m Model) drawStats() {
	snap := m.sim.Snapshot()
	lines := []string{
		fmt.Sprintf(" %s (%s) ", m.skin.Title(), snap.Anim),
		fmt.Sprintf(" pos %6.1f,%6.1f ", snap.X, snap.Y),
		fmt.Sprintf(" vel %6.1f,%6.1f ", snap.VelX, snap.VelY),
		fmt.Sprintf(" jumps %d  bounces %d ", snap.Jumps, snap.Bounces),
		fmt.Sprintf(" travelled %.0f px ", snap.DistancePx),
	}

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len(l))
	}
	m.screen.DrawBox(1, 0, boxW+2, len(lines)+2, core.ColorGray)
	for i, l := range lines {
		m.screen.DrawTextColored(2, i+1, l, core.ColorWhite)
	}
}

// Run starts the Bubble Tea program hosting the pet.
func Run(simulator *sim.Simulator, sk skin.Skin, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(simulator, sk, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
