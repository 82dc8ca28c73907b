package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/termgames/platformer/internal/core"
	"github.com/termgames/platformer/internal/game"
	"github.com/termgames/platformer/internal/storage"
)

// Model is the Bubble Tea model driving a platformer session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	status     game.Status
	quitting   bool
	runSaved   bool // Whether the current session's result has been persisted
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		status:     g.Status(),
	}
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

// handleKey processes keyboard input. Keys accumulate into the input frame
// and are consumed by the next tick; terminal key repeat keeps a held
// direction alive across ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The simulation runs in fixed
// world units, so a resize only reshapes the render buffer.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.status.State
	m.status = m.game.Step(m.inputFrame)

	if prev == game.StatePlaying {
		switch m.status.State {
		case game.StateGameOver:
			m.saveRun(storage.OutcomeGameOver)
		case game.StateWin:
			m.saveRun(storage.OutcomeWin)
		case game.StatePlaying:
			// Still going
		}
	}
	if m.status.State == game.StatePlaying && prev != game.StatePlaying {
		m.runSaved = false
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the finished session once. Best-effort: a missing or
// failing store never interrupts play.
func (m *Model) saveRun(outcome string) {
	if m.store == nil || m.runSaved {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(m.status.Level, m.status.Score, outcome)
	m.runSaved = true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
