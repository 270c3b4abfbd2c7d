// Package tui plays the puzzle in a terminal. The three layers of the cube
// are drawn side by side, top layer first.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/plus3/tileswap/game"
	"github.com/plus3/tileswap/puzzle"
)

// Styles used by View.
type Styles struct {
	White  lipgloss.Style
	Black  lipgloss.Style
	Layer  lipgloss.Style
	Title  lipgloss.Style
	Status lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		White: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3b3355")).
			Background(lipgloss.Color("#ffffff")),
		Black: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbb2ea")).
			Background(lipgloss.Color("#000000")),
		Layer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#bbb2ea")).
			Padding(0, 1),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bbb2ea")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("#a8a8a8")),
	}
}

// keyMap lists the bindings. Pairs share one help entry.
type keyMap struct {
	Back, Forward key.Binding
	Left, Right   key.Binding
	Down, Up      key.Binding

	Flip      key.Binding
	Randomize key.Binding
	More      key.Binding
	Less      key.Binding

	TiltUp, TiltDown    key.Binding
	TurnLeft, TurnRight key.Binding

	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Back:      key.NewBinding(key.WithKeys("w"), key.WithHelp("w/s", "z")),
		Forward:   key.NewBinding(key.WithKeys("s")),
		Left:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a/d", "x")),
		Right:     key.NewBinding(key.WithKeys("d")),
		Down:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q/e", "y")),
		Up:        key.NewBinding(key.WithKeys("e")),
		Flip:      key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "flip")),
		Randomize: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "randomize")),
		More:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "iterations")),
		Less:      key.NewBinding(key.WithKeys("-")),
		TiltUp:    key.NewBinding(key.WithKeys("up"), key.WithHelp("arrows", "rotate")),
		TiltDown:  key.NewBinding(key.WithKeys("down")),
		TurnLeft:  key.NewBinding(key.WithKeys("left")),
		TurnRight: key.NewBinding(key.WithKeys("right")),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Left, k.Down, k.Flip, k.Randomize, k.More, k.TiltUp, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Model is the bubbletea model over a game.World. Every key press is
// applied with one world tick.
type Model struct {
	world      *game.World
	styles     Styles
	keys       keyMap
	help       help.Model
	rotateStep float32
}

// New wraps world. rotateStep is the orbit change per arrow key press.
func New(world *game.World, rotateStep float32) Model {
	return Model{
		world:      world,
		styles:     DefaultStyles(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		rotateStep: rotateStep,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if action, ok := m.action(msg); ok {
			m.world.Push(action)
			m.world.Tick(0)
		}
	}
	return m, nil
}

func (m Model) action(msg tea.KeyMsg) (game.Action, bool) {
	step := m.rotateStep
	iterations := m.world.Settings().Iterations

	switch {
	case key.Matches(msg, m.keys.Back):
		return game.MoveCursor(puzzle.AxisZ, -1), true
	case key.Matches(msg, m.keys.Forward):
		return game.MoveCursor(puzzle.AxisZ, 1), true
	case key.Matches(msg, m.keys.Left):
		return game.MoveCursor(puzzle.AxisX, -1), true
	case key.Matches(msg, m.keys.Right):
		return game.MoveCursor(puzzle.AxisX, 1), true
	case key.Matches(msg, m.keys.Down):
		return game.MoveCursor(puzzle.AxisY, -1), true
	case key.Matches(msg, m.keys.Up):
		return game.MoveCursor(puzzle.AxisY, 1), true
	case key.Matches(msg, m.keys.Flip):
		return game.FlipSelected(), true
	case key.Matches(msg, m.keys.Randomize):
		return game.Randomize(), true
	case key.Matches(msg, m.keys.More):
		return game.SetIterations(iterations + 1), true
	case key.Matches(msg, m.keys.Less):
		return game.SetIterations(iterations - 1), true
	case key.Matches(msg, m.keys.TiltUp):
		return game.OrbitBy(step, 0), true
	case key.Matches(msg, m.keys.TiltDown):
		return game.OrbitBy(-step, 0), true
	case key.Matches(msg, m.keys.TurnLeft):
		return game.OrbitBy(0, step), true
	case key.Matches(msg, m.keys.TurnRight):
		return game.OrbitBy(0, -step), true
	}
	return game.Action{}, false
}

func (m Model) View() string {
	grid := m.world.Snapshot()
	cursor := m.world.Cursor()

	layers := make([]string, 0, puzzle.Size)
	for y := puzzle.Size - 1; y >= 0; y-- {
		layers = append(layers, m.renderLayer(&grid, cursor, y))
	}

	settings := m.world.Settings()
	orbit := m.world.Orbit()
	flips := m.world.FlipLog()

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("tileswap"))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, layers...))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Status.Render(fmt.Sprintf(
		"cursor %v  black %d/%d  iterations %d/%d  flips %d  rotation %.2f,%.2f",
		cursor, grid.Count(puzzle.Black), puzzle.Cells,
		settings.Iterations, settings.MaxIterations, flips.Flips,
		orbit.Pitch, orbit.Yaw)))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}

// renderLayer draws layer y with rows along z and columns along x. The
// cursor cell is bracketed.
func (m Model) renderLayer(grid *puzzle.Grid, cursor puzzle.Coord, y int) string {
	rows := make([]string, 0, puzzle.Size+1)
	rows = append(rows, fmt.Sprintf("y=%d", y))
	for z := 0; z < puzzle.Size; z++ {
		var row strings.Builder
		for x := 0; x < puzzle.Size; x++ {
			c := puzzle.Coord{X: x, Y: y, Z: z}
			style, glyph := m.styles.White, "."
			if grid.At(c) == puzzle.Black {
				style, glyph = m.styles.Black, "#"
			}
			cell := " " + glyph + " "
			if c == cursor {
				cell = "[" + glyph + "]"
			}
			row.WriteString(style.Render(cell))
		}
		rows = append(rows, row.String())
	}
	return m.styles.Layer.Render(strings.Join(rows, "\n"))
}

// Run blocks until the player quits.
func Run(world *game.World, rotateStep float32) error {
	if _, err := tea.NewProgram(New(world, rotateStep), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
