package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/seedlife/game"
	"github.com/sheikhrachel/seedlife/model"
)

type tickMsg struct {
	id int
}

func tick(id int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return tickMsg{id: id} })
}

// Model is a bubbletea model that advances a game on every tick
type Model struct {
	game   *game.Game
	delay  time.Duration
	tickID int
	paused bool
	done   bool
	err    error
}

// NewModel wraps g, advancing it every delay
func NewModel(g *game.Game, delay time.Duration) Model {
	return Model{game: g, delay: delay}
}

// Err returns the error that stopped the simulation, if any
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return tick(m.tickID, m.delay)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		// ticks from before a pause are dropped so only one chain runs
		if msg.id != m.tickID || m.paused || m.done {
			return m, nil
		}
		m.step()
		if m.done {
			return m, nil
		}
		return m, tick(m.tickID, m.delay)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
		if !m.paused && !m.done {
			m.tickID++
			return m, tick(m.tickID, m.delay)
		}
	case "n", "right":
		if m.paused && !m.done {
			m.step()
		}
	}
	return m, nil
}

func (m *Model) step() {
	if err := m.game.Step(); err != nil {
		m.err = err
		m.done = true
		return
	}
	m.done = m.game.Done()
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("seedlife"))
	sb.WriteString("\n\n")

	grid := m.game.Current()
	particle := string(m.game.Particle())
	for i := range grid.Height() {
		row, _ := grid.Row(i)
		for _, c := range row {
			if c == model.Dead {
				sb.WriteString("  ")
				continue
			}
			sb.WriteString(CellStyle.Render(particle))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	status := fmt.Sprintf("gen %d | alive %d", m.game.Generation(), m.game.Alive())
	if stats := m.game.Stats(); stats != nil {
		status += fmt.Sprintf(" | avg compute %s", stats.AverageCompute())
	}
	sb.WriteString(statusStyle.Render(status))
	sb.WriteByte('\n')

	switch {
	case m.err != nil:
		sb.WriteString(errStyle.Render("error: " + m.err.Error()))
	case m.done:
		sb.WriteString(doneStyle.Render(fmt.Sprintf("stopped: %s | q quit", m.game.Reason())))
	case m.paused:
		sb.WriteString(statusStyle.Render("paused | space resume | n step | q quit"))
	default:
		sb.WriteString(statusStyle.Render("space pause | q quit"))
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Run shows g in a full screen program until the user quits or ctx is cancelled
func Run(ctx context.Context, g *game.Game, delay time.Duration) error {
	p := tea.NewProgram(NewModel(g, delay), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return errors.Wrap(err, "[Run] tui program failed")
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
