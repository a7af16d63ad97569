package model

import (
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

const (
	clearCmd  = "clear"
	ansiClear = "\033[H\033[2J"

	cellSeparator = ' '
)

// TerminalRenderer prints a grid as text, one row per line with a space after every cell
type TerminalRenderer struct {
	out io.Writer

	// ClearScreen clears the terminal before every frame
	ClearScreen bool
	// Style is applied to live cells when non-nil
	Style *lipgloss.Style
	// Caption, when set, is printed under the grid
	Caption func() string
}

// NewTerminalRenderer returns a renderer that writes frames to out and clears between them
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: out, ClearScreen: true}
}

// Render clears the screen and displays g
func (r *TerminalRenderer) Render(g *Grid) error {
	if r.ClearScreen {
		r.Clear()
	}
	return r.Display(g)
}

// Display writes the grid as a single frame
func (r *TerminalRenderer) Display(g *Grid) error {
	var sb strings.Builder
	sb.Grow(g.height * (2*g.width + 1))

	for _, row := range g.cells {
		for _, c := range row {
			if c != Dead && r.Style != nil {
				sb.WriteString(r.Style.Render(string(c)))
			} else {
				sb.WriteByte(c)
			}
			sb.WriteByte(cellSeparator)
		}
		sb.WriteByte('\n')
	}
	if r.Caption != nil {
		sb.WriteString(r.Caption())
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(r.out, sb.String()); err != nil {
		return errors.Wrap(err, "[Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen, falling back to an ANSI sequence when `clear` is unavailable
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out
	if err := cmd.Run(); err != nil {
		io.WriteString(r.out, ansiClear)
	}
}
