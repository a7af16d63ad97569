package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/seedlife/model"
)

// ScreenRenderer draws generations on a tcell screen, two columns per cell
type ScreenRenderer struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewScreenRenderer takes over the terminal. Call Close to restore it.
func NewScreenRenderer() (*ScreenRenderer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewScreenRenderer] failed to init screen")
	}
	return NewScreenRendererOn(screen), nil
}

// NewScreenRendererOn draws on an already initialised screen
func NewScreenRendererOn(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{
		screen: screen,
		style:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
}

func (r *ScreenRenderer) Render(g *model.Grid) error {
	r.screen.Clear()
	for y := range g.Height() {
		row, err := g.Row(y)
		if err != nil {
			return err
		}
		for x, c := range row {
			if c == model.Dead {
				continue
			}
			r.screen.SetContent(2*x, y, rune(c), nil, r.style)
		}
	}
	r.screen.Show()
	return nil
}

// Watch cancels the run when q, Esc or Ctrl+C is pressed.
// It returns when the screen is closed.
func (r *ScreenRenderer) Watch(cancel context.CancelFunc) {
	for {
		ev := r.screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if key.Key() == tcell.KeyCtrlC || key.Key() == tcell.KeyEscape || key.Rune() == 'q' {
			cancel()
		}
	}
}

// Close restores the terminal
func (r *ScreenRenderer) Close() {
	r.screen.Fini()
}
