package utils

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// DefaultDisplaySize is used for both dimensions when stdout is not a terminal
const DefaultDisplaySize = 40

// TerminalSize returns the number of character rows and columns of stdout
func TerminalSize() (rows, cols int, err error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0, errors.New("[TerminalSize] stdout is not a terminal")
	}
	cols, rows, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, errors.Wrap(err, "[TerminalSize] failed to query window size")
	}
	return rows, cols, nil
}

// DisplaySize picks the grid dimensions for a run. Explicit config dimensions win;
// otherwise the grid is a square as large as the smaller terminal dimension.
func DisplaySize(config Config, rows, cols int) (height, width int) {
	side := min(rows, cols)
	if side <= 0 {
		side = DefaultDisplaySize
	}

	height, width = side, side
	if config.Height > 0 {
		height = config.Height
	}
	if config.Width > 0 {
		width = config.Width
	}
	return height, width
}
