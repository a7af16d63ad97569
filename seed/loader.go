// Package seed reads plain text seed files into grids.
//
// Every line of a seed is one row. A space is a dead cell and any other
// character is a live one. Rows shorter than the longest line are padded
// with dead cells on the right.
package seed

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/seedlife/model"
)

var (
	// ErrSeedNotFound is returned when the seed source cannot be opened or read
	ErrSeedNotFound = errors.New("seed not found")
	// ErrEmptySeed is returned when the seed has no cells to place
	ErrEmptySeed = errors.New("empty seed")
)

// Parse reads one grid row per line from r
func Parse(r io.Reader) (*model.Grid, error) {
	var (
		lines   []string
		longest int
	)

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
			longest = max(longest, len(line))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrSeedNotFound, "[Parse] read failed: %v", err)
		}
	}

	if len(lines) == 0 {
		return nil, errors.Wrap(ErrEmptySeed, "[Parse] no lines")
	}
	if longest == 0 {
		return nil, errors.Wrapf(ErrEmptySeed, "[Parse] %d blank lines", len(lines))
	}

	rows := make([][]byte, len(lines))
	for i, line := range lines {
		row := make([]byte, longest)
		n := copy(row, line)
		for j := n; j < longest; j++ {
			row[j] = model.Dead
		}
		rows[i] = row
	}
	return model.FromRows(rows), nil
}

// ParseText parses a seed held in memory
func ParseText(text string) (*model.Grid, error) {
	return Parse(strings.NewReader(text))
}

// Load reads the seed file at path
func Load(path string) (*model.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrSeedNotFound, "[Load] %s: %v", path, err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "[Load] %s", path)
	}
	return g, nil
}

// LoadAndPlace loads the seed at path into a height x width grid.
// Seeds larger than the target are clipped.
func LoadAndPlace(path string, height, width int, align model.Alignment) (*model.Grid, error) {
	src, err := Load(path)
	if err != nil {
		return nil, err
	}
	return place(src, height, width, align)
}

// PlaceText parses text and places it into a height x width grid
func PlaceText(text string, height, width int, align model.Alignment) (*model.Grid, error) {
	src, err := ParseText(text)
	if err != nil {
		return nil, err
	}
	return place(src, height, width, align)
}

func place(src *model.Grid, height, width int, align model.Alignment) (*model.Grid, error) {
	g, err := model.Embed(height, width, src, align)
	if err != nil {
		return nil, errors.Wrapf(err, "[place] seed %dx%d into %dx%d", src.Height(), src.Width(), height, width)
	}
	return g, nil
}
