package model

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func gridFromText(text string) *Grid {
	lines := strings.Split(text, "\n")
	rows := make([][]byte, len(lines))
	for i, line := range lines {
		rows[i] = []byte(line)
	}
	return FromRows(rows)
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
	}{
		{"zero height", 0, 5},
		{"zero width", 5, 0},
		{"negative height", -1, 3},
		{"negative width", 3, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.height, tt.width)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Fatalf("expected ErrInvalidDimensions, got %v", err)
			}
			if g != nil {
				t.Error("expected nil grid")
			}
		})
	}
}

func TestNewIsBlank(t *testing.T) {
	g, err := New(3, 4)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if g.Height() != 3 || g.Width() != 4 {
		t.Fatalf("expected 3x4, got %dx%d", g.Height(), g.Width())
	}
	if g.String() != "    \n    \n    " {
		t.Errorf("expected blank grid, got %q", g.String())
	}
}

func TestFromRowsWrapsWithoutCopy(t *testing.T) {
	rows := [][]byte{[]byte("ab"), []byte("cd"), []byte("ef")}
	g := FromRows(rows)

	if g.Height() != 3 || g.Width() != 2 {
		t.Fatalf("expected 3x2, got %dx%d", g.Height(), g.Width())
	}
	rows[1][0] = 'x'
	if c, _ := g.At(1, 0); c != 'x' {
		t.Errorf("expected rows to be shared, got %q", c)
	}
}

func TestEmbedAlignment(t *testing.T) {
	src := gridFromText("**\n**")

	tests := []struct {
		align Alignment
		want  string
	}{
		{AlignTopLeft, "**  \n**  \n    \n    "},
		{AlignTopRight, "  **\n  **\n    \n    "},
		{AlignBottomLeft, "    \n    \n**  \n**  "},
		{AlignBottomRight, "    \n    \n  **\n  **"},
		{AlignCenter, "    \n ** \n ** \n    "},
		{AlignNone, "**  \n**  \n    \n    "},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			g, err := Embed(4, 4, src, tt.align)
			if err != nil {
				t.Fatalf("Embed failed: %v", err)
			}
			if g.String() != tt.want {
				t.Errorf("expected\n%s\ngot\n%s", tt.want, g.String())
			}
		})
	}
}

func TestEmbedClipsOversizedSource(t *testing.T) {
	src := gridFromText("abcde\nfghij\nklmno\npqrst\nuvwxy")

	tests := []struct {
		align Alignment
		want  string
	}{
		{AlignCenter, "ghi\nlmn\nqrs"},
		{AlignTopLeft, "abc\nfgh\nklm"},
		{AlignTopRight, "cde\nhij\nmno"},
		{AlignBottomLeft, "klm\npqr\nuvw"},
		{AlignBottomRight, "mno\nrst\nwxy"},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			g, err := Embed(3, 3, src, tt.align)
			if err != nil {
				t.Fatalf("Embed failed: %v", err)
			}
			if g.Height() != 3 || g.Width() != 3 {
				t.Fatalf("destination resized to %dx%d", g.Height(), g.Width())
			}
			if g.String() != tt.want {
				t.Errorf("expected\n%s\ngot\n%s", tt.want, g.String())
			}
		})
	}
}

func TestEmbedClipsOneAxis(t *testing.T) {
	src := gridFromText("abcdef")

	g, err := Embed(3, 4, src, AlignCenter)
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	if g.String() != "    \nbcde\n    " {
		t.Errorf("unexpected placement:\n%s", g.String())
	}
}

func TestEmbedInvalidDestination(t *testing.T) {
	_, err := Embed(0, 4, gridFromText("*"), AlignCenter)
	if !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestBoundsChecks(t *testing.T) {
	g, _ := New(2, 3)

	if _, err := g.Row(2); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Row(2): expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := g.Row(-1); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Row(-1): expected ErrIndexOutOfBounds, got %v", err)
	}
	if _, err := g.At(0, 3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("At(0,3): expected ErrIndexOutOfBounds, got %v", err)
	}
	if err := g.Set(1, -1, '*'); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("Set(1,-1): expected ErrIndexOutOfBounds, got %v", err)
	}

	if err := g.Set(1, 2, '*'); err != nil {
		t.Fatalf("Set(1,2) failed: %v", err)
	}
	row, err := g.Row(1)
	if err != nil {
		t.Fatalf("Row(1) failed: %v", err)
	}
	if string(row) != "  *" {
		t.Errorf("expected row %q, got %q", "  *", row)
	}
	row[0] = '#'
	if c, _ := g.At(1, 0); c != '#' {
		t.Errorf("Row should return mutable storage, got %q", c)
	}
}

func TestEqualAndClone(t *testing.T) {
	a := gridFromText("* \n *")
	b := a.Clone()

	if !a.Equal(b) {
		t.Fatal("clone should equal original")
	}
	b.Set(0, 1, '*')
	if a.Equal(b) {
		t.Error("modifying clone should not affect original")
	}
	if a.Equal(gridFromText("* ")) {
		t.Error("grids of different shape should differ")
	}
	if a.Equal(nil) {
		t.Error("grid should not equal nil")
	}
}

func TestLiveNeighbors(t *testing.T) {
	full := gridFromText("***\n***\n***")

	tests := []struct {
		name     string
		grid     *Grid
		row, col int
		want     int
	}{
		{"center of full", full, 1, 1, 8},
		{"corner of full", full, 0, 0, 3},
		{"bottom right corner", full, 2, 2, 3},
		{"edge of full", full, 0, 1, 5},
		{"right edge of full", full, 1, 2, 5},
		{"single cell", gridFromText("*"), 0, 0, 0},
		{"single row left", gridFromText("***"), 0, 0, 1},
		{"single row middle", gridFromText("***"), 0, 1, 2},
		{"single column bottom", gridFromText("*\n*\n*"), 2, 0, 1},
		{"other glyphs ignored", gridFromText("#*#\n* *\n#*#"), 1, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.grid.LiveNeighbors(tt.row, tt.col, '*'); got != tt.want {
				t.Errorf("LiveNeighbors(%d,%d) = %d, want %d", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestReplaceParticleAndCount(t *testing.T) {
	g := gridFromText("#a \n x.")
	g.ReplaceParticle('o')

	if g.String() != "oo \n oo" {
		t.Errorf("unexpected grid after replace: %q", g.String())
	}
	if n := g.CountAlive('o'); n != 4 {
		t.Errorf("expected 4 alive, got %d", n)
	}
}

func TestHash(t *testing.T) {
	a := gridFromText("* \n *")
	b := a.Clone()
	if a.Hash() != b.Hash() {
		t.Error("equal grids should hash equally")
	}
	b.Set(0, 0, Dead)
	if a.Hash() == b.Hash() {
		t.Error("different grids should hash differently")
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		name string
		want Alignment
		ok   bool
	}{
		{"center", AlignCenter, true},
		{"top-left", AlignTopLeft, true},
		{"Top-Right", AlignTopRight, true},
		{" bottom-left ", AlignBottomLeft, true},
		{"bottom-right", AlignBottomRight, true},
		{"none", AlignNone, true},
		{"middle", AlignNone, false},
		{"", AlignNone, false},
	}

	for _, tt := range tests {
		got, ok := ParseAlignment(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseAlignment(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
