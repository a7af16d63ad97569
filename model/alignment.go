package model

import "strings"

// Alignment describes where a smaller grid is placed inside a larger one
type Alignment int

const (
	AlignNone Alignment = iota
	AlignCenter
	AlignTopLeft
	AlignTopRight
	AlignBottomLeft
	AlignBottomRight
)

var alignmentNames = map[Alignment]string{
	AlignNone:        "none",
	AlignCenter:      "center",
	AlignTopLeft:     "top-left",
	AlignTopRight:    "top-right",
	AlignBottomLeft:  "bottom-left",
	AlignBottomRight: "bottom-right",
}

// String returns the command line spelling of the alignment
func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAlignment maps a name such as "top-right" to its Alignment.
// The boolean is false for unknown names.
func ParseAlignment(name string) (Alignment, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range alignmentNames {
		if n == name {
			return a, true
		}
	}
	return AlignNone, false
}

// offset returns the destination row and column where the source's top-left cell lands.
// AlignNone is placed like AlignTopLeft.
func (a Alignment) offset(dstHeight, dstWidth, srcHeight, srcWidth int) (startRow, startCol int) {
	switch a {
	case AlignCenter:
		return dstHeight/2 - srcHeight/2, dstWidth/2 - srcWidth/2
	case AlignTopRight:
		return 0, dstWidth - srcWidth
	case AlignBottomLeft:
		return dstHeight - srcHeight, 0
	case AlignBottomRight:
		return dstHeight - srcHeight, dstWidth - srcWidth
	default:
		return 0, 0
	}
}
