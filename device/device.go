package device

import (
	"fmt"
	"strings"
)

// Screen is the handle every component stages its cells through.
// Stage writes into a pending buffer only; nothing becomes visible until Commit.
type Screen interface {
	Size() Size
	Stage(pos Position, cell Cell)
	Staged(pos Position) Cell
	Commit()
	ShowCursor(pos Position)
	HideCursor()
}

type Position struct {
	Row, Col int
}

type Size struct {
	Height, Width int
}

type Color uint16

// ColorDefault leaves the terminal's own color in place.
const ColorDefault Color = 0

func Palette(index byte) Color {
	return Color(index) + 1
}

func (c Color) IsDefault() bool {
	return c == ColorDefault
}

// Index returns the 256-color palette index.
func (c Color) Index() byte {
	if c == ColorDefault {
		return 0
	}
	return byte(c - 1)
}

type Flags byte

const (
	Bold      Flags = 1
	Italic    Flags = 2
	Reverse   Flags = 4
	Underline Flags = 8
)

type Style struct {
	FG, BG Color
	Flags  Flags
}

type Cell struct {
	Rune  rune
	Style Style
}

var Blank = Cell{Rune: ' '}

func (p Position) Add(other Position) Position {
	return Position{Row: p.Row + other.Row, Col: p.Col + other.Col}
}

func (s Size) Empty() bool {
	return s.Height <= 0 || s.Width <= 0
}

func (s Size) Area() int {
	if s.Empty() {
		return 0
	}
	return s.Height * s.Width
}

func (s Size) Contains(pos Position) bool {
	return pos.Row >= 0 && pos.Row < s.Height && pos.Col >= 0 && pos.Col < s.Width
}

func (s Style) With(flags Flags) Style {
	s.Flags |= flags
	return s
}

func (p Position) String() string {
	return fmt.Sprintf("Position(Row: %d, Col: %d)", p.Row, p.Col)
}

func (s Size) String() string {
	return fmt.Sprintf("Size(Height: %d, Width: %d)", s.Height, s.Width)
}

func (s Style) String() string {
	return fmt.Sprintf("Style{FG: %d, BG: %d, Flags: {%s}}", s.FG, s.BG, s.Flags)
}

func (f Flags) String() string {
	flags := []string{}
	if f&Bold == Bold {
		flags = append(flags, "Bold")
	}
	if f&Italic == Italic {
		flags = append(flags, "Italic")
	}
	if f&Reverse == Reverse {
		flags = append(flags, "Reverse")
	}
	if f&Underline == Underline {
		flags = append(flags, "Underline")
	}
	return strings.Join(flags, ", ")
}
