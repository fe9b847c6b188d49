// Package surface implements the owned character-cell buffer every widget draws into.
//
// A Surface never grows on its own. Text that does not fit the current row
// wraps to the next one; once the last cell has been written the surface is
// full and further writes are dropped until the cursor moves or the surface
// is cleared.
package surface

import (
	"curtain/device"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

type Surface struct {
	origin device.Position
	size   device.Size
	cells  []device.Cell
	cursor device.Position
	style  device.Style
	full   bool
	dirty  bool
}

// New creates a blank surface whose top-left corner sits at origin on the screen.
// Negative dimensions are treated as zero.
func New(origin device.Position, size device.Size) *Surface {
	s := &Surface{origin: origin, size: normalize(size)}
	s.cells = make([]device.Cell, s.size.Area())
	s.blank()
	return s
}

func normalize(size device.Size) device.Size {
	if size.Height < 0 {
		size.Height = 0
	}
	if size.Width < 0 {
		size.Width = 0
	}
	return size
}

func (s *Surface) Origin() device.Position { return s.origin }
func (s *Surface) Size() device.Size       { return s.size }
func (s *Surface) Cursor() device.Position { return s.cursor }
func (s *Surface) Style() device.Style     { return s.style }
func (s *Surface) Dirty() bool             { return s.dirty }
func (s *Surface) Full() bool              { return s.full }

// SetStyle sets the style used by subsequent writes and clears.
func (s *Surface) SetStyle(style device.Style) {
	s.style = style
}

func (s *Surface) MarkClean() {
	s.dirty = false
}

// Resize keeps the cells of the overlap between the old and the new size.
func (s *Surface) Resize(size device.Size) {
	size = normalize(size)
	cells := make([]device.Cell, size.Area())
	for i := range cells {
		cells[i] = device.Cell{Rune: ' ', Style: s.style}
	}
	rows := min(s.size.Height, size.Height)
	cols := min(s.size.Width, size.Width)
	for row := 0; row < rows; row++ {
		copy(cells[row*size.Width:row*size.Width+cols], s.cells[row*s.size.Width:row*s.size.Width+cols])
	}
	s.size = size
	s.cells = cells
	s.full = false
	s.Move(s.cursor.Row, s.cursor.Col)
	s.dirty = true
}

// Move places the cursor, clamped to the surface bounds.
func (s *Surface) Move(row, col int) {
	s.cursor = device.Position{
		Row: clamp(row, s.size.Height-1),
		Col: clamp(col, s.size.Width-1),
	}
	s.full = false
}

func clamp(value, maxValue int) int {
	if value > maxValue {
		value = maxValue
	}
	if value < 0 {
		value = 0
	}
	return value
}

func (s *Surface) Clear() {
	s.blank()
	s.cursor = device.Position{}
	s.full = false
	s.dirty = true
}

// Fill restyles every cell, keeping its rune, and makes style the write style.
func (s *Surface) Fill(style device.Style) {
	s.style = style
	for i := range s.cells {
		s.cells[i].Style = style
	}
	s.dirty = true
}

func (s *Surface) blank() {
	for i := range s.cells {
		s.cells[i] = device.Cell{Rune: ' ', Style: s.style}
	}
}

func (s *Surface) Cell(row, col int) device.Cell {
	pos := device.Position{Row: row, Col: col}
	if !s.size.Contains(pos) {
		return device.Cell{}
	}
	return s.cells[s.index(pos)]
}

// SetCell replaces one cell. A wide rune also takes the cell to its right and
// becomes a space when it is given the last column. A zero rune is stored as
// is, for callers that lay out continuations themselves.
func (s *Surface) SetCell(row, col int, cell device.Cell) {
	pos := device.Position{Row: row, Col: col}
	if !s.size.Contains(pos) {
		return
	}
	s.dirty = true
	if cell.Rune == 0 {
		s.cells[s.index(pos)] = cell
		return
	}
	width := 1
	if runewidth.RuneWidth(cell.Rune) == 2 {
		if col+1 < s.size.Width {
			width = 2
		} else {
			cell.Rune = ' '
		}
	}
	s.release(pos, width)
	idx := s.index(pos)
	s.cells[idx] = cell
	if width == 2 {
		s.cells[idx+1] = device.Cell{Style: cell.Style}
	}
}

// release blanks the halves of wide runes that a write of width cells at pos
// would split: the start of a rune whose continuation is at pos, and the
// continuation of a rune that starts in the last overwritten cell.
func (s *Surface) release(pos device.Position, width int) {
	idx := s.index(pos)
	if pos.Col > 0 && s.cells[idx].Rune == 0 && runewidth.RuneWidth(s.cells[idx-1].Rune) == 2 {
		s.cells[idx-1].Rune = ' '
	}
	last := pos.Col + width - 1
	if last+1 < s.size.Width && runewidth.RuneWidth(s.cells[idx+width-1].Rune) == 2 {
		s.cells[idx+width].Rune = ' '
	}
}

// Write writes text at the cursor and advances it.
func (s *Surface) Write(text string) {
	for _, r := range norm.NFC.String(text) {
		s.put(r)
	}
	s.dirty = true
}

func (s *Surface) WriteAt(row, col int, text string) {
	s.Move(row, col)
	s.Write(text)
}

func (s *Surface) put(r rune) {
	if s.full || s.size.Empty() {
		return
	}
	switch r {
	case '\n':
		s.newline()
		return
	case '\t':
		r = ' '
	}
	width := runewidth.RuneWidth(r)
	if width == 0 || width > s.size.Width {
		return
	}
	if s.cursor.Col+width > s.size.Width {
		s.newline()
		if s.full {
			return
		}
	}
	s.release(s.cursor, width)
	idx := s.index(s.cursor)
	s.cells[idx] = device.Cell{Rune: r, Style: s.style}
	if width == 2 {
		s.cells[idx+1] = device.Cell{Style: s.style}
	}
	if s.cursor.Col+width < s.size.Width {
		s.cursor.Col += width
		return
	}
	s.newline()
}

func (s *Surface) newline() {
	if s.cursor.Row+1 >= s.size.Height {
		s.cursor.Col = s.size.Width - 1
		s.full = true
		return
	}
	s.cursor.Row++
	s.cursor.Col = 0
}

func (s *Surface) index(pos device.Position) int {
	return pos.Row*s.size.Width + pos.Col
}

// Line returns the runes of one row, wide-rune continuations omitted.
func (s *Surface) Line(row int) string {
	if row < 0 || row >= s.size.Height {
		return ""
	}
	buf := &strings.Builder{}
	for col := 0; col < s.size.Width; col++ {
		if r := s.cells[s.index(device.Position{Row: row, Col: col})].Rune; r != 0 {
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

func (s *Surface) String() string {
	return fmt.Sprintf("Surface{Origin: %s, Size: %s, Cursor: %s}", s.origin, s.size, s.cursor)
}
