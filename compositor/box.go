package compositor

import (
	"curtain/device"
	"curtain/surface"

	"github.com/muesli/ansi"
)

const (
	boxHorizontal  = '─'
	boxVertical    = '│'
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
)

// DrawBox outlines the rectangle at (row, col) of the given size inside s using the surface style.
// Boxes smaller than 2x2 are not drawn.
func DrawBox(s *surface.Surface, row, col, height, width int) {
	if height < 2 || width < 2 {
		return
	}
	style := s.Style()
	put := func(r, c int, ch rune) {
		s.SetCell(r, c, device.Cell{Rune: ch, Style: style})
	}
	bottom, right := row+height-1, col+width-1
	for c := col + 1; c < right; c++ {
		put(row, c, boxHorizontal)
		put(bottom, c, boxHorizontal)
	}
	for r := row + 1; r < bottom; r++ {
		put(r, col, boxVertical)
		put(r, right, boxVertical)
	}
	put(row, col, boxTopLeft)
	put(row, right, boxTopRight)
	put(bottom, col, boxBottomLeft)
	put(bottom, right, boxBottomRight)
}

// DrawButton draws a box with label centered inside it.
func DrawButton(s *surface.Surface, row, col, height, width int, label string) {
	DrawBox(s, row, col, height, width)
	labelCol := col + (width-ansi.PrintableRuneWidth(label))/2
	labelRow := row + (height-1)/2
	if labelCol < col {
		labelCol = col
	}
	s.WriteAt(labelRow, labelCol, label)
}
