// Package compositor copies clipped rectangles of surfaces onto the screen's
// staging buffer. Nothing here commits; callers batch updates and commit once.
package compositor

import (
	"curtain/device"
	"curtain/surface"

	"github.com/mattn/go-runewidth"
)

type options struct {
	emphasis device.Flags
}

type Option func(*options)

// WithEmphasis ORs flags into every staged cell.
func WithEmphasis(flags device.Flags) Option {
	return func(o *options) { o.emphasis |= flags }
}

// Composite stages the part of src that starts at srcOffset onto the screen
// region dst occupies. The copied rectangle is clipped to src's bounds, to
// dst's size and to the screen. It reports whether any cell was staged.
// Neither src nor dst is modified.
func Composite(screen device.Screen, src, dst *surface.Surface, srcOffset device.Position, opts ...Option) bool {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if srcOffset.Row < 0 || srcOffset.Col < 0 {
		return false
	}

	origin := dst.Origin()
	srcSize, dstSize, screenSize := src.Size(), dst.Size(), screen.Size()
	height := min(dstSize.Height, srcSize.Height-srcOffset.Row, screenSize.Height-origin.Row)
	width := min(dstSize.Width, srcSize.Width-srcOffset.Col, screenSize.Width-origin.Col)
	if height <= 0 || width <= 0 {
		return false
	}

	// columns left of the screen are never staged
	firstCol := max(0, -origin.Col)
	staged := false
	for row := max(0, -origin.Row); row < height; row++ {
		for col := firstCol; col < width; col++ {
			pos := origin.Add(device.Position{Row: row, Col: col})
			cell := src.Cell(srcOffset.Row+row, srcOffset.Col+col)
			// half of a wide rune cut by the clip edge
			if (col == width-1 && runewidth.RuneWidth(cell.Rune) == 2) || (col == firstCol && cell.Rune == 0) {
				cell.Rune = ' '
			}
			cell.Style.Flags |= o.emphasis
			screen.Stage(pos, cell)
			staged = true
		}
	}
	return staged
}

// Stamp stages every cell of s at its own origin.
func Stamp(screen device.Screen, s *surface.Surface, opts ...Option) bool {
	staged := Composite(screen, s, s, device.Position{}, opts...)
	s.MarkClean()
	return staged
}
