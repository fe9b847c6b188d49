// Package layout word-wraps and aligns text into a fixed width.
//
// Layout is stateless: Arrange computes line breaks and offsets, Render
// writes the result into a caller-owned surface.
package layout

import (
	"curtain/device"
	"curtain/surface"
	"strings"

	"github.com/muesli/ansi"
)

type Align int

const (
	Left Align = iota
	Center
	Justify
	Right
)

type Line struct {
	Text   string
	Offset int
}

// Block is an arranged paragraph. Top is the first row used inside the declared height.
type Block struct {
	Lines []Line
	Top   int
}

// Fit declares exactly as many lines as the text needs.
const Fit = -1

type Options struct {
	// Lines is the declared height, or Fit.
	Lines     int
	VCentered bool
}

func width(text string) int {
	return ansi.PrintableRuneWidth(text)
}

// Wrap greedily packs the whitespace-separated words of text into lines no
// wider than maxWidth. Words wider than maxWidth are split into chunks.
func Wrap(text string, maxWidth int) []string {
	if maxWidth < 1 {
		maxWidth = 1
	}
	var lines []string
	line := &strings.Builder{}
	lineWidth := 0
	for _, word := range strings.Fields(text) {
		for _, chunk := range split(word, maxWidth) {
			chunkWidth := width(chunk)
			if lineWidth > 0 && lineWidth+1+chunkWidth > maxWidth {
				lines = append(lines, line.String())
				line.Reset()
				lineWidth = 0
			}
			if lineWidth > 0 {
				line.WriteByte(' ')
				lineWidth++
			}
			line.WriteString(chunk)
			lineWidth += chunkWidth
		}
	}
	if lineWidth > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func split(word string, maxWidth int) []string {
	if width(word) <= maxWidth {
		return []string{word}
	}
	var chunks []string
	chunk := []rune{}
	for _, r := range word {
		if width(string(append(chunk, r))) > maxWidth && len(chunk) > 0 {
			chunks = append(chunks, string(chunk))
			chunk = chunk[:0]
		}
		chunk = append(chunk, r)
	}
	return append(chunks, string(chunk))
}

// Arrange wraps text and computes each line's horizontal offset and the block's
// vertical start. Declaring fewer lines than the text needs, or a width below
// one cell for non-blank text, is a GeometryError wrapping
// device.ErrInsufficientSpace.
func Arrange(text string, maxWidth int, align Align, opts Options) (Block, error) {
	if maxWidth < 1 && len(strings.Fields(text)) > 0 {
		return Block{}, &device.GeometryError{
			Op:   "layout",
			Want: device.Size{Height: 1, Width: 1},
			Got:  device.Size{Height: max(opts.Lines, 0), Width: maxWidth},
			Err:  device.ErrInsufficientSpace,
		}
	}
	wrapped := Wrap(text, maxWidth)
	minLines := len(wrapped)
	declared := opts.Lines
	if declared == Fit {
		declared = minLines
	}
	if declared < minLines {
		return Block{}, &device.GeometryError{
			Op:   "layout",
			Want: device.Size{Height: minLines, Width: maxWidth},
			Got:  device.Size{Height: declared, Width: maxWidth},
			Err:  device.ErrInsufficientSpace,
		}
	}

	block := Block{Lines: make([]Line, 0, minLines)}
	if opts.VCentered {
		block.Top = (declared - minLines) / 2
	}
	for i, text := range wrapped {
		line := Line{Text: text}
		switch align {
		case Right:
			line.Offset = maxWidth - width(text)
		case Center:
			line.Offset = (maxWidth - width(text)) / 2
		case Justify:
			if i < len(wrapped)-1 {
				line.Text = justify(text, maxWidth)
			}
		}
		block.Lines = append(block.Lines, line)
	}
	return block, nil
}

// justify spreads the gap between text and maxWidth over its word gaps,
// leftmost gaps first. Single-word lines are left as they are.
func justify(text string, maxWidth int) string {
	words := strings.Fields(text)
	if len(words) < 2 {
		return text
	}
	gaps := len(words) - 1
	spaces := maxWidth - width(text) + gaps
	buf := &strings.Builder{}
	for i, word := range words {
		buf.WriteString(word)
		if i == gaps {
			break
		}
		n := spaces / gaps
		if i < spaces%gaps {
			n++
		}
		buf.WriteString(strings.Repeat(" ", n))
	}
	return buf.String()
}

// Render clears s and writes text arranged to the surface's width, using its
// height as the declared number of lines.
func Render(s *surface.Surface, text string, align Align, vCentered bool) error {
	size := s.Size()
	block, err := Arrange(text, size.Width, align, Options{Lines: size.Height, VCentered: vCentered})
	if err != nil {
		return err
	}
	s.Clear()
	block.WriteTo(s)
	return nil
}

// WriteTo writes the block's lines into s starting at row Top.
func (b Block) WriteTo(s *surface.Surface) {
	for i, line := range b.Lines {
		s.WriteAt(b.Top+i, line.Offset, line.Text)
	}
}

func (b Block) Texts() []string {
	result := make([]string, len(b.Lines))
	for i, line := range b.Lines {
		result[i] = line.Text
	}
	return result
}

func (b Block) Offsets() []int {
	result := make([]int, len(b.Lines))
	for i, line := range b.Lines {
		result[i] = line.Offset
	}
	return result
}

func (a Align) String() string {
	switch a {
	case Left:
		return "Left"
	case Center:
		return "Center"
	case Justify:
		return "Justify"
	case Right:
		return "Right"
	}
	return "UNKNOWN ALIGN"
}
