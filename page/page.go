// Package page implements a virtual surface larger than its viewport.
//
// The content surface is allocated once; its scroll offset is clamped to
// [0, content size - viewport size] in both directions at all times.
package page

import (
	"curtain/compositor"
	"curtain/device"
	"curtain/surface"
	"fmt"
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

const DefaultMultiplier = 2

type Page struct {
	screen   device.Screen
	viewport *surface.Surface
	content  *surface.Surface
	vShift   int
	hShift   int
	maxV     int
	maxH     int
}

type config struct {
	multiplier int
	size       device.Size
	sized      bool
}

type Option func(*config)

// WithMultiplier sizes the content as multiplier times the viewport.
func WithMultiplier(multiplier int) Option {
	return func(c *config) {
		c.multiplier = multiplier
		c.sized = false
	}
}

// WithSize gives the content an explicit size.
func WithSize(height, width int) Option {
	return func(c *config) {
		c.size = device.Size{Height: height, Width: width}
		c.sized = true
	}
}

// New creates a page shown through viewport. The viewport's origin and size
// are the screen region the page refreshes into.
func New(screen device.Screen, viewport *surface.Surface, opts ...Option) (*Page, error) {
	c := config{multiplier: DefaultMultiplier}
	for _, opt := range opts {
		opt(&c)
	}
	size := c.size
	if !c.sized {
		vs := viewport.Size()
		size = device.Size{Height: vs.Height * c.multiplier, Width: vs.Width * c.multiplier}
	}
	if err := device.CheckMinimum("page", device.Size{Height: 1, Width: 1}, size); err != nil {
		return nil, err
	}

	p := &Page{
		screen:   screen,
		viewport: viewport,
		content:  surface.New(device.Position{}, size),
	}
	p.bounds()
	return p, nil
}

func (p *Page) bounds() {
	cs, vs := p.content.Size(), p.viewport.Size()
	p.maxV = max(0, cs.Height-vs.Height)
	p.maxH = max(0, cs.Width-vs.Width)
	p.vShift = clamp(p.vShift, p.maxV)
	p.hShift = clamp(p.hShift, p.maxH)
}

func clamp(value, maxValue int) int {
	return max(0, min(value, maxValue))
}

// Content gives direct access to the page's buffer.
func (p *Page) Content() *surface.Surface { return p.content }

func (p *Page) Offset() (v, h int) { return p.vShift, p.hShift }

func (p *Page) MaxOffset() (v, h int) { return p.maxV, p.maxH }

// Shift scrolls by amount cells, saturating at the bounds. Negative amounts do nothing.
func (p *Page) Shift(dir Direction, amount int) {
	if amount < 0 {
		amount = 0
	}
	switch dir {
	case Up:
		p.vShift = clamp(p.vShift-amount, p.maxV)
	case Down:
		p.vShift = clamp(p.vShift+amount, p.maxV)
	case Left:
		p.hShift = clamp(p.hShift-amount, p.maxH)
	case Right:
		p.hShift = clamp(p.hShift+amount, p.maxH)
	}
}

func (p *Page) ResetOffset() {
	p.vShift = 0
	p.hShift = 0
}

// Refresh stages the visible part of the content onto the viewport. Viewport
// cells the content does not reach are staged blank.
func (p *Page) Refresh() {
	cs, vs := p.content.Size(), p.viewport.Size()
	if cs.Height < vs.Height || cs.Width < vs.Width {
		compositor.Cover(p.screen, p.viewport, nil)
	}
	compositor.Composite(p.screen, p.content, p.viewport, device.Position{Row: p.vShift, Col: p.hShift})
	p.content.MarkClean()
}

// Out appends text and a line break at the content's write cursor, then refreshes.
// Text beyond the content's capacity is dropped.
func (p *Page) Out(text string) {
	p.content.Write(text + "\n")
	p.Refresh()
}

// Outf is Out with fmt formatting.
func (p *Page) Outf(format string, args ...any) {
	p.Out(fmt.Sprintf(format, args...))
}

// Clear empties the content, blanks the viewport and scrolls back to the origin.
func (p *Page) Clear() {
	p.content.Clear()
	p.ResetOffset()
	compositor.Cover(p.screen, p.viewport, nil)
}

// Resize reallocates the content, keeping what overlaps, and re-clamps the offset.
func (p *Page) Resize(height, width int) error {
	size := device.Size{Height: height, Width: width}
	if err := device.CheckMinimum("page", device.Size{Height: 1, Width: 1}, size); err != nil {
		return err
	}
	p.content.Resize(size)
	p.bounds()
	return nil
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return "UNKNOWN DIRECTION"
}
