package panel

import (
	"curtain/compositor"
	"curtain/device"
	"curtain/surface"
)

// Panel is a fixed surface that can be hidden without losing its content.
// The overlay is borrowed: the panel draws it but never clears or releases it.
type Panel struct {
	screen  device.Screen
	content *surface.Surface
	outline *surface.Surface
	overlay *surface.Surface
	visible bool
}

// New creates a visible panel covering lines x cols at (row, col). With
// outline the content area is inset by one cell on every side.
func New(screen device.Screen, lines, cols, row, col int, outline bool) (*Panel, error) {
	got := device.Size{Height: lines, Width: cols}
	want := device.Size{Height: 1, Width: 1}
	if outline {
		want = device.Size{Height: 3, Width: 3}
	}
	if err := device.CheckMinimum("panel", want, got); err != nil {
		return nil, err
	}

	p := &Panel{screen: screen, visible: true}
	origin := device.Position{Row: row, Col: col}
	if outline {
		p.outline = surface.New(origin, got)
		compositor.DrawBox(p.outline, 0, 0, lines, cols)
		compositor.Stamp(screen, p.outline)
		origin = origin.Add(device.Position{Row: 1, Col: 1})
		got = device.Size{Height: lines - 2, Width: cols - 2}
	}
	p.content = surface.New(origin, got)
	compositor.Stamp(screen, p.content)
	return p, nil
}

func (p *Panel) Content() *surface.Surface { return p.content }
func (p *Panel) Overlay() *surface.Surface { return p.overlay }
func (p *Panel) Visible() bool             { return p.visible }

func (p *Panel) Show() {
	if p.content == nil {
		return
	}
	p.visible = true
	p.drawOutline()
	p.drawContent()
}

func (p *Panel) Hide() {
	if p.content == nil {
		return
	}
	p.visible = false
	p.drawOutline()
	compositor.Cover(p.screen, p.content, nil)
}

func (p *Panel) Toggle() {
	if p.visible {
		p.Hide()
	} else {
		p.Show()
	}
}

// SetOverlay only records the overlay; it is drawn by the next Show or Refresh.
func (p *Panel) SetOverlay(overlay *surface.Surface) {
	p.overlay = overlay
}

func (p *Panel) RemoveOverlay() {
	p.overlay = nil
}

// Refresh re-stages a visible panel. Hidden panels stay covered.
func (p *Panel) Refresh() {
	if !p.visible || p.content == nil {
		return
	}
	p.drawOutline()
	p.drawContent()
}

// Destroy covers the whole panel region and drops the content. The overlay
// reference is released untouched. Afterwards every other method is a no-op
// and Content returns nil.
func (p *Panel) Destroy() {
	if p.content == nil {
		return
	}
	if p.outline != nil {
		compositor.Cover(p.screen, p.outline, nil)
	} else {
		compositor.Cover(p.screen, p.content, nil)
	}
	p.visible = false
	p.content = nil
	p.outline = nil
	p.overlay = nil
}

func (p *Panel) drawOutline() {
	if p.outline != nil {
		compositor.Stamp(p.screen, p.outline)
	}
}

func (p *Panel) drawContent() {
	compositor.Uncover(p.screen, p.content)
	if p.overlay != nil {
		compositor.Composite(p.screen, p.overlay, p.content, device.Position{})
	}
}
