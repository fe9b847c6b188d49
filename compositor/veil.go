package compositor

import (
	"curtain/device"
	"curtain/surface"
)

// Cover hides target by staging veil over its screen region. A nil veil is
// replaced by a blank surface of target's size. The veil is cleared
// afterwards and must not be reused; target itself is never modified.
func Cover(screen device.Screen, target, veil *surface.Surface) {
	if veil == nil {
		veil = surface.New(target.Origin(), target.Size())
	}
	Composite(screen, veil, target, device.Position{})
	veil.Clear()
}

// Uncover re-stages all of target's current content at its origin.
// Pass WithEmphasis to force a visibly different attribute onto the region.
func Uncover(screen device.Screen, target *surface.Surface, opts ...Option) {
	Stamp(screen, target, opts...)
}
