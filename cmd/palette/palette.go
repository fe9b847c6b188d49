// palette paints the 256 palette colors as labelled swatches and exits on any key.
package main

import (
	"context"
	"curtain/compositor"
	"curtain/device"
	"curtain/device/tcell"
	"curtain/keys"
	"curtain/lifecycle"
	"curtain/surface"
	"fmt"
	"log"
)

const swatchWidth = 7

func main() {
	log.SetFlags(0)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Printf("Failed to open terminal: %v", err)
		return
	}
	defer screen.Close()

	paint(screen)
	screen.Commit()

	lc := lifecycle.New(context.Background())
	screen.Listen(lc, func(key keys.Key) bool {
		if key.Name == "Resize" {
			paint(screen)
			screen.Commit()
			return true
		}
		lc.Cancel()
		return false
	})
	<-lc.Context().Done()
	lc.Stop()
}

// paint stages as many swatches as fit the screen, row by row.
func paint(screen device.Screen) {
	size := screen.Size()
	s := surface.New(device.Position{}, size)
	perRow := max(1, size.Width/swatchWidth)
	for i := 0; i < 256; i++ {
		row, col := i/perRow, (i%perRow)*swatchWidth
		if row >= size.Height {
			break
		}
		s.SetStyle(device.Style{FG: device.Palette(contrast(byte(i))), BG: device.Palette(byte(i))})
		s.WriteAt(row, col, fmt.Sprintf(" %3d   ", i))
	}
	compositor.Stamp(screen, s)
}

// contrast picks black or white text for a swatch.
func contrast(index byte) byte {
	switch {
	case index < 16:
		if index == 0 || index == 1 || index == 4 || index == 5 || index == 8 {
			return 15
		}
		return 0
	case index >= 232:
		if index < 244 {
			return 15
		}
		return 0
	}
	cube := index - 16
	r, g, b := cube/36, cube/6%6, cube%6
	if 2*int(r)+3*int(g)+int(b) > 12 {
		return 0
	}
	return 15
}
