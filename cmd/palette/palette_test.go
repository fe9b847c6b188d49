package main

import (
	"curtain/device"
	"curtain/device/mock_screen"
	"testing"
)

func TestPaint(t *testing.T) {
	screen := mock_screen.New(3, 21)
	paint(screen)

	if got := screen.StagedLine(device.Position{Row: 1}, 21); got != "   3      4      5   " {
		t.Errorf("row 1: %q", got)
	}
	cell := screen.Staged(device.Position{Row: 2, Col: 8})
	if cell.Style.BG != device.Palette(7) {
		t.Errorf("swatch 7 background %v", cell.Style.BG)
	}
	if cell.Style.FG != device.Palette(0) {
		t.Errorf("swatch 7 text %v", cell.Style.FG)
	}
}

func TestContrast(t *testing.T) {
	tests := map[byte]byte{0: 15, 7: 0, 16: 15, 231: 0, 232: 15, 255: 0}
	for index, want := range tests {
		if got := contrast(index); got != want {
			t.Errorf("contrast(%d) = %d, want %d", index, got, want)
		}
	}
}
