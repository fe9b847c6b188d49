package device

import (
	"errors"
	"testing"
)

func TestPalette(t *testing.T) {
	if !ColorDefault.IsDefault() {
		t.Error("ColorDefault is not default")
	}
	for _, index := range []byte{0, 17, 231, 255} {
		c := Palette(index)
		if c.IsDefault() {
			t.Errorf("Palette(%d) is default", index)
		}
		if c.Index() != index {
			t.Errorf("Palette(%d).Index() = %d", index, c.Index())
		}
	}
}

func TestSizeContains(t *testing.T) {
	size := Size{Height: 2, Width: 3}
	if !size.Contains(Position{1, 2}) {
		t.Error("expected (1,2) inside 2x3")
	}
	for _, pos := range []Position{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		if size.Contains(pos) {
			t.Errorf("expected %v outside 2x3", pos)
		}
	}
	if (Size{0, 5}).Area() != 0 || (Size{-1, 5}).Area() != 0 {
		t.Error("empty sizes must have zero area")
	}
}

func TestCheckMinimum(t *testing.T) {
	if err := CheckMinimum("panel", Size{3, 3}, Size{3, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := CheckMinimum("panel", Size{3, 3}, Size{2, 10})
	if !errors.Is(err, ErrTooSmall) {
		t.Fatalf("expected ErrTooSmall, got %v", err)
	}
	var geometry *GeometryError
	if !errors.As(err, &geometry) {
		t.Fatalf("expected *GeometryError, got %T", err)
	}
	if geometry.Got != (Size{2, 10}) || geometry.Op != "panel" {
		t.Errorf("unexpected error fields: %#v", geometry)
	}
}

func TestFlagsString(t *testing.T) {
	if got := (Bold | Reverse).String(); got != "Bold, Reverse" {
		t.Errorf("got %q", got)
	}
}
