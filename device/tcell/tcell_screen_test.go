package tcell

import (
	"context"
	"curtain/compositor"
	"curtain/device"
	"curtain/keys"
	"curtain/lifecycle"
	"curtain/surface"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimulation(t *testing.T) (*tcellScreen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := NewWithScreen(sim)
	if err != nil {
		t.Fatalf("NewWithScreen: %v", err)
	}
	sim.SetSize(20, 5)
	return s, sim
}

func TestSize(t *testing.T) {
	s, _ := newSimulation(t)
	defer s.Close()
	if got := s.Size(); got != (device.Size{Height: 5, Width: 20}) {
		t.Errorf("size %v", got)
	}
}

func TestStageRoundTrip(t *testing.T) {
	s, sim := newSimulation(t)
	defer s.Close()

	style := device.Style{FG: device.Palette(3), BG: device.Palette(200), Flags: device.Bold | device.Underline}
	pos := device.Position{Row: 2, Col: 7}
	s.Stage(pos, device.Cell{Rune: 'x', Style: style})

	got := s.Staged(pos)
	if got.Rune != 'x' {
		t.Errorf("rune %q", got.Rune)
	}
	if got.Style != style {
		t.Errorf("style %v, want %v", got.Style, style)
	}

	if got := s.Staged(device.Position{}); got.Rune != ' ' || got.Style != (device.Style{}) {
		t.Errorf("untouched cell %v", got)
	}

	s.Commit()
	cells, width, _ := sim.GetContents()
	cell := cells[2*width+7]
	if len(cell.Runes) != 1 || cell.Runes[0] != 'x' {
		t.Errorf("committed runes %q", cell.Runes)
	}
}

func TestContinuationCellsSkipped(t *testing.T) {
	s, _ := newSimulation(t)
	defer s.Close()

	s.Stage(device.Position{Col: 0}, device.Cell{Rune: '世'})
	s.Stage(device.Position{Col: 1}, device.Cell{Rune: 0})
	if got := s.Staged(device.Position{}); got.Rune != '世' {
		t.Errorf("wide rune overwritten: %q", got.Rune)
	}
}

func TestCursor(t *testing.T) {
	s, sim := newSimulation(t)
	defer s.Close()

	s.ShowCursor(device.Position{Row: 1, Col: 4})
	s.Commit()
	col, row, visible := sim.GetCursor()
	if col != 4 || row != 1 || !visible {
		t.Errorf("cursor %d,%d visible=%v", row, col, visible)
	}

	s.HideCursor()
	s.Commit()
	if _, _, visible := sim.GetCursor(); visible {
		t.Error("cursor still visible")
	}
}

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		event *tcell.EventKey
		want  keys.Key
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), keys.Char('a')},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), keys.Special(keys.Enter)},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), keys.Special(keys.Backspace)},
		{tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl), keys.Special(keys.WordBackspace)},
		{tcell.NewEventKey(tcell.KeyCtrlU, 0, tcell.ModCtrl), keys.Special(keys.ClearAll)},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), keys.Special(keys.Esc)},
	}
	for _, test := range tests {
		if got := KeyFromEvent(test.event); got != test.want {
			t.Errorf("%s: got %v, want %v", test.event.Name(), got, test.want)
		}
	}

	up := KeyFromEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if up.Kind != keys.Other || up.Name != "Up" {
		t.Errorf("up arrow decoded as %v", up)
	}
}

func TestListen(t *testing.T) {
	s, sim := newSimulation(t)
	defer s.Close()

	lc := lifecycle.New(context.Background())
	received := make(chan keys.Key, 8)
	s.Listen(lc, func(key keys.Key) bool {
		if key.Name == "Resize" {
			return true
		}
		received <- key
		return key != keys.Char('q')
	})

	sim.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	want := []keys.Key{keys.Char('h'), keys.Special(keys.Enter), keys.Char('q')}
	for _, w := range want {
		select {
		case got := <-received:
			if got != w {
				t.Errorf("got %v, want %v", got, w)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %v", w)
		}
	}
	lc.Stop()
}

func TestOverwrittenWideRuneLeavesNoStaleCell(t *testing.T) {
	s, sim := newSimulation(t)
	defer s.Close()

	surf := surface.New(device.Position{}, device.Size{Height: 1, Width: 4})
	for _, step := range []struct {
		col  int
		text string
	}{{0, "wxyz"}, {0, "世"}, {0, "a"}} {
		surf.WriteAt(0, step.col, step.text)
		compositor.Stamp(s, surf)
		s.Commit()
	}
	cells, _, _ := sim.GetContents()
	var got []rune
	for _, cell := range cells[:4] {
		got = append(got, cell.Runes...)
	}
	if string(got) != "a yz" {
		t.Errorf("terminal shows %q", string(got))
	}
}
