package tcell

import (
	"context"
	"curtain/device"
	"curtain/keys"
	"curtain/lifecycle"
	"log"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
)

type tcellScreen struct {
	screen tcell.Screen
	commit sync.Mutex
	output *termenv.Output
	fg, bg termenv.Color
}

// NewScreen opens the terminal. Close restores it, including the terminal's
// own foreground and background colors.
func NewScreen() (*tcellScreen, error) {
	output := termenv.NewOutput(os.Stdout)
	fg := output.ForegroundColor()
	bg := output.BackgroundColor()

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	s, err := NewWithScreen(screen)
	if err != nil {
		return nil, err
	}
	s.output, s.fg, s.bg = output, fg, bg
	return s, nil
}

// NewWithScreen wraps an uninitialized tcell screen, such as a simulation screen.
func NewWithScreen(screen tcell.Screen) (*tcellScreen, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.EnablePaste()
	screen.Clear()
	return &tcellScreen{screen: screen}, nil
}

func (s *tcellScreen) Size() device.Size {
	width, height := s.screen.Size()
	return device.Size{Height: height, Width: width}
}

// Stage writes into tcell's back buffer. Wide-rune continuation cells are
// skipped: tcell tracks them itself.
func (s *tcellScreen) Stage(pos device.Position, cell device.Cell) {
	if cell.Rune == 0 {
		return
	}
	s.screen.SetContent(pos.Col, pos.Row, cell.Rune, nil, toTcell(cell.Style))
}

func (s *tcellScreen) Staged(pos device.Position) device.Cell {
	r, _, style, _ := s.screen.GetContent(pos.Col, pos.Row)
	return device.Cell{Rune: r, Style: fromTcell(style)}
}

// Commit pushes the back buffer to the terminal. Concurrent commits are serialized.
func (s *tcellScreen) Commit() {
	s.commit.Lock()
	defer s.commit.Unlock()
	s.screen.Show()
}

func (s *tcellScreen) ShowCursor(pos device.Position) {
	s.screen.ShowCursor(pos.Col, pos.Row)
}

func (s *tcellScreen) HideCursor() {
	s.screen.HideCursor()
}

// Listen polls terminal events on a lifecycle goroutine and hands every key to
// sink until sink returns false, the lifecycle stops or the screen is closed.
// A resize re-syncs the screen and is reported as the Other key "Resize".
func (s *tcellScreen) Listen(lc *lifecycle.Lifecycle, sink func(keys.Key) bool) {
	lc.Go(func(ctx context.Context) {
		for !lc.ShouldStop() {
			event := s.screen.PollEvent()
			if event == nil {
				return
			}
			switch ev := event.(type) {
			case *tcell.EventResize:
				s.commit.Lock()
				s.screen.Sync()
				s.commit.Unlock()
				if !sink(keys.Named("Resize")) {
					return
				}

			case *tcell.EventKey:
				if !sink(KeyFromEvent(ev)) {
					return
				}

			case *tcell.EventInterrupt, *tcell.EventPaste:

			default:
				log.Printf("tcell: unhandled event %T", ev)
			}
		}
	})
}

// Interrupt wakes a Listen loop blocked in PollEvent.
func (s *tcellScreen) Interrupt() {
	s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

func (s *tcellScreen) Close() {
	s.screen.Fini()
	if s.output != nil {
		s.output.SetForegroundColor(s.fg)
		s.output.SetBackgroundColor(s.bg)
	}
}

func KeyFromEvent(ev *tcell.EventKey) keys.Key {
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyLF:
		return keys.Special(keys.Enter)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return keys.Special(keys.Backspace)
	case tcell.KeyCtrlW:
		return keys.Special(keys.WordBackspace)
	case tcell.KeyCtrlU:
		return keys.Special(keys.ClearAll)
	case tcell.KeyEscape:
		return keys.Special(keys.Esc)
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModAlt|tcell.ModCtrl) == 0 {
			return keys.Char(ev.Rune())
		}
	}
	return keys.Named(ev.Name())
}

func toTcell(style device.Style) tcell.Style {
	result := tcell.StyleDefault.
		Bold(style.Flags&device.Bold == device.Bold).
		Italic(style.Flags&device.Italic == device.Italic).
		Reverse(style.Flags&device.Reverse == device.Reverse).
		Underline(style.Flags&device.Underline == device.Underline)
	if !style.FG.IsDefault() {
		result = result.Foreground(tcell.PaletteColor(int(style.FG.Index())))
	}
	if !style.BG.IsDefault() {
		result = result.Background(tcell.PaletteColor(int(style.BG.Index())))
	}
	return result
}

func fromTcell(style tcell.Style) device.Style {
	fg, bg, attrs := style.Decompose()
	result := device.Style{FG: fromTcellColor(fg), BG: fromTcellColor(bg)}
	if attrs&tcell.AttrBold != 0 {
		result.Flags |= device.Bold
	}
	if attrs&tcell.AttrItalic != 0 {
		result.Flags |= device.Italic
	}
	if attrs&tcell.AttrReverse != 0 {
		result.Flags |= device.Reverse
	}
	if attrs&tcell.AttrUnderline != 0 {
		result.Flags |= device.Underline
	}
	return result
}

func fromTcellColor(c tcell.Color) device.Color {
	if c == tcell.ColorDefault || c&tcell.ColorIsRGB != 0 || c&tcell.ColorValid == 0 {
		return device.ColorDefault
	}
	index := int(c - tcell.ColorValid)
	if index < 0 || index > 255 {
		return device.ColorDefault
	}
	return device.Palette(byte(index))
}
