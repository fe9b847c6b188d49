// Package input implements bordered line-editing widgets.
//
// ProcKey must be called from a single goroutine in the order keys were
// produced. GetText and TryGetText may be called from any other goroutine;
// submissions travel through a single slot that a newer submission
// overwrites and a read empties.
package input

import (
	"context"
	"curtain/compositor"
	"curtain/device"
	"curtain/keys"
	"curtain/surface"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
)

const TerminalPrompt = "> "

// WordDelete selects how WordBackspace treats the space before the removed word.
type WordDelete int

const (
	// KeepSeparator removes trailing spaces and the word before them,
	// leaving the separator that preceded that word.
	KeepSeparator WordDelete = iota
	// TrimSeparator cuts the buffer at its last space, removing the space too.
	TrimSeparator
)

type Widget struct {
	screen     device.Screen
	border     *surface.Surface
	content    *surface.Surface
	prompt     []rune
	buffer     []rune
	capacity   int
	editing    bool
	wordDelete WordDelete

	rendered      string
	renderedValid bool

	mu        sync.Mutex
	submitted chan string
}

type Option func(*Widget)

func WithWordDelete(policy WordDelete) Option {
	return func(w *Widget) { w.wordDelete = policy }
}

// NewTextBox creates a bordered input without a prompt.
func NewTextBox(screen device.Screen, lines, cols, row, col int, opts ...Option) (*Widget, error) {
	return newWidget(screen, "textbox", "", device.Size{Height: 3, Width: 3}, lines, cols, row, col, opts)
}

// NewTerminal creates a bordered input that shows TerminalPrompt before the text.
func NewTerminal(screen device.Screen, lines, cols, row, col int, opts ...Option) (*Widget, error) {
	minimum := device.Size{Height: 3, Width: len(TerminalPrompt) + 3}
	return newWidget(screen, "terminal", TerminalPrompt, minimum, lines, cols, row, col, opts)
}

func newWidget(screen device.Screen, op, prompt string, minimum device.Size, lines, cols, row, col int, opts []Option) (*Widget, error) {
	if err := device.CheckMinimum(op, minimum, device.Size{Height: lines, Width: cols}); err != nil {
		return nil, err
	}
	w := &Widget{
		screen:    screen,
		border:    surface.New(device.Position{Row: row, Col: col}, device.Size{Height: lines, Width: cols}),
		content:   surface.New(device.Position{Row: row + 1, Col: col + 1}, device.Size{Height: lines - 2, Width: cols - 2}),
		prompt:    []rune(prompt),
		editing:   true,
		submitted: make(chan string, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.capacity = w.content.Size().Area() - len(w.prompt)
	compositor.DrawBox(w.border, 0, 0, lines, cols)
	compositor.Stamp(screen, w.border)
	w.redraw()
	return w, nil
}

func (w *Widget) Buffer() string { return string(w.buffer) }
func (w *Widget) Capacity() int  { return w.capacity }
func (w *Widget) Editing() bool  { return w.editing }

// Content is the surface the prompt and buffer are drawn into.
func (w *Widget) Content() *surface.Surface {
	return w.content
}

// Submitted reports whether a submission is waiting to be read.
func (w *Widget) Submitted() bool {
	return len(w.submitted) > 0
}

// ProcKey applies one key. While not editing, only Esc is honoured.
func (w *Widget) ProcKey(key keys.Key) {
	if key.Kind == keys.Esc {
		w.editing = !w.editing
		return
	}
	if !w.editing {
		return
	}

	switch key.Kind {
	case keys.Enter:
		w.submit(string(w.buffer))
		w.buffer = w.buffer[:0]

	case keys.Backspace:
		if len(w.buffer) > 0 {
			w.buffer = w.buffer[:len(w.buffer)-1]
		}

	case keys.WordBackspace:
		w.deleteWord()

	case keys.ClearAll:
		w.buffer = w.buffer[:0]

	case keys.Rune:
		if key.Printable() && len(w.buffer) < w.capacity && w.fits(key.Rune) {
			w.buffer = append(w.buffer, key.Rune)
		}

	default:
		return
	}
	w.redraw()
}

// fits reports whether prompt, buffer and r still lay out inside the content
// area. Wide runes take two cells and wrap whole, so they can fill the area
// before the rune count reaches capacity.
func (w *Widget) fits(r rune) bool {
	size := w.content.Size()
	row, col := 0, 0
	place := func(r rune) {
		width := runewidth.RuneWidth(r)
		if col+width > size.Width {
			row++
			col = 0
		}
		col += width
	}
	for _, p := range w.prompt {
		place(p)
	}
	for _, b := range w.buffer {
		place(b)
	}
	place(r)
	return row < size.Height
}

func (w *Widget) deleteWord() {
	end := len(w.buffer)
	switch w.wordDelete {
	case KeepSeparator:
		for end > 0 && w.buffer[end-1] == ' ' {
			end--
		}
		for end > 0 && w.buffer[end-1] != ' ' {
			end--
		}
	case TrimSeparator:
		end = 0
		for i := len(w.buffer) - 1; i >= 0; i-- {
			if w.buffer[i] == ' ' {
				end = i
				break
			}
		}
	}
	w.buffer = w.buffer[:end]
	if strings.TrimSpace(string(w.buffer)) == "" {
		w.buffer = w.buffer[:0]
	}
}

func (w *Widget) submit(message string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	select {
	case <-w.submitted:
	default:
	}
	w.submitted <- message
}

// GetText blocks until a submission is available and returns it, clearing the slot.
func (w *Widget) GetText(ctx context.Context) (string, error) {
	select {
	case message := <-w.submitted:
		return message, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// TryGetText returns the pending submission without blocking.
func (w *Widget) TryGetText() (string, bool) {
	select {
	case message := <-w.submitted:
		return message, true
	default:
		return "", false
	}
}

// Refresh re-stages the border and the content unconditionally.
func (w *Widget) Refresh() {
	compositor.Stamp(w.screen, w.border)
	w.renderedValid = false
	w.redraw()
}

// redraw rewrites the content only when the visible text changed since the last call.
func (w *Widget) redraw() {
	text := string(w.prompt) + string(w.buffer)
	if w.renderedValid && text == w.rendered {
		return
	}
	w.rendered = text
	w.renderedValid = true

	w.content.Clear()
	w.content.Write(text)
	compositor.Stamp(w.screen, w.content)
	w.screen.ShowCursor(w.content.Origin().Add(w.content.Cursor()))
}
