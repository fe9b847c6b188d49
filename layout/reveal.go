package layout

import (
	"context"
	"curtain/compositor"
	"curtain/device"
	"curtain/surface"
	"errors"
	"fmt"
	"time"
	"unicode"
)

var ErrInvalidMode = errors.New("invalid reveal mode")

type Mode int

const (
	ByChar Mode = iota
	ByWord
)

func ParseMode(name string) (Mode, error) {
	switch name {
	case "char":
		return ByChar, nil
	case "word":
		return ByWord, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, name)
}

func (m Mode) String() string {
	switch m {
	case ByChar:
		return "char"
	case ByWord:
		return "word"
	}
	return "UNKNOWN MODE"
}

// Reveal yields progressively longer prefixes of a text, ending with the
// whole text. Reset starts it over.
type Reveal struct {
	runes []rune
	stops []int
	next  int
}

func NewReveal(text string, mode Mode) *Reveal {
	r := &Reveal{runes: []rune(text)}
	for i, ch := range r.runes {
		switch mode {
		case ByChar:
			if !unicode.IsSpace(ch) {
				r.stops = append(r.stops, i+1)
			}
		case ByWord:
			last := i == len(r.runes)-1
			if !unicode.IsSpace(ch) && (last || unicode.IsSpace(r.runes[i+1])) {
				r.stops = append(r.stops, i+1)
			}
		}
	}
	return r
}

func (r *Reveal) Next() (string, bool) {
	if r.next >= len(r.stops) {
		return "", false
	}
	snapshot := string(r.runes[:r.stops[r.next]])
	r.next++
	return snapshot, true
}

func (r *Reveal) Reset() {
	r.next = 0
}

// Len is the number of snapshots in a full pass.
func (r *Reveal) Len() int {
	return len(r.stops)
}

type ReadOptions struct {
	Align     Align
	VCentered bool
	Pause     time.Duration
}

// Read animates text into s: every snapshot is laid out, staged and
// committed, then Read pauses for opts.Pause. The mode is "char" or "word".
// Cancelling ctx stops the animation and returns ctx.Err().
func Read(ctx context.Context, screen device.Screen, s *surface.Surface, text, mode string, opts ReadOptions) error {
	m, err := ParseMode(mode)
	if err != nil {
		return err
	}
	// fail before drawing anything if the final text cannot fit
	if _, err := Arrange(text, s.Size().Width, opts.Align, Options{Lines: s.Size().Height, VCentered: opts.VCentered}); err != nil {
		return err
	}

	reveal := NewReveal(text, m)
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C
	for snapshot, ok := reveal.Next(); ok; snapshot, ok = reveal.Next() {
		if err := Render(s, snapshot, opts.Align, opts.VCentered); err != nil {
			return err
		}
		compositor.Stamp(screen, s)
		screen.Commit()

		timer.Reset(opts.Pause)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	return nil
}
