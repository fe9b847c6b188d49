package main

import (
	"context"
	"curtain/actor"
	"curtain/config"
	"curtain/device"
	"curtain/input"
	"curtain/keys"
	"curtain/layout"
	"curtain/page"
	"curtain/panel"
	"curtain/surface"
	"errors"
	"fmt"
	"log"
	"strings"
)

// submission is a line the prompt handed back through GetText.
type submission string

// app owns every widget. All widget calls after start run on the events actor.
type app struct {
	screen   device.Screen
	cfg      *config.Config
	banner   *panel.Panel
	console  *page.Page
	terminal *input.Widget
	events   actor.Actor[any]
	onQuit   func()
}

func newApp(screen device.Screen, cfg *config.Config) (*app, error) {
	size := screen.Size()
	consoleLines := size.Height - cfg.Banner.Lines - cfg.Terminal.Lines
	if consoleLines < 1 {
		want := device.Size{Height: cfg.Banner.Lines + cfg.Terminal.Lines + 1, Width: size.Width}
		return nil, &device.GeometryError{Op: "curtain", Want: want, Got: size, Err: device.ErrTooSmall}
	}

	banner, err := panel.New(screen, cfg.Banner.Lines, size.Width, 0, 0, true)
	if err != nil {
		return nil, fmt.Errorf("banner: %w", err)
	}

	viewport := surface.New(device.Position{Row: cfg.Banner.Lines}, device.Size{Height: consoleLines, Width: size.Width})
	console, err := page.New(screen, viewport, page.WithMultiplier(cfg.Console.Multiplier))
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}

	wordDelete := input.KeepSeparator
	if cfg.Terminal.WordDelete == "trim" {
		wordDelete = input.TrimSeparator
	}
	terminal, err := input.NewTerminal(screen, cfg.Terminal.Lines, size.Width, size.Height-cfg.Terminal.Lines, 0,
		input.WithWordDelete(wordDelete))
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	console.Out("F2 toggles the banner, arrows scroll, Esc freezes the prompt, Ctrl+C quits.")
	return &app{
		screen:   screen,
		cfg:      cfg,
		banner:   banner,
		console:  console,
		terminal: terminal,
		onQuit:   func() {},
	}, nil
}

func (a *app) revealBanner(ctx context.Context) error {
	align, err := a.cfg.Banner.Alignment()
	if err != nil {
		return err
	}
	err = layout.Read(ctx, a.screen, a.banner.Content(), a.cfg.Banner.Text, a.cfg.Reveal.Mode, layout.ReadOptions{
		Align:     align,
		VCentered: a.cfg.Banner.VCentered,
		Pause:     a.cfg.Reveal.Pause,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *app) start() {
	a.events = actor.NewActor[any]("events", a.handle)
}

// send reports false once the events actor has stopped.
func (a *app) send(event any) bool {
	return a.events.Send(event)
}

func (a *app) stop() {
	a.events.Stop()
}

// handle applies one event and commits the result. Returning false stops the actor.
func (a *app) handle(event any) bool {
	defer a.screen.Commit()

	switch event := event.(type) {
	case keys.Key:
		return a.handleKey(event)

	case submission:
		return a.handleLine(string(event))

	default:
		log.Printf("curtain: unexpected event %T", event)
	}
	return true
}

func (a *app) handleKey(key keys.Key) bool {
	if key.Kind != keys.Other {
		a.terminal.ProcKey(key)
		return true
	}

	step := a.cfg.Console.Step
	switch key.Name {
	case "Ctrl+C", "Ctrl-C":
		a.onQuit()
		return false
	case "Up":
		a.console.Shift(page.Up, step)
	case "Down":
		a.console.Shift(page.Down, step)
	case "Left":
		a.console.Shift(page.Left, step)
	case "Right":
		a.console.Shift(page.Right, step)
	case "Home":
		a.console.ResetOffset()
	case "F2":
		a.banner.Toggle()
		return true
	case "Resize":
		a.banner.Refresh()
		a.terminal.Refresh()
	default:
		a.terminal.ProcKey(key)
		return true
	}
	a.console.Refresh()
	return true
}

func (a *app) handleLine(line string) bool {
	command := strings.TrimSpace(line)
	switch {
	case command == "/quit":
		a.onQuit()
		return false
	case command == "/clear":
		a.console.Clear()
	case strings.HasPrefix(command, "/"):
		a.console.Outf("unknown command %s (try /clear or /quit)", command)
	default:
		a.console.Out(line)
	}
	return true
}
