// curtain is a small terminal console built from the curtain widgets: an
// animated banner panel, a scrollable output page and a prompt line.
//
// Keys: F2 toggles the banner, arrow keys scroll the output, Esc freezes the
// prompt, Ctrl+C quits. Typing /clear empties the output and /quit exits.
package main

import (
	"context"
	"curtain/config"
	"curtain/device/tcell"
	"curtain/keys"
	"curtain/layout"
	"curtain/lifecycle"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath, logPath, reveal string

	flagSet := pflag.NewFlagSet("curtain", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to a YAML layout file")
	flagSet.StringVar(&logPath, "log", "", "append log lines to this file")
	flagSet.StringVar(&reveal, "reveal", "", "banner animation mode, char or word (overrides the config)")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if reveal != "" {
		if _, err := layout.ParseMode(reveal); err != nil {
			return err
		}
		cfg.Reveal.Mode = reveal
	}

	log.SetFlags(0)
	log.SetOutput(io.Discard)
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer screen.Close()

	a, err := newApp(screen, cfg)
	if err != nil {
		return err
	}
	screen.Commit()

	lc := lifecycle.New(context.Background())
	a.onQuit = lc.Cancel

	if err := a.revealBanner(lc.Context()); err != nil {
		log.Printf("banner: %v", err)
	}

	a.start()
	screen.Listen(lc, func(key keys.Key) bool {
		return a.send(key)
	})

	for {
		line, err := a.terminal.GetText(lc.Context())
		if err != nil {
			break
		}
		if !a.send(submission(line)) {
			break
		}
	}

	lc.Cancel()
	a.stop()
	screen.Interrupt()
	lc.Stop()
	return nil
}
