package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/tmux-typeahead/internal/app"
	"github.com/atomicstack/tmux-typeahead/internal/config"
	"github.com/atomicstack/tmux-typeahead/internal/logging"
	"github.com/atomicstack/tmux-typeahead/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	if logging.TraceEnabled() {
		events.App.Start(startupTracePayload(cfg, probeTerminal(os.Stdout, os.Stdin)))
	}

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// terminal describes the first standard descriptor attached to a TTY.
type terminal struct {
	Source string `json:"source,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

func probeTerminal(files ...*os.File) terminal {
	var last terminal
	for _, f := range files {
		if f == nil {
			continue
		}
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		width, height, err := term.GetSize(fd)
		if err != nil {
			last = terminal{Source: f.Name(), Error: err.Error()}
			continue
		}
		return terminal{Source: f.Name(), Width: width, Height: height}
	}
	return last
}

// viewportSize resolves what the popup will draw into: a configured size wins,
// otherwise the terminal's.
func viewportSize(cfg config.Config, tty terminal) (int, int) {
	width, height := cfg.App.Width, cfg.App.Height
	if width <= 0 {
		width = tty.Width
	}
	if height <= 0 {
		height = tty.Height
	}
	return width, height
}

// startupTracePayload records the resolved settings the typeahead runs with.
func startupTracePayload(cfg config.Config, tty terminal) map[string]interface{} {
	width, height := viewportSize(cfg, tty)
	settings := map[string]interface{}{
		"socket": cfg.App.SocketPath,
		"source": string(cfg.App.Source),
		"create": cfg.App.Create,
		"limit":  cfg.App.Limit,
		"poll":   cfg.App.PollInterval.String(),
		"width":  width,
		"height": height,
	}
	payload := map[string]interface{}{
		"argv":       cfg.Args,
		"flags":      cfg.Flags,
		"settings":   settings,
		"configFile": cfg.File,
		"logFile":    logging.Path(),
		"terminal":   tty,
		"insideTmux": os.Getenv("TMUX") != "",
	}
	if tty.Source == "" && tty.Error == "" {
		payload["terminal"] = "none"
	}
	return payload
}
