package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tmux-typeahead/internal/app"
	"github.com/atomicstack/tmux-typeahead/internal/state"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigFile = "TMUX_TYPEAHEAD_CONFIG"
	envSocketPath = "TMUX_TYPEAHEAD_SOCKET"
	envWidth      = "TMUX_TYPEAHEAD_WIDTH"
	envHeight     = "TMUX_TYPEAHEAD_HEIGHT"
	envTrace      = "TMUX_TYPEAHEAD_TRACE"
	envLogFile    = "TMUX_TYPEAHEAD_LOG_FILE"
	envSource     = "TMUX_TYPEAHEAD_SOURCE"
	envCreate     = "TMUX_TYPEAHEAD_CREATE"
	envLimit      = "TMUX_TYPEAHEAD_LIMIT"
	envPoll       = "TMUX_TYPEAHEAD_POLL"
)

const (
	defaultLimit = 50
	defaultPoll  = 1500 * time.Millisecond
)

// flag name -> environment variable consulted before the config file.
var envForFlag = map[string]string{
	"socket":   envSocketPath,
	"width":    envWidth,
	"height":   envHeight,
	"trace":    envTrace,
	"log-file": envLogFile,
	"source":   envSource,
	"create":   envCreate,
	"limit":    envLimit,
	"poll":     envPoll,
}

// Load parses configuration from CLI arguments, environment variables and
// the optional TOML config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tmux-typeahead", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configFile := fs.String("config", envOrDefault(env, envConfigFile, ""), "path to a TOML config file")
	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	source := fs.String("source", envOrDefault(env, envSource, string(state.SourceAll)), "candidates to search: sessions, windows or all")
	create := fs.Bool("create", envOrBool(env, envCreate, true), "offer creating a session named after the query")
	limit := fs.Int("limit", envOrInt(env, envLimit, defaultLimit), "maximum number of ranked matches (0 for no limit)")
	poll := fs.Duration("poll", envOrDuration(env, envPoll, defaultPoll), "interval between tmux refreshes")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if path := strings.TrimSpace(*configFile); path != "" {
		file, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		explicit := make(map[string]bool)
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		fromFile := func(name string) bool {
			if explicit[name] {
				return false
			}
			_, inEnv := env[envForFlag[name]]
			return !inEnv
		}
		if err := file.apply(fromFile, fileTargets{
			socket:  socket,
			width:   width,
			height:  height,
			trace:   trace,
			logFile: logFile,
			source:  source,
			create:  create,
			limit:   limit,
			poll:    poll,
		}); err != nil {
			return Config{}, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	cfg := Config{
		App: app.Config{
			SocketPath:   *socket,
			Width:        *width,
			Height:       *height,
			Source:       state.Source(strings.ToLower(strings.TrimSpace(*source))),
			Create:       *create,
			Limit:        *limit,
			PollInterval: *poll,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: *configFile,
		Flags: map[string]string{
			"config":  *configFile,
			"socket":  *socket,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
			"source":  *source,
			"create":  strconv.FormatBool(*create),
			"limit":   strconv.Itoa(*limit),
			"poll":    poll.String(),
		},
		Args: append([]string(nil), args...),
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the application cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.Limit < 0 {
		return fmt.Errorf("limit must be >= 0 (got %d)", cfg.App.Limit)
	}
	if cfg.App.PollInterval < 0 {
		return fmt.Errorf("poll must be >= 0 (got %s)", cfg.App.PollInterval)
	}
	if !cfg.App.Source.Valid() {
		return fmt.Errorf("source must be one of sessions, windows, all (got %q)", cfg.App.Source)
	}
	return nil
}
