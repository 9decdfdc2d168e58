package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors the command line flags. Pointer fields distinguish keys
// that are absent from keys set to their zero value.
type fileConfig struct {
	Socket  *string `toml:"socket"`
	Width   *int    `toml:"width"`
	Height  *int    `toml:"height"`
	Trace   *bool   `toml:"trace"`
	LogFile *string `toml:"log_file"`
	Source  *string `toml:"source"`
	Create  *bool   `toml:"create"`
	Limit   *int    `toml:"limit"`
	Poll    *string `toml:"poll"`
}

type fileTargets struct {
	socket  *string
	width   *int
	height  *int
	trace   *bool
	logFile *string
	source  *string
	create  *bool
	limit   *int
	poll    *time.Duration
}

func loadFile(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// apply copies every key present in the file into its target when use
// allows it for that flag name.
func (f fileConfig) apply(use func(name string) bool, t fileTargets) error {
	setString(use, "socket", f.Socket, t.socket)
	setInt(use, "width", f.Width, t.width)
	setInt(use, "height", f.Height, t.height)
	setBool(use, "trace", f.Trace, t.trace)
	setString(use, "log-file", f.LogFile, t.logFile)
	setString(use, "source", f.Source, t.source)
	setBool(use, "create", f.Create, t.create)
	setInt(use, "limit", f.Limit, t.limit)
	if f.Poll != nil && use("poll") {
		d, err := time.ParseDuration(*f.Poll)
		if err != nil {
			return fmt.Errorf("poll: %w", err)
		}
		*t.poll = d
	}
	return nil
}

func setString(use func(string) bool, name string, v, dst *string) {
	if v != nil && use(name) {
		*dst = *v
	}
}

func setInt(use func(string) bool, name string, v, dst *int) {
	if v != nil && use(name) {
		*dst = *v
	}
}

func setBool(use func(string) bool, name string, v, dst *bool) {
	if v != nil && use(name) {
		*dst = *v
	}
}
