// Package config loads the server configuration file and applies defaults
// and environment overrides.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables that override values read from the file.
const (
	EnvLogLevel    = "DISSOLVE_LOG_LEVEL"
	EnvLogFormat   = "DISSOLVE_LOG_FORMAT"
	EnvHistoryPath = "DISSOLVE_HISTORY"
	EnvDriftSeed   = "DISSOLVE_DRIFT_SEED"
)

// Config is the full configuration tree.
type Config struct {
	Server   Server   `yaml:"server"   json:"server"`
	Log      Log      `yaml:"log"      json:"log"`
	Defaults Defaults `yaml:"defaults" json:"defaults"`
	History  History  `yaml:"history"  json:"history"`
}

// Server identifies the MCP server to clients.
type Server struct {
	Name    string `yaml:"name"    json:"name"`
	Version string `yaml:"version" json:"version"`
}

// Log selects the slog level and handler format.
type Log struct {
	Level  string `yaml:"level"  json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Defaults are the values used when a caller omits an optional argument.
type Defaults struct {
	TrajectorySteps int   `yaml:"trajectory_steps" json:"trajectory_steps"`
	StepsPerCycle   int   `yaml:"steps_per_cycle"  json:"steps_per_cycle"`
	NumCycles       int   `yaml:"num_cycles"       json:"num_cycles"`
	KeyframeCount   int   `yaml:"keyframe_count"   json:"keyframe_count"`
	DriftSeed       int64 `yaml:"drift_seed"       json:"drift_seed"`
}

// History configures tool-call recording. An empty Path disables it.
type History struct {
	Path string `yaml:"path" json:"path"`
	// Keep bounds the number of stored runs; 0 keeps everything.
	Keep int `yaml:"keep" json:"keep"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: Server{Name: "dissolve", Version: "dev"},
		Log:    Log{Level: "info", Format: "text"},
		Defaults: Defaults{
			TrajectorySteps: 20,
			StepsPerCycle:   20,
			NumCycles:       3,
			KeyframeCount:   4,
		},
	}
}

// fill replaces zero values with defaults. DriftSeed 0 is a valid seed and
// is left alone.
func (c *Config) fill() {
	d := Default()
	if c.Server.Name == "" {
		c.Server.Name = d.Server.Name
	}
	if c.Server.Version == "" {
		c.Server.Version = d.Server.Version
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Defaults.TrajectorySteps < 1 {
		c.Defaults.TrajectorySteps = d.Defaults.TrajectorySteps
	}
	if c.Defaults.StepsPerCycle < 1 {
		c.Defaults.StepsPerCycle = d.Defaults.StepsPerCycle
	}
	if c.Defaults.NumCycles < 1 {
		c.Defaults.NumCycles = d.Defaults.NumCycles
	}
	if c.Defaults.KeyframeCount < 1 {
		c.Defaults.KeyframeCount = d.Defaults.KeyframeCount
	}
	if c.History.Keep < 0 {
		c.History.Keep = 0
	}
}

// ApplyEnv overrides c from the process environment using getenv
// (os.Getenv when nil). Malformed numeric values are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	if v := strings.TrimSpace(getenv(EnvLogFormat)); v != "" {
		c.Log.Format = v
	}
	if v := strings.TrimSpace(getenv(EnvHistoryPath)); v != "" {
		c.History.Path = v
	}
	if v := strings.TrimSpace(getenv(EnvDriftSeed)); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Defaults.DriftSeed = seed
		}
	}
}
