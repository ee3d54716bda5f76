package aml

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures an Engine. The zero value is usable: a 60 TPS
// FrameScheduler, the NodeApplier and no logging.
type Config struct {
	// Scheduler drives playback. Nil uses NewFrameScheduler(TPS).
	Scheduler Scheduler `yaml:"-"`
	// Applier receives the computed frames. Nil uses NodeApplier.
	Applier Applier `yaml:"-"`
	// Logger receives diagnostics. Nil picks a stderr slog logger when Debug
	// or LogLevel is set, and discards otherwise.
	Logger Logger `yaml:"-"`

	Debug     bool   `yaml:"debug"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"` // "text" (default) or "json"

	// Perspective is the focal length copied into every Transform.
	Perspective float64 `yaml:"perspective"`
	// TPS is the frame rate of the default scheduler.
	TPS int `yaml:"tps"`
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	TPS     int    `yaml:"tps"`
	ShowFPS bool   `yaml:"show_fps"`
}

// FileConfig is the layout of a YAML configuration file:
//
//	engine:
//	  debug: true
//	  perspective: 800
//	window:
//	  title: preview
//	  width: 640
//	  height: 480
type FileConfig struct {
	Engine Config    `yaml:"engine"`
	Window RunConfig `yaml:"window"`
}

// LoadConfig decodes a FileConfig. Missing keys keep their zero values.
func LoadConfig(r io.Reader) (FileConfig, error) {
	var fc FileConfig
	if err := yaml.NewDecoder(r).Decode(&fc); err != nil && err != io.EOF {
		return FileConfig{}, fmt.Errorf("aml: parse config: %w", err)
	}
	return fc, nil
}

// LoadConfigFile reads a FileConfig from path.
func LoadConfigFile(path string) (FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileConfig{}, err
	}
	defer f.Close()
	return LoadConfig(f)
}

// logger returns the configured logger or builds the default one.
func (c Config) logger() Logger {
	if c.Logger != nil {
		return c.Logger
	}
	level := c.LogLevel
	if level == "" && c.Debug {
		level = "debug"
	}
	if level == "" {
		return NopLogger{}
	}
	return NewSlogLogger(os.Stderr, c.LogFormat, level)
}
