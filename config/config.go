// Package config loads visualizer settings from defaults, an optional config
// file and CHRONOCHESS_* environment variables, in increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/plus3/chronochess/app"
	"github.com/plus3/chronochess/board"
	"github.com/plus3/chronochess/scrubber"
	"github.com/plus3/chronochess/timeline"
)

const EnvPrefix = "CHRONOCHESS"

type Config struct {
	Window   WindowConfig   `mapstructure:"window"`
	Timeline TimelineConfig `mapstructure:"timeline"`
	Scrubber ScrubberConfig `mapstructure:"scrubber"`
	Log      LogConfig      `mapstructure:"log"`
	StartFEN string         `mapstructure:"start_fen"`
	DebugUI  bool           `mapstructure:"debug_ui"`
}

type WindowConfig struct {
	Width int    `mapstructure:"width"`
	TPS   int    `mapstructure:"tps"`
	Title string `mapstructure:"title"`
}

type TimelineConfig struct {
	MinThumbnail float64 `mapstructure:"min_thumbnail"`
	Stacking     string  `mapstructure:"stacking"`
}

type ScrubberConfig struct {
	Animate       bool   `mapstructure:"animate"`
	DurationTicks int    `mapstructure:"duration_ticks"`
	Mode          string `mapstructure:"mode"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// SetDefaults registers every key with its default value. Keys must be known
// to viper for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 600)
	v.SetDefault("window.tps", 60)
	v.SetDefault("window.title", "chronochess")
	v.SetDefault("timeline.min_thumbnail", timeline.DefaultMinThumbnailSize)
	v.SetDefault("timeline.stacking", timeline.StackSiblings.String())
	v.SetDefault("scrubber.animate", true)
	v.SetDefault("scrubber.duration_ticks", scrubber.DefaultDuration)
	v.SetDefault("scrubber.mode", scrubber.ScrubSnap.String())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("start_fen", "")
	v.SetDefault("debug_ui", false)
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path, when set, into v and decodes the merged settings.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the visualizer cannot start with.
func (c *Config) Validate() error {
	if c.Window.Width < 2*board.Width {
		return fmt.Errorf("window.width %d is too small", c.Window.Width)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS)
	}
	if c.Scrubber.DurationTicks <= 0 {
		return fmt.Errorf("scrubber.duration_ticks must be positive, got %d", c.Scrubber.DurationTicks)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// InitialBoard returns the configured start position, the standard one by
// default.
func (c *Config) InitialBoard() (board.Board, error) {
	if c.StartFEN == "" {
		return board.Standard(), nil
	}
	b, err := board.FromFEN(c.StartFEN)
	if err != nil {
		return board.Board{}, fmt.Errorf("start_fen: %w", err)
	}
	return b, nil
}

// AppOptions converts the settings into application options.
func (c *Config) AppOptions() app.Options {
	return app.Options{
		Geometry: app.DefaultGeometry(float64(c.Window.Width)),
		Layout: timeline.LayoutOptions{
			MinThumbnailSize: c.Timeline.MinThumbnail,
			Stacking:         timeline.ParseStacking(c.Timeline.Stacking),
		},
		Animate:       c.Scrubber.Animate,
		DurationTicks: c.Scrubber.DurationTicks,
		ScrubMode:     scrubber.ParseScrubMode(c.Scrubber.Mode),
	}
}

// Logger builds the zap logger described by the log section.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}
