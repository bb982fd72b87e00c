// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/image/colornames"

	"github.com/chenchen/superlayout/attr"
)

// Config holds the demo configuration.
type Config struct {
	Title    string
	Width    int
	Height   int
	LogLevel string `mapstructure:"log_level"`
	Card     CardConfig
}

// CardConfig styles the showcase card.
type CardConfig struct {
	Color        string
	CornerRadius float32       `mapstructure:"corner_radius"`
	StrokeWidth  float32       `mapstructure:"stroke_width"`
	StrokeColor  string        `mapstructure:"stroke_color"`
	ShadowColor  string        `mapstructure:"shadow_color"`
	ShadowRadius float32       `mapstructure:"shadow_radius"`
	ShadowDx     float32       `mapstructure:"shadow_dx"`
	ShadowDy     float32       `mapstructure:"shadow_dy"`
	RotateTurn   time.Duration `mapstructure:"rotate_turn"`
}

// loadConfig reads configuration from file and env. Env var overrides use
// prefix SUPERDEMO_.
func loadConfig() (Config, error) {
	v := viper.New()

	v.SetDefault("title", "superlayout")
	v.SetDefault("width", 420)
	v.SetDefault("height", 720)
	v.SetDefault("log_level", "info")
	v.SetDefault("card.color", "white")
	v.SetDefault("card.corner_radius", 16)
	v.SetDefault("card.stroke_width", 2)
	v.SetDefault("card.stroke_color", "steelblue")
	v.SetDefault("card.shadow_color", "#00000060")
	v.SetDefault("card.shadow_radius", 10)
	v.SetDefault("card.shadow_dx", 0)
	v.SetDefault("card.shadow_dy", 4)
	v.SetDefault("card.rotate_turn", "2s")

	v.SetConfigType("toml")
	if path := os.Getenv("SUPERDEMO_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("SUPERDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Level returns the configured log level.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Attrs returns the card decoration.
func (c CardConfig) Attrs() (attr.Config, error) {
	cfg := attr.DefaultConfig()
	var err error
	if cfg.StrokeColor, err = parseColor(c.StrokeColor); err != nil {
		return cfg, fmt.Errorf("stroke color: %w", err)
	}
	if cfg.ShadowColor, err = parseColor(c.ShadowColor); err != nil {
		return cfg, fmt.Errorf("shadow color: %w", err)
	}
	cfg.CornerRadius = c.CornerRadius
	cfg.StrokeWidth = c.StrokeWidth
	cfg.ShadowRadius = c.ShadowRadius
	cfg.ShadowDx = c.ShadowDx
	cfg.ShadowDy = c.ShadowDy
	if c.RotateTurn > 0 {
		cfg.RotateDuration = c.RotateTurn
	}
	return cfg, nil
}

// parseColor accepts an SVG color name or #RRGGBB[AA].
func parseColor(s string) (color.NRGBA, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
