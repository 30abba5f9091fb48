// Package config provides YAML-based configuration loading and difficulty
// presets for the digger game.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-digger/internal/core"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// DiggerConfig contains all configuration for the digger game.
type DiggerConfig struct {
	Board      DiggerBoard      `yaml:"board"`
	Glyphs     DiggerGlyphs     `yaml:"glyphs"`
	Colors     DiggerColors     `yaml:"colors"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// DiggerBoard defines board size and generation odds.
// A cell holds a block with probability BlockChance/ChanceOutOf; a block is
// a resource with probability 1/ResourceOneIn (0 disables resources).
type DiggerBoard struct {
	Width         int `yaml:"width"`  // Interior columns; 0 fits the terminal
	Height        int `yaml:"height"` // Interior rows; 0 fits the terminal
	BlockChance   int `yaml:"block_chance"`
	ChanceOutOf   int `yaml:"chance_out_of"`
	ResourceOneIn int `yaml:"resource_one_in"`
}

// DiggerGlyphs defines the characters drawn for each kind of cell.
// Palette lists the materials from heaviest to lightest.
type DiggerGlyphs struct {
	Palette  string `yaml:"palette"`
	Resource string `yaml:"resource"`
	Dug      string `yaml:"dug"`
	Blank    string `yaml:"blank"`
	Player   string `yaml:"player"`
	WallH    string `yaml:"wall_horizontal"`
	WallV    string `yaml:"wall_vertical"`
}

// DiggerColors names the color of each highlighted cell kind (see
// core.ParseColor). Materials and blanks use the terminal default.
type DiggerColors struct {
	Wall     string `yaml:"wall"`
	Resource string `yaml:"resource"`
	Dug      string `yaml:"dug"`
	Player   string `yaml:"player"`
}

// Validate checks sizes, odds, glyph lengths and color names.
func (c DiggerConfig) Validate() error {
	b := c.Board
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, b.Width, b.Height)
	}
	if b.ChanceOutOf <= 0 || b.BlockChance < 0 || b.BlockChance > b.ChanceOutOf {
		return fmt.Errorf("%w: block chance %d/%d", ErrInvalidConfig, b.BlockChance, b.ChanceOutOf)
	}
	if b.ResourceOneIn < 0 {
		return fmt.Errorf("%w: resource_one_in %d", ErrInvalidConfig, b.ResourceOneIn)
	}

	if c.Glyphs.Palette == "" {
		return fmt.Errorf("%w: empty palette", ErrInvalidConfig)
	}
	single := map[string]string{
		"resource":        c.Glyphs.Resource,
		"dug":             c.Glyphs.Dug,
		"blank":           c.Glyphs.Blank,
		"player":          c.Glyphs.Player,
		"wall_horizontal": c.Glyphs.WallH,
		"wall_vertical":   c.Glyphs.WallV,
	}
	for name, s := range single {
		if utf8.RuneCountInString(s) != 1 {
			return fmt.Errorf("%w: glyph %s must be one character, got %q", ErrInvalidConfig, name, s)
		}
	}

	colors := map[string]string{
		"wall":     c.Colors.Wall,
		"resource": c.Colors.Resource,
		"dug":      c.Colors.Dug,
		"player":   c.Colors.Player,
	}
	for name, s := range colors {
		if _, ok := core.ParseColor(s); s != "" && !ok {
			return fmt.Errorf("%w: color %s has unknown value %q", ErrInvalidConfig, name, s)
		}
	}

	if _, err := ParsePreset(string(c.Difficulty)); err != nil {
		return err
	}
	return nil
}

// Rune returns the single rune of a validated glyph field.
func Rune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
