package config

import (
	_ "embed"
)

//go:embed defaults/digger.yaml
var defaultDiggerYAML []byte

// DefaultDiggerConfig returns the hardcoded digger configuration.
// It mirrors defaults/digger.yaml and is used if the embedded file fails to parse.
func DefaultDiggerConfig() DiggerConfig {
	return DiggerConfig{
		Board: DiggerBoard{
			BlockChance:   4,
			ChanceOutOf:   11,
			ResourceOneIn: 8,
		},
		Glyphs: DiggerGlyphs{
			Palette:  "█▓▒░",
			Resource: "$",
			Dug:      ".",
			Blank:    " ",
			Player:   "@",
			WallH:    "#",
			WallV:    "|",
		},
		Colors: DiggerColors{
			Wall:     "gray",
			Resource: "bright_yellow",
			Dug:      "yellow",
			Player:   "bright_cyan",
		},
		Difficulty: DifficultyNormal,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDiggerYAML
}
