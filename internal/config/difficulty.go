package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, name)
	}
}

// ApplyDiggerPreset adjusts board odds for a difficulty preset.
// Easy boards are sparse with plenty of resources; hard boards are dense
// with few. Normal keeps the configured values.
func ApplyDiggerPreset(cfg *DiggerConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset

	switch preset {
	case DifficultyEasy:
		cfg.Board.BlockChance = scaleChance(cfg.Board, 3, 11)
		cfg.Board.ResourceOneIn = 4
	case DifficultyHard:
		cfg.Board.BlockChance = scaleChance(cfg.Board, 7, 11)
		cfg.Board.ResourceOneIn = 14
	}
}

// scaleChance expresses num/den in the board's own ChanceOutOf units.
func scaleChance(b DiggerBoard, num, den int) int {
	if b.ChanceOutOf <= 0 {
		return 0
	}
	return num * b.ChanceOutOf / den
}
