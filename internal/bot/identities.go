package bot

import (
	"fmt"
	"strings"
)

// Level is a difficulty tier.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"

	// DefaultLevel is used for unknown labels.
	DefaultLevel = LevelMedium
)

// Levels lists every tier from weakest to strongest.
var Levels = []Level{LevelEasy, LevelMedium, LevelHard}

// ParseLevel maps a label to its tier. Matching ignores case and surrounding
// spaces.
func ParseLevel(label string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(label))) {
	case LevelEasy:
		return LevelEasy, nil
	case LevelMedium:
		return LevelMedium, nil
	case LevelHard:
		return LevelHard, nil
	default:
		return "", fmt.Errorf("unknown bot level: %q", label)
	}
}

// NormalizeLevel is ParseLevel falling back to DefaultLevel.
func NormalizeLevel(label string) Level {
	level, err := ParseLevel(label)
	if err != nil {
		return DefaultLevel
	}
	return level
}

// Identity is the public face of a tier, shown to players next to the AI's
// moves.
type Identity struct {
	Difficulty  Level  `json:"difficulty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var identities = map[Level]Identity{
	LevelEasy: {
		Difficulty:  LevelEasy,
		Name:        "Easy AI",
		Description: "Quick responses, basic strategy",
	},
	LevelMedium: {
		Difficulty:  LevelMedium,
		Name:        "Medium AI",
		Description: "Strategic analysis, probability calculation",
	},
	LevelHard: {
		Difficulty:  LevelHard,
		Name:        "Hard AI",
		Description: "Deep search, optimal play",
	},
}

// IdentityFor returns the identity of level; unknown levels get the default
// tier's identity.
func IdentityFor(level Level) Identity {
	if id, ok := identities[level]; ok {
		return id
	}
	return identities[DefaultLevel]
}
