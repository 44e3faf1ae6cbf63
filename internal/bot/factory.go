package bot

import (
	"fmt"
	"math/rand"
	"time"
)

// NewBrain creates a new AI brain for level. rng feeds the easy tier's
// random choices and now is the clock used by the searching tiers; both may
// be nil.
func NewBrain(level Level, tuning Tuning, rng *rand.Rand, now func() time.Time) (Brain, error) {
	switch level {
	case LevelEasy:
		return NewEasyBot(rng), nil
	case LevelMedium:
		return NewMediumBot(tuning, now), nil
	case LevelHard:
		return NewHardBot(tuning, now), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %q", level)
	}
}
