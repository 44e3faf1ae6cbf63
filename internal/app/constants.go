package app

import (
	"time"

	"minpai/internal/bot"
)

// DefaultDifficulty is assumed when a request names no difficulty.
const DefaultDifficulty = string(bot.DefaultLevel)

// DefaultTokenTTL is the lifetime of service tokens when none is given.
const DefaultTokenTTL = 24 * time.Hour
