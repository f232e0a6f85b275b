package game

import "github.com/samdwyer/zyveria/internal/shop"

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible fights.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// SaveDir is where <name>.json save files live.
	SaveDir string
	// Features switches mana, spells and archetypes on or off.
	Features shop.Features
}
