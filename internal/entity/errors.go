package entity

import "errors"

// Resource and inventory errors. Callers wrap these with detail and match
// them with errors.Is.
var (
	ErrInsufficientGold       = errors.New("not enough gold")
	ErrInsufficientExperience = errors.New("not enough experience")
	ErrInsufficientMana       = errors.New("not enough mana")
	ErrItemNotHeld            = errors.New("item not held")
	ErrSpellUnknown           = errors.New("spell not known")
	ErrSpellKnown             = errors.New("spell already known")
	ErrUnknownArchetype       = errors.New("unknown archetype")
)
