// Package game provides the main game loop and state management.
package game

// State represents the current game state.
type State int

const (
	// StateMenu is the out-of-combat main menu.
	StateMenu State = iota
	// StateShop sells consumables.
	StateShop
	// StateSmithy sells weapons.
	StateSmithy
	// StateSpellShop sells spells.
	StateSpellShop
	// StateShrine trades experience for levels.
	StateShrine
	// StateTravel is choosing a location to fight in.
	StateTravel
	// StateCombat is an encounter in progress.
	StateCombat
	// StateQuit ends the session.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateShop:
		return "shop"
	case StateSmithy:
		return "smithy"
	case StateSpellShop:
		return "spell_shop"
	case StateShrine:
		return "shrine"
	case StateTravel:
		return "travel"
	case StateCombat:
		return "combat"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}
