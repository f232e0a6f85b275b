package combat

import (
	"fmt"

	"github.com/samdwyer/zyveria/internal/gamedata"
)

// Action is a player's choice for one combat turn.
type Action int

const (
	ActionAttack Action = iota
	ActionCast
	ActionUseItem
	ActionFlee
	// ActionQuit leaves the fight without the flee message.
	ActionQuit
)

// String returns the action's token.
func (a Action) String() string {
	switch a {
	case ActionAttack:
		return "attack"
	case ActionCast:
		return "magic"
	case ActionUseItem:
		return "item"
	case ActionFlee:
		return "run"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

var actionTokens = map[string]Action{
	"attack": ActionAttack,
	"a":      ActionAttack,
	"magic":  ActionCast,
	"cast":   ActionCast,
	"m":      ActionCast,
	"item":   ActionUseItem,
	"use":    ActionUseItem,
	"i":      ActionUseItem,
	"run":    ActionFlee,
	"flee":   ActionFlee,
	"r":      ActionFlee,
	"quit":   ActionQuit,
}

// ParseAction resolves an in-combat token.
func ParseAction(token string) (Action, error) {
	a, ok := actionTokens[gamedata.Fold(token)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAction, token)
	}
	return a, nil
}
