package combat

import "errors"

var (
	ErrUnknownLocation = errors.New("unknown location")
	ErrUnknownAction   = errors.New("unknown action")
	ErrSpellsDisabled  = errors.New("magic is not available")
	ErrEncounterOver   = errors.New("encounter is over")
)
