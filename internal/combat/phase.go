package combat

// Phase is the state of an encounter.
type Phase int

const (
	// PhaseLocationSelect - waiting for a location token
	PhaseLocationSelect Phase = iota
	// PhaseEnemySpawned - enemy rolled, no action taken yet
	PhaseEnemySpawned
	// PhaseTurnLoop - at least one turn resolved, enemy still standing
	PhaseTurnLoop
	// PhaseVictory - enemy defeated, rewards granted
	PhaseVictory
	// PhaseDefeat - player defeated
	PhaseDefeat
	// PhaseFled - player left the fight
	PhaseFled
	// PhaseAborted - location token not recognized, nothing spawned
	PhaseAborted
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLocationSelect:
		return "location_select"
	case PhaseEnemySpawned:
		return "enemy_spawned"
	case PhaseTurnLoop:
		return "turn_loop"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	case PhaseFled:
		return "fled"
	case PhaseAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Over reports whether the phase ends the encounter.
func (p Phase) Over() bool {
	switch p {
	case PhaseVictory, PhaseDefeat, PhaseFled, PhaseAborted:
		return true
	default:
		return false
	}
}
