package entity

import "strings"

// Archetype is a leveling path chosen at the shrine.
type Archetype string

const (
	ArchetypeWarrior   Archetype = "warrior"
	ArchetypeMage      Archetype = "mage"
	ArchetypeBarbarian Archetype = "barbarian"
	// ArchetypeBasic is the single undifferentiated path used when
	// archetypes are turned off.
	ArchetypeBasic Archetype = "basic"
)

// StatDelta is what one level-up adds to a character.
type StatDelta struct {
	Strength int
	Defense  int
	MaxHP    int
	MaxMP    int
}

var archetypeDeltas = map[Archetype]StatDelta{
	ArchetypeWarrior:   {Strength: 1, Defense: 2, MaxHP: 10, MaxMP: 1},
	ArchetypeMage:      {Strength: 0, Defense: 1, MaxHP: 5, MaxMP: 3},
	ArchetypeBarbarian: {Strength: 2, Defense: 1, MaxHP: 12, MaxMP: 0},
	ArchetypeBasic:     {Strength: 1, Defense: 1, MaxHP: 10, MaxMP: 0},
}

// String returns the archetype's display name.
func (a Archetype) String() string {
	switch a {
	case ArchetypeWarrior:
		return "Warrior"
	case ArchetypeMage:
		return "Mage"
	case ArchetypeBarbarian:
		return "Barbarian"
	case ArchetypeBasic:
		return "Adventurer"
	default:
		return "Unknown"
	}
}

// Delta returns the archetype's stat table.
func (a Archetype) Delta() (StatDelta, bool) {
	d, ok := archetypeDeltas[a]
	return d, ok
}

// Archetypes lists the paths offered at the shrine.
func Archetypes(differentiated bool) []Archetype {
	if !differentiated {
		return []Archetype{ArchetypeBasic}
	}
	return []Archetype{ArchetypeWarrior, ArchetypeMage, ArchetypeBarbarian}
}

// ParseArchetype resolves a shrine token such as "Warrior" or
// "level warrior" to an archetype.
func ParseArchetype(token string) (Archetype, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	t = strings.TrimSpace(strings.TrimPrefix(t, "level"))
	switch Archetype(t) {
	case ArchetypeWarrior, ArchetypeMage, ArchetypeBarbarian, ArchetypeBasic:
		return Archetype(t), true
	}
	if t == "up" || t == "adventurer" {
		return ArchetypeBasic, true
	}
	return "", false
}
