package entity

// Weapon is the single weapon a character has equipped.
type Weapon struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MinDamage   int    `json:"minDamage"`
	MaxDamage   int    `json:"maxDamage"`
}

// Fists is the weapon every new character starts with.
func Fists() Weapon {
	return Weapon{
		Name:        "Fist",
		Description: "A rusty fist.",
		MinDamage:   1,
		MaxDamage:   5,
	}
}

// Spell is a known spell: fixed damage for a fixed mana cost.
type Spell struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ManaCost    int    `json:"mpCost"`
	Damage      int    `json:"damage"`
}
