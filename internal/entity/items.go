package entity

// ItemKind says which pool a consumable acts on.
type ItemKind int

const (
	ItemInert ItemKind = iota
	ItemHealing
	ItemMana
)

// ItemEffect describes what using a consumable did.
type ItemEffect struct {
	Item     string
	Kind     ItemKind
	Healed   int  // HP actually restored
	Restored int  // MP actually restored
	Capped   bool // True if a pool was filled to its maximum
}

// consumable is an entry in the effect table, keyed by exact item name.
type consumable struct {
	heal int
	mana int
}

var consumables = map[string]consumable{
	"Herb":       {heal: 25},
	"Mana Stone": {mana: 5},
}
