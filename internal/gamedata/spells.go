package gamedata

// SpellDef defines a spell sold at the spell shop.
type SpellDef struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Price       int    `json:"price" validate:"gte=1"`
	MPCost      int    `json:"mpCost" validate:"gte=1"`
	Damage      int    `json:"damage" validate:"gte=0"`
}

// SpellsFile represents the structure of spells.json.
type SpellsFile struct {
	Spells []SpellDef `json:"spells" validate:"min=1,dive"`
}

// LoadSpells loads spell definitions from the embedded spells.json file.
func LoadSpells() ([]SpellDef, error) {
	file, err := Load[SpellsFile]("spells.json")
	if err != nil {
		return nil, err
	}
	return file.Spells, nil
}
