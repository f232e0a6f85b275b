package gamedata

// LocationDef defines a location tier loaded from JSON. Each tier spawns a
// single kind of enemy whose stats are rolled inside the tier's ranges.
type LocationDef struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Enemy     string `json:"enemy" validate:"required"`               // Name of the enemy found here
	Color     string `json:"color" validate:"required,hexcolor"`      // Flavor marker for the enemy name
	MinHP     int    `json:"minHp" validate:"gte=1"`                  // Inclusive
	MaxHP     int    `json:"maxHp" validate:"gtefield=MinHP"`         // Inclusive
	MinAttack int    `json:"minAttack" validate:"gte=0"`              // Inclusive
	MaxAttack int    `json:"maxAttack" validate:"gtefield=MinAttack"` // Inclusive
	Blurb     string `json:"blurb"`
}

// LocationsFile represents the structure of locations.json.
type LocationsFile struct {
	Locations []LocationDef `json:"locations" validate:"min=1,dive"`
}

// LoadLocations loads location definitions from the embedded locations.json file.
func LoadLocations() ([]LocationDef, error) {
	file, err := Load[LocationsFile]("locations.json")
	if err != nil {
		return nil, err
	}
	return file.Locations, nil
}
