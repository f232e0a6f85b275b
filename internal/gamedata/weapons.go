package gamedata

import "github.com/samdwyer/zyveria/internal/entity"

// WeaponDef defines a weapon sold at the smithy.
type WeaponDef struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	MinDamage   int    `json:"minDamage" validate:"gte=0"`
	MaxDamage   int    `json:"maxDamage" validate:"gtefield=MinDamage"`
	Price       int    `json:"price" validate:"gte=0"`
	Starter     bool   `json:"starter,omitempty"` // Equipped on new characters, never sold
}

// Weapon returns the equippable form of the definition.
func (w *WeaponDef) Weapon() entity.Weapon {
	return entity.Weapon{
		Name:        w.Name,
		Description: w.Description,
		MinDamage:   w.MinDamage,
		MaxDamage:   w.MaxDamage,
	}
}

// WeaponsFile represents the structure of weapons.json.
type WeaponsFile struct {
	Weapons []WeaponDef `json:"weapons" validate:"min=1,dive"`
}

// LoadWeapons loads weapon definitions from the embedded weapons.json file.
func LoadWeapons() ([]WeaponDef, error) {
	file, err := Load[WeaponsFile]("weapons.json")
	if err != nil {
		return nil, err
	}
	return file.Weapons, nil
}
