package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/zyveria/internal/entity"
)

func TestLoadLocations(t *testing.T) {
	locations, err := LoadLocations()
	if err != nil {
		t.Fatalf("Failed to load locations: %v", err)
	}

	if len(locations) != 3 {
		t.Fatalf("Expected 3 locations, got %d", len(locations))
	}

	tests := []struct {
		id                   string
		enemy                string
		minHP, maxHP         int
		minAttack, maxAttack int
	}{
		{"plains", "Goblin", 5, 9, 1, 5},
		{"forest", "Bear", 10, 19, 5, 10},
		{"mountains", "Troll", 35, 49, 10, 15},
	}

	for i, tt := range tests {
		l := locations[i]
		if l.ID != tt.id || l.Enemy != tt.enemy {
			t.Errorf("Location %d = %s/%s, want %s/%s", i, l.ID, l.Enemy, tt.id, tt.enemy)
		}
		if l.MinHP != tt.minHP || l.MaxHP != tt.maxHP {
			t.Errorf("%s hp range = [%d,%d], want [%d,%d]", tt.id, l.MinHP, l.MaxHP, tt.minHP, tt.maxHP)
		}
		if l.MinAttack != tt.minAttack || l.MaxAttack != tt.maxAttack {
			t.Errorf("%s attack range = [%d,%d], want [%d,%d]", tt.id, l.MinAttack, l.MaxAttack, tt.minAttack, tt.maxAttack)
		}
	}
}

func TestLoadCatalogs(t *testing.T) {
	c, err := LoadCatalogs()
	if err != nil {
		t.Fatalf("Failed to load catalogs: %v", err)
	}

	if c.Goods.Count() != 2 {
		t.Errorf("Expected 2 goods, got %d", c.Goods.Count())
	}
	if c.Weapons.Count() != 3 {
		t.Errorf("Expected 3 weapons, got %d", c.Weapons.Count())
	}
	if c.Spells.Count() != 3 {
		t.Errorf("Expected 3 spells, got %d", c.Spells.Count())
	}

	starter := c.StarterWeapon()
	if starter == nil {
		t.Fatal("No starter weapon")
	}
	if starter.Name != "Fist" || starter.MinDamage != 1 || starter.MaxDamage != 5 {
		t.Errorf("Starter weapon = %+v, want Fist 1-5", *starter)
	}
}

func TestStarterWeaponMatchesFallback(t *testing.T) {
	c := MustLoadCatalogs()

	// Saves missing a weapon fall back to entity.Fists, so the two must agree.
	if got, want := c.StarterWeapon().Weapon(), entity.Fists(); got != want {
		t.Errorf("Starter weapon = %+v, want %+v", got, want)
	}
}

func TestWeaponDefWeapon(t *testing.T) {
	def := &WeaponDef{ID: "hammer", Name: "Hammer", Description: "An unwieldy hammer.", MinDamage: 3, MaxDamage: 13, Price: 40}

	want := entity.Weapon{Name: "Hammer", Description: "An unwieldy hammer.", MinDamage: 3, MaxDamage: 13}
	if got := def.Weapon(); got != want {
		t.Errorf("Weapon() = %+v, want %+v", got, want)
	}
}

func TestRegistryLookup(t *testing.T) {
	c := MustLoadCatalogs()

	tests := []struct {
		token string
		want  string
	}{
		{"Herb", "Herb"},
		{"herb", "Herb"},
		{"  HERB ", "Herb"},
		{"mana stone", "Mana Stone"},
		{"Mana_Stone", "Mana Stone"},
		{"mana-stone", "Mana Stone"},
		{"sword", ""},
	}

	for _, tt := range tests {
		got := c.Goods.Lookup(tt.token)
		if tt.want == "" {
			if got != nil {
				t.Errorf("Lookup(%q) = %q, want nil", tt.token, got.Name)
			}
			continue
		}
		if got == nil {
			t.Errorf("Lookup(%q) = nil, want %q", tt.token, tt.want)
			continue
		}
		if got.Name != tt.want {
			t.Errorf("Lookup(%q) = %q, want %q", tt.token, got.Name, tt.want)
		}
	}

	if l := c.Locations.Lookup("Mountains"); l == nil || l.Enemy != "Troll" {
		t.Error("Mountains should resolve to the Troll tier")
	}
	if s := c.Spells.Lookup("lightning bolt"); s == nil || s.Damage != 20 || s.MPCost != 5 {
		t.Error("lightning bolt should resolve to a 20 damage, 5 mp spell")
	}
}

func TestRegistryFirstKeyWins(t *testing.T) {
	r := NewRegistry([]GoodDef{
		{ID: "a", Name: "Dup"},
		{ID: "b", Name: "dup"},
	}, func(g *GoodDef) []string { return []string{g.ID, g.Name} })

	if got := r.Lookup("DUP"); got == nil || got.ID != "a" {
		t.Errorf("Lookup(DUP) should resolve to the first entry, got %+v", got)
	}
	if got := r.Lookup("b"); got == nil || got.ID != "b" {
		t.Errorf("Lookup(b) should resolve by id, got %+v", got)
	}
}

func TestValidationRejectsInvertedRange(t *testing.T) {
	file := WeaponsFile{Weapons: []WeaponDef{{ID: "x", Name: "X", MinDamage: 5, MaxDamage: 1}}}
	if err := validate.Struct(file); err == nil {
		t.Error("Expected validation error for min > max damage")
	}

	empty := LocationsFile{}
	if err := validate.Struct(empty); err == nil {
		t.Error("Expected validation error for empty locations")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFFF00", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestColorOrDefault(t *testing.T) {
	if got := ColorOrDefault(""); got != tcell.ColorDefault {
		t.Errorf("ColorOrDefault(\"\") = %v, want default", got)
	}
	if got := ColorOrDefault("nope"); got != tcell.ColorDefault {
		t.Errorf("ColorOrDefault(nope) = %v, want default", got)
	}
	if got := ColorOrDefault("#FF0000"); got != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("ColorOrDefault(#FF0000) = %v, want red", got)
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Spell Shop", "spell shop"},
		{"  spell   shop ", "spell shop"},
		{"SPELL_SHOP", "spell shop"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Fold(tt.input); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
