package gamedata

import "errors"

// Registry holds loaded definitions in catalog order and resolves
// player-typed tokens against their IDs and display names.
type Registry[T any] struct {
	entries []T
	index   map[string]int
}

// NewRegistry creates a registry. keys returns the tokens that should
// resolve to an entry; they are folded before indexing, and the first
// entry claiming a key wins.
func NewRegistry[T any](entries []T, keys func(*T) []string) *Registry[T] {
	registry := &Registry[T]{
		entries: entries,
		index:   make(map[string]int, len(entries)*2),
	}
	for i := range entries {
		for _, key := range keys(&entries[i]) {
			folded := Fold(key)
			if _, taken := registry.index[folded]; !taken {
				registry.index[folded] = i
			}
		}
	}
	return registry
}

// Lookup returns the entry matching token, or nil if not found.
func (r *Registry[T]) Lookup(token string) *T {
	i, ok := r.index[Fold(token)]
	if !ok {
		return nil
	}
	return &r.entries[i]
}

// All returns all definitions in catalog order.
func (r *Registry[T]) All() []T {
	return r.entries
}

// Count returns the number of definitions in the registry.
func (r *Registry[T]) Count() int {
	return len(r.entries)
}

// Catalogs bundles every registry the game reads from.
type Catalogs struct {
	Locations *Registry[LocationDef]
	Goods     *Registry[GoodDef]
	Weapons   *Registry[WeaponDef]
	Spells    *Registry[SpellDef]
}

// LoadCatalogs loads every embedded catalog.
func LoadCatalogs() (*Catalogs, error) {
	locations, err := LoadLocations()
	if err != nil {
		return nil, err
	}
	goods, err := LoadGoods()
	if err != nil {
		return nil, err
	}
	weapons, err := LoadWeapons()
	if err != nil {
		return nil, err
	}
	spells, err := LoadSpells()
	if err != nil {
		return nil, err
	}

	c := &Catalogs{
		Locations: NewRegistry(locations, func(l *LocationDef) []string { return []string{l.ID, l.Name} }),
		Goods:     NewRegistry(goods, func(g *GoodDef) []string { return []string{g.ID, g.Name} }),
		Weapons:   NewRegistry(weapons, func(w *WeaponDef) []string { return []string{w.ID, w.Name} }),
		Spells:    NewRegistry(spells, func(s *SpellDef) []string { return []string{s.ID, s.Name} }),
	}
	if c.StarterWeapon() == nil {
		return nil, errors.New("no starter weapon in weapons.json")
	}
	return c, nil
}

// MustLoadCatalogs loads every catalog, panicking on error.
func MustLoadCatalogs() *Catalogs {
	c, err := LoadCatalogs()
	if err != nil {
		panic(err)
	}
	return c
}

// StarterWeapon returns the weapon new characters are created with.
func (c *Catalogs) StarterWeapon() *WeaponDef {
	for i, w := range c.Weapons.All() {
		if w.Starter {
			return &c.Weapons.All()[i]
		}
	}
	return nil
}
