// Package entity provides the player character and the enemies it fights.
package entity

import (
	"fmt"
	"strings"
)

const (
	// DefaultHP is the health pool of a new character.
	DefaultHP = 100
	// DefaultMP is the mana pool of a new character when mana is enabled.
	DefaultMP = 5
	// LevelCostStep is the experience price of each level, multiplied by the
	// level being reached.
	LevelCostStep = 50
)

// Character is the player's persistent state. Field names in JSON follow the
// save file layout.
type Character struct {
	Name       string   `json:"name"`
	HP         int      `json:"hp"`
	MaxHP      int      `json:"maxHp"`
	MP         int      `json:"mp"`
	MaxMP      int      `json:"maxMp"`
	Weapon     Weapon   `json:"equippedWeapon"`
	Level      int      `json:"level"`
	Strength   int      `json:"strength"`
	Defense    int      `json:"defense"`
	Experience int      `json:"exp"`
	Gold       int      `json:"gold"`
	Inventory  []string `json:"inventory"`
	Spells     []Spell  `json:"spellInventory"`
}

// NewCharacter creates a character with the starting defaults. Characters
// created without mana start with an empty pool.
func NewCharacter(name string, withMana bool) *Character {
	c := &Character{
		Name:      name,
		HP:        DefaultHP,
		MaxHP:     DefaultHP,
		Weapon:    Fists(),
		Inventory: []string{},
		Spells:    []Spell{},
	}
	if withMana {
		c.MP = DefaultMP
		c.MaxMP = DefaultMP
	}
	return c
}

// IsDefeated returns true once health has dropped to zero or below.
func (c *Character) IsDefeated() bool { return c.HP <= 0 }

// TakeDamage subtracts amount from current health. Health is allowed to go
// negative; deciding defeat is the caller's job.
func (c *Character) TakeDamage(amount int) {
	c.HP -= amount
}

// Heal restores health up to the maximum. It returns the amount actually
// gained and whether the pool was capped.
func (c *Character) Heal(amount int) (gained int, capped bool) {
	before := c.HP
	if c.HP+amount > c.MaxHP {
		c.HP = c.MaxHP
		capped = true
	} else {
		c.HP += amount
	}
	return c.HP - before, capped
}

// SpendMana removes amount from the mana pool, refusing if the pool is short.
func (c *Character) SpendMana(amount int) error {
	if amount > c.MP {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientMana, amount, c.MP)
	}
	c.MP -= amount
	return nil
}

// GainMana restores mana up to the maximum, mirroring Heal.
func (c *Character) GainMana(amount int) (gained int, capped bool) {
	before := c.MP
	if c.MP+amount > c.MaxMP {
		c.MP = c.MaxMP
		capped = true
	} else {
		c.MP += amount
	}
	return c.MP - before, capped
}

// GainExperience adds a signed amount of experience. No floor is applied;
// use TrySpendExperience to debit.
func (c *Character) GainExperience(amount int) {
	c.Experience += amount
}

// GainGold adds a signed amount of gold. No floor is applied; use
// TrySpendGold to debit.
func (c *Character) GainGold(amount int) {
	c.Gold += amount
}

// TrySpendGold debits gold only if the character can afford it.
func (c *Character) TrySpendGold(amount int) error {
	if amount > c.Gold {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientGold, amount, c.Gold)
	}
	c.GainGold(-amount)
	return nil
}

// TrySpendExperience debits experience only if the character has enough.
func (c *Character) TrySpendExperience(amount int) error {
	if amount > c.Experience {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientExperience, amount, c.Experience)
	}
	c.GainExperience(-amount)
	return nil
}

// Equip replaces the current weapon. The old one is discarded.
func (c *Character) Equip(w Weapon) {
	c.Weapon = w
}

// AddItem appends a consumable to the inventory.
func (c *Character) AddItem(name string) {
	c.Inventory = append(c.Inventory, name)
}

// HasItem reports whether at least one item with this exact name is held.
func (c *Character) HasItem(name string) bool {
	return c.itemIndex(name) >= 0
}

// ItemCounts groups the inventory by name, keeping first-acquired order.
func (c *Character) ItemCounts() (names []string, counts map[string]int) {
	counts = make(map[string]int)
	for _, item := range c.Inventory {
		if counts[item] == 0 {
			names = append(names, item)
		}
		counts[item]++
	}
	return names, counts
}

// UseItem consumes the first item with this exact name and applies its
// effect. Items without an entry in the effect table are consumed with no
// effect.
func (c *Character) UseItem(name string) (ItemEffect, error) {
	i := c.itemIndex(name)
	if i < 0 {
		return ItemEffect{}, fmt.Errorf("%w: %s", ErrItemNotHeld, name)
	}
	c.Inventory = append(c.Inventory[:i], c.Inventory[i+1:]...)

	effect := ItemEffect{Item: name}
	entry, ok := consumables[name]
	if !ok {
		return effect, nil
	}
	if entry.heal > 0 {
		effect.Kind = ItemHealing
		gained, capped := c.Heal(entry.heal)
		effect.Healed = gained
		effect.Capped = effect.Capped || capped
	}
	if entry.mana > 0 {
		effect.Kind = ItemMana
		gained, capped := c.GainMana(entry.mana)
		effect.Restored = gained
		effect.Capped = effect.Capped || capped
	}
	return effect, nil
}

func (c *Character) itemIndex(name string) int {
	for i, item := range c.Inventory {
		if item == name {
			return i
		}
	}
	return -1
}

// LearnSpell adds a spell to the spell list. Spells are a set by name.
func (c *Character) LearnSpell(s Spell) error {
	if _, known := c.KnownSpell(s.Name); known {
		return fmt.Errorf("%w: %s", ErrSpellKnown, s.Name)
	}
	c.Spells = append(c.Spells, s)
	return nil
}

// KnownSpell looks up a known spell by name, ignoring case.
func (c *Character) KnownSpell(name string) (Spell, bool) {
	name = strings.TrimSpace(name)
	for _, s := range c.Spells {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Spell{}, false
}

// LevelCost returns the experience needed to reach the next level.
func (c *Character) LevelCost() int {
	return (c.Level + 1) * LevelCostStep
}

// ApplyLevelUp raises the level and applies the archetype's stat table.
// Current health and mana are left as they are.
func (c *Character) ApplyLevelUp(a Archetype) error {
	d, ok := a.Delta()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownArchetype, string(a))
	}
	c.LevelUpBy(d)
	return nil
}

// LevelUpBy raises the level by one and adds d to the stat maximums.
func (c *Character) LevelUpBy(d StatDelta) {
	c.Level++
	c.Strength += d.Strength
	c.Defense += d.Defense
	c.MaxHP += d.MaxHP
	c.MaxMP += d.MaxMP
}
