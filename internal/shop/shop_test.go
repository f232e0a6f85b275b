package shop

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/zyveria/internal/entity"
	"github.com/samdwyer/zyveria/internal/gamedata"
)

var allFeatures = Features{Mana: true, Spells: true, Archetypes: true}

func newService(t *testing.T, f Features) *Service {
	t.Helper()
	catalogs, err := gamedata.LoadCatalogs()
	require.NoError(t, err)
	return NewService(catalogs, f)
}

func TestBuyGood(t *testing.T) {
	ctx := context.Background()
	s := newService(t, allFeatures)

	t.Run("insufficient gold rejected", func(t *testing.T) {
		c := entity.NewCharacter("Rowan", true)
		c.Gold = 5

		_, err := s.BuyGood(ctx, c, "herb")

		assert.ErrorIs(t, err, entity.ErrInsufficientGold)
		assert.Equal(t, 5, c.Gold)
		assert.Empty(t, c.Inventory)
		assert.Equal(t, entity.Fists(), c.Weapon)
	})

	t.Run("purchase debits and adds", func(t *testing.T) {
		c := entity.NewCharacter("Rowan", true)
		c.Gold = 25

		good, err := s.BuyGood(ctx, c, "Herb")
		require.NoError(t, err)
		assert.Equal(t, "Herb", good.Name)

		_, err = s.BuyGood(ctx, c, "mana stone")
		require.NoError(t, err)

		assert.Equal(t, 5, c.Gold)
		assert.Equal(t, []string{"Herb", "Mana Stone"}, c.Inventory)
	})

	t.Run("unknown product", func(t *testing.T) {
		c := entity.NewCharacter("Rowan", true)
		c.Gold = 100

		_, err := s.BuyGood(ctx, c, "Elixir")

		assert.ErrorIs(t, err, ErrUnknownProduct)
		assert.Equal(t, 100, c.Gold)
	})
}

func TestManaStoneHiddenWithoutMana(t *testing.T) {
	ctx := context.Background()
	s := newService(t, Features{})
	c := entity.NewCharacter("Rowan", false)
	c.Gold = 100

	_, err := s.BuyGood(ctx, c, "Mana Stone")

	assert.ErrorIs(t, err, ErrUnknownProduct)
	assert.Equal(t, 100, c.Gold)
	require.Len(t, s.Goods(), 1)
	assert.Equal(t, "Herb", s.Goods()[0].Name)
}

func TestBuyWeapon(t *testing.T) {
	ctx := context.Background()
	s := newService(t, allFeatures)

	c := entity.NewCharacter("Rowan", true)
	c.Gold = 10
	_, err := s.BuyWeapon(ctx, c, "Sword")
	assert.ErrorIs(t, err, entity.ErrInsufficientGold)
	assert.Equal(t, entity.Fists(), c.Weapon)
	assert.Equal(t, 10, c.Gold)

	c.Gold = 30
	_, err = s.BuyWeapon(ctx, c, "sword")
	require.NoError(t, err)
	assert.Equal(t, entity.Weapon{Name: "Sword", Description: "A decent sword.", MinDamage: 5, MaxDamage: 10}, c.Weapon)
	assert.Equal(t, 5, c.Gold)

	c.Gold = 100
	_, err = s.BuyWeapon(ctx, c, "fist")
	assert.ErrorIs(t, err, ErrUnknownProduct, "starter weapons are not sold")
	assert.Equal(t, 100, c.Gold)

	names := make([]string, 0)
	for _, w := range s.Weapons() {
		names = append(names, w.Name)
	}
	assert.Equal(t, []string{"Sword", "Hammer"}, names)
}

func TestBuySpell(t *testing.T) {
	ctx := context.Background()
	s := newService(t, allFeatures)
	c := entity.NewCharacter("Rowan", true)
	c.Gold = 60

	def, err := s.BuySpell(ctx, c, "Ice Shard")
	require.NoError(t, err)
	assert.Equal(t, 13, def.Damage)
	assert.Equal(t, 25, c.Gold)
	spell, ok := c.KnownSpell("Ice Shard")
	require.True(t, ok)
	assert.Equal(t, 3, spell.ManaCost)

	_, err = s.BuySpell(ctx, c, "ice shard")
	assert.ErrorIs(t, err, entity.ErrSpellKnown)
	assert.Equal(t, 25, c.Gold, "known spells are refused before charging")

	_, err = s.BuySpell(ctx, c, "Lightning Bolt")
	assert.ErrorIs(t, err, entity.ErrInsufficientGold)
	assert.Len(t, c.Spells, 1)
}

func TestBuySpellDisabled(t *testing.T) {
	ctx := context.Background()
	s := newService(t, Features{Mana: true})
	c := entity.NewCharacter("Rowan", true)
	c.Gold = 100

	_, err := s.BuySpell(ctx, c, "Firebolt")

	assert.ErrorIs(t, err, ErrFeatureDisabled)
	assert.Equal(t, 100, c.Gold)
	assert.Empty(t, s.Spells())
}

func TestLevelUp(t *testing.T) {
	ctx := context.Background()
	s := newService(t, allFeatures)

	t.Run("warrior", func(t *testing.T) {
		c := entity.NewCharacter("Rowan", true)
		c.Experience = 60

		a, err := s.LevelUp(ctx, c, "Warrior")

		require.NoError(t, err)
		assert.Equal(t, entity.ArchetypeWarrior, a)
		assert.Equal(t, 10, c.Experience)
		assert.Equal(t, 1, c.Level)
		assert.Equal(t, 1, c.Strength)
		assert.Equal(t, 2, c.Defense)
		assert.Equal(t, 110, c.MaxHP)
		assert.Equal(t, 6, c.MaxMP)
	})

	t.Run("cost scales with level", func(t *testing.T) {
		c := entity.NewCharacter("Rowan", true)
		c.Level = 1
		c.Experience = 99

		_, err := s.LevelUp(ctx, c, "mage")

		assert.ErrorIs(t, err, entity.ErrInsufficientExperience)
		assert.Equal(t, 99, c.Experience)
		assert.Equal(t, 1, c.Level)
		assert.Equal(t, 100, c.MaxHP)
	})

	t.Run("basic not offered with archetypes", func(t *testing.T) {
		c := entity.NewCharacter("Rowan", true)
		c.Experience = 100

		_, err := s.LevelUp(ctx, c, "level up")

		assert.ErrorIs(t, err, ErrUnknownProduct)
		assert.Equal(t, 100, c.Experience)
	})
}

func TestLevelUpMinimalVariant(t *testing.T) {
	ctx := context.Background()
	s := newService(t, Features{})
	c := entity.NewCharacter("Rowan", false)
	c.Experience = 50

	_, err := s.LevelUp(ctx, c, "Barbarian")
	assert.ErrorIs(t, err, ErrUnknownProduct)

	a, err := s.LevelUp(ctx, c, "level up")
	require.NoError(t, err)
	assert.Equal(t, entity.ArchetypeBasic, a)
	assert.Equal(t, 1, c.Level)
	assert.Zero(t, c.MaxMP)
	assert.Equal(t, []entity.Archetype{entity.ArchetypeBasic}, s.Archetypes())
}

func TestLevelUpWithoutManaKeepsPoolEmpty(t *testing.T) {
	ctx := context.Background()
	s := newService(t, Features{Archetypes: true})

	for _, token := range []string{"warrior", "mage"} {
		t.Run(token, func(t *testing.T) {
			c := entity.NewCharacter("Rowan", false)
			c.Experience = 50

			_, err := s.LevelUp(ctx, c, token)

			require.NoError(t, err)
			assert.Equal(t, 1, c.Level)
			assert.Zero(t, c.MaxMP)
			assert.Zero(t, c.MP)
		})
	}
}

func TestDelta(t *testing.T) {
	withMana := newService(t, allFeatures)
	noMana := newService(t, Features{Archetypes: true})

	assert.Equal(t, entity.StatDelta{Strength: 1, Defense: 2, MaxHP: 10, MaxMP: 1}, withMana.Delta(entity.ArchetypeWarrior))
	assert.Equal(t, entity.StatDelta{Strength: 1, Defense: 2, MaxHP: 10}, noMana.Delta(entity.ArchetypeWarrior))
	assert.Equal(t, entity.StatDelta{Defense: 1, MaxHP: 5}, noMana.Delta(entity.ArchetypeMage))
}
