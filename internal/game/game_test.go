package game

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/zyveria/internal/entity"
	"github.com/samdwyer/zyveria/internal/save"
	"github.com/samdwyer/zyveria/internal/shop"
	"github.com/samdwyer/zyveria/internal/testing/dicetest"
	"github.com/samdwyer/zyveria/internal/ui"
)

var allFeatures = shop.Features{Mana: true, Spells: true, Archetypes: true}

// scriptTerminal feeds canned input and records output. It reports
// ui.ErrQuit once the script runs out.
type scriptTerminal struct {
	inputs []string
	lines  []ui.Line
	clears int
}

func (s *scriptTerminal) Print(l ui.Line) { s.lines = append(s.lines, l) }

func (s *scriptTerminal) Clear() { s.clears++ }

func (s *scriptTerminal) ReadLine(string) (string, error) {
	if len(s.inputs) == 0 {
		return "", ui.ErrQuit
	}
	next := s.inputs[0]
	s.inputs = s.inputs[1:]
	return next, nil
}

func (s *scriptTerminal) output() string {
	texts := make([]string, len(s.lines))
	for i, l := range s.lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}

type fixture struct {
	game  *Game
	term  *scriptTerminal
	store *save.Store
}

func newFixture(t *testing.T, features shop.Features, inputs ...string) *fixture {
	t.Helper()
	dir := t.TempDir()
	term := &scriptTerminal{inputs: inputs}
	g, err := New(term, Config{Seed: 1, SaveDir: dir, Features: features})
	require.NoError(t, err)
	return &fixture{game: g, term: term, store: save.NewStore(dir)}
}

// seed writes a character the session will load.
func (f *fixture) seed(t *testing.T, c *entity.Character) {
	t.Helper()
	require.NoError(t, f.store.Save(context.Background(), c))
}

// dice scripts every roll the session makes. Leftover rolls fail the test.
func (f *fixture) dice(t *testing.T, rolls ...int) {
	d := dicetest.New(t, rolls...)
	f.game.dice = d
	t.Cleanup(func() {
		assert.Zero(t, d.Remaining(), "unused scripted rolls")
	})
}

func (f *fixture) run(t *testing.T) string {
	t.Helper()
	require.NoError(t, f.game.Run(context.Background()))
	return f.term.output()
}

func TestNewCharacterStatus(t *testing.T) {
	f := newFixture(t, allFeatures, "Rowan", "status", "quit")

	out := f.run(t)

	assert.Contains(t, out, "Creating a new profile for Rowan.")
	assert.Contains(t, out, "Rowan, you are Level 0")
	assert.Contains(t, out, "HP: 100/100")
	assert.Contains(t, out, "MP: 5/5")
	assert.Equal(t, StateQuit, f.game.state)
}

func TestNewCharacterTakesStarterWeapon(t *testing.T) {
	f := newFixture(t, allFeatures, "Rowan", "inventory", "quit")
	starter := f.game.catalogs.StarterWeapon()
	starter.Description = "Bare knuckles."
	starter.MaxDamage = 7

	out := f.run(t)

	assert.Contains(t, out, "Equipped weapon: Fist - Attack range Min: 1 | Max: 7")
	assert.Equal(t, starter.Weapon(), f.game.Player().Weapon)
}

func TestEndOfInputQuits(t *testing.T) {
	f := newFixture(t, allFeatures, "Rowan")

	f.run(t)

	assert.Equal(t, StateQuit, f.game.state)
}

func TestNameReprompts(t *testing.T) {
	f := newFixture(t, allFeatures, "", "a/b", "Rowan", "quit")

	out := f.run(t)

	assert.Contains(t, out, "Names cannot contain slashes.")
	assert.Equal(t, "Rowan", f.game.Player().Name)
}

func TestInvalidCommand(t *testing.T) {
	f := newFixture(t, allFeatures, "Rowan", "dance", "quit")

	out := f.run(t)

	assert.Contains(t, out, "Invalid command!")
}

func TestMenuHidesSpellsWhenDisabled(t *testing.T) {
	f := newFixture(t, shop.Features{}, "Rowan", "spell shop", "status", "quit")

	out := f.run(t)

	assert.NotContains(t, out, "> Spell Shop")
	assert.NotContains(t, out, "MP:")
	assert.Contains(t, out, "Invalid command!")
	assert.Zero(t, f.game.Player().MaxMP)
}

func TestShopRejectsShortGold(t *testing.T) {
	f := newFixture(t, allFeatures, "Rowan", "shop", "herb", "quit")
	c := entity.NewCharacter("Rowan", true)
	c.Gold = 5
	f.seed(t, c)

	out := f.run(t)

	assert.Contains(t, out, "Game loaded successfully!")
	assert.Contains(t, out, "You do not have enough gold to buy Herb!")
	assert.Equal(t, 5, f.game.Player().Gold)
	assert.Empty(t, f.game.Player().Inventory)
}

func TestSmithyPurchaseIsSaved(t *testing.T) {
	f := newFixture(t, allFeatures, "Rowan", "smithy", "Sword", "save", "quit")
	c := entity.NewCharacter("Rowan", true)
	c.Gold = 30
	f.seed(t, c)

	out := f.run(t)

	assert.Contains(t, out, "Rowan has bought Sword for 25 gold!")
	assert.Contains(t, out, "Game saved successfully!")

	saved, err := f.store.Load(context.Background(), "Rowan")
	require.NoError(t, err)
	assert.Equal(t, "Sword", saved.Weapon.Name)
	assert.Equal(t, 5, saved.Gold)
}

func TestSpellShopRejectsKnownSpell(t *testing.T) {
	f := newFixture(t, allFeatures, "Rowan", "spell shop", "firebolt", "spell shop", "Firebolt", "quit")
	c := entity.NewCharacter("Rowan", true)
	c.Gold = 60
	f.seed(t, c)

	out := f.run(t)

	assert.Contains(t, out, "Rowan has bought Firebolt for 25 gold!")
	assert.Contains(t, out, "You already know Firebolt!")
	assert.Equal(t, 35, f.game.Player().Gold)
}

func TestUseItemOutOfCombat(t *testing.T) {
	f := newFixture(t, allFeatures, "Rowan", "use", "herb", "use item", "Herb", "quit")
	c := entity.NewCharacter("Rowan", true)
	c.HP = 50
	c.AddItem("Herb")
	f.seed(t, c)

	out := f.run(t)

	assert.Contains(t, out, "Rowan has used a Herb! Rowan has gained 25 hp!")
	assert.Contains(t, out, "Rowan does not have Herb in their inventory!")
	assert.Equal(t, 75, f.game.Player().HP)
}

func TestShrine(t *testing.T) {
	f := newFixture(t, allFeatures, "Rowan", "shrine", "level warrior", "shrine", "mage", "quit")
	c := entity.NewCharacter("Rowan", true)
	c.Experience = 60
	f.seed(t, c)

	out := f.run(t)

	assert.Contains(t, out, "> Level Up as a Warrior - 50 exp")
	assert.Contains(t, out, "Warrior = +1 Strength, +2 Defense, +10 HP, +1 MP")
	assert.Contains(t, out, "Rowan has leveled up to level 1!")
	assert.Contains(t, out, "You do not have enough exp to level up!")

	p := f.game.Player()
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 10, p.Experience)
	assert.Equal(t, 110, p.MaxHP)
}

func TestShrineMinimalVariant(t *testing.T) {
	f := newFixture(t, shop.Features{}, "Rowan", "shrine", "warrior", "shrine", "level up", "quit")
	c := entity.NewCharacter("Rowan", false)
	c.Experience = 50
	f.seed(t, c)

	out := f.run(t)

	assert.Contains(t, out, "> Level Up - 50 exp")
	assert.Contains(t, out, "Invalid service!")
	assert.Contains(t, out, "Rowan has leveled up to level 1!")
	assert.Equal(t, 1, f.game.Player().Strength)
}

func TestShrineWithoutManaOffersNoMana(t *testing.T) {
	f := newFixture(t, shop.Features{Archetypes: true}, "Rowan", "shrine", "mage", "quit")
	c := entity.NewCharacter("Rowan", false)
	c.Experience = 50
	f.seed(t, c)

	out := f.run(t)

	assert.Contains(t, out, "Mage = +0 Strength, +1 Defense, +5 HP, +0 MP")
	assert.Contains(t, out, "Rowan has leveled up to level 1!")
	assert.Zero(t, f.game.Player().MaxMP)
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateMenu, "menu"},
		{StateShop, "shop"},
		{StateSmithy, "smithy"},
		{StateSpellShop, "spell_shop"},
		{StateShrine, "shrine"},
		{StateTravel, "travel"},
		{StateCombat, "combat"},
		{StateQuit, "quit"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}
