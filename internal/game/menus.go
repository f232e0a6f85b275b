package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/samdwyer/zyveria/internal/entity"
	"github.com/samdwyer/zyveria/internal/gamedata"
	"github.com/samdwyer/zyveria/internal/shop"
	"github.com/samdwyer/zyveria/internal/ui"
)

func (g *Game) showStatus(context.Context) error {
	p := g.player
	g.rule()
	g.say("%s, you are Level %d", p.Name, p.Level)
	g.say("HP: %d/%d", p.HP, p.MaxHP)
	if g.cfg.Features.Mana {
		g.say("MP: %d/%d", p.MP, p.MaxMP)
	}
	g.say("Strength: %d", p.Strength)
	g.say("Defense: %d", p.Defense)
	g.say("Exp: %d", p.Experience)
	g.rule()
	return nil
}

func (g *Game) showInventory(context.Context) error {
	p := g.player
	g.rule()
	g.say("Equipped weapon: %s - Attack range Min: %d | Max: %d", p.Weapon.Name, p.Weapon.MinDamage, p.Weapon.MaxDamage)
	g.say("Gold: %d", p.Gold)
	g.say("%s's inventory:", p.Name)
	names, counts := p.ItemCounts()
	for _, name := range names {
		if counts[name] > 1 {
			g.say("%s x%d", name, counts[name])
		} else {
			g.say("%s", name)
		}
	}
	g.rule()
	return nil
}

func (g *Game) showSpells(context.Context) error {
	g.rule()
	g.say("%s's spell list:", g.player.Name)
	for _, s := range g.player.Spells {
		g.say("%s - %s - MP Cost: %d - Damage: %d", s.Name, s.Description, s.ManaCost, s.Damage)
	}
	g.rule()
	return nil
}

// heldItem resolves a typed item name to the exact inventory entry, so
// "herb" finds "Herb". Unmatched input is returned unchanged.
func (g *Game) heldItem(input string) string {
	folded := gamedata.Fold(input)
	for _, item := range g.player.Inventory {
		if gamedata.Fold(item) == folded {
			return item
		}
	}
	return input
}

func (g *Game) useItem(context.Context) error {
	g.say("Enter the name of the item you would like to use:")
	input, err := g.read()
	if err != nil {
		return err
	}
	effect, err := g.player.UseItem(g.heldItem(input))
	g.describeItem(input, effect, err)
	return nil
}

// describeItem reports what using an item did.
func (g *Game) describeItem(input string, effect entity.ItemEffect, err error) {
	name := g.player.Name
	switch {
	case err != nil:
		g.say("%s does not have %s in their inventory!", name, input)
	case effect.Kind == entity.ItemHealing:
		g.say("%s has used a %s! %s has gained %d hp!", name, effect.Item, name, effect.Healed)
		if effect.Capped {
			g.say("%s has max hp!", name)
		}
	case effect.Kind == entity.ItemMana:
		g.say("%s has used a %s! %s has gained %d mp!", name, effect.Item, name, effect.Restored)
		if effect.Capped {
			g.say("%s has max mp!", name)
		}
	default:
		g.say("%s has used %s with no effect!", name, effect.Item)
	}
}

func (g *Game) shopMenu(ctx context.Context) error {
	g.state = StateMenu
	g.term.Clear()
	g.rule()
	g.say("Welcome to the shop!")
	g.say("What would you like to buy?")
	for _, good := range g.shop.Goods() {
		g.say("> %s - %d gold (%s)", good.Name, good.Price, good.Description)
	}
	g.say("< Back - Return to the main menu.")
	g.rule()

	input, err := g.read()
	if err != nil || isBack(input) {
		return err
	}

	good, err := g.shop.BuyGood(ctx, g.player, input)
	switch {
	case errors.Is(err, entity.ErrInsufficientGold):
		g.say("You do not have enough gold to buy %s!", good.Name)
	case err != nil:
		g.say("Invalid item!")
	default:
		g.say("%s has bought %s for %d gold!", g.player.Name, good.Name, good.Price)
	}
	return nil
}

func (g *Game) smithyMenu(ctx context.Context) error {
	g.state = StateMenu
	g.term.Clear()
	g.rule()
	g.say("Welcome to the smithy!")
	g.say("What would you like to buy?")
	for _, w := range g.shop.Weapons() {
		g.say("> %s - %d gold (Increases attack range to %d-%d)", w.Name, w.Price, w.MinDamage, w.MaxDamage)
	}
	g.say("< Back - Return to the main menu.")
	g.rule()

	input, err := g.read()
	if err != nil || isBack(input) {
		return err
	}

	weapon, err := g.shop.BuyWeapon(ctx, g.player, input)
	switch {
	case errors.Is(err, entity.ErrInsufficientGold):
		g.say("You do not have enough gold to buy %s!", weapon.Name)
	case err != nil:
		g.say("Invalid item!")
	default:
		g.say("%s has bought %s for %d gold!", g.player.Name, weapon.Name, weapon.Price)
	}
	return nil
}

func (g *Game) spellShopMenu(ctx context.Context) error {
	g.state = StateMenu
	g.term.Clear()
	g.rule()
	g.say("Welcome to the spell shop!")
	g.say("What would you like to buy?")
	for _, s := range g.shop.Spells() {
		g.say("> %s - %d gold (Deals %d damage, costs %d mp)", s.Name, s.Price, s.Damage, s.MPCost)
	}
	g.say("< Back - Return to the main menu.")
	g.rule()

	input, err := g.read()
	if err != nil || isBack(input) {
		return err
	}

	spell, err := g.shop.BuySpell(ctx, g.player, input)
	switch {
	case errors.Is(err, entity.ErrInsufficientGold):
		g.say("You do not have enough gold to buy %s!", spell.Name)
	case errors.Is(err, entity.ErrSpellKnown):
		g.say("You already know %s!", spell.Name)
	case err != nil:
		g.say("Invalid spell!")
	default:
		g.say("%s has bought %s for %d gold!", g.player.Name, spell.Name, spell.Price)
	}
	return nil
}

func (g *Game) shrineMenu(ctx context.Context) error {
	p := g.player
	g.state = StateMenu
	g.term.Clear()
	g.rule()
	g.say("What services would you like to use? (You have %d exp)", p.Experience)
	g.say("Current Stats: Level %d, Strength %d, Defense %d, Hp %d/%d, Mp %d/%d",
		p.Level, p.Strength, p.Defense, p.HP, p.MaxHP, p.MP, p.MaxMP)
	for _, a := range g.shop.Archetypes() {
		d := g.shop.Delta(a)
		g.say("")
		if a == entity.ArchetypeBasic {
			g.say("> Level Up - %d exp", g.shop.LevelCost(p))
		} else {
			g.say("> Level Up as a %s - %d exp", a, g.shop.LevelCost(p))
		}
		g.say("%s = +%d Strength, +%d Defense, +%d HP, +%d MP", a, d.Strength, d.Defense, d.MaxHP, d.MaxMP)
	}
	g.say("")
	g.say("< Back - Return to the main menu.")
	g.rule()

	input, err := g.read()
	if err != nil || isBack(input) {
		return err
	}

	_, err = g.shop.LevelUp(ctx, p, input)
	switch {
	case errors.Is(err, entity.ErrInsufficientExperience):
		g.say("You do not have enough exp to level up!")
	case errors.Is(err, shop.ErrUnknownProduct):
		g.say("Invalid service!")
	case err != nil:
		return err
	default:
		g.term.Print(ui.Heading(fmt.Sprintf("%s has leveled up to level %d!", p.Name, p.Level)))
	}
	return nil
}
