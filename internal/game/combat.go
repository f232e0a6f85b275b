package game

import (
	"context"
	"errors"

	"github.com/samdwyer/zyveria/internal/combat"
	"github.com/samdwyer/zyveria/internal/entity"
	"github.com/samdwyer/zyveria/internal/logger"
)

// travel asks where to fight and spawns the enemy.
func (g *Game) travel(ctx context.Context) error {
	g.state = StateMenu
	g.rule()
	g.say("Where would you like to go?")
	for _, loc := range g.catalogs.Locations.All() {
		g.sayColored(loc.Color, "> %s - %s", loc.Name, loc.Blurb)
	}
	g.say("< Back - Return to the main menu.")
	g.rule()

	input, err := g.read()
	if err != nil || isBack(input) {
		return err
	}

	enc, err := combat.Start(ctx, g.player, g.catalogs.Locations, input, g.dice, g.rules())
	if errors.Is(err, combat.ErrUnknownLocation) {
		g.say("Invalid location!")
		return nil
	}
	if err != nil {
		return err
	}

	g.encounter = enc
	g.state = StateCombat
	g.sayColored(enc.EnemyColor, "You have encountered a %s with %d hp!", enc.EnemyName, enc.Enemy.HP)
	return nil
}

func (g *Game) rules() combat.Rules {
	return combat.Rules{Spells: g.cfg.Features.Spells}
}

// fight runs the encounter's turn loop until it ends.
func (g *Game) fight(ctx context.Context) error {
	enc := g.encounter
	ctx = enc.Context(ctx)

	for !enc.Phase.Over() {
		g.say("What would you like to do?")
		g.say("attack")
		if g.cfg.Features.Spells {
			g.say("magic")
		}
		g.say("item")
		g.say("run")

		input, err := g.read()
		if err != nil {
			return err
		}
		action, err := combat.ParseAction(input)
		if err != nil || (action == combat.ActionCast && !g.cfg.Features.Spells) {
			g.say("Invalid command!")
			continue
		}

		var arg string
		switch action {
		case combat.ActionCast:
			_ = g.showSpells(ctx)
			g.say("Enter the name of the spell you would like to use:")
			if arg, err = g.read(); err != nil {
				return err
			}
			if isBack(arg) {
				continue
			}
		case combat.ActionUseItem:
			_ = g.showInventory(ctx)
			g.say("Enter the name of the item you would like to use:")
			if arg, err = g.read(); err != nil {
				return err
			}
			arg = g.heldItem(arg)
		}

		res, err := enc.Do(ctx, action, arg)
		switch {
		case errors.Is(err, entity.ErrSpellUnknown):
			g.say("You do not have %s in your spell list!", arg)
			continue
		case errors.Is(err, entity.ErrInsufficientMana):
			g.say("You do not have enough mp to cast %s!", arg)
			continue
		case err != nil:
			return err
		}
		g.report(ctx, res, arg)
	}

	g.encounter = nil
	g.state = StateMenu
	return nil
}

// report describes a resolved turn.
func (g *Game) report(ctx context.Context, res combat.TurnResult, arg string) {
	enc, p := g.encounter, g.player
	enemy := enc.EnemyName

	switch res.Action {
	case combat.ActionAttack:
		g.say("You have dealt %d damage to the %s! The %s has %d hp remaining!", res.PlayerDamage, enemy, enemy, res.EnemyHP)
	case combat.ActionCast:
		spell, _ := p.KnownSpell(res.Spell)
		g.say("%s has lost %d mp! %s has %d mp remaining!", p.Name, spell.ManaCost, p.Name, p.MP)
		g.say("You have cast %s on the %s! The %s has %d hp remaining!", res.Spell, enemy, enemy, res.EnemyHP)
	case combat.ActionUseItem:
		g.describeItem(arg, res.Item, res.ItemErr)
	case combat.ActionFlee:
		g.term.Clear()
		g.say("You have run away from the fight!")
	}

	switch res.Phase {
	case combat.PhaseVictory:
		g.term.Clear()
		g.sayColored(enc.EnemyColor, "You have defeated the %s! You have gained %d exp!", enemy, res.ExpGained)
		g.say("%s has gained %d gold!", p.Name, res.GoldGained)
	case combat.PhaseDefeat:
		g.say("The %s has dealt %d damage to you!", enemy, res.Counter)
		g.sayColored(enc.EnemyColor, "You have been defeated by the %s!", enemy)
		g.revive(ctx)
	default:
		if res.Countered {
			g.say("The %s has dealt %d damage to you! You have %d hp remaining!", enemy, res.Counter, p.HP)
		}
	}
}

// revive brings a defeated character back with 1 hp. Nothing else is lost.
func (g *Game) revive(ctx context.Context) {
	p := g.player
	p.Heal(1 - p.HP)
	logger.FromContext(ctx).Info("Player revived", "name", p.Name, "hp", p.HP)
	g.say("You wake up back in town with %d hp.", p.HP)
}
