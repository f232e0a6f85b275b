package combat

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/zyveria/internal/entity"
	"github.com/samdwyer/zyveria/internal/gamedata"
	"github.com/samdwyer/zyveria/internal/logger"
	"github.com/samdwyer/zyveria/internal/telemetry"
)

// Rules switches optional parts of combat on or off.
type Rules struct {
	Spells bool
}

// TurnResult describes everything that happened during one turn.
type TurnResult struct {
	Action       Action
	PlayerDamage int    // Damage dealt to the enemy
	Spell        string // Spell cast, if any
	Item         entity.ItemEffect
	ItemErr      error // Set when the item could not be used; the turn still counts
	Countered    bool
	Counter      int // Damage dealt to the player
	EnemyHP      int // Enemy health after the player's action
	Phase        Phase
	ExpGained    int
	GoldGained   int
}

// Encounter holds all state for one fight against a single enemy.
type Encounter struct {
	ID         string
	Player     *entity.Character
	Enemy      *entity.Enemy // nil once the encounter is over
	EnemyName  string
	EnemyColor string
	Location   string
	Phase      Phase
	Turns      int

	expReward  int
	goldReward int
	dice       Dice
	rules      Rules
}

// Start resolves a location token and spawns its enemy. An unknown token
// aborts before anything is spawned or rolled.
func Start(ctx context.Context, player *entity.Character, locations *gamedata.Registry[gamedata.LocationDef], token string, d Dice, rules Rules) (*Encounter, error) {
	loc := locations.Lookup(token)
	if loc == nil {
		logger.FromContext(ctx).Warn("Encounter aborted", "location", token, "phase", PhaseAborted.String())
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, token)
	}
	return NewEncounter(ctx, player, Spawn(loc, d), d, rules), nil
}

// NewEncounter starts a fight against an already spawned enemy.
func NewEncounter(ctx context.Context, player *entity.Character, enemy *entity.Enemy, d Dice, rules Rules) *Encounter {
	e := &Encounter{
		ID:         uuid.NewString(),
		Player:     player,
		Enemy:      enemy,
		EnemyName:  enemy.Name,
		EnemyColor: enemy.Color,
		Location:   enemy.Location,
		Phase:      PhaseEnemySpawned,
		expReward:  enemy.ExpReward,
		goldReward: enemy.GoldReward,
		dice:       d,
		rules:      rules,
	}

	ctx = e.Context(ctx)
	_, span := telemetry.Tracer("combat").Start(ctx, "encounter.start")
	span.SetAttributes(
		attribute.String("encounter_id", e.ID),
		attribute.String("location", e.Location),
		attribute.String("enemy", enemy.Name),
		attribute.Int("enemy_hp", enemy.HP),
		attribute.Int("enemy_attack", enemy.Attack),
		attribute.Int("player_hp", player.HP),
	)
	span.End()

	logger.FromContext(ctx).Info("Encounter started",
		"location", e.Location, "enemy", enemy.Name, "enemy_hp", enemy.HP, "enemy_attack", enemy.Attack)
	return e
}

// Context returns ctx tagged with the encounter ID for logging.
func (e *Encounter) Context(ctx context.Context) context.Context {
	return logger.WithEncounterID(ctx, e.ID)
}

// Rewards returns the experience and gold granted on victory. They are
// fixed when the enemy spawns.
func (e *Encounter) Rewards() (exp, gold int) {
	return e.expReward, e.goldReward
}

// Do dispatches a parsed action. arg names the spell or item for
// ActionCast and ActionUseItem and is ignored otherwise.
func (e *Encounter) Do(ctx context.Context, action Action, arg string) (TurnResult, error) {
	switch action {
	case ActionAttack:
		return e.Attack(ctx)
	case ActionCast:
		return e.Cast(ctx, arg)
	case ActionUseItem:
		return e.UseItem(ctx, arg)
	case ActionFlee:
		return e.Flee(ctx)
	case ActionQuit:
		return e.Quit(ctx)
	default:
		return TurnResult{}, fmt.Errorf("%w: %d", ErrUnknownAction, action)
	}
}

// Attack swings the equipped weapon at the enemy.
func (e *Encounter) Attack(ctx context.Context) (TurnResult, error) {
	if e.Phase.Over() {
		return TurnResult{}, ErrEncounterOver
	}
	ctx, span := e.startTurn(ctx, ActionAttack)
	defer span.End()

	res := TurnResult{Action: ActionAttack, PlayerDamage: AttackDamage(e.Player, e.dice)}
	e.Enemy.TakeDamage(res.PlayerDamage)
	e.afterPlayerDamage(ctx, &res)

	e.endTurn(span, res)
	return res, nil
}

// Cast spends mana on a known spell and deals its fixed damage. An unknown
// spell or a short mana pool fails without using the turn.
func (e *Encounter) Cast(ctx context.Context, spellName string) (TurnResult, error) {
	if e.Phase.Over() {
		return TurnResult{}, ErrEncounterOver
	}
	if !e.rules.Spells {
		return TurnResult{}, ErrSpellsDisabled
	}
	spell, ok := e.Player.KnownSpell(spellName)
	if !ok {
		return TurnResult{}, fmt.Errorf("%w: %s", entity.ErrSpellUnknown, spellName)
	}
	if err := e.Player.SpendMana(spell.ManaCost); err != nil {
		return TurnResult{}, fmt.Errorf("cast %s: %w", spell.Name, err)
	}

	ctx, span := e.startTurn(ctx, ActionCast)
	defer span.End()
	span.SetAttributes(attribute.String("spell", spell.Name))

	res := TurnResult{Action: ActionCast, Spell: spell.Name, PlayerDamage: spell.Damage}
	e.Enemy.TakeDamage(spell.Damage)
	e.afterPlayerDamage(ctx, &res)

	e.endTurn(span, res)
	return res, nil
}

// UseItem consumes an item. The enemy counter-attacks whether or not the
// item was held or did anything.
func (e *Encounter) UseItem(ctx context.Context, name string) (TurnResult, error) {
	if e.Phase.Over() {
		return TurnResult{}, ErrEncounterOver
	}
	ctx, span := e.startTurn(ctx, ActionUseItem)
	defer span.End()
	span.SetAttributes(attribute.String("item", name))

	res := TurnResult{Action: ActionUseItem}
	res.Item, res.ItemErr = e.Player.UseItem(name)
	res.EnemyHP = e.Enemy.HP
	e.counterAttack(ctx, &res)

	e.endTurn(span, res)
	return res, nil
}

// Flee leaves the fight. Nothing is gained or lost.
func (e *Encounter) Flee(ctx context.Context) (TurnResult, error) {
	return e.leave(ctx, ActionFlee)
}

// Quit leaves the fight the same way Flee does.
func (e *Encounter) Quit(ctx context.Context) (TurnResult, error) {
	return e.leave(ctx, ActionQuit)
}

func (e *Encounter) leave(ctx context.Context, action Action) (TurnResult, error) {
	if e.Phase.Over() {
		return TurnResult{}, ErrEncounterOver
	}
	res := TurnResult{Action: action, EnemyHP: e.Enemy.HP}
	e.finish(e.Context(ctx), PhaseFled)
	res.Phase = e.Phase
	return res, nil
}

// afterPlayerDamage ends the fight if the enemy fell, otherwise lets it
// strike back.
func (e *Encounter) afterPlayerDamage(ctx context.Context, res *TurnResult) {
	res.EnemyHP = e.Enemy.HP
	if e.Enemy.IsAlive() {
		e.counterAttack(ctx, res)
		return
	}

	e.Player.GainExperience(e.expReward)
	e.Player.GainGold(e.goldReward)
	res.ExpGained = e.expReward
	res.GoldGained = e.goldReward
	e.finish(ctx, PhaseVictory)
	res.Phase = e.Phase
}

func (e *Encounter) counterAttack(ctx context.Context, res *TurnResult) {
	res.Countered = true
	res.Counter = CounterDamage(e.Enemy, e.Player, e.dice)
	e.Player.TakeDamage(res.Counter)

	if e.Player.IsDefeated() {
		e.finish(ctx, PhaseDefeat)
	} else {
		e.Phase = PhaseTurnLoop
	}
	res.Phase = e.Phase
}

func (e *Encounter) startTurn(ctx context.Context, action Action) (context.Context, trace.Span) {
	e.Turns++
	ctx = e.Context(ctx)
	ctx, span := telemetry.Tracer("combat").Start(ctx, "encounter.turn")
	span.SetAttributes(
		attribute.String("encounter_id", e.ID),
		attribute.String("action", action.String()),
		attribute.Int("turn", e.Turns),
	)
	return ctx, span
}

func (e *Encounter) endTurn(span trace.Span, res TurnResult) {
	span.SetAttributes(
		attribute.Int("player_damage", res.PlayerDamage),
		attribute.Int("counter_damage", res.Counter),
		attribute.Int("player_hp", e.Player.HP),
		attribute.String("phase", res.Phase.String()),
	)
	if res.ItemErr != nil {
		span.SetAttributes(attribute.Bool("item_missing", true))
	}
}

// finish records the outcome and drops the enemy.
func (e *Encounter) finish(ctx context.Context, phase Phase) {
	e.Phase = phase
	e.Enemy = nil

	_, span := telemetry.Tracer("combat").Start(ctx, "encounter.end")
	span.SetAttributes(
		attribute.String("encounter_id", e.ID),
		attribute.String("outcome", phase.String()),
		attribute.Int("turns_taken", e.Turns),
		attribute.Int("player_hp_remaining", e.Player.HP),
	)
	span.End()

	log := logger.FromContext(ctx)
	if phase == PhaseVictory {
		log.Info("Encounter won", "enemy", e.EnemyName, "turns", e.Turns, "exp", e.expReward, "gold", e.goldReward)
		return
	}
	log.Info("Encounter ended", "enemy", e.EnemyName, "outcome", phase.String(), "turns", e.Turns)
}
