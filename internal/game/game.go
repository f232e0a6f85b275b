package game

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/zyveria/internal/combat"
	"github.com/samdwyer/zyveria/internal/entity"
	"github.com/samdwyer/zyveria/internal/gamedata"
	"github.com/samdwyer/zyveria/internal/logger"
	"github.com/samdwyer/zyveria/internal/save"
	"github.com/samdwyer/zyveria/internal/shop"
	"github.com/samdwyer/zyveria/internal/telemetry"
	"github.com/samdwyer/zyveria/internal/ui"
)

// ErrUnknownCommand is reported for menu tokens that match nothing.
var ErrUnknownCommand = errors.New("unknown command")

const menuColor = "#5F87FF"

// Game holds the entire session state.
type Game struct {
	term      Terminal
	cfg       Config
	catalogs  *gamedata.Catalogs
	shop      *shop.Service
	store     *save.Store
	dice      combat.Dice
	player    *entity.Character
	encounter *combat.Encounter
	state     State
}

// New creates a new game instance.
func New(term Terminal, cfg Config) (*Game, error) {
	catalogs, err := gamedata.LoadCatalogs()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		term:     term,
		cfg:      cfg,
		catalogs: catalogs,
		shop:     shop.NewService(catalogs, cfg.Features),
		store:    save.NewStore(cfg.SaveDir),
		dice:     rand.New(rand.NewSource(seed)),
		state:    StateMenu,
	}, nil
}

// Player returns the session's character, or nil before one is chosen.
func (g *Game) Player() *entity.Character {
	return g.player
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	g.term.Clear()
	if err := g.init(ctx); err != nil {
		if errors.Is(err, ui.ErrQuit) {
			return nil
		}
		return err
	}

	for g.state != StateQuit {
		var err error
		switch g.state {
		case StateMenu:
			err = g.mainMenu(ctx)
		case StateShop:
			err = g.shopMenu(ctx)
		case StateSmithy:
			err = g.smithyMenu(ctx)
		case StateSpellShop:
			err = g.spellShopMenu(ctx)
		case StateShrine:
			err = g.shrineMenu(ctx)
		case StateTravel:
			err = g.travel(ctx)
		case StateCombat:
			err = g.fight(ctx)
		default:
			g.state = StateMenu
		}

		if errors.Is(err, ui.ErrQuit) {
			g.state = StateQuit
		} else if err != nil {
			return err
		}
	}

	logger.FromContext(ctx).Info("Session ended", "name", g.player.Name)
	return nil
}

// init asks for a name and loads or creates the character (traced).
func (g *Game) init(ctx context.Context) error {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	for {
		g.say("Enter your name:")
		name, err := g.read()
		if err != nil {
			return err
		}
		if name == "" {
			continue
		}

		player, loaded, err := g.store.LoadOrCreate(ctx, name, g.newCharacter)
		if errors.Is(err, save.ErrInvalidName) {
			g.say("Names cannot contain slashes.")
			continue
		}
		if err != nil {
			return err
		}

		g.player = player
		span.SetAttributes(
			attribute.String("player.name", player.Name),
			attribute.Bool("player.loaded", loaded),
			attribute.Int("player.level", player.Level),
		)
		if loaded {
			g.rule()
			g.say("Game loaded successfully!")
			g.say("Welcome back to Zyveria!")
			g.rule()
		} else {
			g.say("Creating a new profile for %s.", player.Name)
		}
		logger.FromContext(ctx).Info("Session started", "name", player.Name, "loaded", loaded)
		return nil
	}
}

// newCharacter builds a fresh character holding the catalog's starter weapon.
func (g *Game) newCharacter(name string) *entity.Character {
	c := entity.NewCharacter(name, g.cfg.Features.Mana)
	c.Equip(g.catalogs.StarterWeapon().Weapon())
	return c
}

// menuEntry is one main menu command.
type menuEntry struct {
	label  string
	tokens []string
	run    func(ctx context.Context) error
	hidden func(f shop.Features) bool
}

func (g *Game) menuEntries() []menuEntry {
	noSpells := func(f shop.Features) bool { return !f.Spells }
	goTo := func(s State) func(context.Context) error {
		return func(context.Context) error {
			g.state = s
			return nil
		}
	}
	return []menuEntry{
		{label: "Status", tokens: []string{"status"}, run: g.showStatus},
		{label: "Inventory", tokens: []string{"inventory"}, run: g.showInventory},
		{label: "Spell List", tokens: []string{"spell list", "spells"}, run: g.showSpells, hidden: noSpells},
		{label: "Use item", tokens: []string{"use item", "use"}, run: g.useItem},
		{label: "Shop", tokens: []string{"shop"}, run: goTo(StateShop)},
		{label: "Smithy", tokens: []string{"smithy"}, run: goTo(StateSmithy)},
		{label: "Spell Shop", tokens: []string{"spell shop"}, run: goTo(StateSpellShop), hidden: noSpells},
		{label: "Shrine", tokens: []string{"shrine"}, run: goTo(StateShrine)},
		{label: "Look for a fight", tokens: []string{"look for a fight", "look", "fight"}, run: goTo(StateTravel)},
		{label: "Save game", tokens: []string{"save game", "save"}, run: g.saveGame},
	}
}

// lookupCommand resolves a main menu token.
func (g *Game) lookupCommand(token string) (menuEntry, bool) {
	folded := gamedata.Fold(token)
	for _, e := range g.menuEntries() {
		if e.hidden != nil && e.hidden(g.cfg.Features) {
			continue
		}
		for _, t := range e.tokens {
			if t == folded {
				return e, true
			}
		}
	}
	return menuEntry{}, false
}

func (g *Game) mainMenu(ctx context.Context) error {
	g.sayColored(menuColor, "What would you like to do?")
	for _, e := range g.menuEntries() {
		if e.hidden != nil && e.hidden(g.cfg.Features) {
			continue
		}
		g.say("> %s", e.label)
	}
	g.say("< Quit game")

	input, err := g.read()
	if err != nil {
		return err
	}

	switch gamedata.Fold(input) {
	case "quit", "quit game":
		g.state = StateQuit
		return nil
	}

	entry, ok := g.lookupCommand(input)
	if !ok {
		logger.FromContext(ctx).Debug("Invalid command", "error", ErrUnknownCommand, "input", input)
		g.say("Invalid command!")
		return nil
	}
	return entry.run(ctx)
}

func (g *Game) saveGame(ctx context.Context) error {
	if err := g.store.Save(ctx, g.player); err != nil {
		logger.FromContext(ctx).Error("Save failed", "name", g.player.Name, "error", err)
		g.say("Failed to save the game: %v", err)
		return nil
	}
	g.say("Game saved successfully!")
	return nil
}

// isBack reports whether a sub-menu token means "return to the main menu".
func isBack(token string) bool {
	switch gamedata.Fold(token) {
	case "back", "quit", "":
		return true
	}
	return false
}
