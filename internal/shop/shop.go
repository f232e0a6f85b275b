// Package shop implements every gold- or experience-priced service: the
// general shop, the smithy, the spell shop and the shrine.
//
// All purchases share one shape: resolve the token, check the character can
// pay, debit, then apply. A rejected purchase leaves the character untouched.
// Once a token resolves, the product is returned even when the purchase is
// rejected, so callers can name it in their message.
package shop

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/zyveria/internal/entity"
	"github.com/samdwyer/zyveria/internal/gamedata"
	"github.com/samdwyer/zyveria/internal/logger"
	"github.com/samdwyer/zyveria/internal/telemetry"
)

var (
	ErrUnknownProduct  = errors.New("not for sale")
	ErrFeatureDisabled = errors.New("not available")
)

// Features mirrors the optional parts of the game the shops must respect.
type Features struct {
	Mana       bool
	Spells     bool
	Archetypes bool
}

// Service sells from the loaded catalogs.
type Service struct {
	catalogs *gamedata.Catalogs
	features Features
}

// NewService creates a shop service.
func NewService(catalogs *gamedata.Catalogs, features Features) *Service {
	return &Service{catalogs: catalogs, features: features}
}

// Goods lists the consumables on sale.
func (s *Service) Goods() []gamedata.GoodDef {
	var goods []gamedata.GoodDef
	for _, g := range s.catalogs.Goods.All() {
		if g.RequiresMana && !s.features.Mana {
			continue
		}
		goods = append(goods, g)
	}
	return goods
}

// Weapons lists the weapons the smithy sells. Starter weapons are not sold.
func (s *Service) Weapons() []gamedata.WeaponDef {
	var weapons []gamedata.WeaponDef
	for _, w := range s.catalogs.Weapons.All() {
		if !w.Starter {
			weapons = append(weapons, w)
		}
	}
	return weapons
}

// Spells lists the spells on sale, or nothing when spells are off.
func (s *Service) Spells() []gamedata.SpellDef {
	if !s.features.Spells {
		return nil
	}
	return s.catalogs.Spells.All()
}

// Archetypes lists the paths the shrine offers.
func (s *Service) Archetypes() []entity.Archetype {
	return entity.Archetypes(s.features.Archetypes)
}

// Delta returns what leveling as a grants here. Without mana no path
// raises the mana pool.
func (s *Service) Delta(a entity.Archetype) entity.StatDelta {
	d, _ := a.Delta()
	if !s.features.Mana {
		d.MaxMP = 0
	}
	return d
}

// BuyGood sells one consumable and adds it to the inventory.
func (s *Service) BuyGood(ctx context.Context, c *entity.Character, token string) (*gamedata.GoodDef, error) {
	good := s.catalogs.Goods.Lookup(token)
	if good == nil || (good.RequiresMana && !s.features.Mana) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, token)
	}
	if err := s.charge(ctx, c, "good", good.Name, good.Price); err != nil {
		return good, err
	}
	c.AddItem(good.Name)
	return good, nil
}

// BuyWeapon sells a weapon and equips it, discarding the old one.
func (s *Service) BuyWeapon(ctx context.Context, c *entity.Character, token string) (*gamedata.WeaponDef, error) {
	weapon := s.catalogs.Weapons.Lookup(token)
	if weapon == nil || weapon.Starter {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, token)
	}
	if err := s.charge(ctx, c, "weapon", weapon.Name, weapon.Price); err != nil {
		return weapon, err
	}
	c.Equip(weapon.Weapon())
	return weapon, nil
}

// BuySpell sells a spell. Spells already known are refused before any gold
// changes hands.
func (s *Service) BuySpell(ctx context.Context, c *entity.Character, token string) (*gamedata.SpellDef, error) {
	if !s.features.Spells {
		return nil, fmt.Errorf("spell shop: %w", ErrFeatureDisabled)
	}
	def := s.catalogs.Spells.Lookup(token)
	if def == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, token)
	}
	if _, known := c.KnownSpell(def.Name); known {
		return def, fmt.Errorf("%w: %s", entity.ErrSpellKnown, def.Name)
	}
	if err := s.charge(ctx, c, "spell", def.Name, def.Price); err != nil {
		return def, err
	}
	// Cannot fail: the duplicate check above already ran.
	_ = c.LearnSpell(entity.Spell{
		Name:        def.Name,
		Description: def.Description,
		ManaCost:    def.MPCost,
		Damage:      def.Damage,
	})
	return def, nil
}

// LevelCost returns the experience the shrine asks of c.
func (s *Service) LevelCost(c *entity.Character) int {
	return c.LevelCost()
}

// LevelUp spends experience at the shrine and applies an archetype.
func (s *Service) LevelUp(ctx context.Context, c *entity.Character, token string) (entity.Archetype, error) {
	archetype, ok := entity.ParseArchetype(token)
	if !ok || !s.offers(archetype) {
		return "", fmt.Errorf("%w: %q", ErrUnknownProduct, token)
	}

	_, span := telemetry.Tracer("shop").Start(ctx, "shrine.level_up")
	defer span.End()
	span.SetAttributes(
		attribute.String("archetype", string(archetype)),
		attribute.Int("level", c.Level),
		attribute.Int("cost", c.LevelCost()),
	)

	cost := s.LevelCost(c)
	if err := c.TrySpendExperience(cost); err != nil {
		span.SetAttributes(attribute.Bool("rejected", true))
		logger.FromContext(ctx).Warn("Level up rejected", "archetype", archetype, "cost", cost, "exp", c.Experience)
		return "", err
	}
	c.LevelUpBy(s.Delta(archetype))

	logger.FromContext(ctx).Info("Level up", "name", c.Name, "archetype", archetype, "level", c.Level)
	return archetype, nil
}

func (s *Service) offers(a entity.Archetype) bool {
	for _, offered := range s.Archetypes() {
		if offered == a {
			return true
		}
	}
	return false
}

// charge debits gold for a purchase and records it.
func (s *Service) charge(ctx context.Context, c *entity.Character, kind, name string, price int) error {
	_, span := telemetry.Tracer("shop").Start(ctx, "shop.purchase")
	defer span.End()
	span.SetAttributes(
		attribute.String("kind", kind),
		attribute.String("product", name),
		attribute.Int("price", price),
		attribute.Int("gold", c.Gold),
	)

	if err := c.TrySpendGold(price); err != nil {
		span.SetAttributes(attribute.Bool("rejected", true))
		logger.FromContext(ctx).Warn("Purchase rejected", "kind", kind, "product", name, "price", price, "gold", c.Gold)
		return fmt.Errorf("%s: %w", name, err)
	}

	logger.FromContext(ctx).Info("Purchase", "name", c.Name, "kind", kind, "product", name, "price", price)
	return nil
}
