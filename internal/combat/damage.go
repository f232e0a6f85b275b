package combat

import (
	"github.com/samdwyer/zyveria/internal/entity"
)

// AttackRange returns the bounds of a weapon attack. Only the upper bound
// is floored at 1; strength extends it.
func AttackRange(c *entity.Character) (lo, hi int) {
	return c.Weapon.MinDamage, max(c.Weapon.MaxDamage, 1) + c.Strength
}

// AttackDamage rolls a weapon attack. A degenerate range whose lower bound
// exceeds the upper deals the lower bound.
func AttackDamage(c *entity.Character, d Dice) int {
	lo, hi := AttackRange(c)
	dmg, ok := Roll(d, lo, hi)
	if !ok {
		return lo
	}
	return dmg
}

// CounterRange returns the upper bound of an enemy counter-attack.
func CounterRange(e *entity.Enemy, c *entity.Character) int {
	return max(e.Attack, 1) - c.Defense
}

// CounterDamage rolls an enemy counter-attack. When defense pushes the
// upper bound below 1 the enemy still lands a single point.
func CounterDamage(e *entity.Enemy, c *entity.Character, d Dice) int {
	dmg, ok := Roll(d, 1, CounterRange(e, c))
	if !ok || dmg < 1 {
		return 1
	}
	return dmg
}
