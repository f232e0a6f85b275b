// Package combat runs single-enemy encounters: spawning from a location
// tier, resolving attack/cast/item/flee turns and granting rewards.
//
// Damage rules:
//
//	Player attack:  uniform in [weapon.Min, max(weapon.Max, 1) + strength]
//	Spell:          the spell's fixed damage
//	Counter-attack: uniform in [1, max(enemy.Attack, 1) - defense], and a flat 1
//	                when that upper bound drops below 1
//
// All randomness comes from an injected Dice so tests can script rolls.
package combat

// Dice is the source of randomness for spawns and damage rolls.
// *rand.Rand satisfies it.
type Dice interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// Roll draws uniformly from the inclusive range [lo, hi]. It reports false
// without consuming a roll when the range is empty.
func Roll(d Dice, lo, hi int) (int, bool) {
	if hi < lo {
		return 0, false
	}
	return lo + d.Intn(hi-lo+1), true
}
