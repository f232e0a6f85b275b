package combat

import (
	"github.com/samdwyer/zyveria/internal/entity"
	"github.com/samdwyer/zyveria/internal/gamedata"
)

// Spawn rolls a fresh enemy for a location tier. Health is rolled first,
// then attack; rewards are fixed from the rolled health.
func Spawn(loc *gamedata.LocationDef, d Dice) *entity.Enemy {
	hp, ok := Roll(d, loc.MinHP, loc.MaxHP)
	if !ok {
		hp = loc.MinHP
	}
	attack, ok := Roll(d, loc.MinAttack, loc.MaxAttack)
	if !ok {
		attack = loc.MinAttack
	}
	return entity.NewEnemy(loc.Enemy, loc.Color, loc.ID, hp, attack)
}
