package entity

// Enemy is the opponent of a single encounter. It is never persisted.
type Enemy struct {
	Name     string // e.g. "Goblin"
	Color    string // Hex marker of the location it was found in
	Location string // Location ID
	HP       int
	MaxHP    int // Health as rolled at spawn
	Attack   int

	// Rewards are fixed at spawn from the rolled health.
	ExpReward  int
	GoldReward int
}

// NewEnemy creates an enemy and fixes its rewards from the rolled health.
func NewEnemy(name, color, location string, hp, attack int) *Enemy {
	reward := RewardFor(hp)
	return &Enemy{
		Name:       name,
		Color:      color,
		Location:   location,
		HP:         hp,
		MaxHP:      hp,
		Attack:     attack,
		ExpReward:  reward,
		GoldReward: reward,
	}
}

// RewardFor returns the experience and gold granted for beating an enemy
// that spawned with hp health.
func RewardFor(hp int) int {
	return max(hp, 2) / 2
}

// IsAlive returns true while the enemy has health remaining.
func (e *Enemy) IsAlive() bool { return e.HP > 0 }

// TakeDamage subtracts amount from health. Health may go negative.
func (e *Enemy) TakeDamage(amount int) {
	e.HP -= amount
}
