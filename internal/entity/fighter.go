package entity

// Fighter holds combat stats.
type Fighter struct {
	HP      int
	MaxHP   int
	Defense int
	Power   int
	XP      int
}

// NewFighter creates a fighter at full health.
func NewFighter(hp, defense, power, xp int) *Fighter {
	return &Fighter{HP: hp, MaxHP: hp, Defense: defense, Power: power, XP: xp}
}

// Heal restores up to amount hit points without exceeding MaxHP.
func (f *Fighter) Heal(amount int) {
	f.HP = min(f.HP+amount, f.MaxHP)
}

// TakeDamage subtracts amount and reports whether the fighter died.
func (f *Fighter) TakeDamage(amount int) bool {
	f.HP -= amount
	return f.HP <= 0
}

// FullHealth reports whether HP is at the maximum.
func (f *Fighter) FullHealth() bool {
	return f.HP >= f.MaxHP
}
