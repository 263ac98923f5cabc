package entity

import "github.com/vovakirdan/delve/internal/core"

// EffectKind is the closed set of use effects an item can carry.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectHeal
	EffectLightning
	EffectFireball
	EffectConfuse
)

func (k EffectKind) String() string {
	switch k {
	case EffectNone:
		return "none"
	case EffectHeal:
		return "heal"
	case EffectLightning:
		return "lightning"
	case EffectFireball:
		return "fireball"
	case EffectConfuse:
		return "confuse"
	default:
		return "unknown"
	}
}

// EffectParams carries the numbers an effect needs. Unused fields stay zero.
type EffectParams struct {
	Amount   int
	Damage   int
	Radius   int
	MaxRange int
	Turns    int
}

// Item marks an entity that can be picked up and used.
type Item struct {
	Effect      EffectKind
	Params      EffectParams
	Targeting   bool
	Prompt      string
	PromptColor core.RGB
}

// Slot is an equipment slot.
type Slot int

const (
	SlotMainHand Slot = iota + 1
	SlotOffHand
)

func (s Slot) String() string {
	switch s {
	case SlotMainHand:
		return "main_hand"
	case SlotOffHand:
		return "off_hand"
	default:
		return "none"
	}
}

// Equippable marks an item that grants stat bonuses while equipped.
type Equippable struct {
	Slot         Slot
	PowerBonus   int
	DefenseBonus int
	MaxHPBonus   int
}

// Stairs lead to Floor.
type Stairs struct {
	Floor int
}
