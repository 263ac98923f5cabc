package entity

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/delve/internal/core"
)

// KindPlayer is the Kind of the player entity.
const KindPlayer = "player"

// KindStairs is the Kind of the down-stairs entity.
const KindStairs = "stairs"

// MonsterKind names a monster template.
type MonsterKind string

const (
	MonsterSyntaxError MonsterKind = "syntax_error"
	MonsterNullPointer MonsterKind = "null_pointer"
)

// ItemKind names an item template.
type ItemKind string

const (
	ItemCoffee        ItemKind = "coffee"
	ItemIDE           ItemKind = "ide"
	ItemCompiler      ItemKind = "compiler"
	ItemBacktrace     ItemKind = "backtrace"
	ItemStackOverflow ItemKind = "stack_overflow"
	ItemUnknownError  ItemKind = "unknown_error"
)

type monsterTemplate struct {
	name    string
	glyph   rune
	color   core.Color
	hp      int
	defense int
	power   int
	xp      int
}

var monsterTemplates = map[MonsterKind]monsterTemplate{
	MonsterSyntaxError: {name: "Syntax Error", glyph: '$', color: core.ColorDesaturatedGreen, hp: 20, defense: 0, power: 4, xp: 35},
	MonsterNullPointer: {name: "Null Pointer Exception", glyph: 'N', color: core.ColorDarkerGreen, hp: 30, defense: 2, power: 8, xp: 100},
}

type itemTemplate struct {
	name        string
	glyph       rune
	color       core.Color
	effect      EffectKind
	params      EffectParams
	prompt      string
	promptColor core.Color
	equip       *Equippable
}

var itemTemplates = map[ItemKind]itemTemplate{
	ItemCoffee: {
		name: "Coffee", glyph: '!', color: core.ColorViolet,
		effect: EffectHeal, params: EffectParams{Amount: 40},
	},
	ItemIDE: {
		name: "IDE", glyph: '/', color: core.ColorSky,
		equip: &Equippable{Slot: SlotMainHand, PowerBonus: 3},
	},
	ItemCompiler: {
		name: "Compiler", glyph: '[', color: core.ColorDarkerOrange,
		equip: &Equippable{Slot: SlotOffHand, DefenseBonus: 1},
	},
	ItemBacktrace: {
		name: "backtrace", glyph: '#', color: core.ColorYellow,
		effect: EffectLightning, params: EffectParams{Damage: 40, MaxRange: 5},
	},
	ItemStackOverflow: {
		name: "Stack Overflow", glyph: '#', color: core.ColorRed,
		effect: EffectFireball, params: EffectParams{Damage: 25, Radius: 3},
		prompt:      "Left-click a target bug for the error search, or right-click to cancel.",
		promptColor: core.ColorLightCyan,
	},
	ItemUnknownError: {
		name: "Unknown Error", glyph: '#', color: core.ColorLightPink,
		effect: EffectConfuse, params: EffectParams{Turns: 10},
		prompt:      "Left-click an error to confuse it with an error, or right-click to cancel.",
		promptColor: core.ColorLightCyan,
	},
}

// MonsterKinds returns every known monster kind in sorted order.
func MonsterKinds() []MonsterKind {
	kinds := make([]MonsterKind, 0, len(monsterTemplates))
	for k := range monsterTemplates {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// ItemKinds returns every known item kind in sorted order.
func ItemKinds() []ItemKind {
	kinds := make([]ItemKind, 0, len(itemTemplates))
	for k := range itemTemplates {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// KnownMonster reports whether kind has a template.
func KnownMonster(kind MonsterKind) bool {
	_, ok := monsterTemplates[kind]
	return ok
}

// KnownItem reports whether kind has a template.
func KnownItem(kind ItemKind) bool {
	_, ok := itemTemplates[kind]
	return ok
}

// NewMonster builds a blocking monster from its template.
func NewMonster(kind MonsterKind, x, y int, palette *core.Palette) (*Entity, error) {
	t, ok := monsterTemplates[kind]
	if !ok {
		return nil, fmt.Errorf("entity: unknown monster kind %q", kind)
	}
	return &Entity{
		X: x, Y: y,
		Glyph:   t.glyph,
		Color:   palette.Get(t.color),
		Name:    t.name,
		Kind:    string(kind),
		Blocks:  true,
		Order:   OrderActor,
		Fighter: NewFighter(t.hp, t.defense, t.power, t.xp),
		AI:      NewBasicAI(),
	}, nil
}

// NewItem builds a non-blocking item from its template.
func NewItem(kind ItemKind, x, y int, palette *core.Palette) (*Entity, error) {
	t, ok := itemTemplates[kind]
	if !ok {
		return nil, fmt.Errorf("entity: unknown item kind %q", kind)
	}
	e := &Entity{
		X: x, Y: y,
		Glyph: t.glyph,
		Color: palette.Get(t.color),
		Name:  t.name,
		Kind:  string(kind),
		Order: OrderItem,
	}
	e.Item = &Item{Effect: t.effect, Params: t.params}
	if t.equip != nil {
		eq := *t.equip
		e.Equippable = &eq
	}
	if t.prompt != "" {
		e.Item.Targeting = true
		e.Item.Prompt = t.prompt
		e.Item.PromptColor = palette.Get(t.promptColor)
	}
	return e, nil
}

// NewStairs builds the down-stairs leading to floor.
func NewStairs(x, y, floor int, palette *core.Palette) *Entity {
	return &Entity{
		X: x, Y: y,
		Glyph:  '>',
		Color:  palette.Get(core.ColorWhite),
		Name:   "Stairs",
		Kind:   KindStairs,
		Order:  OrderStairs,
		Stairs: &Stairs{Floor: floor},
	}
}

// NewPlayer builds the player entity.
func NewPlayer(hp, defense, power int, palette *core.Palette) *Entity {
	return &Entity{
		Glyph:   '@',
		Color:   palette.Get(core.ColorWhite),
		Name:    "Player",
		Kind:    KindPlayer,
		Blocks:  true,
		Order:   OrderActor,
		Fighter: NewFighter(hp, defense, power, 0),
	}
}
