// Package entity defines everything that occupies a tile on a level:
// the player, monsters, items and stairs. Capabilities are optional
// components; a nil component means the entity does not have it.
package entity

import (
	"math"

	"github.com/vovakirdan/delve/internal/core"
)

// RenderOrder decides which entity is drawn on top when several share a tile.
// Higher values are drawn last.
type RenderOrder int

const (
	OrderStairs RenderOrder = iota
	OrderCorpse
	OrderItem
	OrderActor
)

func (o RenderOrder) String() string {
	switch o {
	case OrderStairs:
		return "stairs"
	case OrderCorpse:
		return "corpse"
	case OrderItem:
		return "item"
	case OrderActor:
		return "actor"
	default:
		return "unknown"
	}
}

// Entity is a positioned thing on a level.
type Entity struct {
	X, Y   int
	Glyph  rune
	Color  core.RGB
	Name   string
	Kind   string
	Blocks bool
	Order  RenderOrder

	Fighter    *Fighter
	AI         *AI
	Item       *Item
	Equippable *Equippable
	Stairs     *Stairs
}

// Pos returns the entity position.
func (e *Entity) Pos() core.Point {
	return core.Point{X: e.X, Y: e.Y}
}

// MoveTo places the entity at (x, y).
func (e *Entity) MoveTo(x, y int) {
	e.X, e.Y = x, y
}

// Move shifts the entity by (dx, dy).
func (e *Entity) Move(dx, dy int) {
	e.X += dx
	e.Y += dy
}

// Distance is the Euclidean distance from the entity to (x, y).
func (e *Entity) Distance(x, y int) float64 {
	return math.Hypot(float64(x-e.X), float64(y-e.Y))
}

// DistanceTo is the Euclidean distance between two entities.
func (e *Entity) DistanceTo(other *Entity) float64 {
	return e.Distance(other.X, other.Y)
}

// IsPlayer reports whether the entity is the player character.
func (e *Entity) IsPlayer() bool {
	return e.Kind == KindPlayer
}

// Kill turns a fighter into a non-blocking corpse.
func (e *Entity) Kill(corpse core.RGB) {
	e.Glyph = '%'
	e.Color = corpse
	e.Blocks = false
	e.Fighter = nil
	e.AI = nil
	e.Name = "remains of " + e.Name
	e.Order = OrderCorpse
}
