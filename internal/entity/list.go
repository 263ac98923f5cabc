package entity

import (
	"slices"
)

// List owns the entities of one level. The player is always the first entry
// when the list is created by the generator.
type List struct {
	items []*Entity
}

// NewList creates a list holding the given entities.
func NewList(es ...*Entity) *List {
	return &List{items: slices.Clone(es)}
}

// Add appends an entity.
func (l *List) Add(e *Entity) {
	l.items = append(l.items, e)
}

// Remove deletes e from the list. Returns false when e is not present.
func (l *List) Remove(e *Entity) bool {
	i := slices.Index(l.items, e)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

// Len returns the number of entities.
func (l *List) Len() int {
	return len(l.items)
}

// All returns the entities in insertion order. The slice must not be modified.
func (l *List) All() []*Entity {
	return l.items
}

// At returns the first entity at (x, y).
func (l *List) At(x, y int) (*Entity, bool) {
	for _, e := range l.items {
		if e.X == x && e.Y == y {
			return e, true
		}
	}
	return nil, false
}

// BlockingAt returns the blocking entity at (x, y), if any.
func (l *List) BlockingAt(x, y int) (*Entity, bool) {
	for _, e := range l.items {
		if e.Blocks && e.X == x && e.Y == y {
			return e, true
		}
	}
	return nil, false
}

// ItemAt returns the usable item at (x, y), if any.
func (l *List) ItemAt(x, y int) (*Entity, bool) {
	for _, e := range l.items {
		if e.Item != nil && e.X == x && e.Y == y {
			return e, true
		}
	}
	return nil, false
}

// StairsAt returns the stairs at (x, y), if any.
func (l *List) StairsAt(x, y int) (*Entity, bool) {
	for _, e := range l.items {
		if e.Stairs != nil && e.X == x && e.Y == y {
			return e, true
		}
	}
	return nil, false
}

// Monsters returns every entity with an AI.
func (l *List) Monsters() []*Entity {
	var out []*Entity
	for _, e := range l.items {
		if e.AI != nil {
			out = append(out, e)
		}
	}
	return out
}

// Items returns every entity that can be picked up.
func (l *List) Items() []*Entity {
	var out []*Entity
	for _, e := range l.items {
		if e.Item != nil {
			out = append(out, e)
		}
	}
	return out
}

// Stairs returns the first stairs entity in the list.
func (l *List) Stairs() (*Entity, bool) {
	for _, e := range l.items {
		if e.Stairs != nil {
			return e, true
		}
	}
	return nil, false
}

// DrawOrder returns the entities sorted so higher render orders come last.
// Entities with equal order keep insertion order.
func (l *List) DrawOrder() []*Entity {
	out := slices.Clone(l.items)
	slices.SortStableFunc(out, func(a, b *Entity) int {
		return int(a.Order) - int(b.Order)
	})
	return out
}
