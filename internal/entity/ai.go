package entity

// AIKind selects a monster behavior.
type AIKind int

const (
	AIBasic AIKind = iota
	AIConfused
)

func (k AIKind) String() string {
	switch k {
	case AIBasic:
		return "basic"
	case AIConfused:
		return "confused"
	default:
		return "unknown"
	}
}

// AI is the behavior attached to a monster. A confused AI remembers the
// behavior it replaced and restores it once TurnsLeft runs out.
type AI struct {
	Kind      AIKind
	Previous  *AI
	TurnsLeft int
}

// NewBasicAI returns the chase-the-player behavior.
func NewBasicAI() *AI {
	return &AI{Kind: AIBasic}
}

// Confuse wraps the entity's current AI in a confused AI for turns turns.
func (e *Entity) Confuse(turns int) {
	prev := e.AI
	e.AI = &AI{Kind: AIConfused, Previous: prev, TurnsLeft: turns}
}

// Tick counts down a confused AI. It returns the AI that should be active
// after this turn.
func (a *AI) Tick() *AI {
	if a.Kind != AIConfused {
		return a
	}
	if a.TurnsLeft > 0 {
		a.TurnsLeft--
		return a
	}
	return a.Previous
}
