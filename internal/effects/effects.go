// Package effects resolves item use by dispatching on the item's effect kind.
package effects

import (
	"fmt"

	"github.com/vovakirdan/delve/internal/core"
	"github.com/vovakirdan/delve/internal/entity"
	"github.com/vovakirdan/delve/internal/msglog"
)

// Context is everything an effect may look at when it fires.
type Context struct {
	User     *entity.Entity
	Entities *entity.List
	// InView reports whether (x, y) is visible to the user. Nil means everything is.
	InView  func(x, y int) bool
	TargetX int
	TargetY int
	Palette *core.Palette
}

func (c Context) inView(x, y int) bool {
	if c.InView == nil {
		return true
	}
	return c.InView(x, y)
}

func (c Context) color(col core.Color) core.RGB {
	return c.Palette.Get(col)
}

// Result is one outcome of using an item. A single use can produce several:
// a message, then a death for each fighter it killed.
type Result struct {
	Consumed bool
	Message  *msglog.Message
	Target   *entity.Entity
	Dead     *entity.Entity
	XP       int
}

// Consumed reports whether any result consumed the item.
func Consumed(results []Result) bool {
	for _, r := range results {
		if r.Consumed {
			return true
		}
	}
	return false
}

// Use fires item's effect. The item is not removed from anywhere; callers do
// that when Consumed(results) is true.
func Use(item *entity.Entity, ctx Context) []Result {
	if item.Item == nil {
		return []Result{notUsable(item, ctx)}
	}
	p := item.Item.Params
	switch item.Item.Effect {
	case entity.EffectHeal:
		return heal(ctx, p.Amount)
	case entity.EffectLightning:
		return lightning(ctx, p.Damage, p.MaxRange)
	case entity.EffectFireball:
		return fireball(ctx, p.Damage, p.Radius)
	case entity.EffectConfuse:
		return confuse(ctx, p.Turns)
	default:
		return []Result{notUsable(item, ctx)}
	}
}

func notUsable(item *entity.Entity, ctx Context) Result {
	return Result{Message: msg(fmt.Sprintf("The %s cannot be used", item.Name), ctx.color(core.ColorYellow))}
}

func msg(text string, c core.RGB) *msglog.Message {
	return &msglog.Message{Text: text, Color: c}
}

func damage(target *entity.Entity, amount int) []Result {
	if target.Fighter.TakeDamage(amount) {
		return []Result{{Dead: target, XP: target.Fighter.XP}}
	}
	return nil
}

func heal(ctx Context, amount int) []Result {
	f := ctx.User.Fighter
	if f == nil || f.FullHealth() {
		return []Result{{Message: msg("You are already at full alertness.", ctx.color(core.ColorYellow))}}
	}
	f.Heal(amount)
	return []Result{{Consumed: true, Message: msg("You feel a rush of energy!", ctx.color(core.ColorGreen))}}
}

func lightning(ctx Context, dmg, maxRange int) []Result {
	var target *entity.Entity
	closest := float64(maxRange + 1)

	for _, e := range ctx.Entities.All() {
		if e.Fighter == nil || e == ctx.User || !ctx.inView(e.X, e.Y) {
			continue
		}
		if d := ctx.User.DistanceTo(e); d < closest {
			target = e
			closest = d
		}
	}

	if target == nil {
		return []Result{{Message: msg("No error is present.", ctx.color(core.ColorRed))}}
	}

	results := []Result{{
		Consumed: true,
		Target:   target,
		Message:  msg(fmt.Sprintf("You backtrace the %s with a scrutinizing gaze! The damage is %d", target.Name, dmg), ctx.color(core.ColorWhite)),
	}}
	return append(results, damage(target, dmg)...)
}

func fireball(ctx Context, dmg, radius int) []Result {
	if !ctx.inView(ctx.TargetX, ctx.TargetY) {
		return []Result{{Message: msg("You cannot search an error that doesn't exist.", ctx.color(core.ColorYellow))}}
	}

	orange := ctx.color(core.ColorOrange)
	results := []Result{{
		Consumed: true,
		Message:  msg(fmt.Sprintf("Stack Overflow helps solve every error within %d tiles!", radius), orange),
	}}

	for _, e := range ctx.Entities.All() {
		if e.Fighter == nil || e.Distance(ctx.TargetX, ctx.TargetY) > float64(radius) {
			continue
		}
		results = append(results, Result{
			Target:  e,
			Message: msg(fmt.Sprintf("The %s gets solved for %d hit points.", e.Name, dmg), orange),
		})
		results = append(results, damage(e, dmg)...)
	}
	return results
}

func confuse(ctx Context, turns int) []Result {
	if !ctx.inView(ctx.TargetX, ctx.TargetY) {
		return []Result{{Message: msg("You cannot target an error that doesn't exist.", ctx.color(core.ColorYellow))}}
	}

	target, ok := monsterAt(ctx.Entities, ctx.TargetX, ctx.TargetY)
	if !ok {
		return []Result{{Message: msg("There is no targetable error at that location.", ctx.color(core.ColorYellow))}}
	}

	target.Confuse(turns)
	return []Result{{
		Consumed: true,
		Target:   target,
		Message:  msg(fmt.Sprintf("The %s itself looks confused!", target.Name), ctx.color(core.ColorLightGreen)),
	}}
}

func monsterAt(entities *entity.List, x, y int) (*entity.Entity, bool) {
	for _, e := range entities.All() {
		if e.AI != nil && e.X == x && e.Y == y {
			return e, true
		}
	}
	return nil, false
}
