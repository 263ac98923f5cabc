// Package chance resolves depth-scaled breakpoint tables and draws weighted
// random categories. Everything here is driven by a caller-supplied random
// source so generation is reproducible under a fixed seed.
package chance

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Breakpoint activates Value once the dungeon is at least MinDepth deep.
type Breakpoint struct {
	Value    int `yaml:"value"`
	MinDepth int `yaml:"depth"`
}

// UnmarshalYAML accepts the compact pair form [value, depth] as well as the
// mapping form {value: v, depth: d}.
func (b *Breakpoint) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var pair []int
		if err := node.Decode(&pair); err != nil {
			return fmt.Errorf("breakpoint at line %d: %w", node.Line, err)
		}
		if len(pair) != 2 {
			return fmt.Errorf("breakpoint at line %d: expected [value, depth], got %d elements", node.Line, len(pair))
		}
		b.Value, b.MinDepth = pair[0], pair[1]
		return nil
	case yaml.MappingNode:
		type plain Breakpoint
		var p plain
		if err := node.Decode(&p); err != nil {
			return fmt.Errorf("breakpoint at line %d: %w", node.Line, err)
		}
		*b = Breakpoint(p)
		return nil
	default:
		return fmt.Errorf("breakpoint at line %d: expected sequence or mapping", node.Line)
	}
}

// MarshalYAML writes the compact [value, depth] form.
func (b Breakpoint) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	if err := n.Encode([]int{b.Value, b.MinDepth}); err != nil {
		return nil, err
	}
	return n, nil
}

// DepthTable is an ascending list of breakpoints ordered by MinDepth.
type DepthTable []Breakpoint

// Table builds a DepthTable from (value, depth) pairs.
func Table(pairs ...[2]int) DepthTable {
	t := make(DepthTable, len(pairs))
	for i, p := range pairs {
		t[i] = Breakpoint{Value: p[0], MinDepth: p[1]}
	}
	return t
}

// Flat returns a table whose value is active from depth 0.
func Flat(value int) DepthTable {
	return DepthTable{{Value: value, MinDepth: 0}}
}

// At returns the value active at depth. See ValueAtDepth.
func (t DepthTable) At(depth int) int {
	return ValueAtDepth(t, depth)
}

// Sorted reports whether breakpoints are in non-decreasing MinDepth order.
func (t DepthTable) Sorted() bool {
	for i := 1; i < len(t); i++ {
		if t[i].MinDepth < t[i-1].MinDepth {
			return false
		}
	}
	return true
}

// ValueAtDepth returns the value of the last breakpoint whose MinDepth is at
// most depth, or 0 when no breakpoint qualifies. The table must already be
// sorted ascending; it is not re-sorted here.
func ValueAtDepth(table DepthTable, depth int) int {
	for i := len(table) - 1; i >= 0; i-- {
		if depth >= table[i].MinDepth {
			return table[i].Value
		}
	}
	return 0
}

// Shift moves every depth-gated breakpoint by delta floors. Breakpoints active
// from depth 0 stay put, and shifted ones never move above depth 1.
func (t DepthTable) Shift(delta int) DepthTable {
	out := make(DepthTable, len(t))
	for i, b := range t {
		if b.MinDepth > 0 {
			b.MinDepth = max(1, b.MinDepth+delta)
		}
		out[i] = b
	}
	return out
}
