package chance

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrInvalidDistribution is returned when a weighted draw has nothing to draw
// from: an empty map, a negative weight, or a non-positive total.
var ErrInvalidDistribution = errors.New("chance: invalid distribution")

// Rand is the random source used by draws. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// RandInt returns a uniform integer in [lo, hi], inclusive on both ends.
// Returns lo when hi < lo.
func RandInt(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// WeightedDraw picks one key with probability weight/sum(weights).
// Keys are visited in sorted order so a seeded source always yields the same
// key regardless of map iteration order.
func WeightedDraw[K cmp.Ordered](r Rand, weights map[K]int) (K, error) {
	var zero K
	if len(weights) == 0 {
		return zero, fmt.Errorf("%w: no categories", ErrInvalidDistribution)
	}

	keys := slices.Sorted(maps.Keys(weights))

	total := 0
	for _, k := range keys {
		w := weights[k]
		if w < 0 {
			return zero, fmt.Errorf("%w: negative weight %d for %v", ErrInvalidDistribution, w, k)
		}
		total += w
	}
	if total <= 0 {
		return zero, fmt.Errorf("%w: total weight %d", ErrInvalidDistribution, total)
	}

	roll := r.Intn(total)
	cumulative := 0
	for _, k := range keys {
		cumulative += weights[k]
		if roll < cumulative {
			return k, nil
		}
	}

	return keys[len(keys)-1], nil
}

// ResolveWeights evaluates every table at depth, producing the weight map for
// a single draw. Categories whose table yields 0 stay in the map with weight 0.
func ResolveWeights[K comparable](tables map[K]DepthTable, depth int) map[K]int {
	out := make(map[K]int, len(tables))
	for k, t := range tables {
		out[k] = t.At(depth)
	}
	return out
}
