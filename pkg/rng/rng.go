package rng

import (
	"fmt"
	"math/rand"
	"strconv"
)

// RNG wraps math/rand with the helper methods the rules core, rollout
// simulator, and scenario generator need, and keeps the seed that produced
// it so callers can log or re-derive from it.
//
// Unlike a stage-keyed pipeline RNG, every RNG here is created directly from
// a uint64 seed: the evaluator and grader derive one seed per rollout by
// plain arithmetic offset from their own seed (see package doc), so the
// derivation itself must not hash anything away.
type RNG struct {
	seed   uint64
	source *rand.Rand
}

// New creates an RNG directly from seed. Two RNGs created from the same
// seed produce byte-for-byte identical sequences.
func New(seed uint64) *RNG {
	return &RNG{
		seed:   seed,
		source: rand.New(rand.NewSource(int64(seed))),
	}
}

// Seed returns the seed this RNG was created from.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Uint64 returns a pseudo-random 64-bit unsigned integer.
func (r *RNG) Uint64() uint64 {
	return r.source.Uint64()
}

// Intn returns a pseudo-random integer in [0, n). It panics if n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn argument must be positive")
	}
	return r.source.Intn(n)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.source.Float64()
}

// Shuffle pseudo-randomizes the order of elements via swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.source.Shuffle(n, swap)
}

// IntRange returns a pseudo-random integer in [min, max]. It panics if
// min > max.
func (r *RNG) IntRange(min, max int) int {
	if min > max {
		panic("rng: IntRange min must be <= max")
	}
	if min == max {
		return min
	}
	return min + r.source.Intn(max-min+1)
}

// Float64Range returns a pseudo-random float64 in [min, max). It panics if
// min >= max.
func (r *RNG) Float64Range(min, max float64) float64 {
	if min >= max {
		panic("rng: Float64Range min must be < max")
	}
	return min + r.source.Float64()*(max-min)
}

// Bool returns a pseudo-random boolean value.
func (r *RNG) Bool() bool {
	return r.source.Intn(2) == 1
}

// Pick returns a pseudo-random element of a non-empty slice of indices
// [0, n), used by policies that must break ties uniformly at random among
// a pre-filtered candidate set. It panics if n <= 0.
func (r *RNG) Pick(n int) int {
	return r.Intn(n)
}

// WeightedChoice selects an index from weights using weighted random
// selection. Weights must be non-negative. Returns -1 if weights is empty
// or every weight is zero.
func (r *RNG) WeightedChoice(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	total := 0.0
	for _, w := range weights {
		if w < 0 {
			panic("rng: WeightedChoice weights must be non-negative")
		}
		total += w
	}
	if total == 0 {
		return -1
	}

	randVal := r.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if randVal < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// ParseSeedString parses a decimal uint64 seed out of a string. Seeds cross
// the JSON boundary as strings (see pkg/api) so that values above
// Number.MAX_SAFE_INTEGER still round-trip through a JS host.
func ParseSeedString(s string) (uint64, error) {
	seed, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("rng: invalid seed string %q: %w", s, err)
	}
	return seed, nil
}

// FormatSeed renders a seed as a decimal string for the JSON boundary.
func FormatSeed(seed uint64) string {
	return strconv.FormatUint(seed, 10)
}

// RolloutSeed derives the seed for the k-th candidate rollout performed
// while evaluating a move, as a pure arithmetic offset of the evaluator's
// own seed. This must stay plain addition — not a hash — so that a host
// replaying the same evaluator seed and candidate index reproduces the
// exact same rollout, independent of this implementation.
func RolloutSeed(evaluatorSeed uint64, k int) uint64 {
	return evaluatorSeed + uint64(k)
}

// GradingRolloutSeed derives the seed for the i-th rollout performed while
// grading a user action. The 1_000_000 offset keeps grading rollouts out of the seed range used by
// RolloutSeed for the same evaluator seed, so grading never replays a
// candidate-evaluation sequence.
func GradingRolloutSeed(evaluatorSeed uint64, i int) uint64 {
	return evaluatorSeed + 1_000_000 + uint64(i)
}
