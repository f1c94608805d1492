// SPDX-License-Identifier: MIT
//
// Package: wayfind/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator for synthetic venues.
// Panics on nil.
func WithIDScheme(fn func(floor, room int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic weight functions.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the corridor weight generator. The function
// receives the (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithConnectorWeights sets the elevator and stairs weights between
// consecutive floors. Panics unless both are positive and finite.
func WithConnectorWeights(elevator, stairs float64) BuilderOption {
	if !positive(elevator) || !positive(stairs) {
		panic("builder: WithConnectorWeights requires positive finite weights")
	}
	return func(c *builderConfig) {
		c.elevatorWeight = elevator
		c.stairsWeight = stairs
	}
}

// UniformWeight returns a weight function drawing integers in [lo, hi].
// Without an RNG it returns lo. Panics unless 0 < lo <= hi.
func UniformWeight(lo, hi int) func(*rand.Rand) float64 {
	if lo <= 0 || lo > hi {
		panic("builder: UniformWeight requires 0 < lo <= hi")
	}
	return func(r *rand.Rand) float64 {
		if r == nil {
			return float64(lo)
		}
		return float64(lo + r.Intn(hi-lo+1))
	}
}

func positive(w float64) bool {
	return w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w)
}
