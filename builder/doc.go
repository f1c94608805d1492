// SPDX-License-Identifier: MIT

// Package builder assembles venues on top of core.Graph.
//
// What:
//
//   - BuildGraph(gopts, bopts, cons...) creates a fresh graph and applies
//     constructors in order.
//   - Casino() adds the built-in four-floor casino: 28 rooms, an elevator
//     spine (weight 2) and a slower stair spine (weight 6).
//   - Tower(floors, rooms) adds a synthetic venue whose corridor weights come
//     from a pluggable weight function.
//
// Why:
//
//   - The simulator needs a ready-made venue when no scenario file is given.
//   - Benchmarks need venues of arbitrary size with reproducible weights.
//
// Options:
//
//	WithSeed / WithRand        random source for stochastic weight functions
//	WithWeightFn               corridor weight generator (see UniformWeight)
//	WithIDScheme               (floor, room) -> vertex ID for Tower
//	WithConnectorWeights       elevator and stair spine weights
//
// Option constructors panic on meaningless input (nil functions, non-positive
// weights). Constructors return errors wrapped with ErrConstructFailed or
// ErrTooFewVertices and never panic.
package builder
