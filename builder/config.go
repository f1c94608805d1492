// SPDX-License-Identifier: MIT
//
// Package: wayfind/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn           = floorRoomID       ("L1_R0","L1_R1",...)
//   • rng            = nil               (pure/deterministic unless seeded)
//   • weightFn       = constant defaultCorridorWeight
//   • elevatorWeight = defaultElevatorWeight
//   • stairsWeight   = defaultStairsWeight

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: (floor, room index) -> ID.
	idFn func(floor, room int) string
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Corridor weight generator.
	weightFn func(*rand.Rand) float64

	// Vertical connector weights between consecutive floors.
	elevatorWeight float64
	stairsWeight   float64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultCorridorWeight = 3.0
	defaultElevatorWeight = 2.0
	defaultStairsWeight   = 6.0
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:           floorRoomID,
		weightFn:       func(*rand.Rand) float64 { return defaultCorridorWeight },
		elevatorWeight: defaultElevatorWeight,
		stairsWeight:   defaultStairsWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// floorRoomID renders "L<floor>_R<room>".
func floorRoomID(floor, room int) string {
	buf := make([]byte, 0, 12)
	buf = append(buf, 'L')
	buf = strconv.AppendInt(buf, int64(floor), 10)
	buf = append(buf, '_', 'R')
	buf = strconv.AppendInt(buf, int64(room), 10)

	return string(buf)
}
