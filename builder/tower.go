// SPDX-License-Identifier: MIT
//
// Package: wayfind/builder
//
// tower.go: synthetic multi-floor venue for benchmarks and load tests.

package builder

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

const (
	minTowerFloors = 1
	minTowerRooms  = 2
)

// Tower returns a Constructor that adds a floors×rooms venue. Each floor is
// a corridor chain of rooms with weights drawn from cfg.weightFn; room 0 is
// the elevator landing and the last room is the stair landing. Landings of
// consecutive floors are joined by the elevator and stair spines.
//
// IDs come from cfg.idFn(floor, room) with floors numbered from 1.
// Position is (room, 0, floor).
//
// Errors:
//   - ErrTooFewVertices if floors < 1 or rooms < 2.
//   - ErrConstructFailed (wrapping the core error) on a core mutation failure,
//     e.g. an ID scheme producing duplicates or a weight function returning
//     a non-positive weight.
//
// Complexity: O(floors · rooms).
func Tower(floors, rooms int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const method = "Tower"
		if floors < minTowerFloors || rooms < minTowerRooms {
			return fmt.Errorf("%s: floors=%d rooms=%d: %w", method, floors, rooms, ErrTooFewVertices)
		}

		for f := 1; f <= floors; f++ {
			for r := 0; r < rooms; r++ {
				id := cfg.idFn(f, r)
				if err := g.AddVertex(id, core.Position{X: float64(r), Floor: f}); err != nil {
					return wrapf(method, "AddVertex("+id+")", err)
				}
			}
			for r := 0; r+1 < rooms; r++ {
				a, b := cfg.idFn(f, r), cfg.idFn(f, r+1)
				if err := g.AddEdge(a, b, cfg.weightFn(cfg.rng), core.EdgeNormal); err != nil {
					return wrapf(method, fmt.Sprintf("AddEdge(%s,%s)", a, b), err)
				}
			}
		}

		return linkSpines(g, cfg, method, floors, func(floor int, kind core.EdgeType) string {
			if kind == core.EdgeElevator {
				return cfg.idFn(floor, 0)
			}
			return cfg.idFn(floor, rooms-1)
		})
	}
}
