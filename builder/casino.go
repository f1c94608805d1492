// SPDX-License-Identifier: MIT
//
// Package: wayfind/builder
//
// casino.go: the built-in four-floor casino venue.
//
// Layout:
//   • Floor 1: entrance, slot halls, roulette, bar.
//   • Floor 2: VIP tables, blackjack, poker room.
//   • Floor 3: auditorium, cashier, restaurants, terrace.
//   • Floor 4: suites, walkway, penthouse.
//   • Every floor has an elevator landing and a stair landing; landings on
//     consecutive floors are joined by the elevator spine (cfg.elevatorWeight)
//     and the stair spine (cfg.stairsWeight).

package builder

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

// CasinoFloors is the number of floors of the built-in casino.
const CasinoFloors = 4

type casinoRoom struct {
	id   string
	x, y float64
	fl   int
}

type casinoLink struct {
	a, b string
	w    float64
	t    core.EdgeType
}

// casinoRooms lists every room with its coordinates, floor by floor.
var casinoRooms = []casinoRoom{
	{"L1_Entrada", 1, 1, 1},
	{"L1_Vestibulo", 3, 1.5, 1},
	{"L1_TragamonedasA", 5, 2, 1},
	{"L1_TragamonedasB", 7, 2, 1},
	{"L1_RuletasA", 9, 2, 1},
	{"L1_Barra", 11, 1.5, 1},
	{"L1_Ascensor", 2, 4, 1},
	{"L1_Escaleras", 6, 4, 1},

	{"L2_MesasVIP", 1, 1, 2},
	{"L2_BarraVIP", 4, 2, 2},
	{"L2_BlackjackA", 6, 2, 2},
	{"L2_BlackjackB", 8, 2.5, 2},
	{"L2_SalaPoker", 10, 1.5, 2},
	{"L2_Pasillo", 12, 1.5, 2},
	{"L2_Ascensor", 2, 4, 2},
	{"L2_Escaleras", 6, 4, 2},

	{"L3_Auditorio", 1, 1, 3},
	{"L3_Caja", 4, 2, 3},
	{"L3_RestauranteA", 6, 2, 3},
	{"L3_RestauranteB", 8, 2, 3},
	{"L3_Terraza", 10, 1.5, 3},
	{"L3_Ascensor", 2, 4, 3},
	{"L3_Escaleras", 6, 4, 3},

	{"L4_Suites", 1, 1, 4},
	{"L4_Pasarela", 3.5, 2, 4},
	{"L4_Penthouse", 6, 2, 4},
	{"L4_Ascensor", 2, 4, 4},
	{"L4_Escaleras", 6, 4, 4},
}

// casinoLinks lists the intra-floor corridors and landing connections.
var casinoLinks = []casinoLink{
	{"L1_Entrada", "L1_Vestibulo", 3, core.EdgeNormal},
	{"L1_Vestibulo", "L1_TragamonedasA", 4, core.EdgeNormal},
	{"L1_TragamonedasA", "L1_TragamonedasB", 3, core.EdgeNormal},
	{"L1_TragamonedasB", "L1_RuletasA", 2, core.EdgeNormal},
	{"L1_RuletasA", "L1_Barra", 3, core.EdgeNormal},
	{"L1_Entrada", "L1_Ascensor", 1, core.EdgeElevator},
	{"L1_TragamonedasA", "L1_Escaleras", 1, core.EdgeStairs},

	{"L2_MesasVIP", "L2_BarraVIP", 3, core.EdgeNormal},
	{"L2_BarraVIP", "L2_BlackjackA", 2, core.EdgeNormal},
	{"L2_BlackjackA", "L2_BlackjackB", 2, core.EdgeNormal},
	{"L2_BlackjackB", "L2_SalaPoker", 3, core.EdgeNormal},
	{"L2_SalaPoker", "L2_Pasillo", 3, core.EdgeNormal},
	{"L2_Ascensor", "L2_MesasVIP", 2, core.EdgeElevator},
	{"L2_Escaleras", "L2_BlackjackA", 2, core.EdgeStairs},

	{"L3_Auditorio", "L3_Caja", 3, core.EdgeNormal},
	{"L3_Caja", "L3_RestauranteA", 4, core.EdgeNormal},
	{"L3_RestauranteA", "L3_RestauranteB", 2, core.EdgeNormal},
	{"L3_RestauranteB", "L3_Terraza", 5, core.EdgeNormal},
	{"L3_Ascensor", "L3_Auditorio", 2, core.EdgeElevator},
	{"L3_Escaleras", "L3_Caja", 2, core.EdgeStairs},

	{"L4_Suites", "L4_Pasarela", 3, core.EdgeNormal},
	{"L4_Pasarela", "L4_Penthouse", 4, core.EdgeNormal},
	{"L4_Ascensor", "L4_Suites", 1, core.EdgeElevator},
	{"L4_Escaleras", "L4_Suites", 2, core.EdgeStairs},
}

// Casino returns a Constructor that adds the built-in casino venue:
// 28 rooms on four floors, 24 corridors and the two vertical spines.
//
// Errors:
//   - ErrConstructFailed (wrapping the core error) if a room already exists.
//
// Complexity: O(V + E).
func Casino() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		const method = "Casino"
		for _, r := range casinoRooms {
			if err := g.AddVertex(r.id, core.Position{X: r.x, Y: r.y, Floor: r.fl}); err != nil {
				return wrapf(method, "AddVertex("+r.id+")", err)
			}
		}
		for _, l := range casinoLinks {
			if err := g.AddEdge(l.a, l.b, l.w, l.t); err != nil {
				return wrapf(method, fmt.Sprintf("AddEdge(%s,%s)", l.a, l.b), err)
			}
		}

		return linkSpines(g, cfg, method, CasinoFloors, func(floor int, kind core.EdgeType) string {
			if kind == core.EdgeElevator {
				return fmt.Sprintf("L%d_Ascensor", floor)
			}
			return fmt.Sprintf("L%d_Escaleras", floor)
		})
	}
}

// linkSpines joins the elevator and stair landings of consecutive floors.
func linkSpines(g *core.Graph, cfg builderConfig, method string, floors int, landing func(floor int, kind core.EdgeType) string) error {
	for f := 1; f < floors; f++ {
		lo, hi := landing(f, core.EdgeElevator), landing(f+1, core.EdgeElevator)
		if err := g.AddEdge(lo, hi, cfg.elevatorWeight, core.EdgeElevator); err != nil {
			return wrapf(method, fmt.Sprintf("elevator(%d)", f), err)
		}
	}
	for f := 1; f < floors; f++ {
		lo, hi := landing(f, core.EdgeStairs), landing(f+1, core.EdgeStairs)
		if err := g.AddEdge(lo, hi, cfg.stairsWeight, core.EdgeStairs); err != nil {
			return wrapf(method, fmt.Sprintf("stairs(%d)", f), err)
		}
	}

	return nil
}
