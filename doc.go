// SPDX-License-Identifier: MIT

// Package wayfind is an indoor route planner for multi-floor venues.
//
// A venue is an undirected weighted graph of rooms and landings. Every edge
// is a corridor, a stair flight or an elevator run, and its effective weight
// follows a congestion model that can be changed while the venue is live.
//
// Layout:
//
//	core/      graph of positioned vertices, typed edges and the congestion model
//	pathfind/  Dijkstra with soft avoidance, k-shortest loopless routes, reachability
//	builder/   the built-in casino venue and generated towers
//	scenario/  JSON scenario documents (save, load, validate)
//	internal/  configuration, logging, the session facade, HTTP API and CLI
//	cmd/       the wayfind binary
//
// Typical use from Go:
//
//	g, _ := builder.NewCasino()
//	_, _ = g.SetGlobalMultiplier(1.5)
//	cost, path := pathfind.ShortestPath(g, "L1_Entrada", "L4_Penthouse")
//
// The command line exposes the same operations (wayfind route, paths, reach,
// floors, export) and an HTTP API (wayfind serve).
package wayfind
