// SPDX-License-Identifier: MIT

package facility

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/wayfind/core"
)

// SetMultiplier sets the global congestion multiplier and returns the stored
// (clamped) value. A multiplier that would overflow an edge weight is
// rejected with core.ErrBadFactor and the previous value is returned.
func (s *Session) SetMultiplier(m float64) (float64, error) {
	var stored float64
	err := s.mutate("multiplier set", []zap.Field{zap.Float64("requested", m)}, func(g *core.Graph) error {
		var err error
		stored, err = g.SetGlobalMultiplier(m)
		return err
	})
	return stored, err
}

// SetZoneCongestion sets the congestion factor of a vertex.
func (s *Session) SetZoneCongestion(id string, factor float64) error {
	return s.mutate("zone congestion set", []zap.Field{zap.String("id", id), zap.Float64("factor", factor)},
		func(g *core.Graph) error { return g.SetZoneCongestion(id, factor) })
}

// SetEdgeCongestion sets the congestion factor of an edge.
func (s *Session) SetEdgeCongestion(a, b string, factor float64) error {
	return s.mutate("edge congestion set", edgeFields(a, b, zap.Float64("factor", factor)),
		func(g *core.Graph) error { return g.SetEdgeCongestion(a, b, factor) })
}

// Randomize applies random congestion with the configured range.
func (s *Session) Randomize() error {
	return s.RandomizeRange(s.congestion.RandomMin, s.congestion.RandomMax)
}

// RandomizeRange applies random congestion with extras drawn from [lo, hi].
func (s *Session) RandomizeRange(lo, hi int) error {
	return s.mutate("congestion randomized", []zap.Field{zap.Int("min", lo), zap.Int("max", hi)},
		func(g *core.Graph) error { return g.RandomizeCongestion(lo, hi) })
}

// Restore resets every effective weight to base × multiplier.
func (s *Session) Restore() {
	_ = s.mutate("weights restored", nil, func(g *core.Graph) error {
		g.RestoreOriginal()
		return nil
	})
}

// ClearCongestion drops zone and edge factors.
func (s *Session) ClearCongestion() {
	_ = s.mutate("congestion cleared", nil, func(g *core.Graph) error {
		g.ClearCongestion()
		return nil
	})
}

// Congestion returns a copy of the congestion state.
func (s *Session) Congestion() core.CongestionSnapshot {
	var out core.CongestionSnapshot
	s.read(func(g *core.Graph) { out = g.Congestion() })
	return out
}
