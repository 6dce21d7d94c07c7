package rainmaker

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/rainmaker/internal/config"
	"github.com/vovakirdan/rainmaker/internal/core"
	"github.com/vovakirdan/rainmaker/internal/shape"
)

// ErrPondPlacement is returned when ponds cannot be placed within the
// configured number of attempts.
var ErrPondPlacement = errors.New("pond placement exhausted")

// Ponds is the fixed set of ponds for a round.
type Ponds struct {
	items []*Pond
}

// PlacePonds places cfg.Count ponds by rejection sampling. A candidate is
// rejected when its box overlaps an obstacle, its outline overlaps a placed
// pond, or its center is closer than the minimum separation to one.
func PlacePonds(rng *rand.Rand, cfg config.PondsConfig, world core.Bounds, obstacles []core.Bounds) (*Ponds, error) {
	ps := &Ponds{items: make([]*Pond, 0, cfg.Count)}

	for attempt := 0; len(ps.items) < cfg.Count; attempt++ {
		if attempt >= cfg.MaxAttempts {
			return nil, fmt.Errorf("rainmaker: placed %d of %d ponds after %d attempts: %w",
				len(ps.items), cfg.Count, attempt, ErrPondPlacement)
		}

		water := float64(cfg.WaterMin + rng.Intn(cfg.WaterMax-cfg.WaterMin+1))
		candidate := newPond(len(ps.items)+1, core.NewVector(0, 0), water, cfg.AreaPerUnit)
		r := candidate.Radius()
		candidate.position = core.NewVector(
			uniform(rng, world.MinX+r, world.MaxX-r),
			uniform(rng, world.MinY+r, world.MaxY-r),
		)

		if ps.rejects(candidate, obstacles, cfg.MinSeparation) {
			continue
		}
		ps.items = append(ps.items, candidate)
	}
	return ps, nil
}

func (ps *Ponds) rejects(candidate *Pond, obstacles []core.Bounds, minSeparation float64) bool {
	cb := candidate.Bounds()
	for _, o := range obstacles {
		if cb.Intersects(o) {
			return true
		}
	}
	for _, p := range ps.items {
		if shape.Intersects(p.Outlines(), candidate.Outlines()) {
			return true
		}
		if core.CenterDistance(p.Bounds(), cb) < minSeparation {
			return true
		}
	}
	return false
}

// AverageWaterLevel returns the mean water level across all ponds.
func (ps *Ponds) AverageWaterLevel() float64 {
	if len(ps.items) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range ps.items {
		total += p.WaterLevel()
	}
	return total / float64(len(ps.items))
}

// Items returns the ponds. The slice must not be modified.
func (ps *Ponds) Items() []*Pond { return ps.items }
