package rainmaker

import (
	"math/rand"

	"github.com/vovakirdan/rainmaker/internal/config"
	"github.com/vovakirdan/rainmaker/internal/core"
)

// Blimps owns the live blimps.
type Blimps struct {
	items   []*Blimp
	elapsed float64
	nextID  int

	cfg             config.BlimpsConfig
	world           core.Bounds
	speedMultiplier float64
	rng             *rand.Rand
}

// NewBlimps creates an empty fleet.
func NewBlimps(rng *rand.Rand, cfg config.BlimpsConfig, world core.Bounds, speedMultiplier float64) *Blimps {
	return &Blimps{cfg: cfg, world: world, speedMultiplier: speedMultiplier, rng: rng}
}

// Update moves every blimp, removes the dead ones, and attempts a coin-flip
// spawn each spawn period while under the maximum.
func (bs *Blimps) Update(dt float64) []Event {
	var events []Event

	live := bs.items[:0]
	for _, b := range bs.items {
		b.update(dt, bs.speedMultiplier, bs.world)
		if b.IsDead() {
			events = append(events, Event{Kind: EventBlimpDestroyed, ID: b.id})
			continue
		}
		live = append(live, b)
	}
	for i := len(live); i < len(bs.items); i++ {
		bs.items[i] = nil
	}
	bs.items = live

	for len(bs.items) < bs.cfg.Min {
		events = append(events, bs.spawn())
	}

	if len(bs.items) < bs.cfg.Max {
		bs.elapsed += dt
		if bs.elapsed > bs.cfg.SpawnPeriod {
			bs.elapsed = 0
			if flipCoin(bs.rng) {
				events = append(events, bs.spawn())
			}
		}
	}
	return events
}

func (bs *Blimps) spawn() Event {
	bs.nextID++
	b := randomBlimp(bs.rng, bs.nextID, bs.cfg, bs.world)
	bs.items = append(bs.items, b)
	return Event{Kind: EventBlimpSpawned, ID: b.id}
}

// Items returns the live blimps. The slice must not be modified.
func (bs *Blimps) Items() []*Blimp { return bs.items }

// Len returns the number of live blimps.
func (bs *Blimps) Len() int { return len(bs.items) }
