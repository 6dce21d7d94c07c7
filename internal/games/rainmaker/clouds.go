package rainmaker

import (
	"math/rand"

	"github.com/vovakirdan/rainmaker/internal/config"
	"github.com/vovakirdan/rainmaker/internal/core"
)

// Clouds owns the live clouds and keeps their count between the configured
// minimum and maximum.
type Clouds struct {
	items []*Cloud

	spawnElapsed float64
	rainElapsed  float64
	nextID       int

	cfg   config.CloudsConfig
	world core.Bounds
	rng   *rand.Rand
}

// NewClouds creates an empty collection. The first update fills the sky.
func NewClouds(rng *rand.Rand, cfg config.CloudsConfig, world core.Bounds) *Clouds {
	return &Clouds{cfg: cfg, world: world, rng: rng}
}

// Update drifts every cloud, removes the dead ones, applies rain decay, and
// spawns replacements.
func (c *Clouds) Update(dt float64, wind *Wind) []Event {
	var events []Event

	if len(c.items) == 0 {
		for i := 0; i < c.cfg.Max; i++ {
			events = append(events, c.spawn(wind, true))
		}
		return events
	}

	died := 0
	for _, cloud := range c.items {
		cloud.update(dt, wind, c.world)
		if cloud.IsDead() {
			died++
		}
	}
	if died > 0 {
		live := c.items[:0]
		for _, cloud := range c.items {
			if cloud.IsDead() {
				events = append(events, Event{Kind: EventCloudDestroyed, ID: cloud.id})
				continue
			}
			live = append(live, cloud)
		}
		// Drop references held past the new length.
		for i := len(live); i < len(c.items); i++ {
			c.items[i] = nil
		}
		c.items = live
	}

	c.rainElapsed += dt
	for c.rainElapsed >= c.cfg.RainPeriod {
		c.rainElapsed -= c.cfg.RainPeriod
		for _, cloud := range c.items {
			cloud.Rain()
		}
	}

	for len(c.items) < c.cfg.Min {
		events = append(events, c.spawn(wind, false))
	}
	if died > 0 && len(c.items) < c.cfg.Max && flipCoin(c.rng) {
		events = append(events, c.spawn(wind, false))
	}

	c.spawnElapsed += dt
	if c.spawnElapsed >= c.cfg.SpawnPeriod {
		c.spawnElapsed = 0
		if len(c.items) < c.cfg.Max && flipCoin(c.rng) {
			events = append(events, c.spawn(wind, false))
		}
	}
	return events
}

func (c *Clouds) spawn(wind *Wind, onScreen bool) Event {
	c.nextID++
	cloud := randomCloud(c.rng, c.nextID, c.cfg, c.world, wind, onScreen)
	c.items = append(c.items, cloud)
	return Event{Kind: EventCloudSpawned, ID: cloud.id}
}

// Items returns the live clouds. The slice must not be modified.
func (c *Clouds) Items() []*Cloud { return c.items }

// Len returns the number of live clouds.
func (c *Clouds) Len() int { return len(c.items) }

// Raining returns the number of clouds currently raining.
func (c *Clouds) Raining() int {
	n := 0
	for _, cloud := range c.items {
		if cloud.IsRaining() {
			n++
		}
	}
	return n
}
