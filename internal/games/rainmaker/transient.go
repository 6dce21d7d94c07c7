package rainmaker

import "github.com/vovakirdan/rainmaker/internal/core"

// Lifecycle is the on-screen lifetime of a transient entity.
type Lifecycle int

const (
	LifecycleCreated Lifecycle = iota
	LifecycleInView
	LifecycleDead
)

func (l Lifecycle) String() string {
	switch l {
	case LifecycleCreated:
		return "Created"
	case LifecycleInView:
		return "InView"
	case LifecycleDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Transient tracks position and lifecycle for entities that drift across
// the world: clouds and blimps. Entities become InView once fully inside
// the world and Dead once fully outside while still moving away.
type Transient struct {
	position  core.Vector
	velocity  core.Vector
	lifecycle Lifecycle
	width     float64
	height    float64
}

func newTransient(pos core.Vector, width, height float64) Transient {
	return Transient{position: pos, width: width, height: height}
}

// advance moves by velocity (units per second) for dt seconds, then updates
// the lifecycle against the world box. Dead entities no longer move.
func (t *Transient) advance(dt float64, velocity core.Vector, world core.Bounds) {
	if t.lifecycle == LifecycleDead {
		return
	}

	t.velocity = velocity.Multiply(dt)
	t.position = t.position.Add(t.velocity)

	if t.lifecycle == LifecycleCreated && t.withinBounds(world) {
		t.lifecycle = LifecycleInView
	}
	if t.leaving(world) {
		t.lifecycle = LifecycleDead
	}
}

func (t *Transient) withinBounds(world core.Bounds) bool {
	return world.Contains(core.BoundsAround(t.position, t.width, t.height))
}

// leaving reports whether the entity is past an edge and moving further out.
func (t *Transient) leaving(world core.Bounds) bool {
	x, y := t.position.X(), t.position.Y()
	vx, vy := t.velocity.X(), t.velocity.Y()
	return x < world.MinX-t.width/2 && vx < 0 ||
		x > world.MaxX+t.width/2 && vx > 0 ||
		y < world.MinY-t.height/2 && vy < 0 ||
		y > world.MaxY+t.height/2 && vy > 0
}

// Position returns the entity center.
func (t *Transient) Position() core.Vector { return t.position }

// Lifecycle returns the current lifecycle state.
func (t *Transient) Lifecycle() Lifecycle { return t.lifecycle }

// IsDead reports whether the entity has left the world for good.
func (t *Transient) IsDead() bool { return t.lifecycle == LifecycleDead }
