package rainmaker

import "fmt"

// EventKind identifies a domain event produced by a simulation tick.
type EventKind int

const (
	EventCrash EventKind = iota
	EventLanded
	EventFlyingStarted
	EventCloudSpawned
	EventCloudDestroyed
	EventBlimpSpawned
	EventBlimpDestroyed
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventCrash:
		return "Crash"
	case EventLanded:
		return "Landed"
	case EventFlyingStarted:
		return "FlyingStarted"
	case EventCloudSpawned:
		return "CloudSpawned"
	case EventCloudDestroyed:
		return "CloudDestroyed"
	case EventBlimpSpawned:
		return "BlimpSpawned"
	case EventBlimpDestroyed:
		return "BlimpDestroyed"
	default:
		return "Unknown"
	}
}

// Event is something the presentation layer may react to.
// ID names the cloud or blimp involved; it is zero for helicopter events.
type Event struct {
	Kind EventKind
	ID   int
}

func (e Event) String() string {
	if e.ID == 0 {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", e.Kind, e.ID)
}

// countEvents returns how many events of the given kind are in evs.
func countEvents(evs []Event, kind EventKind) int {
	n := 0
	for _, e := range evs {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
