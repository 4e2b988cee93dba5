package events

import "sync"

var (
	registryOnce sync.Once
	nameToType   map[string]EventType
	typeToName   map[EventType]string
)

// initRegistry populates the name tables for all round events
func initRegistry() {
	nameToType = make(map[string]EventType)
	typeToName = make(map[EventType]string)

	register := func(name string, et EventType) {
		nameToType[name] = et
		typeToName[et] = name
	}
	register("RoundStarted", EventRoundStarted)
	register("RoundPaused", EventRoundPaused)
	register("RoundResumed", EventRoundResumed)
	register("TimeRemainingChanged", EventTimeRemainingChanged)
	register("EntitySpawned", EventEntitySpawned)
	register("EntityDespawned", EventEntityDespawned)
	register("HitResolved", EventHitResolved)
	register("RoundEnded", EventRoundEnded)
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	registryOnce.Do(initRegistry)
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	registryOnce.Do(initRegistry)
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

// AllTypes returns every round event type in declaration order
func AllTypes() []EventType {
	return []EventType{
		EventRoundStarted,
		EventRoundPaused,
		EventRoundResumed,
		EventTimeRemainingChanged,
		EventEntitySpawned,
		EventEntityDespawned,
		EventHitResolved,
		EventRoundEnded,
	}
}
