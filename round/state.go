package round

// State is the round lifecycle phase
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// validTransitions is the lifecycle graph, Start from Paused is a full reset
var validTransitions = map[State][]State{
	StateIdle:    {StateRunning},
	StateRunning: {StatePaused, StateEnded},
	StatePaused:  {StateRunning},
	StateEnded:   {StateRunning},
}

// CanTransition checks whether from -> to is a lifecycle edge
func CanTransition(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
