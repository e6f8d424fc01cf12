package game

// State is the session lifecycle phase
type State uint8

const (
	StateInitializing State = iota
	StateRunning
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "invalid"
	}
}
