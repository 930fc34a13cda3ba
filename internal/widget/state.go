package widget

// State is where a widget is in its poll cycle. Between cycles a widget rests
// in the outcome of the last one (updated or failed); StateIdle only
// precedes the first cycle.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateUpdated
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateUpdated:
		return "updated"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
