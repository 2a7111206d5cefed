package bench

// State is a step of a benchmark run.
type State int

const (
	Configuring State = iota
	Allocating
	Generating
	WarmingUp
	Measuring
	Verifying
	Reporting
	Done

	// AllocationFailed is terminal and reachable only from Allocating.
	AllocationFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Configuring:
		return "configuring"
	case Allocating:
		return "allocating"
	case Generating:
		return "generating"
	case WarmingUp:
		return "warming-up"
	case Measuring:
		return "measuring"
	case Verifying:
		return "verifying"
	case Reporting:
		return "reporting"
	case Done:
		return "done"
	case AllocationFailed:
		return "allocation-failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no state follows s.
func (s State) Terminal() bool {
	return s == Done || s == AllocationFailed
}
