package goldminer

// HookState is the hook's motion mode.
type HookState int

const (
	Idle HookState = iota
	Extending
	Retracting
)

func (s HookState) String() string {
	switch s {
	case Extending:
		return "extending"
	case Retracting:
		return "retracting"
	default:
		return "idle"
	}
}

// Hook is the grappling hook. X is the pivot column; the drawn column
// follows the swing angle.
type Hook struct {
	X, Y  float64
	Angle float64 // radians in [-π, π]
	State HookState
}
