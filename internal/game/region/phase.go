package region

import "fmt"

// Phase is the lifecycle position of a region.
type Phase int

const (
	// PhaseForming - membership just changed; the hut invariant is pending
	PhaseForming Phase = iota

	// PhaseStable - the hut invariant holds
	PhaseStable

	// PhaseDestroyed - the region lost its last tile; terminal
	PhaseDestroyed
)

// String returns the string representation of a Phase
func (p Phase) String() string {
	switch p {
	case PhaseForming:
		return "Forming"
	case PhaseStable:
		return "Stable"
	case PhaseDestroyed:
		return "Destroyed"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if no transition leaves this phase
func (p Phase) IsTerminal() bool {
	return p == PhaseDestroyed
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p Phase) AllowedTransitions() []Phase {
	switch p {
	case PhaseForming:
		return []Phase{PhaseStable, PhaseDestroyed}
	case PhaseStable:
		return []Phase{PhaseForming, PhaseDestroyed}
	default:
		return []Phase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase
// is allowed. Staying in a non-terminal phase is always allowed.
func (p Phase) CanTransitionTo(target Phase) bool {
	if p == target {
		return !p.IsTerminal()
	}
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
