package combo

//go:generate mockgen -destination=mock/mock_collaborators.go -package=mockcombo -source=collaborators.go

import "time"

// Oracle answers questions about live action state. It belongs to the game
// client integration; lookups are expected to always succeed.
type Oracle interface {
	// AdjustedID returns the action the client would actually fire for id
	AdjustedID(id ActionID) ActionID

	// Status returns the current usability of id
	Status(id ActionID) Status

	// RecastGroup returns the cooldown group id shares its timer with
	RecastGroup(id ActionID) int

	// RecastRemaining returns the cooldown time left on id
	RecastRemaining(id ActionID) time.Duration

	// Equals reports whether two ids resolve to the same base action
	Equals(a, b ActionID) bool

	// BaseID returns the base action of id
	BaseID(id ActionID) ActionID
}

// Player exposes the local character
type Player interface {
	// Ready is false while no character is loaded
	Ready() bool
	IsCasting() bool
	TotalCastTime() time.Duration
	CurrentCastTime() time.Duration
}

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// TransitionListener is told about every committed pointer change.
// It is called while the group lock is held and must not call back into the group.
type TransitionListener interface {
	ComboAdvanced(t Transition)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
