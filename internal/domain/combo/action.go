package combo

import "time"

// Action is one slot of a combo chain.
// Count and Executed are only touched while the owning group holds its lock.
type Action struct {
	ID           ActionID
	Kind         Kind
	MinimumCount int
	MaximumCount int

	Count    int
	Executed bool
	LastTime time.Time
}

// NewAction creates a single-use slot
func NewAction(id ActionID) *Action {
	return &Action{
		ID:           id,
		Kind:         KindSingle,
		MinimumCount: 1,
		MaximumCount: 1,
	}
}

// NewMultiAction creates a slot that may be repeated between min and max times
func NewMultiAction(id ActionID, minimum, maximum int) *Action {
	return &Action{
		ID:           id,
		Kind:         KindMulti,
		MinimumCount: minimum,
		MaximumCount: maximum,
	}
}

// WithKind overrides the capability set (builder pattern)
func (a *Action) WithKind(kind Kind) *Action {
	a.Kind = kind
	return a
}

// Restore clears the progress made on this slot
func (a *Action) Restore() {
	a.Count = 0
	a.Executed = false
}

// Record marks one confirmed use of this slot
func (a *Action) Record() {
	a.Executed = true
	a.Count++
}
