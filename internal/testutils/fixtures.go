package testutils

import (
	"sync"
	"time"

	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
	"github.com/KirkDiggler/combo-tracker/internal/oracle"
)

// Action ids used across fixtures
const (
	ActionStone     combo.ActionID = 119
	ActionAero      combo.ActionID = 121
	ActionHoly      combo.ActionID = 139
	ActionAssize    combo.ActionID = 3571
	ActionPlenary   combo.ActionID = 7433
	ActionLucid     combo.ActionID = 7562
	ActionAeroII    combo.ActionID = 132
	ActionGlare     combo.ActionID = 16533
	ActionPresence  combo.ActionID = 136
	ActionUnlearned combo.ActionID = 25862
)

// CreateTestOracle returns a static oracle with a small named action table
func CreateTestOracle() *oracle.Static {
	o := oracle.NewStatic()
	o.Set(ActionStone, oracle.Entry{Name: "Stone", Adjusted: ActionGlare, RecastGroup: 58})
	o.Set(ActionGlare, oracle.Entry{Name: "Glare", Base: ActionStone, RecastGroup: 58})
	o.Set(ActionAero, oracle.Entry{Name: "Aero", RecastGroup: 58})
	o.Set(ActionAeroII, oracle.Entry{Name: "Aero II", RecastGroup: 58})
	o.Set(ActionHoly, oracle.Entry{Name: "Holy", RecastGroup: 58})
	o.Set(ActionAssize, oracle.Entry{Name: "Assize"})
	o.Set(ActionPlenary, oracle.Entry{Name: "Plenary Indulgence"})
	o.Set(ActionLucid, oracle.Entry{Name: "Lucid Dreaming"})
	o.Set(ActionPresence, oracle.Entry{Name: "Presence of Mind"})
	o.Set(ActionUnlearned, oracle.Entry{Name: "Afflatus Misery", Status: combo.StatusNotLearned})
	return o
}

// CreateTestSettings returns settings with every delay disabled
func CreateTestSettings() combo.Settings {
	return combo.Settings{GlobalCooldown: 2500 * time.Millisecond}
}

// CreateTestChain builds a plain single-use chain
func CreateTestChain(ids ...combo.ActionID) []*combo.Action {
	chain := make([]*combo.Action, len(ids))
	for i, id := range ids {
		chain[i] = combo.NewAction(id)
	}
	return chain
}

// CreateTestTrigger builds a successful trigger
func CreateTestTrigger(id combo.ActionID, status combo.Status) combo.Trigger {
	return combo.Trigger{ActionID: id, Status: status, Succeeded: true}
}

// FakeClock is a settable clock shared by groups and repositories
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock starts a clock at the given instant
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the current fake instant
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
