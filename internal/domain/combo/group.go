package combo

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	dnderr "github.com/KirkDiggler/combo-tracker/internal/errors"
)

// Group owns one combo chain and decides when its pointer moves.
//
// Transitions are serialized by two binary permits. primary is held for the
// whole evaluate-and-commit sequence, so at most one transition per group is
// ever in flight. priority is taken second: confirmed (Ready) events wait for
// it while speculative events only try it and give up when contended.
//
// The pointer is atomic so Current can be read from the render loop. Reset and
// the NotLearned fast path write it without taking the permits, which means a
// reset can be overwritten by a commit that is already waiting out its delay.
type Group struct {
	id       GroupID
	chain    []*Action
	policy   Policy
	oracle   Oracle
	player   Player
	clock    Clock
	settings Settings
	listener TransitionListener

	current atomic.Int64

	// lastTransition is guarded by primary
	lastTransition time.Time

	primary  *semaphore.Weighted
	priority *semaphore.Weighted
}

// GroupConfig holds what a group needs to be built
type GroupConfig struct {
	ID       GroupID
	Actions  []*Action
	Policy   Policy
	Oracle   Oracle
	Player   Player
	Clock    Clock
	Settings Settings
	Listener TransitionListener
}

// NewGroup builds a group from its chain definition
func NewGroup(cfg *GroupConfig) (*Group, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("group config cannot be nil")
	}
	if len(cfg.Actions) == 0 {
		return nil, dnderr.InvalidArgumentf("group %d has no actions", cfg.ID)
	}
	if cfg.Oracle == nil {
		return nil, dnderr.InvalidArgument("oracle is required")
	}
	if cfg.Player == nil {
		return nil, dnderr.InvalidArgument("player is required")
	}
	for i, action := range cfg.Actions {
		if action == nil {
			return nil, dnderr.InvalidArgumentf("group %d slot %d is nil", cfg.ID, i)
		}
	}

	clock := cfg.Clock
	if clock == nil {
		clock = systemClock{}
	}

	chain := make([]*Action, len(cfg.Actions))
	copy(chain, cfg.Actions)

	return &Group{
		id:             cfg.ID,
		chain:          chain,
		policy:         cfg.Policy,
		oracle:         cfg.Oracle,
		player:         cfg.Player,
		clock:          clock,
		settings:       cfg.Settings,
		listener:       cfg.Listener,
		lastTransition: clock.Now(),
		primary:        semaphore.NewWeighted(1),
		priority:       semaphore.NewWeighted(1),
	}, nil
}

// ID returns the group id
func (g *Group) ID() GroupID { return g.id }

// Policy returns the advancement rule of the group
func (g *Group) Policy() Policy { return g.policy }

// Len returns the chain length
func (g *Group) Len() int { return len(g.chain) }

// Index returns the current pointer
func (g *Group) Index() int { return int(g.current.Load()) }

// Current returns the action that should be offered next
func (g *Group) Current() ActionID {
	return g.chain[g.Index()].ID
}

// Contains reports whether any slot is the same base action as id
func (g *Group) Contains(id ActionID) bool {
	for _, action := range g.chain {
		if g.oracle.Equals(action.ID, id) {
			return true
		}
	}
	return false
}

// Reset moves the pointer back to the first slot. It does not wait for an
// in-flight transition.
func (g *Group) Reset() {
	g.current.Store(0)
}

// SetIndex moves the pointer to index, used when resuming saved progress
func (g *Group) SetIndex(index int) error {
	if index < 0 || index >= len(g.chain) {
		return dnderr.InvalidArgumentf("index %d out of range for group %d with %d slots", index, g.id, len(g.chain))
	}
	g.current.Store(int64(index))
	return nil
}

// slotState is what the oracle says about the slot an event is evaluated against
type slotState struct {
	adjusted    ActionID
	recastGroup int
	remaining   time.Duration
}

func (g *Group) inspect(action *Action) slotState {
	adjusted := g.oracle.AdjustedID(action.ID)
	return slotState{
		adjusted:    adjusted,
		recastGroup: g.oracle.RecastGroup(adjusted),
		remaining:   g.oracle.RecastRemaining(adjusted),
	}
}

// Update feeds one action event to the group. It returns false when the
// event was not accepted: the action is not part of this chain, the group is
// busy, or the event is a stale duplicate. It blocks for the commit delay
// when the event moves the pointer.
func (g *Group) Update(ctx context.Context, t Trigger) bool {
	if !g.player.Ready() || t.Status == StatusLocking {
		return false
	}

	at := t.At
	if at.IsZero() {
		at = g.clock.Now()
	}

	found := g.find(t.ActionID, g.Index())
	index := found
	if found == -1 {
		index = g.Index()
	}

	slot := g.chain[index]
	p := g.inspect(slot)
	status := t.Status
	if found == -1 {
		status = g.oracle.Status(p.adjusted)
	}

	// An action the player does not have must never hold the chain up.
	if status == StatusNotLearned {
		g.current.Store(int64((index + 1) % len(g.chain)))
		return true
	}

	if !status.actionable() {
		return true
	}

	if !g.admit(ctx, found, status, at) {
		return false
	}
	defer g.release()

	if found != -1 {
		slot.LastTime = at
	}

	next, delay := g.next(t, found, index, slot, status, p)
	if found != -1 && next != found {
		g.commit(t, next, delay)
	}

	return true
}

// find looks for id from the current slot to the end of the chain, then from
// the start of the chain
func (g *Group) find(id ActionID, from int) int {
	for i := from; i < len(g.chain); i++ {
		if g.oracle.Equals(g.chain[i].ID, id) {
			return i
		}
	}
	for i := range g.chain {
		if g.oracle.Equals(g.chain[i].ID, id) {
			return i
		}
	}
	return -1
}

// admit takes both permits or neither
func (g *Group) admit(ctx context.Context, found int, status Status, at time.Time) bool {
	if found == -1 {
		// Out of chain events may only nudge an idle Ochain group.
		if g.policy != PolicyOchain {
			return false
		}
		if !g.primary.TryAcquire(1) {
			return false
		}
		if !g.priority.TryAcquire(1) {
			g.primary.Release(1)
			return false
		}
		return true
	}

	if err := g.primary.Acquire(ctx, 1); err != nil {
		return false
	}

	if at.Before(g.lastTransition) {
		switch status {
		case StatusPending:
			g.primary.Release(1)
			return false
		case StatusReady:
			// confirmed uses are never dropped
		default:
			if !g.priority.TryAcquire(1) {
				g.primary.Release(1)
				return false
			}
			return true
		}
	}

	if err := g.priority.Acquire(ctx, 1); err != nil {
		g.primary.Release(1)
		return false
	}
	return true
}

func (g *Group) release() {
	g.priority.Release(1)
	g.primary.Release(1)
}

// next computes where the pointer should go and how long the commit waits
func (g *Group) next(t Trigger, found, index int, slot *Action, status Status, p slotState) (int, time.Duration) {
	n := len(g.chain)
	delay := g.settings.AnimationDelay
	overGCD := p.remaining > g.settings.GlobalCooldown

	switch g.policy {
	case PolicyManual:
		return (index + 1) % n, delay

	case PolicyStrict, PolicyStrictBlocked:
		current := g.Index()
		if !g.oracle.Equals(g.chain[current].ID, t.ActionID) {
			return index, delay
		}
		advance := status == StatusReady || status == StatusNotLearned
		if g.policy == PolicyStrict {
			advance = advance || status == StatusNotSatisfied || overGCD
		}
		if advance {
			return (current + 1) % n, delay
		}
		return index, delay

	case PolicyLinear:
		if status == StatusReady || status == StatusNotSatisfied || status == StatusNotLearned || overGCD {
			return (index + 1) % n, delay
		}
		return index, delay

	case PolicyLinearBlocked:
		if status == StatusReady || status == StatusNotLearned {
			return (index + 1) % n, delay
		}
		return index, delay

	case PolicyOchain:
		if found == -1 {
			return g.nextOutOfChain(index, slot, status, overGCD), 0
		}
		return g.nextInChain(t, index, slot, status, p, delay)
	}

	// Async and unknown policies accept the event and stay put.
	return index, delay
}

func (g *Group) nextOutOfChain(index int, slot *Action, status Status, overGCD bool) int {
	if slot.Kind.Has(KindAbility) {
		return index
	}
	pendingOver := status == StatusPending && overGCD

	switch {
	case slot.Kind.confirmedSkip():
		if status == StatusNotSatisfied && slot.Executed || pendingOver {
			slot.Restore()
			return index + 1
		}
	case slot.Kind.pureSkip():
		if status == StatusNotSatisfied || pendingOver {
			return index + 1
		}
	}
	return index
}

func (g *Group) nextInChain(t Trigger, index int, slot *Action, status Status, p slotState, delay time.Duration) (int, time.Duration) {
	if g.settings.Verbose {
		log.Printf("ComboGroup %d: ochain index=%d current=%d action=%d kind=%08b executed=%t status=%s recast=%d remain=%s",
			g.id, index, g.Index(), slot.ID, slot.Kind, slot.Executed, status, p.recastGroup, p.remaining)
	}

	if slot.Kind.Has(KindAbility) {
		return index, delay
	}

	if slot.Kind.Has(KindBlocking) {
		if status == StatusReady {
			if t.Succeeded {
				return index + 1, delay
			}
			return index, delay
		}
		slot.Count++
		if slot.Count >= BlockingRetryLimit {
			log.Printf("ComboGroup %d: forcing past blocking action %d after %d attempts", g.id, slot.ID, slot.Count)
			slot.Restore()
			return index + 1, delay
		}
		return index, delay
	}

	switch status {
	case StatusPending:
		if p.remaining > g.settings.GlobalCooldown {
			return index + 1, 0
		}

	case StatusReady:
		if t.Succeeded {
			slot.Record()
		}
		if slot.Count >= slot.MaximumCount {
			slot.Restore()
			return index + 1, delay
		}
		if slot.Count >= slot.MinimumCount && g.followerReady(index, p.recastGroup) {
			slot.Restore()
			return index + 1, delay
		}

	case StatusNotSatisfied:
		if slot.Kind.Has(KindSkipable) {
			slot.Restore()
			return index + 1, 0
		}
		// The first miss only arms the slot so a single stray event cannot
		// skip it.
		if slot.Executed {
			slot.Restore()
			return index + 1, 0
		}
		slot.Executed = true
	}

	return index, delay
}

// followerReady decides whether a repeatable slot that reached its minimum
// should hand over to the next slot
func (g *Group) followerReady(index, recastGroup int) bool {
	follower := g.chain[(index+1)%len(g.chain)]
	adjusted := g.oracle.AdjustedID(follower.ID)
	status := g.oracle.Status(adjusted)
	if status == StatusReady || g.oracle.RecastGroup(adjusted) == recastGroup {
		return true
	}
	return status == StatusPending && g.oracle.RecastRemaining(adjusted) <= g.settings.GlobalCooldown
}

// commit waits out the animation, moves the pointer and holds the permits
// until the client had time to refresh its icons
func (g *Group) commit(t Trigger, next int, delay time.Duration) {
	if delay > 0 && g.player.IsCasting() {
		castLeft := g.player.TotalCastTime() - g.player.CurrentCastTime() + g.settings.CastBuffer
		if castLeft > delay {
			delay = castLeft
		}
	}

	pause(delay)

	to := next % len(g.chain)
	from := int(g.current.Swap(int64(to)))

	pause(g.settings.IconRefreshDelay)

	g.lastTransition = g.clock.Now()

	log.Printf("ComboGroup %d: advanced %d -> %d on action %d (%s, delay %s)", g.id, from, to, t.ActionID, t.Status, delay)

	if g.listener != nil {
		g.listener.ComboAdvanced(Transition{
			TriggerID: t.ID,
			GroupID:   g.id,
			ActionID:  t.ActionID,
			From:      from,
			To:        to,
			At:        g.lastTransition,
		})
	}
}

func pause(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}
