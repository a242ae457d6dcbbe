// Package oracle provides an in-memory action oracle and player for driving
// combo groups outside the game client
package oracle

import (
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
)

// Entry is the known state of one action
type Entry struct {
	Name   string
	Status combo.Status
	// RecastGroup defaults to the action id, so unknown actions never share
	// a cooldown with anything else
	RecastGroup int
	Remaining   time.Duration
	// Adjusted is the id the client fires instead of this one, if any
	Adjusted combo.ActionID
	// Base is the action this id is a variant of, if any
	Base combo.ActionID
}

// Static is a table driven oracle. Actions without an entry are Ready.
type Static struct {
	mu      sync.RWMutex
	entries map[combo.ActionID]*Entry
	names   map[string]combo.ActionID
}

// NewStatic creates an empty oracle
func NewStatic() *Static {
	return &Static{
		entries: make(map[combo.ActionID]*Entry),
		names:   make(map[string]combo.ActionID),
	}
}

// Set replaces the entry for id
func (s *Static) Set(id combo.ActionID, entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.Status == combo.StatusUnknown {
		entry.Status = combo.StatusReady
	}
	if entry.RecastGroup == 0 {
		entry.RecastGroup = int(id)
	}
	s.entries[id] = &entry
	if entry.Name != "" {
		s.names[strings.ToLower(entry.Name)] = id
	}
}

// SetStatus changes only the status of id
func (s *Static) SetStatus(id combo.ActionID, status combo.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(id).Status = status
}

// SetRemaining changes only the cooldown left on id
func (s *Static) SetRemaining(id combo.ActionID, remaining time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entry(id).Remaining = remaining
}

// entry returns the entry for id, creating a default one. Callers hold mu.
func (s *Static) entry(id combo.ActionID) *Entry {
	e, ok := s.entries[id]
	if !ok {
		e = &Entry{Status: combo.StatusReady, RecastGroup: int(id)}
		s.entries[id] = e
	}
	return e
}

func (s *Static) lookup(id combo.ActionID) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Lookup resolves an action name, case insensitive
func (s *Static) Lookup(name string) (combo.ActionID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.names[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

func (s *Static) AdjustedID(id combo.ActionID) combo.ActionID {
	if e, ok := s.lookup(id); ok && e.Adjusted != 0 {
		return e.Adjusted
	}
	return id
}

func (s *Static) Status(id combo.ActionID) combo.Status {
	if e, ok := s.lookup(id); ok {
		return e.Status
	}
	return combo.StatusReady
}

func (s *Static) RecastGroup(id combo.ActionID) int {
	if e, ok := s.lookup(id); ok {
		return e.RecastGroup
	}
	return int(id)
}

func (s *Static) RecastRemaining(id combo.ActionID) time.Duration {
	if e, ok := s.lookup(id); ok {
		return e.Remaining
	}
	return 0
}

func (s *Static) BaseID(id combo.ActionID) combo.ActionID {
	if e, ok := s.lookup(id); ok && e.Base != 0 {
		return e.Base
	}
	return id
}

func (s *Static) Equals(a, b combo.ActionID) bool {
	return s.BaseID(a) == s.BaseID(b)
}

// Player is a settable stand-in for the local character
type Player struct {
	mu      sync.RWMutex
	ready   bool
	casting bool
	total   time.Duration
	elapsed time.Duration
}

// NewPlayer creates a loaded, idle player
func NewPlayer() *Player {
	return &Player{ready: true}
}

// SetReady toggles whether a character is loaded
func (p *Player) SetReady(ready bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ready = ready
}

// StartCast puts the player mid-cast with elapsed of total already done
func (p *Player) StartCast(total, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.casting = true
	p.total = total
	p.elapsed = elapsed
}

// StopCast ends any cast in progress
func (p *Player) StopCast() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.casting = false
	p.total = 0
	p.elapsed = 0
}

func (p *Player) Ready() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.ready
}

func (p *Player) IsCasting() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.casting
}

func (p *Player) TotalCastTime() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.total
}

func (p *Player) CurrentCastTime() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.elapsed
}
