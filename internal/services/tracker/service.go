// Package tracker owns every combo group and fans trigger events out to them
package tracker

//go:generate mockgen -destination=mock/mock_service.go -package=mocktracker -source=service.go

import (
	"context"
	"log"
	"sort"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/combo-tracker/internal/chains"
	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
	dnderr "github.com/KirkDiggler/combo-tracker/internal/errors"
	"github.com/KirkDiggler/combo-tracker/internal/events"
	"github.com/KirkDiggler/combo-tracker/internal/repositories/progress"
	"github.com/KirkDiggler/combo-tracker/internal/uuid"
)

// Service defines the combo tracker interface
type Service interface {
	// Update offers a trigger to every group concurrently and reports whether
	// any group accepted it
	Update(ctx context.Context, trigger combo.Trigger) bool

	// Dispatch runs Update in the background; the channel yields its result
	Dispatch(ctx context.Context, trigger combo.Trigger) <-chan bool

	// Current returns the action a group expects next, or the group id itself
	// when the group is unknown
	Current(groupID combo.GroupID) combo.ActionID

	// Index returns a group's pointer
	Index(groupID combo.GroupID) (int, bool)

	// Reset rewinds one group, or all of them when groupID is 0
	Reset(groupID combo.GroupID)

	// Contains reports whether any group's chain holds the action
	Contains(actionID combo.ActionID) bool

	// GroupContains reports whether one group's chain holds the action
	GroupContains(groupID combo.GroupID, actionID combo.ActionID) bool

	// ContainsGroup reports whether a group id is known
	ContainsGroup(groupID combo.GroupID) bool

	// Groups lists the known group ids in ascending order
	Groups() []combo.GroupID

	// Checkpoint stores every group pointer
	Checkpoint(ctx context.Context) error

	// Resume restores stored pointers, skipping groups with no snapshot
	Resume(ctx context.Context) error
}

// service implements the Service interface
type service struct {
	groups        map[combo.GroupID]*combo.Group
	order         []combo.GroupID
	repository    progress.Repository
	eventBus      *events.Bus
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Definitions   []*chains.Definition // Required
	Oracle        combo.Oracle         // Required
	Player        combo.Player         // Required
	Clock         combo.Clock          // Optional, system clock if nil
	Settings      combo.Settings
	Repository    progress.Repository // Optional, Checkpoint and Resume are no-ops without it
	EventBus      *events.Bus         // Optional
	UUIDGenerator uuid.Generator      // Optional, will use default if nil
}

// NewService builds one group per definition
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("service config cannot be nil")
	}
	if len(cfg.Definitions) == 0 {
		return nil, dnderr.InvalidArgument("at least one chain definition is required")
	}

	svc := &service{
		groups:        make(map[combo.GroupID]*combo.Group, len(cfg.Definitions)),
		order:         make([]combo.GroupID, 0, len(cfg.Definitions)),
		repository:    cfg.Repository,
		eventBus:      cfg.EventBus,
		uuidGenerator: cfg.UUIDGenerator,
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	for _, def := range cfg.Definitions {
		if def == nil {
			return nil, dnderr.InvalidArgument("chain definition cannot be nil")
		}
		if _, exists := svc.groups[def.ID]; exists {
			return nil, dnderr.AlreadyExistsf("group %d is defined twice", def.ID).
				WithMeta("group_id", def.ID)
		}

		group, err := combo.NewGroup(&combo.GroupConfig{
			ID:       def.ID,
			Actions:  cloneActions(def.Actions),
			Policy:   def.Policy,
			Oracle:   cfg.Oracle,
			Player:   cfg.Player,
			Clock:    cfg.Clock,
			Settings: cfg.Settings,
			Listener: svc,
		})
		if err != nil {
			return nil, dnderr.Wrapf(err, "failed to build group %d", def.ID).
				WithMeta("group_id", def.ID)
		}

		svc.groups[def.ID] = group
		svc.order = append(svc.order, def.ID)
	}

	sort.Slice(svc.order, func(i, j int) bool { return svc.order[i] < svc.order[j] })

	return svc, nil
}

// cloneActions gives each group its own counters
func cloneActions(actions []*combo.Action) []*combo.Action {
	cloned := make([]*combo.Action, len(actions))
	for i, action := range actions {
		if action == nil {
			continue
		}
		actionCopy := *action
		cloned[i] = &actionCopy
	}
	return cloned
}

func (s *service) Update(ctx context.Context, trigger combo.Trigger) bool {
	if trigger.ID == "" {
		trigger.ID = s.uuidGenerator.New()
	}

	var accepted atomic.Bool
	var g errgroup.Group
	for _, group := range s.groups {
		g.Go(func() error {
			if group.Update(ctx, trigger) {
				accepted.Store(true)
			}
			return nil
		})
	}
	_ = g.Wait()

	return accepted.Load()
}

func (s *service) Dispatch(ctx context.Context, trigger combo.Trigger) <-chan bool {
	result := make(chan bool, 1)
	go func() {
		defer close(result)
		result <- s.Update(ctx, trigger)
	}()
	return result
}

func (s *service) Current(groupID combo.GroupID) combo.ActionID {
	group, exists := s.groups[groupID]
	if !exists {
		return combo.ActionID(groupID)
	}
	return group.Current()
}

func (s *service) Index(groupID combo.GroupID) (int, bool) {
	group, exists := s.groups[groupID]
	if !exists {
		return 0, false
	}
	return group.Index(), true
}

func (s *service) Reset(groupID combo.GroupID) {
	if groupID == 0 {
		for _, group := range s.groups {
			group.Reset()
		}
	} else {
		group, exists := s.groups[groupID]
		if !exists {
			log.Printf("ComboService: Ignoring reset of unknown group %d", groupID)
			return
		}
		group.Reset()
	}

	s.emit(events.NewComboResetEvent(groupID))
}

func (s *service) Contains(actionID combo.ActionID) bool {
	for _, group := range s.groups {
		if group.Contains(actionID) {
			return true
		}
	}
	return false
}

func (s *service) GroupContains(groupID combo.GroupID, actionID combo.ActionID) bool {
	group, exists := s.groups[groupID]
	if !exists {
		return false
	}
	return group.Contains(actionID)
}

func (s *service) ContainsGroup(groupID combo.GroupID) bool {
	_, exists := s.groups[groupID]
	return exists
}

func (s *service) Groups() []combo.GroupID {
	ids := make([]combo.GroupID, len(s.order))
	copy(ids, s.order)
	return ids
}

func (s *service) Checkpoint(ctx context.Context) error {
	if s.repository == nil {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for id, group := range s.groups {
		g.Go(func() error {
			snapshot := &progress.Snapshot{GroupID: id, Index: group.Index()}
			if err := s.repository.Save(ctx, snapshot); err != nil {
				return dnderr.Wrapf(err, "failed to checkpoint group %d", id).
					WithMeta("group_id", id)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("ComboService: Checkpoint failed: %v", err)
		return err
	}
	return nil
}

func (s *service) Resume(ctx context.Context) error {
	if s.repository == nil {
		return nil
	}

	restored := make([]*progress.Snapshot, len(s.order))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range s.order {
		g.Go(func() error {
			snapshot, err := s.repository.Get(gctx, id)
			if err != nil {
				if dnderr.IsNotFound(err) {
					return nil
				}
				return dnderr.Wrapf(err, "failed to resume group %d", id).
					WithMeta("group_id", id)
			}
			restored[i] = snapshot
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, snapshot := range restored {
		if snapshot == nil {
			continue
		}
		id := s.order[i]
		if err := s.groups[id].SetIndex(snapshot.Index); err != nil {
			log.Printf("ComboService: Skipping stored index %d for group %d: %v", snapshot.Index, id, err)
			continue
		}
		s.emit(events.NewProgressRestoredEvent(id, snapshot.Index))
	}

	return nil
}

// ComboAdvanced forwards committed transitions to the event bus
func (s *service) ComboAdvanced(t combo.Transition) {
	s.emit(events.NewComboAdvancedEvent(t))
}

func (s *service) emit(event events.Event) {
	if s.eventBus == nil {
		return
	}
	if err := s.eventBus.Emit(event); err != nil {
		log.Printf("ComboService: Failed to emit %s: %v", event.GetType(), err)
	}
}
