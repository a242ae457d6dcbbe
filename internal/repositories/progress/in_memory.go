package progress

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
	dnderr "github.com/KirkDiggler/combo-tracker/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu           sync.RWMutex
	snapshots    map[combo.GroupID]Snapshot
	timeProvider TimeProvider
}

// NewInMemory creates a new in-memory progress repository
func NewInMemory(timeProvider TimeProvider) Repository {
	if timeProvider == nil {
		timeProvider = systemTime{}
	}

	return &inMemoryRepository{
		snapshots:    make(map[combo.GroupID]Snapshot),
		timeProvider: timeProvider,
	}
}

func (r *inMemoryRepository) Save(ctx context.Context, snapshot *Snapshot) error {
	if err := validate(snapshot); err != nil {
		return err
	}

	snapshot.UpdatedAt = r.timeProvider.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshots[snapshot.GroupID] = *snapshot
	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, groupID combo.GroupID) (*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot, exists := r.snapshots[groupID]
	if !exists {
		return nil, dnderr.NotFoundf("progress for group %d not found", groupID).
			WithMeta("group_id", groupID)
	}

	return &snapshot, nil
}

func (r *inMemoryRepository) List(ctx context.Context) ([]*Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshots := make([]*Snapshot, 0, len(r.snapshots))
	for _, snapshot := range r.snapshots {
		snapshotCopy := snapshot
		snapshots = append(snapshots, &snapshotCopy)
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].GroupID < snapshots[j].GroupID
	})

	return snapshots, nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, groupID combo.GroupID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.snapshots[groupID]; !exists {
		return dnderr.NotFoundf("progress for group %d not found", groupID).
			WithMeta("group_id", groupID)
	}

	delete(r.snapshots, groupID)
	return nil
}
