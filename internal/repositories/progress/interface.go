// Package progress persists group pointers so a restarted tracker can pick a
// rotation up where it left off
package progress

import (
	"context"
	"time"

	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
	dnderr "github.com/KirkDiggler/combo-tracker/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=mockprogress -source=interface.go

// Snapshot is the stored position of one group
type Snapshot struct {
	GroupID   combo.GroupID `json:"group_id"`
	Index     int           `json:"index"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Repository defines the interface for progress storage operations
type Repository interface {
	Save(ctx context.Context, snapshot *Snapshot) error
	Get(ctx context.Context, groupID combo.GroupID) (*Snapshot, error)
	List(ctx context.Context) ([]*Snapshot, error)
	Delete(ctx context.Context, groupID combo.GroupID) error
}

// TimeProvider stamps snapshots
type TimeProvider interface {
	Now() time.Time
}

type systemTime struct{}

func (systemTime) Now() time.Time { return time.Now() }

func validate(snapshot *Snapshot) error {
	if snapshot == nil {
		return dnderr.InvalidArgument("snapshot cannot be nil")
	}
	if snapshot.Index < 0 {
		return dnderr.InvalidArgument("snapshot index cannot be negative")
	}
	return nil
}
