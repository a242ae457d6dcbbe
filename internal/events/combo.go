package events

import (
	"time"

	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
)

// ComboAdvancedEvent is emitted when a group moves its pointer
type ComboAdvancedEvent struct {
	BaseEvent
	TriggerID string
	GroupID   combo.GroupID
	ActionID  combo.ActionID
	From      int
	To        int
	At        time.Time
}

// NewComboAdvancedEvent builds the event for a committed transition
func NewComboAdvancedEvent(t combo.Transition) *ComboAdvancedEvent {
	return &ComboAdvancedEvent{
		BaseEvent: BaseEvent{Type: EventTypeComboAdvanced},
		TriggerID: t.TriggerID,
		GroupID:   t.GroupID,
		ActionID:  t.ActionID,
		From:      t.From,
		To:        t.To,
		At:        t.At,
	}
}

// ComboResetEvent is emitted when groups are rewound. GroupID 0 means all.
type ComboResetEvent struct {
	BaseEvent
	GroupID combo.GroupID
}

// NewComboResetEvent builds a reset event
func NewComboResetEvent(groupID combo.GroupID) *ComboResetEvent {
	return &ComboResetEvent{
		BaseEvent: BaseEvent{Type: EventTypeComboReset},
		GroupID:   groupID,
	}
}

// ProgressRestoredEvent is emitted when a group pointer is loaded from the store
type ProgressRestoredEvent struct {
	BaseEvent
	GroupID combo.GroupID
	Index   int
}

// NewProgressRestoredEvent builds a restore event
func NewProgressRestoredEvent(groupID combo.GroupID, index int) *ProgressRestoredEvent {
	return &ProgressRestoredEvent{
		BaseEvent: BaseEvent{Type: EventTypeProgressRestored},
		GroupID:   groupID,
		Index:     index,
	}
}
