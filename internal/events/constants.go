package events

// Event type constants
const (
	// EventTypeComboAdvanced fires after a group commits a pointer move
	EventTypeComboAdvanced EventType = "combo.advanced"

	// EventTypeComboReset fires when one or all groups are rewound
	EventTypeComboReset EventType = "combo.reset"

	// EventTypeProgressRestored fires for each group resumed from a snapshot
	EventTypeProgressRestored EventType = "combo.progress_restored"
)

// Priority levels for listener order
const (
	PriorityPersistence = 100 // Checkpointing
	PriorityDisplay     = 200 // Overlays, transcripts
	PriorityLogging     = 500
)
