package events_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
	dnderr "github.com/KirkDiggler/combo-tracker/internal/errors"
	"github.com/KirkDiggler/combo-tracker/internal/events"
)

func TestEventBus_ComboAdvancedFlow(t *testing.T) {
	bus := events.NewBus()

	var seen []*events.ComboAdvancedEvent
	bus.Subscribe(events.EventTypeComboAdvanced, &testListener{
		id:       "overlay",
		priority: events.PriorityDisplay,
		handler: func(e events.Event) error {
			if advanced, ok := e.(*events.ComboAdvancedEvent); ok {
				seen = append(seen, advanced)
			}
			return nil
		},
	})

	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	event := events.NewComboAdvancedEvent(combo.Transition{
		TriggerID: "trigger-1",
		GroupID:   139,
		ActionID:  3571,
		From:      0,
		To:        2,
		At:        at,
	})

	require.NoError(t, bus.Emit(event))
	require.Len(t, seen, 1)
	assert.Equal(t, events.EventTypeComboAdvanced, seen[0].GetType())
	assert.Equal(t, combo.GroupID(139), seen[0].GroupID)
	assert.Equal(t, 2, seen[0].To)
	assert.Equal(t, at, seen[0].At)

	// other event types do not reach the listener
	require.NoError(t, bus.Emit(events.NewComboResetEvent(0)))
	assert.Len(t, seen, 1)
}

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus()

	var executionOrder []string
	record := func(name string) func(events.Event) error {
		return func(events.Event) error {
			executionOrder = append(executionOrder, name)
			return nil
		}
	}

	bus.Subscribe(events.EventTypeComboReset, &testListener{id: "low", priority: 300, handler: record("low")})
	bus.Subscribe(events.EventTypeComboReset, &testListener{id: "high", priority: 100, handler: record("high")})
	bus.Subscribe(events.EventTypeComboReset, &events.ListenerFunc{Name: "medium", Order: 200, Handler: record("medium")})

	require.NoError(t, bus.Emit(events.NewComboResetEvent(7)))

	// lower priority number runs first
	assert.Equal(t, []string{"high", "medium", "low"}, executionOrder)
}

func TestEventBus_Cancellation(t *testing.T) {
	bus := events.NewBus()

	var firstExecuted, secondExecuted bool

	bus.Subscribe(events.EventTypeComboAdvanced, &testListener{
		id:       "first",
		priority: 100,
		handler: func(e events.Event) error {
			firstExecuted = true
			e.Cancel()
			return nil
		},
	})
	bus.Subscribe(events.EventTypeComboAdvanced, &testListener{
		id:       "second",
		priority: 200,
		handler: func(e events.Event) error {
			secondExecuted = true
			return nil
		},
	})

	event := events.NewComboAdvancedEvent(combo.Transition{GroupID: 1, To: 1})
	require.NoError(t, bus.Emit(event))

	assert.True(t, firstExecuted)
	assert.False(t, secondExecuted)
	assert.True(t, event.IsCancelled())
}

func TestEventBus_ListenerError(t *testing.T) {
	bus := events.NewBus()
	boom := errors.New("store offline")

	bus.Subscribe(events.EventTypeProgressRestored, &testListener{
		id:       "checkpoint",
		priority: events.PriorityPersistence,
		handler:  func(events.Event) error { return boom },
	})

	err := bus.Emit(events.NewProgressRestoredEvent(3, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "listener checkpoint failed")
	assert.Equal(t, string(events.EventTypeProgressRestored), dnderr.GetMeta(err)["event"])
}

func TestEventBus_UnsubscribeAndClear(t *testing.T) {
	bus := events.NewBus()
	noop := func(events.Event) error { return nil }

	bus.Subscribe(events.EventTypeComboAdvanced, &testListener{id: "a", priority: 1, handler: noop})
	bus.Subscribe(events.EventTypeComboAdvanced, &testListener{id: "b", priority: 2, handler: noop})
	bus.Subscribe(events.EventTypeComboReset, &testListener{id: "c", priority: 1, handler: noop})
	assert.Equal(t, 2, bus.Count(events.EventTypeComboAdvanced))

	bus.Unsubscribe(events.EventTypeComboAdvanced, "a")
	assert.Equal(t, 1, bus.Count(events.EventTypeComboAdvanced))

	bus.Unsubscribe(events.EventTypeComboAdvanced, "missing")
	assert.Equal(t, 1, bus.Count(events.EventTypeComboAdvanced))

	bus.Clear()
	assert.Zero(t, bus.Count(events.EventTypeComboAdvanced))
	assert.Zero(t, bus.Count(events.EventTypeComboReset))
}

type testListener struct {
	id       string
	priority int
	handler  func(events.Event) error
}

func (l *testListener) ID() string                       { return l.id }
func (l *testListener) Priority() int                    { return l.priority }
func (l *testListener) HandleEvent(e events.Event) error { return l.handler(e) }
