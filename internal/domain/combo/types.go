package combo

import (
	"strings"
	"time"

	dnderr "github.com/KirkDiggler/combo-tracker/internal/errors"
)

// ActionID identifies an action as reported by the game client
type ActionID uint32

// GroupID identifies a combo chain. Groups are keyed by an action id so the
// driver can ask for the current action of the button it is about to draw.
type GroupID uint32

// Status is the usability status of an action as reported by the oracle
type Status int

const (
	StatusUnknown Status = iota
	StatusReady
	StatusPending
	StatusNotSatisfied
	StatusNotLearned
	StatusLocking
	StatusInvalidTarget
)

var statusNames = map[Status]string{
	StatusUnknown:       "unknown",
	StatusReady:         "ready",
	StatusPending:       "pending",
	StatusNotSatisfied:  "not_satisfied",
	StatusNotLearned:    "not_learned",
	StatusLocking:       "locking",
	StatusInvalidTarget: "invalid_target",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// actionable reports whether a status can move a chain at all
func (s Status) actionable() bool {
	return s == StatusReady || s == StatusPending || s == StatusNotSatisfied
}

// ParseStatus converts a status name such as "ready" or "not_satisfied"
func ParseStatus(name string) (Status, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for status, statusName := range statusNames {
		if statusName == normalized {
			return status, nil
		}
	}
	return StatusUnknown, dnderr.InvalidArgumentf("unknown action status %q", name)
}

// Policy is the advancement rule of a combo group
type Policy int

const (
	// PolicyManual advances on every accepted event without confirmation
	PolicyManual Policy = iota
	// PolicyLinear moves the pointer to the slot after the triggered action,
	// wherever it sits in the chain
	PolicyLinear
	// PolicyStrict only follows the chain in order from the current slot
	PolicyStrict
	// PolicyLinearBlocked is Linear without skipping on cooldown or missing
	// prerequisites
	PolicyLinearBlocked
	// PolicyStrictBlocked is Strict without skipping on cooldown or missing
	// prerequisites
	PolicyStrictBlocked
	// PolicyOchain counts repeats per slot and skips slots by capability
	PolicyOchain
	// PolicyAsync is the macro style. It accepts events but never advances.
	PolicyAsync
)

var policyCodes = map[string]Policy{
	"m":  PolicyManual,
	"l":  PolicyLinear,
	"s":  PolicyStrict,
	"lb": PolicyLinearBlocked,
	"sb": PolicyStrictBlocked,
	"o":  PolicyOchain,
	"a":  PolicyAsync,
}

// ParsePolicy maps a short configuration code to a policy.
// Unknown or empty codes fall back to Linear.
func ParsePolicy(code string) Policy {
	if policy, ok := policyCodes[strings.ToLower(strings.TrimSpace(code))]; ok {
		return policy
	}
	return PolicyLinear
}

func (p Policy) String() string {
	switch p {
	case PolicyManual:
		return "manual"
	case PolicyLinear:
		return "linear"
	case PolicyStrict:
		return "strict"
	case PolicyLinearBlocked:
		return "linear_blocked"
	case PolicyStrictBlocked:
		return "strict_blocked"
	case PolicyOchain:
		return "ochain"
	case PolicyAsync:
		return "async"
	default:
		return "unknown"
	}
}

// Kind is the capability set of a slot. Only Ochain groups look at it.
type Kind uint8

const (
	KindSingle Kind = 1 << iota
	KindMulti
	KindSkipable
	KindBlocking
	// KindAbility marks a slot the chain file cannot express yet. Ochain
	// groups never move past it on their own.
	KindAbility

	KindSingleSkipable = KindSingle | KindSkipable
	KindMultiSkipable  = KindMulti | KindSkipable
)

// Has reports whether every capability in c is present
func (k Kind) Has(c Kind) bool {
	return c != 0 && k&c == c
}

// confirmedSkip is true for slots that may only be skipped once they fired
func (k Kind) confirmedSkip() bool {
	return k.Has(KindSkipable) && (k.Has(KindSingle) || k.Has(KindMulti))
}

// pureSkip is true for slots that can be skipped without ever firing
func (k Kind) pureSkip() bool {
	return k.Has(KindSkipable) && !k.Has(KindSingle) && !k.Has(KindMulti)
}

// Trigger is one action event reported by the driver
type Trigger struct {
	// ID correlates log lines and emitted transitions. Optional.
	ID        string
	ActionID  ActionID
	Status    Status
	Succeeded bool
	// At is when the game reported the event. Zero means now.
	At time.Time
}

// Transition describes a committed pointer change
type Transition struct {
	TriggerID string
	GroupID   GroupID
	ActionID  ActionID
	From      int
	To        int
	At        time.Time
}
