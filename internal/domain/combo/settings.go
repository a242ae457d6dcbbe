package combo

import "time"

// BlockingRetryLimit is how many unconfirmed events a Blocking slot in an
// Ochain group absorbs before it is forced past.
const BlockingRetryLimit = 5

// Settings holds the timing knobs of a group
type Settings struct {
	// GlobalCooldown is the cutoff above which a pending action is treated
	// as already used
	GlobalCooldown time.Duration

	// AnimationDelay is how long a transition waits before it commits
	AnimationDelay time.Duration

	// IconRefreshDelay is held after the pointer moves so the client can
	// redraw before the next event is admitted
	IconRefreshDelay time.Duration

	// CastBuffer is added to the remaining cast time when a commit has to
	// wait for the player's cast to finish
	CastBuffer time.Duration

	// Verbose enables per-event Ochain logging
	Verbose bool
}

// DefaultSettings returns the timings the game client is tuned for
func DefaultSettings() Settings {
	return Settings{
		GlobalCooldown:   2500 * time.Millisecond,
		AnimationDelay:   400 * time.Millisecond,
		IconRefreshDelay: 100 * time.Millisecond,
		CastBuffer:       100 * time.Millisecond,
	}
}
