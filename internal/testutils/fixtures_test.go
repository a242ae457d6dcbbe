package testutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
)

func TestFakeClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewFakeClock(start)

	clock.Advance(3 * time.Second)
	assert.Equal(t, start.Add(3*time.Second), clock.Now())
}

func TestCreateTestOracle(t *testing.T) {
	o := CreateTestOracle()

	id, ok := o.Lookup("glare")
	assert.True(t, ok)
	assert.Equal(t, ActionGlare, id)
	assert.True(t, o.Equals(ActionStone, ActionGlare))
	assert.Equal(t, combo.StatusNotLearned, o.Status(ActionUnlearned))
}

func TestTestRedisOptions(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://cache.internal:6380/2")

	opts, err := TestRedisOptions()
	assert.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, TestRedisDB, opts.DB)

	t.Setenv("REDIS_URL", "ftp://nope")
	_, err = TestRedisOptions()
	assert.Error(t, err)
}
