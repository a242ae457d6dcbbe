package uuid_test

import (
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/combo-tracker/internal/uuid"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	first := gen.New()
	second := gen.New()

	_, err := googleuuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSequenceGenerator(t *testing.T) {
	gen := uuid.NewSequenceGenerator("replay")

	assert.Equal(t, "replay-1", gen.New())
	assert.Equal(t, "replay-2", gen.New())
}
