package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/combo-tracker/internal/config"
	"github.com/KirkDiggler/combo-tracker/internal/domain/combo"
	dnderr "github.com/KirkDiggler/combo-tracker/internal/errors"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("REDIS_URL", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, combo.DefaultSettings(), cfg.Settings())
	assert.Equal(t, "chains.yaml", cfg.Combo.ChainsFile)
	assert.False(t, cfg.Combo.Verbose)

	opts, err := cfg.RedisOptions()
	require.NoError(t, err)
	assert.Nil(t, opts)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("COMBO_GLOBAL_COOLDOWN", "2.3s")
	t.Setenv("COMBO_ANIMATION_DELAY", "0s")
	t.Setenv("COMBO_CHAINS_FILE", "/etc/combo/whm.yaml")
	t.Setenv("COMBO_VERBOSE", "true")
	t.Setenv("REDIS_URL", "redis://localhost:6379/3")

	cfg, err := config.Load()
	require.NoError(t, err)

	settings := cfg.Settings()
	assert.Equal(t, 2300*time.Millisecond, settings.GlobalCooldown)
	assert.Zero(t, settings.AnimationDelay)
	assert.Equal(t, 100*time.Millisecond, settings.IconRefreshDelay)
	assert.True(t, settings.Verbose)
	assert.Equal(t, "/etc/combo/whm.yaml", cfg.Combo.ChainsFile)

	opts, err := cfg.RedisOptions()
	require.NoError(t, err)
	assert.Equal(t, 3, opts.DB)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "negative delay", key: "COMBO_CAST_BUFFER", value: "-1s"},
		{name: "not a duration", key: "COMBO_GLOBAL_COOLDOWN", value: "soon"},
		{name: "bad redis url", key: "REDIS_URL", value: "ftp://localhost"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := config.Load()
			require.Error(t, err)
			assert.Equal(t, dnderr.CodeValidation, dnderr.GetCode(err))
		})
	}
}
