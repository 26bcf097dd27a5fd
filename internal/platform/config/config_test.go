package config_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trovehq/trove-backend/internal/platform/config"
)

func TestLoadConfig_MaxBalanceAcceptsSeparators(t *testing.T) {
	t.Setenv("MAX_BALANCE", "2,500,000")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.MaxBalance.Equal(decimal.NewFromInt(2500000)),
		"want 2500000, got %s", cfg.MaxBalance)
}

func TestLoadConfig_MaxBalancePlainValue(t *testing.T) {
	t.Setenv("MAX_BALANCE", "500000")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.MaxBalance.Equal(decimal.NewFromInt(500000)))
}

func TestLoadConfig_InvalidMaxBalanceFallsBack(t *testing.T) {
	fallback := decimal.New(1, 12)

	for _, value := range []string{"lots", "-5", "0"} {
		t.Setenv("MAX_BALANCE", value)

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.True(t, cfg.MaxBalance.Equal(fallback), "value %q: got %s", value, cfg.MaxBalance)
	}
}
