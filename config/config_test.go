package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, int64(1440), cfg.Chain.VolumeWindowBlocks)
	assert.Equal(t, 100, cfg.Pagination.DefaultPerPage)
	assert.Equal(t, 250, cfg.Pagination.MaxPerPage)
	assert.Equal(t, []string{"VRSC", "DAI", "ETH", "MKR", "TBTC"}, cfg.BaseCurrencies)
	assert.Equal(t, "VRSC", cfg.QuoteCurrency)

	assert.Len(t, cfg.Networks, 3)
	assert.Len(t, cfg.Dexes, 1)
	assert.Equal(t, DexVerusBridge, cfg.Dexes[0].ID)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeTestConfig(t, `
rpc:
  url: "http://localhost:27486"
  max_retries: 5
chain:
  volume_window_blocks: 720
cache:
  pools_ttl: 1m
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:27486", cfg.RPC.URL)
	assert.Equal(t, 5, cfg.RPC.MaxRetries)
	assert.Equal(t, int64(720), cfg.Chain.VolumeWindowBlocks)
	assert.Equal(t, time.Minute, cfg.Cache.PoolsTTL)

	// Untouched fields keep their defaults
	assert.Equal(t, 30*time.Second, cfg.RPC.RequestTimeout)
	assert.Equal(t, 250, cfg.Pagination.MaxPerPage)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Pagination, cfg.Pagination)
}

func TestLoadConfig_EnvWinsOverFile(t *testing.T) {
	path := writeTestConfig(t, `
rpc:
  url: "http://from-file:27486"
`)
	t.Setenv("VRSCRPCURL", "http://from-env:27486")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:27486", cfg.RPC.URL)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeTestConfig(t, "rpc: [not a mapping")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestNetworkAndDexLookups(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg.NetworkByID(NetworkVerus))
	assert.NotNil(t, cfg.NetworkByID(NetworkEthereum))
	assert.NotNil(t, cfg.NetworkByID(NetworkBridge))
	assert.Nil(t, cfg.NetworkByID("solana"))

	assert.True(t, cfg.IsSupportedNetwork(NetworkVerus))
	assert.False(t, cfg.IsSupportedNetwork(""))

	assert.NotNil(t, cfg.DexByID(DexVerusBridge))
	assert.Nil(t, cfg.DexByID("uniswap"))
	assert.True(t, cfg.IsSupportedDex(DexVerusBridge))
	assert.False(t, cfg.IsSupportedDex("uniswap"))
}
