package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the process-wide configuration. It is loaded once at startup
// and never mutated afterwards; services receive it by reference.
type Config struct {
	RPC        RPCConfig        `yaml:"rpc"`
	Chain      ChainConfig      `yaml:"chain"`
	Cache      CacheConfig      `yaml:"cache"`
	Pagination PaginationConfig `yaml:"pagination"`

	Networks []Network `yaml:"networks"`
	Dexes    []Dex     `yaml:"dexes"`

	// BaseCurrencies are the quote sides each basket is expanded
	// against when synthesizing trading pairs
	BaseCurrencies []string `yaml:"base_currencies"`
	// QuoteCurrency is the currency volume windows are quoted in
	QuoteCurrency string `yaml:"quote_currency"`
}

// RPCConfig configures the Verus daemon JSON-RPC client
type RPCConfig struct {
	// URL of the daemon; the VRSCRPCURL environment variable wins over
	// the config file so deployments can keep credentials out of it
	URL      string `yaml:"url"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	ConnectionTimeout time.Duration `yaml:"connection_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	MaxRetries        int           `yaml:"max_retries"`

	// RequestsPerSecond caps outbound daemon calls; Burst is the
	// limiter's bucket size
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// ChainConfig holds chain timing parameters
type ChainConfig struct {
	// VolumeWindowBlocks approximates 24h at the network's block time
	// (60s block time x 1440 blocks)
	VolumeWindowBlocks int64 `yaml:"volume_window_blocks"`
	// MonitorInterval is how often the chain monitor polls the tip
	MonitorInterval time.Duration `yaml:"monitor_interval"`
	// SynthesisConcurrency bounds the per-basket fan-out when building
	// pool lists; 1 disables the fan-out
	SynthesisConcurrency int `yaml:"synthesis_concurrency"`
}

// CacheConfig configures the response cache wrapping the API handlers
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// Per-resource TTLs
	NetworksTTL time.Duration `yaml:"networks_ttl"`
	DexesTTL    time.Duration `yaml:"dexes_ttl"`
	PoolsTTL    time.Duration `yaml:"pools_ttl"`
	OHLCVTTL    time.Duration `yaml:"ohlcv_ttl"`
	TradesTTL   time.Duration `yaml:"trades_ttl"`
}

// PaginationConfig bounds list endpoints
type PaginationConfig struct {
	DefaultPerPage int `yaml:"default_per_page"`
	MaxPerPage     int `yaml:"max_per_page"`
}

// DefaultConfig returns the compiled-in configuration: the Verus ecosystem
// tables and the timings the public deployment runs with. A config file
// overrides individual fields.
func DefaultConfig() *Config {
	return &Config{
		RPC: RPCConfig{
			ConnectionTimeout: 10 * time.Second,
			RequestTimeout:    30 * time.Second,
			MaxRetries:        3,
			RequestsPerSecond: 10,
			Burst:             5,
		},
		Chain: ChainConfig{
			VolumeWindowBlocks:   1440,
			MonitorInterval:      30 * time.Second,
			SynthesisConcurrency: 4,
		},
		Cache: CacheConfig{
			Enabled:         true,
			CleanupInterval: 10 * time.Minute,
			NetworksTTL:     time.Hour,
			DexesTTL:        30 * time.Minute,
			PoolsTTL:        5 * time.Minute,
			OHLCVTTL:        time.Minute,
			TradesTTL:       30 * time.Second,
		},
		Pagination: PaginationConfig{
			DefaultPerPage: 100,
			MaxPerPage:     250,
		},
		Networks:       defaultNetworks(),
		Dexes:          defaultDexes(),
		BaseCurrencies: []string{"VRSC", "DAI", "ETH", "MKR", "TBTC"},
		QuoteCurrency:  "VRSC",
	}
}

// LoadConfig reads the YAML config at path on top of the defaults. A
// missing file is not an error: the defaults describe a complete working
// setup apart from the RPC URL.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config: %s not found, using defaults", path)
		} else {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if url := os.Getenv("VRSCRPCURL"); url != "" {
		cfg.RPC.URL = url
	}
	if user := os.Getenv("VRSCRPCUSER"); user != "" {
		cfg.RPC.User = user
	}
	if pass := os.Getenv("VRSCRPCPASSWORD"); pass != "" {
		cfg.RPC.Password = pass
	}

	return cfg, nil
}
