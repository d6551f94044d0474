package config

// Network describes one supported network. The set is fixed and
// enumerable: the native chain, the bridge, and the foreign chain the
// bridge connects to.
type Network struct {
	ID                  string `yaml:"id"`
	Name                string `yaml:"name"`
	Shortname           string `yaml:"shortname"`
	NativeCoinID        string `yaml:"native_coin_id"`
	WrappedNativeCoinID string `yaml:"wrapped_native_coin_id,omitempty"`
	Image               string `yaml:"image,omitempty"`

	// BlockTime in seconds, informational
	BlockTime int `yaml:"block_time"`
}

// Dex describes one supported DEX. Exactly one exists in this domain
// (the bridge); the type generalizes to many.
type Dex struct {
	ID                string   `yaml:"id"`
	Name              string   `yaml:"name"`
	Identifier        string   `yaml:"identifier"`
	Website           string   `yaml:"website,omitempty"`
	FeePercentage     float64  `yaml:"fee_percentage"`
	SupportedNetworks []string `yaml:"supported_networks"`
}

// Well-known network identifiers
const (
	NetworkVerus    = "verus"
	NetworkEthereum = "ethereum"
	NetworkBridge   = "verus-bridge"
)

// DexVerusBridge is the only DEX id this deployment serves
const DexVerusBridge = "verus-bridge"

func defaultNetworks() []Network {
	return []Network{
		{
			ID:           NetworkVerus,
			Name:         "Verus",
			Shortname:    "VRSC",
			NativeCoinID: "verus-coin",
			BlockTime:    60,
		},
		{
			ID:                  NetworkEthereum,
			Name:                "Ethereum",
			Shortname:           "ETH",
			NativeCoinID:        "ethereum",
			WrappedNativeCoinID: "weth",
			BlockTime:           12,
		},
		{
			ID:           NetworkBridge,
			Name:         "Verus Bridge",
			Shortname:    "BRIDGE",
			NativeCoinID: "verus-coin",
			BlockTime:    60,
		},
	}
}

func defaultDexes() []Dex {
	return []Dex{
		{
			ID:                DexVerusBridge,
			Name:              "Verus Bridge",
			Identifier:        DexVerusBridge,
			Website:           "https://verus.io",
			FeePercentage:     0.003,
			SupportedNetworks: []string{NetworkVerus, NetworkEthereum},
		},
	}
}

// NetworkByID returns the network config for id, nil when unsupported
func (c *Config) NetworkByID(id string) *Network {
	for i := range c.Networks {
		if c.Networks[i].ID == id {
			return &c.Networks[i]
		}
	}
	return nil
}

// DexByID returns the DEX config for id, nil when unsupported
func (c *Config) DexByID(id string) *Dex {
	for i := range c.Dexes {
		if c.Dexes[i].ID == id {
			return &c.Dexes[i]
		}
	}
	return nil
}

// IsSupportedNetwork reports whether id names a configured network
func (c *Config) IsSupportedNetwork(id string) bool {
	return c.NetworkByID(id) != nil
}

// IsSupportedDex reports whether id names a configured DEX
func (c *Config) IsSupportedDex(id string) bool {
	return c.DexByID(id) != nil
}
