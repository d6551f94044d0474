package networks

// Network is the API representation of one supported network
type Network struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Shortname           string  `json:"shortname"`
	NativeCoinID        string  `json:"native_coin_id"`
	WrappedNativeCoinID *string `json:"wrapped_native_coin_id"`
	Image               *string `json:"image"`
}

// VerusStats are native-chain statistics. Everything except the block
// height is a structural placeholder until a data source is wired;
// callers must read zero as "not yet available".
type VerusStats struct {
	BlockHeight       int64  `json:"block_height"`
	TotalTransactions int64  `json:"total_transactions"`
	TotalAddresses    int64  `json:"total_addresses"`
	HashRate          string `json:"hash_rate"`
	Difficulty        string `json:"difficulty"`
	LastUpdated       int64  `json:"last_updated"`
}

// EthereumStats are foreign-chain statistics relevant to the bridge.
// This service has no Ethereum RPC access, so all fields are placeholders.
type EthereumStats struct {
	BlockHeight       int64    `json:"block_height"`
	BridgeContracts   []string `json:"bridge_contracts"`
	TotalBridgeVolume string   `json:"total_bridge_volume"`
	LastUpdated       int64    `json:"last_updated"`
}

// BridgeStats are bridge statistics derived from basket enumeration
type BridgeStats struct {
	TotalBaskets    int    `json:"total_baskets"`
	TotalCurrencies int    `json:"total_currencies"`
	TotalVolume24h  string `json:"total_volume_24h"`
	TotalTVL        string `json:"total_tvl"`
	LastUpdated     int64  `json:"last_updated"`
}

// StatsError is the whole-response degradation shape: when any branch of
// the stats computation fails, the entire payload collapses to this.
type StatsError struct {
	Error       string `json:"error"`
	LastUpdated int64  `json:"last_updated"`
}
