package dexes

// DexInfo is the API representation of one DEX. A failed aggregation
// degrades the entry in place: static fields stay populated, computed
// ones zero out, and Error carries the cause.
type DexInfo struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Identifier         string  `json:"identifier"`
	Volume24hUSD       string  `json:"volume_24h_usd"`
	OpenInterest24hUSD string  `json:"open_interest_24h_usd"`
	NumberOfPairs      int     `json:"number_of_pairs"`
	Image              *string `json:"image"`
	Website            string  `json:"website"`
	Error              string  `json:"error,omitempty"`
}

// Stats is the aggregate DEX summary. Transactions, traders and fees
// are structural placeholders: zero means "not yet computed", not an
// observed zero.
type Stats struct {
	TotalBaskets         int    `json:"total_baskets"`
	TotalPairs           int    `json:"total_pairs"`
	Volume24hUSD         string `json:"volume_24h_usd"`
	Volume7dUSD          string `json:"volume_7d_usd"`
	TotalLiquidityUSD    string `json:"total_liquidity_usd"`
	TotalTransactions24h int    `json:"total_transactions_24h"`
	UniqueTraders24h     int    `json:"unique_traders_24h"`
	Fees24hUSD           string `json:"fees_24h_usd"`
	CurrentBlock         int64  `json:"current_block"`
	LastUpdated          int64  `json:"last_updated"`
}

// StatsError is the whole-response degradation shape for Stats: a
// partial sum missing one basket would look identical to a correct
// smaller total, so nothing partial is ever returned.
type StatsError struct {
	Error       string `json:"error"`
	LastUpdated int64  `json:"last_updated"`
}

// Pair is one synthesized trading pair. PoolAddress is always the
// basket id the pair came from.
type Pair struct {
	ID          string `json:"id"`
	BaseToken   string `json:"base_token"`
	QuoteToken  string `json:"quote_token"`
	DexID       string `json:"dex_id"`
	PoolAddress string `json:"pool_address"`
	LastUpdated int64  `json:"last_updated"`
}
