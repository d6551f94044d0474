package pools

import "encoding/json"

// Pool is the API representation of one liquidity basket. A degraded
// pool carries only ID, Type and Error; a healthy one carries full
// attributes and relationships.
type Pool struct {
	ID            string         `json:"id"`
	Type          string         `json:"type"`
	Attributes    *Attributes    `json:"attributes,omitempty"`
	Relationships *Relationships `json:"relationships,omitempty"`
	Error         string         `json:"error,omitempty"`
}

// Attributes holds per-pool market figures. Monetary values are
// decimal-formatted strings; fields without a data source are the
// literal "0", present so consumers can rely on the shape.
type Attributes struct {
	BaseTokenPriceUSD            string       `json:"base_token_price_usd"`
	QuoteTokenPriceUSD           string       `json:"quote_token_price_usd"`
	BaseTokenPriceNativeCurrency string       `json:"base_token_price_native_currency"`
	QuoteTokenPriceNative        string       `json:"quote_token_price_native_currency"`
	Address                      string       `json:"address"`
	Name                         string       `json:"name"`
	PoolCreatedAt                *string      `json:"pool_created_at"`
	FdvUSD                       string       `json:"fdv_usd"`
	MarketCapUSD                 *string      `json:"market_cap_usd"`
	PriceChangePercentage        PeriodValues `json:"price_change_percentage"`
	Transactions                 PeriodCounts `json:"transactions"`
	VolumeUSD                    PeriodValues `json:"volume_usd"`
	ReserveInUSD                 string       `json:"reserve_in_usd"`
}

// PeriodValues is a string-valued metric broken down by trailing period
type PeriodValues struct {
	H1  string `json:"h1"`
	H6  string `json:"h6"`
	H24 string `json:"h24"`
}

// PeriodCounts breaks buy/sell counts down by trailing period
type PeriodCounts struct {
	H1  TxCount `json:"h1"`
	H6  TxCount `json:"h6"`
	H24 TxCount `json:"h24"`
}

type TxCount struct {
	Buys  int `json:"buys"`
	Sells int `json:"sells"`
}

// Relationships links a pool to its DEX and token pair
type Relationships struct {
	Dex        Relationship `json:"dex"`
	BaseToken  Relationship `json:"base_token"`
	QuoteToken Relationship `json:"quote_token"`
}

type Relationship struct {
	Data ResourceRef `json:"data"`
}

type ResourceRef struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Candle is one OHLCV bucket, serialized as the flat array
// [timestamp, open, high, low, close, volume]
type Candle struct {
	Timestamp int64
	Open      string
	High      string
	Low       string
	Close     string
	Volume    string
}

func (c Candle) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{c.Timestamp, c.Open, c.High, c.Low, c.Close, c.Volume})
}

// OHLCVResponse wraps a pool's candle list
type OHLCVResponse struct {
	Data OHLCVData `json:"data"`
	Meta OHLCVMeta `json:"meta"`
}

type OHLCVData struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Attributes OHLCVAttributes `json:"attributes"`
}

type OHLCVAttributes struct {
	OHLCVList []Candle `json:"ohlcv_list"`
	Timeframe string   `json:"timeframe"`
}

type OHLCVMeta struct {
	Timeframe string `json:"timeframe"`
	Limit     int    `json:"limit"`
	Count     int    `json:"count"`
}

// Trade is one transfer-derived trade record. Fields the raw transfer
// does not carry (prices, counterpart addresses) are emitted as
// zero-value placeholders.
type Trade struct {
	BlockNumber         int64  `json:"block_number"`
	TxHash              string `json:"tx_hash"`
	TxFromAddress       string `json:"tx_from_address"`
	BlockTimestamp      string `json:"block_timestamp"`
	Kind                string `json:"kind"`
	VolumeInUSD         string `json:"volume_in_usd"`
	VolumeInToken       string `json:"volume_in_token"`
	PriceFromInUSD      string `json:"price_from_in_usd"`
	PriceToInUSD        string `json:"price_to_in_usd"`
	PriceFromInCurrency string `json:"price_from_in_currency"`
	PriceToInCurrency   string `json:"price_to_in_currency"`
	FromTokenAddress    string `json:"from_token_address"`
	ToTokenAddress      string `json:"to_token_address"`
}

// TradesResponse wraps a pool's trade list
type TradesResponse struct {
	Data  []Trade    `json:"data"`
	Meta  TradesMeta `json:"meta"`
	Error string     `json:"error,omitempty"`
}

type TradesMeta struct {
	PoolAddress string `json:"pool_address"`
	NetworkID   string `json:"network_id"`
	Limit       int    `json:"limit"`
	Count       int    `json:"count"`
}

// TrendingResponse wraps the volume-ranked pool list
type TrendingResponse struct {
	Data  []Pool       `json:"data"`
	Meta  TrendingMeta `json:"meta"`
	Error string       `json:"error,omitempty"`
}

type TrendingMeta struct {
	NetworkID string `json:"network_id"`
	Limit     int    `json:"limit"`
	Count     int    `json:"count"`
}
