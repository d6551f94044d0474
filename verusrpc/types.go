package verusrpc

import "encoding/json"

// Daemon payload shapes. Monetary figures are decoded as json.Number and
// converted to decimals without a float round-trip.

// converterInfo is one entry of a getcurrencyconverters result
type converterInfo struct {
	FullyQualifiedName string `json:"fullyqualifiedname"`
	CurrencyID         string `json:"currencyid"`
}

// reserveCurrency is one reserve of a converter's best currency state
type reserveCurrency struct {
	CurrencyID string      `json:"currencyid"`
	Reserves   json.Number `json:"reserves"`
}

type bestCurrencyState struct {
	Supply            json.Number       `json:"supply"`
	ReserveCurrencies []reserveCurrency `json:"reservecurrencies"`
}

// currencyDefinition is the getcurrency result
type currencyDefinition struct {
	Name               string             `json:"name"`
	FullyQualifiedName string             `json:"fullyqualifiedname"`
	CurrencyID         string             `json:"currencyid"`
	BestCurrencyState  *bestCurrencyState `json:"bestcurrencystate"`
}

// currencyStateEntry is one interval of a getcurrencystate result
type currencyStateEntry struct {
	Height         int64 `json:"height"`
	ConversionData struct {
		VolumeCurrency     string      `json:"volumecurrency"`
		VolumeThisInterval json.Number `json:"volumethisinterval"`
	} `json:"conversiondata"`
}

// addressDelta is one entry of a getaddressdeltas result
type addressDelta struct {
	Satoshis int64  `json:"satoshis"`
	TxID     string `json:"txid"`
	Height   int64  `json:"height"`
	Address  string `json:"address"`
}

type addressDeltaQuery struct {
	Addresses []string `json:"addresses"`
	Start     int64    `json:"start"`
	End       int64    `json:"end"`
}
