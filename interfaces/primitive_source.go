package interfaces

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/primitive_source.go . PrimitiveSource

// ErrNotFound is returned by PrimitiveSource lookups when the requested
// currency/basket does not exist on chain. It is the "hard miss" tier:
// callers map it to 404 semantics instead of a degraded payload.
var ErrNotFound = errors.New("not found")

// ConverterState is the on-chain state of one currency converter (basket).
// Monetary figures stay decimal until the serialization boundary.
type ConverterState struct {
	// CurrencyID is the basket's i-address identifier
	CurrencyID string
	// Supply is the basket currency's circulating supply
	Supply decimal.Decimal
	// Reserves is the primary reserve currency balance (reserves_0)
	Reserves decimal.Decimal
}

// VolumePoint is one entry of a per-basket volume aggregation window
type VolumePoint struct {
	Volume decimal.Decimal
}

// Transfer is a raw on-chain transfer record touching a basket address
type Transfer struct {
	Height int64
	TxID   string
	// Address is the delta's address in transparent form
	Address string
	Amount  decimal.Decimal
}

// PrimitiveSource provides the chain primitives every derived resource is
// computed from. Implementations are read-only snapshots of current chain
// state; two calls are not guaranteed to observe the same block height.
type PrimitiveSource interface {
	// ListBaskets enumerates all currency baskets, returning basket
	// identifiers and their i-addresses
	ListBaskets(ctx context.Context) ([]string, []string, error)

	// ConverterState returns the converter state for a basket, or
	// ErrNotFound when the basket does not exist
	ConverterState(ctx context.Context, basketID string) (*ConverterState, error)

	// ResolveTicker resolves a currency identifier to its display ticker,
	// or ErrNotFound when the currency cannot be resolved
	ResolveTicker(ctx context.Context, currencyID string) (string, error)

	// CurrentBlockHeight returns the chain tip height
	CurrentBlockHeight(ctx context.Context) (int64, error)

	// VolumeWindow returns per-basket volume figures aggregated over the
	// given block range with the given window size, quoted in quoteCurrency
	VolumeWindow(ctx context.Context, basketID string, fromBlock, toBlock, windowSize int64, quoteCurrency string) ([]VolumePoint, error)

	// Transfers returns raw transfer records for an address over a block range
	Transfers(ctx context.Context, address string, fromBlock, toBlock int64) ([]Transfer, error)
}
