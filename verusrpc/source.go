package verusrpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/verus-stats/market-api/interfaces"
)

// Source adapts the daemon client to the PrimitiveSource contract the
// aggregation services consume.
type Source struct {
	client *Client
}

var _ interfaces.PrimitiveSource = (*Source)(nil)

// NewSource wraps a daemon client as a PrimitiveSource
func NewSource(client *Client) *Source {
	return &Source{client: client}
}

// ListBaskets enumerates fractional currency converters. Basket ids are
// the fully qualified currency names; addresses are their i-addresses.
func (s *Source) ListBaskets(ctx context.Context) ([]string, []string, error) {
	var converters []converterInfo
	if err := s.client.call(ctx, "getcurrencyconverters", []interface{}{"VRSC"}, &converters); err != nil {
		return nil, nil, fmt.Errorf("listing baskets: %w", err)
	}

	baskets := make([]string, 0, len(converters))
	addresses := make([]string, 0, len(converters))
	for _, conv := range converters {
		if conv.FullyQualifiedName == "" {
			continue
		}
		baskets = append(baskets, conv.FullyQualifiedName)
		addresses = append(addresses, conv.CurrencyID)
	}
	return baskets, addresses, nil
}

// ConverterState fetches a basket's supply and primary reserve balance.
// A currency that does not exist, or exists but is not a converter, maps
// to interfaces.ErrNotFound.
func (s *Source) ConverterState(ctx context.Context, basketID string) (*interfaces.ConverterState, error) {
	def, err := s.getCurrency(ctx, basketID)
	if err != nil {
		return nil, err
	}
	if def.BestCurrencyState == nil || len(def.BestCurrencyState.ReserveCurrencies) == 0 {
		return nil, interfaces.ErrNotFound
	}

	supply, err := decimal.NewFromString(def.BestCurrencyState.Supply.String())
	if err != nil {
		return nil, fmt.Errorf("parsing supply for %s: %w", basketID, err)
	}
	reserves, err := decimal.NewFromString(def.BestCurrencyState.ReserveCurrencies[0].Reserves.String())
	if err != nil {
		return nil, fmt.Errorf("parsing reserves for %s: %w", basketID, err)
	}

	return &interfaces.ConverterState{
		CurrencyID: def.CurrencyID,
		Supply:     supply,
		Reserves:   reserves,
	}, nil
}

// ResolveTicker resolves a currency id to its display name
func (s *Source) ResolveTicker(ctx context.Context, currencyID string) (string, error) {
	def, err := s.getCurrency(ctx, currencyID)
	if err != nil {
		return "", err
	}
	if def.Name != "" {
		return def.Name, nil
	}
	if def.FullyQualifiedName != "" {
		return def.FullyQualifiedName, nil
	}
	return "", interfaces.ErrNotFound
}

// CurrentBlockHeight returns the daemon's chain tip
func (s *Source) CurrentBlockHeight(ctx context.Context) (int64, error) {
	var height int64
	if err := s.client.call(ctx, "getblockcount", nil, &height); err != nil {
		return 0, fmt.Errorf("fetching block height: %w", err)
	}
	return height, nil
}

// VolumeWindow returns conversion volume figures for a basket over the
// given block range, quoted in quoteCurrency.
func (s *Source) VolumeWindow(ctx context.Context, basketID string, fromBlock, toBlock, windowSize int64, quoteCurrency string) ([]interfaces.VolumePoint, error) {
	rangeSpec := fmt.Sprintf("%d,%d,%d", fromBlock, toBlock, windowSize)
	var entries []currencyStateEntry
	if err := s.client.call(ctx, "getcurrencystate", []interface{}{basketID, rangeSpec, quoteCurrency}, &entries); err != nil {
		return nil, fmt.Errorf("fetching volume window for %s: %w", basketID, err)
	}

	points := make([]interfaces.VolumePoint, 0, len(entries))
	for _, entry := range entries {
		volume, err := decimal.NewFromString(entry.ConversionData.VolumeThisInterval.String())
		if err != nil {
			// An interval without conversion data contributes nothing
			continue
		}
		points = append(points, interfaces.VolumePoint{Volume: volume})
	}
	return points, nil
}

// Transfers returns raw address deltas for an address over a block range
func (s *Source) Transfers(ctx context.Context, address string, fromBlock, toBlock int64) ([]interfaces.Transfer, error) {
	query := addressDeltaQuery{
		Addresses: []string{address},
		Start:     fromBlock,
		End:       toBlock,
	}
	var deltas []addressDelta
	if err := s.client.call(ctx, "getaddressdeltas", []interface{}{query}, &deltas); err != nil {
		return nil, fmt.Errorf("fetching transfers for %s: %w", address, err)
	}

	transfers := make([]interfaces.Transfer, 0, len(deltas))
	for _, delta := range deltas {
		transfers = append(transfers, interfaces.Transfer{
			Height:  delta.Height,
			TxID:    delta.TxID,
			Address: delta.Address,
			// Satoshis to coins without a float round-trip
			Amount: decimal.New(delta.Satoshis, -8),
		})
	}
	return transfers, nil
}

func (s *Source) getCurrency(ctx context.Context, currencyID string) (*currencyDefinition, error) {
	var def currencyDefinition
	if err := s.client.call(ctx, "getcurrency", []interface{}{currencyID}, &def); err != nil {
		var rpcErr *RPCError
		if errors.As(err, &rpcErr) && isNotFoundCode(rpcErr.Code) {
			return nil, interfaces.ErrNotFound
		}
		return nil, err
	}
	return &def, nil
}
