package pools

import (
	"context"
	"time"

	"github.com/verus-stats/market-api/interfaces"
)

// Trades maps raw transfers touching the pool's basket over the last
// 24h of blocks into trade records, truncated to limit. A transfer that
// cannot be mapped is dropped without failing the list; fields the raw
// transfer does not carry are zero placeholders.
func (s *Service) Trades(ctx context.Context, networkID, poolAddress string, limit int) (TradesResponse, error) {
	meta := TradesMeta{PoolAddress: poolAddress, NetworkID: networkID, Limit: limit}

	height, err := s.source.CurrentBlockHeight(ctx)
	if err != nil {
		return TradesResponse{Data: []Trade{}, Meta: meta}, err
	}

	fromBlock := height - s.cfg.Chain.VolumeWindowBlocks
	transfers, err := s.source.Transfers(ctx, poolAddress, fromBlock, height)
	if err != nil {
		return TradesResponse{Data: []Trade{}, Meta: meta}, err
	}

	if len(transfers) > limit {
		transfers = transfers[:limit]
	}

	trades := make([]Trade, 0, len(transfers))
	for _, transfer := range transfers {
		trade, ok := mapTrade(transfer)
		if !ok {
			continue
		}
		trades = append(trades, trade)
	}

	meta.Count = len(trades)
	return TradesResponse{Data: trades, Meta: meta}, nil
}

func mapTrade(transfer interfaces.Transfer) (Trade, bool) {
	if transfer.TxID == "" {
		return Trade{}, false
	}
	return Trade{
		BlockNumber:         transfer.Height,
		TxHash:              transfer.TxID,
		TxFromAddress:       transfer.Address,
		BlockTimestamp:      time.Now().UTC().Format(time.RFC3339),
		Kind:                "swap",
		VolumeInUSD:         "0",
		VolumeInToken:       transfer.Amount.String(),
		PriceFromInUSD:      "0",
		PriceToInUSD:        "0",
		PriceFromInCurrency: "0",
		PriceToInCurrency:   "0",
	}, true
}
