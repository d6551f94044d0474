package dexes

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/verus-stats/market-api/config"
	"github.com/verus-stats/market-api/interfaces"
	"github.com/verus-stats/market-api/metrics"
)

// Service builds DEX resources: the DEX list, aggregate statistics and
// synthesized trading pairs. Aggregation is strict for Stats and
// lenient for List, matching the two degradation tiers.
type Service struct {
	cfg    *config.Config
	source interfaces.PrimitiveSource
}

// NewService creates the dexes service
func NewService(cfg *config.Config, source interfaces.PrimitiveSource) *Service {
	return &Service{cfg: cfg, source: source}
}

// List returns all configured DEXes with computed 24h volume and pair
// counts. A failed computation degrades that entry only.
func (s *Service) List(ctx context.Context) []DexInfo {
	defer metrics.RecordResourceBuild("dex", time.Now())

	out := make([]DexInfo, 0, len(s.cfg.Dexes))
	for _, dc := range s.cfg.Dexes {
		out = append(out, s.buildInfo(ctx, dc))
	}
	return out
}

// ByID returns one DEX, or nil when the id is unsupported
func (s *Service) ByID(ctx context.Context, dexID string) *DexInfo {
	if s.cfg.DexByID(dexID) == nil {
		return nil
	}
	for _, info := range s.List(ctx) {
		if info.ID == dexID {
			return &info
		}
	}
	return nil
}

func (s *Service) buildInfo(ctx context.Context, dc config.Dex) DexInfo {
	info := DexInfo{
		ID:                 dc.ID,
		Name:               dc.Name,
		Identifier:         dc.Identifier,
		Volume24hUSD:       "0",
		OpenInterest24hUSD: "0",
		Website:            dc.Website,
	}

	baskets, _, err := s.source.ListBaskets(ctx)
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.NumberOfPairs = len(baskets) * len(s.cfg.BaseCurrencies)
	info.Volume24hUSD = s.lenientVolume24h(ctx, baskets).String()
	return info
}

// lenientVolume24h sums 24h volumes across baskets, treating any
// basket's failure as a zero contribution. Only the list entry uses
// this; Stats refuses partial sums.
func (s *Service) lenientVolume24h(ctx context.Context, baskets []string) decimal.Decimal {
	height, err := s.source.CurrentBlockHeight(ctx)
	if err != nil {
		return decimal.Zero
	}

	window := s.cfg.Chain.VolumeWindowBlocks
	total := decimal.Zero
	for _, basketID := range baskets {
		points, err := s.source.VolumeWindow(ctx, basketID, height-window, height, window, s.cfg.QuoteCurrency)
		if err != nil {
			log.Printf("Dexes: volume lookup for %s failed, counting as zero: %v", basketID, err)
			continue
		}
		for _, point := range points {
			total = total.Add(point.Volume)
		}
	}
	return total
}

// Stats aggregates over all baskets with decimal accumulation. Any
// sub-computation failure collapses the whole summary to StatsError.
// Callers validate the dex id before calling.
func (s *Service) Stats(ctx context.Context, dexID string) interface{} {
	defer metrics.RecordResourceBuild("dex_stats", time.Now())

	baskets, _, err := s.source.ListBaskets(ctx)
	if err != nil {
		return statsError(err)
	}

	height, err := s.source.CurrentBlockHeight(ctx)
	if err != nil {
		return statsError(err)
	}

	window := s.cfg.Chain.VolumeWindowBlocks
	volume24h := decimal.Zero
	liquidity := decimal.Zero

	for _, basketID := range baskets {
		points, err := s.source.VolumeWindow(ctx, basketID, height-window, height, window, s.cfg.QuoteCurrency)
		if err != nil {
			return statsError(fmt.Errorf("volume for %s: %w", basketID, err))
		}
		for _, point := range points {
			volume24h = volume24h.Add(point.Volume)
		}

		state, err := s.source.ConverterState(ctx, basketID)
		if err != nil {
			return statsError(fmt.Errorf("liquidity for %s: %w", basketID, err))
		}
		liquidity = liquidity.Add(state.Reserves)
	}

	// 7d is a linear extrapolation of 24h, no multi-day source exists
	return Stats{
		TotalBaskets:      len(baskets),
		TotalPairs:        len(baskets) * len(s.cfg.BaseCurrencies),
		Volume24hUSD:      volume24h.String(),
		Volume7dUSD:       volume24h.Mul(decimal.NewFromInt(7)).String(),
		TotalLiquidityUSD: liquidity.String(),
		Fees24hUSD:        "0",
		CurrentBlock:      height,
		LastUpdated:       time.Now().Unix(),
	}
}

// Pairs expands every basket against the configured base currencies. A
// basket whose ticker cannot be resolved contributes no pairs at all,
// never a partial set.
func (s *Service) Pairs(ctx context.Context, dexID string) ([]Pair, error) {
	defer metrics.RecordResourceBuild("pair", time.Now())

	baskets, _, err := s.source.ListBaskets(ctx)
	if err != nil {
		return nil, err
	}

	pairs := make([]Pair, 0, len(baskets)*len(s.cfg.BaseCurrencies))
	for _, basketID := range baskets {
		ticker, err := s.source.ResolveTicker(ctx, basketID)
		if err != nil {
			continue
		}
		now := time.Now().Unix()
		for _, base := range s.cfg.BaseCurrencies {
			pairs = append(pairs, Pair{
				ID:          ticker + "_" + base,
				BaseToken:   ticker,
				QuoteToken:  base,
				DexID:       dexID,
				PoolAddress: basketID,
				LastUpdated: now,
			})
		}
	}
	return pairs, nil
}

func statsError(err error) StatsError {
	return StatsError{Error: err.Error(), LastUpdated: time.Now().Unix()}
}
