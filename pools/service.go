package pools

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/verus-stats/market-api/config"
	"github.com/verus-stats/market-api/interfaces"
	"github.com/verus-stats/market-api/metrics"
)

const resourceType = "pool"

// Service synthesizes pools from chain primitives. Every call recomputes
// from current chain state; callers wanting caching wrap the responses.
type Service struct {
	cfg    *config.Config
	source interfaces.PrimitiveSource
}

// NewService creates the pools service
func NewService(cfg *config.Config, source interfaces.PrimitiveSource) *Service {
	return &Service{cfg: cfg, source: source}
}

// Synthesize builds one pool from its basket. A missing basket returns
// interfaces.ErrNotFound; any other failure degrades to a pool value
// carrying only id, type and the error message.
func (s *Service) Synthesize(ctx context.Context, basketID string) (*Pool, error) {
	defer metrics.RecordResourceBuild(resourceType, time.Now())

	state, err := s.source.ConverterState(ctx, basketID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, err
		}
		return errorPool(basketID, err), nil
	}

	ticker, err := s.source.ResolveTicker(ctx, basketID)
	if err != nil {
		// A basket without a resolvable ticker is still a pool
		ticker = basketID
	}

	height, err := s.source.CurrentBlockHeight(ctx)
	if err != nil {
		return errorPool(basketID, err), nil
	}

	window := s.cfg.Chain.VolumeWindowBlocks
	points, err := s.source.VolumeWindow(ctx, basketID, height-window, height, window, s.cfg.QuoteCurrency)
	if err != nil {
		return errorPool(basketID, err), nil
	}

	volume24h := "0"
	if len(points) > 0 {
		volume24h = points[0].Volume.String()
	}

	return &Pool{
		ID:   basketID,
		Type: resourceType,
		Attributes: &Attributes{
			BaseTokenPriceUSD:            "0",
			QuoteTokenPriceUSD:           "0",
			BaseTokenPriceNativeCurrency: "0",
			QuoteTokenPriceNative:        "0",
			Address:                      basketID,
			Name:                         ticker + " Pool",
			FdvUSD:                       state.Supply.String(),
			PriceChangePercentage:        PeriodValues{H1: "0", H6: "0", H24: "0"},
			Transactions:                 PeriodCounts{},
			VolumeUSD:                    PeriodValues{H1: "0", H6: "0", H24: volume24h},
			ReserveInUSD:                 state.Reserves.String(),
		},
		Relationships: &Relationships{
			Dex:        Relationship{Data: ResourceRef{ID: config.DexVerusBridge, Type: "dex"}},
			BaseToken:  Relationship{Data: ResourceRef{ID: ticker, Type: "token"}},
			QuoteToken: Relationship{Data: ResourceRef{ID: s.cfg.QuoteCurrency, Type: "token"}},
		},
	}, nil
}

// List builds pools for every enumerable basket, preserving enumeration
// order. A single basket's failure degrades that entry only; baskets
// that vanished between enumeration and synthesis are skipped. Only the
// enumeration itself can fail the list as a whole.
func (s *Service) List(ctx context.Context) ([]Pool, error) {
	baskets, _, err := s.source.ListBaskets(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*Pool, len(baskets))

	concurrency := s.cfg.Chain.SynthesisConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)

	var wg sync.WaitGroup
	for i, basketID := range baskets {
		wg.Add(1)
		go func(i int, basketID string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			pool, err := s.Synthesize(ctx, basketID)
			if err != nil {
				log.Printf("Pools: basket %s disappeared during synthesis: %v", basketID, err)
				return
			}
			results[i] = pool
		}(i, basketID)
	}
	wg.Wait()

	pools := make([]Pool, 0, len(results))
	for _, pool := range results {
		if pool != nil {
			pools = append(pools, *pool)
		}
	}

	metrics.RecordPoolCount(len(pools))
	return pools, nil
}

func errorPool(basketID string, err error) *Pool {
	return &Pool{ID: basketID, Type: resourceType, Error: err.Error()}
}
