package pools

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"
)

// Trending ranks pools descending by 24h volume and truncates to limit.
// The sort is stable: baskets with equal volume keep their enumeration
// order. Ranking always sorts the full set; volumes are not pre-ordered,
// so a partial top-k would be wrong.
func (s *Service) Trending(ctx context.Context, limit int) ([]Pool, error) {
	pools, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(pools, func(i, j int) bool {
		return volume24h(pools[i]).GreaterThan(volume24h(pools[j]))
	})

	if len(pools) > limit {
		pools = pools[:limit]
	}
	return pools, nil
}

// volume24h reads a pool's 24h volume for ranking. Degraded pools and
// unparseable figures rank as zero.
func volume24h(pool Pool) decimal.Decimal {
	if pool.Attributes == nil {
		return decimal.Zero
	}
	volume, err := decimal.NewFromString(pool.Attributes.VolumeUSD.H24)
	if err != nil {
		return decimal.Zero
	}
	return volume
}
