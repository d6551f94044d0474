package pools

import "time"

// Timeframe intervals in seconds. Unknown timeframes fall back to day.
var timeframeIntervals = map[string]int64{
	"minute": 60,
	"hour":   3600,
	"day":    86400,
}

const defaultTimeframe = "day"

// OHLCV generates up to limit candle buckets walking backward from now
// in steps of the timeframe interval. before/after are exclusive
// timestamp filters applied to each candidate bucket before it counts
// toward limit, so a filtered-out bucket never consumes a slot.
// Candle values are zero placeholders until a price-history source
// exists; the timestamp spacing is the contract.
func (s *Service) OHLCV(poolAddress, timeframe string, limit int, before, after int64) OHLCVResponse {
	interval, ok := timeframeIntervals[timeframe]
	if !ok {
		timeframe = defaultTimeframe
		interval = timeframeIntervals[defaultTimeframe]
	}

	now := time.Now().Unix()
	candles := make([]Candle, 0, limit)

	for ts := now; len(candles) < limit; ts -= interval {
		if after != 0 && ts <= after {
			// every older bucket fails the filter too
			break
		}
		if ts < 0 {
			break
		}
		if before != 0 && ts >= before {
			continue
		}
		candles = append(candles, Candle{
			Timestamp: ts,
			Open:      "0",
			High:      "0",
			Low:       "0",
			Close:     "0",
			Volume:    "0",
		})
	}

	return OHLCVResponse{
		Data: OHLCVData{
			ID:   poolAddress,
			Type: resourceType,
			Attributes: OHLCVAttributes{
				OHLCVList: candles,
				Timeframe: timeframe,
			},
		},
		Meta: OHLCVMeta{
			Timeframe: timeframe,
			Limit:     limit,
			Count:     len(candles),
		},
	}
}
