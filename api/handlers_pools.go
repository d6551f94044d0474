package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/verus-stats/market-api/interfaces"
	"github.com/verus-stats/market-api/pagination"
	"github.com/verus-stats/market-api/pools"
)

const (
	trendingDefaultLimit = 50
	trendingMaxLimit     = 100
	windowDefaultLimit   = 100
	windowMaxLimit       = 1000
)

// networkParam reads the optional network query parameter, rejecting
// unsupported networks with a 404 before any computation
func (s *Server) networkParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	networkID := r.URL.Query().Get("network")
	if networkID == "" {
		networkID = "verus"
	}
	if !s.cfg.IsSupportedNetwork(networkID) {
		s.sendError(w, http.StatusNotFound, "Network not found")
		return "", false
	}
	return networkID, true
}

func (s *Server) handlePoolsList(w http.ResponseWriter, r *http.Request) {
	networkID, ok := s.networkParam(w, r)
	if !ok {
		return
	}
	page, perPage, ok := s.pageParams(w, r)
	if !ok {
		return
	}

	key := fmt.Sprintf("pools:%s:%d:%d", networkID, page, perPage)
	err := s.cached(w, "pools", key, s.cfg.Cache.PoolsTTL, func() (interface{}, error) {
		list, err := s.poolsService.List(r.Context())
		if err != nil {
			return nil, err
		}
		return pagination.Paginate(list, page, perPage), nil
	})
	if err != nil {
		s.sendJSONResponse(w, pagination.Degraded[pools.Pool](page, perPage, err))
	}
}

func (s *Server) handleTrendingPools(w http.ResponseWriter, r *http.Request) {
	networkID, ok := s.networkParam(w, r)
	if !ok {
		return
	}
	limit, ok := s.limitParam(w, r, trendingDefaultLimit, trendingMaxLimit)
	if !ok {
		return
	}

	key := fmt.Sprintf("trending:%s:%d", networkID, limit)
	err := s.cached(w, "trending", key, s.cfg.Cache.PoolsTTL, func() (interface{}, error) {
		ranked, err := s.poolsService.Trending(r.Context(), limit)
		if err != nil {
			return nil, err
		}
		return pools.TrendingResponse{
			Data: ranked,
			Meta: pools.TrendingMeta{NetworkID: networkID, Limit: limit, Count: len(ranked)},
		}, nil
	})
	if err != nil {
		s.sendJSONResponse(w, pools.TrendingResponse{
			Data:  []pools.Pool{},
			Meta:  pools.TrendingMeta{NetworkID: networkID, Limit: limit},
			Error: err.Error(),
		})
	}
}

func (s *Server) handlePoolByAddress(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	networkID := vars["network_id"]
	poolAddress := vars["pool_address"]

	if !s.cfg.IsSupportedNetwork(networkID) {
		s.sendError(w, http.StatusNotFound, "Network not found")
		return
	}

	key := fmt.Sprintf("pool:%s:%s", networkID, poolAddress)
	err := s.cached(w, "pool", key, s.cfg.Cache.PoolsTTL, func() (interface{}, error) {
		pool, err := s.poolsService.Synthesize(r.Context(), poolAddress)
		if err != nil {
			return nil, err
		}
		return map[string]*pools.Pool{"data": pool}, nil
	})
	if errors.Is(err, interfaces.ErrNotFound) {
		s.sendError(w, http.StatusNotFound, "Pool not found")
	} else if err != nil {
		s.sendError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handlePoolOHLCV(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	networkID := vars["network_id"]
	poolAddress := vars["pool_address"]

	if !s.cfg.IsSupportedNetwork(networkID) {
		s.sendError(w, http.StatusNotFound, "Network not found")
		return
	}
	limit, ok := s.limitParam(w, r, windowDefaultLimit, windowMaxLimit)
	if !ok {
		return
	}

	timeframe := r.URL.Query().Get("timeframe")
	if timeframe == "" {
		timeframe = "day"
	}
	before := timestampParam(r, "before_timestamp")
	after := timestampParam(r, "after_timestamp")

	key := fmt.Sprintf("ohlcv:%s:%s:%s:%d:%d:%d", networkID, poolAddress, timeframe, limit, before, after)
	err := s.cached(w, "ohlcv", key, s.cfg.Cache.OHLCVTTL, func() (interface{}, error) {
		return s.poolsService.OHLCV(poolAddress, timeframe, limit, before, after), nil
	})
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handlePoolTrades(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	networkID := vars["network_id"]
	poolAddress := vars["pool_address"]

	if !s.cfg.IsSupportedNetwork(networkID) {
		s.sendError(w, http.StatusNotFound, "Network not found")
		return
	}
	limit, ok := s.limitParam(w, r, windowDefaultLimit, windowMaxLimit)
	if !ok {
		return
	}

	key := fmt.Sprintf("trades:%s:%s:%d", networkID, poolAddress, limit)
	err := s.cached(w, "trades", key, s.cfg.Cache.TradesTTL, func() (interface{}, error) {
		resp, err := s.poolsService.Trades(r.Context(), networkID, poolAddress, limit)
		if err != nil {
			return nil, err
		}
		return resp, nil
	})
	if err != nil {
		s.sendJSONResponse(w, pools.TradesResponse{
			Data:  []pools.Trade{},
			Meta:  pools.TradesMeta{PoolAddress: poolAddress, NetworkID: networkID, Limit: limit},
			Error: err.Error(),
		})
	}
}
