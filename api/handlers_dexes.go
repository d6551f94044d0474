package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/verus-stats/market-api/dexes"
	"github.com/verus-stats/market-api/pagination"
)

func (s *Server) handleDexesList(w http.ResponseWriter, r *http.Request) {
	page, perPage, ok := s.pageParams(w, r)
	if !ok {
		return
	}

	key := fmt.Sprintf("dexes:%d:%d", page, perPage)
	err := s.cached(w, "dexes", key, s.cfg.Cache.DexesTTL, func() (interface{}, error) {
		return pagination.Paginate(s.dexesService.List(r.Context()), page, perPage), nil
	})
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleDexByID(w http.ResponseWriter, r *http.Request) {
	dexID := mux.Vars(r)["dex_id"]

	if !s.cfg.IsSupportedDex(dexID) {
		s.sendError(w, http.StatusNotFound, "DEX not found")
		return
	}

	dex := s.dexesService.ByID(r.Context(), dexID)
	if dex == nil {
		s.sendError(w, http.StatusNotFound, "DEX not found")
		return
	}

	s.sendJSONResponse(w, map[string]*dexes.DexInfo{"data": dex})
}

func (s *Server) handleDexStats(w http.ResponseWriter, r *http.Request) {
	dexID := mux.Vars(r)["dex_id"]

	if !s.cfg.IsSupportedDex(dexID) {
		s.sendError(w, http.StatusNotFound, "DEX not found")
		return
	}

	key := "dex_stats:" + dexID
	err := s.cached(w, "dex_stats", key, s.cfg.Cache.DexesTTL, func() (interface{}, error) {
		return map[string]interface{}{"data": s.dexesService.Stats(r.Context(), dexID)}, nil
	})
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleDexPairs(w http.ResponseWriter, r *http.Request) {
	dexID := mux.Vars(r)["dex_id"]

	if !s.cfg.IsSupportedDex(dexID) {
		s.sendError(w, http.StatusNotFound, "DEX not found")
		return
	}

	page, perPage, ok := s.pageParams(w, r)
	if !ok {
		return
	}

	key := fmt.Sprintf("pairs:%s:%d:%d", dexID, page, perPage)
	err := s.cached(w, "pairs", key, s.cfg.Cache.DexesTTL, func() (interface{}, error) {
		list, err := s.dexesService.Pairs(r.Context(), dexID)
		if err != nil {
			return nil, err
		}
		return pagination.Paginate(list, page, perPage), nil
	})
	if err != nil {
		// pair synthesis failed as a whole; serve the degraded envelope uncached
		s.sendJSONResponse(w, pagination.Degraded[dexes.Pair](page, perPage, err))
	}
}
