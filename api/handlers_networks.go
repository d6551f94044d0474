package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/verus-stats/market-api/networks"
	"github.com/verus-stats/market-api/pagination"
)

// handleNetworksList returns the supported networks as a page envelope
func (s *Server) handleNetworksList(w http.ResponseWriter, r *http.Request) {
	page, perPage, ok := s.pageParams(w, r)
	if !ok {
		return
	}

	key := fmt.Sprintf("networks:%d:%d", page, perPage)
	err := s.cached(w, "networks", key, s.cfg.Cache.NetworksTTL, func() (interface{}, error) {
		return pagination.Paginate(s.networksService.List(), page, perPage), nil
	})
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleNetworkByID(w http.ResponseWriter, r *http.Request) {
	networkID := mux.Vars(r)["network_id"]

	network := s.networksService.ByID(networkID)
	if network == nil {
		s.sendError(w, http.StatusNotFound, "Network not found")
		return
	}

	s.sendJSONResponse(w, map[string]*networks.Network{"data": network})
}

func (s *Server) handleNetworkStats(w http.ResponseWriter, r *http.Request) {
	networkID := mux.Vars(r)["network_id"]

	if !s.cfg.IsSupportedNetwork(networkID) {
		s.sendError(w, http.StatusNotFound, "Network not found")
		return
	}

	key := "network_stats:" + networkID
	err := s.cached(w, "network_stats", key, s.cfg.Cache.NetworksTTL, func() (interface{}, error) {
		return map[string]interface{}{"data": s.networksService.Stats(r.Context(), networkID)}, nil
	})
	if err != nil {
		s.sendError(w, http.StatusInternalServerError, err.Error())
	}
}
