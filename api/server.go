package api

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/verus-stats/market-api/cache"
	"github.com/verus-stats/market-api/chainmon"
	"github.com/verus-stats/market-api/config"
	"github.com/verus-stats/market-api/dexes"
	"github.com/verus-stats/market-api/networks"
	"github.com/verus-stats/market-api/pools"
)

type Server struct {
	port            string
	cfg             *config.Config
	networksService *networks.Service
	dexesService    *dexes.Service
	poolsService    *pools.Service
	cacheService    *cache.Service
	monitor         *chainmon.Monitor
	server          *http.Server
}

func New(port string, cfg *config.Config, networksService *networks.Service, dexesService *dexes.Service, poolsService *pools.Service, cacheService *cache.Service, monitor *chainmon.Monitor) *Server {
	return &Server{
		port:            port,
		cfg:             cfg,
		networksService: networksService,
		dexesService:    dexesService,
		poolsService:    poolsService,
		cacheService:    cacheService,
		monitor:         monitor,
	}
}

func (s *Server) router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/v1/networks", s.handleNetworksList).Methods("GET")
	router.HandleFunc("/api/v1/networks/{network_id}", s.handleNetworkByID).Methods("GET")
	router.HandleFunc("/api/v1/networks/{network_id}/stats", s.handleNetworkStats).Methods("GET")

	router.HandleFunc("/api/v1/dexes", s.handleDexesList).Methods("GET")
	router.HandleFunc("/api/v1/dexes/{dex_id}", s.handleDexByID).Methods("GET")
	router.HandleFunc("/api/v1/dexes/{dex_id}/stats", s.handleDexStats).Methods("GET")
	router.HandleFunc("/api/v1/dexes/{dex_id}/pairs", s.handleDexPairs).Methods("GET")

	// trending must be registered before the variable pool route
	router.HandleFunc("/api/v1/pools", s.handlePoolsList).Methods("GET")
	router.HandleFunc("/api/v1/pools/trending", s.handleTrendingPools).Methods("GET")
	router.HandleFunc("/api/v1/pools/{network_id}/{pool_address}", s.handlePoolByAddress).Methods("GET")
	router.HandleFunc("/api/v1/pools/{network_id}/{pool_address}/ohlcv", s.handlePoolOHLCV).Methods("GET")
	router.HandleFunc("/api/v1/pools/{network_id}/{pool_address}/trades", s.handlePoolTrades).Methods("GET")

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    ":" + s.port,
		Handler: s.router(),
	}

	log.Printf("Server starting at http://localhost:%s", s.port)
	log.Println("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return nil
}
