package core

import (
	"context"
	"log"
	"os"

	"github.com/verus-stats/market-api/api"
	"github.com/verus-stats/market-api/cache"
	"github.com/verus-stats/market-api/chainmon"
	"github.com/verus-stats/market-api/config"
	"github.com/verus-stats/market-api/dexes"
	"github.com/verus-stats/market-api/networks"
	"github.com/verus-stats/market-api/pools"
	"github.com/verus-stats/market-api/verusrpc"
)

// Setup creates and registers all services
func Setup(ctx context.Context, cfg *config.Config) (*Registry, error) {
	registry := NewRegistry()

	// Create the daemon client and primitive source
	rpcClient := verusrpc.NewClient(cfg.RPC)
	source := verusrpc.NewSource(rpcClient)

	// Create Cache service
	cacheService := cache.NewService(cfg.Cache)
	registry.Register(cacheService)

	// Create the chain monitor and flush cached responses whenever the
	// tip advances, so nothing is served from a superseded snapshot
	monitor := chainmon.NewMonitor(cfg, source)
	registry.Register(monitor)

	monitor.SubscribeTipAdvanced().Watch(ctx, func() {
		log.Println("Core: chain tip advanced, flushing response cache")
		cacheService.Flush()
	}, false)

	// Resource services are plain dependencies of the server, they have
	// no background work of their own
	networksService := networks.NewService(cfg, source)
	dexesService := dexes.NewService(cfg, source)
	poolsService := pools.NewService(cfg, source)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Create HTTP server and register it as a core
	server := api.New(port, cfg, networksService, dexesService, poolsService, cacheService, monitor)
	registry.Register(server)

	return registry, nil
}
