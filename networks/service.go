package networks

import (
	"context"
	"time"

	"github.com/verus-stats/market-api/config"
	"github.com/verus-stats/market-api/interfaces"
)

// Service serves the fixed network set and per-network statistics.
// Stateless: every Stats call is a fresh computation over the current
// chain snapshot.
type Service struct {
	cfg    *config.Config
	source interfaces.PrimitiveSource
}

// NewService creates the networks service
func NewService(cfg *config.Config, source interfaces.PrimitiveSource) *Service {
	return &Service{cfg: cfg, source: source}
}

// List returns all supported networks in configuration order
func (s *Service) List() []Network {
	list := make([]Network, 0, len(s.cfg.Networks))
	for _, nc := range s.cfg.Networks {
		list = append(list, toAPINetwork(nc))
	}
	return list
}

// ByID returns one network, or nil when the id is unsupported
func (s *Service) ByID(id string) *Network {
	nc := s.cfg.NetworkByID(id)
	if nc == nil {
		return nil
	}
	network := toAPINetwork(*nc)
	return &network
}

// Stats dispatches on network identity. Each branch catches its own
// failures and degrades to StatsError instead of propagating; an unknown
// id yields an empty object since the caller validates ids beforehand.
func (s *Service) Stats(ctx context.Context, networkID string) interface{} {
	switch networkID {
	case config.NetworkVerus:
		return s.verusStats(ctx)
	case config.NetworkEthereum:
		return s.ethereumStats()
	case config.NetworkBridge:
		return s.bridgeStats(ctx)
	default:
		return struct{}{}
	}
}

func (s *Service) verusStats(ctx context.Context) interface{} {
	height, err := s.source.CurrentBlockHeight(ctx)
	if err != nil {
		return StatsError{Error: err.Error(), LastUpdated: time.Now().Unix()}
	}

	return VerusStats{
		BlockHeight: height,
		HashRate:    "0 H/s",
		Difficulty:  "0",
		LastUpdated: time.Now().Unix(),
	}
}

func (s *Service) ethereumStats() interface{} {
	return EthereumStats{
		BridgeContracts:   []string{},
		TotalBridgeVolume: "0",
		LastUpdated:       time.Now().Unix(),
	}
}

func (s *Service) bridgeStats(ctx context.Context) interface{} {
	baskets, _, err := s.source.ListBaskets(ctx)
	if err != nil {
		return StatsError{Error: err.Error(), LastUpdated: time.Now().Unix()}
	}

	return BridgeStats{
		TotalBaskets:   len(baskets),
		TotalVolume24h: "0",
		TotalTVL:       "0",
		LastUpdated:    time.Now().Unix(),
	}
}

func toAPINetwork(nc config.Network) Network {
	network := Network{
		ID:           nc.ID,
		Name:         nc.Name,
		Shortname:    nc.Shortname,
		NativeCoinID: nc.NativeCoinID,
	}
	if nc.WrappedNativeCoinID != "" {
		wrapped := nc.WrappedNativeCoinID
		network.WrappedNativeCoinID = &wrapped
	}
	if nc.Image != "" {
		image := nc.Image
		network.Image = &image
	}
	return network
}
