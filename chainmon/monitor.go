package chainmon

import (
	"context"
	"log"
	"sync"

	"github.com/verus-stats/market-api/config"
	"github.com/verus-stats/market-api/events"
	"github.com/verus-stats/market-api/interfaces"
	"github.com/verus-stats/market-api/metrics"
	"github.com/verus-stats/market-api/scheduler"
)

// Monitor polls the chain tip on a fixed interval. Each observed tip
// advance is published to subscribers so response caches can drop
// entries computed against the previous block.
type Monitor struct {
	cfg    *config.Config
	source interfaces.PrimitiveSource

	scheduler   *scheduler.Scheduler
	tipAdvanced *events.SubscriptionManager

	mu         sync.RWMutex
	lastHeight int64
	healthy    bool
}

// NewMonitor creates the chain monitor
func NewMonitor(cfg *config.Config, source interfaces.PrimitiveSource) *Monitor {
	m := &Monitor{
		cfg:         cfg,
		source:      source,
		tipAdvanced: events.NewSubscriptionManager(),
	}
	m.scheduler = scheduler.New(cfg.Chain.MonitorInterval, m.poll)
	return m
}

// SubscribeTipAdvanced returns a subscription signalled every time the
// monitor observes a higher block than before
func (m *Monitor) SubscribeTipAdvanced() *events.Subscription {
	return m.tipAdvanced.Subscribe()
}

// LastHeight returns the most recently observed tip, 0 before the
// first successful poll
func (m *Monitor) LastHeight() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastHeight
}

// Healthy reports whether the most recent poll reached the daemon
func (m *Monitor) Healthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy
}

func (m *Monitor) poll(ctx context.Context) {
	height, err := m.source.CurrentBlockHeight(ctx)
	if err != nil {
		log.Printf("Chainmon: tip poll failed: %v", err)
		m.mu.Lock()
		m.healthy = false
		m.mu.Unlock()
		return
	}

	m.mu.Lock()
	advanced := height > m.lastHeight && m.lastHeight != 0
	first := m.lastHeight == 0
	m.lastHeight = height
	m.healthy = true
	m.mu.Unlock()

	metrics.RecordChainHeight(height)

	if advanced {
		log.Printf("Chainmon: tip advanced to %d", height)
		m.tipAdvanced.Emit(ctx)
	} else if first {
		log.Printf("Chainmon: initial tip %d", height)
	}
}

// Start begins polling, with an immediate first poll
func (m *Monitor) Start(ctx context.Context) error {
	m.scheduler.Start(ctx, true)
	return nil
}

// Stop halts polling and waits for an in-flight poll to finish
func (m *Monitor) Stop() {
	m.scheduler.Stop()
}
