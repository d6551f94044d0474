package networks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/verus-stats/market-api/config"
	mock_interfaces "github.com/verus-stats/market-api/interfaces/mocks"
)

func newTestService(t *testing.T) (*Service, *mock_interfaces.MockPrimitiveSource) {
	t.Helper()
	source := mock_interfaces.NewMockPrimitiveSource(gomock.NewController(t))
	return NewService(config.DefaultConfig(), source), source
}

func TestList(t *testing.T) {
	svc, _ := newTestService(t)

	list := svc.List()
	require.Len(t, list, 3)
	assert.Equal(t, "verus", list[0].ID)
	assert.Equal(t, "ethereum", list[1].ID)
	assert.Equal(t, "verus-bridge", list[2].ID)

	// Verus has no wrapped native coin, Ethereum does
	assert.Nil(t, list[0].WrappedNativeCoinID)
	require.NotNil(t, list[1].WrappedNativeCoinID)
	assert.Equal(t, "weth", *list[1].WrappedNativeCoinID)
}

func TestByID(t *testing.T) {
	svc, _ := newTestService(t)

	network := svc.ByID("verus")
	require.NotNil(t, network)
	assert.Equal(t, "VRSC", network.Shortname)

	assert.Nil(t, svc.ByID("solana"))
}

func TestStats_Verus(t *testing.T) {
	svc, source := newTestService(t)
	source.EXPECT().CurrentBlockHeight(gomock.Any()).Return(int64(2918245), nil)

	stats, ok := svc.Stats(context.Background(), "verus").(VerusStats)
	require.True(t, ok)
	assert.Equal(t, int64(2918245), stats.BlockHeight)
	assert.Equal(t, "0 H/s", stats.HashRate)
	assert.NotZero(t, stats.LastUpdated)
}

func TestStats_VerusDegradesOnRPCFailure(t *testing.T) {
	svc, source := newTestService(t)
	source.EXPECT().CurrentBlockHeight(gomock.Any()).Return(int64(0), errors.New("daemon unreachable"))

	degraded, ok := svc.Stats(context.Background(), "verus").(StatsError)
	require.True(t, ok)
	assert.Contains(t, degraded.Error, "daemon unreachable")
	assert.NotZero(t, degraded.LastUpdated)
}

func TestStats_Ethereum(t *testing.T) {
	svc, _ := newTestService(t)

	stats, ok := svc.Stats(context.Background(), "ethereum").(EthereumStats)
	require.True(t, ok)
	assert.Zero(t, stats.BlockHeight)
	assert.NotNil(t, stats.BridgeContracts)
	assert.Empty(t, stats.BridgeContracts)
	assert.Equal(t, "0", stats.TotalBridgeVolume)
}

func TestStats_Bridge(t *testing.T) {
	svc, source := newTestService(t)
	source.EXPECT().ListBaskets(gomock.Any()).
		Return([]string{"Bridge.vETH", "Pure", "Switch"}, []string{"ia", "ib", "ic"}, nil)

	stats, ok := svc.Stats(context.Background(), "verus-bridge").(BridgeStats)
	require.True(t, ok)
	assert.Equal(t, 3, stats.TotalBaskets)
	assert.Equal(t, "0", stats.TotalTVL)
}

func TestStats_BridgeDegradesOnRPCFailure(t *testing.T) {
	svc, source := newTestService(t)
	source.EXPECT().ListBaskets(gomock.Any()).Return(nil, nil, errors.New("timeout"))

	degraded, ok := svc.Stats(context.Background(), "verus-bridge").(StatsError)
	require.True(t, ok)
	assert.Contains(t, degraded.Error, "timeout")
}

func TestStats_UnknownNetworkIsEmpty(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Equal(t, struct{}{}, svc.Stats(context.Background(), "solana"))
}
