package pools

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/verus-stats/market-api/config"
	"github.com/verus-stats/market-api/interfaces"
	mock_interfaces "github.com/verus-stats/market-api/interfaces/mocks"
)

func TestTrades(t *testing.T) {
	source := mock_interfaces.NewMockPrimitiveSource(gomock.NewController(t))
	svc := NewService(config.DefaultConfig(), source)

	source.EXPECT().CurrentBlockHeight(gomock.Any()).Return(int64(2918245), nil)
	source.EXPECT().Transfers(gomock.Any(), "Bridge.vETH", int64(2918245-1440), int64(2918245)).
		Return([]interfaces.Transfer{
			{Height: 2918240, TxID: "aa11", Address: "RAddr1", Amount: decimal.RequireFromString("12.5")},
			{Height: 2918200, TxID: "bb22", Address: "RAddr2", Amount: decimal.RequireFromString("0.75")},
		}, nil)

	resp, err := svc.Trades(context.Background(), "verus", "Bridge.vETH", 100)
	require.NoError(t, err)
	require.Len(t, resp.Data, 2)

	trade := resp.Data[0]
	assert.Equal(t, int64(2918240), trade.BlockNumber)
	assert.Equal(t, "aa11", trade.TxHash)
	assert.Equal(t, "RAddr1", trade.TxFromAddress)
	assert.Equal(t, "swap", trade.Kind)
	assert.Equal(t, "12.5", trade.VolumeInToken)
	assert.Equal(t, "0", trade.VolumeInUSD)
	assert.NotEmpty(t, trade.BlockTimestamp)

	assert.Equal(t, "Bridge.vETH", resp.Meta.PoolAddress)
	assert.Equal(t, "verus", resp.Meta.NetworkID)
	assert.Equal(t, 100, resp.Meta.Limit)
	assert.Equal(t, 2, resp.Meta.Count)
}

func TestTrades_TruncatesToLimit(t *testing.T) {
	source := mock_interfaces.NewMockPrimitiveSource(gomock.NewController(t))
	svc := NewService(config.DefaultConfig(), source)

	transfers := make([]interfaces.Transfer, 10)
	for i := range transfers {
		transfers[i] = interfaces.Transfer{Height: int64(100 + i), TxID: "tx", Amount: decimal.NewFromInt(1)}
	}

	source.EXPECT().CurrentBlockHeight(gomock.Any()).Return(int64(100000), nil)
	source.EXPECT().Transfers(gomock.Any(), "Bridge.vETH", gomock.Any(), gomock.Any()).Return(transfers, nil)

	resp, err := svc.Trades(context.Background(), "verus", "Bridge.vETH", 3)
	require.NoError(t, err)
	assert.Len(t, resp.Data, 3)
	assert.Equal(t, 3, resp.Meta.Count)
}

func TestTrades_UnmappableTransfersDroppedSilently(t *testing.T) {
	source := mock_interfaces.NewMockPrimitiveSource(gomock.NewController(t))
	svc := NewService(config.DefaultConfig(), source)

	source.EXPECT().CurrentBlockHeight(gomock.Any()).Return(int64(100000), nil)
	source.EXPECT().Transfers(gomock.Any(), "Bridge.vETH", gomock.Any(), gomock.Any()).
		Return([]interfaces.Transfer{
			{Height: 99990, TxID: "", Amount: decimal.NewFromInt(5)},
			{Height: 99980, TxID: "cc33", Amount: decimal.NewFromInt(2)},
		}, nil)

	resp, err := svc.Trades(context.Background(), "verus", "Bridge.vETH", 100)
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "cc33", resp.Data[0].TxHash)
	assert.Equal(t, 1, resp.Meta.Count)
}

func TestTrades_TransferFailurePropagates(t *testing.T) {
	source := mock_interfaces.NewMockPrimitiveSource(gomock.NewController(t))
	svc := NewService(config.DefaultConfig(), source)

	source.EXPECT().CurrentBlockHeight(gomock.Any()).Return(int64(100000), nil)
	source.EXPECT().Transfers(gomock.Any(), "Bridge.vETH", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("getaddressdeltas failed"))

	resp, err := svc.Trades(context.Background(), "verus", "Bridge.vETH", 100)
	assert.ErrorContains(t, err, "getaddressdeltas failed")
	assert.Empty(t, resp.Data)
}
