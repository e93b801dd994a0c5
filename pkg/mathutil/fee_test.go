package mathutil_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galleria-network/galleria-daemon/pkg/mathutil"
)

func TestSplitFee(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		amount           uint64
		cutBps           uint16
		expectedOwnerCut uint64
		expectedProceeds uint64
	}{
		{
			name:             "five_percent",
			amount:           1000,
			cutBps:           500,
			expectedOwnerCut: 50,
			expectedProceeds: 950,
		},
		{
			name:             "zero_cut",
			amount:           1000,
			cutBps:           0,
			expectedOwnerCut: 0,
			expectedProceeds: 1000,
		},
		{
			name:             "rounds_down",
			amount:           999,
			cutBps:           500,
			expectedOwnerCut: 49,
			expectedProceeds: 950,
		},
		{
			name:             "cut_below_one_unit",
			amount:           1,
			cutBps:           9999,
			expectedOwnerCut: 0,
			expectedProceeds: 1,
		},
		{
			name:             "max_cut",
			amount:           1000,
			cutBps:           9999,
			expectedOwnerCut: 999,
			expectedProceeds: 1,
		},
		{
			name:             "zero_amount",
			amount:           0,
			cutBps:           500,
			expectedOwnerCut: 0,
			expectedProceeds: 0,
		},
		{
			name:             "max_amount",
			amount:           math.MaxUint64,
			cutBps:           500,
			expectedOwnerCut: 922337203685477580,
			expectedProceeds: math.MaxUint64 - 922337203685477580,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ownerCut, proceeds := mathutil.SplitFee(tt.amount, tt.cutBps)
			require.Equal(t, tt.expectedOwnerCut, ownerCut)
			require.Equal(t, tt.expectedProceeds, proceeds)
			require.Equal(t, tt.amount, ownerCut+proceeds)
		})
	}
}

func TestSatSub(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint64(5), mathutil.SatSub(10, 5))
	require.Equal(t, uint64(0), mathutil.SatSub(5, 10))
	require.Equal(t, uint64(0), mathutil.SatSub(0, 0))
}
