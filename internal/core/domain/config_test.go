package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galleria-network/galleria-daemon/internal/core/domain"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	owner := testIdentity(0x0f)

	c, err := domain.NewConfig(owner, 500)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.Equal(t, owner, c.Owner)
	require.Equal(t, uint16(500), c.OwnerCutBps)
	require.True(t, c.Initialized)
}

func TestFailingNewConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		ownerCutBps   uint16
		expectedError error
	}{
		{
			name:          "cut_at_upper_bound",
			ownerCutBps:   domain.MaxOwnerCutBps,
			expectedError: domain.ErrInvalidOwnerCut,
		},
		{
			name:          "cut_above_upper_bound",
			ownerCutBps:   domain.MaxOwnerCutBps + 1,
			expectedError: domain.ErrInvalidOwnerCut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewConfig(testIdentity(0x0f), tt.ownerCutBps)
			require.EqualError(t, err, tt.expectedError.Error())
		})
	}
}
