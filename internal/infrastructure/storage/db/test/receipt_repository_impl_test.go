package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/galleria-network/galleria-daemon/internal/core/domain"
)

func TestReceiptRepositoryImplementations(t *testing.T) {
	repoManagers := createRepoManagers(t)

	for i := range repoManagers {
		manager := repoManagers[i]

		t.Run(manager.Name, func(t *testing.T) {
			repo := manager.Manager.ReceiptRepository()
			ctx := context.Background()
			now := time.Now().Unix()

			sold := makeRandomListing()
			canceled := makeRandomListing()
			buyer := randomIdentity()

			saleReceipt := domain.NewSaleReceipt(
				domain.ReceiptKindSale, *sold, buyer, 1000, 50, 950, now,
			)
			cancelReceipt := domain.NewCancelReceipt(*canceled, now)

			require.NoError(t, repo.AddReceipt(ctx, saleReceipt))
			require.NoError(t, repo.AddReceipt(ctx, cancelReceipt))

			all, err := repo.GetAllReceipts(ctx)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(all), 2)

			forSold, err := repo.GetReceiptsForListing(ctx, keyOf(sold))
			require.NoError(t, err)
			require.Len(t, forSold, 1)
			require.Equal(t, domain.ReceiptKindSale, forSold[0].Kind)
			require.Equal(t, buyer, *forSold[0].Buyer)
			require.Equal(t, uint64(1000), forSold[0].Amount)
			require.Equal(t, uint64(50), forSold[0].OwnerCut)
			require.Equal(t, uint64(950), forSold[0].Proceeds)

			forCanceled, err := repo.GetReceiptsForListing(ctx, keyOf(canceled))
			require.NoError(t, err)
			require.Len(t, forCanceled, 1)
			require.Equal(t, domain.ReceiptKindCancel, forCanceled[0].Kind)
			require.Nil(t, forCanceled[0].Buyer)

			missing, err := repo.GetReceiptsForListing(
				ctx, keyOf(makeRandomListing()),
			)
			require.NoError(t, err)
			require.Len(t, missing, 0)
		})
	}
}
