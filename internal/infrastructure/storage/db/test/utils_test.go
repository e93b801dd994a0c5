package db_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thanhpk/randstr"

	"github.com/galleria-network/galleria-daemon/internal/core/domain"
	"github.com/galleria-network/galleria-daemon/internal/core/ports"
	dbbadger "github.com/galleria-network/galleria-daemon/internal/infrastructure/storage/db/badger"
	"github.com/galleria-network/galleria-daemon/internal/infrastructure/storage/db/inmemory"
)

type repoManager struct {
	Name    string
	Manager ports.RepoManager
}

func createRepoManagers(t *testing.T) []repoManager {
	inmemoryManager := inmemory.NewRepoManager()
	badgerManager, err := dbbadger.NewRepoManager("", nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		inmemoryManager.Close()
		badgerManager.Close()
	})

	return []repoManager{
		{Name: "badger", Manager: badgerManager},
		{Name: "inmemory", Manager: inmemoryManager},
	}
}

func makeRandomListing() *domain.Listing {
	listing, _ := domain.NewListing(
		randomIdentity(), randstr.Hex(8), 1000,
		randomAssetID(), randomAssetID(), 0, 0, false,
	)
	return listing
}

func makeRandomConfig() domain.Config {
	config, _ := domain.NewConfig(randomIdentity(), 500)
	return *config
}

func keyOf(listing *domain.Listing) domain.ListingKey {
	return domain.ListingKey{
		Seller: listing.Seller, ListingID: listing.ListingID,
	}
}

func randomIdentity() domain.Identity {
	var id domain.Identity
	copy(id[:], randomBytes(32))
	return id
}

func randomAssetID() domain.AssetID {
	var asset domain.AssetID
	copy(asset[:], randomBytes(32))
	return asset
}

func randomBytes(len int) []byte {
	b := make([]byte, len)
	//nolint
	rand.Read(b)
	return b
}
