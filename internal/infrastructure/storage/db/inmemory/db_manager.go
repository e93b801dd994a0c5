package inmemory

import (
	"github.com/galleria-network/galleria-daemon/internal/core/domain"
	"github.com/galleria-network/galleria-daemon/internal/core/ports"
)

type repoManager struct {
	configRepository  domain.ConfigRepository
	listingRepository domain.ListingRepository
	receiptRepository domain.ReceiptRepository
}

// NewRepoManager returns a volatile, map-backed implementation of
// ports.RepoManager, mainly intended for tests and throwaway deployments.
func NewRepoManager() ports.RepoManager {
	return &repoManager{
		configRepository:  NewConfigRepositoryImpl(),
		listingRepository: NewListingRepositoryImpl(),
		receiptRepository: NewReceiptRepositoryImpl(),
	}
}

func (m *repoManager) ConfigRepository() domain.ConfigRepository {
	return m.configRepository
}

func (m *repoManager) ListingRepository() domain.ListingRepository {
	return m.listingRepository
}

func (m *repoManager) ReceiptRepository() domain.ReceiptRepository {
	return m.receiptRepository
}

func (m *repoManager) Close() {}
