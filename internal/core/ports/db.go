package ports

import (
	"github.com/galleria-network/galleria-daemon/internal/core/domain"
)

// RepoManager gives access to every repository of the daemon backed by the
// same store.
type RepoManager interface {
	ConfigRepository() domain.ConfigRepository
	ListingRepository() domain.ListingRepository
	ReceiptRepository() domain.ReceiptRepository

	Close()
}
