package application

import (
	"github.com/galleria-network/galleria-daemon/internal/core/domain"
)

// CreateListingArgs bundles everything needed to put an asset up for sale.
type CreateListingArgs struct {
	Seller       domain.Identity
	ListingID    string
	AssetID      domain.AssetID
	PaymentAsset domain.AssetID
	AskingPrice  uint64
	StartAt      int64
	EndAt        int64
	IsAuction    bool
}

// Key returns the listing key the created record will be addressed by.
func (a CreateListingArgs) Key() domain.ListingKey {
	return domain.ListingKey{Seller: a.Seller, ListingID: a.ListingID}
}
