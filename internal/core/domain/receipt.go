package domain

import (
	"context"

	"github.com/google/uuid"
)

// Receipt kinds.
const (
	ReceiptKindSale    = "sale"
	ReceiptKindAuction = "auction"
	ReceiptKindCancel  = "cancel"
)

// Receipt is the record of one terminal listing event: a fixed-price sale,
// an auction settlement or a seller cancellation.
type Receipt struct {
	Id        string
	Kind      string
	Seller    Identity
	ListingID string
	AssetID   AssetID
	Buyer     *Identity
	Amount    uint64
	OwnerCut  uint64
	Proceeds  uint64
	SettledAt int64
}

// NewSaleReceipt returns the receipt of a settlement in favor of buyer.
func NewSaleReceipt(
	kind string, listing Listing, buyer Identity,
	amount, ownerCut, proceeds uint64, now int64,
) Receipt {
	return Receipt{
		Id:        uuid.New().String(),
		Kind:      kind,
		Seller:    listing.Seller,
		ListingID: listing.ListingID,
		AssetID:   listing.AssetID,
		Buyer:     &buyer,
		Amount:    amount,
		OwnerCut:  ownerCut,
		Proceeds:  proceeds,
		SettledAt: now,
	}
}

// NewCancelReceipt returns the receipt of a seller reclaim.
func NewCancelReceipt(listing Listing, now int64) Receipt {
	return Receipt{
		Id:        uuid.New().String(),
		Kind:      ReceiptKindCancel,
		Seller:    listing.Seller,
		ListingID: listing.ListingID,
		AssetID:   listing.AssetID,
		SettledAt: now,
	}
}

// ReceiptRepository is the abstraction for any kind of database intended to
// persist Receipts.
type ReceiptRepository interface {
	// AddReceipt stores a new receipt.
	AddReceipt(ctx context.Context, receipt Receipt) error
	// GetReceiptsForListing returns the receipts of the given listing.
	GetReceiptsForListing(ctx context.Context, key ListingKey) ([]Receipt, error)
	// GetAllReceipts returns all the receipts stored in the repository.
	GetAllReceipts(ctx context.Context) ([]Receipt, error)
}
