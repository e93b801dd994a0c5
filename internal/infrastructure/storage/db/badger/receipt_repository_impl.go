package dbbadger

import (
	"context"

	"github.com/timshannon/badgerhold/v4"

	"github.com/galleria-network/galleria-daemon/internal/core/domain"
)

type receiptRepositoryImpl struct {
	store *badgerhold.Store
}

func NewReceiptRepositoryImpl(store *badgerhold.Store) domain.ReceiptRepository {
	return receiptRepositoryImpl{store: store}
}

func (r receiptRepositoryImpl) AddReceipt(
	_ context.Context, receipt domain.Receipt,
) error {
	return r.store.Insert(receipt.Id, receipt)
}

func (r receiptRepositoryImpl) GetReceiptsForListing(
	_ context.Context, key domain.ListingKey,
) ([]domain.Receipt, error) {
	query := badgerhold.
		Where("Seller").Eq(key.Seller).
		And("ListingID").Eq(key.ListingID)

	receipts := make([]domain.Receipt, 0)
	if err := r.store.Find(&receipts, query); err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r receiptRepositoryImpl) GetAllReceipts(
	_ context.Context,
) ([]domain.Receipt, error) {
	receipts := make([]domain.Receipt, 0)
	if err := r.store.Find(&receipts, nil); err != nil {
		return nil, err
	}
	return receipts, nil
}
