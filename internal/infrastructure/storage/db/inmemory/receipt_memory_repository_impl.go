package inmemory

import (
	"context"
	"sync"

	"github.com/galleria-network/galleria-daemon/internal/core/domain"
)

type receiptRepositoryImpl struct {
	mtx      sync.RWMutex
	receipts []domain.Receipt
}

func NewReceiptRepositoryImpl() domain.ReceiptRepository {
	return &receiptRepositoryImpl{receipts: make([]domain.Receipt, 0)}
}

func (r *receiptRepositoryImpl) AddReceipt(
	_ context.Context, receipt domain.Receipt,
) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.receipts = append(r.receipts, receipt)
	return nil
}

func (r *receiptRepositoryImpl) GetReceiptsForListing(
	_ context.Context, key domain.ListingKey,
) ([]domain.Receipt, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	receipts := make([]domain.Receipt, 0)
	for _, receipt := range r.receipts {
		if receipt.Seller == key.Seller && receipt.ListingID == key.ListingID {
			receipts = append(receipts, receipt)
		}
	}
	return receipts, nil
}

func (r *receiptRepositoryImpl) GetAllReceipts(
	_ context.Context,
) ([]domain.Receipt, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	receipts := make([]domain.Receipt, len(r.receipts))
	copy(receipts, r.receipts)
	return receipts, nil
}
