package dbbadger

import (
	"context"
	"errors"
	"sync"

	"github.com/timshannon/badgerhold/v4"

	"github.com/galleria-network/galleria-daemon/internal/core/domain"
)

type listingRepositoryImpl struct {
	store *badgerhold.Store

	locksMtx sync.Mutex
	locks    map[domain.ListingKey]*sync.Mutex
}

func NewListingRepositoryImpl(store *badgerhold.Store) domain.ListingRepository {
	return &listingRepositoryImpl{
		store: store,
		locks: map[domain.ListingKey]*sync.Mutex{},
	}
}

func (r *listingRepositoryImpl) AddListing(
	_ context.Context, listing domain.Listing,
) error {
	key := domain.ListingKey{
		Seller: listing.Seller, ListingID: listing.ListingID,
	}

	if err := r.store.Insert(key.String(), listing); err != nil {
		if errors.Is(err, badgerhold.ErrKeyExists) {
			return domain.ErrListingAlreadyExists
		}
		return err
	}
	return nil
}

func (r *listingRepositoryImpl) GetListing(
	_ context.Context, key domain.ListingKey,
) (*domain.Listing, error) {
	var listing domain.Listing
	if err := r.store.Get(key.String(), &listing); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepositoryImpl) GetAllListings(
	_ context.Context,
) ([]domain.Listing, error) {
	var listings []domain.Listing
	if err := r.store.Find(&listings, nil); err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepositoryImpl) GetOpenListings(
	_ context.Context,
) ([]domain.Listing, error) {
	query := badgerhold.Where("Closed").Eq(false)

	var listings []domain.Listing
	if err := r.store.Find(&listings, query); err != nil {
		return nil, err
	}
	return listings, nil
}

// UpdateListing runs updateFn under the per-listing lock, so mutations of
// the same record are serialized while different listings proceed
// independently.
func (r *listingRepositoryImpl) UpdateListing(
	ctx context.Context, key domain.ListingKey,
	updateFn func(l *domain.Listing) (*domain.Listing, error),
) error {
	lock := r.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	current, err := r.GetListing(ctx, key)
	if err != nil {
		return err
	}

	updated, err := updateFn(current)
	if err != nil {
		return err
	}

	return r.store.Update(key.String(), *updated)
}

func (r *listingRepositoryImpl) keyLock(key domain.ListingKey) *sync.Mutex {
	r.locksMtx.Lock()
	defer r.locksMtx.Unlock()

	lock, ok := r.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[key] = lock
	}
	return lock
}
