package inmemory

import (
	"context"
	"sync"

	"github.com/galleria-network/galleria-daemon/internal/core/domain"
)

type listingRepositoryImpl struct {
	mtx      sync.RWMutex
	listings map[domain.ListingKey]domain.Listing
	locks    map[domain.ListingKey]*sync.Mutex
}

func NewListingRepositoryImpl() domain.ListingRepository {
	return &listingRepositoryImpl{
		listings: map[domain.ListingKey]domain.Listing{},
		locks:    map[domain.ListingKey]*sync.Mutex{},
	}
}

func (r *listingRepositoryImpl) AddListing(
	_ context.Context, listing domain.Listing,
) error {
	key := domain.ListingKey{
		Seller: listing.Seller, ListingID: listing.ListingID,
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.listings[key]; ok {
		return domain.ErrListingAlreadyExists
	}

	r.listings[key] = listing
	r.locks[key] = &sync.Mutex{}
	return nil
}

func (r *listingRepositoryImpl) GetListing(
	_ context.Context, key domain.ListingKey,
) (*domain.Listing, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	listing, ok := r.listings[key]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return &listing, nil
}

func (r *listingRepositoryImpl) GetAllListings(
	_ context.Context,
) ([]domain.Listing, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	listings := make([]domain.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		listings = append(listings, l)
	}
	return listings, nil
}

func (r *listingRepositoryImpl) GetOpenListings(
	_ context.Context,
) ([]domain.Listing, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	listings := make([]domain.Listing, 0, len(r.listings))
	for _, l := range r.listings {
		if !l.Closed {
			listings = append(listings, l)
		}
	}
	return listings, nil
}

// UpdateListing serializes mutations per listing: the per-key lock is held
// for the whole updateFn run, so no two mutations of the same record can
// interleave, while listings with different keys stay fully independent.
func (r *listingRepositoryImpl) UpdateListing(
	ctx context.Context, key domain.ListingKey,
	updateFn func(l *domain.Listing) (*domain.Listing, error),
) error {
	r.mtx.RLock()
	lock, ok := r.locks[key]
	r.mtx.RUnlock()
	if !ok {
		return domain.ErrListingNotFound
	}

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

	r.mtx.Lock()
	r.listings[key] = *updated
	r.mtx.Unlock()
	return nil
}
