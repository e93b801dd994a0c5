package domain

import "context"

// ListingKey addresses a listing deterministically, no separate index
// structure exists.
type ListingKey struct {
	Seller    Identity
	ListingID string
}

func (k ListingKey) String() string {
	return k.Seller.String() + "/" + k.ListingID
}

// ListingRepository is the abstraction for any kind of database intended to
// persist Listings.
type ListingRepository interface {
	// AddListing stores a new listing, failing with ErrListingAlreadyExists
	// if the key is taken.
	AddListing(ctx context.Context, listing Listing) error
	// GetListing returns the listing with the given key, or
	// ErrListingNotFound.
	GetListing(ctx context.Context, key ListingKey) (*Listing, error)
	// GetAllListings returns all the listings stored in the repository.
	GetAllListings(ctx context.Context) ([]Listing, error)
	// GetOpenListings returns all the listings not yet closed.
	GetOpenListings(ctx context.Context) ([]Listing, error)
	// UpdateListing allows to commit multiple changes to the same listing
	// in a transactional way. Invocations for the same key are serialized:
	// while an updateFn runs, no other mutation can touch the record.
	UpdateListing(
		ctx context.Context,
		key ListingKey,
		updateFn func(l *Listing) (*Listing, error),
	) error
}
