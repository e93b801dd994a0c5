package domain

// Listing is the entity representing one unique asset offered for sale,
// either at a fixed price or through a timed auction. For its whole
// lifetime the listing exclusively owns the custody hold on the underlying
// asset, parked on the escrow identity derived from (seller, listing id).
type Listing struct {
	// Seller is the identity that created the listing and owns its proceeds.
	Seller Identity
	// ListingID is the caller-supplied id, unique per seller.
	ListingID string
	// AssetID is the unique asset held in escrow.
	AssetID AssetID
	// PaymentAsset names the fungible unit the seller asked to be paid in.
	// Informational: settlement moves native currency.
	PaymentAsset AssetID
	// AskingPrice is the fixed-price amount, reused as the starting price
	// for auctions. Always at least 1.
	AskingPrice uint64
	// AuctionStart and AuctionEnd bound the bidding window (unix seconds).
	AuctionStart int64
	AuctionEnd   int64
	// HighestBidder is nil until the first accepted bid.
	HighestBidder *Identity
	// HighestBid strictly increases on every accepted bid.
	HighestBid uint64
	// Closed marks the terminal state. It is never cleared.
	Closed bool
	// IsAuction is immutable after creation.
	IsAuction bool
}

// NewListing returns a listing with no bids and the open state set. The
// caller is responsible for moving the asset into escrow atomically with
// persisting the returned record.
func NewListing(
	seller Identity, listingID string, askingPrice uint64,
	assetID, paymentAsset AssetID, startAt, endAt int64, isAuction bool,
) (*Listing, error) {
	if askingPrice < 1 {
		return nil, ErrInvalidPrice
	}

	return &Listing{
		Seller:       seller,
		ListingID:    listingID,
		AssetID:      assetID,
		PaymentAsset: paymentAsset,
		AskingPrice:  askingPrice,
		AuctionStart: startAt,
		AuctionEnd:   endAt,
		IsAuction:    isAuction,
	}, nil
}

// Escrow returns the custody identity holding the listing's asset.
func (l *Listing) Escrow() Identity {
	return DeriveEscrow(l.Seller, l.ListingID)
}

// Winner returns the highest bidder, or nil if no bid was ever accepted.
func (l *Listing) Winner() *Identity {
	return l.HighestBidder
}

// HasBids returns whether at least one bid has been accepted.
func (l *Listing) HasBids() bool {
	return l.HighestBidder != nil
}

// PlaceBid accepts a strictly higher bid from a non-seller within the
// auction time window.
func (l *Listing) PlaceBid(bidder Identity, amount uint64, now int64) error {
	if !l.IsAuction {
		return ErrNotAuction
	}
	if !(now > l.AuctionStart && now < l.AuctionEnd) {
		return ErrListingNotOn
	}
	if l.Closed {
		return ErrAuctionCanceled
	}
	if amount <= l.HighestBid {
		return ErrInvalidPrice
	}
	if bidder == l.Seller {
		return ErrInvalidBid
	}

	l.HighestBid = amount
	l.HighestBidder = &bidder
	return nil
}

// SettleAuction validates an auction settlement attempted by caller at the
// given time, marks the listing closed and returns the settlement amount.
// The listing must only be persisted in this state once the asset and
// currency transfers went through.
func (l *Listing) SettleAuction(caller Identity, now int64) (uint64, error) {
	if l.Closed {
		return 0, ErrListingClosed
	}
	if !l.IsAuction {
		return 0, ErrNotAuction
	}
	if now <= l.AuctionEnd {
		return 0, ErrAuctionOn
	}
	if l.HighestBidder == nil {
		return 0, ErrNoWinner
	}
	if *l.HighestBidder != caller {
		return 0, ErrNotWinner
	}

	l.Closed = true
	return l.HighestBid, nil
}

// SettleFixedPrice validates a direct purchase by caller, marks the listing
// closed and returns the settlement amount. Sellers cannot buy their own
// listing.
func (l *Listing) SettleFixedPrice(caller Identity) (uint64, error) {
	if l.Closed {
		return 0, ErrListingClosed
	}
	if l.IsAuction {
		return 0, ErrNotOnSell
	}
	if caller == l.Seller {
		return 0, ErrNotAuthorized
	}

	l.Closed = true
	return l.AskingPrice, nil
}

// Cancel closes the listing on behalf of its seller so the asset can be
// reclaimed from escrow. No time-window check is performed: cancellation
// stays available to the seller for the whole auction, bids included. The
// highest bidder holds a promise, not an escrowed amount, so nothing is
// owed back.
func (l *Listing) Cancel(caller Identity) error {
	if l.Closed {
		return ErrListingClosed
	}
	if caller != l.Seller {
		return ErrNotAuthorized
	}

	l.Closed = true
	return nil
}

// SetPrice updates the asking price of a fixed-price listing.
func (l *Listing) SetPrice(caller Identity, newPrice uint64) error {
	if l.Closed {
		return ErrListingClosed
	}
	if caller != l.Seller {
		return ErrNotAuthorized
	}
	if l.IsAuction {
		return ErrNotOnSell
	}
	if newPrice < 1 {
		return ErrInvalidPrice
	}

	l.AskingPrice = newPrice
	return nil
}
