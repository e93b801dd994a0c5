package domain

import "errors"

var (
	// ErrInvalidPrice is thrown when a price is below the 1-unit minimum or
	// a bid does not strictly top the current highest one.
	ErrInvalidPrice = errors.New("price must be at least 1 unit")
	// ErrInvalidQuantity is reserved for multi-unit offers, unused by the
	// single-asset listings of this daemon.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidPayment is thrown when the submitted payment does not match
	// the asking price.
	ErrInvalidPayment = errors.New("payment must match the asking price")
	// ErrInvalidStateAccount ...
	ErrInvalidStateAccount = errors.New("invalid marketplace state record")
	// ErrStateAlreadyInitialized is thrown when attempting to initialize the
	// marketplace config more than once.
	ErrStateAlreadyInitialized = errors.New("marketplace state already initialized")
	// ErrListingNotOn is thrown when bidding outside the auction time window.
	ErrListingNotOn = errors.New("listing is not open")
	// ErrAuctionOn is thrown when settling an auction before its end time.
	ErrAuctionOn = errors.New("auction is still running")
	// ErrAuctionCanceled is thrown when bidding on a closed listing.
	ErrAuctionCanceled = errors.New("auction has been canceled")
	// ErrNotAuthorized is thrown when the caller is not the expected signer
	// for the operation.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrNotWinner is thrown when an auction settlement is attempted by
	// somebody other than the highest bidder.
	ErrNotWinner = errors.New("caller is not the auction winner")
	// ErrNoWinner is thrown when settling an auction that received no bids.
	ErrNoWinner = errors.New("auction ended without bids")
	// ErrNotAuction is thrown when an auction-only operation targets a
	// fixed-price listing.
	ErrNotAuction = errors.New("listing is not an auction")
	// ErrNotOnSell is thrown when a fixed-price-only operation targets an
	// auction listing.
	ErrNotOnSell = errors.New("listing is not on direct sale")
	// ErrInvalidOwnerCut is thrown when the owner cut is not within
	// [0, 10000) basis points.
	ErrInvalidOwnerCut = errors.New("owner cut must be between 0 and 9999 basis points")
	// ErrInvalidBid is thrown when a seller bids on their own auction.
	ErrInvalidBid = errors.New("cannot bid on own auction")
	// ErrListingClosed is thrown by every mutating operation targeting a
	// listing that already reached its terminal state.
	ErrListingClosed = errors.New("listing is closed")
	// ErrListingNotFound ...
	ErrListingNotFound = errors.New("listing not found")
	// ErrListingAlreadyExists is thrown when creating a listing with a key
	// already taken by the same seller.
	ErrListingAlreadyExists = errors.New("listing already exists")
)
