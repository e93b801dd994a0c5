package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galleria-network/galleria-daemon/internal/core/domain"
)

var (
	seller = testIdentity(0x01)
	bidder = testIdentity(0x02)
	rival  = testIdentity(0x03)

	asset        = testAssetID(0xaa)
	paymentAsset = testAssetID(0xbb)
)

const (
	auctionStart = int64(1000)
	auctionEnd   = int64(2000)
)

func testIdentity(b byte) domain.Identity {
	var id domain.Identity
	for i := range id {
		id[i] = b
	}
	return id
}

func testAssetID(b byte) domain.AssetID {
	var asset domain.AssetID
	for i := range asset {
		asset[i] = b
	}
	return asset
}

func newTestSale() *domain.Listing {
	l, _ := domain.NewListing(
		seller, "listing-1", 1000, asset, paymentAsset, 0, 0, false,
	)
	return l
}

func newTestAuction() *domain.Listing {
	l, _ := domain.NewListing(
		seller, "listing-1", 10, asset, paymentAsset,
		auctionStart, auctionEnd, true,
	)
	return l
}

func TestNewListing(t *testing.T) {
	t.Parallel()

	l, err := domain.NewListing(
		seller, "listing-1", 1000, asset, paymentAsset, 0, 0, false,
	)
	require.NoError(t, err)
	require.NotNil(t, l)
	require.Equal(t, seller, l.Seller)
	require.Equal(t, "listing-1", l.ListingID)
	require.Equal(t, asset, l.AssetID)
	require.Equal(t, uint64(1000), l.AskingPrice)
	require.False(t, l.Closed)
	require.False(t, l.IsAuction)
	require.False(t, l.HasBids())
	require.Nil(t, l.Winner())
}

func TestFailingNewListing(t *testing.T) {
	t.Parallel()

	_, err := domain.NewListing(
		seller, "listing-1", 0, asset, paymentAsset, 0, 0, false,
	)
	require.EqualError(t, err, domain.ErrInvalidPrice.Error())
}

func TestPlaceBid(t *testing.T) {
	t.Parallel()

	l := newTestAuction()
	now := auctionStart + 1

	err := l.PlaceBid(bidder, 10, now)
	require.NoError(t, err)
	require.Equal(t, uint64(10), l.HighestBid)
	require.Equal(t, bidder, *l.Winner())

	err = l.PlaceBid(rival, 20, now)
	require.NoError(t, err)

	err = l.PlaceBid(bidder, 30, now)
	require.NoError(t, err)
	require.Equal(t, uint64(30), l.HighestBid)
	require.Equal(t, bidder, *l.Winner())
}

func TestFailingPlaceBid(t *testing.T) {
	t.Parallel()

	canceled := newTestAuction()
	require.NoError(t, canceled.Cancel(seller))

	outbid := newTestAuction()
	require.NoError(t, outbid.PlaceBid(rival, 30, auctionStart+1))

	tests := []struct {
		name          string
		listing       *domain.Listing
		bidder        domain.Identity
		amount        uint64
		now           int64
		expectedError error
	}{
		{
			name:          "not_an_auction",
			listing:       newTestSale(),
			bidder:        bidder,
			amount:        10,
			now:           auctionStart + 1,
			expectedError: domain.ErrNotAuction,
		},
		{
			name:          "before_start",
			listing:       newTestAuction(),
			bidder:        bidder,
			amount:        10,
			now:           auctionStart,
			expectedError: domain.ErrListingNotOn,
		},
		{
			name:          "after_end",
			listing:       newTestAuction(),
			bidder:        bidder,
			amount:        10,
			now:           auctionEnd,
			expectedError: domain.ErrListingNotOn,
		},
		{
			name:          "canceled_auction",
			listing:       canceled,
			bidder:        bidder,
			amount:        10,
			now:           auctionStart + 1,
			expectedError: domain.ErrAuctionCanceled,
		},
		{
			name:          "bid_not_above_highest",
			listing:       outbid,
			bidder:        bidder,
			amount:        25,
			now:           auctionStart + 1,
			expectedError: domain.ErrInvalidPrice,
		},
		{
			name:          "seller_bids_own_listing",
			listing:       newTestAuction(),
			bidder:        seller,
			amount:        10,
			now:           auctionStart + 1,
			expectedError: domain.ErrInvalidBid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.listing.PlaceBid(tt.bidder, tt.amount, tt.now)
			require.EqualError(t, err, tt.expectedError.Error())
		})
	}
}

func TestRejectedBidLeavesWinnerUntouched(t *testing.T) {
	t.Parallel()

	l := newTestAuction()
	now := auctionStart + 1
	require.NoError(t, l.PlaceBid(rival, 30, now))

	err := l.PlaceBid(bidder, 25, now)
	require.EqualError(t, err, domain.ErrInvalidPrice.Error())
	require.Equal(t, uint64(30), l.HighestBid)
	require.Equal(t, rival, *l.Winner())
}

func TestSettleAuction(t *testing.T) {
	t.Parallel()

	l := newTestAuction()
	require.NoError(t, l.PlaceBid(bidder, 30, auctionStart+1))

	amount, err := l.SettleAuction(bidder, auctionEnd+1)
	require.NoError(t, err)
	require.Equal(t, uint64(30), amount)
	require.True(t, l.Closed)
}

func TestFailingSettleAuction(t *testing.T) {
	t.Parallel()

	withBid := func() *domain.Listing {
		l := newTestAuction()
		require.NoError(t, l.PlaceBid(bidder, 30, auctionStart+1))
		return l
	}

	settled := withBid()
	_, err := settled.SettleAuction(bidder, auctionEnd+1)
	require.NoError(t, err)

	tests := []struct {
		name          string
		listing       *domain.Listing
		caller        domain.Identity
		now           int64
		expectedError error
	}{
		{
			name:          "already_settled",
			listing:       settled,
			caller:        bidder,
			now:           auctionEnd + 1,
			expectedError: domain.ErrListingClosed,
		},
		{
			name:          "not_an_auction",
			listing:       newTestSale(),
			caller:        bidder,
			now:           auctionEnd + 1,
			expectedError: domain.ErrNotAuction,
		},
		{
			name:          "auction_still_on",
			listing:       withBid(),
			caller:        bidder,
			now:           auctionEnd,
			expectedError: domain.ErrAuctionOn,
		},
		{
			name:          "no_winner",
			listing:       newTestAuction(),
			caller:        bidder,
			now:           auctionEnd + 1,
			expectedError: domain.ErrNoWinner,
		},
		{
			name:          "caller_is_not_winner",
			listing:       withBid(),
			caller:        rival,
			now:           auctionEnd + 1,
			expectedError: domain.ErrNotWinner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.listing.SettleAuction(tt.caller, tt.now)
			require.EqualError(t, err, tt.expectedError.Error())
		})
	}
}

func TestSettleFixedPrice(t *testing.T) {
	t.Parallel()

	l := newTestSale()

	amount, err := l.SettleFixedPrice(bidder)
	require.NoError(t, err)
	require.Equal(t, uint64(1000), amount)
	require.True(t, l.Closed)
}

func TestFailingSettleFixedPrice(t *testing.T) {
	t.Parallel()

	sold := newTestSale()
	_, err := sold.SettleFixedPrice(bidder)
	require.NoError(t, err)

	tests := []struct {
		name          string
		listing       *domain.Listing
		caller        domain.Identity
		expectedError error
	}{
		{
			name:          "already_sold",
			listing:       sold,
			caller:        rival,
			expectedError: domain.ErrListingClosed,
		},
		{
			name:          "auction_listing",
			listing:       newTestAuction(),
			caller:        bidder,
			expectedError: domain.ErrNotOnSell,
		},
		{
			name:          "seller_buys_own_listing",
			listing:       newTestSale(),
			caller:        seller,
			expectedError: domain.ErrNotAuthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.listing.SettleFixedPrice(tt.caller)
			require.EqualError(t, err, tt.expectedError.Error())
		})
	}
}

func TestCancel(t *testing.T) {
	t.Parallel()

	l := newTestSale()
	err := l.Cancel(seller)
	require.NoError(t, err)
	require.True(t, l.Closed)
}

func TestCancelAuctionWithBids(t *testing.T) {
	t.Parallel()

	// A bid holds no escrowed amount so the seller can back out at any
	// point before settlement.
	l := newTestAuction()
	require.NoError(t, l.PlaceBid(bidder, 30, auctionStart+1))

	err := l.Cancel(seller)
	require.NoError(t, err)
	require.True(t, l.Closed)
}

func TestFailingCancel(t *testing.T) {
	t.Parallel()

	canceled := newTestSale()
	require.NoError(t, canceled.Cancel(seller))

	tests := []struct {
		name          string
		listing       *domain.Listing
		caller        domain.Identity
		expectedError error
	}{
		{
			name:          "already_closed",
			listing:       canceled,
			caller:        seller,
			expectedError: domain.ErrListingClosed,
		},
		{
			name:          "caller_is_not_seller",
			listing:       newTestSale(),
			caller:        bidder,
			expectedError: domain.ErrNotAuthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.listing.Cancel(tt.caller)
			require.EqualError(t, err, tt.expectedError.Error())
		})
	}
}

func TestSetPrice(t *testing.T) {
	t.Parallel()

	l := newTestSale()
	err := l.SetPrice(seller, 500)
	require.NoError(t, err)
	require.Equal(t, uint64(500), l.AskingPrice)
}

func TestFailingSetPrice(t *testing.T) {
	t.Parallel()

	closed := newTestSale()
	require.NoError(t, closed.Cancel(seller))

	tests := []struct {
		name          string
		listing       *domain.Listing
		caller        domain.Identity
		newPrice      uint64
		expectedError error
	}{
		{
			name:          "closed_listing",
			listing:       closed,
			caller:        seller,
			newPrice:      500,
			expectedError: domain.ErrListingClosed,
		},
		{
			name:          "caller_is_not_seller",
			listing:       newTestSale(),
			caller:        bidder,
			newPrice:      500,
			expectedError: domain.ErrNotAuthorized,
		},
		{
			name:          "auction_listing",
			listing:       newTestAuction(),
			caller:        seller,
			newPrice:      500,
			expectedError: domain.ErrNotOnSell,
		},
		{
			name:          "zero_price",
			listing:       newTestSale(),
			caller:        seller,
			newPrice:      0,
			expectedError: domain.ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.listing.SetPrice(tt.caller, tt.newPrice)
			require.EqualError(t, err, tt.expectedError.Error())
		})
	}
}

func TestEscrow(t *testing.T) {
	t.Parallel()

	l := newTestSale()
	escrow := l.Escrow()
	require.False(t, escrow.IsZero())
	require.Equal(t, domain.DeriveEscrow(seller, "listing-1"), escrow)

	other, _ := domain.NewListing(
		seller, "listing-2", 1000, asset, paymentAsset, 0, 0, false,
	)
	require.NotEqual(t, escrow, other.Escrow())
}
