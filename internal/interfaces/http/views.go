package httpinterface

import (
	"github.com/galleria-network/galleria-daemon/internal/core/domain"
)

type configView struct {
	Owner       string `json:"owner"`
	OwnerCutBps uint16 `json:"owner_cut_bps"`
}

func newConfigView(config domain.Config) configView {
	return configView{
		Owner:       config.Owner.String(),
		OwnerCutBps: config.OwnerCutBps,
	}
}

type listingView struct {
	Seller        string `json:"seller"`
	ListingID     string `json:"listing_id"`
	AssetID       string `json:"asset_id"`
	PaymentAsset  string `json:"payment_asset"`
	AskingPrice   uint64 `json:"asking_price"`
	AuctionStart  int64  `json:"auction_start"`
	AuctionEnd    int64  `json:"auction_end"`
	HighestBidder string `json:"highest_bidder,omitempty"`
	HighestBid    uint64 `json:"highest_bid"`
	Closed        bool   `json:"closed"`
	IsAuction     bool   `json:"is_auction"`
	Escrow        string `json:"escrow"`
}

func newListingView(l domain.Listing) listingView {
	view := listingView{
		Seller:       l.Seller.String(),
		ListingID:    l.ListingID,
		AssetID:      l.AssetID.String(),
		PaymentAsset: l.PaymentAsset.String(),
		AskingPrice:  l.AskingPrice,
		AuctionStart: l.AuctionStart,
		AuctionEnd:   l.AuctionEnd,
		HighestBid:   l.HighestBid,
		Closed:       l.Closed,
		IsAuction:    l.IsAuction,
		Escrow:       l.Escrow().String(),
	}
	if l.HighestBidder != nil {
		view.HighestBidder = l.HighestBidder.String()
	}
	return view
}

func newListingViews(listings []domain.Listing) []listingView {
	views := make([]listingView, 0, len(listings))
	for _, l := range listings {
		views = append(views, newListingView(l))
	}
	return views
}

type receiptView struct {
	Id        string `json:"id"`
	Kind      string `json:"kind"`
	Seller    string `json:"seller"`
	ListingID string `json:"listing_id"`
	AssetID   string `json:"asset_id"`
	Buyer     string `json:"buyer,omitempty"`
	Amount    uint64 `json:"amount"`
	OwnerCut  uint64 `json:"owner_cut"`
	Proceeds  uint64 `json:"proceeds"`
	SettledAt int64  `json:"settled_at"`
}

func newReceiptView(r domain.Receipt) receiptView {
	view := receiptView{
		Id:        r.Id,
		Kind:      r.Kind,
		Seller:    r.Seller.String(),
		ListingID: r.ListingID,
		AssetID:   r.AssetID.String(),
		Amount:    r.Amount,
		OwnerCut:  r.OwnerCut,
		Proceeds:  r.Proceeds,
		SettledAt: r.SettledAt,
	}
	if r.Buyer != nil {
		view.Buyer = r.Buyer.String()
	}
	return view
}

func newReceiptViews(receipts []domain.Receipt) []receiptView {
	views := make([]receiptView, 0, len(receipts))
	for _, r := range receipts {
		views = append(views, newReceiptView(r))
	}
	return views
}
