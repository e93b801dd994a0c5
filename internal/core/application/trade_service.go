package application

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/galleria-network/galleria-daemon/internal/core/domain"
	"github.com/galleria-network/galleria-daemon/internal/core/ports"
	"github.com/galleria-network/galleria-daemon/pkg/circuitbreaker"
	"github.com/galleria-network/galleria-daemon/pkg/mathutil"
)

// TradeService exposes the buyer side of the marketplace: bidding on
// auctions, direct purchases and auction settlements.
type TradeService interface {
	// PlaceBid records a strictly higher bid on an open auction. No funds
	// move at bid time, a bid is a promise collected at settlement.
	PlaceBid(
		ctx context.Context, bidder domain.Identity, key domain.ListingKey,
		amount uint64,
	) (*domain.Listing, error)
	// BuyFixedPrice atomically moves the asset from escrow to the buyer
	// and splits the asking price between seller and platform owner.
	BuyFixedPrice(
		ctx context.Context, buyer domain.Identity, key domain.ListingKey,
	) (*domain.Receipt, error)
	// SettleAuction collects the winning bid from the caller, pays seller
	// and platform owner and hands over the asset. Only the highest bidder
	// of an ended auction can settle.
	SettleAuction(
		ctx context.Context, caller domain.Identity, key domain.ListingKey,
	) (*domain.Receipt, error)
}

type tradeService struct {
	repoManager ports.RepoManager
	ledger      ports.Ledger
	cb          *gobreaker.CircuitBreaker
}

func NewTradeService(
	repoManager ports.RepoManager, ledger ports.Ledger,
) TradeService {
	return &tradeService{
		repoManager: repoManager,
		ledger:      ledger,
		cb:          circuitbreaker.NewCircuitBreaker("ledger"),
	}
}

func (t *tradeService) PlaceBid(
	ctx context.Context, bidder domain.Identity, key domain.ListingKey,
	amount uint64,
) (*domain.Listing, error) {
	now := time.Now().Unix()
	var updated domain.Listing

	if err := t.repoManager.ListingRepository().UpdateListing(
		ctx, key, func(l *domain.Listing) (*domain.Listing, error) {
			if err := l.PlaceBid(bidder, amount, now); err != nil {
				return nil, err
			}
			updated = *l
			return l, nil
		},
	); err != nil {
		return nil, err
	}

	log.Infof(
		"bid of %d accepted on listing %s from %s", amount, key.ListingID, bidder,
	)
	return &updated, nil
}

func (t *tradeService) BuyFixedPrice(
	ctx context.Context, buyer domain.Identity, key domain.ListingKey,
) (*domain.Receipt, error) {
	return t.settle(
		ctx, buyer, key, domain.ReceiptKindSale,
		func(l *domain.Listing) (uint64, error) {
			return l.SettleFixedPrice(buyer)
		},
	)
}

func (t *tradeService) SettleAuction(
	ctx context.Context, caller domain.Identity, key domain.ListingKey,
) (*domain.Receipt, error) {
	now := time.Now().Unix()
	return t.settle(
		ctx, caller, key, domain.ReceiptKindAuction,
		func(l *domain.Listing) (uint64, error) {
			return l.SettleAuction(caller, now)
		},
	)
}

// settle runs the shared atomic settlement sequence: validate and close the
// listing, provision the buyer's custody account, move the asset out of
// escrow, split the payment between seller and platform owner. The staged
// ledger batch takes effect only once the closed listing is persisted; any
// failure leaves both the ledger and the listing untouched.
func (t *tradeService) settle(
	ctx context.Context, buyer domain.Identity, key domain.ListingKey,
	receiptKind string, closeListing func(l *domain.Listing) (uint64, error),
) (*domain.Receipt, error) {
	config, err := t.repoManager.ConfigRepository().GetConfig(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStateAccount) {
			return nil, ErrMarketplaceNotInitialized
		}
		return nil, err
	}

	tx := t.ledger.NewTransaction()
	defer tx.Discard()

	now := time.Now().Unix()
	var receipt *domain.Receipt

	if err := t.repoManager.ListingRepository().UpdateListing(
		ctx, key, func(l *domain.Listing) (*domain.Listing, error) {
			amount, err := closeListing(l)
			if err != nil {
				return nil, err
			}

			ownerCut, proceeds := mathutil.SplitFee(amount, config.OwnerCutBps)
			auth := &ports.EscrowAuthority{
				Seller: l.Seller, ListingID: l.ListingID,
			}

			if _, err := t.cb.Execute(func() (interface{}, error) {
				if err := tx.EnsureAssetAccount(buyer, l.AssetID); err != nil {
					return nil, err
				}
				if err := tx.TransferAsset(
					l.AssetID, l.Escrow(), buyer, auth,
				); err != nil {
					return nil, err
				}
				if err := tx.TransferFunds(
					buyer, l.Seller, proceeds,
				); err != nil {
					return nil, err
				}
				return nil, tx.TransferFunds(buyer, config.Owner, ownerCut)
			}); err != nil {
				return nil, ledgerError(err)
			}

			r := domain.NewSaleReceipt(
				receiptKind, *l, buyer, amount, ownerCut, proceeds, now,
			)
			receipt = &r
			return l, nil
		},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	if err := t.repoManager.ReceiptRepository().AddReceipt(
		ctx, *receipt,
	); err != nil {
		log.WithError(err).Warn("failed to store settlement receipt")
	}

	log.Infof(
		"listing %s settled for %d (owner cut %d) in favor of %s",
		key.ListingID, receipt.Amount, receipt.OwnerCut, buyer,
	)
	return receipt, nil
}

// ledgerError maps circuit breaker states onto the service availability
// error, leaving any other ledger failure untouched.
func ledgerError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) ||
		errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrServiceUnavailable
	}
	return err
}
