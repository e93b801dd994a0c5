package application

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/galleria-network/galleria-daemon/internal/core/domain"
	"github.com/galleria-network/galleria-daemon/internal/core/ports"
	"github.com/galleria-network/galleria-daemon/pkg/circuitbreaker"
)

// OperatorService exposes the deployer and seller side of the marketplace:
// one-time configuration, listing creation, repricing, cancellation and the
// read surface over listings and receipts.
type OperatorService interface {
	// InitConfig creates the singleton marketplace config. It can succeed
	// at most once per store.
	InitConfig(
		ctx context.Context, owner domain.Identity, ownerCutBps uint16,
	) error
	// GetConfig returns the marketplace config.
	GetConfig(ctx context.Context) (*domain.Config, error)
	// CreateListing stores a new listing and moves its asset from the
	// seller to the escrow custody account as a single unit.
	CreateListing(
		ctx context.Context, args CreateListingArgs,
	) (*domain.Listing, error)
	// CancelListing closes a listing on behalf of its seller and returns
	// the asset from escrow.
	CancelListing(
		ctx context.Context, caller domain.Identity, key domain.ListingKey,
	) (*domain.Receipt, error)
	// SetListingPrice updates the asking price of a fixed-price listing.
	SetListingPrice(
		ctx context.Context, caller domain.Identity, key domain.ListingKey,
		newPrice uint64,
	) error
	// GetListing returns one listing by key.
	GetListing(
		ctx context.Context, key domain.ListingKey,
	) (*domain.Listing, error)
	// ListListings returns all listings, or the open ones only.
	ListListings(ctx context.Context, onlyOpen bool) ([]domain.Listing, error)
	// ListReceipts returns settlement receipts, optionally filtered by
	// listing.
	ListReceipts(
		ctx context.Context, key *domain.ListingKey,
	) ([]domain.Receipt, error)
}

type operatorService struct {
	repoManager ports.RepoManager
	ledger      ports.Ledger
	cb          *gobreaker.CircuitBreaker
}

func NewOperatorService(
	repoManager ports.RepoManager, ledger ports.Ledger,
) OperatorService {
	return &operatorService{
		repoManager: repoManager,
		ledger:      ledger,
		cb:          circuitbreaker.NewCircuitBreaker("ledger"),
	}
}

func (o *operatorService) InitConfig(
	ctx context.Context, owner domain.Identity, ownerCutBps uint16,
) error {
	config, err := domain.NewConfig(owner, ownerCutBps)
	if err != nil {
		return err
	}

	if err := o.repoManager.ConfigRepository().InitConfig(
		ctx, *config,
	); err != nil {
		return err
	}

	log.Infof(
		"marketplace initialized, owner %s takes %d bps per settlement",
		owner, ownerCutBps,
	)
	return nil
}

func (o *operatorService) GetConfig(
	ctx context.Context,
) (*domain.Config, error) {
	return o.repoManager.ConfigRepository().GetConfig(ctx)
}

func (o *operatorService) CreateListing(
	ctx context.Context, args CreateListingArgs,
) (*domain.Listing, error) {
	listing, err := domain.NewListing(
		args.Seller, args.ListingID, args.AskingPrice,
		args.AssetID, args.PaymentAsset, args.StartAt, args.EndAt,
		args.IsAuction,
	)
	if err != nil {
		return nil, err
	}

	// Record creation and escrow transfer are a single unit: the
	// transfer is staged and validated first, the record is persisted,
	// and only then the staged transfer takes effect. A failure anywhere
	// leaves neither behind.
	tx := o.ledger.NewTransaction()
	defer tx.Discard()

	if _, err := o.cb.Execute(func() (interface{}, error) {
		if err := tx.EnsureAssetAccount(
			listing.Escrow(), args.AssetID,
		); err != nil {
			return nil, err
		}
		return nil, tx.TransferAsset(
			args.AssetID, args.Seller, listing.Escrow(), nil,
		)
	}); err != nil {
		return nil, ledgerError(err)
	}

	if err := o.repoManager.ListingRepository().AddListing(
		ctx, *listing,
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Infof(
		"listing %s created by %s (auction: %t, price: %d)",
		args.ListingID, args.Seller, args.IsAuction, args.AskingPrice,
	)
	return listing, nil
}

func (o *operatorService) CancelListing(
	ctx context.Context, caller domain.Identity, key domain.ListingKey,
) (*domain.Receipt, error) {
	tx := o.ledger.NewTransaction()
	defer tx.Discard()

	now := time.Now().Unix()
	var receipt *domain.Receipt

	if err := o.repoManager.ListingRepository().UpdateListing(
		ctx, key, func(l *domain.Listing) (*domain.Listing, error) {
			if err := l.Cancel(caller); err != nil {
				return nil, err
			}

			auth := &ports.EscrowAuthority{
				Seller: l.Seller, ListingID: l.ListingID,
			}
			if _, err := o.cb.Execute(func() (interface{}, error) {
				if err := tx.EnsureAssetAccount(
					l.Seller, l.AssetID,
				); err != nil {
					return nil, err
				}
				return nil, tx.TransferAsset(
					l.AssetID, l.Escrow(), l.Seller, auth,
				)
			}); err != nil {
				return nil, ledgerError(err)
			}

			r := domain.NewCancelReceipt(*l, now)
			receipt = &r
			return l, nil
		},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	o.storeReceipt(ctx, *receipt)
	log.Infof("listing %s canceled, asset returned to %s", key.ListingID, key.Seller)
	return receipt, nil
}

func (o *operatorService) SetListingPrice(
	ctx context.Context, caller domain.Identity, key domain.ListingKey,
	newPrice uint64,
) error {
	return o.repoManager.ListingRepository().UpdateListing(
		ctx, key, func(l *domain.Listing) (*domain.Listing, error) {
			if err := l.SetPrice(caller, newPrice); err != nil {
				return nil, err
			}
			return l, nil
		},
	)
}

func (o *operatorService) GetListing(
	ctx context.Context, key domain.ListingKey,
) (*domain.Listing, error) {
	return o.repoManager.ListingRepository().GetListing(ctx, key)
}

func (o *operatorService) ListListings(
	ctx context.Context, onlyOpen bool,
) ([]domain.Listing, error) {
	if onlyOpen {
		return o.repoManager.ListingRepository().GetOpenListings(ctx)
	}
	return o.repoManager.ListingRepository().GetAllListings(ctx)
}

func (o *operatorService) ListReceipts(
	ctx context.Context, key *domain.ListingKey,
) ([]domain.Receipt, error) {
	if key != nil {
		return o.repoManager.ReceiptRepository().GetReceiptsForListing(ctx, *key)
	}
	return o.repoManager.ReceiptRepository().GetAllReceipts(ctx)
}

func (o *operatorService) storeReceipt(
	ctx context.Context, receipt domain.Receipt,
) {
	if err := o.repoManager.ReceiptRepository().AddReceipt(
		ctx, receipt,
	); err != nil {
		log.WithError(err).Warn("failed to store settlement receipt")
	}
}
