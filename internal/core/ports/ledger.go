package ports

import (
	"github.com/galleria-network/galleria-daemon/internal/core/domain"
)

// EscrowAuthority is the capability-scoped authority that can sign for
// transfers out of one specific escrow custody account. It is derivable
// from public identifiers and carries no secret: the ledger only honors it
// for the escrow identity derived from the same (seller, listing id) pair.
type EscrowAuthority struct {
	Seller    domain.Identity
	ListingID string
}

// Escrow returns the custody identity this authority is scoped to.
func (a EscrowAuthority) Escrow() domain.Identity {
	return domain.DeriveEscrow(a.Seller, a.ListingID)
}

// Ledger is the platform capability moving unique assets and native
// currency between accounts. The daemon calls it, it does not implement it:
// account provisioning, balance accounting and signature verification live
// behind this interface.
type Ledger interface {
	// NewTransaction opens an exclusive unit of work against the ledger.
	// Operations staged on the returned LedgerTx are validated eagerly and
	// take effect all at once on Commit, or not at all on Discard.
	NewTransaction() LedgerTx

	// BalanceOf returns the native currency balance of an account.
	BalanceOf(account domain.Identity) uint64
	// HolderOf returns the account currently holding the unit of the given
	// unique asset.
	HolderOf(asset domain.AssetID) (domain.Identity, bool)
}

// LedgerTx is a single all-or-nothing batch of ledger operations.
type LedgerTx interface {
	// EnsureAssetAccount provisions a custody account for owner to receive
	// the given asset, if one does not exist yet.
	EnsureAssetAccount(owner domain.Identity, asset domain.AssetID) error
	// TransferAsset moves the single unit of asset between custody
	// accounts. With a nil auth the transfer is authorized by the sending
	// identity itself; an escrow-held transfer must present the matching
	// EscrowAuthority instead.
	TransferAsset(
		asset domain.AssetID, from, to domain.Identity, auth *EscrowAuthority,
	) error
	// TransferFunds moves native currency, authorized by the payer.
	TransferFunds(from, to domain.Identity, amount uint64) error

	// Commit applies every staged operation atomically.
	Commit() error
	// Discard drops the staged operations and releases the unit of work.
	Discard()
}
